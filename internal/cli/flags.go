package cli

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/physio/internal/domain"
)

var (
	_ pflag.Value = (*kindValue)(nil)
	_ pflag.Value = (*localTimeValue)(nil)
)

// kindValue accepts the aliases understood by domain.ParseExerciseKind.
type kindValue domain.ExerciseKind

func (k *kindValue) String() string { return string(*k) }

func (k *kindValue) Set(s string) error {
	kind, err := domain.ParseExerciseKind(s)
	if err != nil {
		return err
	}
	*k = kindValue(kind)
	return nil
}

func (k *kindValue) Type() string { return "rep|time" }

func (k *kindValue) Kind() domain.ExerciseKind { return domain.ExerciseKind(*k) }

// localTimeValue holds a wall-clock timestamp given as "YYYY-MM-DD HH:MM:SS"
// or a bare date.
type localTimeValue struct {
	t *time.Time
}

func newLocalTimeValue(t *time.Time) *localTimeValue {
	return &localTimeValue{t: t}
}

func (v *localTimeValue) String() string {
	if v.t == nil || v.t.IsZero() {
		return ""
	}
	return domain.FormatLocalDateTime(*v.t)
}

func (v *localTimeValue) Set(s string) error {
	t, err := domain.ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*v.t = t
	return nil
}

func (v *localTimeValue) Type() string { return "datetime" }

// optionalTime returns nil for an unset flag.
func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
