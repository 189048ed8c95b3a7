package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/physio/internal/domain"
)

// parseLocal parses a stored wall-clock timestamp, naming the column on error.
func parseLocal(column, value string) (time.Time, error) {
	t, err := domain.ParseLocalDateTime(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

func formatLocal(t time.Time) string {
	return domain.FormatLocalDateTime(t)
}

// zeroIntToNull stores 0 as SQL NULL, for optional counts.
func zeroIntToNull(v int) any {
	if v == 0 {
		return nil
	}
	return v
}

// emptyStringToNull stores "" as SQL NULL.
func emptyStringToNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableFloatToValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// notFoundOr maps sql.ErrNoRows to ErrNotFound for the named entity.
func notFoundOr(entity string, err error) error {
	if err == sql.ErrNoRows {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return fmt.Errorf("scanning %s: %w", entity, err)
}

// requireAffected reports ErrNotFound when an update or delete touched no row.
func requireAffected(entity string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows for %s: %w", entity, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
