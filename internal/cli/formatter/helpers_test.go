package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/physio/internal/domain"
)

func TestRelativeDay(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"earlier today", time.Date(2024, 6, 10, 0, 5, 0, 0, time.UTC), "Today"},
		{"late yesterday", time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC), "Yesterday"},
		{"3 days past", now.AddDate(0, 0, -3), "3d ago"},
		{"2 weeks past", now.AddDate(0, 0, -14), "2w ago"},
		{"3 months past", now.AddDate(0, 0, -90), "3mo ago"},
		{"future", now.AddDate(0, 0, 2), "Jun 12, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDay(tt.input, now))
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0s"},
		{45, "45s"},
		{59.6, "1m"},
		{90, "1m 30s"},
		{600, "10m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSeconds(tt.in))
	}
}

func TestFormatMeasure(t *testing.T) {
	assert.Equal(t, "36 reps", FormatMeasure(domain.KindRepBased, 36))
	assert.Equal(t, "12.5 reps", FormatMeasure(domain.KindRepBased, 12.46))
	assert.Equal(t, "1m 30s", FormatMeasure(domain.KindTimeBased, 90))
}

func TestFormatTarget(t *testing.T) {
	assert.Equal(t, "3 × 10 reps", FormatTarget(3, 10, domain.KindRepBased))
	assert.Equal(t, "2 × 45s", FormatTarget(2, 45, domain.KindTimeBased))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a long ...", Truncate("a long sentence", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12", FormatNumber(12))
	assert.Equal(t, "12.3", FormatNumber(12.34))
	assert.Equal(t, "0", FormatNumber(0))
}
