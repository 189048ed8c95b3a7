package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/physio/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// RelativeDay describes day relative to now in whole calendar days.
func RelativeDay(day, now time.Time) string {
	days := int(math.Round(domain.StartOfDay(now).Sub(domain.StartOfDay(day)).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days < 14:
		return fmt.Sprintf("%dd ago", days)
	case days >= 14 && days < 60:
		return fmt.Sprintf("%dw ago", days/7)
	case days >= 60:
		return fmt.Sprintf("%dmo ago", days/30)
	default:
		return day.Format("Jan 2, 2006")
	}
}

// HumanTimestamp renders a wall-clock timestamp as "Jun 10 09:30".
func HumanTimestamp(t time.Time) string {
	return t.Format("Jan 2 15:04")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatNumber prints v with at most one decimal and no trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

// FormatSeconds renders a hold as "45s" or "1m 30s".
func FormatSeconds(v float64) string {
	secs := int(math.Round(v))
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	m, s := secs/60, secs%60
	if s == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dm %ds", m, s)
}

// FormatMeasure renders a volume in the unit of the exercise kind.
func FormatMeasure(kind domain.ExerciseKind, v float64) string {
	if kind == domain.KindTimeBased {
		return FormatSeconds(v)
	}
	return FormatNumber(v) + " reps"
}

// FormatTarget renders an exercise goal as "3 × 10 reps".
func FormatTarget(sets, perSet int, kind domain.ExerciseKind) string {
	return fmt.Sprintf("%d × %s", sets, FormatMeasure(kind, float64(perSet)))
}

// FormatWeight renders an optional load in kilograms.
func FormatWeight(w *float64) string {
	if w == nil {
		return Dim("--")
	}
	return FormatNumber(*w) + " kg"
}

// Truncate shortens s to n visible cells with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
