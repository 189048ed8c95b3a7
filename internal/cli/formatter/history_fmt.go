package formatter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/alexanderramin/physio/internal/analytics"
	"github.com/alexanderramin/physio/internal/domain"
)

const (
	goalMarker     = "┆"
	minHistoryBars = 10
)

// FormatHistory draws one line per day: a bar scaled to the window's maximum,
// a goal marker, and the day's value against its goal. width is the terminal
// width available for the whole line.
func FormatHistory(title string, h analytics.History, kind domain.ExerciseKind, width int) string {
	if len(h.Points) == 0 {
		return Dim("No history.") + "\n"
	}

	labels := make([]string, len(h.Points))
	labelWidth := 0
	for i, p := range h.Points {
		labels[i] = fmt.Sprintf("%s / %s", FormatMeasure(kind, p.Value), FormatMeasure(kind, p.Goal))
		labelWidth = max(labelWidth, runewidth.StringWidth(labels[i]))
	}

	// "Jan 02 " + bar + "  " + label + " ✓"
	barWidth := max(width-7-2-labelWidth-2-8, minHistoryBars)
	scale := 0.0
	if h.MaxValue > 0 {
		scale = float64(barWidth) / h.MaxValue
	}

	var b strings.Builder
	for i, p := range h.Points {
		filled := min(int(p.Value*scale+0.5), barWidth)
		goalAt := min(int(p.Goal*scale+0.5), barWidth-1)

		cells := make([]string, barWidth)
		for x := range cells {
			switch {
			case x < filled:
				cells[x] = filledBlock
			case x == goalAt:
				cells[x] = goalMarker
			default:
				cells[x] = " "
			}
		}

		style := StyleYellow
		mark := " "
		if h.OnTrack[i] {
			style = StyleGreen
			mark = StyleGreen.Render("✓")
		}
		if p.Value == 0 {
			style = StyleDim
		}

		fmt.Fprintf(&b, "%s %s  %s %s\n",
			Dim(p.Date.Format("Jan 02")),
			style.Render(strings.Join(cells, "")),
			runewidth.FillRight(labels[i], labelWidth),
			mark,
		)
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d active days, %d on track. %d sessions, %d sets, %s in total.",
		h.ActiveDays, h.OnTrackDays, h.TotalSessions, h.TotalSets, FormatMeasure(kind, h.TotalVolume))))

	return RenderBox(title, b.String())
}
