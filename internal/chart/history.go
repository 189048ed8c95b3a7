// Package chart renders exercise histories as standalone go-echarts pages.
package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/alexanderramin/physio/internal/analytics"
	"github.com/alexanderramin/physio/internal/domain"
)

const (
	colorOnTrack  = "#5cb85c"
	colorOffTrack = "#f0ad4e"
	colorGoal     = "#d9534f"
)

// RenderHistory writes an HTML page with the daily volume as bars, coloured
// by the on-track classification, under the goal line.
func RenderHistory(w io.Writer, title string, history analytics.History, kind domain.ExerciseKind) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons", PageTitle: title}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle(history),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         yAxisName(kind),
			NameLocation: "middle",
			NameGap:      50,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "shadow",
			},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Bottom: "bottom",
		}),
		charts.WithGridOpts(opts.Grid{
			Bottom: "20%",
		}),
	)

	xAxis := make([]string, 0, len(history.Points))
	bars := make([]opts.BarData, 0, len(history.Points))
	goals := make([]opts.LineData, 0, len(history.Points))
	for i, p := range history.Points {
		xAxis = append(xAxis, p.Date.Format("01-02"))
		color := colorOffTrack
		if i < len(history.OnTrack) && history.OnTrack[i] {
			color = colorOnTrack
		}
		bars = append(bars, opts.BarData{
			Name:      domain.DateKey(p.Date),
			Value:     round1(p.Value),
			ItemStyle: &opts.ItemStyle{Color: color},
		})
		goals = append(goals, opts.LineData{Value: round1(p.Goal)})
	}

	bar.SetXAxis(xAxis).AddSeries("Completed", bars)

	goalLine := charts.NewLine()
	goalLine.AddSeries("Goal", goals,
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorGoal, Type: "dashed"}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorGoal}),
	)
	bar.Overlap(goalLine)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("rendering history chart: %w", err)
	}
	return nil
}

func yAxisName(kind domain.ExerciseKind) string {
	if kind == domain.KindTimeBased {
		return "Seconds per day"
	}
	return "Reps per day"
}

func subtitle(h analytics.History) string {
	return fmt.Sprintf("%d active days, %d on track, %d sessions in total",
		h.ActiveDays, h.OnTrackDays, h.TotalSessions)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
