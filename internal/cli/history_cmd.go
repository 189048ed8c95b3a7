package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexanderramin/physio/internal/analytics"
	"github.com/alexanderramin/physio/internal/chart"
	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/domain"
)

const defaultTermWidth = 80

// StdoutWidth is the width of the terminal on stdout, or 80 when stdout is
// not a terminal.
func StdoutWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTermWidth
	}
	return w
}

func newHistoryCmd(app *App) *cobra.Command {
	var days int
	var chartPath string
	var open bool

	cmd := &cobra.Command{
		Use:   "history EXERCISE",
		Short: "Show daily totals against the goal for recent days",
		Long: "Show daily totals against the goal for recent days. A day is on track\n" +
			"when some 7-day window containing it met the weekly target.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}
			e, err := resolveExercise(ctx, app, args[0])
			if err != nil {
				return err
			}
			h, err := app.Progress.History(ctx, e.ID, days, app.now())
			if err != nil {
				return err
			}

			width := defaultTermWidth
			if app.TermWidth != nil {
				width = app.TermWidth()
			}
			title := fmt.Sprintf("%s, last %d days", e.Name, days)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(title, h.History, e.Kind, width))

			if chartPath == "" {
				if !open {
					return nil
				}
				chartPath = filepath.Join(os.TempDir(), fmt.Sprintf("physio-%s.html", e.ID))
			}
			if err := writeHistoryChart(chartPath, title, h.History, e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s\n", chartPath)
			if open && app.OpenBrowser != nil {
				return app.OpenBrowser(chartPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", historyDaysDefault(app.Config.HistoryDays), "Number of days to show")
	cmd.Flags().StringVar(&chartPath, "chart", "", "Also write an HTML chart to this file")
	cmd.Flags().BoolVar(&open, "open", false, "Open the chart in the browser")

	return cmd
}

func writeHistoryChart(path, title string, h analytics.History, e *domain.Exercise) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	if err := chart.RenderHistory(f, title, h, e.Kind); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func historyDaysDefault(cfg int) int {
	if cfg > 0 {
		return cfg
	}
	return analytics.DefaultSeriesWindow
}
