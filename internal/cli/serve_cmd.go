package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/physio/internal/httpapi"
	"github.com/alexanderramin/physio/internal/metrics"
)

func newServeCmd(app *App) *cobra.Command {
	var addr, metricsAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and Prometheus metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reg := metrics.NewRegistry()
			metricsManager := metrics.NewManager("physio", "api", reg)
			handler := httpapi.NewHandler(httpapi.Services{
				Exercises: app.Exercises,
				Sessions:  app.Sessions,
				Workouts:  app.Workouts,
				Progress:  app.Progress,
			}, metricsManager, historyDaysDefault(app.Config.HistoryDays))

			server := httpapi.NewServer(httpapi.NewServerParams{
				Addr:           addr,
				MetricsAddr:    metricsAddr,
				Handler:        handler,
				MetricsManager: metricsManager,
				PromRegistry:   reg,
			})
			if err := server.Listen(); err != nil {
				return err
			}

			log.Infof("api listening on %s, metrics on %s", server.Addr(), server.MetricsAddr())
			fmt.Fprintf(cmd.OutOrStdout(), "API on http://%s/api, metrics on http://%s/metrics. Ctrl+C to stop.\n",
				server.Addr(), server.MetricsAddr())
			return server.Serve(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.Config.HTTPAddr, "API listen address")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", app.Config.MetricsAddr, "Metrics listen address")

	return cmd
}
