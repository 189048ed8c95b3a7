package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/physio/internal/backup"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import exercises, sessions and workouts from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := backup.Load(args[0])
			if err != nil {
				return err
			}
			result, err := app.Backup.Import(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d exercises (%d sessions) and %d workouts (%d sessions).\n",
				result.Exercises, result.Sessions, result.Workouts, result.WorkoutSessions)
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every exercise, session and workout to a backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.Backup.Export(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return backup.Write(cmd.OutOrStdout(), f)
			}

			file, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := backup.Write(file, f); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d exercises and %d workouts to %s\n", len(f.Exercises), len(f.Workouts), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}
