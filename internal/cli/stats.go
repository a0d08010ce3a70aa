package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show works per year and the categories present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.config()
			if err != nil {
				return err
			}

			svc, done, release, err := app.openCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer release()

			select {
			case <-done:
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Years")
			for _, b := range svc.YearBuckets() {
				fmt.Fprintf(out, "  %s %s %d\n", b.Year, strings.Repeat("█", b.Count), b.Count)
			}

			fmt.Fprintln(out, "Categories")
			for _, c := range svc.Categories() {
				fmt.Fprintf(out, "  %s\n", c)
			}
			return nil
		},
	}
}
