package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	droppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func newValidateCmd(app *App) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Probe every media URI and report which works survive",
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

			retained := make(map[int]int)
			for _, v := range svc.Catalog() {
				retained[v.ID] = len(v.ValidImages)
			}

			out := cmd.OutOrStdout()
			dropped := 0
			for _, a := range svc.Records() {
				n, ok := retained[a.ID]
				switch {
				case !ok:
					dropped++
					fmt.Fprintf(out, "%s %3d %s\n", droppedStyle.Render("drop"), a.ID, a.Title)
				case a.IsVideo():
					fmt.Fprintf(out, "%s %3d %s %s\n", okStyle.Render("keep"), a.ID, a.Title, faintStyle.Render("(video)"))
				default:
					fmt.Fprintf(out, "%s %3d %s %s\n", okStyle.Render("keep"), a.ID, a.Title,
						faintStyle.Render(fmt.Sprintf("(%d/%d images)", n, len(a.Images()))))
				}
			}

			status := svc.Status()
			fmt.Fprintln(out, strings.Repeat("-", 40))
			fmt.Fprintf(out, "%d of %d works retained from %s\n", status.Retained, status.Records, status.Source)

			if strict && dropped > 0 {
				return fmt.Errorf("%d works have no usable media", dropped)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any work is dropped")
	return cmd
}
