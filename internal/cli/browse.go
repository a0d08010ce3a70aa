package cli

import (
	"github.com/spf13/cobra"

	"portfolio-gallery-service/internal/adapters/primary/tui"
	"portfolio-gallery-service/internal/adapters/secondary/i18n"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.config()
			if err != nil {
				return err
			}
			tr, err := i18n.NewTranslator(cfg.I18n.DefaultLang)
			if err != nil {
				return err
			}

			svc, done, release, err := app.openCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer release()

			return tui.Run(svc, done, cfg.I18n.DefaultLang, tr)
		},
	}
}
