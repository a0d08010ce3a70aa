package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"portfolio-gallery-service/internal/adapters/secondary/imageprobe"
	"portfolio-gallery-service/internal/catalogsource"
	"portfolio-gallery-service/internal/config"
	"portfolio-gallery-service/internal/core/services"
)

type App struct {
	Source    string
	File      string
	MediaRoot string
	Lang      string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "gallery",
		Short:        "Browse and check the portfolio catalog from a terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Browse the compiled-in catalog
  gallery browse

  # Check every media URI of a catalog file
  gallery validate --source file --file catalog.yaml --media-root ./media

  # Works per year and categories present
  gallery stats
`),
	}

	cmd.PersistentFlags().StringVar(&app.Source, "source", "", "Catalog source (static|file|postgres|sqlite|configmap); overrides CATALOG_SOURCE")
	cmd.PersistentFlags().StringVar(&app.File, "file", "", "Catalog file for --source file; overrides CATALOG_FILE")
	cmd.PersistentFlags().StringVar(&app.MediaRoot, "media-root", "", "Directory local media paths resolve under; overrides MEDIA_ROOT")
	cmd.PersistentFlags().StringVar(&app.Lang, "lang", "", "Label language; overrides I18N_DEFAULT_LANG")

	cmd.AddCommand(newBrowseCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newStatsCmd(app))

	return cmd
}

func (app *App) config() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if app.Source != "" {
		cfg.Catalog.Source = strings.ToLower(app.Source)
	}
	if app.File != "" {
		cfg.Catalog.File = app.File
	}
	if app.MediaRoot != "" {
		cfg.Media.Root = app.MediaRoot
	}
	if app.Lang != "" {
		cfg.I18n.DefaultLang = app.Lang
	}
	return cfg, nil
}

// openCatalog loads the configured catalog and starts its validation pass.
// The returned func releases the source and the hydrator.
func (app *App) openCatalog(ctx context.Context, cfg *config.Config) (*services.CatalogService, <-chan struct{}, func(), error) {
	source, closeSource, err := catalogsource.Open(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	hydrator := services.NewHydrator(imageprobe.NewProber(&cfg.Probe, &cfg.Media),
		services.WithConcurrency(cfg.Probe.Concurrency),
		services.WithProbeTimeout(cfg.Probe.Timeout),
	)
	release := func() {
		hydrator.Close()
		closeSource()
	}

	svc := services.NewCatalogService(source, hydrator)
	done, err := svc.Load(ctx)
	if err != nil {
		release()
		return nil, nil, nil, err
	}
	return svc, done, release, nil
}
