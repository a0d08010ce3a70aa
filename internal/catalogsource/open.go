// Package catalogsource picks the catalog source named by CATALOG_SOURCE
// and connects it.
package catalogsource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"portfolio-gallery-service/internal/adapters/secondary/catalogfile"
	"portfolio-gallery-service/internal/adapters/secondary/kube"
	"portfolio-gallery-service/internal/adapters/secondary/postgres"
	"portfolio-gallery-service/internal/adapters/secondary/sqlite"
	"portfolio-gallery-service/internal/adapters/secondary/static"
	"portfolio-gallery-service/internal/config"
	"portfolio-gallery-service/internal/core/domain"
	ports "portfolio-gallery-service/internal/core/ports/output"
)

// Open returns the configured source and a func releasing whatever
// connection it holds. The release func is never nil.
func Open(ctx context.Context, cfg *config.Config) (ports.CatalogSource, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case "static", "":
		return static.NewSource(), noop, nil

	case "file":
		return catalogfile.NewSource(cfg.Catalog.File), noop, nil

	case "postgres":
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
		if err != nil {
			return nil, noop, fmt.Errorf("parse db config: %w", err)
		}
		poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
		poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
		poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return nil, noop, fmt.Errorf("create db pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("ping db: %w", err)
		}
		log.Info("database connection established")
		return postgres.NewArtworkRepository(pool), pool.Close, nil

	case "sqlite":
		db, err := sqlite.New(cfg.SQLite.Path)
		if err != nil {
			return nil, noop, err
		}
		return sqlite.NewArtworkRepository(db), func() { _ = db.Close() }, nil

	case "configmap":
		src, err := kube.NewConfigMapSource(&cfg.Kubernetes)
		if err != nil {
			return nil, noop, err
		}
		return src, noop, nil
	}

	return nil, noop, fmt.Errorf("%w: %q", domain.ErrUnknownCatalogSource, cfg.Catalog.Source)
}
