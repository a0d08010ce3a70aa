package ports

import (
	"context"

	"portfolio-gallery-service/internal/core/domain"
)

// CatalogSource loads the authored artwork dataset. Sources are read-only.
type CatalogSource interface {
	Load(ctx context.Context) ([]*domain.Artwork, error)
	Name() string
}
