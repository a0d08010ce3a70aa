package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-gallery-service/internal/adapters/secondary/catalogfile"
	"portfolio-gallery-service/internal/core/domain"
	ports "portfolio-gallery-service/internal/core/ports/output"
)

// artworkRepo reads the catalog from the artworks table. The table is
// maintained outside this service; it is never written here.
type artworkRepo struct {
	pool *pgxpool.Pool
}

func NewArtworkRepository(pool *pgxpool.Pool) ports.CatalogSource {
	return &artworkRepo{pool: pool}
}

func (r *artworkRepo) Name() string {
	return "postgres"
}

func (r *artworkRepo) Load(ctx context.Context) ([]*domain.Artwork, error) {
	query := `
		SELECT id, title, category, year, media_type,
			   COALESCE(thumbnail, '') AS thumbnail,
			   COALESCE(images, '{}') AS images,
			   COALESCE(video_id, '') AS video_id,
			   COALESCE(description, '') AS description,
			   COALESCE(external_link, '') AS external_link,
			   COALESCE(related_projects, '{}') AS related_projects
		FROM artworks
		ORDER BY position, id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query artworks: %v", domain.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var out []*domain.Artwork
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artworks: %w", err)
	}
	return out, nil
}

func scanArtwork(row pgx.Row) (*domain.Artwork, error) {
	var (
		e       catalogfile.Entry
		related []int32
	)
	err := row.Scan(
		&e.ID, &e.Title, &e.Category, &e.Year, &e.Type,
		&e.Thumbnail, &e.Images, &e.VideoID,
		&e.Description, &e.ExternalLink, &related,
	)
	if err != nil {
		return nil, fmt.Errorf("scan artwork: %w", err)
	}
	for _, id := range related {
		e.RelatedProjects = append(e.RelatedProjects, int(id))
	}
	return e.ToArtwork()
}
