package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"portfolio-gallery-service/internal/adapters/secondary/catalogfile"
	"portfolio-gallery-service/internal/core/domain"
	ports "portfolio-gallery-service/internal/core/ports/output"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New opens the SQLite database at dataSourceName.
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &DB{db}, nil
}

type artworkRepo struct {
	db *DB
}

// NewArtworkRepository reads the catalog from the artworks table. images
// and related_projects hold JSON arrays.
func NewArtworkRepository(db *DB) ports.CatalogSource {
	return &artworkRepo{db: db}
}

func (r *artworkRepo) Name() string {
	return "sqlite"
}

func (r *artworkRepo) Load(ctx context.Context) ([]*domain.Artwork, error) {
	query := `
		SELECT id, title, category, year, media_type,
			   COALESCE(thumbnail, ''), COALESCE(images, '[]'), COALESCE(video_id, ''),
			   COALESCE(description, ''), COALESCE(external_link, ''),
			   COALESCE(related_projects, '[]')
		FROM artworks
		ORDER BY position, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query artworks: %v", domain.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var out []*domain.Artwork
	for rows.Next() {
		var (
			e                       catalogfile.Entry
			imagesJSON, relatedJSON string
		)
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Category, &e.Year, &e.Type,
			&e.Thumbnail, &imagesJSON, &e.VideoID,
			&e.Description, &e.ExternalLink, &relatedJSON,
		); err != nil {
			return nil, fmt.Errorf("scan artwork: %w", err)
		}
		if err := json.Unmarshal([]byte(imagesJSON), &e.Images); err != nil {
			return nil, fmt.Errorf("artwork %d: decode images: %w", e.ID, err)
		}
		if err := json.Unmarshal([]byte(relatedJSON), &e.RelatedProjects); err != nil {
			return nil, fmt.Errorf("artwork %d: decode related projects: %w", e.ID, err)
		}
		a, err := e.ToArtwork()
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
