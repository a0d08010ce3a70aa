package postgres

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-gallery-service/internal/core/domain"
)

// stubRow hands pre-decoded column values to Scan in column order.
type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

func TestScanArtwork(t *testing.T) {
	row := stubRow{values: []any{
		1, "Tide", "photography", "2019-2020", "image",
		"/media/t.jpg", []string{"/media/a.jpg", "/media/b.jpg"}, "",
		"Salt and *light*.", "https://example.com/tide", []int32{2, 3},
	}}

	a, err := scanArtwork(row)
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, domain.CategoryPhotography, a.Category)
	assert.Equal(t, []string{"/media/a.jpg", "/media/b.jpg"}, a.Images())
	assert.Equal(t, []int{2, 3}, a.RelatedProjects)
	assert.Equal(t, "https://example.com/tide", a.ExternalLink)
}

func TestScanArtwork_Video(t *testing.T) {
	row := stubRow{values: []any{
		2, "Reel", "Video", "2021", "video",
		"", []string{}, "abc123", "", "", []int32{},
	}}

	a, err := scanArtwork(row)
	require.NoError(t, err)
	assert.True(t, a.IsVideo())
	assert.Equal(t, "abc123", a.VideoID())
	assert.Empty(t, a.RelatedProjects)
}

func TestScanArtwork_Errors(t *testing.T) {
	_, err := scanArtwork(stubRow{err: errors.New("conn reset")})
	assert.ErrorContains(t, err, "scan artwork")

	row := stubRow{values: []any{
		3, "Odd", "Sculpture", "2020", "image",
		"", []string{}, "", "", "", []int32{},
	}}
	_, err = scanArtwork(row)
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

// TestArtworkRepository_Load runs against a live database when
// PORTFOLIO_TEST_POSTGRES_DSN is set.
func TestArtworkRepository_Load(t *testing.T) {
	dsn := os.Getenv("PORTFOLIO_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("PORTFOLIO_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()

	poolCfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	// The temp table below lives on a single connection.
	poolCfg.MaxConns = 1
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `
		CREATE TEMP TABLE artworks (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL DEFAULT 0,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			year TEXT NOT NULL,
			media_type TEXT NOT NULL,
			thumbnail TEXT,
			images TEXT[],
			video_id TEXT,
			description TEXT,
			external_link TEXT,
			related_projects INTEGER[]
		)
	`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `
		INSERT INTO artworks (id, position, title, category, year, media_type, thumbnail, images, video_id, related_projects)
		VALUES
			(2, 2, 'Reel', 'Video', '2021', 'video', NULL, NULL, 'abc123', NULL),
			(1, 1, 'Tide', 'Photography', '2019-2020', 'image', '/media/t.jpg', ARRAY['/media/a.jpg','/media/b.jpg'], NULL, ARRAY[2])
	`)
	require.NoError(t, err)

	repo := NewArtworkRepository(pool)
	assert.Equal(t, "postgres", repo.Name())

	records, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, []string{"/media/a.jpg", "/media/b.jpg"}, records[0].Images())
	assert.Equal(t, []int{2}, records[0].RelatedProjects)

	assert.True(t, records[1].IsVideo())
	assert.Equal(t, "abc123", records[1].VideoID())
	assert.Empty(t, records[1].Thumbnail)

	assert.NoError(t, domain.ValidateCatalog(records))
}
