package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{in: "", want: CategoryAll},
		{in: "all", want: CategoryAll},
		{in: "painting", want: CategoryPainting},
		{in: "Graphic Design", want: CategoryGraphicDesign},
		{in: "workshop/illustration", want: CategoryWorkshop},
		{in: "Sculpture", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStartYear(t *testing.T) {
	assert.Equal(t, "2020", StartYear("2020-2021"))
	assert.Equal(t, "2023", StartYear("2023"))
	assert.Equal(t, "", StartYear(""))
}

func TestArtworkVariants(t *testing.T) {
	img := NewImageArtwork(1, "Dunes", CategoryPhotography, "2022", "/t.jpg", "/a.jpg", "/b.jpg")
	assert.Equal(t, MediaTypeImage, img.Type())
	assert.False(t, img.IsVideo())
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, img.Images())
	assert.Empty(t, img.VideoID())

	vid := NewVideoArtwork(2, "Reel", CategoryVideo, "2021", "", "abc123")
	assert.Equal(t, MediaTypeVideo, vid.Type())
	assert.True(t, vid.IsVideo())
	assert.Nil(t, vid.Images())
	assert.Equal(t, "abc123", vid.VideoID())
}

func TestArtworkValidate(t *testing.T) {
	tests := []struct {
		name    string
		artwork *Artwork
		wantErr error
	}{
		{
			name:    "valid image",
			artwork: NewImageArtwork(1, "Dunes", CategoryPhotography, "2022", "/t.jpg", "/a.jpg"),
		},
		{
			name:    "valid range year",
			artwork: NewImageArtwork(1, "Wall", CategoryMuralArt, "2019-2020", "/t.jpg"),
		},
		{
			name:    "zero id",
			artwork: NewImageArtwork(0, "Dunes", CategoryPhotography, "2022", ""),
			wantErr: ErrInvalidArtworkID,
		},
		{
			name:    "blank title",
			artwork: NewImageArtwork(1, "  ", CategoryPhotography, "2022", ""),
			wantErr: ErrMissingTitle,
		},
		{
			name:    "unknown category",
			artwork: NewImageArtwork(1, "Dunes", Category("Sculpture"), "2022", ""),
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "all is not a medium",
			artwork: NewImageArtwork(1, "Dunes", CategoryAll, "2022", ""),
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "bad year",
			artwork: NewImageArtwork(1, "Dunes", CategoryPhotography, "22", ""),
			wantErr: ErrInvalidYear,
		},
		{
			name:    "video without id",
			artwork: NewVideoArtwork(1, "Reel", CategoryVideo, "2021", "", ""),
			wantErr: ErrMissingVideoID,
		},
		{
			name:    "no media",
			artwork: &Artwork{ID: 1, Title: "x", Category: CategoryPainting, Year: "2020"},
			wantErr: ErrMissingMedia,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.artwork.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCatalog_DuplicateID(t *testing.T) {
	records := []*Artwork{
		NewImageArtwork(1, "A", CategoryPainting, "2020", "/a.jpg"),
		NewImageArtwork(2, "B", CategoryPainting, "2020", "/b.jpg"),
		NewImageArtwork(1, "C", CategoryPainting, "2020", "/c.jpg"),
	}
	assert.ErrorIs(t, ValidateCatalog(records), ErrDuplicateID)
	assert.NoError(t, ValidateCatalog(records[:2]))
}

func TestValidatedArtwork_Retained(t *testing.T) {
	image := NewImageArtwork(1, "A", CategoryPainting, "2020", "/a.jpg", "/x.jpg")

	assert.False(t, (&ValidatedArtwork{Artwork: *image}).Retained())
	assert.True(t, (&ValidatedArtwork{Artwork: *image, ValidThumbnail: "/a.jpg"}).Retained())
	assert.True(t, (&ValidatedArtwork{Artwork: *image, ValidImages: []string{"/x.jpg"}}).Retained())

	video := NewVideoArtwork(2, "Reel", CategoryVideo, "2021", "", "abc123")
	assert.True(t, (&ValidatedArtwork{Artwork: *video}).Retained())
}
