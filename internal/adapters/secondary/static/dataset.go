package static

import (
	"context"

	"portfolio-gallery-service/internal/core/domain"
	"portfolio-gallery-service/internal/core/ports/output"
)

// Source serves the compiled-in catalog.
type Source struct {
	records []*domain.Artwork
}

func NewSource() ports.CatalogSource {
	return &Source{records: Artworks()}
}

func (s *Source) Name() string { return "static" }

func (s *Source) Load(_ context.Context) ([]*domain.Artwork, error) {
	return s.records, nil
}

// Artworks returns a fresh copy of the default dataset.
func Artworks() []*domain.Artwork {
	return []*domain.Artwork{
		{
			ID:        1,
			Title:     "Salt Flats at Dawn",
			Category:  domain.CategoryPhotography,
			Year:      "2023",
			Thumbnail: "/media/photography/salt-flats/thumb.jpg",
			Media: domain.ImageMedia{Images: []string{
				"/media/photography/salt-flats/01.jpg",
				"/media/photography/salt-flats/02.jpg",
				"/media/photography/salt-flats/03.jpg",
			}},
			Description:     "A series shot over three mornings on the **Uyuni** salt flats, chasing the minutes before sunrise.",
			RelatedProjects: []int{2, 9},
		},
		{
			ID:        2,
			Title:     "Harbour Nocturnes",
			Category:  domain.CategoryPhotography,
			Year:      "2022",
			Thumbnail: "/media/photography/harbour/thumb.jpg",
			Media: domain.ImageMedia{Images: []string{
				"/media/photography/harbour/01.jpg",
				"/media/photography/harbour/02.jpg",
			}},
			Description: "Long exposures of a working harbour after the last ferry.",
		},
		{
			ID:        3,
			Title:     "Ochre Studies",
			Category:  domain.CategoryPainting,
			Year:      "2020-2021",
			Thumbnail: "/media/painting/ochre/thumb.jpg",
			Media: domain.ImageMedia{Images: []string{
				"/media/painting/ochre/01.jpg",
				"/media/painting/ochre/02.jpg",
				"/media/painting/ochre/03.jpg",
				"/media/painting/ochre/04.jpg",
			}},
			Description: "Acrylic on linen. Twelve small panels built from a single earth pigment.",
		},
		{
			ID:        4,
			Title:     "Still Water",
			Category:  domain.CategoryPainting,
			Year:      "2023",
			Thumbnail: "/media/painting/still-water/thumb.jpg",
			Media: domain.ImageMedia{Images: []string{
				"/media/painting/still-water/01.jpg",
			}},
		},
		{
			ID:        5,
			Title:     "Field Notes",
			Category:  domain.CategoryIllustration,
			Year:      "2022",
			Thumbnail: "/media/illustration/field-notes/thumb.jpg",
			Media: domain.ImageMedia{Images: []string{
				"/media/illustration/field-notes/01.jpg",
				"/media/illustration/field-notes/02.jpg",
			}},
			Description:     "Ink drawings from a sketchbook kept during a month of hiking.",
			RelatedProjects: []int{8, 5, 42},
		},
		{
			ID:        6,
			Title:     "Festival Identity",
			Category:  domain.CategoryGraphicDesign,
			Year:      "2021",
			Thumbnail: "/media/design/festival/thumb.jpg",
			Media: domain.ImageMedia{Images: []string{
				"/media/design/festival/poster.jpg",
				"/media/design/festival/tickets.jpg",
			}},
			ExternalLink: "https://example.org/festival-identity",
		},
		{
			ID:        7,
			Title:     "Market Street Mural",
			Category:  domain.CategoryMuralArt,
			Year:      "2019-2020",
			Thumbnail: "/media/mural/market-street/thumb.jpg",
			Media: domain.ImageMedia{Images: []string{
				"/media/mural/market-street/wide.jpg",
				"/media/mural/market-street/detail.jpg",
			}},
			Description: "Forty metres of wall painted with neighbourhood volunteers over two summers.",
		},
		{
			ID:        8,
			Title:     "Drawing With Kids",
			Category:  domain.CategoryWorkshop,
			Year:      "2022",
			Thumbnail: "/media/workshop/kids/thumb.jpg",
			Media: domain.ImageMedia{Images: []string{
				"/media/workshop/kids/01.jpg",
			}},
		},
		{
			ID:          9,
			Title:       "Making Of: Salt Flats",
			Category:    domain.CategoryVideo,
			Year:        "2023",
			Thumbnail:   "/media/video/salt-flats/thumb.jpg",
			Media:       domain.VideoMedia{VideoID: "dQw4w9WgXcQ"},
			Description: "Behind the scenes of the salt flats series.",
		},
		{
			ID:        10,
			Title:     "Studio Reel",
			Category:  domain.CategoryVideo,
			Year:      "2021",
			Thumbnail: "",
			Media:     domain.VideoMedia{VideoID: "aqz-KE-bpKQ"},
		},
		{
			ID:        11,
			Title:     "Night Market",
			Category:  domain.CategoryPhotography,
			Year:      "2021",
			Thumbnail: "https://images.example.org/night-market/thumb.jpg",
			Media: domain.ImageMedia{Images: []string{
				"https://images.example.org/night-market/01.jpg",
				"https://images.example.org/night-market/02.jpg",
			}},
		},
		{
			ID:        12,
			Title:     "Botanical Plates",
			Category:  domain.CategoryIllustration,
			Year:      "2020",
			Thumbnail: "/media/illustration/botanical/thumb.jpg",
			Media: domain.ImageMedia{Images: []string{
				"/media/illustration/botanical/01.jpg",
				"/media/illustration/botanical/02.jpg",
				"/media/illustration/botanical/03.jpg",
			}},
		},
	}
}
