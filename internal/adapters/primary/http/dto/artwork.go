package dto

import (
	"portfolio-gallery-service/internal/core/domain"
	"portfolio-gallery-service/internal/core/services"
)

// ============================================================================
// Response DTOs
// ============================================================================

// ArtworkResponse represents a validated artwork. Images and thumbnail are
// the validated ones; unusable media never reach the client.
type ArtworkResponse struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	CategoryLabel   string   `json:"category_label"`
	Year            string   `json:"year"`
	Type            string   `json:"type"`
	Thumbnail       string   `json:"thumbnail,omitempty"`
	Images          []string `json:"images"`
	VideoID         string   `json:"video_id,omitempty"`
	Description     string   `json:"description,omitempty"`
	DescriptionHTML string   `json:"description_html,omitempty"`
	ExternalLink    string   `json:"external_link,omitempty"`
	RelatedProjects []int    `json:"related_projects,omitempty"`
}

// ListArtworksResponse represents a filtered view of the catalog
type ListArtworksResponse struct {
	Items      []ArtworkResponse `json:"items"`
	Total      int               `json:"total"`
	Category   string            `json:"category"`
	Year       string            `json:"year,omitempty"`
	Validating bool              `json:"validating"`
}

type YearHistogramResponse struct {
	Years map[string]int `json:"years"`
}

type TimelineResponse struct {
	Items []services.YearBucket `json:"items"`
}

type CategoryResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type CategoriesResponse struct {
	Items []CategoryResponse `json:"items"`
}

// ============================================================================
// Mappers
// ============================================================================

// Labeler resolves the display label of a category.
type Labeler func(domain.Category) string

func ToArtworkResponse(v *domain.ValidatedArtwork, label Labeler) ArtworkResponse {
	return ArtworkResponse{
		ID:              v.ID,
		Title:           v.Title,
		Category:        string(v.Category),
		CategoryLabel:   label(v.Category),
		Year:            v.Year,
		Type:            string(v.Type()),
		Thumbnail:       v.ValidThumbnail,
		Images:          v.ValidImages,
		VideoID:         v.VideoID(),
		Description:     v.Description,
		DescriptionHTML: RenderDescription(v.Description),
		ExternalLink:    v.ExternalLink,
		RelatedProjects: v.RelatedProjects,
	}
}

func ToArtworkResponses(items []*domain.ValidatedArtwork, label Labeler) []ArtworkResponse {
	out := make([]ArtworkResponse, 0, len(items))
	for _, v := range items {
		out = append(out, ToArtworkResponse(v, label))
	}
	return out
}
