package catalogfile

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"portfolio-gallery-service/internal/core/domain"
	ports "portfolio-gallery-service/internal/core/ports/output"
)

// Document is the on-disk shape of a catalog file.
type Document struct {
	Artworks []Entry `yaml:"artworks"`
}

type Entry struct {
	ID              int      `yaml:"id"`
	Title           string   `yaml:"title"`
	Category        string   `yaml:"category"`
	Year            string   `yaml:"year"`
	Type            string   `yaml:"type"`
	Thumbnail       string   `yaml:"thumbnail"`
	Images          []string `yaml:"images"`
	VideoID         string   `yaml:"video_id"`
	Description     string   `yaml:"description"`
	ExternalLink    string   `yaml:"external_link"`
	RelatedProjects []int    `yaml:"related_projects"`
}

// ToArtwork converts an entry into a domain record. An omitted type means
// an image record.
func (e Entry) ToArtwork() (*domain.Artwork, error) {
	category, err := domain.ParseCategory(e.Category)
	if err != nil {
		return nil, fmt.Errorf("artwork %d: %w", e.ID, err)
	}

	var a *domain.Artwork
	switch domain.MediaType(e.Type) {
	case "", domain.MediaTypeImage:
		a = domain.NewImageArtwork(e.ID, e.Title, category, e.Year, e.Thumbnail, e.Images...)
	case domain.MediaTypeVideo:
		a = domain.NewVideoArtwork(e.ID, e.Title, category, e.Year, e.Thumbnail, e.VideoID)
	default:
		return nil, fmt.Errorf("artwork %d: %w: %q", e.ID, domain.ErrUnknownMediaType, e.Type)
	}
	a.Description = e.Description
	a.ExternalLink = e.ExternalLink
	a.RelatedProjects = e.RelatedProjects
	return a, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) ([]*domain.Artwork, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	out := make([]*domain.Artwork, 0, len(doc.Artworks))
	for _, e := range doc.Artworks {
		a, err := e.ToArtwork()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

type fileSource struct {
	path string
}

// NewSource reads the catalog from a YAML file on every Load.
func NewSource(path string) ports.CatalogSource {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string {
	return "file"
}

func (s *fileSource) Load(_ context.Context) ([]*domain.Artwork, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	return Parse(data)
}
