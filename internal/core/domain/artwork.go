package domain

import (
	"fmt"
	"regexp"
	"strings"
)

type Category string

const (
	CategoryAll           Category = "All"
	CategoryPhotography   Category = "Photography"
	CategoryPainting      Category = "Painting"
	CategoryIllustration  Category = "Illustration"
	CategoryGraphicDesign Category = "Graphic Design"
	CategoryMuralArt      Category = "Mural Art"
	CategoryVideo         Category = "Video"
	CategoryWorkshop      Category = "Workshop/Illustration"
)

// Categories lists every medium in display order. CategoryAll is a filter
// sentinel and is not part of it.
var Categories = []Category{
	CategoryPhotography,
	CategoryPainting,
	CategoryIllustration,
	CategoryGraphicDesign,
	CategoryMuralArt,
	CategoryVideo,
	CategoryWorkshop,
}

// ParseCategory matches s against the enumeration case-insensitively.
// "All" and the empty string both parse to CategoryAll.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, nil
	}
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// LabelKey is the message key of the category's display label.
func (c Category) LabelKey() string {
	k := strings.ToLower(string(c))
	k = strings.NewReplacer(" ", "_", "/", "_").Replace(k)
	return "category." + k
}

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Media is the variant part of an Artwork: either ImageMedia or VideoMedia.
type Media interface {
	Type() MediaType
	isMedia()
}

// ImageMedia is an ordered gallery of image URIs.
type ImageMedia struct {
	Images []string
}

func (ImageMedia) Type() MediaType { return MediaTypeImage }
func (ImageMedia) isMedia()        {}

// VideoMedia references a video hosted on an external platform.
type VideoMedia struct {
	VideoID string
}

func (VideoMedia) Type() MediaType { return MediaTypeVideo }
func (VideoMedia) isMedia()        {}

// Artwork is one authored catalog entry. It is never mutated after load.
type Artwork struct {
	ID              int
	Title           string
	Category        Category
	Year            string
	Thumbnail       string
	Media           Media
	Description     string
	ExternalLink    string
	RelatedProjects []int
}

func NewImageArtwork(id int, title string, category Category, year, thumbnail string, images ...string) *Artwork {
	return &Artwork{
		ID:        id,
		Title:     title,
		Category:  category,
		Year:      year,
		Thumbnail: thumbnail,
		Media:     ImageMedia{Images: images},
	}
}

func NewVideoArtwork(id int, title string, category Category, year, thumbnail, videoID string) *Artwork {
	return &Artwork{
		ID:        id,
		Title:     title,
		Category:  category,
		Year:      year,
		Thumbnail: thumbnail,
		Media:     VideoMedia{VideoID: videoID},
	}
}

// Record lets query helpers accept both raw and validated artworks.
type Record interface {
	Record() *Artwork
}

func (a *Artwork) Record() *Artwork { return a }

func (a *Artwork) Type() MediaType {
	if a.Media == nil {
		return ""
	}
	return a.Media.Type()
}

func (a *Artwork) IsVideo() bool {
	_, ok := a.Media.(VideoMedia)
	return ok
}

// Images returns the authored gallery; nil for video records.
func (a *Artwork) Images() []string {
	if m, ok := a.Media.(ImageMedia); ok {
		return m.Images
	}
	return nil
}

// VideoID returns the platform id; empty for image records.
func (a *Artwork) VideoID() string {
	if m, ok := a.Media.(VideoMedia); ok {
		return m.VideoID
	}
	return ""
}

func (a *Artwork) StartYear() string {
	return StartYear(a.Year)
}

// StartYear returns the part of year before the first hyphen, or the whole
// string when there is none. "2020-2021" -> "2020".
func StartYear(year string) string {
	start, _, _ := strings.Cut(year, "-")
	return start
}

var yearPattern = regexp.MustCompile(`^\d{4}(-\d{4})?$`)

func (a *Artwork) Validate() error {
	if a.ID <= 0 {
		return ErrInvalidArtworkID
	}
	if strings.TrimSpace(a.Title) == "" {
		return ErrMissingTitle
	}
	if !a.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, a.Category)
	}
	if !yearPattern.MatchString(a.Year) {
		return fmt.Errorf("%w: %q", ErrInvalidYear, a.Year)
	}
	switch m := a.Media.(type) {
	case nil:
		return ErrMissingMedia
	case VideoMedia:
		if strings.TrimSpace(m.VideoID) == "" {
			return ErrMissingVideoID
		}
	}
	return nil
}

// ValidateCatalog checks every record and that ids are unique across the set.
func ValidateCatalog(records []*Artwork) error {
	seen := make(map[int]struct{}, len(records))
	for i, a := range records {
		if a == nil {
			return fmt.Errorf("record %d: %w", i, ErrMissingMedia)
		}
		if err := a.Validate(); err != nil {
			return fmt.Errorf("artwork %d: %w", a.ID, err)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("artwork %d: %w", a.ID, ErrDuplicateID)
		}
		seen[a.ID] = struct{}{}
	}
	return nil
}

// ValidatedArtwork is the runtime view of an Artwork after its media have
// been probed. It is derived, never persisted.
type ValidatedArtwork struct {
	Artwork
	ValidImages    []string
	ValidThumbnail string
}

// Retained reports whether the record survives into the validated catalog.
// Video records always do; image records need at least one usable image or
// a usable thumbnail.
func (v *ValidatedArtwork) Retained() bool {
	if v.IsVideo() {
		return true
	}
	return len(v.ValidImages) > 0 || v.ValidThumbnail != ""
}
