package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"portfolio-gallery-service/internal/adapters/primary/http/dto"
	"portfolio-gallery-service/internal/core/domain"
)

// ============================================================================
// Artworks
// ============================================================================

// ListArtworks returns the validated catalog narrowed by ?category= and
// ?year=. The year is applied first so a specific category wins when both
// are given.
func (h *Handler) ListArtworks(c *gin.Context) {
	category, err := domain.ParseCategory(c.Query("category"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	filter := domain.NewFilterSelection()
	filter.SelectYear(c.Query("year"))
	filter.SelectCategory(category)

	items := h.catalogSvc.List(filter)

	c.JSON(http.StatusOK, dto.ListArtworksResponse{
		Items:      dto.ToArtworkResponses(items, h.labeler(c)),
		Total:      len(items),
		Category:   string(filter.Category),
		Year:       filter.Year,
		Validating: h.catalogSvc.IsValidating(),
	})
}

func (h *Handler) GetArtwork(c *gin.Context) {
	id, err := getArtworkID(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	v, err := h.catalogSvc.Get(id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtworkResponse(v, h.labeler(c)))
}

func (h *Handler) ListRelatedArtworks(c *gin.Context) {
	id, err := getArtworkID(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	related, err := h.catalogSvc.Related(id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := dto.ToArtworkResponses(related, h.labeler(c))
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// ============================================================================
// Catalog
// ============================================================================

func (h *Handler) GetYearHistogram(c *gin.Context) {
	c.JSON(http.StatusOK, dto.YearHistogramResponse{Years: h.catalogSvc.YearHistogram()})
}

func (h *Handler) GetTimeline(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TimelineResponse{Items: h.catalogSvc.YearBuckets()})
}

// ListCategories returns the categories present in the validated catalog,
// with "All" first.
func (h *Handler) ListCategories(c *gin.Context) {
	label := h.labeler(c)
	present := h.catalogSvc.Categories()

	items := make([]dto.CategoryResponse, 0, len(present)+1)
	for _, cat := range append([]domain.Category{domain.CategoryAll}, present...) {
		items = append(items, dto.CategoryResponse{Value: string(cat), Label: label(cat)})
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{Items: items})
}

func (h *Handler) GetCatalogStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogSvc.Status())
}

// ReloadCatalog re-reads the catalog source. With ?wait=true the response
// is sent once the validation pass has settled.
func (h *Handler) ReloadCatalog(c *gin.Context) {
	done, err := h.catalogSvc.Reload(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("catalog reload failed")
		mapDomainError(c, err)
		return
	}

	if c.Query("wait") == "true" {
		select {
		case <-done:
		case <-c.Request.Context().Done():
			return
		}
		c.JSON(http.StatusOK, h.catalogSvc.Status())
		return
	}

	c.JSON(http.StatusAccepted, h.catalogSvc.Status())
}

func getArtworkID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidArtworkID
	}
	return id, nil
}
