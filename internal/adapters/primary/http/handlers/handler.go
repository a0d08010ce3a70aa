package handlers

import (
	"portfolio-gallery-service/internal/adapters/primary/http/dto"
	"portfolio-gallery-service/internal/core/domain"
	ports "portfolio-gallery-service/internal/core/ports/output"
	"portfolio-gallery-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalogSvc *services.CatalogService
	sessionSvc *services.SessionService
	translator ports.Translator
}

func New(
	catalogSvc *services.CatalogService,
	sessionSvc *services.SessionService,
	translator ports.Translator,
) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		sessionSvc: sessionSvc,
		translator: translator,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Artworks
	r.GET("/artworks", h.ListArtworks)
	r.GET("/artworks/:id", h.GetArtwork)
	r.GET("/artworks/:id/related", h.ListRelatedArtworks)

	// Catalog
	r.GET("/catalog/years", h.GetYearHistogram)
	r.GET("/catalog/timeline", h.GetTimeline)
	r.GET("/catalog/categories", h.ListCategories)
	r.GET("/catalog/status", h.GetCatalogStatus)
	r.POST("/catalog/reload", h.ReloadCatalog)

	// Viewer Sessions
	r.POST("/sessions", h.CreateSession)
	r.GET("/sessions/:id", h.GetSession)
	r.DELETE("/sessions/:id", h.DeleteSession)

	// Session Filter
	r.PUT("/sessions/:id/filter/category", h.SelectCategory)
	r.PUT("/sessions/:id/filter/year", h.SelectYear)

	// Session Modal
	r.POST("/sessions/:id/modal/open", h.OpenModal)
	r.POST("/sessions/:id/modal/close", h.CloseModal)
	r.POST("/sessions/:id/modal/:action", h.NavigateModal)
	r.PUT("/sessions/:id/modal/image-index", h.SetImageIndex)
	r.POST("/sessions/:id/keys", h.PressKey)
}

// labeler translates category labels into the language the request asked
// for, via ?lang= or Accept-Language.
func (h *Handler) labeler(c *gin.Context) dto.Labeler {
	lang := c.Query("lang")
	if lang == "" {
		lang = c.GetHeader("Accept-Language")
	}
	return func(cat domain.Category) string {
		return h.translator.Translate(lang, cat.LabelKey())
	}
}
