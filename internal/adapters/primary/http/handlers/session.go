package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"portfolio-gallery-service/internal/adapters/primary/http/dto"
	"portfolio-gallery-service/internal/core/domain"
	"portfolio-gallery-service/internal/core/services"
	"portfolio-gallery-service/internal/core/viewer"
)

// ============================================================================
// Viewer Sessions
// ============================================================================

func (h *Handler) CreateSession(c *gin.Context) {
	st := h.sessionSvc.Create(c.Request.Context())
	c.JSON(http.StatusCreated, dto.ToSessionResponse(st, h.labeler(c)))
}

func (h *Handler) GetSession(c *gin.Context) {
	id, err := getSessionID(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	st, err := h.sessionSvc.Get(c.Request.Context(), id)
	h.respondSession(c, st, err)
}

func (h *Handler) DeleteSession(c *gin.Context) {
	id, err := getSessionID(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	if err := h.sessionSvc.Delete(c.Request.Context(), id); err != nil {
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ============================================================================
// Session Filter
// ============================================================================

func (h *Handler) SelectCategory(c *gin.Context) {
	id, err := getSessionID(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var req dto.SelectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	st, err := h.sessionSvc.SelectCategory(c.Request.Context(), id, category)
	h.respondSession(c, st, err)
}

func (h *Handler) SelectYear(c *gin.Context) {
	id, err := getSessionID(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var req dto.SelectYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.sessionSvc.SelectYear(c.Request.Context(), id, req.Year)
	h.respondSession(c, st, err)
}

// ============================================================================
// Session Modal
// ============================================================================

func (h *Handler) OpenModal(c *gin.Context) {
	id, err := getSessionID(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var req dto.OpenModalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.sessionSvc.Open(c.Request.Context(), id, req.ArtworkID)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"session_id": id,
			"artwork_id": req.ArtworkID,
		}).Warn("open project failed")
	}
	h.respondSession(c, st, err)
}

func (h *Handler) CloseModal(c *gin.Context) {
	id, err := getSessionID(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	st, err := h.sessionSvc.Close(c.Request.Context(), id)
	h.respondSession(c, st, err)
}

// NavigateModal handles next-image, prev-image, next-project and
// prev-project.
func (h *Handler) NavigateModal(c *gin.Context) {
	id, err := getSessionID(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	action := services.ModalAction(c.Param("action"))
	st, err := h.sessionSvc.Navigate(c.Request.Context(), id, action)
	h.respondSession(c, st, err)
}

func (h *Handler) SetImageIndex(c *gin.Context) {
	id, err := getSessionID(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var req dto.SetImageIndexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.sessionSvc.SetImageIndex(c.Request.Context(), id, *req.Index)
	h.respondSession(c, st, err)
}

func (h *Handler) PressKey(c *gin.Context) {
	id, err := getSessionID(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var req dto.KeyPressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key, err := viewer.ParseKey(req.Key)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	handled, st, err := h.sessionSvc.PressKey(c.Request.Context(), id, viewer.KeyEvent{Key: key, Shift: req.Shift})
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.KeyPressResponse{
		Handled: handled,
		Session: dto.ToSessionResponse(st, h.labeler(c)),
	})
}

func (h *Handler) respondSession(c *gin.Context, st *services.SessionState, err error) {
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(st, h.labeler(c)))
}

func getSessionID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domain.ErrInvalidSessionID
	}
	return id, nil
}
