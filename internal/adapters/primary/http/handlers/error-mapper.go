package handlers

import (
	"errors"
	"net/http"

	"portfolio-gallery-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrArtworkNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrModalClosed),
		errors.Is(err, domain.ErrScrollLockHeld):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidArtworkID),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrUnknownModalAction),
		errors.Is(err, domain.ErrUnknownKey),
		errors.Is(err, domain.ErrImageIndexOutOfRange),
		errors.Is(err, domain.ErrInvalidSessionID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrCatalogEmpty),
		errors.Is(err, domain.ErrCatalogStillHydrating),
		errors.Is(err, domain.ErrSourceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
