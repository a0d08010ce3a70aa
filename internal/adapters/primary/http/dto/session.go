package dto

import (
	"time"

	"github.com/google/uuid"

	"portfolio-gallery-service/internal/core/services"
)

// ============================================================================
// Request DTOs
// ============================================================================

// SelectCategoryRequest selects a category; empty or "All" clears it.
type SelectCategoryRequest struct {
	Category string `json:"category"`
}

// SelectYearRequest selects a start year; empty clears it.
type SelectYearRequest struct {
	Year string `json:"year"`
}

type OpenModalRequest struct {
	ArtworkID int `json:"artwork_id" binding:"required,min=1"`
}

type SetImageIndexRequest struct {
	Index *int `json:"index" binding:"required"`
}

// KeyPressRequest is a keyboard event forwarded by the front-end.
type KeyPressRequest struct {
	Key   string `json:"key" binding:"required"`
	Shift bool   `json:"shift"`
}

// ============================================================================
// Response DTOs
// ============================================================================

type FilterResponse struct {
	Category string `json:"category"`
	Year     string `json:"year,omitempty"`
}

// ModalResponse represents the viewer state. Project is nil while closed.
type ModalResponse struct {
	Open         bool             `json:"open"`
	Project      *ArtworkResponse `json:"project,omitempty"`
	ImageIndex   int              `json:"image_index"`
	ImageCount   int              `json:"image_count"`
	CurrentImage string           `json:"current_image,omitempty"`
}

type SessionResponse struct {
	ID           uuid.UUID         `json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	LastSeenAt   time.Time         `json:"last_seen_at"`
	Filter       FilterResponse    `json:"filter"`
	Modal        ModalResponse     `json:"modal"`
	Visible      []ArtworkResponse `json:"visible"`
	Validating   bool              `json:"validating"`
	ScrollLocked bool              `json:"scroll_locked"`
	KeyListeners int               `json:"key_listeners"`
}

type KeyPressResponse struct {
	Handled bool            `json:"handled"`
	Session SessionResponse `json:"session"`
}

// ============================================================================
// Mappers
// ============================================================================

func ToSessionResponse(st *services.SessionState, label Labeler) SessionResponse {
	modal := ModalResponse{
		Open:       st.Modal.Open,
		ImageIndex: st.Modal.ImageIndex,
	}
	if p := st.Modal.Project; p != nil {
		resp := ToArtworkResponse(p, label)
		modal.Project = &resp
		modal.ImageCount = len(p.ValidImages)
		if st.Modal.ImageIndex >= 0 && st.Modal.ImageIndex < len(p.ValidImages) {
			modal.CurrentImage = p.ValidImages[st.Modal.ImageIndex]
		}
	}

	return SessionResponse{
		ID:         st.ID,
		CreatedAt:  st.CreatedAt,
		LastSeenAt: st.LastSeenAt,
		Filter: FilterResponse{
			Category: string(st.Filter.Category),
			Year:     st.Filter.Year,
		},
		Modal:        modal,
		Visible:      ToArtworkResponses(st.Visible, label),
		Validating:   st.Validating,
		ScrollLocked: st.ScrollLocked,
		KeyListeners: st.KeyListeners,
	}
}
