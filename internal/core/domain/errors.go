package domain

import "errors"

// ============================================================================
// Catalog Errors
// ============================================================================

// Not found errors
var (
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrCatalogEmpty    = errors.New("catalog has not been loaded")
)

// Validation errors
var (
	ErrInvalidArtworkID = errors.New("artwork id must be a positive integer")
	ErrDuplicateID      = errors.New("artwork id is not unique")
	ErrMissingTitle     = errors.New("artwork title is required")
	ErrUnknownCategory  = errors.New("unknown artwork category")
	ErrInvalidYear      = errors.New("year must be YYYY or YYYY-YYYY")
	ErrMissingMedia     = errors.New("artwork media is required")
	ErrMissingVideoID   = errors.New("video artwork requires a video id")
	ErrUnknownMediaType = errors.New("unknown media type")
)

// ============================================================================
// Viewer Errors
// ============================================================================

var (
	ErrSessionNotFound       = errors.New("viewer session not found")
	ErrInvalidSessionID      = errors.New("invalid session id")
	ErrModalClosed           = errors.New("no project is open")
	ErrImageIndexOutOfRange  = errors.New("image index out of range")
	ErrUnknownModalAction    = errors.New("unknown modal action")
	ErrUnknownKey            = errors.New("unknown key")
	ErrScrollLockHeld        = errors.New("scroll lock is already held")
	ErrCatalogStillHydrating = errors.New("catalog validation in progress")
)

// ============================================================================
// Source Errors
// ============================================================================

var (
	ErrUnknownCatalogSource = errors.New("unknown catalog source")
	ErrSourceUnavailable    = errors.New("catalog source unavailable")
)
