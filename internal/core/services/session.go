package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"portfolio-gallery-service/internal/core/domain"
	"portfolio-gallery-service/internal/core/viewer"
)

const defaultSessionTTL = 30 * time.Minute

type ModalAction string

const (
	ActionNextImage   ModalAction = "next-image"
	ActionPrevImage   ModalAction = "prev-image"
	ActionNextProject ModalAction = "next-project"
	ActionPrevProject ModalAction = "prev-project"
)

// Session is one visitor's gallery page: its filter selection and its
// detail viewer. Nothing here is persisted.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	filter   domain.FilterSelection
	doc      *viewer.Document
	keys     *viewer.KeyBus
	modal    *viewer.Modal
}

// SessionState is a read-only snapshot of a Session.
type SessionState struct {
	ID           uuid.UUID
	CreatedAt    time.Time
	LastSeenAt   time.Time
	Filter       domain.FilterSelection
	Modal        viewer.State
	Visible      []*domain.ValidatedArtwork
	Validating   bool
	ScrollLocked bool
	KeyListeners int
}

type SessionService struct {
	catalog *CatalogService
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewSessionService(catalog *CatalogService, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{
		catalog:  catalog,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (s *SessionService) Create(_ context.Context) *SessionState {
	now := s.now()
	doc := viewer.NewDocument()
	keys := viewer.NewKeyBus()
	sess := &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		lastSeen:  now,
		filter:    domain.NewFilterSelection(),
		doc:       doc,
		keys:      keys,
		modal:     viewer.NewModal(s.catalog, doc, keys),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	log.WithField("session_id", sess.ID).Debug("viewer session created")

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.snapshot(sess)
}

func (s *SessionService) Get(_ context.Context, id uuid.UUID) (*SessionState, error) {
	return s.with(id, func(*Session) error { return nil })
}

// Delete tears the session down, releasing anything its viewer holds.
func (s *SessionService) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}

	sess.mu.Lock()
	sess.modal.Teardown()
	sess.mu.Unlock()
	return nil
}

func (s *SessionService) SelectCategory(_ context.Context, id uuid.UUID, c domain.Category) (*SessionState, error) {
	return s.with(id, func(sess *Session) error {
		sess.filter.SelectCategory(c)
		return nil
	})
}

func (s *SessionService) SelectYear(_ context.Context, id uuid.UUID, year string) (*SessionState, error) {
	return s.with(id, func(sess *Session) error {
		sess.filter.SelectYear(year)
		return nil
	})
}

func (s *SessionService) Open(_ context.Context, id uuid.UUID, artworkID int) (*SessionState, error) {
	return s.with(id, func(sess *Session) error {
		p, err := s.catalog.Get(artworkID)
		if err != nil {
			return err
		}
		return sess.modal.OpenProject(p)
	})
}

func (s *SessionService) Close(_ context.Context, id uuid.UUID) (*SessionState, error) {
	return s.with(id, func(sess *Session) error {
		sess.modal.CloseProject()
		return nil
	})
}

func (s *SessionService) Navigate(_ context.Context, id uuid.UUID, action ModalAction) (*SessionState, error) {
	return s.with(id, func(sess *Session) error {
		switch action {
		case ActionNextImage:
			sess.modal.NextImage()
		case ActionPrevImage:
			sess.modal.PrevImage()
		case ActionNextProject:
			sess.modal.NextProject()
		case ActionPrevProject:
			sess.modal.PrevProject()
		default:
			return domain.ErrUnknownModalAction
		}
		return nil
	})
}

// SetImageIndex jumps to image k of the open project. Requests arrive from
// outside the process, so k is range-checked here before it reaches the
// viewer.
func (s *SessionService) SetImageIndex(_ context.Context, id uuid.UUID, k int) (*SessionState, error) {
	return s.with(id, func(sess *Session) error {
		if !sess.modal.IsOpen() {
			return domain.ErrModalClosed
		}
		if k < 0 || k >= len(sess.modal.CurrentProject().ValidImages) {
			return domain.ErrImageIndexOutOfRange
		}
		sess.modal.SetImageIndex(k)
		return nil
	})
}

// PressKey routes a keyboard event through the session's key bus. Events
// with no listener are dropped.
func (s *SessionService) PressKey(_ context.Context, id uuid.UUID, ev viewer.KeyEvent) (bool, *SessionState, error) {
	var handled bool
	state, err := s.with(id, func(sess *Session) error {
		handled = sess.keys.Dispatch(ev)
		return nil
	})
	return handled, state, err
}

// Sweep tears down sessions idle for longer than the TTL and returns how
// many were removed.
func (s *SessionService) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.mu.Lock()
		sess.modal.Teardown()
		sess.mu.Unlock()
	}
	if len(expired) > 0 {
		log.WithField("count", len(expired)).Info("expired viewer sessions removed")
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done, then tears down every
// remaining session.
func (s *SessionService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Shutdown()
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *SessionService) Shutdown() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[uuid.UUID]*Session)
	s.mu.Unlock()

	for _, sess := range all {
		sess.mu.Lock()
		sess.modal.Teardown()
		sess.mu.Unlock()
	}
}

func (s *SessionService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionService) with(id uuid.UUID, fn func(*Session) error) (*SessionState, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = s.now()
	if err := fn(sess); err != nil {
		return nil, err
	}
	return s.snapshot(sess), nil
}

// snapshot must be called with sess.mu held.
func (s *SessionService) snapshot(sess *Session) *SessionState {
	return &SessionState{
		ID:           sess.ID,
		CreatedAt:    sess.CreatedAt,
		LastSeenAt:   sess.lastSeen,
		Filter:       sess.filter,
		Modal:        sess.modal.State(),
		Visible:      s.catalog.List(sess.filter),
		Validating:   s.catalog.IsValidating(),
		ScrollLocked: sess.doc.ScrollLocked(),
		KeyListeners: sess.keys.Len(),
	}
}
