// Package viewer holds the detail viewer of the gallery: a two-state
// machine (closed, open on a project at an image index) together with the
// page resources it borrows while open, the scroll lock and the keyboard
// subscription.
//
// A Modal is driven from a single event loop and is not safe for concurrent
// use; callers that share one across goroutines serialize access.
package viewer

import (
	"portfolio-gallery-service/internal/core/domain"
)

// CatalogProvider supplies the validated catalog that project navigation
// walks. It is read on every navigation so a re-validated catalog is picked
// up without reopening the viewer.
type CatalogProvider interface {
	Catalog() []*domain.ValidatedArtwork
}

// State is a snapshot of the modal.
type State struct {
	Open       bool
	Project    *domain.ValidatedArtwork
	ImageIndex int
}

type Modal struct {
	catalog CatalogProvider
	doc     *Document
	keys    *KeyBus

	project *domain.ValidatedArtwork
	index   int

	lock        *ScrollLock
	unsubscribe func()
}

func NewModal(catalog CatalogProvider, doc *Document, keys *KeyBus) *Modal {
	return &Modal{catalog: catalog, doc: doc, keys: keys}
}

func (m *Modal) IsOpen() bool {
	return m.project != nil
}

func (m *Modal) CurrentProject() *domain.ValidatedArtwork {
	return m.project
}

func (m *Modal) CurrentImageIndex() int {
	return m.index
}

func (m *Modal) State() State {
	return State{Open: m.IsOpen(), Project: m.project, ImageIndex: m.index}
}

// OpenProject shows p at its first image. Opening from the closed state
// acquires the scroll lock and the key subscription; opening while already
// open just switches project. A nil project is ignored.
func (m *Modal) OpenProject(p *domain.ValidatedArtwork) error {
	if p == nil {
		return nil
	}
	if !m.IsOpen() {
		lock, err := m.doc.AcquireScrollLock()
		if err != nil {
			return err
		}
		m.lock = lock
		m.unsubscribe = m.keys.Subscribe(m.HandleKey)
	}
	m.project = p
	m.index = 0
	return nil
}

// CloseProject returns to the closed state and releases everything the
// open state holds.
func (m *Modal) CloseProject() {
	if !m.IsOpen() {
		return
	}
	m.project = nil
	m.index = 0
	m.release()
}

// Teardown is the unmount path: it behaves like CloseProject and is safe to
// call in any state, any number of times.
func (m *Modal) Teardown() {
	m.project = nil
	m.index = 0
	m.release()
}

func (m *Modal) release() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	if m.lock != nil {
		m.lock.Release()
		m.lock = nil
	}
}

func (m *Modal) NextProject() {
	m.stepProject(1)
}

func (m *Modal) PrevProject() {
	m.stepProject(-1)
}

func (m *Modal) stepProject(delta int) {
	if !m.IsOpen() {
		return
	}
	items := m.catalog.Catalog()
	n := len(items)
	if n == 0 {
		return
	}

	cur := -1
	for i, it := range items {
		if it.ID == m.project.ID {
			cur = i
			break
		}
	}

	var next int
	switch {
	case cur >= 0:
		next = ((cur+delta)%n + n) % n
	case delta > 0:
		next = 0
	default:
		next = n - 1
	}

	m.project = items[next]
	m.index = 0
}

func (m *Modal) NextImage() {
	m.stepImage(1)
}

func (m *Modal) PrevImage() {
	m.stepImage(-1)
}

func (m *Modal) stepImage(delta int) {
	if !m.IsOpen() {
		return
	}
	n := len(m.project.ValidImages)
	if n <= 1 {
		return
	}
	m.index = ((m.index+delta)%n + n) % n
}

// SetImageIndex jumps straight to k. k is trusted to be in range.
func (m *Modal) SetImageIndex(k int) {
	if !m.IsOpen() {
		return
	}
	m.index = k
}

// HandleKey is the keyboard subscription installed while the modal is open.
func (m *Modal) HandleKey(ev KeyEvent) bool {
	if !m.IsOpen() {
		return false
	}
	switch ev.Key {
	case KeyEscape:
		m.CloseProject()
	case KeyArrowLeft:
		if ev.Shift {
			m.PrevProject()
		} else {
			m.PrevImage()
		}
	case KeyArrowRight:
		if ev.Shift {
			m.NextProject()
		} else {
			m.NextImage()
		}
	default:
		return false
	}
	return true
}
