package viewer

import (
	"sync"

	"portfolio-gallery-service/internal/core/domain"
)

// Document is the page-wide state a viewer can borrow while it is open.
// Today that is only background scroll suppression.
type Document struct {
	mu           sync.Mutex
	scrollLocked bool
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) ScrollLocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scrollLocked
}

// AcquireScrollLock suppresses background scrolling until the returned
// handle is released. Only one holder at a time.
func (d *Document) AcquireScrollLock() (*ScrollLock, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.scrollLocked {
		return nil, domain.ErrScrollLockHeld
	}
	d.scrollLocked = true
	return &ScrollLock{doc: d}, nil
}

// ScrollLock is an owned scroll-suppression handle.
type ScrollLock struct {
	doc  *Document
	once sync.Once
}

// Release restores scrolling. Safe to call more than once.
func (l *ScrollLock) Release() {
	if l == nil {
		return
	}
	l.once.Do(func() {
		l.doc.mu.Lock()
		l.doc.scrollLocked = false
		l.doc.mu.Unlock()
	})
}
