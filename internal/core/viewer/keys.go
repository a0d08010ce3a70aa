package viewer

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"portfolio-gallery-service/internal/core/domain"
)

type Key string

const (
	KeyEscape     Key = "Escape"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// ParseKey accepts the DOM key names and a few terminal spellings.
func ParseKey(s string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "escape", "esc":
		return KeyEscape, nil
	case "arrowleft", "left":
		return KeyArrowLeft, nil
	case "arrowright", "right":
		return KeyArrowRight, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownKey, s)
}

type KeyEvent struct {
	Key   Key
	Shift bool
}

// KeyHandler reports whether it consumed the event.
type KeyHandler func(KeyEvent) bool

// KeyBus fans keyboard events out to the current subscribers. Handlers are
// invoked outside the bus lock so a handler may unsubscribe itself.
type KeyBus struct {
	mu       sync.Mutex
	next     int
	handlers map[int]KeyHandler
}

func NewKeyBus() *KeyBus {
	return &KeyBus{handlers: make(map[int]KeyHandler)}
}

// Subscribe registers h and returns the func that removes it. The returned
// func is idempotent.
func (b *KeyBus) Subscribe(h KeyHandler) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.handlers[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

// Dispatch delivers ev in subscription order and reports whether any
// handler consumed it.
func (b *KeyBus) Dispatch(ev KeyEvent) bool {
	b.mu.Lock()
	ids := make([]int, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	hs := make([]KeyHandler, 0, len(ids))
	for _, id := range ids {
		hs = append(hs, b.handlers[id])
	}
	b.mu.Unlock()

	handled := false
	for _, h := range hs {
		if h(ev) {
			handled = true
		}
	}
	return handled
}

// Len is the number of live subscriptions.
func (b *KeyBus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}
