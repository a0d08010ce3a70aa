package services

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"portfolio-gallery-service/internal/core/domain"
	"portfolio-gallery-service/internal/core/ports/output"
)

const defaultProbeConcurrency = 8

// Hydrator turns the authored dataset into the validated catalog by probing
// every media URI. Each pass is tagged with a generation; only the result of
// the current generation is ever published.
type Hydrator struct {
	prober       ports.ImageProber
	concurrency  int
	probeTimeout time.Duration

	mu         sync.RWMutex
	generation uint64
	validating bool
	closed     bool
	cancel     context.CancelFunc
	catalog    []*domain.ValidatedArtwork
}

type HydratorOption func(*Hydrator)

// WithConcurrency bounds the number of probes in flight.
func WithConcurrency(n int) HydratorOption {
	return func(h *Hydrator) {
		if n > 0 {
			h.concurrency = n
		}
	}
}

// WithProbeTimeout bounds each probe; a probe that times out counts as
// invalid. Zero disables the bound.
func WithProbeTimeout(d time.Duration) HydratorOption {
	return func(h *Hydrator) {
		h.probeTimeout = d
	}
}

func NewHydrator(prober ports.ImageProber, opts ...HydratorOption) *Hydrator {
	h := &Hydrator{
		prober:      prober,
		concurrency: defaultProbeConcurrency,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hydrate starts a fresh pass over records and returns immediately. The
// previous result set is discarded and any pass still in flight is
// superseded. The returned channel is closed once this pass has either been
// published or discarded.
func (h *Hydrator) Hydrate(ctx context.Context, records []*domain.Artwork) <-chan struct{} {
	done := make(chan struct{})

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(done)
		return done
	}
	if h.cancel != nil {
		h.cancel()
	}
	h.generation++
	gen := h.generation
	passCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.validating = true
	h.catalog = nil
	h.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		result := h.Validate(passCtx, records)

		h.mu.Lock()
		defer h.mu.Unlock()
		if h.closed || gen != h.generation {
			log.WithFields(log.Fields{
				"generation": gen,
				"current":    h.generation,
			}).Debug("discarding stale catalog validation")
			return
		}
		h.catalog = result
		h.validating = false
		h.cancel = nil
		log.WithFields(log.Fields{
			"generation": gen,
			"records":    len(records),
			"retained":   len(result),
		}).Info("catalog validation completed")
	}()

	return done
}

// Validate runs one synchronous pass and returns the retained records in
// input order. Video records are never probed.
func (h *Hydrator) Validate(ctx context.Context, records []*domain.Artwork) []*domain.ValidatedArtwork {
	uris := collectURIs(records)
	results := make([]bool, len(uris))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)
	for i, uri := range uris {
		g.Go(func() error {
			results[i] = h.probe(gctx, uri)
			return nil
		})
	}
	_ = g.Wait()

	valid := make(map[string]bool, len(uris))
	for i, uri := range uris {
		valid[uri] = results[i]
	}

	out := make([]*domain.ValidatedArtwork, 0, len(records))
	for _, a := range records {
		v := validateRecord(a, valid)
		if v.Retained() {
			out = append(out, v)
		} else {
			log.WithFields(log.Fields{
				"artwork_id": a.ID,
				"title":      a.Title,
			}).Debug("dropping artwork without usable media")
		}
	}
	return out
}

func (h *Hydrator) probe(ctx context.Context, uri string) bool {
	if uri == "" {
		return false
	}
	if h.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.probeTimeout)
		defer cancel()
	}

	res := make(chan bool, 1)
	go func() { res <- h.prober.Probe(ctx, uri) }()
	select {
	case ok := <-res:
		return ok
	case <-ctx.Done():
		return false
	}
}

// collectURIs returns every distinct URI that needs probing, so a thumbnail
// that is also a gallery image is fetched once per pass.
func collectURIs(records []*domain.Artwork) []string {
	seen := make(map[string]struct{})
	var uris []string
	add := func(uri string) {
		if uri == "" {
			return
		}
		if _, ok := seen[uri]; ok {
			return
		}
		seen[uri] = struct{}{}
		uris = append(uris, uri)
	}
	for _, a := range records {
		if a.IsVideo() {
			continue
		}
		add(a.Thumbnail)
		for _, img := range a.Images() {
			add(img)
		}
	}
	return uris
}

func validateRecord(a *domain.Artwork, valid map[string]bool) *domain.ValidatedArtwork {
	v := &domain.ValidatedArtwork{Artwork: *a, ValidImages: []string{}}
	if a.IsVideo() {
		v.ValidThumbnail = a.Thumbnail
		return v
	}
	for _, img := range a.Images() {
		if valid[img] {
			v.ValidImages = append(v.ValidImages, img)
		}
	}
	switch {
	case valid[a.Thumbnail]:
		v.ValidThumbnail = a.Thumbnail
	case len(v.ValidImages) > 0:
		v.ValidThumbnail = v.ValidImages[0]
	}
	return v
}

func (h *Hydrator) IsValidating() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.validating
}

func (h *Hydrator) Generation() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.generation
}

// Catalog returns the last published validated catalog. It is empty while
// the first pass is running.
func (h *Hydrator) Catalog() []*domain.ValidatedArtwork {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*domain.ValidatedArtwork, len(h.catalog))
	copy(out, h.catalog)
	return out
}

// Close tears the hydrator down. A pass still in flight is cancelled and its
// result discarded; later Hydrate calls are no-ops.
func (h *Hydrator) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	h.generation++
	h.validating = false
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}
