package services

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"portfolio-gallery-service/internal/core/domain"
	"portfolio-gallery-service/internal/core/ports/output"
)

// CatalogService owns the authored dataset and its validated view.
type CatalogService struct {
	source   ports.CatalogSource
	hydrator *Hydrator

	// loadMu serializes Load so passes start in the order sources were read.
	loadMu sync.Mutex

	mu      sync.RWMutex
	records []*domain.Artwork
}

func NewCatalogService(source ports.CatalogSource, hydrator *Hydrator) *CatalogService {
	return &CatalogService{source: source, hydrator: hydrator}
}

// CatalogStatus describes the catalog for health and status endpoints.
type CatalogStatus struct {
	Source     string `json:"source"`
	Records    int    `json:"records"`
	Retained   int    `json:"retained"`
	Validating bool   `json:"validating"`
	Generation uint64 `json:"generation"`
}

// Load reads the dataset from the source, checks it and starts a fresh
// validation pass. The returned channel closes when that pass settles.
func (s *CatalogService) Load(ctx context.Context) (<-chan struct{}, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	records, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", s.source.Name(), err)
	}
	if err := domain.ValidateCatalog(records); err != nil {
		return nil, fmt.Errorf("catalog from %s: %w", s.source.Name(), err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"source":  s.source.Name(),
		"records": len(records),
	}).Info("catalog loaded")

	// The pass outlives the request that triggered it.
	return s.hydrator.Hydrate(context.WithoutCancel(ctx), records), nil
}

// Reload re-reads the source and re-validates. A pass still running from an
// earlier load is superseded.
func (s *CatalogService) Reload(ctx context.Context) (<-chan struct{}, error) {
	return s.Load(ctx)
}

// Records returns the authored dataset.
func (s *CatalogService) Records() []*domain.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Catalog returns the validated catalog.
func (s *CatalogService) Catalog() []*domain.ValidatedArtwork {
	return s.hydrator.Catalog()
}

func (s *CatalogService) IsValidating() bool {
	return s.hydrator.IsValidating()
}

func (s *CatalogService) List(filter domain.FilterSelection) []*domain.ValidatedArtwork {
	return filter.Apply(s.hydrator.Catalog())
}

func (s *CatalogService) Get(id int) (*domain.ValidatedArtwork, error) {
	v, _, err := s.lookup(id)
	return v, err
}

func (s *CatalogService) Related(id int) ([]*domain.ValidatedArtwork, error) {
	v, catalog, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return RelatedProjects(v, catalog), nil
}

// lookup finds id in the validated catalog. A miss while nothing is loaded
// or while a pass is still running is reported as such, since the record
// may yet appear.
func (s *CatalogService) lookup(id int) (*domain.ValidatedArtwork, []*domain.ValidatedArtwork, error) {
	catalog := s.hydrator.Catalog()
	for _, v := range catalog {
		if v.ID == id {
			return v, catalog, nil
		}
	}
	switch {
	case len(s.Records()) == 0:
		return nil, nil, domain.ErrCatalogEmpty
	case s.hydrator.IsValidating():
		return nil, nil, domain.ErrCatalogStillHydrating
	}
	return nil, nil, domain.ErrArtworkNotFound
}

func (s *CatalogService) YearHistogram() map[string]int {
	return YearHistogram(s.hydrator.Catalog())
}

func (s *CatalogService) YearBuckets() []YearBucket {
	return YearBuckets(s.hydrator.Catalog())
}

func (s *CatalogService) Categories() []domain.Category {
	return UniqueCategories(s.hydrator.Catalog())
}

func (s *CatalogService) Status() CatalogStatus {
	return CatalogStatus{
		Source:     s.source.Name(),
		Records:    len(s.Records()),
		Retained:   len(s.hydrator.Catalog()),
		Validating: s.hydrator.IsValidating(),
		Generation: s.hydrator.Generation(),
	}
}
