package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolio-gallery-service/internal/core/domain"
)

// MockCatalogSource is a mock of CatalogSource.
type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) Load(ctx context.Context) ([]*domain.Artwork, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artwork), args.Error(1)
}

func (m *MockCatalogSource) Name() string {
	return "mock"
}

// MockImageProber is a mock of ImageProber.
type MockImageProber struct {
	mock.Mock
}

func (m *MockImageProber) Probe(ctx context.Context, uri string) bool {
	args := m.Called(ctx, uri)
	return args.Bool(0)
}

// ProbeFunc adapts a plain function to ImageProber.
type ProbeFunc func(ctx context.Context, uri string) bool

func (f ProbeFunc) Probe(ctx context.Context, uri string) bool {
	return f(ctx, uri)
}

// ValidURIs returns a prober that accepts exactly the given URIs.
func ValidURIs(uris ...string) ProbeFunc {
	ok := make(map[string]bool, len(uris))
	for _, u := range uris {
		ok[u] = true
	}
	return func(_ context.Context, uri string) bool {
		return ok[uri]
	}
}

// MockTranslator is a mock of Translator.
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(lang, key string) string {
	args := m.Called(lang, key)
	return args.String(0)
}

func (m *MockTranslator) Languages() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
