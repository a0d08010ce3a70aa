package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-gallery-service/internal/core/domain"
)

func TestTranslator(t *testing.T) {
	tr, err := NewTranslator("en")
	require.NoError(t, err)

	tests := []struct {
		lang string
		key  string
		want string
	}{
		{"", "category.painting", "Painting"},
		{"es", "category.painting", "Pintura"},
		{"es-MX", "category.mural_art", "Arte mural"},
		{"fr-CH, es;q=0.8, en;q=0.5", "viewer.close", "Cerrar"},
		{"de", "viewer.close", "Close"},
		{"not a tag!!", "viewer.close", "Close"},
		{"es", "missing.key", "missing.key"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Translate(tt.lang, tt.key))
		})
	}

	assert.ElementsMatch(t, []string{"en", "es"}, tr.Languages())
}

func TestNewTranslator_UnknownDefault(t *testing.T) {
	_, err := NewTranslator("fr")
	assert.Error(t, err)
}

func TestCategoryLabels(t *testing.T) {
	tr, err := NewTranslator("en")
	require.NoError(t, err)

	for _, c := range append([]domain.Category{domain.CategoryAll}, domain.Categories...) {
		key := c.LabelKey()
		assert.NotEqual(t, key, tr.Translate("es", key), "missing translation for %s", c)
	}
	assert.Equal(t, "category.workshop_illustration", domain.CategoryWorkshop.LabelKey())
}
