package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio-gallery-service/internal/core/domain"
	"portfolio-gallery-service/internal/core/services"
	"portfolio-gallery-service/internal/testutil"
)

func loadedCatalog(t *testing.T) *services.CatalogService {
	t.Helper()
	records := []*domain.Artwork{
		domain.NewImageArtwork(1, "Dunes", domain.CategoryPhotography, "2023", "/1/t.jpg", "/1/a.jpg", "/1/b.jpg"),
		domain.NewImageArtwork(2, "Ochre", domain.CategoryPainting, "2022", "/2/t.jpg", "/2/a.jpg"),
		domain.NewVideoArtwork(3, "Reel", domain.CategoryVideo, "2021", "", "abc123"),
	}
	records[1].Description = "Pigment on **linen**."

	source := new(testutil.MockCatalogSource)
	source.On("Load", mock.Anything).Return(records, nil)
	prober := testutil.ValidURIs("/1/t.jpg", "/1/a.jpg", "/1/b.jpg", "/2/t.jpg", "/2/a.jpg")

	svc := services.NewCatalogService(source, services.NewHydrator(prober))
	done, err := svc.Load(context.Background())
	require.NoError(t, err)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("catalog validation did not settle")
	}
	return svc
}

func press(t *testing.T, m model, msgs ...tea.KeyMsg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

var (
	keyEnter      = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc        = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown       = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft       = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight      = tea.KeyMsg{Type: tea.KeyRight}
	keyShiftLeft  = tea.KeyMsg{Type: tea.KeyShiftLeft}
	keyShiftRight = tea.KeyMsg{Type: tea.KeyShiftRight}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_OpenNavigateClose(t *testing.T) {
	m := newModel(loadedCatalog(t), nil, "", nil)
	require.Len(t, m.visible, 3)

	m = press(t, m, keyEnter)
	require.True(t, m.modal.IsOpen())
	assert.Equal(t, 1, m.modal.CurrentProject().ID)
	assert.True(t, m.doc.ScrollLocked())
	assert.Equal(t, 1, m.bus.Len())

	m = press(t, m, keyRight)
	assert.Equal(t, 1, m.modal.CurrentImageIndex())
	m = press(t, m, keyRight)
	assert.Equal(t, 0, m.modal.CurrentImageIndex())
	m = press(t, m, keyLeft)
	assert.Equal(t, 1, m.modal.CurrentImageIndex())

	m = press(t, m, keyShiftRight)
	assert.Equal(t, 2, m.modal.CurrentProject().ID)
	assert.Equal(t, 0, m.modal.CurrentImageIndex())
	assert.Contains(t, m.View(), "Ochre")

	m = press(t, m, keyShiftLeft, keyShiftLeft)
	assert.Equal(t, 3, m.modal.CurrentProject().ID)
	assert.Contains(t, m.View(), "abc123")

	m = press(t, m, keyEsc)
	assert.False(t, m.modal.IsOpen())
	assert.False(t, m.doc.ScrollLocked())
	assert.Equal(t, 0, m.bus.Len())
}

func TestModel_GridKeysIgnoredWhileOpen(t *testing.T) {
	m := newModel(loadedCatalog(t), nil, "", nil)

	m = press(t, m, keyEnter, keyDown, runes("c"))
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, domain.CategoryAll, m.filter.Category)
	assert.Equal(t, 1, m.modal.CurrentProject().ID)
}

func TestModel_Filters(t *testing.T) {
	m := newModel(loadedCatalog(t), nil, "", nil)

	m = press(t, m, runes("c"))
	assert.Equal(t, domain.CategoryPhotography, m.filter.Category)
	assert.Len(t, m.visible, 1)

	m = press(t, m, runes("y"))
	assert.Equal(t, "2023", m.filter.Year)
	assert.Equal(t, domain.CategoryAll, m.filter.Category)

	m = press(t, m, runes("y"))
	assert.Equal(t, "2022", m.filter.Year)
	require.Len(t, m.visible, 1)
	assert.Equal(t, 2, m.visible[0].ID)

	m = press(t, m, runes("a"))
	assert.Len(t, m.visible, 3)
}

func TestModel_QuitTearsDown(t *testing.T) {
	m := newModel(loadedCatalog(t), nil, "", nil)
	m = press(t, m, keyEnter)

	next, cmd := m.Update(runes("q"))
	m = next.(model)
	require.NotNil(t, cmd)
	assert.False(t, m.modal.IsOpen())
	assert.False(t, m.doc.ScrollLocked())
}

func TestNextOf(t *testing.T) {
	years := []string{"2023", "2022"}
	assert.Equal(t, "2023", nextOf(years, ""))
	assert.Equal(t, "2022", nextOf(years, "2023"))
	assert.Equal(t, "", nextOf(years, "2022"))
	assert.Equal(t, "", nextOf([]string{}, ""))
}

func TestModel_OpenFailureIsLogged(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	m := newModel(loadedCatalog(t), nil, "", nil)
	lock, err := m.doc.AcquireScrollLock()
	require.NoError(t, err)
	defer lock.Release()

	m = press(t, m, keyEnter)
	assert.False(t, m.modal.IsOpen())
	assert.Equal(t, 0, m.bus.Len())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.WarnLevel, entry.Level)
	assert.Equal(t, 1, entry.Data["artwork_id"])
	assert.ErrorIs(t, entry.Data[log.ErrorKey].(error), domain.ErrScrollLockHeld)
}
