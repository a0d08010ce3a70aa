package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-gallery-service/internal/core/domain"
)

type fixedCatalog []*domain.ValidatedArtwork

func (c fixedCatalog) Catalog() []*domain.ValidatedArtwork { return c }

func project(id int, images ...string) *domain.ValidatedArtwork {
	a := domain.NewImageArtwork(id, "project", domain.CategoryPainting, "2022", "", images...)
	return &domain.ValidatedArtwork{Artwork: *a, ValidImages: images}
}

func newTestModal(items ...*domain.ValidatedArtwork) (*Modal, *Document, *KeyBus) {
	doc := NewDocument()
	keys := NewKeyBus()
	return NewModal(fixedCatalog(items), doc, keys), doc, keys
}

func TestModal_OpenAndClose(t *testing.T) {
	p := project(1, "/a.jpg", "/b.jpg")
	m, doc, keys := newTestModal(p)

	assert.False(t, m.IsOpen())
	assert.Equal(t, 0, keys.Len())

	require.NoError(t, m.OpenProject(p))
	assert.True(t, m.IsOpen())
	assert.Same(t, p, m.CurrentProject())
	assert.Equal(t, 0, m.CurrentImageIndex())
	assert.True(t, doc.ScrollLocked())
	assert.Equal(t, 1, keys.Len())

	m.CloseProject()
	assert.False(t, m.IsOpen())
	assert.Nil(t, m.CurrentProject())
	assert.Equal(t, 0, m.CurrentImageIndex())
	assert.False(t, doc.ScrollLocked())
	assert.Equal(t, 0, keys.Len())
}

func TestModal_OpenWhileOpenKeepsSingleSubscription(t *testing.T) {
	a, b := project(1, "/a.jpg", "/b.jpg"), project(2, "/c.jpg")
	m, doc, keys := newTestModal(a, b)

	require.NoError(t, m.OpenProject(a))
	m.NextImage()
	require.NoError(t, m.OpenProject(b))

	assert.Same(t, b, m.CurrentProject())
	assert.Equal(t, 0, m.CurrentImageIndex())
	assert.Equal(t, 1, keys.Len())
	assert.True(t, doc.ScrollLocked())
}

func TestModal_OpenFailsWhenScrollLockHeld(t *testing.T) {
	p := project(1, "/a.jpg")
	m, doc, keys := newTestModal(p)

	other, err := doc.AcquireScrollLock()
	require.NoError(t, err)

	assert.ErrorIs(t, m.OpenProject(p), domain.ErrScrollLockHeld)
	assert.False(t, m.IsOpen())
	assert.Equal(t, 0, keys.Len())

	other.Release()
	assert.NoError(t, m.OpenProject(p))
}

func TestModal_TeardownReleasesResources(t *testing.T) {
	p := project(1, "/a.jpg")
	m, doc, keys := newTestModal(p)

	require.NoError(t, m.OpenProject(p))
	m.Teardown()
	m.Teardown()

	assert.False(t, m.IsOpen())
	assert.False(t, doc.ScrollLocked())
	assert.Equal(t, 0, keys.Len())
}

func TestModal_NextImageWraps(t *testing.T) {
	p := project(1, "/a.jpg", "/b.jpg", "/c.jpg")
	m, _, _ := newTestModal(p)
	require.NoError(t, m.OpenProject(p))

	m.SetImageIndex(2)
	m.NextImage()
	assert.Equal(t, 0, m.CurrentImageIndex())

	m.PrevImage()
	assert.Equal(t, 2, m.CurrentImageIndex())
}

func TestModal_SingleImageIsStable(t *testing.T) {
	p := project(1, "/a.jpg")
	m, _, _ := newTestModal(p)
	require.NoError(t, m.OpenProject(p))

	m.NextImage()
	assert.Equal(t, 0, m.CurrentImageIndex())
	m.PrevImage()
	assert.Equal(t, 0, m.CurrentImageIndex())
}

func TestModal_NoImagesIsStable(t *testing.T) {
	p := project(1)
	m, _, _ := newTestModal(p)
	require.NoError(t, m.OpenProject(p))

	m.NextImage()
	m.PrevImage()
	assert.Equal(t, 0, m.CurrentImageIndex())
}

func TestModal_PrevProjectFromFirstWrapsToLast(t *testing.T) {
	a, b, c := project(1, "/a.jpg", "/a2.jpg"), project(2, "/b.jpg"), project(3, "/c.jpg")
	m, _, _ := newTestModal(a, b, c)

	require.NoError(t, m.OpenProject(a))
	m.NextImage()
	m.PrevProject()

	assert.Equal(t, 3, m.CurrentProject().ID)
	assert.Equal(t, 0, m.CurrentImageIndex())
}

func TestModal_ProjectNavigationCycles(t *testing.T) {
	items := []*domain.ValidatedArtwork{
		project(1, "/1.jpg"), project(2, "/2.jpg"), project(3, "/3.jpg"), project(4, "/4.jpg"),
	}
	m, _, _ := newTestModal(items...)

	for _, start := range items {
		require.NoError(t, m.OpenProject(start))
		for range items {
			m.NextProject()
			assert.Equal(t, 0, m.CurrentImageIndex())
		}
		assert.Equal(t, start.ID, m.CurrentProject().ID)

		for range items {
			m.PrevProject()
		}
		assert.Equal(t, start.ID, m.CurrentProject().ID)
	}
}

func TestModal_EmptyCatalogNavigationIsNoop(t *testing.T) {
	p := project(7, "/a.jpg", "/b.jpg")
	m, _, _ := newTestModal()

	require.NoError(t, m.OpenProject(p))
	m.NextProject()
	m.PrevProject()

	assert.Same(t, p, m.CurrentProject())
}

func TestModal_ProjectMissingFromCatalog(t *testing.T) {
	a, b, c := project(1, "/a.jpg"), project(2, "/b.jpg"), project(3, "/c.jpg")
	stray := project(99, "/x.jpg")
	m, _, _ := newTestModal(a, b, c)

	require.NoError(t, m.OpenProject(stray))
	m.NextProject()
	assert.Equal(t, 1, m.CurrentProject().ID)

	require.NoError(t, m.OpenProject(stray))
	m.PrevProject()
	assert.Equal(t, 3, m.CurrentProject().ID)
}

func TestModal_ClosedOperationsAreNoops(t *testing.T) {
	m, doc, _ := newTestModal(project(1, "/a.jpg", "/b.jpg"))

	m.NextProject()
	m.PrevProject()
	m.NextImage()
	m.PrevImage()
	m.SetImageIndex(1)
	m.CloseProject()

	assert.False(t, m.IsOpen())
	assert.Equal(t, 0, m.CurrentImageIndex())
	assert.False(t, doc.ScrollLocked())
	assert.NoError(t, m.OpenProject(nil))
	assert.False(t, m.IsOpen())
}

func TestModal_KeyboardContract(t *testing.T) {
	a := project(1, "/a1.jpg", "/a2.jpg", "/a3.jpg")
	b := project(2, "/b1.jpg")
	c := project(3, "/c1.jpg")
	m, doc, keys := newTestModal(a, b, c)

	assert.False(t, keys.Dispatch(KeyEvent{Key: KeyArrowRight}), "no listener while closed")

	require.NoError(t, m.OpenProject(a))

	assert.True(t, keys.Dispatch(KeyEvent{Key: KeyArrowRight}))
	assert.Equal(t, 1, m.CurrentImageIndex())

	keys.Dispatch(KeyEvent{Key: KeyArrowLeft})
	keys.Dispatch(KeyEvent{Key: KeyArrowLeft})
	assert.Equal(t, 2, m.CurrentImageIndex())

	keys.Dispatch(KeyEvent{Key: KeyArrowRight, Shift: true})
	assert.Equal(t, 2, m.CurrentProject().ID)
	assert.Equal(t, 0, m.CurrentImageIndex())

	keys.Dispatch(KeyEvent{Key: KeyArrowLeft, Shift: true})
	keys.Dispatch(KeyEvent{Key: KeyArrowLeft, Shift: true})
	assert.Equal(t, 3, m.CurrentProject().ID)

	assert.False(t, keys.Dispatch(KeyEvent{Key: Key("Enter")}))

	keys.Dispatch(KeyEvent{Key: KeyEscape})
	assert.False(t, m.IsOpen())
	assert.False(t, doc.ScrollLocked())
	assert.Equal(t, 0, keys.Len())
}
