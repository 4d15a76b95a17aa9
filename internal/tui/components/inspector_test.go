package components

import (
	"testing"

	"github.com/mmcdole/artic/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestInspector_View(t *testing.T) {
	art := &domain.Artwork{
		ID:                  16568,
		Title:               "Water Lilies",
		ArtistDisplay:       "Claude Monet\nFrench, 1840-1926",
		MainReferenceNumber: "1933.1157",
		DateDisplay:         "1906",
	}

	i := NewInspector()
	i.SetSize(100, 30)
	i.SetArtwork(art, "")

	view := i.View()
	assert.Contains(t, view, "Water Lilies")
	assert.Contains(t, view, "Artist: Claude Monet")
	assert.Contains(t, view, "French, 1840-1926")
	assert.Contains(t, view, "Main Reference Number")
	assert.Contains(t, view, "1933.1157")
	assert.Contains(t, view, NoImageText)
	assert.NotContains(t, view, "Dimensions")

	i.SetArtwork(art, "https://img.test/abc/full/845,325/0/default.jpg")
	assert.NotContains(t, i.View(), NoImageText)
	assert.Contains(t, i.View(), "https://img.test/abc")
}

func TestInspector_Empty(t *testing.T) {
	i := NewInspector()
	i.SetSize(60, 20)
	assert.False(t, i.HasArtwork())
	assert.Contains(t, i.View(), "No artwork selected")
}

func TestPagination_View(t *testing.T) {
	view := Pagination{Label: "2 of 5", CanPrev: true, CanNext: true}.View()
	assert.Contains(t, view, "◀ Prev (p)")
	assert.Contains(t, view, "2 of 5")
	assert.Contains(t, view, "Next (n) ▶")
}
