package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/artic/internal/adapter/source/artic"
	"github.com/mmcdole/artic/internal/comment"
	"github.com/mmcdole/artic/internal/domain"
	"github.com/mmcdole/artic/internal/gallery"
	"github.com/mmcdole/artic/internal/tui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArtworks struct {
	page    *domain.ArtworkPage
	records map[int]*domain.Artwork
	plans   []domain.FetchPlan
}

func (f *fakeArtworks) FetchPage(_ context.Context, _ string, plan domain.FetchPlan) (*domain.ArtworkPage, error) {
	f.plans = append(f.plans, plan)
	return f.page, nil
}

func (f *fakeArtworks) FetchArtwork(_ context.Context, id int) (*domain.Artwork, error) {
	return f.records[id], nil
}

type fakeImages struct {
	opened []int
}

func (f *fakeImages) URL(art domain.Artwork, size artic.ImageSize) string {
	return artic.ImageURL("https://img.test/iiif", art.ImageID, size)
}

func (f *fakeImages) Open(art domain.Artwork, _ artic.ImageSize) error {
	f.opened = append(f.opened, art.ID)
	return nil
}

func testArtworks() *fakeArtworks {
	lilies := domain.Artwork{ID: 16568, Title: "Water Lilies", ArtistDisplay: "Claude Monet", ImageID: "abc", MainReferenceNumber: "1933.1157"}
	nighthawks := domain.Artwork{ID: 111628, Title: "Nighthawks", ArtistDisplay: "Edward Hopper"}
	return &fakeArtworks{
		page: &domain.ArtworkPage{
			Artworks:   []domain.Artwork{lilies, nighthawks},
			TotalPages: 5,
		},
		records: map[int]*domain.Artwork{
			lilies.ID:     &lilies,
			nighthawks.ID: &nighthawks,
		},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	switch k {
	case "enter":
		return update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	case "tab":
		return update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	case "ctrl+s":
		return update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	}
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

// loadedModel returns a sized model whose list has completed its first fetch
func loadedModel(t *testing.T, src *fakeArtworks, images *fakeImages) Model {
	t.Helper()
	m := NewModel(src, images, Options{GridColumns: 2}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	tick := m.List.Mount()
	m, fetch := update(t, m, tick())
	require.NotNil(t, fetch)
	m, _ = update(t, m, fetch())
	return m
}

// openedDetail returns a model showing the loaded detail page of the first card
func openedDetail(t *testing.T, src *fakeArtworks, images *fakeImages) Model {
	t.Helper()
	m := loadedModel(t, src, images)
	m, load := press(t, m, "enter")
	require.NotNil(t, load)
	m, _ = update(t, m, load())
	return m
}

func TestShell_ListLoads(t *testing.T) {
	src := testArtworks()
	m := loadedModel(t, src, &fakeImages{})

	require.Len(t, src.plans, 1)
	assert.Equal(t, domain.FetchPlan{Query: "", Page: 1, Limit: domain.PageSize}, src.plans[0])

	view := m.View()
	assert.Contains(t, view, BrandText)
	assert.Contains(t, view, "Water Lilies")
	assert.Contains(t, view, "1 of 5")
}

func TestShell_InitialSearchTerm(t *testing.T) {
	src := testArtworks()
	m := NewModel(src, &fakeImages{}, Options{SearchTerm: "monet"}, nil)
	assert.Equal(t, "monet", m.List.SearchTerm())
	assert.Equal(t, "monet", m.List.Plan().Query)
}

func TestShell_EnterOpensDetailAndBackRemounts(t *testing.T) {
	src := testArtworks()
	m := loadedModel(t, src, &fakeImages{})
	oldList := m.List

	m, load := press(t, m, "enter")
	require.NotNil(t, load)
	assert.Equal(t, RouteDetail, m.Route)
	assert.Nil(t, m.List)
	assert.False(t, oldList.Mounted())

	m, _ = update(t, m, load())
	require.NotNil(t, m.Detail)
	assert.Equal(t, 16568, m.Detail.ID())
	assert.Contains(t, m.View(), "Main Reference Number")

	m, mount := press(t, m, "esc")
	require.NotNil(t, mount)
	assert.Equal(t, RouteList, m.Route)
	assert.Nil(t, m.Detail)
	require.NotNil(t, m.List)
	assert.NotSame(t, oldList, m.List)
	assert.True(t, m.List.Mounted())
}

func TestShell_SearchTypingUpdatesList(t *testing.T) {
	m := loadedModel(t, testArtworks(), &fakeImages{})

	m, _ = press(t, m, "s")
	require.True(t, m.SearchBar.Focused())

	m, _ = press(t, m, "mo")
	assert.Equal(t, "mo", m.List.SearchTerm())

	m, _ = press(t, m, "enter")
	assert.False(t, m.SearchBar.Focused())
}

func TestShell_SearchTermSurvivesDetailRoundTrip(t *testing.T) {
	m := openedDetail(t, testArtworks(), &fakeImages{})

	m, _ = press(t, m, "s")
	m, _ = press(t, m, "hopper")
	m, _ = press(t, m, "esc")
	require.False(t, m.SearchBar.Focused())

	m, _ = press(t, m, "esc")
	require.Equal(t, RouteList, m.Route)
	assert.Equal(t, "hopper", m.List.SearchTerm())
}

func TestShell_CategoryPicker(t *testing.T) {
	m := loadedModel(t, testArtworks(), &fakeImages{})
	m, _ = press(t, m, "n")
	require.Equal(t, 2, m.List.Page())

	m, _ = press(t, m, "tab")
	require.True(t, m.Picker.IsVisible())

	m, _ = press(t, m, "scu")
	require.Equal(t, []domain.Category{domain.CategorySculpture}, m.Picker.Options())

	m, cmd := press(t, m, "enter")
	assert.NotNil(t, cmd)
	assert.False(t, m.Picker.IsVisible())
	assert.Equal(t, domain.CategorySculpture, m.List.Category())
	assert.Equal(t, 1, m.List.Page())
}

func TestShell_PaginationBounds(t *testing.T) {
	m := loadedModel(t, testArtworks(), &fakeImages{})

	m, cmd := press(t, m, "p")
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.List.Page())
}

func TestShell_CommentForm(t *testing.T) {
	m := openedDetail(t, testArtworks(), &fakeImages{})

	m, _ = press(t, m, "c")
	require.True(t, m.Detail.CommentsVisible())
	require.True(t, m.CommentForm.Focused())

	m, _ = press(t, m, "ctrl+s")
	assert.Equal(t, comment.MsgNameRequired, m.CommentForm.Error(comment.FieldName))
	assert.Equal(t, comment.MsgEmailRequired, m.CommentForm.Error(comment.FieldEmail))
	assert.Equal(t, comment.MsgCommentRequired, m.CommentForm.Error(comment.FieldComment))
	assert.Empty(t, m.StatusMsg)

	m, _ = press(t, m, "Ada")
	assert.Empty(t, m.CommentForm.Error(comment.FieldName))
	assert.Equal(t, comment.MsgEmailRequired, m.CommentForm.Error(comment.FieldEmail))

	m, _ = press(t, m, "tab")
	m, _ = press(t, m, "ada@example.com")
	m, _ = press(t, m, "tab")
	m, _ = press(t, m, "Lovely light.")

	m, _ = press(t, m, "ctrl+s")
	assert.Equal(t, CommentSubmittedText, m.StatusMsg)
	assert.False(t, m.StatusIsErr)
	assert.Equal(t, comment.Draft{}, m.CommentForm.Draft())

	// Form stays visible after submit
	m, _ = press(t, m, "esc")
	assert.True(t, m.Detail.CommentsVisible())
}

func TestShell_OpenImage(t *testing.T) {
	images := &fakeImages{}
	m := openedDetail(t, testArtworks(), images)

	m, cmd := press(t, m, "o")
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, ImageOpenedMsg{}, msg)
	assert.Equal(t, []int{16568}, images.opened)

	m, _ = update(t, m, msg)
	assert.Contains(t, m.StatusMsg, "Water Lilies")
}

func TestShell_OpenImageWithoutImage(t *testing.T) {
	src := testArtworks()
	m := loadedModel(t, src, &fakeImages{})

	// Second card has no image
	m, _ = press(t, m, "l")
	m, load := press(t, m, "enter")
	require.NotNil(t, load)
	m, _ = update(t, m, load())
	require.Equal(t, 111628, m.Detail.ID())

	m, _ = press(t, m, "o")
	assert.Equal(t, components.NoImageText, m.StatusMsg)
	assert.True(t, m.StatusIsErr)
}

func TestShell_DetailNotFound(t *testing.T) {
	src := testArtworks()
	m := loadedModel(t, src, &fakeImages{})
	src.records = map[int]*domain.Artwork{}

	m, load := press(t, m, "enter")
	m, _ = update(t, m, load())
	assert.Contains(t, m.View(), NotFoundText)
}

func TestShell_Quit(t *testing.T) {
	m := loadedModel(t, testArtworks(), &fakeImages{})
	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestShell_Help(t *testing.T) {
	m := loadedModel(t, testArtworks(), &fakeImages{})
	m, _ = press(t, m, "?")
	require.Equal(t, StateHelp, m.State)

	m, _ = press(t, m, "x")
	assert.Equal(t, StateBrowsing, m.State)
}

func TestShell_OpenThumbnailFromList(t *testing.T) {
	images := &fakeImages{}
	m := loadedModel(t, testArtworks(), images)

	_, cmd := press(t, m, "o")
	require.NotNil(t, cmd)
	require.IsType(t, ImageOpenedMsg{}, cmd())
	assert.Equal(t, []int{16568}, images.opened)
	assert.Equal(t, RouteList, m.Route)
}

func TestShell_DetailResultForOtherArtworkIgnored(t *testing.T) {
	m := loadedModel(t, testArtworks(), &fakeImages{})
	m, load := press(t, m, "enter")
	require.NotNil(t, load)

	other := &domain.Artwork{ID: 111628, Title: "Nighthawks"}
	m, _ = update(t, m, gallery.ArtworkLoadedMsg{ID: other.ID, Artwork: other})
	assert.Equal(t, gallery.DetailLoading, m.Detail.Status())
	assert.False(t, m.Inspector.HasArtwork())

	m, _ = update(t, m, load())
	assert.Equal(t, gallery.DetailReady, m.Detail.Status())
	assert.True(t, m.Inspector.HasArtwork())
	assert.Contains(t, m.View(), "Water Lilies")
}
