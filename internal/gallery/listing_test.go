package gallery

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/artic/internal/debounce"
	"github.com/mmcdole/artic/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeFetcher struct {
	mu    sync.Mutex
	plans []domain.FetchPlan
	page  *domain.ArtworkPage
	err   error

	artworks map[int]*domain.Artwork
	ids      []int
}

func (f *fakeFetcher) FetchPage(_ context.Context, _ string, plan domain.FetchPlan) (*domain.ArtworkPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plans = append(f.plans, plan)
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeFetcher) FetchArtwork(_ context.Context, id int) (*domain.Artwork, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = append(f.ids, id)
	if f.err != nil {
		return nil, f.err
	}
	return f.artworks[id], nil
}

func fivePages() *domain.ArtworkPage {
	return &domain.ArtworkPage{
		Artworks:   []domain.Artwork{{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}},
		TotalPages: 5,
	}
}

// settle runs a debounce cmd through the list and then the fetch it starts
func settle(t *testing.T, l *List, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	fetch := l.Update(cmd())
	require.NotNil(t, fetch, "debounce tick was not accepted")
	l.Update(fetch())
}

func mounted(t *testing.T, f *fakeFetcher, term string) *List {
	t.Helper()
	l := NewList(f, term, ListOptions{})
	settle(t, l, l.Mount())
	return l
}

func TestList_InitialFetchIsPlainListing(t *testing.T) {
	f := &fakeFetcher{page: fivePages()}
	l := mounted(t, f, "")

	require.Len(t, f.plans, 1)
	assert.Equal(t, domain.FetchPlan{Query: "", Page: 1, Limit: 10}, f.plans[0])
	assert.Equal(t, ListReady, l.Status())
	assert.Len(t, l.Artworks(), 2)
	assert.Equal(t, "1 of 5", l.PaginationLabel())
	assert.False(t, l.CanPrev())
	assert.True(t, l.CanNext())
}

func TestList_LoadingUntilFirstResult(t *testing.T) {
	l := NewList(&fakeFetcher{page: fivePages()}, "", ListOptions{})
	assert.Equal(t, ListLoading, l.Status())

	cmd := l.Mount()
	fetch := l.Update(cmd())
	require.NotNil(t, fetch)
	assert.Equal(t, ListLoading, l.Status())

	l.Update(fetch())
	assert.Equal(t, ListReady, l.Status())
}

func TestList_SearchTermWinsOverCategory(t *testing.T) {
	f := &fakeFetcher{page: fivePages()}
	l := mounted(t, f, "")

	settle(t, l, l.SetCategory(domain.CategoryPainting))
	settle(t, l, l.SetSearchTerm("monet"))

	require.Len(t, f.plans, 3)
	assert.Equal(t, "Painting", f.plans[1].Query)
	assert.Equal(t, "monet", f.plans[2].Query)
}

func TestList_CategoryResetsPage(t *testing.T) {
	f := &fakeFetcher{page: fivePages()}
	l := mounted(t, f, "")

	settle(t, l, l.NextPage())
	settle(t, l, l.NextPage())
	assert.Equal(t, 3, l.Page())

	settle(t, l, l.SetCategory(domain.CategorySculpture))
	assert.Equal(t, 1, l.Page())
	assert.Equal(t, domain.FetchPlan{Query: "Sculpture", Page: 1, Limit: 10}, f.plans[len(f.plans)-1])
}

func TestList_SearchTermKeepsPage(t *testing.T) {
	f := &fakeFetcher{page: fivePages()}
	l := mounted(t, f, "")

	settle(t, l, l.NextPage())
	settle(t, l, l.SetSearchTerm("lilies"))
	assert.Equal(t, 2, l.Page())
}

func TestList_PageBounds(t *testing.T) {
	f := &fakeFetcher{page: &domain.ArtworkPage{TotalPages: 2}}
	l := mounted(t, f, "")

	assert.Nil(t, l.PrevPage())
	assert.Equal(t, 1, l.Page())

	settle(t, l, l.NextPage())
	assert.Equal(t, 2, l.Page())
	assert.False(t, l.CanNext())
	assert.Nil(t, l.NextPage())
	assert.Equal(t, 2, l.Page())
}

func TestList_NoResults(t *testing.T) {
	f := &fakeFetcher{page: &domain.ArtworkPage{}}
	l := mounted(t, f, "zzzz")

	assert.Equal(t, ListReady, l.Status())
	assert.Empty(t, l.Artworks())
	assert.Equal(t, "1 of 0", l.PaginationLabel())
	assert.False(t, l.CanPrev())
	assert.False(t, l.CanNext())
}

func TestList_RapidChangesCoalesce(t *testing.T) {
	f := &fakeFetcher{page: fivePages()}
	l := mounted(t, f, "")

	var ticks []tea.Cmd
	for _, term := range []string{"s", "su", "sun"} {
		ticks = append(ticks, l.SetSearchTerm(term))
	}

	var fetches []tea.Cmd
	for _, tick := range ticks {
		if cmd := l.Update(tick()); cmd != nil {
			fetches = append(fetches, cmd)
		}
	}
	require.Len(t, fetches, 1)
	l.Update(fetches[0]())

	require.Len(t, f.plans, 2)
	assert.Equal(t, "sun", f.plans[1].Query)
}

func TestList_StaleResultIgnored(t *testing.T) {
	f := &fakeFetcher{page: fivePages()}
	l := mounted(t, f, "")

	first := l.Update(l.SetSearchTerm("a")())
	require.NotNil(t, first)
	stale := first()

	f.page = &domain.ArtworkPage{Artworks: []domain.Artwork{{ID: 9, Title: "Fresh"}}, TotalPages: 1}
	second := l.Update(l.SetSearchTerm("ab")())
	require.NotNil(t, second)
	l.Update(second())

	l.Update(stale)
	require.Len(t, l.Artworks(), 1)
	assert.Equal(t, 9, l.Artworks()[0].ID)
	assert.Equal(t, 1, l.TotalPages())
}

func TestList_FetchError(t *testing.T) {
	f := &fakeFetcher{err: errors.Join(domain.ErrNetwork, errors.New("boom"))}
	l := mounted(t, f, "monet")

	assert.Equal(t, ListError, l.Status())
	assert.ErrorIs(t, l.Err(), domain.ErrNetwork)

	f.err = nil
	f.page = fivePages()
	settle(t, l, l.Refresh())
	assert.Equal(t, ListReady, l.Status())
	assert.NoError(t, l.Err())
}

func TestList_UnmountDropsPendingWork(t *testing.T) {
	f := &fakeFetcher{page: fivePages()}
	l := mounted(t, f, "")

	tick := l.SetSearchTerm("late")
	l.Unmount()

	assert.Nil(t, l.Update(tick()))
	assert.Nil(t, l.SetSearchTerm("later"))
	assert.Len(t, f.plans, 1)
}

func TestList_UnmountIgnoresInflightResult(t *testing.T) {
	f := &fakeFetcher{page: fivePages()}
	l := NewList(f, "", ListOptions{})

	fetch := l.Update(l.Mount()())
	require.NotNil(t, fetch)
	l.Unmount()

	l.Update(fetch())
	assert.Empty(t, l.Artworks())
}

func TestList_ForeignDebounceIgnored(t *testing.T) {
	l := NewList(&fakeFetcher{page: fivePages()}, "", ListOptions{})
	l.Mount()

	other := debounce.New(0)
	assert.Nil(t, l.Update(other.Trigger()()))
}

func TestList_InvalidCategoryIgnored(t *testing.T) {
	f := &fakeFetcher{page: fivePages()}
	l := mounted(t, f, "")

	assert.Nil(t, l.SetCategory(domain.Category("Furniture")))
	assert.Equal(t, domain.CategoryNone, l.Category())
}
