// Package gallery holds the state of the list and detail pages.
//
// Controllers are plain structs driven by Bubble Tea messages: every
// operation that needs to talk to the network returns a tea.Cmd, and the
// resulting message is handed back through Update. Nothing here renders.
package gallery

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mmcdole/artic/internal/debounce"
	"github.com/mmcdole/artic/internal/domain"
)

// ListStatus is what the list page should render
type ListStatus int

const (
	ListLoading ListStatus = iota
	ListError
	ListReady
)

// ListOptions tunes a List
type ListOptions struct {
	Debounce time.Duration // quiet period before a fetch
	Timeout  time.Duration // per-fetch deadline, zero for none
}

// List owns the search term, category filter and pagination of the list
// page, and the artworks of the last successful fetch.
type List struct {
	fetcher PageFetcher
	timeout time.Duration

	searchTerm string
	category   domain.Category
	page       int
	totalPages int

	artworks []domain.Artwork
	loading  bool
	err      error

	debouncer *debounce.Debouncer
	fetchID   string // id of the fetch whose result will be accepted
	mounted   bool
}

// NewList creates a list controller for the given search term
func NewList(fetcher PageFetcher, searchTerm string, opts ListOptions) *List {
	return &List{
		fetcher:    fetcher,
		timeout:    opts.Timeout,
		searchTerm: searchTerm,
		category:   domain.CategoryNone,
		page:       1,
		loading:    true,
		debouncer:  debounce.New(opts.Debounce),
	}
}

// Mount starts the controller and schedules the first fetch
func (l *List) Mount() tea.Cmd {
	l.mounted = true
	l.loading = true
	return l.debouncer.Trigger()
}

// Unmount cancels any pending fetch. Late ticks and results are ignored.
func (l *List) Unmount() {
	l.mounted = false
	l.debouncer.Cancel()
	l.fetchID = ""
}

// Mounted reports whether the controller is live
func (l *List) Mounted() bool {
	return l.mounted
}

// schedule reschedules the debounced fetch after a state change
func (l *List) schedule() tea.Cmd {
	if !l.mounted {
		return nil
	}
	return l.debouncer.Trigger()
}

// SetSearchTerm updates the free-text query
func (l *List) SetSearchTerm(term string) tea.Cmd {
	if term == l.searchTerm {
		return nil
	}
	l.searchTerm = term
	return l.schedule()
}

// SetCategory updates the category filter and returns to the first page
func (l *List) SetCategory(category domain.Category) tea.Cmd {
	if !category.IsValid() {
		return nil
	}
	if category == l.category && l.page == 1 {
		return nil
	}
	l.category = category
	l.page = 1
	return l.schedule()
}

// NextPage advances one page unless already on the last one
func (l *List) NextPage() tea.Cmd {
	if !l.CanNext() {
		return nil
	}
	l.page++
	return l.schedule()
}

// PrevPage goes back one page unless already on the first one
func (l *List) PrevPage() tea.Cmd {
	if !l.CanPrev() {
		return nil
	}
	l.page--
	return l.schedule()
}

// Refresh schedules a fetch of the current plan
func (l *List) Refresh() tea.Cmd {
	return l.schedule()
}

// Update routes debounce ticks and fetch results addressed to this list
func (l *List) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case debounce.Msg:
		return l.HandleDebounce(msg)
	case PageLoadedMsg:
		l.HandleLoaded(msg)
	}
	return nil
}

// HandleDebounce starts a fetch when msg is the latest tick of this list
func (l *List) HandleDebounce(msg debounce.Msg) tea.Cmd {
	if !l.mounted || !l.debouncer.Accept(msg) {
		return nil
	}
	return l.startFetch()
}

// HandleLoaded applies a result if it belongs to the current fetch and
// reports whether it did
func (l *List) HandleLoaded(msg PageLoadedMsg) bool {
	if msg.FetchID == "" || msg.FetchID != l.fetchID {
		return false
	}
	l.fetchID = ""
	l.loading = false
	if msg.Err != nil {
		l.err = msg.Err
		return true
	}
	l.err = nil
	if msg.Page != nil {
		l.artworks = msg.Page.Artworks
		l.totalPages = msg.Page.TotalPages
	}
	return true
}

// startFetch executes the current plan under a fresh fetch id
func (l *List) startFetch() tea.Cmd {
	plan := l.Plan()
	id := uuid.NewString()

	l.fetchID = id
	l.loading = true
	l.err = nil

	fetcher, timeout := l.fetcher, l.timeout
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		page, err := fetcher.FetchPage(ctx, id, plan)
		return PageLoadedMsg{FetchID: id, Plan: plan, Page: page, Err: err}
	}
}

// Plan returns the fetch plan for the current state
func (l *List) Plan() domain.FetchPlan {
	return domain.NewFetchPlan(l.searchTerm, l.category, l.page)
}

// Status returns what should be rendered, loading first then error
func (l *List) Status() ListStatus {
	switch {
	case l.loading:
		return ListLoading
	case l.err != nil:
		return ListError
	default:
		return ListReady
	}
}

func (l *List) SearchTerm() string { return l.searchTerm }

func (l *List) Category() domain.Category { return l.category }

func (l *List) Page() int { return l.page }

func (l *List) TotalPages() int { return l.totalPages }

func (l *List) Artworks() []domain.Artwork { return l.artworks }

func (l *List) Loading() bool { return l.loading }

func (l *List) Err() error { return l.err }

// CanPrev reports whether a previous page exists
func (l *List) CanPrev() bool {
	return l.page > 1
}

// CanNext reports whether a next page exists
func (l *List) CanNext() bool {
	return l.page < l.totalPages
}

// PaginationLabel renders "page of total"
func (l *List) PaginationLabel() string {
	return fmt.Sprintf("%d of %d", l.page, l.totalPages)
}
