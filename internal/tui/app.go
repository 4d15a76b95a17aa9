package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/artic/internal/adapter/source/artic"
	"github.com/mmcdole/artic/internal/debounce"
	"github.com/mmcdole/artic/internal/domain"
	"github.com/mmcdole/artic/internal/gallery"
	"github.com/mmcdole/artic/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Route is the page shown below the header
type Route int

const (
	RouteList Route = iota
	RouteDetail
)

// Layout constants
const (
	// Header: brand + search line and its bottom border
	HeaderHeight = 2

	// Footer: single status line
	FooterHeight = 1

	// Category line above the grid and pagination row below it
	ListChromeHeight = 3

	// Comment form column width on the detail page
	CommentFormWidth = 44

	statusTimeout = 3 * time.Second
)

// artworkSource executes list plans and single-record loads
type artworkSource interface {
	gallery.PageFetcher
	gallery.ArtworkFetcher
}

// imageOpener builds image URLs and opens them in a viewer
type imageOpener interface {
	URL(art domain.Artwork, size artic.ImageSize) string
	Open(art domain.Artwork, size artic.ImageSize) error
}

// Options tunes the shell
type Options struct {
	SearchTerm  string        // initial search term
	Debounce    time.Duration // list quiet period
	Timeout     time.Duration // per-request deadline
	GridColumns int
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Route Route
	Ready bool

	// Services
	Artworks artworkSource
	Images   imageOpener

	// Page controllers; exactly one is mounted
	List   *gallery.List
	Detail *gallery.Detail

	// UI Components
	SearchBar   components.SearchBar
	Grid        components.Grid
	Picker      components.CategoryPicker
	Inspector   components.Inspector
	CommentForm components.CommentForm

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	SpinnerFrame int

	opts   Options
	logger *slog.Logger
}

// NewModel creates a new application model showing the list page
func NewModel(artworks artworkSource, images imageOpener, opts Options, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Debounce < 0 {
		opts.Debounce = debounce.DefaultDelay
	}

	m := Model{
		State:       StateBrowsing,
		Route:       RouteList,
		Artworks:    artworks,
		Images:      images,
		SearchBar:   components.NewSearchBar(opts.SearchTerm),
		Grid:        components.NewGrid(opts.GridColumns),
		Picker:      components.NewCategoryPicker(),
		Inspector:   components.NewInspector(),
		CommentForm: components.NewCommentForm(),
		opts:        opts,
		logger:      logger,
	}
	m.List = m.newList()
	m.Grid.SetFocused(true)
	return m
}

func (m Model) newList() *gallery.List {
	return gallery.NewList(m.Artworks, m.SearchBar.Value(), gallery.ListOptions{
		Debounce: m.opts.Debounce,
		Timeout:  m.opts.Timeout,
	})
}

// Init mounts the list page
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.List.Mount(),
		TickCmd(100*time.Millisecond),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case debounce.Msg:
		if m.List == nil {
			return m, nil
		}
		return m, m.List.HandleDebounce(msg)

	case gallery.PageLoadedMsg:
		if m.List == nil || !m.List.HandleLoaded(msg) {
			m.logger.Debug("dropping stale page result", "fetchID", msg.FetchID)
			return m, nil
		}
		if err := m.List.Err(); err != nil {
			m.logger.Error("list fetch failed", "query", msg.Plan.Query, "page", msg.Plan.Page, "error", err)
			return m, nil
		}
		m.Grid.SetArtworks(m.List.Artworks())
		return m, nil

	case gallery.ArtworkLoadedMsg:
		if m.Detail == nil || msg.ID != m.Detail.ID() {
			m.logger.Debug("dropping detail result", "artworkID", msg.ID)
			return m, nil
		}
		cmd := m.Detail.Update(msg)
		if err := m.Detail.Err(); err != nil {
			m.logger.Error("detail fetch failed", "artworkID", msg.ID, "error", err)
			return m, cmd
		}
		if art := m.Detail.Artwork(); art != nil {
			m.Inspector.SetArtwork(art, m.Images.URL(*art, artic.HeroImage))
		}
		return m, cmd

	case ImageOpenedMsg:
		m.StatusMsg = "Opened image for " + msg.Artwork.GetTitle()
		m.StatusIsErr = false
		return m, ClearStatusCmd(statusTimeout)

	case ErrMsg:
		m.logger.Error("command failed", "context", msg.Context, "error", msg.Err)
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(statusTimeout)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(statusTimeout)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other component-internal messages
	return m.updateFocused(msg)
}

// updateFocused forwards a non-key message to whichever input has focus
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.SearchBar.Focused():
		m.SearchBar, cmd, _ = m.SearchBar.Update(msg)
	case m.Picker.IsVisible():
		m.Picker, cmd, _ = m.Picker.Update(msg)
	case m.Route == RouteDetail && m.CommentForm.Focused():
		m.CommentForm, cmd, _ = m.CommentForm.Update(msg)
	}
	return m, cmd
}

// openDetail unmounts the list and mounts a detail page for art
func (m Model) openDetail(art domain.Artwork) (tea.Model, tea.Cmd) {
	if m.List != nil {
		m.List.Unmount()
		m.List = nil
	}
	m.Grid.ClearFilter()

	m.Detail = gallery.NewDetail(m.Artworks, art.ID, m.opts.Timeout)
	m.Inspector.SetArtwork(nil, "")
	m.CommentForm = components.NewCommentForm()
	m.Route = RouteDetail
	m.updateLayout()

	m.logger.Info("opening artwork", "artworkID", art.ID, "title", art.Title)
	return m, m.Detail.Load()
}

// backToList unmounts the detail page and mounts a fresh list with the
// current search term
func (m Model) backToList() (tea.Model, tea.Cmd) {
	m.Detail = nil
	m.CommentForm.Blur()
	m.Inspector.SetArtwork(nil, "")

	m.List = m.newList()
	m.Grid.SetArtworks(nil)
	m.Route = RouteList
	m.updateLayout()

	return m, m.List.Mount()
}
