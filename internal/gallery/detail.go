package gallery

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/artic/internal/domain"
)

// DetailStatus is what the detail page should render
type DetailStatus int

const (
	DetailLoading DetailStatus = iota
	DetailError
	DetailNotFound
	DetailReady
)

// Detail owns the single-artwork page
type Detail struct {
	fetcher ArtworkFetcher
	timeout time.Duration

	id              int
	artwork         *domain.Artwork
	loading         bool
	err             error
	commentsVisible bool
}

// NewDetail creates a detail controller for id. Call Load to fetch it.
func NewDetail(fetcher ArtworkFetcher, id int, timeout time.Duration) *Detail {
	return &Detail{
		fetcher: fetcher,
		timeout: timeout,
		id:      id,
		loading: true,
	}
}

// Load fetches the current id
func (d *Detail) Load() tea.Cmd {
	d.loading = true
	d.err = nil
	d.artwork = nil

	id, fetcher, timeout := d.id, d.fetcher, d.timeout
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		art, err := fetcher.FetchArtwork(ctx, id)
		return ArtworkLoadedMsg{ID: id, Artwork: art, Err: err}
	}
}

// SetID switches to another artwork and reloads. The comment form stays
// as it was.
func (d *Detail) SetID(id int) tea.Cmd {
	if id == d.id {
		return nil
	}
	d.id = id
	return d.Load()
}

// Update routes load results to HandleLoaded
func (d *Detail) Update(msg tea.Msg) tea.Cmd {
	if loaded, ok := msg.(ArtworkLoadedMsg); ok {
		d.HandleLoaded(loaded)
	}
	return nil
}

// HandleLoaded applies a load result for the current id and reports
// whether it did
func (d *Detail) HandleLoaded(msg ArtworkLoadedMsg) bool {
	if msg.ID != d.id {
		return false
	}

	d.loading = false
	if msg.Err != nil {
		d.err = msg.Err
		d.artwork = nil
		return true
	}
	d.err = nil
	d.artwork = msg.Artwork
	return true
}

// Status returns loading, then error, then not-found, then ready
func (d *Detail) Status() DetailStatus {
	switch {
	case d.loading:
		return DetailLoading
	case d.err != nil:
		return DetailError
	case d.artwork == nil:
		return DetailNotFound
	default:
		return DetailReady
	}
}

// ShowComments reveals the comment form. Calling it again does nothing.
func (d *Detail) ShowComments() {
	d.commentsVisible = true
}

func (d *Detail) CommentsVisible() bool { return d.commentsVisible }

func (d *Detail) ID() int { return d.id }

func (d *Detail) Artwork() *domain.Artwork { return d.artwork }

func (d *Detail) Err() error { return d.err }
