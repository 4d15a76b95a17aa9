package gallery

import "github.com/mmcdole/artic/internal/domain"

// PageLoadedMsg carries the outcome of one executed fetch plan
type PageLoadedMsg struct {
	FetchID string
	Plan    domain.FetchPlan
	Page    *domain.ArtworkPage
	Err     error
}

// ArtworkLoadedMsg carries the outcome of a single-record load
type ArtworkLoadedMsg struct {
	ID      int
	Artwork *domain.Artwork
	Err     error
}
