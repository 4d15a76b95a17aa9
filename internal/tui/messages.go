package tui

import "github.com/mmcdole/artic/internal/domain"

// Message types for the TUI. List and detail results travel as
// gallery.PageLoadedMsg and gallery.ArtworkLoadedMsg.

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// ImageOpenedMsg signals that the viewer was launched
type ImageOpenedMsg struct {
	Artwork domain.Artwork
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
