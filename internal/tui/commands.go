package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/artic/internal/adapter/source/artic"
	"github.com/mmcdole/artic/internal/domain"
)

// Command factories for async operations. Page and record loads are issued
// by the gallery controllers themselves.

// OpenImageCmd opens an artwork image in the external viewer
func OpenImageCmd(images imageOpener, art domain.Artwork, size artic.ImageSize) tea.Cmd {
	return func() tea.Msg {
		if err := images.Open(art, size); err != nil {
			return ErrMsg{Err: err, Context: "opening image"}
		}
		return ImageOpenedMsg{Artwork: art}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
