package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/artic/internal/tui/styles"
)

// Pagination renders the Prev / "P of T" / Next row under the grid
type Pagination struct {
	Label   string
	CanPrev bool
	CanNext bool
}

// View renders the row; disabled buttons are dimmed
func (p Pagination) View() string {
	prev := styles.ButtonDisabledStyle.Render("◀ Prev (p)")
	if p.CanPrev {
		prev = styles.ButtonStyle.Render("◀ Prev (p)")
	}
	next := styles.ButtonDisabledStyle.Render("Next (n) ▶")
	if p.CanNext {
		next = styles.ButtonStyle.Render("Next (n) ▶")
	}
	label := styles.SubtitleStyle.Padding(0, 2).Render(p.Label)

	return lipgloss.JoinHorizontal(lipgloss.Center, prev, label, next)
}
