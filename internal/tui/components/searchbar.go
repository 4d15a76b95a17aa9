package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/artic/internal/tui/styles"
)

// SearchBar is the header search box. It holds the global search term.
type SearchBar struct {
	input textinput.Model
}

// NewSearchBar creates a new search bar with an initial term
func NewSearchBar(term string) SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search artworks..."
	ti.CharLimit = 100
	ti.Width = 30
	ti.Prompt = "⌕ "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	ti.SetValue(term)

	return SearchBar{input: ti}
}

// Focus moves keyboard input into the search box
func (s *SearchBar) Focus() tea.Cmd {
	s.input.CursorEnd()
	return s.input.Focus()
}

// Blur leaves the search box
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the search box has keyboard input
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the current search term
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetWidth sets the visible width of the input
func (s *SearchBar) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	s.input.Width = width
}

// Update handles input events, returns (bar, cmd, changed).
// enter and esc leave the box without touching the term.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, bool) {
	if !s.input.Focused() {
		return s, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc":
			s.Blur()
			return s, nil, false
		}
	}

	prev := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, s.input.Value() != prev
}

// View renders the search box
func (s SearchBar) View() string {
	return s.input.View()
}
