package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/artic/internal/domain"
	"github.com/mmcdole/artic/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Layout constants for grid cards
const (
	// Border adds 1 char on each side
	CardBorder = 2

	// Padding inside the card border (Padding(0,1))
	CardPadding = 2

	// Title, artist and date lines
	CardLines = 3

	// Total rendered card height
	CardHeight = CardLines + CardBorder

	// Filter bar below the cards
	FilterBarLines = 1
)

// Grid renders the current page of artworks as cards
type Grid struct {
	artworks []domain.Artwork

	columns int

	// Selection, in visible (filtered) order
	cursor      int
	rowOffset   int
	visibleRows int

	// Dimensions
	width   int
	height  int
	focused bool

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filteredIdx  []int         // indices into artworks
	matched      map[int][]int // artwork index -> matched byte offsets in title
}

// NewGrid creates a new grid component
func NewGrid(columns int) Grid {
	if columns < 1 {
		columns = 1
	}

	ti := textinput.New()
	ti.Placeholder = "type to filter titles..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return Grid{
		columns:     columns,
		filterInput: ti,
		visibleRows: 1,
	}
}

// SetArtworks replaces the grid content and resets selection and filter
func (g *Grid) SetArtworks(artworks []domain.Artwork) {
	g.artworks = artworks
	g.cursor = 0
	g.rowOffset = 0
	g.clearFilter()
}

// Artworks returns the unfiltered content
func (g Grid) Artworks() []domain.Artwork {
	return g.artworks
}

// SetSize updates the component dimensions
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.recalcVisibleRows()
}

// recalcVisibleRows calculates how many card rows fit, accounting for the filter bar
func (g *Grid) recalcVisibleRows() {
	available := g.height
	if g.filterActive {
		available -= FilterBarLines
	}
	g.visibleRows = available / CardHeight
	if g.visibleRows < 1 {
		g.visibleRows = 1
	}
	g.ensureVisible()
}

// SetFocused sets the focus state
func (g *Grid) SetFocused(focused bool) {
	g.focused = focused
}

// IsFocused returns the focus state
func (g Grid) IsFocused() bool {
	return g.focused
}

// Columns returns the number of cards per row
func (g Grid) Columns() int {
	return g.columns
}

// Cursor returns the current cursor position
func (g Grid) Cursor() int {
	return g.cursor
}

// SetCursor sets the cursor position, clamped to the visible items
func (g *Grid) SetCursor(pos int) {
	max := g.itemCount() - 1
	if max < 0 {
		g.cursor = 0
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > max {
		pos = max
	}
	g.cursor = pos
	g.ensureVisible()
}

// SelectedArtwork returns the artwork under the cursor, or nil
func (g Grid) SelectedArtwork() *domain.Artwork {
	if g.itemCount() == 0 {
		return nil
	}
	art := g.artworks[g.mapIndex(g.cursor)]
	return &art
}

// IsEmpty reports whether nothing is visible
func (g Grid) IsEmpty() bool {
	return g.itemCount() == 0
}

// ensureVisible scrolls so the cursor row is on screen
func (g *Grid) ensureVisible() {
	row := g.cursor / g.columns
	if row < g.rowOffset {
		g.rowOffset = row
	}
	if row >= g.rowOffset+g.visibleRows {
		g.rowOffset = row - g.visibleRows + 1
	}
}

// ToggleFilter activates the filter input
func (g *Grid) ToggleFilter() {
	g.filterActive = true
	g.filterInput.Focus()
	g.recalcVisibleRows()
}

// IsFiltering returns true if filter mode is active (showing filtered results)
func (g Grid) IsFiltering() bool {
	return g.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused (typing mode)
func (g Grid) IsFilterTyping() bool {
	return g.filterActive && g.filterInput.Focused()
}

// FilterQuery returns the active filter text
func (g Grid) FilterQuery() string {
	return g.filterQuery
}

// ClearFilter deactivates the filter and shows all items
func (g *Grid) ClearFilter() {
	g.clearFilter()
}

func (g *Grid) clearFilter() {
	g.filterActive = false
	g.filterQuery = ""
	g.filteredIdx = nil
	g.matched = nil
	g.filterInput.SetValue("")
	g.filterInput.Blur()
	g.recalcVisibleRows()
}

// SetFilter applies query as the title filter
func (g *Grid) SetFilter(query string) {
	g.filterActive = true
	g.filterInput.SetValue(query)
	g.applyFilter()
	g.recalcVisibleRows()
}

// applyFilter filters cards by title. Matching is case-insensitive.
func (g *Grid) applyFilter() {
	query := g.filterInput.Value()
	g.filterQuery = query

	if query == "" {
		g.filteredIdx = nil
		g.matched = nil
		return
	}

	titles := make([]string, len(g.artworks))
	for i, art := range g.artworks {
		titles[i] = art.GetTitle()
	}

	matches := fuzzy.Find(query, titles)

	g.filteredIdx = make([]int, len(matches))
	g.matched = make(map[int][]int, len(matches))
	for i, match := range matches {
		g.filteredIdx[i] = match.Index
		g.matched[match.Index] = match.MatchedIndexes
	}

	// Reset cursor to first match
	g.cursor = 0
	g.rowOffset = 0
}

// itemCount returns the number of visible items
func (g Grid) itemCount() int {
	if g.filterActive && g.filterQuery != "" {
		return len(g.filteredIdx)
	}
	return len(g.artworks)
}

// mapIndex maps a visible index to an index into artworks
func (g Grid) mapIndex(i int) int {
	if g.filterActive && g.filterQuery != "" {
		return g.filteredIdx[i]
	}
	return i
}

// Init implements tea.Model
func (g Grid) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and filter typing
func (g Grid) Update(msg tea.Msg) (Grid, tea.Cmd) {
	if !g.focused {
		return g, nil
	}

	// Typing into the filter
	if g.IsFilterTyping() {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, GridKeys.Escape):
				g.clearFilter()
				return g, nil
			case key.Matches(msg, GridKeys.Enter):
				// Accept filter, blur input to allow navigation
				g.filterInput.Blur()
				return g, nil
			case msg.String() == "backspace" && g.filterInput.Value() == "":
				g.clearFilter()
				return g, nil
			}
		}

		var cmd tea.Cmd
		g.filterInput, cmd = g.filterInput.Update(msg)
		g.applyFilter()
		return g, cmd
	}

	// Filter active but blurred: navigating the filtered cards
	if g.filterActive {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, GridKeys.Escape):
				g.clearFilter()
				return g, nil
			case key.Matches(msg, GridKeys.Filter):
				g.filterInput.Focus()
				return g, nil
			}
		}
	}

	count := g.itemCount()
	if count == 0 {
		return g, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, GridKeys.Left):
			if g.cursor%g.columns > 0 {
				g.cursor--
			}
		case key.Matches(msg, GridKeys.Right):
			if g.cursor%g.columns < g.columns-1 && g.cursor < count-1 {
				g.cursor++
			}
		case key.Matches(msg, GridKeys.Up):
			if g.cursor-g.columns >= 0 {
				g.cursor -= g.columns
			}
		case key.Matches(msg, GridKeys.Down):
			if g.cursor+g.columns < count {
				g.cursor += g.columns
			} else if g.cursor/g.columns < (count-1)/g.columns {
				// Partial last row: land on its last card
				g.cursor = count - 1
			}
		case key.Matches(msg, GridKeys.Home):
			g.cursor = 0
		case key.Matches(msg, GridKeys.End):
			g.cursor = count - 1
		}
		g.ensureVisible()
	}

	return g, nil
}

// View renders the component
func (g Grid) View() string {
	content := g.renderCards()
	if g.filterActive {
		content += "\n" + g.renderFilterBar()
	}
	return content
}

// cardWidth is the outer width of one card
func (g Grid) cardWidth() int {
	w := g.width / g.columns
	if w < 16 {
		w = 16
	}
	return w
}

// renderCards renders the visible rows of cards
func (g Grid) renderCards() string {
	count := g.itemCount()
	if count == 0 {
		if g.filterActive && g.filterQuery != "" {
			return styles.DimStyle.Render("No matches")
		}
		return styles.DimStyle.Render("No artworks found")
	}

	cardWidth := g.cardWidth()
	var rows []string

	firstRow := g.rowOffset
	lastRow := (count - 1) / g.columns
	if end := firstRow + g.visibleRows - 1; end < lastRow {
		lastRow = end
	}

	for row := firstRow; row <= lastRow; row++ {
		var cards []string
		for col := 0; col < g.columns; col++ {
			i := row*g.columns + col
			if i >= count {
				break
			}
			idx := g.mapIndex(i)
			cards = append(cards, g.renderCard(idx, i == g.cursor, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return strings.Join(rows, "\n")
}

// renderCard renders one artwork card
func (g Grid) renderCard(idx int, selected bool, width int) string {
	art := g.artworks[idx]
	inner := width - CardBorder - CardPadding

	title := styles.Truncate(art.GetTitle(), inner)
	if positions, ok := g.matched[idx]; ok {
		title = HighlightMatches(title, positions, styles.TitleStyle, styles.MatchHighlightStyle)
	} else {
		title = styles.TitleStyle.Render(title)
	}

	artist := firstLine(art.ArtistDisplay)
	if artist == "" {
		artist = "Unknown artist"
	}
	date := art.DateDisplay
	if !art.HasImage() {
		date = strings.TrimSpace(date + "  · no image")
	}

	lines := []string{
		title,
		styles.SubtitleStyle.Render(styles.Truncate(artist, inner)),
		styles.DimStyle.Render(styles.Truncate(date, inner)),
	}

	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	return style.Width(width - CardBorder).Render(strings.Join(lines, "\n"))
}

// renderFilterBar renders the filter input bar
func (g Grid) renderFilterBar() string {
	input := g.filterInput.View()

	// Show match count
	countStr := ""
	if g.filterQuery != "" {
		countStr = styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", g.itemCount(), len(g.artworks)))
	}

	return input + countStr
}

// HighlightMatches renders s with the bytes at positions in the highlight style.
// Positions past the end of s (after truncation) are ignored.
func HighlightMatches(s string, positions []int, base, highlight lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(s)
	}

	hit := make(map[int]bool, len(positions))
	for _, p := range positions {
		hit[p] = true
	}

	var b strings.Builder
	var run strings.Builder
	runHit := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runHit {
			b.WriteString(highlight.Render(run.String()))
		} else {
			b.WriteString(base.Render(run.String()))
		}
		run.Reset()
	}

	for i, r := range s {
		if hit[i] != runHit {
			flush()
			runHit = hit[i]
		}
		run.WriteRune(r)
	}
	flush()

	return b.String()
}

// firstLine returns the first line of a multi-line display string
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}
