package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/artic/internal/gallery"
	"github.com/mmcdole/artic/internal/tui/components"
	"github.com/mmcdole/artic/internal/tui/styles"
)

// User-visible page texts
const (
	BrandText            = "Artwork App"
	LoadingText          = "Loading..."
	ListErrorPrefix      = "Error loading artworks: "
	DetailErrorPrefix    = "Error loading artwork details: "
	NotFoundText         = "No artwork details found."
	CommentSubmittedText = "Comment submitted successfully!"
	CategoryLabel        = "Filter by Category: "
)

// View renders the whole screen
func (m Model) View() string {
	if !m.Ready {
		return LoadingText
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	var content string
	switch m.Route {
	case RouteDetail:
		content = m.renderDetail()
	default:
		content = m.renderList()
	}

	if m.Picker.IsVisible() {
		content = lipgloss.Place(m.Width, m.contentHeight(),
			lipgloss.Center, lipgloss.Center,
			m.Picker.View())
	}

	content = lipgloss.NewStyle().
		Width(m.Width).
		Height(m.contentHeight()).
		MaxHeight(m.contentHeight()).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)
}

// renderHeader renders the brand and search box
func (m Model) renderHeader() string {
	brand := styles.BrandStyle.Render(BrandText)
	search := m.SearchBar.View()
	if !m.SearchBar.Focused() {
		search += styles.DimStyle.Render("  (s)")
	}

	gap := m.Width - lipgloss.Width(brand) - lipgloss.Width(search) - 1
	if gap < 1 {
		gap = 1
	}

	return styles.HeaderStyle.
		Width(m.Width).
		Render(brand + strings.Repeat(" ", gap) + search)
}

// renderList renders the list page in loading, error, ready order
func (m Model) renderList() string {
	if m.List == nil {
		return ""
	}

	switch m.List.Status() {
	case gallery.ListLoading:
		return RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render(LoadingText)
	case gallery.ListError:
		return RenderError(ListErrorPrefix, m.List.Err(), m.Width)
	}

	category := styles.SubtitleStyle.Render(CategoryLabel) +
		styles.AccentStyle.Render(m.List.Category().Label()) +
		styles.DimStyle.Render("  (tab)")

	pagination := components.Pagination{
		Label:   m.List.PaginationLabel(),
		CanPrev: m.List.CanPrev(),
		CanNext: m.List.CanNext(),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		category,
		m.Grid.View(),
		pagination.View(),
	)
}

// renderDetail renders the detail page in loading, error, not found, ready order
func (m Model) renderDetail() string {
	if m.Detail == nil {
		return ""
	}

	switch m.Detail.Status() {
	case gallery.DetailLoading:
		return RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render(LoadingText)
	case gallery.DetailError:
		return RenderError(DetailErrorPrefix, m.Detail.Err(), m.Width)
	case gallery.DetailNotFound:
		return styles.DimStyle.Render(NotFoundText) + "\n\n" +
			styles.HelpKeyStyle.Render("esc") + styles.HelpDescStyle.Render(" back to artwork list")
	}

	inspector := m.Inspector.View()
	if !m.Detail.CommentsVisible() {
		return inspector
	}

	layout := m.calculateDetailLayout(m.Width)
	if layout.formWidth > 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, inspector, m.CommentForm.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, inspector, m.CommentForm.View())
}

// renderFooter renders the status line and help hint
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
LIST                            DETAIL
  h/j/k/l    Move between cards   c      Leave a comment
  Enter      Open artwork         o      Open image in viewer
  n / p      Next / prev page     r      Reload artwork
  Tab        Choose category      Esc    Back to artwork list
  /          Filter titles
  o          Open thumbnail     COMMENT FORM
  r          Reload page          Tab    Next field
                                  C-s    Submit
OTHER                             Esc    Leave form
  s          Search artworks
  ?          This help
  q          Quit

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wordLen := len(word)

		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}

		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return styles.SpinnerStyle.Render(frames[frame%len(frames)])
}

// RenderError renders a page-level error message
func RenderError(prefix string, err error, width int) string {
	text := prefix
	if err != nil {
		text += err.Error()
	}
	return styles.ErrorStyle.Render(wordWrap(text, width-4)) + "\n\n" +
		styles.HelpKeyStyle.Render("r") + styles.HelpDescStyle.Render(" retry")
}
