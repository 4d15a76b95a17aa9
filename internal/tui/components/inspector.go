package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/artic/internal/domain"
	"github.com/mmcdole/artic/internal/tui/styles"
)

// Layout constants for inspector
const (
	InspectorBorderHeight     = 2
	InspectorScrollIndicators = 2
)

// NoImageText is shown in place of the hero image link
const NoImageText = "No image available"

// inspectorContent holds the three-zone layout content
type inspectorContent struct {
	header string // fixed top
	body   string // scrollable middle
	footer string // fixed bottom
}

// Inspector displays the detail page of one artwork
type Inspector struct {
	artwork    *domain.Artwork
	heroURL    string
	width      int
	height     int
	offset     int // scroll offset
	maxVisible int // max visible lines
	focused    bool
}

// NewInspector creates a new inspector component
func NewInspector() Inspector {
	return Inspector{}
}

// SetArtwork sets the artwork to display and its hero image URL ("" for none)
func (i *Inspector) SetArtwork(art *domain.Artwork, heroURL string) {
	i.artwork = art
	i.heroURL = heroURL
	i.offset = 0
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
	i.maxVisible = height - InspectorBorderHeight - InspectorScrollIndicators
	if i.maxVisible < 1 {
		i.maxVisible = 1
	}
}

// SetFocused sets the focus state
func (i *Inspector) SetFocused(focused bool) {
	i.focused = focused
}

// HasArtwork returns true if there is an artwork to display
func (i Inspector) HasArtwork() bool {
	return i.artwork != nil
}

// Update scrolls the body with j/k
func (i Inspector) Update(msg tea.Msg) (Inspector, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !i.focused {
		return i, nil
	}
	switch keyMsg.String() {
	case "j", "down":
		i.offset++
	case "k", "up":
		if i.offset > 0 {
			i.offset--
		}
	case "g", "home":
		i.offset = 0
	}
	return i, nil
}

// View renders the component
func (i Inspector) View() string {
	style := styles.InactiveBorder
	if i.focused {
		style = styles.ActiveBorder
	}

	// Border takes 2 chars (1 each side), leave 1 char safety margin
	contentWidth := i.width - 3
	if contentWidth < 10 {
		contentWidth = 10
	}
	content := i.render(contentWidth)

	headerLines := splitLines(content.header)
	footerLines := splitLines(content.footer)
	bodyLines := splitLines(content.body)

	availableForBody := i.maxVisible - len(headerLines) - len(footerLines)
	if availableForBody < 1 {
		availableForBody = 1
	}

	// Clamp body scroll offset
	maxOffset := len(bodyLines) - availableForBody
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := i.offset
	if offset > maxOffset {
		offset = maxOffset
	}

	end := offset + availableForBody
	if end > len(bodyLines) {
		end = len(bodyLines)
	}
	visibleBody := bodyLines[offset:end]

	up := " "
	if offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < len(bodyLines) {
		down = styles.DimStyle.Render("↓ more")
	}

	var parts []string
	if content.header != "" {
		parts = append(parts, content.header)
	}
	parts = append(parts, up)
	if len(visibleBody) > 0 {
		parts = append(parts, strings.Join(visibleBody, "\n"))
	}
	for j := len(visibleBody); j < availableForBody; j++ {
		parts = append(parts, "")
	}
	parts = append(parts, down)
	if content.footer != "" {
		parts = append(parts, content.footer)
	}

	frameW, frameH := style.GetFrameSize()

	return style.
		Width(i.width - frameW).
		Height(i.height - frameH).
		Render(strings.Join(parts, "\n"))
}

// render splits the artwork into header, scrollable body and key hints
func (i Inspector) render(width int) inspectorContent {
	if i.artwork == nil {
		return inspectorContent{body: styles.DimStyle.Render("No artwork selected")}
	}
	art := *i.artwork

	var header strings.Builder
	header.WriteString(styles.TitleStyle.Render(styles.Truncate(art.GetTitle(), width)))
	header.WriteString("\n")
	for n, line := range splitLines(art.ArtistDisplay) {
		if n == 0 {
			line = "Artist: " + line
		}
		header.WriteString(styles.SubtitleStyle.Render(styles.Truncate(line, width)))
		header.WriteString("\n")
	}

	var body strings.Builder
	if i.heroURL == "" {
		body.WriteString(styles.DimStyle.Render("[ " + NoImageText + " ]"))
	} else {
		body.WriteString(styles.AccentStyle.Render("▣ "))
		body.WriteString(styles.DimStyle.Render(styles.Truncate(i.heroURL, width-2)))
	}
	body.WriteString("\n")
	if art.ThumbnailAltText != "" {
		body.WriteString(styles.DimStyle.Render(wordWrap(art.ThumbnailAltText, width)))
		body.WriteString("\n")
	}
	body.WriteString("\n")

	fields := []struct {
		label string
		value string
	}{
		{"Date", art.DateDisplay},
		{"Main Reference Number", art.MainReferenceNumber},
		{"Dimensions", art.Dimensions},
		{"Medium", art.MediumDisplay},
		{"Place of Origin", art.PlaceOfOrigin},
		{"Type", art.ArtworkType},
		{"Credit Line", art.CreditLine},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		body.WriteString(styles.LabelStyle.Render(f.label + ": "))
		body.WriteString(styles.SubtitleStyle.Render(wordWrap(f.value, width-len(f.label)-2)))
		body.WriteString("\n")
	}

	if art.Description != "" {
		body.WriteString("\n")
		descWidth := width - 2
		if descWidth > 80 {
			descWidth = 80
		}
		body.WriteString(styles.SubtitleStyle.Render(wrapParagraphs(art.Description, descWidth)))
	}

	footer := styles.DimStyle.Render(strings.Repeat("─", width)) + "\n" +
		styles.HelpKeyStyle.Render("c") + styles.HelpDescStyle.Render(" comment  ") +
		styles.HelpKeyStyle.Render("o") + styles.HelpDescStyle.Render(" open image  ") +
		styles.HelpKeyStyle.Render("esc") + styles.HelpDescStyle.Render(" back to artwork list")

	return inspectorContent{
		header: strings.TrimRight(header.String(), "\n"),
		body:   strings.TrimRight(body.String(), "\n"),
		footer: footer,
	}
}

// splitLines splits a string into lines, returning empty slice for empty string
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
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
		wordLen := len([]rune(word))

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

// wrapParagraphs word-wraps each blank-line separated paragraph
func wrapParagraphs(text string, width int) string {
	paragraphs := strings.Split(text, "\n\n")
	for i, p := range paragraphs {
		paragraphs[i] = wordWrap(p, width)
	}
	return strings.Join(paragraphs, "\n\n")
}
