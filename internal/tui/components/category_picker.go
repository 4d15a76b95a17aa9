package components

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/artic/internal/domain"
	"github.com/mmcdole/artic/internal/tui/styles"
)

const pickerWidth = 24

// CategoryPicker is a small popup for choosing the category filter.
// Typing narrows the options.
type CategoryPicker struct {
	visible bool
	input   textinput.Model
	options []domain.Category // narrowed options in display order
	cursor  int
	active  domain.Category
}

// NewCategoryPicker creates a new category picker
func NewCategoryPicker() CategoryPicker {
	ti := textinput.New()
	ti.Placeholder = "type to narrow..."
	ti.CharLimit = 20
	ti.Width = pickerWidth - 2
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return CategoryPicker{
		input:   ti,
		options: domain.Categories(),
	}
}

// Show displays the picker with the cursor on the active category
func (p *CategoryPicker) Show(active domain.Category) {
	p.visible = true
	p.active = active
	p.input.SetValue("")
	p.input.Focus()
	p.narrow()

	p.cursor = 0
	for i, c := range p.options {
		if c == active {
			p.cursor = i
			break
		}
	}
}

// Hide dismisses the picker
func (p *CategoryPicker) Hide() {
	p.visible = false
	p.input.Blur()
}

// IsVisible returns whether the picker is shown
func (p CategoryPicker) IsVisible() bool {
	return p.visible
}

// Options returns the currently narrowed options
func (p CategoryPicker) Options() []domain.Category {
	return p.options
}

// narrow filters the closed category set by the typed text, best match first
func (p *CategoryPicker) narrow() {
	query := strings.TrimSpace(p.input.Value())
	all := domain.Categories()
	if query == "" {
		p.options = all
		p.cursor = 0
		return
	}

	labels := make([]string, len(all))
	for i, c := range all {
		labels[i] = c.Label()
	}

	ranks := fuzzy.RankFindFold(query, labels)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	p.options = make([]domain.Category, 0, len(ranks))
	for _, r := range ranks {
		p.options = append(p.options, all[r.OriginalIndex])
	}
	p.cursor = 0
}

// Update handles input events, returns (picker, cmd, selection).
// selection is non-nil when the user confirmed a choice.
func (p CategoryPicker) Update(msg tea.Msg) (CategoryPicker, tea.Cmd, *domain.Category) {
	if !p.visible {
		return p, nil, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, PickerKeys.Escape):
			p.Hide()
			return p, nil, nil
		case key.Matches(keyMsg, PickerKeys.Enter):
			if len(p.options) == 0 {
				return p, nil, nil
			}
			chosen := p.options[p.cursor]
			p.Hide()
			return p, nil, &chosen
		case key.Matches(keyMsg, PickerKeys.Down):
			if p.cursor < len(p.options)-1 {
				p.cursor++
			}
			return p, nil, nil
		case key.Matches(keyMsg, PickerKeys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil, nil
		}
	}

	var cmd tea.Cmd
	prev := p.input.Value()
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != prev {
		p.narrow()
	}
	return p, cmd, nil
}

// View renders the picker
func (p CategoryPicker) View() string {
	if !p.visible {
		return ""
	}

	var lines []string
	lines = append(lines, p.input.View(), "")

	if len(p.options) == 0 {
		lines = append(lines, styles.DimStyle.Render(styles.Pad("No matching category", pickerWidth)))
	}

	for i, opt := range p.options {
		prefix := "  "
		if opt == p.active {
			prefix = "✓ "
		}
		text := styles.Pad(prefix+opt.Label(), pickerWidth)

		switch {
		case i == p.cursor:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.White).
				Background(styles.SlateLight).
				Render(text))
		case opt == p.active:
			lines = append(lines, styles.AccentStyle.Render(text))
		default:
			lines = append(lines, styles.SubtitleStyle.Render(text))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Crimson).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Category") + "\n" + strings.Join(lines, "\n"))
}
