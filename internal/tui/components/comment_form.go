package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/artic/internal/comment"
	"github.com/mmcdole/artic/internal/tui/styles"
)

// CommentForm renders and edits a comment.Form: name and email inputs and a
// comment textarea.
type CommentForm struct {
	form    *comment.Form
	name    textinput.Model
	email   textinput.Model
	body    textarea.Model
	focus   int // index into comment.Fields()
	focused bool
	width   int
}

// NewCommentForm creates an empty, unfocused form
func NewCommentForm() CommentForm {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 120
		ti.Prompt = ""
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
		ti.PlaceholderStyle = styles.DimStyle
		return ti
	}

	ta := textarea.New()
	ta.Placeholder = "Your comment"
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(4)

	f := CommentForm{
		form:  comment.NewForm(),
		name:  newInput("Your name"),
		email: newInput("you@example.com"),
		body:  ta,
	}
	f.SetWidth(40)
	return f
}

// SetWidth sizes the inputs
func (f *CommentForm) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	f.width = width
	f.name.Width = width - 2
	f.email.Width = width - 2
	f.body.SetWidth(width)
}

// Focus moves keyboard input into the form at its current field
func (f *CommentForm) Focus() tea.Cmd {
	f.focused = true
	return f.focusField(f.focus)
}

// Blur leaves the form; typed values are kept
func (f *CommentForm) Blur() {
	f.focused = false
	f.name.Blur()
	f.email.Blur()
	f.body.Blur()
}

// Focused reports whether the form has keyboard input
func (f CommentForm) Focused() bool {
	return f.focused
}

// FocusedField returns the field that receives typing
func (f CommentForm) FocusedField() comment.Field {
	return comment.Fields()[f.focus]
}

// Draft returns the current values
func (f CommentForm) Draft() comment.Draft {
	return f.form.Draft()
}

// Error returns the inline message shown under a field
func (f CommentForm) Error(field comment.Field) string {
	return f.form.Error(field)
}

func (f *CommentForm) focusField(i int) tea.Cmd {
	n := len(comment.Fields())
	f.focus = (i%n + n) % n

	f.name.Blur()
	f.email.Blur()
	f.body.Blur()

	switch comment.Fields()[f.focus] {
	case comment.FieldName:
		return f.name.Focus()
	case comment.FieldEmail:
		return f.email.Focus()
	default:
		return f.body.Focus()
	}
}

// sync pushes the widget values into the form so edits clear field errors
func (f *CommentForm) sync() {
	f.form.Set(comment.FieldName, f.name.Value())
	f.form.Set(comment.FieldEmail, f.email.Value())
	f.form.Set(comment.FieldComment, f.body.Value())
}

// Update handles input events, returns (form, cmd, submitted).
// submitted is true only for a submit that passed validation; the fields
// are cleared in that case.
func (f CommentForm) Update(msg tea.Msg) (CommentForm, tea.Cmd, bool) {
	if !f.focused {
		return f, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, FormKeys.Submit):
			f.sync()
			if !f.form.Submit() {
				return f, nil, false
			}
			f.name.SetValue("")
			f.email.SetValue("")
			f.body.Reset()
			cmd := f.focusField(0)
			return f, cmd, true
		case key.Matches(keyMsg, FormKeys.Next):
			return f, f.focusField(f.focus + 1), false
		case key.Matches(keyMsg, FormKeys.Prev):
			return f, f.focusField(f.focus - 1), false
		case key.Matches(keyMsg, FormKeys.Escape):
			f.Blur()
			return f, nil, false
		case keyMsg.String() == "enter" && f.FocusedField() != comment.FieldComment:
			return f, f.focusField(f.focus + 1), false
		}
	}

	var cmd tea.Cmd
	switch f.FocusedField() {
	case comment.FieldName:
		f.name, cmd = f.name.Update(msg)
	case comment.FieldEmail:
		f.email, cmd = f.email.Update(msg)
	default:
		f.body, cmd = f.body.Update(msg)
	}
	f.sync()
	return f, cmd, false
}

// View renders the form
func (f CommentForm) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Leave a comment"))
	b.WriteString("\n\n")

	f.renderField(&b, "Name", comment.FieldName, f.name.View())
	f.renderField(&b, "Email", comment.FieldEmail, f.email.View())
	f.renderField(&b, "Comment", comment.FieldComment, f.body.View())

	submit := styles.ButtonDisabledStyle.Render("Submit")
	if f.focused {
		submit = styles.ButtonStyle.Render("Submit")
	}
	b.WriteString(submit)
	b.WriteString(styles.DimStyle.Render("  ctrl+s"))

	style := styles.InactiveBorder
	if f.focused {
		style = styles.ActiveBorder
	}
	return style.Padding(0, 1).Render(b.String())
}

func (f CommentForm) renderField(b *strings.Builder, label string, field comment.Field, input string) {
	labelStyle := styles.FieldLabelStyle
	if f.focused && f.FocusedField() == field {
		labelStyle = styles.FieldFocusedLabelStyle
	}

	b.WriteString(labelStyle.Render(label))
	b.WriteString("\n")
	b.WriteString(input)
	b.WriteString("\n")
	if msg := f.form.Error(field); msg != "" {
		b.WriteString(styles.FieldErrorStyle.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
