package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/artic/internal/adapter/source/artic"
	"github.com/mmcdole/artic/internal/domain"
	"github.com/mmcdole/artic/internal/gallery"
	"github.com/mmcdole/artic/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.State == StateHelp {
		// Any key closes help
		m.State = StateBrowsing
		return m, nil
	}

	// Route to whichever input owns the keyboard
	if handled, newModel, cmd := m.routeToInput(msg); handled {
		return newModel, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Search):
		return m, m.SearchBar.Focus()
	}

	if m.Route == RouteDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

// routeToInput sends keys to a focused text input or open picker.
// Returns handled=false when nothing owns the keyboard.
func (m Model) routeToInput(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	switch {
	case m.SearchBar.Focused():
		var cmd tea.Cmd
		var changed bool
		m.SearchBar, cmd, changed = m.SearchBar.Update(msg)
		if changed && m.List != nil {
			// On the detail page the new term is picked up on remount
			cmd = tea.Batch(cmd, m.List.SetSearchTerm(m.SearchBar.Value()))
		}
		return true, m, cmd

	case m.Picker.IsVisible():
		var cmd tea.Cmd
		var selection *domain.Category
		m.Picker, cmd, selection = m.Picker.Update(msg)
		if selection != nil && m.List != nil {
			cmd = tea.Batch(cmd, m.List.SetCategory(*selection))
		}
		return true, m, cmd

	case m.Route == RouteDetail && m.CommentForm.Focused():
		var cmd tea.Cmd
		var submitted bool
		m.CommentForm, cmd, submitted = m.CommentForm.Update(msg)
		if submitted {
			m.logger.Info("comment submitted", "artworkID", m.Detail.ID())
			m.StatusMsg = CommentSubmittedText
			m.StatusIsErr = false
			cmd = tea.Batch(cmd, ClearStatusCmd(statusTimeout))
		}
		m.updateLayout()
		return true, m, cmd

	case m.Route == RouteList && m.Grid.IsFilterTyping():
		var cmd tea.Cmd
		m.Grid, cmd = m.Grid.Update(msg)
		return true, m, cmd
	}

	return false, m, nil
}

// handleListKey handles keys on the list page
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.List == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Filter):
		if m.List.Status() == gallery.ListReady {
			m.Grid.ToggleFilter()
		}
		return m, nil

	case key.Matches(msg, Keys.Category):
		m.Picker.Show(m.List.Category())
		return m, nil

	case key.Matches(msg, Keys.NextPage):
		return m, m.List.NextPage()

	case key.Matches(msg, Keys.PrevPage):
		return m, m.List.PrevPage()

	case key.Matches(msg, Keys.Refresh):
		return m, m.List.Refresh()

	case key.Matches(msg, Keys.OpenImage):
		if m.List.Status() != gallery.ListReady {
			return m, nil
		}
		art := m.Grid.SelectedArtwork()
		if art == nil {
			return m, nil
		}
		return m.openImage(*art, artic.ThumbnailImage)

	case key.Matches(msg, Keys.Enter):
		if m.List.Status() != gallery.ListReady {
			return m, nil
		}
		if art := m.Grid.SelectedArtwork(); art != nil {
			return m.openDetail(*art)
		}
		return m, nil
	}

	// Cursor movement and filter clearing
	var cmd tea.Cmd
	m.Grid, cmd = m.Grid.Update(msg)
	return m, cmd
}

// handleDetailKey handles keys on the detail page
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Detail == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Back):
		return m.backToList()

	case key.Matches(msg, Keys.Refresh):
		return m, m.Detail.Load()
	}

	if m.Detail.Status() != gallery.DetailReady {
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Comments):
		m.Detail.ShowComments()
		cmd := m.CommentForm.Focus()
		m.updateLayout()
		return m, cmd

	case key.Matches(msg, Keys.OpenImage):
		return m.openImage(*m.Detail.Artwork(), artic.HeroImage)
	}

	var cmd tea.Cmd
	m.Inspector, cmd = m.Inspector.Update(msg)
	return m, cmd
}

// openImage launches the viewer, or reports that the artwork has no image
func (m Model) openImage(art domain.Artwork, size artic.ImageSize) (tea.Model, tea.Cmd) {
	if !art.HasImage() {
		m.StatusMsg = components.NoImageText
		m.StatusIsErr = true
		return m, ClearStatusCmd(statusTimeout)
	}
	return m, OpenImageCmd(m.Images, art, size)
}
