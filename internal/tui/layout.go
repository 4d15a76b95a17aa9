package tui

// detailLayout holds calculated widths for the detail page
type detailLayout struct {
	inspectorWidth int
	formWidth      int // 0 when the form is hidden or stacked
}

// calculateDetailLayout splits the width between inspector and comment form
func (m Model) calculateDetailLayout(availableWidth int) detailLayout {
	if m.Detail == nil || !m.Detail.CommentsVisible() {
		return detailLayout{inspectorWidth: availableWidth}
	}

	formWidth := CommentFormWidth
	if availableWidth-formWidth < 40 {
		// Too narrow for side by side; the form goes below
		return detailLayout{inspectorWidth: availableWidth}
	}
	return detailLayout{
		inspectorWidth: availableWidth - formWidth,
		formWidth:      formWidth,
	}
}

// contentHeight is the space between header and footer
func (m Model) contentHeight() int {
	h := m.Height - HeaderHeight - FooterHeight
	if h < 1 {
		h = 1
	}
	return h
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	m.SearchBar.SetWidth(m.Width / 3)

	contentHeight := m.contentHeight()

	switch m.Route {
	case RouteList:
		m.Grid.SetSize(m.Width, contentHeight-ListChromeHeight)
		m.Grid.SetFocused(true)
		m.Inspector.SetFocused(false)

	case RouteDetail:
		m.Grid.SetFocused(false)
		layout := m.calculateDetailLayout(m.Width)
		m.Inspector.SetSize(layout.inspectorWidth, contentHeight)
		m.Inspector.SetFocused(!m.CommentForm.Focused())
		if layout.formWidth > 0 {
			m.CommentForm.SetWidth(layout.formWidth - 4)
		} else {
			m.CommentForm.SetWidth(m.Width - 4)
		}
	}
}
