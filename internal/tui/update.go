package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// title, tabs, summary, detail pane and help
		if h := msg.Height - 20; h > 3 {
			m.opportunityTable.SetHeight(h)
		}
		return m, nil

	case NavigateMsg:
		m.currentScene = msg.Scene
		m.syncFocus()
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ReportLoadedMsg:
		m.report = msg.Report
		m.loading = false
		m.regimeTable.SetRows(regimeRows(&msg.Report.Comparison))
		m.opportunityTable.SetRows(opportunityRows(msg.Report.Opportunities))
		m.opportunityTable.SetCursor(0)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Errors swallow everything but quit
	if m.err != nil || m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextTab):
		return m.navigate(Scene((int(m.currentScene) + 1) % sceneCount))

	case key.Matches(msg, m.keys.PrevTab):
		return m.navigate(Scene((int(m.currentScene) + sceneCount - 1) % sceneCount))

	case key.Matches(msg, m.keys.Comparison):
		return m.navigate(SceneComparison)

	case key.Matches(msg, m.keys.Opportunities):
		return m.navigate(SceneOpportunities)
	}

	return m.updateCurrentScene(msg)
}

func (m Model) navigate(s Scene) (tea.Model, tea.Cmd) {
	m.currentScene = s
	m.syncFocus()
	return m, nil
}

// syncFocus focuses the table of the active scene
func (m *Model) syncFocus() {
	if m.currentScene == SceneOpportunities {
		m.regimeTable.Blur()
		m.opportunityTable.Focus()
		return
	}
	m.opportunityTable.Blur()
	m.regimeTable.Focus()
}

// updateCurrentScene delegates to the active table
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneComparison:
		m.regimeTable, cmd = m.regimeTable.Update(msg)
	case SceneOpportunities:
		m.opportunityTable, cmd = m.opportunityTable.Update(msg)
	}
	return m, cmd
}
