package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.Palette.Active = true
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Add:
		m = m.openAddForm()
		return m, nil
	case m.Keys.Edit:
		task, ok := m.selectedTask()
		if !ok {
			m.Status = StatusBar{Text: "nothing selected to edit", IsError: true}
			return m, nil
		}
		m = m.openEditForm(task)
		return m, nil
	case m.Keys.Delete:
		task, ok := m.selectedTask()
		if !ok {
			m.Status = StatusBar{Text: "nothing selected to delete", IsError: true}
			return m, nil
		}
		m.DeleteTarget = task.ID
		m.CurrentView = ViewConfirmDelete
		return m, nil
	case m.Keys.Toggle:
		task, ok := m.selectedTask()
		if !ok {
			m.Status = StatusBar{Text: "nothing selected", IsError: true}
			return m, nil
		}
		m.Store.Toggle(task.ID)
		m.syncTable()
		m.Status = StatusBar{Text: fmt.Sprintf("task %d toggled", task.ID)}
		return m, nil
	case m.Keys.Export:
		m.CurrentView = ViewExport
		return m, nil
	}

	var cmd tea.Cmd
	m.taskTable, cmd = m.taskTable.Update(msg)
	return m, cmd
}

func (m Model) handleDeleteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y":
		if m.Store.Delete(m.DeleteTarget) {
			m.Status = StatusBar{Text: fmt.Sprintf("task %d deleted", m.DeleteTarget)}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("task %d not found", m.DeleteTarget), IsError: true}
		}
		m.DeleteTarget = 0
		m.CurrentView = ViewList
		m.syncTable()
	case "n", "esc":
		m.DeleteTarget = 0
		m.CurrentView = ViewList
		m.Status = StatusBar{Text: "delete canceled"}
	}
	return m
}

func (m Model) handleExportKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "1":
		path, err := m.Exporter.JSON(m.Store.Tasks())
		if err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		m.Status = StatusBar{Text: "exported JSON to " + path}
		m.CurrentView = ViewList
	case "2":
		path, err := m.Exporter.CSV(m.Store.Tasks())
		if err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		m.Status = StatusBar{Text: "exported CSV to " + path}
		m.CurrentView = ViewList
	case "esc":
		m.CurrentView = ViewList
	}
	return m
}
