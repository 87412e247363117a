package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tareas/internal/model"
)

func (m Model) openAddForm() Model {
	m.CurrentView = ViewAdd
	m.Form = FormState{}
	m.titleInput.SetValue("")
	m.descArea.SetValue("")
	m.titleInput.Focus()
	m.descArea.Blur()
	return m
}

func (m Model) openEditForm(task model.Task) Model {
	m.CurrentView = ViewEdit
	m.Form = FormState{TaskID: task.ID, Done: task.Done}
	m.titleInput.SetValue(task.Title)
	m.descArea.SetValue(task.Description)
	m.titleInput.Focus()
	m.descArea.Blur()
	return m
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.CurrentView = ViewList
		m.Form = FormState{}
		m.Status = StatusBar{Text: "canceled"}
		return m, nil
	case "tab", "shift+tab":
		if m.Form.Field == FieldTitle {
			m.Form.Field = FieldDescription
			m.titleInput.Blur()
			m.descArea.Focus()
		} else {
			m.Form.Field = FieldTitle
			m.descArea.Blur()
			m.titleInput.Focus()
		}
		return m, nil
	case "ctrl+t":
		m.Form.Done = !m.Form.Done
		return m, nil
	case "ctrl+s":
		return m.saveForm()
	case "enter":
		// Enter on the title moves on to the description; inside the
		// description it inserts a newline like any textarea.
		if m.Form.Field == FieldTitle {
			m.Form.Field = FieldDescription
			m.titleInput.Blur()
			m.descArea.Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.Form.Field == FieldTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.descArea, cmd = m.descArea.Update(msg)
	}
	return m, cmd
}

func (m Model) saveForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		m.Form.ErrorText = "title cannot be empty"
		return m, nil
	}
	description := m.descArea.Value()

	if m.CurrentView == ViewEdit {
		if !m.Store.Edit(m.Form.TaskID, title, description, m.Form.Done) {
			m.Status = StatusBar{Text: fmt.Sprintf("task %d not found", m.Form.TaskID), IsError: true}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("task %d updated", m.Form.TaskID)}
		}
	} else {
		task := m.Store.Add(title, description, m.Form.Done)
		m.Status = StatusBar{Text: fmt.Sprintf("task %d added", task.ID)}
	}

	m.CurrentView = ViewList
	m.Form = FormState{}
	m.syncTable()
	return m, nil
}
