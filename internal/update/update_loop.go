package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tareas/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		switch m.CurrentView {
		case ViewList:
			return m.handleListKey(typed)
		case ViewAdd, ViewEdit:
			return m.handleFormKey(typed)
		case ViewConfirmDelete:
			return m.handleDeleteKey(typed), nil
		case ViewExport:
			return m.handleExportKey(typed), nil
		}
	case SwitchViewMsg:
		switch typed.View {
		case ViewList, ViewAdd, ViewEdit, ViewConfirmDelete, ViewExport:
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return "hasta luego!\n"
	}

	var body string
	switch m.CurrentView {
	case ViewAdd:
		body = views.RenderFormPanel(views.FormPanelData{
			Heading:   "Add task",
			TitleView: m.titleInput.View(),
			DescView:  m.descArea.View(),
			Done:      m.Form.Done,
			ErrorText: m.Form.ErrorText,
		})
	case ViewEdit:
		body = views.RenderFormPanel(views.FormPanelData{
			Heading:   fmt.Sprintf("Edit task %d", m.Form.TaskID),
			TitleView: m.titleInput.View(),
			DescView:  m.descArea.View(),
			Done:      m.Form.Done,
			ErrorText: m.Form.ErrorText,
		})
	case ViewConfirmDelete:
		title := ""
		if task, ok := m.Store.Get(m.DeleteTarget); ok {
			title = task.Title
		}
		body = views.RenderDeletePanel(views.DeletePanelData{ID: m.DeleteTarget, Title: title})
	case ViewExport:
		body = views.RenderExportPanel()
	default:
		body = views.RenderListPanel(views.ListPanelData{
			TableView: m.taskTable.View(),
			Count:     m.Store.Len(),
		})
	}

	overlay := ""
	if m.Palette.Active {
		overlay = views.RenderPalettePanel(m.commandInput.View())
	} else if m.HelpVisible {
		overlay = views.RenderMarkdown(helpMarkdown)
	}

	return views.RenderApp(views.AppData{
		Header:  fmt.Sprintf("tareas · view: %s", m.CurrentView),
		Body:    body,
		Status:  "status: " + m.Status.Text,
		IsError: m.Status.IsError,
		Footer:  "press ? for help",
		Overlay: overlay,
	})
}
