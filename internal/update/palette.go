package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tareas/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := m.Palette.Input
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task := m.Store.Add(a.Title, "", false)
			return commands.Result{Message: fmt.Sprintf("task %d added: %s", task.ID, task.Title)}, nil
		},
		Done: func(a commands.DoneArgs) (commands.Result, error) {
			if !m.Store.Toggle(a.ID) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("task %d not found", a.ID)}
			}
			return commands.Result{Message: fmt.Sprintf("task %d toggled", a.ID)}, nil
		},
		Delete: func(a commands.DeleteArgs) (commands.Result, error) {
			if !m.Store.Delete(a.ID) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("task %d not found", a.ID)}
			}
			return commands.Result{Message: fmt.Sprintf("task %d deleted", a.ID)}, nil
		},
		Export: func(a commands.ExportArgs) (commands.Result, error) {
			var path string
			var err error
			if a.Format == commands.ExportCSV {
				path, err = m.Exporter.CSV(m.Store.Tasks())
			} else {
				path, err = m.Exporter.JSON(m.Store.Tasks())
			}
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("exported %s to %s", a.Format, path)}, nil
		},
	})
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	m.syncTable()
	m.Status = StatusBar{Text: res.Message}
	return m
}
