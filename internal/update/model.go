package update

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/tareas/internal/export"
	"github.com/sandeepkv93/tareas/internal/model"
	"github.com/sandeepkv93/tareas/internal/store"
)

type View string

const (
	ViewList          View = "List"
	ViewAdd           View = "Add"
	ViewEdit          View = "Edit"
	ViewConfirmDelete View = "ConfirmDelete"
	ViewExport        View = "Export"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Add    string
	Edit   string
	Delete string
	Toggle string
	Export string
	Help   string
	Quit   string
}

type FormField int

const (
	FieldTitle FormField = iota
	FieldDescription
)

type FormState struct {
	TaskID    int
	Done      bool
	Field     FormField
	ErrorText string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView  View
	Store        *store.Store
	Exporter     *export.Exporter
	Form         FormState
	DeleteTarget int
	Palette      CommandPaletteState
	Status       StatusBar
	Keys         GlobalKeyMap
	HelpVisible  bool
	Quitting     bool
	LastError    error

	taskTable    table.Model
	titleInput   textinput.Model
	descArea     textarea.Model
	commandInput textinput.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(st *store.Store, ex *export.Exporter) Model {
	m := Model{
		CurrentView: ViewList,
		Store:       st,
		Exporter:    ex,
		Keys: GlobalKeyMap{
			Add:    "a",
			Edit:   "e",
			Delete: "d",
			Toggle: "x",
			Export: "s",
			Help:   "?",
			Quit:   "q",
		},
	}
	m.initBubbleComponents()
	m.syncTable()
	return m
}

func (m *Model) initBubbleComponents() {
	cols := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "✓", Width: 2},
		{Title: "Date", Width: 19},
		{Title: "Title", Width: 28},
		{Title: "Description", Width: 32},
	}
	m.taskTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(12))

	m.titleInput = textinput.New()
	m.titleInput.Prompt = "> "
	m.titleInput.CharLimit = 256
	m.titleInput.Width = 48

	m.descArea = textarea.New()
	m.descArea.SetWidth(48)
	m.descArea.SetHeight(4)
	m.descArea.CharLimit = 1024

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48
}

func (m *Model) syncTable() {
	tasks := m.Store.Tasks()
	rows := make([]table.Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, taskRow(t))
	}
	m.taskTable.SetRows(rows)
	if cursor := m.taskTable.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.taskTable.SetCursor(len(rows) - 1)
	}
}

func taskRow(t model.Task) table.Row {
	check := ""
	if t.Done {
		check = "✔"
	}
	return table.Row{
		intString(t.ID),
		check,
		t.Date,
		truncate(t.Title, 28),
		truncate(t.Description, 32),
	}
}

// selectedTask resolves the table cursor against the sorted task list.
func (m Model) selectedTask() (model.Task, bool) {
	tasks := m.Store.Tasks()
	cursor := m.taskTable.Cursor()
	if cursor < 0 || cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[cursor], true
}
