package views

import (
	"fmt"
	"strings"
)

type ListPanelData struct {
	TableView string
	Count     int
}

type FormPanelData struct {
	Heading   string
	TitleView string
	DescView  string
	Done      bool
	ErrorText string
}

type DeletePanelData struct {
	ID    int
	Title string
}

func RenderListPanel(data ListPanelData) string {
	var b strings.Builder
	b.WriteString("actions: [a]add [e]edit [d]delete [x]done [s]export [/]command [?]help [q]quit\n")
	if data.Count == 0 {
		b.WriteString("\nNo tasks yet. Press 'a' to add the first one.")
		return b.String()
	}
	b.WriteString(data.TableView)
	b.WriteString(fmt.Sprintf("\n%d task(s)", data.Count))
	return b.String()
}

func RenderFormPanel(data FormPanelData) string {
	check := " "
	if data.Done {
		check = "x"
	}
	var b strings.Builder
	b.WriteString(data.Heading + "\n\n")
	b.WriteString("title:\n" + data.TitleView + "\n\n")
	b.WriteString("description:\n" + data.DescView + "\n\n")
	b.WriteString(fmt.Sprintf("[%s] done  (ctrl+t toggles)\n\n", check))
	b.WriteString("actions: [tab]next field [ctrl+s]save [esc]cancel")
	if data.ErrorText != "" {
		b.WriteString("\n" + errorStyle.Render(data.ErrorText))
	}
	return b.String()
}

func RenderDeletePanel(data DeletePanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Delete task %d: %q?\n\n", data.ID, data.Title))
	b.WriteString("actions: [y]delete [n/esc]cancel")
	return b.String()
}

func RenderExportPanel() string {
	var b strings.Builder
	b.WriteString("Export snapshot\n\n")
	b.WriteString("1) JSON (same shape as the data file)\n")
	b.WriteString("2) CSV  (opens in Excel/Sheets)\n\n")
	b.WriteString("actions: [1]json [2]csv [esc]back")
	return b.String()
}

func RenderPalettePanel(inputView string) string {
	var b strings.Builder
	b.WriteString("command: add <title> | done <id> | delete <id> | export json|csv\n")
	b.WriteString(inputView + "\n")
	b.WriteString("actions: [enter]run [esc]close")
	return b.String()
}
