package views

import (
	"fmt"
	"strings"
)

type TodoItemData struct {
	Position  int
	Text      string
	Completed bool
	Marker    string
	Selected  bool
	Editing   bool
}

type TodoPanelData struct {
	InputView   string
	EditView    string
	Items       []TodoItemData
	Deleting    bool
	DeletingAll bool
	SpinnerView string
	Total       int
	Done        int
	Pending     int
}

type LearnLinkData struct {
	Title    string
	URL      string
	Selected bool
}

type LearnPanelData struct {
	ContentView string
	Links       []LearnLinkData
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderTodoPanel(data TodoPanelData) string {
	var b strings.Builder
	b.WriteString("todos:\n")
	b.WriteString(data.InputView + "\n")
	b.WriteString("actions: [a]add [space]toggle [e]edit [d]delete [D]delete-all [y]copy\n")

	if len(data.Items) == 0 {
		b.WriteString("\nNo todos yet\n")
		b.WriteString("Add your first todo to get started!")
		if data.DeletingAll {
			b.WriteString("\n" + data.SpinnerView + " deleting all")
		}
		return strings.TrimSpace(b.String())
	}

	b.WriteString(fmt.Sprintf("\n%d total | %d done | %d pending\n", data.Total, data.Done, data.Pending))
	for _, item := range data.Items {
		cursor := " "
		if item.Selected {
			cursor = ">"
		}
		if item.Editing {
			b.WriteString(fmt.Sprintf("%s %s %s [enter]save [esc]cancel\n", cursor, item.Marker, data.EditView))
			continue
		}
		text := item.Text
		if item.Completed {
			text = doneStyle.Render(text)
		} else if item.Selected {
			text = selectedStyle.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s %d. %s %s\n", cursor, item.Position, item.Marker, text))
	}

	b.WriteString("\n" + deleteAllAffordance(data))
	return strings.TrimSpace(b.String())
}

// deleteAllAffordance shows the spinner in place of the buttons while a delete is settling.
func deleteAllAffordance(data TodoPanelData) string {
	switch {
	case data.DeletingAll:
		return data.SpinnerView + " deleting all"
	case data.Deleting:
		return data.SpinnerView + " deleting"
	default:
		return "[D] Delete All"
	}
}

func RenderLearnPanel(data LearnPanelData) string {
	var b strings.Builder
	b.WriteString("learn:\n")
	b.WriteString("actions: [j/k]link [o]open [pgup/pgdown]scroll\n")
	b.WriteString(data.ContentView + "\n")
	b.WriteString("\nlinks:\n")
	for _, link := range data.Links {
		cursor := " "
		if link.Selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s (%s)\n", cursor, link.Title, link.URL))
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	label := fmt.Sprintf("[%s]", strings.ToUpper(level))
	switch strings.ToLower(level) {
	case "error":
		label = errorStyle.Render(label)
	case "info":
		label = infoStyle.Render(label)
	default:
		label = statusStyle.Render(label)
	}
	return fmt.Sprintf("notification: %s %s", label, body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
