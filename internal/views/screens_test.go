package views

import (
	"strings"
	"testing"
)

func TestRenderTodoPanelEmptyState(t *testing.T) {
	out := RenderTodoPanel(TodoPanelData{InputView: "> Add a Todo"})
	if !strings.Contains(out, "No todos yet") || !strings.Contains(out, "Add your first todo to get started!") {
		t.Fatalf("missing empty state:\n%s", out)
	}
	if strings.Contains(out, "Delete All") {
		t.Fatalf("delete all affordance should be hidden for an empty list:\n%s", out)
	}
}

func TestRenderTodoPanelItems(t *testing.T) {
	out := RenderTodoPanel(TodoPanelData{
		Items: []TodoItemData{
			{Position: 1, Text: "Buy milk", Marker: "○", Selected: true},
			{Position: 2, Text: "Walk dog", Marker: "✓", Completed: true},
		},
		Total: 2, Done: 1, Pending: 1,
	})
	for _, want := range []string{"> 1. ○", "Buy milk", "2. ✓", "Walk dog", "2 total | 1 done | 1 pending", "[D] Delete All"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestRenderTodoPanelBusySpinner(t *testing.T) {
	out := RenderTodoPanel(TodoPanelData{
		Items:       []TodoItemData{{Position: 1, Text: "a", Marker: "○"}},
		Deleting:    true,
		SpinnerView: "*",
	})
	if !strings.Contains(out, "* deleting") || strings.Contains(out, "[D] Delete All") {
		t.Fatalf("expected spinner in place of delete all:\n%s", out)
	}

	out = RenderTodoPanel(TodoPanelData{DeletingAll: true, SpinnerView: "*"})
	if !strings.Contains(out, "* deleting all") {
		t.Fatalf("expected delete-all spinner on empty list:\n%s", out)
	}
}

func TestRenderTodoPanelEditingRow(t *testing.T) {
	out := RenderTodoPanel(TodoPanelData{
		EditView: "> draft",
		Items:    []TodoItemData{{Position: 1, Text: "a", Marker: "○", Editing: true}},
	})
	if !strings.Contains(out, "> draft") || !strings.Contains(out, "[enter]save") {
		t.Fatalf("expected edit row:\n%s", out)
	}
}

func TestRenderLearnPanelLinks(t *testing.T) {
	out := RenderLearnPanel(LearnPanelData{
		ContentView: "body",
		Links: []LearnLinkData{
			{Title: "Official Tutorial", URL: "https://reactnative.dev/docs/tutorial", Selected: true},
			{Title: "Expo Learning", URL: "https://expo.dev/learn"},
		},
	})
	if !strings.Contains(out, "> Official Tutorial (https://reactnative.dev/docs/tutorial)") {
		t.Fatalf("expected selected link:\n%s", out)
	}
	if !strings.Contains(out, "  Expo Learning") {
		t.Fatalf("expected second link:\n%s", out)
	}
}

func TestRenderNotificationAndPalette(t *testing.T) {
	if RenderNotification("info", "  ") != "" {
		t.Fatal("blank notification should render empty")
	}
	if out := RenderNotification("error", "Please enter a todo item"); !strings.Contains(out, "Please enter a todo item") {
		t.Fatalf("unexpected notification: %q", out)
	}
	if RenderCommandPalette(false, "add x") != "" {
		t.Fatal("inactive palette should render empty")
	}
	if got := RenderCommandPalette(true, "add x"); got != "command: /add x" {
		t.Fatalf("unexpected palette: %q", got)
	}
}

func TestRenderAppIncludesTabsAndFooter(t *testing.T) {
	out := RenderApp(AppData{
		Tabs:       []string{"Todo List", "Learn"},
		Body:       "body",
		StatusLine: "ready",
		Footer:     "[?] help",
	})
	for _, want := range []string{"Todo List", "Learn", "body", "ready", "[?] help"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestRenderMarkdownBlankInput(t *testing.T) {
	if RenderMarkdown("   ", "dark", 40) != "" {
		t.Fatal("blank markdown should render empty")
	}
	if out := RenderMarkdown("# Learn", "notty", 40); !strings.Contains(out, "Learn") {
		t.Fatalf("unexpected markdown render: %q", out)
	}
}
