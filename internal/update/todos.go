package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todoscreen/internal/tasklist"
	"github.com/sandeepkv93/todoscreen/internal/views"
)

func (m Model) handleTodoKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	vm := m.List.ViewModel()
	selected, hasSelection := vm.Item(m.Todos.Cursor + 1)

	switch msg.String() {
	case "up", "k":
		if m.Todos.Cursor > 0 {
			m.Todos.Cursor--
		}
	case "down", "j":
		if m.Todos.Cursor < len(vm.Items)-1 {
			m.Todos.Cursor++
		}
	case "a", "i":
		m.Todos.Adding = true
		m.Status = StatusBar{Text: "add mode"}
		return m, m.addInput.Focus()
	case " ", "space", "enter":
		if !hasSelection {
			return m, nil
		}
		m.List.ToggleCompletion(selected.ID)
		if selected.Completed {
			m.Status = StatusBar{Text: fmt.Sprintf("reopened: %s", selected.Text)}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", selected.Text)}
		}
	case "e":
		if !hasSelection {
			return m, nil
		}
		if err := m.List.BeginEdit(selected.ID); err != nil {
			m.Status = StatusBar{Text: tasklist.UserMessage(err), IsError: true}
			return m, nil
		}
		m.editInput.SetValue(m.List.ViewModel().Draft)
		m.editInput.CursorEnd()
		m.Status = StatusBar{Text: "editing: enter to save, esc to cancel"}
		return m, m.editInput.Focus()
	case "d":
		if !hasSelection {
			return m, nil
		}
		m.List.DeleteItem(selected.ID)
		m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", selected.Text)}
	case "D":
		if err := m.List.DeleteAll(); err != nil {
			return m, nil
		}
		m.Todos.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("deleted %d todo(s)", len(vm.Items))}
	case "y":
		if !hasSelection {
			return m, nil
		}
		if err := m.clipboard.WriteAll(selected.Text); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("copy failed: %v", err), IsError: true}
			m.log.WithError(err).Warn("clipboard write failed")
			return m, nil
		}
		m.Status = StatusBar{Text: fmt.Sprintf("copied: %s", selected.Text)}
		m.notify("Copied", selected.Text, "info")
	}
	return m, nil
}

func (m Model) handleAddKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Todos.Adding = false
		m.addInput.Blur()
		m.Status = StatusBar{Text: "list mode"}
		return m, nil
	case "enter":
		m.List.SetInputDraft(m.addInput.Value())
		if _, err := m.List.AddItem(m.addInput.Value()); err == nil {
			m.Todos.Cursor = m.List.Len() - 1
		}
		m.addInput.SetValue(m.List.ViewModel().InputDraft)
		return m, nil
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	m.List.SetInputDraft(m.addInput.Value())
	return m, cmd
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.List.CancelEdit()
		m.editInput.Blur()
		m.editInput.SetValue("")
		m.Status = StatusBar{Text: "edit cancelled"}
		return m, nil
	case "enter":
		_, err := m.List.CommitEdit()
		if kind, _ := tasklist.KindOf(err); kind == tasklist.KindValidation {
			return m, nil
		}
		m.editInput.Blur()
		m.editInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.List.UpdateDraft(m.editInput.Value())
	if draft := m.List.ViewModel().Draft; draft != m.editInput.Value() {
		pos := m.editInput.Position()
		m.editInput.SetValue(draft)
		m.editInput.SetCursor(pos)
	}
	return m, cmd
}

// updateFocusedInput hands non-key messages, such as cursor blinks, to
// whichever text input currently has focus.
func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.Palette.Active:
		m.commandInput, cmd = m.commandInput.Update(msg)
	case m.List.ViewModel().Editing:
		m.editInput, cmd = m.editInput.Update(msg)
	case m.Todos.Adding:
		m.addInput, cmd = m.addInput.Update(msg)
	}
	return m, cmd
}

func (m Model) renderTodoView() string {
	vm := m.List.ViewModel()
	items := make([]views.TodoItemData, 0, len(vm.Items))
	for i, item := range vm.Items {
		items = append(items, views.TodoItemData{
			Position:  item.Position,
			Text:      item.Text,
			Completed: item.Completed,
			Marker:    item.Marker(),
			Selected:  i == m.Todos.Cursor,
			Editing:   item.Editing,
		})
	}
	return views.RenderTodoPanel(views.TodoPanelData{
		InputView:   m.addInput.View(),
		EditView:    m.editInput.View(),
		Items:       items,
		Deleting:    vm.DeletingID != "",
		DeletingAll: vm.DeletingAll,
		SpinnerView: m.busySpinner.View(),
		Total:       vm.Stats.Total,
		Done:        vm.Stats.Done,
		Pending:     vm.Stats.Pending,
	})
}
