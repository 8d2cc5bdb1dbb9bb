package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/todoscreen/internal/tasklist"
)

// ListHandlers binds every command to list. Item numbers resolve against the
// list as currently displayed.
func ListHandlers(list *tasklist.Controller) Handlers {
	return Handlers{
		Add: func(a AddArgs) (Result, error) {
			item, err := list.AddItem(a.Text)
			if err != nil {
				return Result{}, err
			}
			return Result{Message: fmt.Sprintf("added #%d: %s", list.Len(), item.Text)}, nil
		},
		Toggle: func(a ToggleArgs) (Result, error) {
			item, err := itemAt(list, a.Position)
			if err != nil {
				return Result{}, err
			}
			list.ToggleCompletion(item.ID)
			state := "completed"
			if item.Completed {
				state = "reopened"
			}
			return Result{Message: fmt.Sprintf("%s #%d: %s", state, a.Position, item.Text)}, nil
		},
		Edit: func(a EditArgs) (Result, error) {
			item, err := itemAt(list, a.Position)
			if err != nil {
				return Result{}, err
			}
			if err := list.BeginEdit(item.ID); err != nil {
				return Result{}, err
			}
			list.UpdateDraft(a.Text)
			updated, err := list.CommitEdit()
			if err != nil {
				list.CancelEdit()
				return Result{}, err
			}
			return Result{Message: fmt.Sprintf("updated #%d: %s", a.Position, updated.Text)}, nil
		},
		Delete: func(a DeleteArgs) (Result, error) {
			item, err := itemAt(list, a.Position)
			if err != nil {
				return Result{}, err
			}
			list.DeleteItem(item.ID)
			return Result{Message: fmt.Sprintf("deleted #%d: %s", a.Position, item.Text)}, nil
		},
		Clear: func() (Result, error) {
			n := list.Len()
			if err := list.DeleteAll(); err != nil {
				return Result{}, err
			}
			return Result{Message: fmt.Sprintf("deleted %d todo(s)", n)}, nil
		},
		List: func() (Result, error) {
			return Result{Message: FormatList(list.ViewModel())}, nil
		},
	}
}

func FormatList(vm tasklist.ViewModel) string {
	if vm.Empty() {
		return "No todos yet"
	}
	lines := make([]string, 0, len(vm.Items))
	for _, item := range vm.Items {
		lines = append(lines, fmt.Sprintf("%d. %s %s", item.Position, item.Marker(), item.Text))
	}
	return strings.Join(lines, "\n")
}

func itemAt(list *tasklist.Controller, pos int) (tasklist.ItemView, error) {
	item, ok := list.ViewModel().Item(pos)
	if !ok {
		return tasklist.ItemView{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("no todo at position %d", pos)}
	}
	return item, nil
}
