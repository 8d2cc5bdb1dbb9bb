package tasklist

import "github.com/sandeepkv93/todoscreen/internal/model"

type ItemView struct {
	model.Item
	Position int
	Editing  bool
	Deleting bool
}

type Stats struct {
	Total   int
	Done    int
	Pending int
}

// ViewModel is a read-only snapshot of the controller for rendering.
type ViewModel struct {
	Items       []ItemView
	Editing     bool
	EditingID   string
	Draft       string
	InputDraft  string
	DeletingID  string
	DeletingAll bool
	Stats       Stats
	LastNotice  *Notice
}

func (v ViewModel) Empty() bool {
	return len(v.Items) == 0
}

// Item returns the view at 1-based display position pos.
func (v ViewModel) Item(pos int) (ItemView, bool) {
	if pos < 1 || pos > len(v.Items) {
		return ItemView{}, false
	}
	return v.Items[pos-1], true
}

func (c *Controller) ViewModel() ViewModel {
	vm := ViewModel{
		Items:       make([]ItemView, 0, len(c.items)),
		InputDraft:  c.inputDraft,
		DeletingAll: c.deletingAll.active,
	}
	if c.edit.targetID != "" {
		vm.Editing = true
		vm.EditingID = c.edit.targetID
		vm.Draft = c.edit.draft
	}
	if c.deleting.active {
		vm.DeletingID = c.deleting.itemID
	}
	for i, item := range c.items {
		vm.Items = append(vm.Items, ItemView{
			Item:     item,
			Position: i + 1,
			Editing:  item.ID == c.edit.targetID,
			Deleting: c.deleting.active && item.ID == c.deleting.itemID,
		})
		if item.Completed {
			vm.Stats.Done++
		}
	}
	vm.Stats.Total = len(c.items)
	vm.Stats.Pending = vm.Stats.Total - vm.Stats.Done
	if len(c.notices) > 0 {
		last := c.notices[len(c.notices)-1]
		vm.LastNotice = &last
	}
	return vm
}
