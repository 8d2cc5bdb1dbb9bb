// Package tasklist holds the state of the todo screen: the ordered items, the
// single edit slot and the cosmetic busy markers shown while deletes run.
package tasklist

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/todoscreen/internal/model"
	"github.com/sirupsen/logrus"
)

// DefaultBusyDelay is how long a busy marker stays visible after a delete.
const DefaultBusyDelay = 100 * time.Millisecond

const (
	msgEmptyInput     = "Please enter a todo item"
	msgNoSelection    = "No todo selected for editing"
	msgEditTargetGone = "The todo being edited no longer exists"
	msgUnknownItem    = "Todo not found"
	msgNothingToDel   = "No todos to delete"
	msgInvalidItem    = "This todo could not be saved"
	msgAdded          = "Todo added successfully!"
	msgUpdated        = "Todo updated successfully!"
)

type editSession struct {
	targetID string
	draft    string
}

type marker struct {
	active     bool
	itemID     string
	generation uint64
}

func (m marker) token(kind BusyKind) BusyToken {
	return BusyToken{Kind: kind, ItemID: m.itemID, Generation: m.generation}
}

type Controller struct {
	items       []model.Item
	inputDraft  string
	edit        editSession
	deleting    marker
	deletingAll marker
	generation  uint64
	issued      map[string]struct{}
	notices     []Notice
	noticeSeq   uint64

	newID     func() string
	now       func() time.Time
	deferrer  Deferrer
	busyDelay time.Duration
	log       *logrus.Entry
}

type Option func(*Controller)

func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.newID = fn
		}
	}
}

func WithDeferrer(d Deferrer) Option {
	return func(c *Controller) {
		if d != nil {
			c.deferrer = d
		}
	}
}

func WithBusyDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.busyDelay = d
		}
	}
}

func WithLogger(entry *logrus.Entry) Option {
	return func(c *Controller) {
		if entry != nil {
			c.log = entry
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

func New(opts ...Option) *Controller {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	c := &Controller{
		issued:    make(map[string]struct{}),
		newID:     uuid.NewString,
		now:       time.Now,
		deferrer:  nopDeferrer{},
		busyDelay: DefaultBusyDelay,
		log:       logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithField("module", "tasklist")
	return c
}

func (c *Controller) BusyDelay() time.Duration {
	return c.busyDelay
}

// SetInputDraft mirrors the add box so that a successful add can clear it.
func (c *Controller) SetInputDraft(text string) {
	c.inputDraft = text
}

func (c *Controller) AddItem(raw string) (model.Item, error) {
	text, _ := model.NormalizeText(raw)
	item := model.Item{ID: c.peekID(), Text: text}
	if err := item.Validate(); err != nil {
		return model.Item{}, c.notifyErr(invalidItemError("add", err))
	}
	c.issued[item.ID] = struct{}{}
	c.items = append(c.items, item)
	c.inputDraft = ""
	c.log.WithFields(logrus.Fields{"op": "add", "id": item.ID, "count": len(c.items)}).Debug("item added")
	c.notify(LevelSuccess, "Success", msgAdded)
	return item, nil
}

func (c *Controller) ToggleCompletion(id string) {
	idx := c.indexOf(id)
	if idx < 0 {
		c.log.WithFields(logrus.Fields{"op": "toggle", "id": id}).Debug("toggle ignored, unknown id")
		return
	}
	c.items[idx].Completed = !c.items[idx].Completed
	c.log.WithFields(logrus.Fields{"op": "toggle", "id": id, "completed": c.items[idx].Completed}).Debug("item toggled")
}

// BeginEdit opens the edit slot on id. Any previous unsaved draft, including
// one on the same item, is dropped.
func (c *Controller) BeginEdit(id string) error {
	idx := c.indexOf(id)
	if idx < 0 {
		return notFoundError("edit", msgUnknownItem)
	}
	if c.edit.targetID != "" && c.edit.targetID != id {
		c.log.WithFields(logrus.Fields{"op": "edit", "previous": c.edit.targetID, "id": id}).Debug("discarding previous draft")
	}
	c.edit = editSession{targetID: id, draft: c.items[idx].Text}
	return nil
}

// UpdateDraft replaces the draft verbatim. Runes past MaxTextLength are dropped.
func (c *Controller) UpdateDraft(text string) {
	if c.edit.targetID == "" {
		return
	}
	if !model.FitsDraft(text) {
		text = string([]rune(text)[:model.MaxTextLength])
	}
	c.edit.draft = text
}

func (c *Controller) CommitEdit() (model.Item, error) {
	if c.edit.targetID == "" {
		return model.Item{}, c.notifyErr(notFoundError("commit", msgNoSelection))
	}
	text, _ := model.NormalizeText(c.edit.draft)
	candidate := model.Item{ID: c.edit.targetID, Text: text}
	if err := candidate.Validate(); err != nil {
		return model.Item{}, c.notifyErr(invalidItemError("commit", err))
	}
	idx := c.indexOf(c.edit.targetID)
	if idx < 0 {
		c.edit = editSession{}
		return model.Item{}, c.notifyErr(notFoundError("commit", msgEditTargetGone))
	}
	c.items[idx].Text = candidate.Text
	c.edit = editSession{}
	c.log.WithFields(logrus.Fields{"op": "commit", "id": c.items[idx].ID}).Debug("item updated")
	c.notify(LevelSuccess, "Success", msgUpdated)
	return c.items[idx], nil
}

func (c *Controller) CancelEdit() {
	c.edit = editSession{}
}

// DeleteItem removes id right away and raises the per-item busy marker until
// the deferrer clears it.
func (c *Controller) DeleteItem(id string) {
	idx := c.indexOf(id)
	if idx < 0 {
		c.log.WithFields(logrus.Fields{"op": "delete", "id": id}).Debug("delete ignored, unknown id")
		return
	}
	if c.deleting.active {
		c.deferrer.Cancel(c.deleting.token(BusyDeleteItem))
	}
	c.deleting = marker{active: true, itemID: id, generation: c.nextGeneration()}

	c.items = append(c.items[:idx], c.items[idx+1:]...)
	if c.edit.targetID == id {
		c.edit = editSession{}
	}
	c.log.WithFields(logrus.Fields{"op": "delete", "id": id, "count": len(c.items)}).Debug("item deleted")
	c.deferrer.Defer(c.busyDelay, c.deleting.token(BusyDeleteItem))
}

func (c *Controller) DeleteAll() error {
	if len(c.items) == 0 {
		return c.notifyErr(noOpError("delete_all", msgNothingToDel))
	}
	if c.deleting.active {
		c.deferrer.Cancel(c.deleting.token(BusyDeleteItem))
		c.deleting = marker{}
	}
	if c.deletingAll.active {
		c.deferrer.Cancel(c.deletingAll.token(BusyDeleteAll))
	}
	c.deletingAll = marker{active: true, generation: c.nextGeneration()}

	removed := len(c.items)
	c.items = nil
	c.edit = editSession{}
	c.log.WithFields(logrus.Fields{"op": "delete_all", "removed": removed}).Debug("all items deleted")
	c.deferrer.Defer(c.busyDelay, c.deletingAll.token(BusyDeleteAll))
	return nil
}

// ClearBusy drops the marker tok was issued for. Tokens from a superseded
// marker are ignored.
func (c *Controller) ClearBusy(tok BusyToken) bool {
	var m *marker
	switch tok.Kind {
	case BusyDeleteItem:
		m = &c.deleting
	case BusyDeleteAll:
		m = &c.deletingAll
	default:
		return false
	}
	if !m.active || m.generation != tok.Generation || m.itemID != tok.ItemID {
		c.log.WithFields(logrus.Fields{"op": "clear_busy", "kind": tok.Kind, "generation": tok.Generation}).Debug("stale busy token")
		return false
	}
	*m = marker{}
	return true
}

func (c *Controller) Len() int {
	return len(c.items)
}

func (c *Controller) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Controller) nextGeneration() uint64 {
	c.generation++
	return c.generation
}

// peekID returns an id that has never been handed out by this controller. The
// caller marks it issued once the item is stored.
func (c *Controller) peekID() string {
	id := c.newID()
	for attempt := 0; ; attempt++ {
		if _, taken := c.issued[id]; !taken && id != "" {
			break
		}
		if attempt < 4 {
			id = c.newID()
			continue
		}
		id = fmt.Sprintf("%s-%d", id, c.nextGeneration())
	}
	return id
}
