package tasklist

import (
	"fmt"
	"time"
)

type BusyKind string

const (
	BusyDeleteItem BusyKind = "delete_item"
	BusyDeleteAll  BusyKind = "delete_all"
)

// BusyToken identifies one busy marker instance. A token only clears the
// marker it was issued for.
type BusyToken struct {
	Kind       BusyKind
	ItemID     string
	Generation uint64
}

func (t BusyToken) Key() string {
	return fmt.Sprintf("%s/%d", t.Kind, t.Generation)
}

// Deferrer runs Controller.ClearBusy for a token after a delay, on the same
// loop that issues commands.
type Deferrer interface {
	Defer(d time.Duration, tok BusyToken)
	Cancel(tok BusyToken)
}

type nopDeferrer struct{}

func (nopDeferrer) Defer(time.Duration, BusyToken) {}
func (nopDeferrer) Cancel(BusyToken)               {}

type Pending struct {
	Delay time.Duration
	Token BusyToken
}

// ManualDeferrer queues tokens until Flush is called.
type ManualDeferrer struct {
	pending []Pending
}

func (d *ManualDeferrer) Defer(delay time.Duration, tok BusyToken) {
	d.pending = append(d.pending, Pending{Delay: delay, Token: tok})
}

func (d *ManualDeferrer) Cancel(tok BusyToken) {
	out := d.pending[:0]
	for _, p := range d.pending {
		if p.Token != tok {
			out = append(out, p)
		}
	}
	d.pending = out
}

func (d *ManualDeferrer) Pending() []Pending {
	out := make([]Pending, len(d.pending))
	copy(out, d.pending)
	return out
}

// Flush fires every queued token against c and returns how many markers
// were actually cleared.
func (d *ManualDeferrer) Flush(c *Controller) int {
	queued := d.pending
	d.pending = nil
	cleared := 0
	for _, p := range queued {
		if c.ClearBusy(p.Token) {
			cleared++
		}
	}
	return cleared
}
