package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todoscreen/internal/scheduler"
	"github.com/sandeepkv93/todoscreen/internal/tasklist"
)

// busyDeferrer routes busy-marker expiries either through the scheduler engine
// or, without one, through tea.Tick commands collected by the next Update.
type busyDeferrer struct {
	engine  *scheduler.Engine
	pending []tasklist.Pending
}

func (d *busyDeferrer) Defer(delay time.Duration, tok tasklist.BusyToken) {
	if d.engine != nil {
		if err := d.engine.After(delay, tokenEvent(tok)); err == nil {
			return
		}
	}
	d.pending = append(d.pending, tasklist.Pending{Delay: delay, Token: tok})
}

// Cancel only reaches timers that have not left the deferrer yet. A tick
// already in flight is rejected later by ClearBusy.
func (d *busyDeferrer) Cancel(tok tasklist.BusyToken) {
	if d.engine != nil {
		d.engine.Cancel(tok.Key())
	}
	kept := d.pending[:0]
	for _, p := range d.pending {
		if p.Token != tok {
			kept = append(kept, p)
		}
	}
	d.pending = kept
}

func (d *busyDeferrer) drain() []tea.Cmd {
	if len(d.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(d.pending))
	for _, p := range d.pending {
		tok := p.Token
		cmds = append(cmds, tea.Tick(p.Delay, func(time.Time) tea.Msg {
			return BusyExpiredMsg{Token: tok}
		}))
	}
	d.pending = nil
	return cmds
}

func tokenEvent(tok tasklist.BusyToken) scheduler.Event {
	return scheduler.Event{
		Key:        tok.Key(),
		Kind:       string(tok.Kind),
		Subject:    tok.ItemID,
		Generation: tok.Generation,
		Reliable:   true,
	}
}

func eventToken(ev scheduler.Event) tasklist.BusyToken {
	return tasklist.BusyToken{
		Kind:       tasklist.BusyKind(ev.Kind),
		ItemID:     ev.Subject,
		Generation: ev.Generation,
	}
}

func waitForBusyCmd(ch <-chan scheduler.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return BusyExpiredMsg{Token: eventToken(ev), fromEngine: true}
	}
}
