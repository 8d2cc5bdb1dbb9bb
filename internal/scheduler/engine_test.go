package scheduler

import (
	"errors"
	"testing"
	"time"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(Event{Key: "later", TriggerAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(Event{Key: "sooner", TriggerAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.Key != "sooner" || second.Key != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.Key, second.Key)
	}
}

func TestEngineKeepsScheduleOrderForEqualTriggers(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	at := time.Now().UTC().Add(20 * time.Millisecond)
	for _, key := range []string{"a", "b", "c"} {
		if err := engine.Schedule(Event{Key: key, TriggerAt: at}); err != nil {
			t.Fatalf("schedule %s: %v", key, err)
		}
	}
	for _, want := range []string{"a", "b", "c"} {
		if got := waitEvent(t, engine.C(), time.Second); got.Key != want {
			t.Fatalf("expected %s, got %s", want, got.Key)
		}
	}
}

func TestEngineCancelRemovesPendingEvent(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	if err := engine.After(30*time.Millisecond, Event{Key: "delete_item/1", Subject: "a", Generation: 1}); err != nil {
		t.Fatalf("schedule first: %v", err)
	}
	if err := engine.After(50*time.Millisecond, Event{Key: "delete_item/2", Subject: "b", Generation: 2}); err != nil {
		t.Fatalf("schedule second: %v", err)
	}
	if n := engine.Cancel("delete_item/1"); n != 1 {
		t.Fatalf("expected one canceled event, got %d", n)
	}
	if engine.Canceled() != 1 {
		t.Fatalf("expected canceled counter 1, got %d", engine.Canceled())
	}

	got := waitEvent(t, engine.C(), time.Second)
	if got.Key != "delete_item/2" || got.Generation != 2 || got.Subject != "b" {
		t.Fatalf("unexpected event after cancel: %+v", got)
	}
	select {
	case ev := <-engine.C():
		t.Fatalf("canceled event emitted: %+v", ev)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestEngineCancelUnknownKey(t *testing.T) {
	engine := NewEngine(1)
	if n := engine.Cancel("missing"); n != 0 {
		t.Fatalf("expected zero removals, got %d", n)
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(Event{
			Key:       "evt",
			TriggerAt: now,
		}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestEngineHoldsReliableEventsUntilConsumed(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	at := time.Now().UTC().Add(20 * time.Millisecond)
	for _, key := range []string{"a", "b", "c"} {
		if err := engine.Schedule(Event{Key: key, TriggerAt: at, Reliable: true}); err != nil {
			t.Fatalf("schedule %s: %v", key, err)
		}
	}

	time.Sleep(80 * time.Millisecond)
	for _, want := range []string{"a", "b", "c"} {
		got := waitEvent(t, engine.C(), time.Second)
		if got.Key != want {
			t.Fatalf("expected %s, got %s", want, got.Key)
		}
	}
	if engine.Dropped() != 0 {
		t.Fatalf("expected no dropped events, got %d", engine.Dropped())
	}
}

func TestEngineStopReleasesBlockedReliableEvent(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()

	at := time.Now().UTC().Add(5 * time.Millisecond)
	for _, key := range []string{"a", "b"} {
		if err := engine.Schedule(Event{Key: key, TriggerAt: at, Reliable: true}); err != nil {
			t.Fatalf("schedule %s: %v", key, err)
		}
	}
	time.Sleep(40 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		engine.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stop blocked on a pending reliable event")
	}
}

func TestScheduleValidatesEvent(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(Event{Key: "bad"}); err != ErrInvalidTriggerTime {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
	if err := engine.Schedule(Event{TriggerAt: time.Now()}); err != ErrMissingKey {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

func TestScheduleAfterStop(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Stop()
	err := engine.After(time.Millisecond, Event{Key: "late"})
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
	if _, ok := <-engine.C(); ok {
		t.Fatal("expected output channel closed after stop")
	}
}

func waitEvent(t *testing.T, ch <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return Event{}
	}
}
