package scheduler

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestEngineStressConcurrentScheduleAndCancel(t *testing.T) {
	engine := NewEngine(4096)
	engine.Start()
	defer engine.Stop()

	const workers = 8
	const perWorker = 200
	total := workers * perWorker

	now := time.Now().UTC()
	var canceled int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				delay := time.Duration((w+i)%50+40) * time.Millisecond
				key := fmt.Sprintf("delete_item/%d", w*perWorker+i)
				ev := Event{
					Key:        key,
					Kind:       "delete_item",
					Subject:    fmt.Sprintf("item-%d", i),
					Generation: uint64(w*perWorker + i),
					TriggerAt:  now.Add(delay),
				}
				if err := engine.Schedule(ev); err != nil {
					t.Errorf("schedule failed: %v", err)
					return
				}
				if i%4 == 0 {
					atomic.AddInt64(&canceled, int64(engine.Cancel(key)))
				}
			}
		}()
	}
	wg.Wait()

	want := int64(total) - atomic.LoadInt64(&canceled)
	deadline := time.After(5 * time.Second)
	var received int64
	for received < want {
		select {
		case <-deadline:
			t.Fatalf("timeout waiting events: received=%d want=%d dropped=%d", received, want, engine.Dropped())
		case <-engine.C():
			received++
		}
	}

	select {
	case ev := <-engine.C():
		t.Fatalf("unexpected extra event: %+v", ev)
	case <-time.After(150 * time.Millisecond):
	}
	if engine.Dropped() != 0 {
		t.Fatalf("expected zero drops with active consumer, got=%d", engine.Dropped())
	}
	if uint64(atomic.LoadInt64(&canceled)) != engine.Canceled() {
		t.Fatalf("cancel counters disagree: %d vs %d", canceled, engine.Canceled())
	}
}
