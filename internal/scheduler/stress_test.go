package scheduler

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// Hammers Schedule from many goroutines while a single consumer drains the
// tick channel, then checks every one-shot fired exactly once.
func TestEngineStressConcurrentSchedule(t *testing.T) {
	engine := NewEngine(4096)
	engine.Start()
	defer engine.Stop()

	const workers = 8
	const perWorker = 200
	total := workers * perWorker

	seen := make(map[string]int, total)
	done := make(chan struct{})
	go func() {
		defer close(done)
		deadline := time.After(5 * time.Second)
		for len(seen) < total {
			select {
			case ev := <-engine.C():
				seen[ev.ID]++
			case <-deadline:
				return
			}
		}
	}()

	now := time.Now().UTC()
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				delay := time.Duration((w+i)%50+10) * time.Millisecond
				err := engine.Schedule(TickEvent{
					ID:        fmt.Sprintf("refresh-w%d-%d", w, i),
					Kind:      "refresh",
					TriggerAt: now.Add(delay),
				})
				if err != nil {
					t.Errorf("schedule failed: %v", err)
					return
				}
			}
		}(w)
	}
	wg.Wait()
	<-done

	if len(seen) != total {
		t.Fatalf("unexpected tick count: got=%d want=%d dropped=%d", len(seen), total, engine.Dropped())
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("one-shot event %s fired %d times", id, n)
		}
	}
	if engine.Dropped() != 0 {
		t.Fatalf("expected zero drops with active consumer, got=%d", engine.Dropped())
	}
}

// A recurring tick keeps firing while unrelated events are cancelled out
// from under it.
func TestEngineStressRecurringSurvivesCancels(t *testing.T) {
	engine := NewEngine(256)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(TickEvent{
		ID:        "refresh-loop",
		Kind:      "refresh",
		TriggerAt: now.Add(20 * time.Millisecond),
		Every:     20 * time.Millisecond,
	}); err != nil {
		t.Fatalf("schedule recurring: %v", err)
	}
	for i := 0; i < 64; i++ {
		id := fmt.Sprintf("victim-%d", i)
		if err := engine.Schedule(TickEvent{ID: id, Kind: "prune", TriggerAt: now.Add(time.Hour)}); err != nil {
			t.Fatalf("schedule victim: %v", err)
		}
		go engine.Cancel(id)
	}

	fired := 0
	deadline := time.After(3 * time.Second)
	for fired < 3 {
		select {
		case ev := <-engine.C():
			if ev.ID == "refresh-loop" {
				fired++
			}
		case <-deadline:
			t.Fatalf("recurring tick fired only %d times before timeout", fired)
		}
	}
}
