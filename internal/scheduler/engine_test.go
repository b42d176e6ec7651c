package scheduler

import (
	"testing"
	"time"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(TickEvent{ID: "later", Kind: "refresh", TriggerAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(TickEvent{ID: "sooner", Kind: "refresh", TriggerAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
}

func TestRecurringEventRepeats(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(TickEvent{
		ID:        "refresh-loop",
		Kind:      "refresh",
		TriggerAt: now.Add(20 * time.Millisecond),
		Every:     30 * time.Millisecond,
	}); err != nil {
		t.Fatalf("schedule recurring: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	third := waitEvent(t, engine.C(), time.Second)
	for _, ev := range []TickEvent{first, second, third} {
		if ev.ID != "refresh-loop" || ev.Kind != "refresh" {
			t.Fatalf("unexpected recurring event: %#v", ev)
		}
	}
	if !second.TriggerAt.After(first.TriggerAt) || !third.TriggerAt.After(second.TriggerAt) {
		t.Fatalf("recurring triggers did not advance: %v %v %v", first.TriggerAt, second.TriggerAt, third.TriggerAt)
	}
}

func TestCancelStopsRecurringEvent(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(TickEvent{
		ID:        "prune-loop",
		Kind:      "prune",
		TriggerAt: now.Add(20 * time.Millisecond),
		Every:     20 * time.Millisecond,
	}); err != nil {
		t.Fatalf("schedule recurring: %v", err)
	}

	waitEvent(t, engine.C(), time.Second)
	if removed := engine.Cancel("prune-loop"); removed != 1 {
		t.Fatalf("expected to cancel 1 pending event, got %d", removed)
	}

	select {
	case ev := <-engine.C():
		t.Fatalf("event fired after cancel: %#v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(TickEvent{
			ID:        "evt",
			Kind:      "refresh",
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

func TestScheduleValidatesEvent(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(TickEvent{ID: "bad"}); err != ErrInvalidTriggerTime {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
	if err := engine.Schedule(TickEvent{ID: "bad", TriggerAt: time.Now(), Every: -time.Second}); err != ErrNegativeInterval {
		t.Fatalf("expected ErrNegativeInterval, got %v", err)
	}
}

func waitEvent(t *testing.T, ch <-chan TickEvent, timeout time.Duration) TickEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return TickEvent{}
	}
}
