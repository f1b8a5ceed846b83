package fieldbot

import (
	"testing"

	"fieldbot/internal/actionqueue"
	"fieldbot/internal/detect"
	"fieldbot/internal/keybind"
)

func TestEngineStartsIdleAndTracksPosition(t *testing.T) {
	e := New(Options{})

	pos := Point{X: 12, Y: 34}
	e.Tick(&pos)

	snap := e.Snapshot()
	if snap.State != "Idle" {
		t.Fatalf("expected a fresh engine with no queued work to stay Idle, got %q", snap.State)
	}
	if !snap.HasPosition || snap.PositionX != 12 || snap.PositionY != 34 {
		t.Fatalf("expected the snapshot to reflect the fed minimap position, got %+v", snap)
	}
}

func TestEngineEntersCashShopOnDetection(t *testing.T) {
	e := New(Options{Detector: &detect.Scripted{PlayerInCashShop: []bool{true}}})

	pos := Point{X: 0, Y: 0}
	e.Tick(&pos)

	snap := e.Snapshot()
	if snap.State != "CashShop" || snap.Sub != "Entered" {
		t.Fatalf("expected CashShop/Entered on detection, got state=%q sub=%q", snap.State, snap.Sub)
	}
}

func TestEngineStartsQueuedMove(t *testing.T) {
	e := New(Options{Config: keybind.Config{}})
	e.Enqueue(actionqueue.Action{
		Kind: actionqueue.KindMove,
		Move: &actionqueue.Move{Dest: Point{X: 50, Y: 0}},
	})

	pos := Point{X: 0, Y: 0}
	e.Tick(&pos)

	snap := e.Snapshot()
	if snap.State != "Moving" {
		t.Fatalf("expected a queued move to pull the engine out of Idle, got %q", snap.State)
	}
	if snap.QueueLength != 0 {
		t.Fatalf("expected the move to be popped off the queue, got length %d", snap.QueueLength)
	}
}

func TestEngineTickIncrementsSequentially(t *testing.T) {
	e := New(Options{})
	first := e.Tick(nil)
	second := e.Tick(nil)
	if second != first+1 {
		t.Fatalf("expected ticks to increment by one, got %d then %d", first, second)
	}
}
