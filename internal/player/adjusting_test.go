package player

import (
	"testing"

	"fieldbot/internal/actionqueue"
	"fieldbot/internal/detect"
	"fieldbot/internal/geom"
	"fieldbot/internal/input"
	"fieldbot/internal/keybind"
	"fieldbot/internal/rng"
)

func testResources() (Resources, *input.Recording) {
	rec := input.NewRecording()
	return Resources{
		Input:    rec,
		Detector: &detect.Scripted{},
		RNG:      rng.NewSource(rng.Seeds{}),
		Queue:    actionqueue.New(),
	}, rec
}

func TestAdjustingTransitionsToMovingWhenAligned(t *testing.T) {
	res, _ := testResources()
	pos := geom.Point{X: 10, Y: 0}
	e := &Entity{
		State:   AdjustingState{Moving: NewMoving(pos, pos, false, nil)},
		Context: Context{LastKnownPos: &pos},
	}

	UpdateAdjustingState(res, e)
	if _, ok := e.State.(MovingState); !ok {
		t.Fatalf("expected transition to MovingState once aligned, got %T", e.State)
	}
}

func TestAdjustingShortRangeTaps(t *testing.T) {
	res, rec := testResources()
	pos := geom.Point{X: 9, Y: 0}
	dest := geom.Point{X: 10, Y: 0}
	e := &Entity{
		State:   AdjustingState{Moving: NewMoving(pos, dest, false, nil)},
		Context: Context{LastKnownPos: &pos},
	}

	UpdateAdjustingState(res, e)

	last, ok := rec.Last()
	if !ok || last.Key != keybind.KeyRight {
		t.Fatalf("expected a right tap while 1px short, got %+v ok=%v", last, ok)
	}
	st, ok := e.State.(AdjustingState)
	if !ok {
		t.Fatalf("expected to remain in AdjustingState, got %T", e.State)
	}
	if !st.AdjustTimeout.Started {
		t.Fatalf("expected short-range correction to start its own timeout")
	}
}

func TestAdjustingFallsBackToMovingWhenFarOff(t *testing.T) {
	res, _ := testResources()
	pos := geom.Point{X: 0, Y: 0}
	dest := geom.Point{X: 50, Y: 0}
	e := &Entity{
		State:   AdjustingState{Moving: NewMoving(pos, dest, false, nil)},
		Context: Context{LastKnownPos: &pos},
	}

	UpdateAdjustingState(res, e)
	if _, ok := e.State.(MovingState); !ok {
		t.Fatalf("expected fallback to MovingState when far outside adjusting range, got %T", e.State)
	}
}
