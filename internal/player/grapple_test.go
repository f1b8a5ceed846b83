package player

import (
	"testing"

	"fieldbot/internal/geom"
	"fieldbot/internal/keybind"
)

func TestGrapplingStartedPressesKey(t *testing.T) {
	res, rec := testResources()
	pos := geom.Point{X: 0, Y: 0}
	cfg := keybind.Config{HasGrapplingKey: true, GrapplingKey: keybind.KeyF}
	e := &Entity{
		State:   GrapplingState{Moving: NewMoving(pos, geom.Point{X: 0, Y: -100}, false, nil)},
		Context: Context{LastKnownPos: &pos, Config: cfg},
	}

	UpdateGrapplingState(res, e)

	last, ok := rec.Last()
	if !ok || last.Key != keybind.KeyF {
		t.Fatalf("expected grappling key press on start, got %+v ok=%v", last, ok)
	}
	if e.Context.LastMovement != LastMovementGrappling {
		t.Fatalf("expected LastMovement to record grappling")
	}
}

func TestGrapplingSkipsWithoutBoundKey(t *testing.T) {
	res, _ := testResources()
	pos := geom.Point{X: 0, Y: 0}
	e := &Entity{
		State:   GrapplingState{Moving: NewMoving(pos, geom.Point{X: 0, Y: -100}, false, nil)},
		Context: Context{LastKnownPos: &pos},
	}

	UpdateGrapplingState(res, e)
	if _, ok := e.State.(MovingState); !ok {
		t.Fatalf("expected fallback to MovingState with no grappling key bound, got %T", e.State)
	}
}

func TestGrapplingStoppingThresholdScalesWithVelocity(t *testing.T) {
	if got := grapplingStoppingThresholdFor(0); got != 3 {
		t.Fatalf("expected base threshold of 3 at zero velocity, got %d", got)
	}
	if got := grapplingStoppingThresholdFor(10); got <= 3 {
		t.Fatalf("expected threshold to grow with velocity, got %d", got)
	}
}
