package player

import (
	"testing"

	"fieldbot/internal/input"
	"fieldbot/internal/keybind"
)

func TestUnstuckMovementLeftHoldsRightTaps(t *testing.T) {
	res, rec := testResources()
	e := &Entity{State: UnstuckingState{Kind: UnstuckKindMovement, Left: true}}

	UpdateUnstuckingState(res, e)
	if _, ok := e.State.(UnstuckingState); !ok {
		t.Fatalf("expected to remain in UnstuckingState, got %T", e.State)
	}

	last, ok := rec.Last()
	if !ok || last.Key != keybind.KeyLeft || last.Kind != input.PressDown {
		t.Fatalf("expected a held-down left press, got %+v ok=%v", last, ok)
	}
}

func TestUnstuckMovementRightTapsEachTick(t *testing.T) {
	res, rec := testResources()
	e := &Entity{State: UnstuckingState{Kind: UnstuckKindMovement, Left: false}}

	UpdateUnstuckingState(res, e)
	UpdateUnstuckingState(res, e)

	count := 0
	for _, p := range rec.Presses() {
		if p.Key == keybind.KeyRight {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected a tap every tick while nudging right, got %d taps", count)
	}
}

func TestUnstuckEndsToIdleAndLiftsHeldKey(t *testing.T) {
	res, rec := testResources()
	e := &Entity{State: UnstuckingState{Kind: UnstuckKindMovement, Left: true}}

	for i := uint32(0); i < UnstuckTimeout; i++ {
		UpdateUnstuckingState(res, e)
	}

	if _, ok := e.State.(Idle); !ok {
		t.Fatalf("expected to return to Idle once the attempt times out, got %T", e.State)
	}

	liftedLeft := false
	for _, p := range rec.Presses() {
		if p.Key == keybind.KeyLeft && p.Kind == input.PressUp {
			liftedLeft = true
		}
	}
	if !liftedLeft {
		t.Fatalf("expected the held left key to be released on completion")
	}
}

func TestNewUnstuckMovementPicksAwayFromLastMovement(t *testing.T) {
	res, _ := testResources()
	e := &Entity{Context: Context{LastMovement: LastMovementMoving, UnstuckConsecutiveCounter: 3}}

	st := NewUnstuckMovement(res, e, false)
	if st.Left {
		t.Fatalf("expected to nudge right when last movement was Moving, got Left=%v", st.Left)
	}
	if e.Context.UnstuckConsecutiveCounter != 0 {
		t.Fatalf("expected the consecutive counter to reset, got %d", e.Context.UnstuckConsecutiveCounter)
	}
}
