package player

import (
	"context"
	"fmt"

	"fieldbot/internal/geom"
	"fieldbot/logging"
)

// Update runs one tick of the state machine: refresh position/velocity
// from the latest minimap reading, dispatch to the current state's
// update function, and let the arbitrator pull Idle out of its resting
// state whenever there's queued work. Whenever the dispatch changes the
// entity's state tag, a transition event is published through res.Log so
// a host's log sinks see every edge, not just the terminal one. The debug
// stream receives engine snapshots, not these events.
func Update(res Resources, e *Entity, minimapPos *geom.Point) {
	e.Context.UpdatePosition(minimapPos)

	before := stateName(e.State)

	switch e.State.(type) {
	case Idle:
		updateIdle(res, e)
	case MovingState:
		UpdateMovingState(res, e)
	case AdjustingState:
		UpdateAdjustingState(res, e)
	case DoubleJumpingState:
		UpdateDoubleJumpingState(res, e)
	case JumpingState:
		UpdateJumpingState(res, e)
	case FallingState:
		UpdateFallingState(res, e)
	case GrapplingState:
		UpdateGrapplingState(res, e)
	case UpJumpingState:
		UpdateUpJumpingState(res, e)
	case UseKeyState:
		UpdateUseKeyState(res, e)
	case UnstuckingState:
		UpdateUnstuckingState(res, e)
	case CashShopState:
		UpdateCashShopState(res, e)
	case ChattingState:
		UpdateChattingState(res, e)
	case PanickingState:
		UpdatePanickingState(res, e)
	case UsingBoosterState:
		UpdateUsingBoosterState(res, e)
	case StallingState:
		UpdateStallingState(res, e)
	}

	after := stateName(e.State)
	if after != before && res.Log != nil {
		res.Log.Publish(context.Background(), logging.Event{
			Type:     "player.transition",
			Tick:     res.Tick,
			Category: "player",
			Severity: logging.SeverityDebug,
			Extra: map[string]any{
				"from": before,
				"to":   after,
			},
		})
	}
}

func stateName(s State) string {
	return fmt.Sprintf("%T", s)
}

// updateIdle checks the detector-driven procedure triggers first (cash
// shop, chat requests are host-driven rather than detected, so they are
// not polled here) and otherwise asks the arbitrator whether the action
// queue has anything worth starting.
func updateIdle(res Resources, e *Entity) {
	if res.Detector.DetectPlayerInCashShop() {
		transition(e, CashShopState{}, nil)
		return
	}

	pos := e.Context.LastKnownPos
	if pos == nil {
		return
	}

	moving := NewMoving(*pos, *pos, false, nil)
	moving.Completed = true
	tryTransition(e, func() (State, func(), bool) { return nextActionTransition(res, e, moving) })
}
