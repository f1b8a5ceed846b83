package player

import (
	"fieldbot/internal/actionqueue"
	"fieldbot/internal/keybind"
)

// DoubleJumpTimeout bounds a double-jump leg: direction key down, jump,
// jump again mid-air, then coast until the timeout.
const DoubleJumpTimeout uint32 = MoveTimeout + 5

// doubleJumpSecondPressAt is the tick within the run at which the second
// jump key press fires, chosen to land mid-arc of the first jump.
const doubleJumpSecondPressAt uint32 = 2

// DoubleJumpingState covers horizontal gaps too wide for ordinary
// walking: direction key held down through two jump presses.
type DoubleJumpingState struct {
	Moving  Moving
	Pressed bool
	// PendingKey is set when this leg was pushed by a Key(with=DoubleJump)
	// action: on completion, control goes to UseKey with this key rather
	// than back to the arbitrator.
	PendingKey *actionqueue.KeyPress
}

func (DoubleJumpingState) isPlayerState() {}

// UpdateDoubleJumpingState drives the direction key and the two jump
// presses, then returns to the arbitrator once the leg ends.
func UpdateDoubleJumpingState(res Resources, e *Entity) {
	st, ok := e.State.(DoubleJumpingState)
	if !ok {
		return
	}
	pos := e.Context.LastKnownPos
	if pos == nil {
		return
	}

	result := NextMovingLifecycle(st.Moving, *pos, DoubleJumpTimeout, ChangeAxisBoth)
	moving := result.Moving
	_, xDir := moving.XDistanceDirectionFrom(false, moving.Pos)

	switch result.Kind {
	case MovingStarted:
		e.Context.LastMovement = LastMovementDoubleJumping
		directionKey(res, xDir)
		res.Input.SendKey(e.Context.Config.JumpKey)
	case MovingEnded:
		if st.PendingKey != nil {
			transition(e, NewUseKey(*st.PendingKey), nil)
			return
		}
		transitionToMoving(e, moving)
		return
	default:
		directionKey(res, xDir)
		if !st.Pressed && moving.Timeout.Current >= doubleJumpSecondPressAt {
			res.Input.SendKey(e.Context.Config.JumpKey)
			transition(e, DoubleJumpingState{Moving: moving, Pressed: true, PendingKey: st.PendingKey}, nil)
			return
		}
	}

	if st.PendingKey == nil {
		done := false
		tryTransition(e, func() (State, func(), bool) {
			next, effect, ok := nextActionTransition(res, e, moving)
			done = ok
			return next, effect, ok
		})
		if done {
			return
		}
	}

	transition(e, DoubleJumpingState{Moving: moving, Pressed: st.Pressed, PendingKey: st.PendingKey}, nil)
}

func directionKey(res Resources, xDir int32) {
	switch {
	case xDir > 0:
		res.Input.SendKeyDown(keybind.KeyRight)
	case xDir < 0:
		res.Input.SendKeyDown(keybind.KeyLeft)
	}
}
