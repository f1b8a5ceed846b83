package player

// JumpTimeout bounds a plain jump: press the jump key once, then wait
// out the ascent/descent before falling back to the arbitrator.
const JumpTimeout uint32 = MoveTimeout + 3

// JumpingState is a one-shot vertical hop, used to clear a single-tile
// ledge too short to warrant a full up-jump.
type JumpingState struct {
	Moving Moving
}

func (JumpingState) isPlayerState() {}

// UpdateJumpingState presses the jump key on entry and otherwise just
// waits out the timeout before returning control to the arbitrator.
func UpdateJumpingState(res Resources, e *Entity) {
	st, ok := e.State.(JumpingState)
	if !ok {
		return
	}
	pos := e.Context.LastKnownPos
	if pos == nil {
		return
	}

	result := NextMovingLifecycle(st.Moving, *pos, JumpTimeout, ChangeAxisBoth)
	moving := result.Moving

	switch result.Kind {
	case MovingStarted:
		e.Context.LastMovement = LastMovementJumping
		res.Input.SendKey(e.Context.Config.JumpKey)
	case MovingEnded:
		transitionToMoving(e, moving)
		return
	default:
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

	transition(e, JumpingState{Moving: moving}, nil)
}
