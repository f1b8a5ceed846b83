package player

import "fieldbot/internal/keybind"

// MovingState is the baseline positional primitive: walk left or right
// until Dest.X is reached (or the leg times out), pressing at most one
// direction key at a time.
type MovingState struct {
	Moving Moving
}

func (MovingState) isPlayerState() {}

// UpdateMovingState advances the Moving primitive by one tick and decides
// whether to keep walking, hand off to Adjusting for the final pixels, or
// fall through to the arbitrator once the leg has run its course.
func UpdateMovingState(res Resources, e *Entity) {
	st, ok := e.State.(MovingState)
	if !ok {
		return
	}
	pos := e.Context.LastKnownPos
	if pos == nil {
		return
	}

	result := NextMovingLifecycle(st.Moving, *pos, MoveTimeout, ChangeAxisBoth)
	moving := result.Moving

	switch result.Kind {
	case MovingStarted:
		e.Context.LastMovement = LastMovementMoving
		transition(e, MovingState{Moving: moving}, nil)
		return
	case MovingEnded:
		transitionIf(e, AdjustingState{Moving: moving}, !moving.Completed && !e.Context.Config.DisableAdjusting, nil)
		if _, ok := e.State.(AdjustingState); ok {
			return
		}
		tryTransition(e, func() (State, func(), bool) { return nextActionTransition(res, e, moving) })
		return
	}

	xDist, xDir := moving.XDistanceDirectionFrom(false, moving.Pos)
	if xDist == 0 {
		moving.Completed = true
	} else {
		switch {
		case xDir > 0:
			res.Input.SendKey(keybind.KeyRight)
		case xDir < 0:
			res.Input.SendKey(keybind.KeyLeft)
		}
	}
	transition(e, MovingState{Moving: moving}, nil)
}
