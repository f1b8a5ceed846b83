package player

import (
	"fieldbot/internal/actionqueue"
	"fieldbot/internal/keybind"
)

const (
	// FallingThreshold is the minimum downward y distance that justifies
	// dropping through a platform rather than walking around.
	FallingThreshold int32 = 4
	// FallingToUseKeyThreshold is how close (y-wise) the fall must get to
	// the destination before an in-progress mob-attack action is allowed
	// to fire its key, distinct from the generic USE_KEY_Y_THRESHOLD used
	// by other states.
	FallingToUseKeyThreshold int32 = 5
	// StopDownKeyTick is how many ticks the down key is held before being
	// released; platform fallthrough only needs a brief tap.
	StopDownKeyTick uint32 = 3
	// FallingTimeout bounds the whole fall.
	FallingTimeout uint32 = MoveTimeout + 3
	// TeleportFallThreshold is the y distance below which a teleport key
	// press (if bound) replaces the down-key drop.
	TeleportFallThreshold int32 = 16
	// fallSettleTimeout is how long FallingState waits, once its main
	// timeout has ended, for the landing to visibly settle before handing
	// off to the arbitrator.
	fallSettleTimeout uint32 = 2
)

// FallingState drops the player through a one-way platform toward Dest.
// Anchor records the y the fall started from so the distance fallen so
// far can be measured even after LastKnownPos moves past Dest.
type FallingState struct {
	Moving            Moving
	Anchor            int32
	TimeoutOnComplete *Timeout
}

func (FallingState) isPlayerState() {}

// UpdateFallingState presses (and releases) the down key, optionally
// substitutes a teleport key press for a very long drop, and once the
// fall's own timeout ends waits out a short settle timeout before
// returning to the arbitrator.
func UpdateFallingState(res Resources, e *Entity) {
	st, ok := e.State.(FallingState)
	if !ok {
		return
	}
	pos := e.Context.LastKnownPos
	if pos == nil {
		return
	}

	if st.TimeoutOnComplete != nil {
		settle := *st.TimeoutOnComplete
		if settle.Advance(fallSettleTimeout) == LifecycleEnded {
			transitionToMoving(e, st.Moving)
			return
		}
		transition(e, FallingState{Moving: st.Moving, Anchor: st.Anchor, TimeoutOnComplete: &settle}, nil)
		return
	}

	result := NextMovingLifecycle(st.Moving, *pos, FallingTimeout, ChangeAxisY)
	moving := result.Moving
	anchor := st.Anchor

	switch result.Kind {
	case MovingStarted:
		if !e.Context.IsStationary {
			// Wait for the player to come to rest before dropping, so a
			// fall started mid-stride doesn't measure its anchor from a
			// position the player is still passing through.
			moving.Timeout.Started = false
			transition(e, FallingState{Moving: moving, Anchor: moving.Pos.Y}, nil)
			return
		}
		anchor = moving.Pos.Y

		_, yDir := moving.YDistanceDirectionFrom(false, moving.Pos)
		if yDir >= 0 {
			transitionToMoving(e, moving)
			return
		}

		e.Context.LastMovement = LastMovementFalling
		fallDistance := moving.Pos.Y - moving.Dest.Y
		if fallDistance < TeleportFallThreshold && e.Context.Config.HasTeleportKey {
			res.Input.SendKey(e.Context.Config.TeleportKey)
		} else {
			res.Input.SendKeyDown(keybind.KeyDown)
		}
	case MovingEnded:
		res.Input.SendKeyUp(keybind.KeyDown)
		settle := Timeout{}
		transition(e, FallingState{Moving: moving, Anchor: anchor, TimeoutOnComplete: &settle}, nil)
		return
	default:
		if moving.Timeout.Total == StopDownKeyTick {
			res.Input.SendKeyUp(keybind.KeyDown)
		}
		if !moving.Completed && moving.Pos.Y-anchor < 0 {
			moving.Completed = true
		}

		// A Key(with=Any) action gets a wider y window here than the
		// generic arbitrator allows: a fall in progress only needs to get
		// close, not land exactly, before it's worth trying the key,
		// provided there's no teleport key to prefer instead.
		if action, ok := res.Queue.Peek(); ok && action.Kind == actionqueue.KindKey &&
			action.Key.With == actionqueue.ActionKeyWithAny && !e.Context.Config.HasTeleportKey {
			yDist, _ := moving.YDistanceDirectionFrom(false, moving.Pos)
			if moving.Completed && yDist <= FallingToUseKeyThreshold {
				key := *action.Key
				transition(e, NewUseKey(key), nil)
				return
			}
		}

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

	transition(e, FallingState{Moving: moving, Anchor: anchor}, nil)
}
