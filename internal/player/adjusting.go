package player

import "fieldbot/internal/keybind"

const (
	// AdjustingShortThreshold is the x distance, in pixels, below which a
	// single brief key tap is enough to close the gap.
	AdjustingShortThreshold int32 = 1
	// AdjustingMediumThreshold is the x distance below which ordinary
	// walking (no short-tap correction) is still considered "adjusting"
	// rather than a fresh Move leg.
	AdjustingMediumThreshold int32 = 3
	// AdjustingShortTimeout bounds how long a short-tap correction may
	// run before giving up and falling back to the arbitrator.
	AdjustingShortTimeout uint32 = MoveTimeout + 3
)

// AdjustingState is the short positional correction that runs once a
// Moving leg has nearly reached its destination: small, frequent taps
// rather than the sustained key-down of ordinary walking.
type AdjustingState struct {
	Moving        Moving
	AdjustTimeout Timeout
}

func (AdjustingState) isPlayerState() {}

// UpdateAdjustingState refines the player's x position against
// Moving.Dest using short taps, freezing the outer moving timeout while a
// short-tap correction is in progress so micro-adjustment never starves
// itself out.
func UpdateAdjustingState(res Resources, e *Entity) {
	st, ok := e.State.(AdjustingState)
	if !ok {
		return
	}
	pos := e.Context.LastKnownPos
	if pos == nil {
		return
	}

	moving := st.Moving
	moving.Pos = *pos
	xDist, xDir := moving.XDistanceDirectionFrom(false, moving.Pos)

	if xDist == 0 {
		transitionToMoving(e, moving)
		return
	}

	if xDist > AdjustingMediumThreshold {
		// Drifted back out of adjusting range; hand back to ordinary
		// walking rather than keep tapping.
		transitionToMoving(e, moving)
		return
	}

	adjustTimeout := st.AdjustTimeout
	shortRange := xDist <= AdjustingShortThreshold

	if shortRange {
		switch adjustTimeout.Advance(AdjustingShortTimeout) {
		case LifecycleStarted:
			press(res, xDir)
			trackDirection(e, xDir)
		case LifecycleEnded:
			transitionToMoving(e, moving)
			return
		}
		// A short-tap correction in progress keeps the outer moving
		// timeout from expiring underneath it.
		moving.Timeout.Freeze()
	} else {
		press(res, xDir)
		trackDirection(e, xDir)
		adjustTimeout.Reset()
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

	transition(e, AdjustingState{Moving: moving, AdjustTimeout: adjustTimeout}, nil)
}

// trackDirection commits the direction a just-pressed key moved the
// player in, used by Key(with=DoubleJump) arbitration to require the
// pending action's direction to agree with where the player was last
// actually heading.
func trackDirection(e *Entity, xDir int32) {
	switch {
	case xDir > 0:
		e.Context.LastKnownDirection = DirectionRight
	case xDir < 0:
		e.Context.LastKnownDirection = DirectionLeft
	}
}

func press(res Resources, xDir int32) {
	switch {
	case xDir > 0:
		res.Input.SendKey(keybind.KeyRight)
	case xDir < 0:
		res.Input.SendKey(keybind.KeyLeft)
	}
}
