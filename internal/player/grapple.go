package player

// Grappling constants, ported from the reference grapple-hook state
// machine: a long cast timeout while waiting for the rope to latch, a
// much shorter timeout once upward motion is observed, and a
// velocity-scaled stopping distance so a fast ascent doesn't overshoot
// past the destination before the key is released.
const (
	GrapplingThreshold    int32  = 24
	GrapplingMaxThreshold int32  = 41
	grapplingInitialTimeout  uint32 = MoveTimeout * 8
	grapplingStoppingTimeout uint32 = MoveTimeout + 3
	grapplingStoppingThreshold int32 = 3
)

// GrapplingState casts a rope-lift style skill and rides it toward Dest.
type GrapplingState struct {
	Moving      Moving
	DidYChanged bool
}

func (GrapplingState) isPlayerState() {}

// UpdateGrapplingState casts the bound grappling key on entry, watches
// for the first sign of vertical motion to switch from the long casting
// timeout to the short stopping timeout, and releases by re-pressing the
// key once the remaining distance is within the velocity-scaled stopping
// threshold.
func UpdateGrapplingState(res Resources, e *Entity) {
	st, ok := e.State.(GrapplingState)
	if !ok {
		return
	}
	pos := e.Context.LastKnownPos
	if pos == nil {
		return
	}
	if !e.Context.Config.HasGrapplingKey {
		transitionToMoving(e, st.Moving)
		return
	}

	key := e.Context.Config.GrapplingKey
	prevPos := st.Moving.Pos
	timeout := grapplingInitialTimeout
	if st.DidYChanged {
		timeout = grapplingStoppingTimeout
	}

	result := NextMovingLifecycle(st.Moving, *pos, timeout, ChangeAxisBoth)
	moving := result.Moving

	switch result.Kind {
	case MovingStarted:
		e.Context.LastMovement = LastMovementGrappling
		res.Input.SendKey(key)
		transition(e, GrapplingState{Moving: moving, DidYChanged: false}, nil)
		return
	case MovingEnded:
		transitionToMoving(e, moving)
		return
	}

	curPos := moving.Pos
	yDist, yDir := moving.YDistanceDirectionFrom(false, curPos)
	yChanged := prevPos.Y != curPos.Y

	didYChanged := st.DidYChanged || yChanged

	if !moving.Completed && (yDir <= 0 || yDist <= grapplingStoppingThresholdFor(e.Context.Velocity[1])) {
		res.Input.SendKey(key)
		moving.Completed = true
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

	transition(e, GrapplingState{Moving: moving, DidYChanged: didYChanged}, nil)
}

// grapplingStoppingThresholdFor converts vertical velocity into a
// stopping distance: faster ascents need more stopping room.
func grapplingStoppingThresholdFor(velocity float64) int32 {
	v := float64(grapplingStoppingThreshold) + 0.7*velocity
	if v < 0 {
		v = -v
	}
	return int32(v + 0.5)
}
