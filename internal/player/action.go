package player

import "fieldbot/internal/actionqueue"

// USE_KEY_Y_THRESHOLD bounds how far off the destination's y the player
// may be while still close enough to use a mob-attack key against an
// AutoMob target.
const UseKeyYThreshold int32 = 2

// nextActionTransition peeks at the head of the action queue and decides
// what to do about it: AutoMob chooses between walking, falling,
// grappling, up-jumping, or double-jumping toward its destination based
// on how far off and in which direction the remaining distance lies;
// PingPong alternates between its two bounds, using a perlin-noise
// sample so an idle patrol doesn't snap-turn at exactly the same pixel
// every pass; Move is a plain walk; Key is gated by nextKeyTransition;
// Panic and Unstuck are popped and their state started directly; SolveRune
// is not acted on here and stays at the head of the queue. Returns ok =
// false when there's nothing this function wants to do, which keeps the
// caller on its own fallback.
func nextActionTransition(res Resources, e *Entity, moving Moving) (State, func(), bool) {
	action, ok := res.Queue.Peek()
	if !ok {
		return nil, nil, false
	}

	pos := e.Context.LastKnownPos
	if pos == nil {
		return nil, nil, false
	}

	switch action.Kind {
	case actionqueue.KindAutoMob:
		return nextAutoMobTransition(e, moving, *action.AutoMob)
	case actionqueue.KindPingPong:
		return nextPingPongTransition(res, e, *action.PingPong)
	case actionqueue.KindMove:
		return nextMoveTransition(res, e, *action.Move)
	case actionqueue.KindKey:
		return nextKeyTransition(e, moving, *action.Key)
	case actionqueue.KindPanic:
		_, _ = res.Queue.Pop()
		return NewPanicking(action.Panic.To), nil, true
	case actionqueue.KindUnstuck:
		_, _ = res.Queue.Pop()
		return NewUnstuckMovement(res, e, true), nil, true
	default:
		return nil, nil, false
	}
}

func nextMoveTransition(res Resources, e *Entity, move actionqueue.Move) (State, func(), bool) {
	dest := move.Dest
	effect := func() { res.Queue.Pop() }
	return MovingState{Moving: NewMoving(*e.Context.LastKnownPos, dest, move.Exact, move.Intermediates)}, effect, true
}

func nextAutoMobTransition(e *Entity, moving Moving, mob actionqueue.AutoMob) (State, func(), bool) {
	pos := *e.Context.LastKnownPos
	target := NewMoving(pos, mob.Dest, mob.Exact, mob.Intermediates)
	xDist, _ := target.XDistanceDirectionFrom(false, pos)
	yDist, yDir := target.YDistanceDirectionFrom(false, pos)

	if xDist == 0 && yDist <= UseKeyYThreshold {
		// Close enough on both axes: no transition is made here; the
		// arbitrator neither presses a key nor pops the action.
		return nil, nil, false
	}

	switch {
	case yDist >= GrapplingThreshold && yDist <= GrapplingMaxThreshold && yDir > 0 && e.Context.Config.HasGrapplingKey:
		return GrapplingState{Moving: NewMoving(pos, mob.Dest, mob.Exact, mob.Intermediates)}, nil, true
	case yDist >= FallingThreshold && yDir < 0:
		return FallingState{Moving: NewMoving(pos, mob.Dest, mob.Exact, mob.Intermediates), Anchor: pos.Y}, nil, true
	case yDist > UseKeyYThreshold && yDir > 0:
		kind := InferUpJumpKind(e.Context.Config)
		return UpJumpingState{Moving: NewMoving(pos, mob.Dest, mob.Exact, mob.Intermediates), Kind: kind}, nil, true
	case xDist > AdjustingMediumThreshold:
		return DoubleJumpingState{Moving: NewMoving(pos, mob.Dest, mob.Exact, mob.Intermediates)}, nil, true
	default:
		return MovingState{Moving: NewMoving(pos, mob.Dest, mob.Exact, mob.Intermediates)}, nil, true
	}
}

// nextKeyTransition arbitrates a bare Key(with=...) action: Stationary
// only fires once the current leg is both completed and at rest,
// DoubleJump forces a composite double-jump-then-use-key leg gated on
// facing, and Any fires once the leg is completed and within
// UseKeyYThreshold of its destination regardless of facing.
func nextKeyTransition(e *Entity, moving Moving, key actionqueue.KeyPress) (State, func(), bool) {
	pos := *e.Context.LastKnownPos
	yDist, _ := moving.YDistanceDirectionFrom(false, pos)

	switch key.With {
	case actionqueue.ActionKeyWithStationary:
		if !moving.Completed || !e.Context.IsStationary {
			return nil, nil, false
		}
		return NewUseKey(key), nil, true
	case actionqueue.ActionKeyWithDoubleJump:
		if !moving.Completed || yDist > 0 {
			return nil, nil, false
		}
		if !directionSatisfies(key.Direction, e.Context.LastKnownDirection) {
			return nil, nil, false
		}
		return DoubleJumpingState{Moving: NewMoving(pos, pos, false, nil), PendingKey: &key}, nil, true
	case actionqueue.ActionKeyWithAny:
		if !moving.Completed || yDist > UseKeyYThreshold {
			return nil, nil, false
		}
		return NewUseKey(key), nil, true
	default:
		return nil, nil, false
	}
}

func directionSatisfies(want actionqueue.ActionKeyDirection, have Direction) bool {
	switch want {
	case actionqueue.ActionKeyDirectionLeft:
		return have == DirectionLeft
	case actionqueue.ActionKeyDirectionRight:
		return have == DirectionRight
	default:
		return true
	}
}

func nextPingPongTransition(res Resources, e *Entity, pp actionqueue.PingPong) (State, func(), bool) {
	pos := *e.Context.LastKnownPos
	if pos.Y < pp.Bound.Y || !res.RNG.RandomPerlinBool(pos.X, pos.Y, res.Tick, 0.7) {
		return nil, nil, false
	}
	dest := pp.OtherBound
	if pos.DistanceX(pp.OtherBound) < pos.DistanceX(pp.Bound) {
		dest = pp.Bound
	}
	return MovingState{Moving: NewMoving(pos, dest, false, nil)}, nil, true
}
