package player

// transition writes next into e.State, running effect first (if any) so
// side effects see the state the tick started in. This is the only
// function in the package allowed to assign Entity.State directly;
// every state-update function goes through one of the helpers below,
// guaranteeing the state is written at most once per tick.
func transition(e *Entity, next State, effect func()) {
	if effect != nil {
		effect()
	}
	e.State = next
}

// transitionIf calls transition only when cond holds, reporting whether
// it did. State-update functions chain several transitionIf calls and
// stop at the first one that fires.
func transitionIf(e *Entity, next State, cond bool, effect func()) bool {
	if !cond {
		return false
	}
	transition(e, next, effect)
	return true
}

// tryTransition calls compute and, if it reports ok, transitions into the
// state it produced. Used where the next state depends on a value that
// might not be available this tick (e.g. no queued action to transition
// from).
func tryTransition(e *Entity, compute func() (State, func(), bool)) bool {
	next, effect, ok := compute()
	if !ok {
		return false
	}
	transition(e, next, effect)
	return true
}

// transitionFromAction assigns next and, when isTerminal, pops the action
// queue's head first so the side effect of "this action is done" lands in
// the same tick as the state that satisfied it.
func transitionFromAction(res Resources, e *Entity, next State, isTerminal bool) {
	var effect func()
	if isTerminal {
		effect = func() { res.Queue.Pop() }
	}
	transition(e, next, effect)
}

// transitionToMoving is the common landing state every movement primitive
// falls back to once its own lifecycle ends: a fresh Moving run toward
// moving's own destination; the arbitrator reconsiders the action queue
// once that run ends.
func transitionToMoving(e *Entity, moving Moving) {
	moving.Completed = false
	moving.Timeout.Reset()
	transition(e, MovingState{Moving: moving}, nil)
}

// transitionToMovingIf is transitionToMoving gated on cond.
func transitionToMovingIf(e *Entity, moving Moving, cond bool) bool {
	if !cond {
		return false
	}
	transitionToMoving(e, moving)
	return true
}
