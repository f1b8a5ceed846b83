package player

import "fieldbot/internal/actionqueue"

// StallingWaitTimeout is the default Stalling duration for callers that
// don't need a specific one.
const StallingWaitTimeout uint32 = 60

// StallingState waits out Max ticks and then either restores
// Context.StallingTimeoutState, if a caller stashed one, or returns to
// Idle. It carries no resume state of its own: the stash lives on Context
// so a terminal-AutoMob restart (Timeout reset to zero) doesn't lose
// track of what the stall was guarding.
type StallingState struct {
	Timeout Timeout
	Max     uint32
}

func (StallingState) isPlayerState() {}

// NewStalling starts a stall of up to max ticks.
func NewStalling(max uint32) StallingState {
	return StallingState{Max: max}
}

// UpdateStallingState advances the wait and, for an AutoMob action
// reaching the terminal Idle state, either restarts the stall when the
// mob's y hasn't solidified yet and the player still hasn't come to
// rest, or records the reachable y and lets the action complete.
func UpdateStallingState(res Resources, e *Entity) {
	st, ok := e.State.(StallingState)
	if !ok {
		return
	}

	timeout := st.Timeout
	var next State
	if timeout.Advance(st.Max) == LifecycleEnded {
		if e.Context.StallingTimeoutState != nil {
			next = e.Context.StallingTimeoutState
			e.Context.StallingTimeoutState = nil
		} else {
			next = Idle{}
		}
	} else {
		next = StallingState{Timeout: timeout, Max: st.Max}
	}
	_, isTerminal := next.(Idle)

	action, ok := res.Queue.Peek()
	if !ok {
		transition(e, next, nil)
		return
	}

	switch action.Kind {
	case actionqueue.KindAutoMob:
		y := action.AutoMob.Dest.Y
		if isTerminal && e.Context.AutoMobReachableYRequireUpdate(y) {
			if !e.Context.IsStationary {
				transition(e, StallingState{Max: st.Max}, nil)
				return
			}
			e.Context.AutoMobTrackReachableY(y)
		}
		transitionFromAction(res, e, next, isTerminal)
	case actionqueue.KindPingPong, actionqueue.KindKey, actionqueue.KindMove:
		transitionFromAction(res, e, next, isTerminal)
	default:
		transition(e, next, nil)
	}
}
