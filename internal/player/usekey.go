package player

import (
	"fieldbot/internal/actionqueue"
	"fieldbot/internal/keybind"
)

// UseKeyTimeout bounds how long a UseKey action is given to register
// before the arbitrator is consulted again.
const UseKeyTimeout uint32 = MoveTimeout

// UseKeyState presses a single bound key with no positional goal of its
// own: the motion state that transitioned here already satisfied whatever
// precondition (stationary, double-jump landed, within y threshold) the
// action required.
type UseKeyState struct {
	Key     keybind.Key
	Timeout Timeout
}

func (UseKeyState) isPlayerState() {}

// NewUseKey starts a UseKey run for the given key press action.
func NewUseKey(key actionqueue.KeyPress) UseKeyState {
	return UseKeyState{Key: keybind.Key(key.Key)}
}

// UpdateUseKeyState presses Key on entry, pops the action on Ended, and
// returns to Idle so the arbitrator picks up whatever comes next.
func UpdateUseKeyState(res Resources, e *Entity) {
	st, ok := e.State.(UseKeyState)
	if !ok {
		return
	}

	timeout := st.Timeout
	switch timeout.Advance(UseKeyTimeout) {
	case LifecycleStarted:
		res.Input.SendKey(st.Key)
	case LifecycleEnded:
		res.Queue.Pop()
		transition(e, Idle{}, nil)
		return
	}

	transition(e, UseKeyState{Key: st.Key, Timeout: timeout}, nil)
}
