package player

import "fieldbot/internal/keybind"

const (
	// UnstuckYIgnoreThreshold is the vertical distance past which a
	// reading that looks "stuck" horizontally is ignored: the player is
	// most likely just on a different platform, not actually wedged.
	UnstuckYIgnoreThreshold int32 = 18
	// UnstuckTimeout bounds one attempt at dislodging the player.
	UnstuckTimeout uint32 = MoveTimeout + 2
)

// UnstuckKind distinguishes pressing escape (to dismiss a stray dialog
// that is blocking movement) from a plain directional nudge.
type UnstuckKind int

const (
	UnstuckKindEsc UnstuckKind = iota
	UnstuckKindMovement
)

// UnstuckingState runs a single recovery attempt. An explicit Unstuck
// action starts one; nothing in this package detects a stall on its own.
type UnstuckingState struct {
	Kind    UnstuckKind
	Timeout Timeout
	// Random records whether this attempt's direction was coin-flipped
	// rather than derived from Context.LastMovement. It is carried from
	// tick to tick; nothing reads it.
	Random bool
	// Left records which direction a movement-kind attempt is nudging;
	// only meaningful when Kind is UnstuckKindMovement.
	Left bool
}

func (UnstuckingState) isPlayerState() {}

// UpdateUnstuckingState runs the recovery keypress for UnstuckTimeout
// ticks, then falls back to Idle so the arbitrator re-evaluates from
// scratch.
//
// The left and right presses are deliberately not symmetric: left holds
// the key down for the whole attempt, right taps it once per tick. This
// matches the reference client's own key handling for the two directions
// and is kept exactly as observed rather than "fixed" into a symmetric
// implementation.
func UpdateUnstuckingState(res Resources, e *Entity) {
	st, ok := e.State.(UnstuckingState)
	if !ok {
		return
	}

	timeout := st.Timeout
	lifecycle := timeout.Advance(UnstuckTimeout)

	if lifecycle == LifecycleStarted {
		e.Context.LastMovement = LastMovementUnstucking
		e.Context.UnstuckCounter++
		e.Context.UnstuckConsecutiveCounter++
	}

	switch st.Kind {
	case UnstuckKindEsc:
		if lifecycle == LifecycleStarted {
			res.Input.SendKey(keybind.KeyEsc)
		}
	case UnstuckKindMovement:
		if st.Left {
			res.Input.SendKeyDown(keybind.KeyLeft)
		} else {
			res.Input.SendKey(keybind.KeyRight)
		}
	}

	if lifecycle == LifecycleEnded {
		if st.Kind == UnstuckKindMovement && st.Left {
			res.Input.SendKeyUp(keybind.KeyLeft)
		}
		transition(e, Idle{}, nil)
		return
	}

	transition(e, UnstuckingState{Kind: st.Kind, Timeout: timeout, Random: st.Random, Left: st.Left}, nil)
}

// NewUnstuckMovement picks a recovery direction: random via rng when
// random is requested, otherwise right when Context.LastMovement is
// Moving and left for any other value. Position and facing are not
// consulted.
func NewUnstuckMovement(res Resources, e *Entity, random bool) UnstuckingState {
	left := e.Context.LastMovement != LastMovementMoving
	if random {
		left = res.RNG.RandomBool(0.5)
	}
	e.Context.UnstuckConsecutiveCounter = 0
	return UnstuckingState{Kind: UnstuckKindMovement, Random: random, Left: left}
}
