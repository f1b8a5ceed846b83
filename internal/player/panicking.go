package player

import (
	"fieldbot/internal/actionqueue"
	"fieldbot/internal/detect"
	"fieldbot/internal/keybind"
)

const (
	PanicTimeoutInitial      uint32 = 220
	PanicPressRightAtInitial uint32 = 170
	PanicPressEnterAtInitial uint32 = 200

	PanicTimeoutAfter      uint32 = 50
	PanicPressRightAtAfter uint32 = 15
	PanicPressEnterAtAfter uint32 = 30

	PanicGoingToTownTimeout uint32 = 90
	PanicCompletingTimeout  uint32 = 245
	PanicMaxRetry           int    = 3
)

// PanickingSub names the legs of leaving the current map: cycling the
// channel menu (channel only), the travel-to-town wait (town only), and a
// final settle window before handing back to Idle.
type PanickingSub int

const (
	PanickingOpening PanickingSub = iota
	PanickingGoingToTown
	PanickingCompleting
)

// PanickingState is the map-abandonment procedure started by an explicit
// Panic action; nothing in this package escalates to it on its own.
//
// Channel panicking and town panicking are deliberately not symmetric:
// channel panicking cancels back to Idle if the action queue has no head
// by the time the channel menu would open, but town panicking always
// runs to completion once started regardless of queue state. Town also
// never opens the channel-change menu at all: it starts straight in
// PanickingGoingToTown. This mirrors the reference implementation's own
// behavior and is preserved rather than "fixed" into matching symmetric
// rules.
type PanickingState struct {
	Sub     PanickingSub
	Timeout Timeout
	To      actionqueue.PanicTarget
	Attempt int
}

func (PanickingState) isPlayerState() {}

// NewPanicking starts a panic run toward the given target: Channel opens
// the channel-change menu, Town heads straight for the town portal.
func NewPanicking(to actionqueue.PanicTarget) PanickingState {
	if to == actionqueue.PanicToTown {
		return PanickingState{Sub: PanickingGoingToTown, To: to}
	}
	return PanickingState{Sub: PanickingOpening, To: to}
}

func UpdatePanickingState(res Resources, e *Entity) {
	st, ok := e.State.(PanickingState)
	if !ok {
		return
	}

	switch st.Sub {
	case PanickingOpening:
		updatePanickingOpening(res, e, st)
	case PanickingGoingToTown:
		updatePanickingGoingToTown(res, e, st)
	case PanickingCompleting:
		updatePanickingCompleting(res, e, st)
	}
}

func updatePanickingOpening(res Resources, e *Entity, st PanickingState) {
	if _, ok := res.Queue.Peek(); !ok {
		transition(e, Idle{}, nil)
		return
	}

	max := PanicTimeoutInitial
	pressRightAt := PanicPressRightAtInitial
	pressEnterAt := PanicPressEnterAtInitial
	if st.Attempt > 0 {
		max = PanicTimeoutAfter
		pressRightAt = PanicPressRightAtAfter
		pressEnterAt = PanicPressEnterAtAfter
	}

	timeout := st.Timeout
	switch timeout.Advance(max) {
	case LifecycleStarted:
		if !res.Detector.DetectChangeChannelMenuOpened() {
			res.Input.SendKey(e.Context.Config.ChangeChannelKey)
		}
	case LifecycleUpdated:
		if timeout.Current == pressRightAt && res.Detector.DetectChangeChannelMenuOpened() {
			res.Input.SendKey(keybind.KeyRight)
		}
		if timeout.Current == pressEnterAt && res.Detector.DetectChangeChannelMenuOpened() {
			res.Input.SendKey(keybind.KeyEnter)
		}
	case LifecycleEnded:
		if !minimapIsIdle(res) {
			transition(e, PanickingState{Sub: PanickingCompleting, To: st.To}, nil)
			return
		}
		if st.Attempt+1 < PanicMaxRetry {
			transition(e, PanickingState{Sub: PanickingOpening, To: st.To, Attempt: st.Attempt + 1}, nil)
		} else {
			transition(e, PanickingState{Sub: PanickingCompleting, To: st.To}, nil)
		}
		return
	}

	transition(e, PanickingState{Sub: PanickingOpening, Timeout: timeout, To: st.To, Attempt: st.Attempt}, nil)
}

func updatePanickingGoingToTown(res Resources, e *Entity, st PanickingState) {
	timeout := st.Timeout
	switch timeout.Advance(PanicGoingToTownTimeout) {
	case LifecycleStarted:
		res.Input.SendKey(e.Context.Config.ToTownKey)
	case LifecycleEnded:
		hasConfirm := res.Detector.DetectPopupConfirmButton()
		if hasConfirm {
			res.Input.SendKey(keybind.KeyEnter)
		}
		if !hasConfirm && st.Attempt+1 < PanicMaxRetry {
			transition(e, PanickingState{Sub: PanickingGoingToTown, To: st.To, Attempt: st.Attempt + 1}, nil)
			return
		}
		transition(e, PanickingState{Sub: PanickingCompleting, To: st.To}, nil)
		return
	}

	transition(e, PanickingState{Sub: PanickingGoingToTown, Timeout: timeout, To: st.To, Attempt: st.Attempt}, nil)
}

// updatePanickingCompleting is immediate for Town: reaching Completing at
// all means the town trip already resolved (confirmed or retries
// exhausted), so it hands straight back to Idle. Channel instead waits
// out a settle window and, if the minimap comes back Idle with other
// players on it, cycles the channel menu again rather than settling on a
// populated channel.
func updatePanickingCompleting(res Resources, e *Entity, st PanickingState) {
	if st.To == actionqueue.PanicToTown {
		transition(e, Idle{}, nil)
		return
	}

	timeout := st.Timeout
	if timeout.Advance(PanicCompletingTimeout) == LifecycleEnded {
		switch m := res.Detector.DetectMinimap().(type) {
		case detect.MinimapIdle:
			if len(m.OtherPlayers) > 0 {
				transition(e, PanickingState{Sub: PanickingOpening, To: st.To}, nil)
				return
			}
			transition(e, Idle{}, nil)
			return
		default:
			transition(e, PanickingState{Sub: PanickingCompleting, To: st.To}, nil)
			return
		}
	}
	transition(e, PanickingState{Sub: PanickingCompleting, Timeout: timeout, To: st.To}, nil)
}

func minimapIsIdle(res Resources) bool {
	_, ok := res.Detector.DetectMinimap().(detect.MinimapIdle)
	return ok
}
