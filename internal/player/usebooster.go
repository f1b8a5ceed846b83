package player

import "fieldbot/internal/keybind"

const (
	UseBoosterUsingTimeout    uint32 = 120
	UseBoosterPressKeyAt      uint32 = 60
	UseBoosterConfirmingTimeout uint32 = 30
	UseBoosterConfirmLeftAt1 uint32 = 0
	UseBoosterConfirmLeftAt2 uint32 = 15
	UseBoosterCompletingTimeout uint32 = 15
)

// BoosterKind distinguishes the two consumable boosters the engine can
// use, each bound to its own key and its own fail counter.
type BoosterKind int

const (
	BoosterVIP BoosterKind = iota
	BoosterHexa
)

// UsingBoosterSub names the three legs of a booster-use attempt.
type UsingBoosterSub int

const (
	UsingBoosterUsing UsingBoosterSub = iota
	UsingBoosterConfirming
	UsingBoosterCompleting
)

// UsingBoosterState presses the bound booster key, confirms the popup
// that follows, and waits for the effect to visibly apply.
type UsingBoosterState struct {
	Sub     UsingBoosterSub
	Timeout Timeout
	Kind    BoosterKind
	Failed  bool
}

func (UsingBoosterState) isPlayerState() {}

// NewUsingBooster starts a booster-use attempt for the given kind.
func NewUsingBooster(kind BoosterKind) UsingBoosterState {
	return UsingBoosterState{Sub: UsingBoosterUsing, Kind: kind}
}

func UpdateUsingBoosterState(res Resources, e *Entity) {
	st, ok := e.State.(UsingBoosterState)
	if !ok {
		return
	}

	switch st.Sub {
	case UsingBoosterUsing:
		updateUsingBoosterUsing(res, e, st)
	case UsingBoosterConfirming:
		updateUsingBoosterConfirming(res, e, st)
	case UsingBoosterCompleting:
		updateUsingBoosterCompleting(res, e, st)
	}
}

func updateUsingBoosterUsing(res Resources, e *Entity, st UsingBoosterState) {
	timeout := st.Timeout
	lifecycle := timeout.Advance(UseBoosterUsingTimeout)

	switch lifecycle {
	case LifecycleUpdated:
		if timeout.Current == UseBoosterPressKeyAt {
			key, ok := boosterKeyOf(e.Context.Config, st.Kind)
			if ok {
				res.Input.SendKey(key)
			}
		}
	case LifecycleEnded:
		if res.Detector.DetectAdminVisible() {
			transition(e, UsingBoosterState{Sub: UsingBoosterConfirming, Kind: st.Kind}, nil)
			return
		}
		incrementBoosterFail(&e.Context, st.Kind)
		transition(e, UsingBoosterState{Sub: UsingBoosterCompleting, Kind: st.Kind, Failed: true}, nil)
		return
	}

	transition(e, UsingBoosterState{Sub: UsingBoosterUsing, Timeout: timeout, Kind: st.Kind}, nil)
}

func updateUsingBoosterConfirming(res Resources, e *Entity, st UsingBoosterState) {
	timeout := st.Timeout
	lifecycle := timeout.Advance(UseBoosterConfirmingTimeout)

	switch lifecycle {
	case LifecycleStarted:
		res.Input.SendKey(keybind.KeyLeft)
	case LifecycleUpdated:
		if timeout.Current == UseBoosterConfirmLeftAt2 {
			res.Input.SendKey(keybind.KeyLeft)
		}
	case LifecycleEnded:
		res.Input.SendKey(keybind.KeyEnter)
		resetBoosterFail(&e.Context, st.Kind)
		transition(e, UsingBoosterState{Sub: UsingBoosterCompleting, Kind: st.Kind}, nil)
		return
	}

	transition(e, UsingBoosterState{Sub: UsingBoosterConfirming, Timeout: timeout, Kind: st.Kind}, nil)
}

func updateUsingBoosterCompleting(res Resources, e *Entity, st UsingBoosterState) {
	if res.Detector.DetectEscSettings() {
		res.Input.SendKey(keybind.KeyEsc)
	}

	timeout := st.Timeout
	if timeout.Advance(UseBoosterCompletingTimeout) == LifecycleEnded {
		transition(e, Idle{}, nil)
		return
	}
	transition(e, UsingBoosterState{Sub: UsingBoosterCompleting, Timeout: timeout, Kind: st.Kind, Failed: st.Failed}, nil)
}

func boosterKeyOf(cfg keybind.Config, kind BoosterKind) (keybind.Key, bool) {
	switch kind {
	case BoosterVIP:
		return cfg.VIPBoosterKey, cfg.HasVIPBoosterKey
	case BoosterHexa:
		return cfg.HexaBoosterKey, cfg.HasHexaBoosterKey
	default:
		return keybind.KeyUnknown, false
	}
}

func incrementBoosterFail(ctx *Context, kind BoosterKind) {
	switch kind {
	case BoosterVIP:
		ctx.VIPBoosterFailCount++
	case BoosterHexa:
		ctx.HexaBoosterFailCount++
	}
}

func resetBoosterFail(ctx *Context, kind BoosterKind) {
	switch kind {
	case BoosterVIP:
		ctx.VIPBoosterFailCount = 0
	case BoosterHexa:
		ctx.HexaBoosterFailCount = 0
	}
}
