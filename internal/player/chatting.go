package player

import "fieldbot/internal/keybind"

const (
	ChattingMaxRetry          int    = 3
	ChattingMaxContentLength  int    = 256
	ChattingOpeningMenuTimeout uint32 = 35
	ChattingTicksPerChar      uint32 = 3
	ChattingCompletingTimeout uint32 = 35
)

// ChattingSub names the three legs of sending one chat message.
type ChattingSub int

const (
	ChattingOpeningMenu ChattingSub = iota
	ChattingTyping
	ChattingCompleting
)

// ChattingState types Content into the in-game chat box, character by
// character, via the key each character maps to (see keybind.FromASCII).
// Characters with no key equivalent abort typing immediately rather than
// silently skip them.
type ChattingState struct {
	Sub       ChattingSub
	Timeout   Timeout
	Content   string
	CharIndex int
	Retries   int
	Failed    bool
}

func (ChattingState) isPlayerState() {}

// NewChatting starts a chat attempt, truncating content to the maximum
// length the chat box accepts.
func NewChatting(content string) ChattingState {
	if len(content) > ChattingMaxContentLength {
		content = content[:ChattingMaxContentLength]
	}
	return ChattingState{Sub: ChattingOpeningMenu, Content: content}
}

// UpdateChattingState drives the chat box open, types Content one
// character per ChattingTicksPerChar ticks, and waits out a completing
// window before returning to Idle.
func UpdateChattingState(res Resources, e *Entity) {
	st, ok := e.State.(ChattingState)
	if !ok {
		return
	}

	switch st.Sub {
	case ChattingOpeningMenu:
		updateChattingOpeningMenu(res, e, st)
	case ChattingTyping:
		updateChattingTyping(res, e, st)
	case ChattingCompleting:
		updateChattingCompleting(res, e, st)
	}
}

func updateChattingOpeningMenu(res Resources, e *Entity, st ChattingState) {
	if res.Detector.DetectChatMenuOpened() {
		transition(e, ChattingState{Sub: ChattingTyping, Content: st.Content}, nil)
		return
	}

	timeout := st.Timeout
	lifecycle := timeout.Advance(ChattingOpeningMenuTimeout)
	if lifecycle == LifecycleStarted {
		res.Input.SendKey(keybind.KeyEnter)
	}
	if lifecycle == LifecycleEnded {
		if st.Retries+1 >= ChattingMaxRetry {
			transition(e, Idle{}, nil)
			return
		}
		transition(e, ChattingState{Sub: ChattingOpeningMenu, Content: st.Content, Retries: st.Retries + 1}, nil)
		return
	}
	transition(e, ChattingState{Sub: ChattingOpeningMenu, Timeout: timeout, Content: st.Content, Retries: st.Retries}, nil)
}

func updateChattingTyping(res Resources, e *Entity, st ChattingState) {
	if st.CharIndex >= len(st.Content) {
		res.Input.SendKey(keybind.KeyEnter)
		transition(e, ChattingState{Sub: ChattingCompleting, Content: st.Content}, nil)
		return
	}

	timeout := st.Timeout
	lifecycle := timeout.Advance(ChattingTicksPerChar)
	if lifecycle == LifecycleStarted {
		c := st.Content[st.CharIndex]
		key, ok := keybind.FromASCII(c)
		if !ok {
			transition(e, ChattingState{Sub: ChattingCompleting, Content: st.Content, Failed: true}, nil)
			return
		}
		res.Input.SendKey(key)
	}
	if lifecycle == LifecycleEnded {
		transition(e, ChattingState{Sub: ChattingTyping, Content: st.Content, CharIndex: st.CharIndex + 1}, nil)
		return
	}
	transition(e, ChattingState{Sub: ChattingTyping, Timeout: timeout, Content: st.Content, CharIndex: st.CharIndex}, nil)
}

func updateChattingCompleting(res Resources, e *Entity, st ChattingState) {
	timeout := st.Timeout
	if timeout.Advance(ChattingCompletingTimeout) == LifecycleEnded {
		transition(e, Idle{}, nil)
		return
	}
	transition(e, ChattingState{Sub: ChattingCompleting, Timeout: timeout, Content: st.Content, Failed: st.Failed}, nil)
}
