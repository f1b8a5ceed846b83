package player

import (
	"testing"

	"fieldbot/internal/detect"
)

func TestChattingOpensMenuThenTypes(t *testing.T) {
	res, _ := testResources()
	res.Detector = &detect.Scripted{ChatMenuOpened: []bool{true}}
	e := &Entity{State: NewChatting("hi")}

	UpdateChattingState(res, e)

	st, ok := e.State.(ChattingState)
	if !ok || st.Sub != ChattingTyping {
		t.Fatalf("expected to move to Typing once the menu opens, got %+v ok=%v", e.State, ok)
	}
}

func TestChattingAbortsOnUnmappableCharacter(t *testing.T) {
	res, _ := testResources()
	e := &Entity{State: ChattingState{Sub: ChattingTyping, Content: "\x01"}}

	UpdateChattingState(res, e)

	st, ok := e.State.(ChattingState)
	if !ok || st.Sub != ChattingCompleting || !st.Failed {
		t.Fatalf("expected an unmapped character to abort straight to a failed Completing, got %+v ok=%v", e.State, ok)
	}
}

func TestChattingRetriesOpeningMenuUpToMax(t *testing.T) {
	res, _ := testResources()
	e := &Entity{State: NewChatting("hi")}

	for retries := 0; retries < ChattingMaxRetry; retries++ {
		for i := uint32(0); i < ChattingOpeningMenuTimeout; i++ {
			UpdateChattingState(res, e)
		}
	}

	if _, ok := e.State.(Idle); !ok {
		t.Fatalf("expected chatting to give up after %d retries, got %T", ChattingMaxRetry, e.State)
	}
}
