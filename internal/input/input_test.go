package input

import (
	"testing"
	"time"

	"fieldbot/internal/keybind"
)

func TestRecordingOrdersPresses(t *testing.T) {
	r := NewRecording()
	r.SendKey(keybind.KeyUp)
	r.SendKeyDown(keybind.KeyLeft)
	r.SendKeyUp(keybind.KeyLeft)
	r.SendKeyDownWithOptions(keybind.KeyRight, KeyDownOptions{Down: 50 * time.Millisecond})

	presses := r.Presses()
	if len(presses) != 4 {
		t.Fatalf("expected 4 recorded presses, got %d", len(presses))
	}
	wantKinds := []PressKind{PressTap, PressDown, PressUp, PressDownWithOptions}
	for i, want := range wantKinds {
		if presses[i].Kind != want {
			t.Fatalf("press %d: want kind %v, got %v", i, want, presses[i].Kind)
		}
	}
	last, ok := r.Last()
	if !ok || last.Key != keybind.KeyRight {
		t.Fatalf("expected last press to be KeyRight, got %+v ok=%v", last, ok)
	}
}

func TestRecordingReset(t *testing.T) {
	r := NewRecording()
	r.SendKey(keybind.KeyEnter)
	r.Reset()
	if _, ok := r.Last(); ok {
		t.Fatalf("expected no presses after Reset")
	}
}
