package player

import (
	"testing"

	"fieldbot/internal/detect"
	"fieldbot/internal/keybind"
)

func TestUsingBoosterSuccessResetsFailCount(t *testing.T) {
	res, rec := testResources()
	res.Detector = &detect.Scripted{AdminVisible: []bool{true}}
	e := &Entity{
		State:   NewUsingBooster(BoosterVIP),
		Context: Context{VIPBoosterFailCount: 2, Config: keybind.Config{HasVIPBoosterKey: true, VIPBoosterKey: keybind.Key1}},
	}

	for i := uint32(0); i < UseBoosterUsingTimeout; i++ {
		UpdateUsingBoosterState(res, e)
	}
	if _, ok := e.State.(UsingBoosterState); !ok {
		t.Fatalf("expected to still be in UsingBoosterState (Confirming) after the Using window, got %T", e.State)
	}

	for i := uint32(0); i < UseBoosterConfirmingTimeout; i++ {
		UpdateUsingBoosterState(res, e)
	}

	if e.Context.VIPBoosterFailCount != 0 {
		t.Fatalf("expected a successful confirm to reset the fail count, got %d", e.Context.VIPBoosterFailCount)
	}

	foundEnter := false
	for _, p := range rec.Presses() {
		if p.Key == keybind.KeyEnter {
			foundEnter = true
		}
	}
	if !foundEnter {
		t.Fatalf("expected confirming to press Enter")
	}
}

func TestUsingBoosterFailureIncrementsCount(t *testing.T) {
	res, _ := testResources()
	e := &Entity{
		State:   NewUsingBooster(BoosterHexa),
		Context: Context{Config: keybind.Config{HasHexaBoosterKey: true, HexaBoosterKey: keybind.Key2}},
	}

	for i := uint32(0); i < UseBoosterUsingTimeout; i++ {
		UpdateUsingBoosterState(res, e)
	}

	st, ok := e.State.(UsingBoosterState)
	if !ok || st.Sub != UsingBoosterCompleting || !st.Failed {
		t.Fatalf("expected failed detect to land in a failed Completing, got %+v ok=%v", e.State, ok)
	}
	if e.Context.HexaBoosterFailCount != 1 {
		t.Fatalf("expected fail count to increment, got %d", e.Context.HexaBoosterFailCount)
	}
}
