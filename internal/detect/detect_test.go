package detect

import "testing"

func TestScriptedRepeatsLastEntry(t *testing.T) {
	s := &Scripted{PlayerInCashShop: []bool{true, false}}
	if !s.DetectPlayerInCashShop() {
		t.Fatalf("expected first scripted value true")
	}
	if s.DetectPlayerInCashShop() {
		t.Fatalf("expected second scripted value false")
	}
	if s.DetectPlayerInCashShop() {
		t.Fatalf("expected scripted detector to repeat its last value")
	}
}

func TestScriptedDefaultsToFalse(t *testing.T) {
	s := &Scripted{}
	if s.DetectChatMenuOpened() {
		t.Fatalf("expected unscripted detector to default false")
	}
}

func TestScriptedMinimapDefaultsToDetecting(t *testing.T) {
	s := &Scripted{}
	if _, ok := s.DetectMinimap().(MinimapDetecting); !ok {
		t.Fatalf("expected unscripted minimap to default to Detecting")
	}
}
