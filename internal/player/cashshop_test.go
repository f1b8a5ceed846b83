package player

import "testing"

func TestCashShopProgressesThroughSubStates(t *testing.T) {
	res, _ := testResources()
	e := &Entity{State: CashShopState{}}

	for i := uint32(0); i < CashShopEnteredTimeout; i++ {
		UpdateCashShopState(res, e)
	}
	st, ok := e.State.(CashShopState)
	if !ok || st.Sub != CashShopStalling {
		t.Fatalf("expected to reach Stalling after the Entered window, got %+v ok=%v", e.State, ok)
	}

	for i := uint32(0); i < CashShopStallingTimeout; i++ {
		UpdateCashShopState(res, e)
	}
	if _, ok := e.State.(Idle); !ok {
		t.Fatalf("expected to return to Idle after the Stalling window, got %T", e.State)
	}
}
