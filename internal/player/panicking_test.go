package player

import (
	"testing"

	"fieldbot/internal/actionqueue"
)

func TestPanickingChannelCancelsWithoutQueuedAction(t *testing.T) {
	res, _ := testResources()
	e := &Entity{State: NewPanicking(actionqueue.PanicToChannel)}

	UpdatePanickingState(res, e)

	if _, ok := e.State.(Idle); !ok {
		t.Fatalf("expected channel panic to cancel to Idle with an empty queue, got %T", e.State)
	}
}

func TestPanickingTownIgnoresEmptyQueue(t *testing.T) {
	res, _ := testResources()
	e := &Entity{State: NewPanicking(actionqueue.PanicToTown)}

	UpdatePanickingState(res, e)

	st, ok := e.State.(PanickingState)
	if !ok {
		t.Fatalf("expected town panic to keep running with an empty queue, got %T", e.State)
	}
	if !st.Timeout.Started {
		t.Fatalf("expected town panic to have started its timeout")
	}
}

func TestPanickingOpeningRunsThroughInitialWindow(t *testing.T) {
	res, _ := testResources()
	res.Queue.Enqueue(actionqueue.Action{Kind: actionqueue.KindPanic, Panic: &actionqueue.Panic{To: actionqueue.PanicToChannel}})
	e := &Entity{State: NewPanicking(actionqueue.PanicToChannel)}

	for i := uint32(0); i < PanicTimeoutInitial; i++ {
		UpdatePanickingState(res, e)
	}

	st, ok := e.State.(PanickingState)
	if !ok {
		t.Fatalf("expected to remain in PanickingState through the initial window, got %T", e.State)
	}
	if st.Sub == PanickingOpening {
		t.Fatalf("expected the initial window to have ended and advanced past Opening")
	}
}
