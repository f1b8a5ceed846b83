package player

import "testing"

func TestTimeoutAdvanceLifecycle(t *testing.T) {
	var to Timeout
	if got := to.Advance(3); got != LifecycleStarted {
		t.Fatalf("first advance: want Started, got %v", got)
	}
	if got := to.Advance(3); got != LifecycleUpdated {
		t.Fatalf("second advance: want Updated, got %v", got)
	}
	if got := to.Advance(3); got != LifecycleEnded {
		t.Fatalf("third advance: want Ended, got %v", got)
	}
	if to.Started || to.Current != 0 {
		t.Fatalf("expected reset after Ended, got %+v", to)
	}
}

func TestTimeoutFreezeSaturates(t *testing.T) {
	to := Timeout{Current: 0, Started: true}
	to.Freeze()
	if to.Current != 0 {
		t.Fatalf("expected Freeze to saturate at zero, got %d", to.Current)
	}
	to.Current = 5
	to.Freeze()
	if to.Current != 4 {
		t.Fatalf("expected Freeze to decrement by one, got %d", to.Current)
	}
}
