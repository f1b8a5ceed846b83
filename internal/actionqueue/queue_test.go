package actionqueue

import "testing"

func TestEnqueueStampsID(t *testing.T) {
	q := New()
	a := q.Enqueue(Action{Kind: KindSolveRune, SolveRune: true})
	if a.ID == "" {
		t.Fatalf("expected enqueue to stamp a correlation ID")
	}
}

func TestFIFOOrder(t *testing.T) {
	q := New()
	q.Enqueue(Action{Kind: KindKey, Key: &KeyPress{Key: 1}})
	q.Enqueue(Action{Kind: KindKey, Key: &KeyPress{Key: 2}})

	first, ok := q.Pop()
	if !ok || first.Key.Key != 1 {
		t.Fatalf("expected first popped action to carry key 1, got %+v", first)
	}
	second, ok := q.Pop()
	if !ok || second.Key.Key != 2 {
		t.Fatalf("expected second popped action to carry key 2, got %+v", second)
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("expected queue to be empty")
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	q := New()
	q.Enqueue(Action{Kind: KindUnstuck, Unstuck: true})
	if _, ok := q.Peek(); !ok {
		t.Fatalf("expected peek to see the head")
	}
	if q.Len() != 1 {
		t.Fatalf("peek must not remove the head, len=%d", q.Len())
	}
}
