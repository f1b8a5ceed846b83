package player

import (
	"testing"

	"fieldbot/internal/geom"
)

func TestNextMovingLifecycleAxisX(t *testing.T) {
	m := NewMoving(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}, false, nil)
	result := NextMovingLifecycle(m, geom.Point{X: 5, Y: 99}, MoveTimeout, ChangeAxisX)
	if result.Kind != MovingStarted {
		t.Fatalf("expected Started on first advance, got %v", result.Kind)
	}
	if result.Moving.Pos.X != 5 || result.Moving.Pos.Y != 0 {
		t.Fatalf("expected only X axis refreshed, got %+v", result.Moving.Pos)
	}
}

func TestNextMovingLifecycleEndsAtTimeout(t *testing.T) {
	m := NewMoving(geom.Point{}, geom.Point{X: 100}, false, nil)
	pos := geom.Point{X: 1}
	var last MovingLifecycleResult
	for i := uint32(0); i < MoveTimeout; i++ {
		last = NextMovingLifecycle(m, pos, MoveTimeout, ChangeAxisBoth)
		m = last.Moving
	}
	if last.Kind != MovingEnded {
		t.Fatalf("expected Ended after %d advances, got %v", MoveTimeout, last.Kind)
	}
}

func TestAdvanceIntermediatePopsWaypoint(t *testing.T) {
	m := NewMoving(geom.Point{}, geom.Point{X: 1}, false, []geom.Point{{X: 2}, {X: 3}})
	next, ok := m.AdvanceIntermediate()
	if !ok {
		t.Fatalf("expected an intermediate to be available")
	}
	if next.Dest.X != 2 || len(next.Intermediates) != 1 {
		t.Fatalf("unexpected state after advance: %+v", next)
	}
}

func TestXDistanceDirectionFrom(t *testing.T) {
	m := NewMoving(geom.Point{}, geom.Point{X: -5}, false, nil)
	dist, dir := m.XDistanceDirectionFrom(false, geom.Point{X: 0})
	if dist != 5 || dir != -1 {
		t.Fatalf("expected dist=5 dir=-1, got dist=%d dir=%d", dist, dir)
	}
}
