package player

import "fieldbot/internal/geom"

// MoveTimeout is the default number of ticks a single leg of movement is
// allowed to take before the moving primitive reports Ended regardless of
// whether the destination was reached.
const MoveTimeout uint32 = 30

// ChangeAxis selects which axis of Moving.Pos gets refreshed from the
// latest known position on a given tick. States that only care about
// vertical progress (falling) track Y only; states that care about both
// (grappling) track both.
type ChangeAxis int

const (
	ChangeAxisX ChangeAxis = iota
	ChangeAxisY
	ChangeAxisBoth
)

// Moving tracks one leg of travel toward Dest, optionally followed by
// further waypoints in Intermediates.
type Moving struct {
	Pos           geom.Point
	Dest          geom.Point
	Exact         bool
	Intermediates []geom.Point
	Completed     bool
	Timeout       Timeout
}

// NewMoving starts a fresh leg of travel from pos toward dest.
func NewMoving(pos, dest geom.Point, exact bool, intermediates []geom.Point) Moving {
	return Moving{Pos: pos, Dest: dest, Exact: exact, Intermediates: intermediates}
}

// MovingLifecycleKind mirrors Lifecycle for a Moving value rather than a
// bare Timeout.
type MovingLifecycleKind int

const (
	MovingStarted MovingLifecycleKind = iota
	MovingUpdated
	MovingEnded
)

// MovingLifecycleResult is the outcome of advancing a Moving primitive by
// one tick.
type MovingLifecycleResult struct {
	Kind   MovingLifecycleKind
	Moving Moving
}

// NextMovingLifecycle refreshes moving's position along axis from
// lastKnownPos, advances its embedded timeout against max, and reports
// the combined lifecycle phase.
func NextMovingLifecycle(moving Moving, lastKnownPos geom.Point, max uint32, axis ChangeAxis) MovingLifecycleResult {
	switch axis {
	case ChangeAxisX:
		moving.Pos.X = lastKnownPos.X
	case ChangeAxisY:
		moving.Pos.Y = lastKnownPos.Y
	case ChangeAxisBoth:
		moving.Pos = lastKnownPos
	}

	switch moving.Timeout.Advance(max) {
	case LifecycleStarted:
		return MovingLifecycleResult{Kind: MovingStarted, Moving: moving}
	case LifecycleEnded:
		return MovingLifecycleResult{Kind: MovingEnded, Moving: moving}
	default:
		return MovingLifecycleResult{Kind: MovingUpdated, Moving: moving}
	}
}

// XDistanceDirectionFrom returns the absolute horizontal distance from
// pos to the tracked target (moving.Pos if useCurrent, moving.Dest
// otherwise) and the sign of the direction needed to close it: positive
// means move right, negative means move left, zero means aligned.
func (m Moving) XDistanceDirectionFrom(useCurrent bool, pos geom.Point) (int32, int32) {
	target := m.Dest
	if useCurrent {
		target = m.Pos
	}
	d := target.X - pos.X
	return abs32(d), sign32(d)
}

// YDistanceDirectionFrom mirrors XDistanceDirectionFrom for the vertical
// axis. Minimap y grows upward: positive direction means the target is
// above pos (press up / jump), negative means below (press down / fall).
func (m Moving) YDistanceDirectionFrom(useCurrent bool, pos geom.Point) (int32, int32) {
	target := m.Dest
	if useCurrent {
		target = m.Pos
	}
	d := target.Y - pos.Y
	return abs32(d), sign32(d)
}

// IsDestinationIntermediate reports whether there are further waypoints
// queued up after the current Dest is reached.
func (m Moving) IsDestinationIntermediate() bool {
	return len(m.Intermediates) > 0
}

// AdvanceIntermediate pops the next waypoint into Dest when one is
// queued, returning the updated Moving and true, or the input unchanged
// and false when Intermediates is empty.
func (m Moving) AdvanceIntermediate() (Moving, bool) {
	if len(m.Intermediates) == 0 {
		return m, false
	}
	m.Dest = m.Intermediates[0]
	m.Intermediates = m.Intermediates[1:]
	m.Completed = false
	m.Timeout.Reset()
	return m, true
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign32(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
