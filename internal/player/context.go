package player

import (
	"fieldbot/internal/geom"
	"fieldbot/internal/keybind"
)

// LastMovement records which positional state most recently drove the
// character, as set by that state when it starts. Unstucking's non-random
// direction choice reads it (left unless the last movement was Moving),
// and the engine reports it in snapshots.
type LastMovement int

const (
	LastMovementNone LastMovement = iota
	LastMovementMoving
	LastMovementAdjusting
	LastMovementDoubleJumping
	LastMovementJumping
	LastMovementFalling
	LastMovementGrappling
	LastMovementUpJumping
	LastMovementUnstucking
)

// stationaryVelocityThreshold is the (dx, dy) value that both axes must
// equal for consecutive minimap readings to count as "not moving" for the
// purposes of IsStationary.
const stationaryVelocityThreshold = 0

// Direction names a horizontal facing, or Any when either one satisfies a
// requirement.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionAny
)

// Context carries everything a state update needs about the player
// across ticks that isn't itself part of the state tag: configuration,
// the latest minimap reading, accumulated velocity, and the small set of
// counters and buffered states the procedure states coordinate through.
type Context struct {
	Config keybind.Config

	// LastKnownPos is nil while the minimap is unreadable (Detecting).
	// Positional states must treat a nil read as "no new information",
	// never as "the player teleported to the origin".
	LastKnownPos *geom.Point

	// Velocity is derived from consecutive LastKnownPos readings, (dx,
	// dy) per tick. Grappling's stopping-threshold formula and the
	// up-jump checks key off it; falling chooses teleport by distance.
	Velocity [2]float64

	// IsStationary holds once Velocity settles to zero on both axes.
	// Falling stalls (rewinds timeout.started) while this is false rather
	// than act on a position reading that is still in motion from a
	// previous leg; UpJumping stalls on its own velocity thresholds.
	IsStationary bool

	// LastKnownDirection is the last horizontal facing a movement state
	// committed to; only Adjusting sets it. A Key(with=DoubleJump) action only
	// fires toward a direction that agrees with this, unless the action
	// itself asks for DirectionAny.
	LastKnownDirection Direction

	LastMovement LastMovement

	// StallingTimeoutState is the one-shot stash Stalling restores to on
	// its own Ended rather than falling back to Idle. Only ever populated
	// by a caller that wants Stalling interposed ahead of a specific
	// resume state.
	StallingTimeoutState State

	// AutoMobReachableY tracks the y of the last AutoMob destination
	// Stalling solidified against, so repeated terminal stalls against the
	// same target don't keep re-arming.
	AutoMobReachableY *int32

	UnstuckCounter            uint32
	UnstuckConsecutiveCounter uint32
	VIPBoosterFailCount       uint32
	HexaBoosterFailCount      uint32
}

// UpdatePosition refreshes LastKnownPos, derives Velocity from the
// previous reading, and recomputes IsStationary from that velocity. Call
// once per tick before dispatching to the current state.
func (c *Context) UpdatePosition(pos *geom.Point) {
	if pos == nil {
		c.LastKnownPos = nil
		return
	}
	if c.LastKnownPos != nil {
		c.Velocity[0] = float64(pos.X - c.LastKnownPos.X)
		c.Velocity[1] = float64(pos.Y - c.LastKnownPos.Y)
	}
	c.IsStationary = c.Velocity[0] == stationaryVelocityThreshold && c.Velocity[1] == stationaryVelocityThreshold
	next := *pos
	c.LastKnownPos = &next
}

// AutoMobReachableYRequireUpdate reports whether y differs from the last
// solidified AutoMobReachableY (or none has been recorded yet).
func (c *Context) AutoMobReachableYRequireUpdate(y int32) bool {
	return c.AutoMobReachableY == nil || *c.AutoMobReachableY != y
}

// AutoMobTrackReachableY solidifies y as the last reachable AutoMob
// destination.
func (c *Context) AutoMobTrackReachableY(y int32) {
	next := y
	c.AutoMobReachableY = &next
}
