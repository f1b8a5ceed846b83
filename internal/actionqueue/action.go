// Package actionqueue defines the action requests a host enqueues for the
// player state machine to work through, one at a time, and the FIFO that
// holds them between ticks.
package actionqueue

import "fieldbot/internal/geom"

// Action is the tagged union of requests a host can enqueue. Exactly one
// of the embedded payload pointers is non-nil; Kind names which one.
type Action struct {
	ID   string
	Kind Kind

	AutoMob   *AutoMob
	Key       *KeyPress
	Move      *Move
	PingPong  *PingPong
	Panic     *Panic
	// SolveRune carries no payload: a bare request to solve the rune
	// popup the next time one is detected.
	SolveRune bool
	// Unstuck carries no payload: a bare request to run the recovery
	// routine.
	Unstuck bool

	// NavigationHint is operator-facing only (path name + point index
	// the destination came from); it is never consulted for control
	// flow, and it is not copied into snapshots or log lines.
	NavigationHint string
}

// Kind discriminates which payload field of Action is populated.
type Kind int

const (
	KindAutoMob Kind = iota
	KindKey
	KindMove
	KindPingPong
	KindPanic
	KindSolveRune
	KindUnstuck
)

// AutoMob asks the engine to path toward a mob-attack position. No key is
// pressed for it once the position is reached.
type AutoMob struct {
	Dest          geom.Point
	Intermediates []geom.Point
	Exact         bool
}

// KeyPress asks the engine to press a single key, gated on the motion
// precondition named by With.
type KeyPress struct {
	Key       int
	With      ActionKeyWith
	Direction ActionKeyDirection
}

// ActionKeyWith names the motion precondition a KeyPress action waits for
// before the bound key is pressed.
type ActionKeyWith int

const (
	// ActionKeyWithStationary only fires once the current motion state has
	// completed and the player has come to rest.
	ActionKeyWithStationary ActionKeyWith = iota
	// ActionKeyWithDoubleJump forces a double jump first and fires once
	// that leg completes; no fall is combined with it.
	ActionKeyWithDoubleJump
	// ActionKeyWithAny fires as soon as the current motion state completes
	// and the residual y distance is within USE_KEY_Y_THRESHOLD, regardless
	// of direction.
	ActionKeyWithAny
)

// ActionKeyDirection constrains ActionKeyWithDoubleJump to a specific
// facing, or Any to allow either.
type ActionKeyDirection int

const (
	ActionKeyDirectionLeft ActionKeyDirection = iota
	ActionKeyDirectionRight
	ActionKeyDirectionAny
)

// Move asks the engine to reach a destination with no action taken once
// there.
type Move struct {
	Dest          geom.Point
	Intermediates []geom.Point
	Exact         bool
}

// PingPong asks the engine to patrol back and forth between two x bounds
// at a given y, used for farming a narrow platform.
type PingPong struct {
	Bound    geom.Point
	OtherBound geom.Point
}

// Panic asks the engine to leave the current map, either to town or by
// changing channel.
type Panic struct {
	To PanicTarget
}

// PanicTarget names the panic destination.
type PanicTarget int

const (
	PanicToChannel PanicTarget = iota
	PanicToTown
)
