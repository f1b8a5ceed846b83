package player

import "fieldbot/internal/keybind"

// State is the tagged union of every state the player can be in. Each
// concrete type lives beside its own Update function; this file only
// holds the shared marker and the entity wrapper.
type State interface {
	isPlayerState()
}

// Idle is the state before any movement or procedure has been requested.
// The arbitrator moves the player out of Idle when there is queued work;
// a detected cash shop screen moves it into CashShopState.
type Idle struct{}

func (Idle) isPlayerState() {}

// Entity pairs the current state with the context data that survives
// across state transitions.
type Entity struct {
	State   State
	Context Context
}

// NewEntity builds an Entity starting in Idle with the given config.
func NewEntity(cfg keybind.Config) Entity {
	return Entity{State: Idle{}, Context: Context{Config: cfg}}
}
