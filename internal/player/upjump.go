package player

import (
	"fieldbot/internal/detect"
	"fieldbot/internal/geom"
	"fieldbot/internal/keybind"
)

const (
	UpJumpSpamDelay     uint32 = 7
	UpJumpSoftSpamDelay uint32 = 12
	UpJumpTimeout       uint32 = MoveTimeout + 3

	UpJumpedYVelocityThreshold float64 = 1.3
	UpJumpXNearStationary      float64 = 0.28
	UpJumpYNearStationary      float64 = 0.4

	TeleportWithJumpThreshold   int32 = 20
	UpJumpAndTeleportThreshold  int32 = 23
	SoftUpJumpThreshold         int32 = 16
)

// UpJumpKind distinguishes the handful of ways a class can clear a
// vertical gap. Mage carries its own inner sub-state machine because a
// mage's up-jump is really a teleport-then-fly sequence, not a single
// key press.
type UpJumpKind int

const (
	UpJumpKindMage UpJumpKind = iota
	UpJumpKindUpArrow
	UpJumpKindJumpKey
	UpJumpKindSpecificKey
)

// MageSub is the inner state of a UpJumpKindMage run.
type MageSub int

const (
	MageTeleporting MageSub = iota
	MageUpJumping
	MageFlying
)

// InferUpJumpKind chooses which up-jump technique to use from the bound
// keys: a dedicated up-jump key implies SpecificKey, a teleport key with
// no up-jump key implies Mage, otherwise fall back to the plain jump key
// or the up arrow.
func InferUpJumpKind(cfg keybind.Config) UpJumpKind {
	switch {
	case cfg.HasUpJumpKey:
		return UpJumpKindSpecificKey
	case cfg.HasTeleportKey:
		return UpJumpKindMage
	case cfg.JumpKey != keybind.KeyUnknown:
		return UpJumpKindJumpKey
	default:
		return UpJumpKindUpArrow
	}
}

// UpJumpingState clears a vertical gap too tall for a plain jump.
type UpJumpingState struct {
	Moving                Moving
	Kind                  UpJumpKind
	Mage                  MageSub
	SpamDelay             uint32
	AutoMobWaitCompletion bool
}

func (UpJumpingState) isPlayerState() {}

// UpdateUpJumpingState dispatches to the per-kind routine and falls back
// to the arbitrator once the leg's timeout ends.
func UpdateUpJumpingState(res Resources, e *Entity) {
	st, ok := e.State.(UpJumpingState)
	if !ok {
		return
	}
	pos := e.Context.LastKnownPos
	if pos == nil {
		return
	}

	result := NextMovingLifecycle(st.Moving, *pos, UpJumpTimeout, ChangeAxisY)
	moving := result.Moving

	if result.Kind == MovingStarted {
		// Stall until near stationary: starting an up jump while still
		// carrying sideways or vertical momentum from the prior leg
		// measures the jump from a position the player hasn't settled
		// into yet.
		vx, vy := e.Context.Velocity[0], e.Context.Velocity[1]
		if vx < 0 {
			vx = -vx
		}
		if vx > UpJumpXNearStationary || !yVelocityNearStationary(vy) {
			moving.Timeout.Started = false
			transition(e, UpJumpingState{Moving: moving, Kind: st.Kind, Mage: st.Mage, SpamDelay: st.SpamDelay, AutoMobWaitCompletion: st.AutoMobWaitCompletion}, nil)
			return
		}

		if insidePortal(res, moving.Pos) {
			transition(e, Idle{}, nil)
			return
		}

		e.Context.LastMovement = LastMovementUpJumping
	}
	if result.Kind == MovingEnded {
		transitionToMoving(e, moving)
		return
	}

	switch st.Kind {
	case UpJumpKindMage:
		updateMageUpJump(res, e, st, moving)
	default:
		updateFlying(res, e, st, moving)
	}
}

func updateFlying(res Resources, e *Entity, st UpJumpingState, moving Moving) {
	spam := st.SpamDelay + 1
	delay := UpJumpSpamDelay
	if moving.Timeout.Total > UpJumpSpamDelay {
		delay = UpJumpSoftSpamDelay
	}
	if spam >= delay {
		spam = 0
		switch st.Kind {
		case UpJumpKindUpArrow:
			res.Input.SendKey(keybind.KeyUp)
		case UpJumpKindJumpKey:
			res.Input.SendKey(e.Context.Config.JumpKey)
		case UpJumpKindSpecificKey:
			res.Input.SendKey(e.Context.Config.UpJumpKey)
		}
	}
	transition(e, UpJumpingState{Moving: moving, Kind: st.Kind, Mage: st.Mage, SpamDelay: spam, AutoMobWaitCompletion: st.AutoMobWaitCompletion}, nil)
}

func updateMageUpJump(res Resources, e *Entity, st UpJumpingState, moving Moving) {
	yDist, _ := moving.YDistanceDirectionFrom(false, moving.Pos)
	nearStationary := yVelocityNearStationary(e.Context.Velocity[1])

	sub := st.Mage
	switch sub {
	case MageTeleporting:
		res.Input.SendKey(e.Context.Config.TeleportKey)
		if yDist <= SoftUpJumpThreshold || nearStationary {
			sub = MageUpJumping
		}
	case MageUpJumping:
		res.Input.SendKey(e.Context.Config.JumpKey)
		if e.Context.Velocity[1] >= UpJumpedYVelocityThreshold {
			sub = MageFlying
		}
	case MageFlying:
		if yDist >= TeleportWithJumpThreshold {
			res.Input.SendKey(e.Context.Config.TeleportKey)
		}
	}

	transition(e, UpJumpingState{Moving: moving, Kind: st.Kind, Mage: sub, SpamDelay: st.SpamDelay, AutoMobWaitCompletion: st.AutoMobWaitCompletion}, nil)
}

// insidePortal reports whether pos falls within any portal the minimap
// last reported, aborting an up jump attempted from inside one.
func insidePortal(res Resources, pos geom.Point) bool {
	idle, ok := res.Detector.DetectMinimap().(detect.MinimapIdle)
	if !ok {
		return false
	}
	for _, portal := range idle.Portals {
		if portal.Contains(pos) {
			return true
		}
	}
	return false
}

func yVelocityNearStationary(v float64) bool {
	if v < 0 {
		v = -v
	}
	return v <= UpJumpYNearStationary
}
