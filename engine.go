package fieldbot

import (
	"context"
	"time"

	"fieldbot/internal/actionqueue"
	"fieldbot/internal/debugstream"
	"fieldbot/internal/detect"
	"fieldbot/internal/input"
	"fieldbot/internal/keybind"
	"fieldbot/internal/player"
	"fieldbot/internal/rng"
	"fieldbot/logging"
)

// Engine owns one player's state machine and the resources it needs to
// run: where to send key presses, how to read the screen, a
// deterministic randomness source, and the queue a host feeds actions
// into. Engine itself is not safe for concurrent use; callers that want
// concurrent observation (the debug stream) must take a Snapshot and
// hand that off instead of reaching into Engine directly.
type Engine struct {
	entity    player.Entity
	resources player.Resources
	tick      uint64
}

// Options configures a new Engine. Detector, Input, and Publisher may
// be left nil, in which case a no-op/scripted stand-in is used — useful
// for a host that hasn't wired a real screen reader or key injector yet.
type Options struct {
	Config    keybind.Config
	Seeds     rng.Seeds
	Detector  detect.Detector
	Input     input.Sink
	Publisher logging.Publisher
}

// New builds an Engine starting from Idle.
func New(opts Options) *Engine {
	detector := opts.Detector
	if detector == nil {
		detector = &detect.Scripted{}
	}
	sink := opts.Input
	if sink == nil {
		sink = input.NewRecording()
	}
	publisher := opts.Publisher
	if publisher == nil {
		publisher = logging.NopPublisher{}
	}

	return &Engine{
		entity: player.NewEntity(opts.Config),
		resources: player.Resources{
			Input:    sink,
			Detector: detector,
			RNG:      rng.NewSource(opts.Seeds),
			Queue:    actionqueue.New(),
			Log:      publisher,
		},
	}
}

// Enqueue adds an action to the engine's queue for the arbitrator to
// pick up once the entity returns to Idle.
func (e *Engine) Enqueue(action actionqueue.Action) actionqueue.Action {
	return e.resources.Queue.Enqueue(action)
}

// Tick runs one update of the state machine against the given minimap
// reading (nil when the minimap was unreadable this tick) and returns
// the tick number that was just processed.
func (e *Engine) Tick(minimapPos *Point) uint64 {
	e.resources.Tick = e.tick
	player.Update(e.resources, &e.entity, minimapPos)
	e.tick++
	return e.tick - 1
}

// Snapshot captures the current tick's observable state for the debug
// stream or a log line, without exposing the mutable Entity itself.
func (e *Engine) Snapshot() debugstream.Snapshot {
	snap := debugstream.Snapshot{
		Tick:                      e.tick,
		State:                     stateLabel(e.entity.State),
		Sub:                       subLabel(e.entity.State),
		LastMovement:              lastMovementLabel(e.entity.Context.LastMovement),
		UnstuckCounter:            e.entity.Context.UnstuckCounter,
		UnstuckConsecutiveCounter: e.entity.Context.UnstuckConsecutiveCounter,
		VIPBoosterFailCount:       e.entity.Context.VIPBoosterFailCount,
		HexaBoosterFailCount:      e.entity.Context.HexaBoosterFailCount,
		QueueLength:               e.resources.Queue.Len(),
	}
	if pos := e.entity.Context.LastKnownPos; pos != nil {
		snap.HasPosition = true
		snap.PositionX = pos.X
		snap.PositionY = pos.Y
	}
	return snap
}

// Run drives the engine at the given tick rate until ctx is canceled,
// pulling minimap readings from read and broadcasting a Snapshot
// through hub after every tick. Publishing failures never stop the
// loop; a disconnected debug-stream client only affects itself.
func (e *Engine) Run(ctx context.Context, tickRate time.Duration, read func() *Point, hub *debugstream.Hub) {
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var pos *Point
			if read != nil {
				pos = read()
			}
			e.Tick(pos)
			if hub != nil {
				hub.Broadcast(e.Snapshot())
			}
		}
	}
}

func stateLabel(s player.State) string {
	switch s.(type) {
	case player.Idle:
		return "Idle"
	case player.MovingState:
		return "Moving"
	case player.AdjustingState:
		return "Adjusting"
	case player.DoubleJumpingState:
		return "DoubleJumping"
	case player.JumpingState:
		return "Jumping"
	case player.FallingState:
		return "Falling"
	case player.GrapplingState:
		return "Grappling"
	case player.UpJumpingState:
		return "UpJumping"
	case player.UnstuckingState:
		return "Unstucking"
	case player.CashShopState:
		return "CashShop"
	case player.ChattingState:
		return "Chatting"
	case player.PanickingState:
		return "Panicking"
	case player.UsingBoosterState:
		return "UsingBooster"
	case player.StallingState:
		return "Stalling"
	default:
		return "Unknown"
	}
}

func subLabel(s player.State) string {
	switch st := s.(type) {
	case player.CashShopState:
		if st.Sub == player.CashShopStalling {
			return "Stalling"
		}
		return "Entered"
	case player.ChattingState:
		return chattingSubLabel(st.Sub)
	case player.PanickingState:
		return panickingSubLabel(st.Sub)
	case player.UsingBoosterState:
		return usingBoosterSubLabel(st.Sub)
	case player.UpJumpingState:
		return upJumpKindLabel(st.Kind)
	default:
		return ""
	}
}

func chattingSubLabel(sub player.ChattingSub) string {
	switch sub {
	case player.ChattingOpeningMenu:
		return "OpeningMenu"
	case player.ChattingTyping:
		return "Typing"
	default:
		return "Completing"
	}
}

func panickingSubLabel(sub player.PanickingSub) string {
	switch sub {
	case player.PanickingOpening:
		return "Opening"
	case player.PanickingGoingToTown:
		return "GoingToTown"
	case player.PanickingCompleting:
		return "Completing"
	default:
		return "Unknown"
	}
}

func usingBoosterSubLabel(sub player.UsingBoosterSub) string {
	switch sub {
	case player.UsingBoosterUsing:
		return "Using"
	case player.UsingBoosterConfirming:
		return "Confirming"
	default:
		return "Completing"
	}
}

func upJumpKindLabel(kind player.UpJumpKind) string {
	switch kind {
	case player.UpJumpKindMage:
		return "Mage"
	case player.UpJumpKindUpArrow:
		return "UpArrow"
	case player.UpJumpKindJumpKey:
		return "JumpKey"
	default:
		return "SpecificKey"
	}
}

func lastMovementLabel(m player.LastMovement) string {
	switch m {
	case player.LastMovementMoving:
		return "Moving"
	case player.LastMovementAdjusting:
		return "Adjusting"
	case player.LastMovementDoubleJumping:
		return "DoubleJumping"
	case player.LastMovementJumping:
		return "Jumping"
	case player.LastMovementFalling:
		return "Falling"
	case player.LastMovementGrappling:
		return "Grappling"
	case player.LastMovementUpJumping:
		return "UpJumping"
	case player.LastMovementUnstucking:
		return "Unstucking"
	default:
		return "None"
	}
}
