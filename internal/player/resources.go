package player

import (
	"fieldbot/internal/actionqueue"
	"fieldbot/internal/detect"
	"fieldbot/internal/input"
	"fieldbot/internal/rng"
	"fieldbot/logging"
)

// Resources bundles everything a state update needs from outside the
// state machine itself: where to send key presses, how to read the
// screen, the deterministic randomness source, the queue of pending
// actions, the current tick number, and where to publish telemetry
// events. A single Resources value is shared read-only across every
// state update in a tick.
type Resources struct {
	Input    input.Sink
	Detector detect.Detector
	RNG      rng.Source
	Queue    *actionqueue.Queue
	Tick     uint64
	Log      logging.Publisher
}
