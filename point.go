// Package fieldbot is the host-facing entry point for the automation
// engine: it wires together the player state machine with whatever
// minimap reader, input sink, and detector a given client integration
// supplies, and drives it one tick at a time.
package fieldbot

import "fieldbot/internal/geom"

// Point is the minimap coordinate type every host-facing API accepts
// and returns, re-exported from internal/geom so callers outside this
// module's internal tree never need to import it directly.
type Point = geom.Point
