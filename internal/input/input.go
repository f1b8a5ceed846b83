// Package input defines the key-press contract the state machine drives
// and a recording sink used by tests and by hosts that haven't wired a
// real OS-level key injector yet. Actually pressing a key on the target
// process is outside this module's scope; Sink only describes the
// calls the core makes and when.
package input

import (
	"sync"
	"time"

	"fieldbot/internal/keybind"
)

// KeyDownOptions refines a SendKeyDownWithOptions call: how long the key
// stays down before the paired key-up, and whether it must be combined
// with another key already held (e.g. shift-click equivalents).
type KeyDownOptions struct {
	// Down is how long to hold the key before releasing it. Zero means
	// the caller will release it manually with SendKeyUp.
	Down time.Duration
	// With is an additional key to hold simultaneously for the duration
	// of this press. KeyUnknown means no modifier.
	With keybind.Key
}

// Sink is the key-press contract consumed by every state. Implementations
// must not block the caller for longer than it takes to enqueue the
// press; the tick loop assumes SendKey* calls return promptly.
type Sink interface {
	SendKey(key keybind.Key)
	SendKeyDown(key keybind.Key)
	SendKeyUp(key keybind.Key)
	SendKeyDownWithOptions(key keybind.Key, opts KeyDownOptions)
}

// Press records one call made to a Sink, in call order.
type Press struct {
	Key     keybind.Key
	Kind    PressKind
	Options KeyDownOptions
	At      time.Time
}

// PressKind distinguishes the four Sink calls for assertions in tests.
type PressKind int

const (
	PressTap PressKind = iota
	PressDown
	PressUp
	PressDownWithOptions
)

// Recording is a Sink that appends every call to an in-memory log instead
// of touching a real client. It is the default Sink for tests and for
// demo hosts that only want to observe what the state machine would do.
type Recording struct {
	mu    sync.Mutex
	now   func() time.Time
	presses []Press
}

// NewRecording builds an empty Recording sink using time.Now as its clock.
func NewRecording() *Recording {
	return &Recording{now: time.Now}
}

func (r *Recording) record(p Press) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.At = r.now()
	r.presses = append(r.presses, p)
}

func (r *Recording) SendKey(key keybind.Key) {
	r.record(Press{Key: key, Kind: PressTap})
}

func (r *Recording) SendKeyDown(key keybind.Key) {
	r.record(Press{Key: key, Kind: PressDown})
}

func (r *Recording) SendKeyUp(key keybind.Key) {
	r.record(Press{Key: key, Kind: PressUp})
}

func (r *Recording) SendKeyDownWithOptions(key keybind.Key, opts KeyDownOptions) {
	r.record(Press{Key: key, Kind: PressDownWithOptions, Options: opts})
}

// Presses returns a snapshot of every call recorded so far, in order.
func (r *Recording) Presses() []Press {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Press, len(r.presses))
	copy(out, r.presses)
	return out
}

// Last returns the most recently recorded press and true, or the zero
// Press and false if nothing has been recorded yet.
func (r *Recording) Last() (Press, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.presses) == 0 {
		return Press{}, false
	}
	return r.presses[len(r.presses)-1], true
}

// Reset discards every recorded press.
func (r *Recording) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presses = nil
}
