// Package keybind enumerates the physical keys the engine can press and
// the per-player binding configuration that maps game actions onto them.
package keybind

// Key is a physical key the input sink can press. The member set mirrors
// the keys a keyboard-driven client actually exposes; it is not an
// abstraction over game actions.
type Key int

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete

	KeyEnter
	KeySpace
	KeyTilde
	KeyQuote
	KeySemicolon
	KeyComma
	KeyPeriod
	KeySlash
	KeyEsc
	KeyShift
	KeyCtrl
	KeyAlt
	KeyBackspace
)

// String returns a short human-readable name, used in logs and the debug
// stream rather than for round-tripping.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

var keyNames = map[Key]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12",
	KeyUp: "Up", KeyDown: "Down", KeyLeft: "Left", KeyRight: "Right",
	KeyHome: "Home", KeyEnd: "End", KeyPageUp: "PageUp", KeyPageDown: "PageDown",
	KeyInsert: "Insert", KeyDelete: "Delete",
	KeyEnter: "Enter", KeySpace: "Space", KeyTilde: "Tilde", KeyQuote: "Quote",
	KeySemicolon: "Semicolon", KeyComma: "Comma", KeyPeriod: "Period", KeySlash: "Slash",
	KeyEsc: "Esc", KeyShift: "Shift", KeyCtrl: "Ctrl", KeyAlt: "Alt",
	KeyBackspace: "Backspace",
}

// asciiToKey maps the printable characters the chatting state can type.
// Characters outside this table have no key equivalent and abort typing.
var asciiToKey = map[byte]Key{
	' ': KeySpace, '`': KeyTilde, '\'': KeyQuote, ';': KeySemicolon,
	',': KeyComma, '.': KeyPeriod, '/': KeySlash,
	'0': Key0, '1': Key1, '2': Key2, '3': Key3, '4': Key4,
	'5': Key5, '6': Key6, '7': Key7, '8': Key8, '9': Key9,
}

func init() {
	for i := byte('a'); i <= 'z'; i++ {
		asciiToKey[i] = Key(int(KeyA) + int(i-'a'))
	}
	for i := byte('A'); i <= 'Z'; i++ {
		asciiToKey[i] = Key(int(KeyA) + int(i-'A'))
	}
}

// FromASCII maps a single character typed into chat to the key that
// produces it. The second return is false for characters with no
// keyboard equivalent in this binding table.
func FromASCII(c byte) (Key, bool) {
	k, ok := asciiToKey[c]
	return k, ok
}

// LinkBinding names the key used to open a chat link/world-channel link
// dialog, distinct from the ordinary character keys.
type LinkBinding int

const (
	LinkNone LinkBinding = iota
	LinkWorld
	LinkBuddy
	LinkGuild
)

// MobbingKey identifies which key an AutoMob action should press to
// attack, separate from movement keys.
type MobbingKey struct {
	Key      Key
	HasKey   bool
	LinkSkill bool
}

// Config is the per-player key binding and feature-flag configuration
// consumed by the procedure and movement states. The grappling, teleport,
// up-jump and booster keys each have a HasX flag, and states check it
// before relying on the key. JumpKey, CashShopKey, ChangeChannelKey and
// ToTownKey have no such flag: the states that press them send the value
// as set, KeyUnknown included (InferUpJumpKind alone compares JumpKey
// against KeyUnknown).
type Config struct {
	JumpKey           Key
	CashShopKey       Key
	ChangeChannelKey  Key
	ToTownKey         Key
	GrapplingKey      Key
	TeleportKey       Key
	UpJumpKey         Key
	VIPBoosterKey     Key
	HexaBoosterKey    Key

	HasGrapplingKey  bool
	HasTeleportKey   bool
	HasUpJumpKey     bool
	HasVIPBoosterKey bool
	HasHexaBoosterKey bool

	// DisableAdjusting skips the short positional-correction state when
	// the client's own movement is already pixel-accurate.
	DisableAdjusting bool
	// EnableRune is loaded from the config file; no state reads it, and
	// SolveRune actions are not acted on.
	EnableRune bool
	// EnablePanicMode is loaded from the config file; no state reads it.
	// Panicking starts only from an explicit Panic action.
	EnablePanicMode bool
	// EnablePlatformPass is loaded from the config file; no state reads
	// it.
	EnablePlatformPass bool
}
