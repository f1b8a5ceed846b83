// Package detect defines the screen-reading contract the state machine
// consults: where the minimap says the player is, and whether any of the
// handful of UI overlays (cash shop, chat, channel-change menu, a popup
// confirm button, the admin/GM overlay, the esc-settings panel) are
// currently on screen. How these are actually detected (template
// matching, OCR, a vision model) is outside this module; only the
// contract and a scripted fake for tests live here.
package detect

import "fieldbot/internal/geom"

// Minimap is the player-position reading for the current tick. While the
// minimap is opening/closing or otherwise unreadable, Detecting is
// returned and every positional state must treat the tick as "no new
// information", not as "player vanished".
type Minimap interface {
	isMinimap()
}

// MinimapDetecting indicates the minimap could not be read this tick.
type MinimapDetecting struct{}

func (MinimapDetecting) isMinimap() {}

// MinimapIdle is a successful minimap read.
type MinimapIdle struct {
	Bbox        geom.Rect
	OtherPlayers []geom.Point
	Portals     []geom.Rect
}

func (MinimapIdle) isMinimap() {}

// Detector is the screen-reading contract consumed by the procedure
// states. Every method is a point-in-time check; none may block for
// longer than a tick budget allows.
type Detector interface {
	DetectMinimap() Minimap
	DetectPlayerInCashShop() bool
	DetectChatMenuOpened() bool
	DetectChangeChannelMenuOpened() bool
	DetectPopupConfirmButton() bool
	DetectAdminVisible() bool
	DetectEscSettings() bool
}

// Scripted is a Detector whose answers are pre-programmed per call,
// intended for deterministic tests. Each field is consulted in order and
// the last entry is repeated once exhausted, mirroring how a fixed
// scenario script plays out over many ticks.
type Scripted struct {
	Minimaps                   []Minimap
	PlayerInCashShop           []bool
	ChatMenuOpened             []bool
	ChangeChannelMenuOpened    []bool
	PopupConfirmButton         []bool
	AdminVisible               []bool
	EscSettings                []bool

	minimapIdx, cashShopIdx, chatIdx, channelIdx, popupIdx, adminIdx, escIdx int
}

func (s *Scripted) DetectMinimap() Minimap {
	return nextOr[Minimap](&s.minimapIdx, s.Minimaps, MinimapDetecting{})
}

func (s *Scripted) DetectPlayerInCashShop() bool {
	return nextOr(&s.cashShopIdx, s.PlayerInCashShop, false)
}

func (s *Scripted) DetectChatMenuOpened() bool {
	return nextOr(&s.chatIdx, s.ChatMenuOpened, false)
}

func (s *Scripted) DetectChangeChannelMenuOpened() bool {
	return nextOr(&s.channelIdx, s.ChangeChannelMenuOpened, false)
}

func (s *Scripted) DetectPopupConfirmButton() bool {
	return nextOr(&s.popupIdx, s.PopupConfirmButton, false)
}

func (s *Scripted) DetectAdminVisible() bool {
	return nextOr(&s.adminIdx, s.AdminVisible, false)
}

func (s *Scripted) DetectEscSettings() bool {
	return nextOr(&s.escIdx, s.EscSettings, false)
}

func nextOr[T any](idx *int, script []T, fallback T) T {
	if len(script) == 0 {
		return fallback
	}
	i := *idx
	if i >= len(script) {
		i = len(script) - 1
	} else {
		*idx++
	}
	return script[i]
}
