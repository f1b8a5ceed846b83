// Package config loads the per-player key-binding and feature-flag
// configuration from a YAML file on disk.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"fieldbot/internal/keybind"
)

// keyName maps the YAML binding names onto keybind.Key values. Only the
// keys the bindings in keybind.Config actually use need an entry.
var keyName = map[string]keybind.Key{
	"up": keybind.KeyUp, "down": keybind.KeyDown, "left": keybind.KeyLeft, "right": keybind.KeyRight,
	"space": keybind.KeySpace, "esc": keybind.KeyEsc, "enter": keybind.KeyEnter,
	"a": keybind.KeyA, "c": keybind.KeyC, "v": keybind.KeyV, "e": keybind.KeyE,
}

// Binding is a single YAML key-binding entry: a name ("up", "c", "space")
// and whether the player's client actually has it bound at all. Many
// fields in keybind.Config are optional (HasX flags), and the config
// file mirrors that by allowing the name to be empty.
type Binding struct {
	Name string `yaml:"key"`
	Has  bool   `yaml:"bound"`
}

// File is the on-disk shape of a player configuration file.
type File struct {
	JumpKey          Binding `yaml:"jump_key"`
	CashShopKey      Binding `yaml:"cash_shop_key"`
	ChangeChannelKey Binding `yaml:"change_channel_key"`
	ToTownKey        Binding `yaml:"to_town_key"`
	GrapplingKey     Binding `yaml:"grappling_key"`
	TeleportKey      Binding `yaml:"teleport_key"`
	UpJumpKey        Binding `yaml:"up_jump_key"`
	VIPBoosterKey    Binding `yaml:"vip_booster_key"`
	HexaBoosterKey   Binding `yaml:"hexa_booster_key"`

	DisableAdjusting   bool `yaml:"disable_adjusting"`
	EnableRune         bool `yaml:"enable_rune"`
	EnablePanicMode    bool `yaml:"enable_panic_mode"`
	EnablePlatformPass bool `yaml:"enable_platform_pass"`
}

// Load reads and decodes a player configuration file at path into a
// keybind.Config. Unknown key names decode to keybind.KeyUnknown with
// Has left false, rather than failing the load, since an operator's
// typo in an optional binding shouldn't take down the whole engine.
func Load(path string) (keybind.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return keybind.Config{}, fmt.Errorf("reading player config %q: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return keybind.Config{}, fmt.Errorf("parsing player config %q: %w", path, err)
	}

	cfg := keybind.Config{
		JumpKey:          resolve(file.JumpKey.Name),
		CashShopKey:      resolve(file.CashShopKey.Name),
		ChangeChannelKey: resolve(file.ChangeChannelKey.Name),
		ToTownKey:        resolve(file.ToTownKey.Name),
		GrapplingKey:     resolve(file.GrapplingKey.Name),
		TeleportKey:      resolve(file.TeleportKey.Name),
		UpJumpKey:        resolve(file.UpJumpKey.Name),
		VIPBoosterKey:    resolve(file.VIPBoosterKey.Name),
		HexaBoosterKey:   resolve(file.HexaBoosterKey.Name),

		HasGrapplingKey:   file.GrapplingKey.Has && resolve(file.GrapplingKey.Name) != keybind.KeyUnknown,
		HasTeleportKey:    file.TeleportKey.Has && resolve(file.TeleportKey.Name) != keybind.KeyUnknown,
		HasUpJumpKey:      file.UpJumpKey.Has && resolve(file.UpJumpKey.Name) != keybind.KeyUnknown,
		HasVIPBoosterKey:  file.VIPBoosterKey.Has && resolve(file.VIPBoosterKey.Name) != keybind.KeyUnknown,
		HasHexaBoosterKey: file.HexaBoosterKey.Has && resolve(file.HexaBoosterKey.Name) != keybind.KeyUnknown,

		DisableAdjusting:   file.DisableAdjusting,
		EnableRune:         file.EnableRune,
		EnablePanicMode:    file.EnablePanicMode,
		EnablePlatformPass: file.EnablePlatformPass,
	}

	return cfg, nil
}

func resolve(name string) keybind.Key {
	if key, ok := keyName[name]; ok {
		return key
	}
	if key, ok := keybind.FromASCII(name0(name)); ok && len(name) == 1 {
		return key
	}
	return keybind.KeyUnknown
}

func name0(s string) byte {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}
