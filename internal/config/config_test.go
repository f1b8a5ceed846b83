package config

import (
	"os"
	"path/filepath"
	"testing"

	"fieldbot/internal/keybind"
)

func TestLoadDecodesBindingsAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "player.yaml")
	contents := `
grappling_key:
  key: v
  bound: true
up_jump_key:
  key: space
  bound: true
enable_panic_mode: true
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.HasGrapplingKey || cfg.GrapplingKey != keybind.KeyV {
		t.Fatalf("expected grappling key V bound, got %+v", cfg)
	}
	if !cfg.HasUpJumpKey || cfg.UpJumpKey != keybind.KeySpace {
		t.Fatalf("expected up jump key Space bound, got %+v", cfg)
	}
	if !cfg.EnablePanicMode {
		t.Fatalf("expected EnablePanicMode to decode true")
	}
	if cfg.HasTeleportKey {
		t.Fatalf("expected unset bindings to remain unbound")
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
