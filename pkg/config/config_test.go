package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spellkit.toml")

	want := DefaultConfig()
	if err := SaveConfig(want, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *got != *want {
		t.Errorf("round-tripped config = %+v, want %+v", got, want)
	}
}

func TestInitConfigCreatesDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "spellkit.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Dict.MaxSuggestions != DefaultConfig().Dict.MaxSuggestions {
		t.Errorf("InitConfig did not seed defaults: %+v", cfg)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected file to exist after InitConfig: %v", err)
	}
	if *reloaded != *cfg {
		t.Errorf("reloaded config = %+v, want %+v", reloaded, cfg)
	}
}
