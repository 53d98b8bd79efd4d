package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte(`
playground:
  previews: 3
generator:
  type: history
  window: 6
  retries: 8
gravity:
  drop_every_ticks: 20
  lock_delay_ticks: 15
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Playground.Previews != 3 {
		t.Errorf("previews = %d, expected 3", cfg.Playground.Previews)
	}
	if cfg.Generator.Type != GeneratorHistory {
		t.Errorf("generator type = %q, expected history", cfg.Generator.Type)
	}
	if cfg.Generator.Window != 6 || cfg.Generator.Retries != 8 {
		t.Errorf("unexpected generator tuning: %+v", cfg.Generator)
	}
	if cfg.Gravity.DropEveryTicks != 20 || cfg.Gravity.LockDelayTicks != 15 {
		t.Errorf("unexpected gravity: %+v", cfg.Gravity)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestNormalizeFillsGaps(t *testing.T) {
	var cfg GameConfig
	cfg.Generator.Type = "roulette"
	cfg.Generator.Retries = -1
	cfg.Normalize()

	def := DefaultConfig()
	if cfg.Playground.Previews != def.Playground.Previews {
		t.Errorf("previews = %d, expected default %d", cfg.Playground.Previews, def.Playground.Previews)
	}
	if cfg.Generator.Type != GeneratorBag {
		t.Errorf("generator type = %q, expected fallback to bag", cfg.Generator.Type)
	}
	if cfg.Generator.Retries != 0 {
		t.Errorf("retries = %d, expected clamp to 0", cfg.Generator.Retries)
	}
	if cfg.Gravity.DropEveryTicks != def.Gravity.DropEveryTicks {
		t.Errorf("drop ticks = %d, expected default %d", cfg.Gravity.DropEveryTicks, def.Gravity.DropEveryTicks)
	}
}

func TestGeneratorTypeValid(t *testing.T) {
	if !GeneratorBag.Valid() || !GeneratorHistory.Valid() {
		t.Error("built-in generator types should be valid")
	}
	if GeneratorType("roulette").Valid() {
		t.Error("unknown generator type should be invalid")
	}
}
