package app

import (
	"flag"
	"testing"
	"time"

	"sandtilt/internal/audio"
	"sandtilt/internal/sand"
	_ "sandtilt/internal/scenes"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-scene", "dunes", "-size", "48", "-tick", "50ms", "-angle", "999", "-seed", "7", "-mute"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Scene != "dunes" || cfg.Size != 48 || cfg.Tick != 50*time.Millisecond || cfg.Seed != 7 || !cfg.Mute {
		t.Fatalf("unexpected config %+v", cfg)
	}

	sc := cfg.SimConfig()
	if sc.Angle != sand.MaxAngle {
		t.Fatalf("angle should clamp to %d, got %d", sand.MaxAngle, sc.Angle)
	}
	if sc.Size != 48 || sc.Scene != "dunes" || sc.Seed != 7 {
		t.Fatalf("unexpected sim config %+v", sc)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Size != 32 || cfg.Tick != 30*time.Millisecond || cfg.Scene != "hourglass" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	bad := []func(*Config){
		func(c *Config) { c.Scene = "no-such-scene" },
		func(c *Config) { c.Size = 0 },
		func(c *Config) { c.CellSize = -1 },
		func(c *Config) { c.Tick = 0 },
	}
	for i, mutate := range bad {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected a validation error for %+v", i, cfg)
		}
	}
}

func TestOpenAudioMuted(t *testing.T) {
	cfg := NewConfig()
	cfg.Mute = true
	player := cfg.OpenAudio()
	if player == nil {
		t.Fatal("muted config should still return a player")
	}
	player.Play(audio.CueAdd)
	player.Close()
}
