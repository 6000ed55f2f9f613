package app

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"sandtilt/internal/audio"

	"sandtilt/internal/core"
	"sandtilt/internal/sand"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Scene    string
	Size     int
	CellSize int
	Tick     time.Duration
	Angle    int
	Seed     int64
	Mute     bool
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	d := sand.DefaultConfig()
	return &Config{
		Scene:    d.Scene,
		Size:     d.Size,
		CellSize: 8,
		Tick:     core.DefaultTickInterval,
		Angle:    d.Angle,
		Seed:     d.Seed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "initial scene to load")
	fs.IntVar(&c.Size, "size", c.Size, "grid side length in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "simulation tick interval")
	fs.IntVar(&c.Angle, "angle", c.Angle, "initial gravity angle in degrees [-360, 360]")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized scenes")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable audio cues")
}

// SimConfig converts the flags into a simulation configuration.
func (c *Config) SimConfig() sand.Config {
	return sand.Config{
		Size:  c.Size,
		Angle: sand.ClampAngle(c.Angle),
		Scene: c.Scene,
		Seed:  c.Seed,
	}
}

// Validate reports flag values no frontend can run with.
func (c *Config) Validate() error {
	if _, ok := core.Scene(c.Scene); !ok {
		return fmt.Errorf("unknown scene %q (available: %s)", c.Scene, strings.Join(core.SceneNames(), ", "))
	}
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", c.Tick)
	}
	return nil
}

// OpenAudio returns a player for the environment's audio settings. Failure
// to open the speaker is logged and the returned player stays silent.
func (c *Config) OpenAudio() *audio.Player {
	player := audio.NewPlayer(audio.LoadConfig())
	if c.Mute {
		return player
	}
	if err := player.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	return player
}
