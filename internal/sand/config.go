package sand

import "strconv"

// Config controls the sand simulation.
type Config struct {
	Size  int
	Angle int
	Scene string
	Seed  int64
}

// DefaultConfig returns the reference 32×32 grid with straight-down gravity.
func DefaultConfig() Config {
	return Config{Size: 32, Angle: 0, Scene: "hourglass", Seed: 42}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["angle"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Angle = ClampAngle(parsed)
		}
	}
	if v, ok := cfg["scene"]; ok && v != "" {
		c.Scene = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

func (c Config) sceneOptions() map[string]string {
	return map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
}
