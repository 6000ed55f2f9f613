package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Config controls the audio cues.
type Config struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[Cue]float64
}

// DefaultConfig returns audio enabled at a moderate volume.
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[Cue]float64{
			CueAdd:    0.8,
			CueRemove: 0.8,
			CueNoop:   0.5,
		},
	}
}

// LoadConfig loads audio configuration from environment variables.
func LoadConfig() *Config {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) *Config {
	cfg := DefaultConfig()

	if enabled := getenv("SANDTILT_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 on the wire, 0.0-1.0 internally
	if volume := getenv("SANDTILT_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	if effectVols := getenv("SANDTILT_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if cue, ok := cueByName[name]; ok {
					cfg.EffectVolumes[cue] = clamp01(v)
				}
			}
		}
	}

	if sampleRate := getenv("SANDTILT_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
