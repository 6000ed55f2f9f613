//go:build !audio

package audio

import "errors"

// Player is a silent placeholder used when the audio build tag is absent.
type Player struct{}

// NewPlayer constructs a silent player.
func NewPlayer(*Config) *Player { return &Player{} }

// Init reports that speaker output requires the audio tag.
func (p *Player) Init() error {
	return errors.New("audio: speaker output requires building with the 'audio' tag")
}

// Play is a no-op in builds without audio.
func (p *Player) Play(Cue) {}

// Close is a no-op in builds without audio.
func (p *Player) Close() {}
