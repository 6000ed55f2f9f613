//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandtilt/internal/app"
	"sandtilt/internal/sand"
	_ "sandtilt/internal/scenes"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	player := cfg.OpenAudio()
	defer player.Close()

	sim := sand.NewWithConfig(cfg.SimConfig())
	game := app.New(sim, cfg, player)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("sandtilt — " + sim.Scene())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
