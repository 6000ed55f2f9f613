package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"sandtilt/internal/app"
	"sandtilt/internal/sand"
	_ "sandtilt/internal/scenes"
	"sandtilt/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	player := cfg.OpenAudio()
	sim := sand.NewWithConfig(cfg.SimConfig())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = tui.New(screen, sim, player, cfg.Tick).Run(ctx)
	stop()
	screen.Fini()
	player.Close()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
