package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/frontend/desktop"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece generator.")
	width := flag.Int("width", tetris.DefaultWidth, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultHeight, "Board height in cells.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	flag.Parse()

	cfg := tetris.Config{Width: *width, Height: *height, Seed: *seed}
	game, err := tetris.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	scheduler := loop.NewScheduler(game)
	app := desktop.NewApp(scheduler, cfg, *debug)

	log.Printf("Starting blockfall (seed %d)...\n", cfg.Seed)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}

	stats := scheduler.GetStats()
	log.Printf("Played %d frames, final score %d.\n", stats.Frames, game.Score())
}
