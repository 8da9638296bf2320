package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/frontend/terminal"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece generator.")
	width := flag.Int("width", tetris.DefaultWidth, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultHeight, "Board height in cells.")
	mute := flag.Bool("mute", false, "Disable audio cues.")
	logFile := flag.String("log", "", "Write log output to this file while the screen is active.")
	flag.Parse()

	cfg := tetris.Config{Width: *width, Height: *height, Seed: *seed}
	game, err := tetris.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	// The screen owns the terminal from here on; stderr output would corrupt it.
	restoreLog := redirectLog(*logFile)

	scheduler := loop.NewScheduler(game)
	scheduler.Register(terminal.NewRenderer(screen))

	if !*mute {
		audio := terminal.NewAudio()
		if err := audio.Init(); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			scheduler.Register(audio)
			defer audio.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if terminal.IsQuit(ev) {
					cancel()
					return
				}
				if cmd, ok := terminal.CommandFor(ev); ok {
					scheduler.Submit(cmd)
				}
			case *tcell.EventResize:
				screen.Sync()
				scheduler.Refresh()
			}
		}
	}()

	log.Printf("Starting blockfall-tui (seed %d)", cfg.Seed)
	scheduler.Refresh()
	scheduler.Run(ctx)

	screen.Fini()
	restoreLog()

	stats := scheduler.GetStats()
	log.Printf("Played %d frames, final score %d.\n", stats.Frames, game.Score())
}

// redirectLog points the standard logger at path, or discards output when
// path is empty. The returned func restores stderr.
func redirectLog(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}
