package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Each simulated frame advances the drop timer by one 60 Hz step.
const frameTime = 1.0 / 60.0

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	games := flag.Int("games", runtime.GOMAXPROCS(0), "The number of games to play concurrently.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for pieces and commands; game i uses seed+i.")
	width := flag.Int("width", tetris.DefaultWidth, "Board width.")
	height := flag.Int("height", tetris.DefaultHeight, "Board height.")
	mixFlag := flag.String("mix", defaultMix, "Relative command weights as Command=weight pairs.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	mix, err := ParseMix(*mixFlag)
	if err != nil {
		log.Fatalf("Invalid -mix: %v", err)
	}
	cfg := tetris.Config{Width: *width, Height: *height, Seed: *seed}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid board: %v", err)
	}

	log.Printf("Starting soak with %d games on a %dx%d board (seed %d)...\n", *games, cfg.Width, cfg.Height, cfg.Seed)

	report := &Report{
		Duration:       *duration,
		Games:          *games,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Seed:           cfg.Seed,
		Mix:            mix.String(),
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	results := make([]*GameResult, *games)
	var wg sync.WaitGroup
	for i := range *games {
		gameCfg := cfg
		gameCfg.Seed = cfg.Seed + uint64(i)
		wg.Go(func() {
			results[i] = play(ctx, gameCfg, mix)
		})
	}
	wg.Wait()

	report.TotalTime = time.Since(startTime)
	report.Collect(results)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Violations > 0 {
		os.Exit(1)
	}
}

// play drives one game with random commands until ctx expires. A finished
// game is reset and resumed so the run keeps producing frames.
func play(ctx context.Context, cfg tetris.Config, mix *Mix) *GameResult {
	game, err := tetris.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	checker := &Checker{}
	var last tetris.Snapshot
	scheduler := loop.NewScheduler(game)
	scheduler.Register(checker)
	scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
		last = frame.Snapshot
	}))

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x5eed))
	result := &GameResult{UpdateTime: Stats{Samples: make([]time.Duration, 0, 1024)}}

	scheduler.Submit(tetris.TogglePause)
	for ctx.Err() == nil {
		switch {
		case last.GameOver:
			scheduler.Submit(tetris.Reset)
			scheduler.Submit(tetris.TogglePause)
		case last.Paused && last.Active != nil:
			scheduler.Submit(tetris.TogglePause)
		default:
			scheduler.Submit(mix.Pick(rng))
		}

		updateStart := time.Now()
		scheduler.Once(frameTime)
		result.UpdateTime.Samples = append(result.UpdateTime.Samples, time.Since(updateStart))
	}

	result.Stats = scheduler.GetStats()
	result.Checker = checker
	return result
}
