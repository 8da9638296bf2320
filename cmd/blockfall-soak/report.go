package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/loop"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Games    int
	Width    int
	Height   int
	Seed     uint64
	Mix      string

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	UpdateTime     Stats
	GamesOver      int
	PiecesLocked   int
	LinesCleared   int
	BestScore      int
	BestLevel      int
	Commands       []loop.CommandStats
	Systems        []loop.SystemStats
	Violations     int
	Messages       []string
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// GameResult is what a single soak goroutine produced.
type GameResult struct {
	UpdateTime Stats
	Stats      *loop.SchedulerStats
	Checker    *Checker
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Collect merges per-game results into the report.
func (r *Report) Collect(results []*GameResult) {
	commands := make(map[string]int)
	for _, res := range results {
		r.TotalFrames += res.Stats.Frames
		r.UpdateTime.Samples = append(r.UpdateTime.Samples, res.UpdateTime.Samples...)

		c := res.Checker
		r.GamesOver += c.GamesOver
		r.PiecesLocked += c.PiecesLocked
		r.LinesCleared += c.LinesCleared
		r.BestScore = max(r.BestScore, c.BestScore)
		r.BestLevel = max(r.BestLevel, c.BestLevel)

		count, messages := c.Violations()
		r.Violations += count
		r.Messages = append(r.Messages, messages...)

		for _, cmd := range res.Stats.Commands {
			i, ok := commands[cmd.Command.String()]
			if !ok {
				commands[cmd.Command.String()] = len(r.Commands)
				r.Commands = append(r.Commands, cmd)
				continue
			}
			r.Commands[i].Accepted += cmd.Accepted
			r.Commands[i].Rejected += cmd.Rejected
		}

		if r.Systems == nil {
			r.Systems = append(r.Systems, res.Stats.Systems...)
			continue
		}
		for i, sys := range res.Stats.Systems {
			r.Systems[i] = mergeSystemStats(r.Systems[i], sys)
		}
	}
	r.UpdateTime.Finalize()
}

func mergeSystemStats(a, b loop.SystemStats) loop.SystemStats {
	merged := loop.SystemStats{
		Name:           a.Name,
		ExecutionCount: a.ExecutionCount + b.ExecutionCount,
		MinDuration:    min(a.MinDuration, b.MinDuration),
		MaxDuration:    max(a.MaxDuration, b.MaxDuration),
		TotalDuration:  a.TotalDuration + b.TotalDuration,
		LastDuration:   b.LastDuration,
	}
	if merged.ExecutionCount > 0 {
		merged.AvgDuration = merged.TotalDuration / time.Duration(merged.ExecutionCount)
	}
	return merged
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Concurrent Games:** {{.Games}}
- **Board:** {{.Width}}x{{.Height}}
- **Seed:** {{.Seed}}
- **Command Mix:** {{.Mix}}

## Gameplay
- **Games Over:** {{.GamesOver}}
- **Pieces Locked:** {{.PiecesLocked}}
- **Lines Cleared:** {{.LinesCleared}}
- **Best Score:** {{.BestScore}}
- **Best Level:** {{.BestLevel}}

## Commands
{{range .Commands}}- {{.Command}}: {{.Accepted}} accepted, {{.Rejected}} rejected
{{end}}
## Invariants
- **Violations:** {{.Violations}}
{{range .Messages}}  - {{.}}
{{end}}
## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Soak Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} ({{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} MB)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v int64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
