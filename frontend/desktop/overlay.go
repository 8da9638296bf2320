package desktop

import (
	"fmt"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

const overlayHistoryFrames = 120

// Overlay is a Dear ImGui debug window showing game state and scheduler
// statistics. It runs as a loop system, so its widgets are emitted between
// BeginFrame and EndFrame of the backend.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	stats   func() *loop.SchedulerStats

	frameHistory []float32
	frameIndex   int

	wantCaptureKeyboard bool
}

// NewOverlay creates the ImGui backend and its window. stats is polled once
// per frame.
func NewOverlay(title string, width, height int, stats func() *loop.SchedulerStats) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend:      backend,
		stats:        stats,
		frameHistory: make([]float32, overlayHistoryFrames),
	}
}

// WantCaptureKeyboard reports whether ImGui consumed keyboard input last frame.
func (o *Overlay) WantCaptureKeyboard() bool {
	return o.wantCaptureKeyboard
}

func (o *Overlay) Execute(frame *loop.Frame) {
	o.wantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	o.frameHistory[o.frameIndex] = float32(frame.DeltaTime * 1000.0)
	o.frameIndex = (o.frameIndex + 1) % len(o.frameHistory)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 360), imgui.CondOnce)
	if !imgui.BeginV("Blockfall Debug", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := frame.Snapshot
	imgui.Text(fmt.Sprintf("Phase: %s", s.Phase))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d  Level: %d", s.Score, s.Lines, s.Level))
	imgui.Text(fmt.Sprintf("Drop Interval: %v", s.DropInterval))
	imgui.Text(fmt.Sprintf("Paused: %t  Game Over: %t", s.Paused, s.GameOver))
	if s.Active != nil {
		imgui.Text(fmt.Sprintf("Active: %s at (%d, %d) ghost (%d, %d)",
			s.Active.Shape.Kind(), s.Active.Anchor.X, s.Active.Anchor.Y, s.Active.Ghost.X, s.Active.Ghost.Y))
	}

	var avgFrameTime float32
	for _, ft := range o.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(len(o.frameHistory))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", avgFrameTime))
	imgui.PlotLinesFloatPtr("##frametime", &o.frameHistory[0], int32(len(o.frameHistory)))

	stats := o.stats()
	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Commands") {
		for _, cmd := range stats.Commands {
			imgui.BulletText(fmt.Sprintf("%s: %d accepted, %d rejected", cmd.Command, cmd.Accepted, cmd.Rejected))
		}
		imgui.TreePop()
	}

	imgui.End()
}
