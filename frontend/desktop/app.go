// Package desktop is an ebiten frontend for a loop.Scheduler: a keyboard
// driven window with an optional Dear ImGui debug overlay.
package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const windowTitle = "Blockfall"

// View is a system that keeps the latest snapshot for Draw.
type View struct {
	snapshot tetris.Snapshot
}

func (v *View) Execute(frame *loop.Frame) {
	v.snapshot = frame.Snapshot
}

// Snapshot returns the most recent frame's state.
func (v *View) Snapshot() tetris.Snapshot {
	return v.snapshot
}

// App implements ebiten.Game.
type App struct {
	scheduler *loop.Scheduler
	input     *Input
	view      *View
	overlay   *Overlay
	layout    Layout
}

// NewApp wires a scheduler into an ebiten window sized for cfg. With debug
// set the ImGui overlay is created and registered as a system.
func NewApp(scheduler *loop.Scheduler, cfg tetris.Config, debug bool) *App {
	app := &App{
		scheduler: scheduler,
		input:     NewInput(DefaultBindings),
		view:      &View{},
		layout:    DefaultLayout,
	}
	scheduler.Register(app.view)
	// Prime the view so the first Draw has a board to show. This must happen
	// before the overlay joins, as its widgets need an open ImGui frame.
	scheduler.Once(0)

	w, h := app.layout.ScreenSize(cfg.Width, cfg.Height)
	if debug {
		app.overlay = NewOverlay(windowTitle, w+360, h, scheduler.GetStats)
		scheduler.Register(app.overlay)
	} else {
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle(windowTitle)
	}

	return app
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())

	if a.overlay != nil {
		a.overlay.backend.BeginFrame()
	}

	if a.overlay == nil || !a.overlay.WantCaptureKeyboard() {
		a.input.Poll(dt, a.scheduler.Submit)
	}
	a.scheduler.Once(dt)

	if a.overlay != nil {
		a.overlay.backend.EndFrame()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.layout.Draw(screen, a.view.Snapshot())
	if a.overlay != nil {
		a.overlay.backend.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.overlay != nil {
		a.overlay.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
