//go:build ebiten

package app

import (
	"image/color"
	"math"

	"lifeview/internal/core"
	"lifeview/internal/input"
	"lifeview/internal/loop"
	"lifeview/internal/playback"
	"lifeview/internal/render"
	"lifeview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const rateStep = 5

// Game adapts the viewer to the ebiten.Game interface. Update polls input
// and fires due timers; Draw runs animation-frame callbacks and presents
// the offscreen canvas.
type Game struct {
	engine   core.Engine
	state    *playback.State
	controls *playback.Controls
	sched    *playback.Scheduler
	queue    *loop.Queue

	surface *render.EbitenSurface
	frame   *render.Frame
	ctl     *input.Controller
	mapper  input.Mapper
	hud     *ui.HUD
	overlay *ui.Overlay

	zoom     float64
	bounds   input.Rect
	pointer  input.Point
	inside   bool
	viewport render.Viewport
}

// New constructs a Game for the provided engine and paints the first frame.
func New(engine core.Engine, cfg *Config) *Game {
	clock := core.SystemClock{}
	vp := cfg.Viewport(engine.Size())
	size := vp.Bounds()

	g := &Game{
		engine:   engine,
		state:    cfg.NewState(),
		queue:    loop.NewQueue(clock),
		surface:  render.NewEbitenSurface(size.X, size.Y),
		mapper:   input.Mapper{CellSize: vp.CellSize, Grid: vp.Grid},
		zoom:     cfg.Zoom,
		viewport: vp,
	}
	g.bounds = input.Rect{Width: float64(size.X) * g.zoom, Height: float64(size.Y) * g.zoom}

	renderer := render.NewGridRenderer(g.surface, vp, render.DefaultPalette())
	g.frame = render.NewFrame(renderer, engine, g.state.Inverted)
	g.sched = playback.NewScheduler(g.state, g.queue, g.frame, engine, clock)
	g.controls = playback.NewControls(g.state, engine, g.sched, clock)
	g.ctl = input.NewController(g.mapper, engine, g.state, g.frame)
	g.hud = ui.NewHUD(g.screenWidth())
	g.overlay = ui.NewOverlay(vp, g.zoom)

	g.frame.Render()
	g.sched.Start()
	return g
}

// Controls exposes the control entry points.
func (g *Game) Controls() *playback.Controls { return g.controls }

// Update handles input and runs due timers.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handlePointer()
	g.queue.RunTimers()
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.controls.ToggleTicking()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.controls.RequestStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.controls.RequestClear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.controls.RequestRandomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.controls.SetInverted(!g.controls.Inverted())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.controls.SetTargetRate(g.controls.TargetRate() + rateStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.controls.SetTargetRate(g.controls.TargetRate() - rateStep)
	}
}

func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	p := input.Point{X: float64(x), Y: float64(y)}
	inside := g.bounds.Contains(p) && ebiten.IsFocused()
	moved := p != g.pointer

	switch {
	case !inside:
		if g.inside {
			g.ctl.Leave()
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.ctl.Press()
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.controls.RenderEdit(g.ctl.Release(p, g.bounds))
	case moved && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.controls.RenderEdit(g.ctl.Move(p, g.bounds))
	}

	g.inside = inside
	g.pointer = p
}

// Draw runs pending animation-frame callbacks and presents the canvas.
func (g *Game) Draw(screen *ebiten.Image) {
	g.queue.RunFrame()

	screen.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.zoom, g.zoom)
	screen.DrawImage(g.surface.Image(), op)

	if g.inside {
		g.overlay.Draw(screen, g.mapper.MapToCell(g.pointer, g.bounds))
	}
	g.hud.Draw(screen, int(math.Ceil(g.bounds.Height)), ui.Status{
		Ticking:      g.state.Ticking(),
		Inverted:     g.state.Inverted(),
		TargetRate:   g.state.TargetRate(),
		MeasuredRate: g.sched.MeasuredRate(),
		Generation:   g.sched.Generations(),
		Live:         core.CountAlive(g.engine.Cells(), g.engine.Size().Cells()),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth(), int(math.Ceil(g.bounds.Height)) + ui.HUDHeight
}

func (g *Game) screenWidth() int {
	w := int(math.Ceil(g.bounds.Width))
	if w < ui.MinWidth {
		w = ui.MinWidth
	}
	return w
}
