package term

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"lifeview/internal/core"
	"lifeview/internal/input"
	"lifeview/internal/loop"
	"lifeview/internal/playback"
	"lifeview/internal/render"
	"lifeview/internal/ui"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

// frameInterval paces animation frames, the terminal's stand-in for vsync.
const frameInterval = time.Second / 60

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI is the terminal host. All callbacks, including timers and
// animation frames, run on the gocui main loop.
type ConsoleUI struct {
	g *gocui.Gui
	k []keyBindings

	engine   core.Engine
	state    *playback.State
	controls *playback.Controls
	sched    *playback.Scheduler
	queue    *loop.Queue
	ctl      *input.Controller
	text     render.TextRenderer
	done     chan struct{}
}

// NewConsoleUI creates the gocui host for engine.
func NewConsoleUI(engine core.Engine, state *playback.State) (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("create terminal ui: %w", err)
	}
	g.Mouse = true

	clock := core.SystemClock{}
	t := &ConsoleUI{
		g:      g,
		engine: engine,
		state:  state,
		queue:  loop.NewQueue(clock),
		text: render.TextRenderer{
			Live: aurora.Green("█").BgBrightGreen().String(),
			Dead: "░",
		},
		done: make(chan struct{}),
	}
	t.sched = playback.NewScheduler(state, t.queue, t, engine, clock)
	t.controls = playback.NewControls(state, engine, t.sched, clock)
	// One terminal character per cell, no separators.
	t.ctl = input.NewController(input.Mapper{CellSize: 0, Grid: engine.Size()}, engine, state, t)

	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Run/Stop", t.cmdRunStop, ""},
		{'n', "N", "Next step", t.cmdNextRound, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Settle with random", t.cmdSettleWithRandom, ""},
		{'d', "D", "Dark mode", t.cmdInvert, ""},
		{'+', "+", "Faster", t.cmdFaster, ""},
		{'-', "-", "Slower", t.cmdSlower, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle the cell", t.cmdMouseClick, "field"},
	}
	g.SetManagerFunc(t.layout)
	if err := t.initKeyBindings(t.k); err != nil {
		g.Close()
		return nil, err
	}
	return t, nil
}

// Controls exposes the control entry points.
func (t *ConsoleUI) Controls() *playback.Controls { return t.controls }

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return nil
}

// Start runs the main loop until the user quits.
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	t.sched.Start()
	go t.pump()
	defer close(t.done)
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// pump posts a timer and animation-frame turn onto the main loop every
// frame interval. It never touches view state itself.
func (t *ConsoleUI) pump() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			t.g.Update(func(*gocui.Gui) error {
				t.queue.RunTimers()
				t.queue.RunFrame()
				t.renderStatus()
				return nil
			})
		}
	}
}

// Render paints the universe into the field view. It must run on the main
// loop.
func (t *ConsoleUI) Render() {
	v, err := t.g.View("field")
	if err != nil {
		return
	}
	v.Clear()

	maxW, maxH := v.Size()
	var b bytes.Buffer
	crop, err := t.text.Write(&b, t.engine.Size(), t.engine.Cells(), t.state.Inverted(), maxW, maxH)
	if err != nil {
		log.Println(err)
		return
	}
	if crop {
		b.WriteString("\n" + aurora.Red("The field size is larger than the viewing area").BgBlack().String())
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderStatus() {
	v, err := t.g.View("status")
	if err != nil {
		return
	}
	v.Clear()
	s := t.status()
	mode := aurora.Colorize(s.Mode(), aurora.BlueFg).String()
	if s.Ticking {
		mode = aurora.Colorize(s.Mode(), aurora.CyanFg).String()
	}
	_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
	_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.Live))
	_, _ = fmt.Fprintln(v, t.renderProp("Target rate", "%.1f/s", s.TargetRate))
	_, _ = fmt.Fprintln(v, t.renderProp("Actual rate", "%.1f/s", s.MeasuredRate))
	_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
	_, _ = fmt.Fprintln(v, t.renderProp("Dark mode", "%v", s.Inverted))
}

func (t *ConsoleUI) renderConfiguration() {
	v, err := t.g.View("configuration")
	if err != nil {
		return
	}
	v.Clear()
	size := t.engine.Size()
	_, _ = fmt.Fprintln(v, t.renderProp("Engine", "%v", t.engine.Name()))
	_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", size.W, size.H))
}

func (t *ConsoleUI) status() ui.Status {
	return ui.Status{
		Ticking:      t.state.Ticking(),
		Inverted:     t.state.Inverted(),
		TargetRate:   t.state.TargetRate(),
		MeasuredRate: t.sched.MeasuredRate(),
		Generation:   t.sched.Generations(),
		Live:         core.CountAlive(t.engine.Cells(), t.engine.Size().Cells()),
	}
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil && err != gocui.ErrUnknownView {
			return err
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		return nil
	}
	if _, err := t.headerLayout(g, 3, "lifeview"); err != nil && err != gocui.ErrUnknownView {
		return err
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Universe"
		v.Frame = true
		t.Render()
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdRunStop(_ *gocui.View) error {
	t.controls.ToggleTicking()
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.controls.RequestStep()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.controls.RequestClear()
	return nil
}

func (t *ConsoleUI) cmdSettleWithRandom(_ *gocui.View) error {
	t.controls.RequestRandomize()
	return nil
}

func (t *ConsoleUI) cmdInvert(_ *gocui.View) error {
	t.controls.SetInverted(!t.controls.Inverted())
	return nil
}

func (t *ConsoleUI) cmdFaster(_ *gocui.View) error {
	t.controls.SetTargetRate(t.controls.TargetRate() + 5)
	return nil
}

func (t *ConsoleUI) cmdSlower(_ *gocui.View) error {
	t.controls.SetTargetRate(t.controls.TargetRate() - 5)
	return nil
}

// cmdMouseClick toggles the cell under the cursor. gocui only reports
// presses, so every event is a click; paused edits are painted at once.
func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	maxW, maxH := v.Size()
	size := t.engine.Size()
	p, ok := fieldPoint(cx+ox, cy+oy, size, maxW, maxH)
	if !ok {
		return nil
	}
	bounds := input.Rect{Width: float64(size.W + 1), Height: float64(size.H + 1)}
	t.controls.RenderEdit(t.ctl.Click(p, bounds))
	return nil
}

// fieldPoint converts a character position in the field view to a pointer
// position. Positions outside the drawn part of the grid, such as the crop
// warning line, are rejected.
func fieldPoint(x, y int, grid core.Size, viewW, viewH int) (input.Point, bool) {
	cols, rows := grid.W, grid.H
	if viewW > 0 && viewW < cols {
		cols = viewW
	}
	if viewH > 0 && viewH < rows {
		rows = viewH
	}
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return input.Point{}, false
	}
	return input.Point{X: float64(x), Y: float64(y)}, true
}
