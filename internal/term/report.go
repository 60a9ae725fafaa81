package term

import (
	"fmt"
	"io"
	"sort"
	"time"

	"lifeview/internal/core"
	"lifeview/internal/loop"
	"lifeview/internal/playback"
	"lifeview/internal/render"

	"github.com/logrusorgru/aurora"
)

// ReportOptions configure a headless run.
type ReportOptions struct {
	Generations int
	// Every prints progress each Every generations; zero disables it.
	Every    int
	Viewport render.Viewport
	Palette  render.Palette
	// Field prints the final universe as text.
	Field    bool
}

// Report runs the playback loop headless on a manual clock, fast-forwarding
// each timer wait, and prints progress to out.
type Report struct {
	out     io.Writer
	engine  core.Engine
	state   *playback.State
	opts    ReportOptions
	clock   *core.ManualClock
	queue   *loop.Queue
	sched   *playback.Scheduler
	frame   *render.Frame
	surface *render.ImageSurface
}

// NewReport prepares a headless run. The state is forced to ticking.
func NewReport(out io.Writer, engine core.Engine, state *playback.State, opts ReportOptions) *Report {
	clock := core.NewManualClock(time.Unix(0, 0))
	size := opts.Viewport.Bounds()
	r := &Report{
		out:     out,
		engine:  engine,
		state:   state,
		opts:    opts,
		clock:   clock,
		queue:   loop.NewQueue(clock),
		surface: render.NewImageSurface(size.X, size.Y),
	}
	r.frame = render.NewFrame(render.NewGridRenderer(r.surface, opts.Viewport, opts.Palette), engine, state.Inverted)
	r.sched = playback.NewScheduler(state, r.queue, r.frame, engine, clock)
	return r
}

// Surface returns the image holding the last rendered frame.
func (r *Report) Surface() *render.ImageSurface { return r.surface }

// Run advances the configured number of generations and renders the final
// state. It returns the simulated playback time.
func (r *Report) Run() (time.Duration, error) {
	start := r.clock.Now()
	r.printConfiguration()
	fmt.Fprintf(r.out, "\n%s\n", aurora.Cyan("Simulation started..."))

	r.state.SetTicking(true)
	r.sched.Start()
	for int(r.sched.Generations()) < r.opts.Generations {
		r.queue.RunFrame()
		due, ok := r.queue.NextDue()
		if !ok {
			break
		}
		r.clock.Advance(due.Sub(r.clock.Now()))
		r.queue.RunTimers()
		gen := r.sched.Generations()
		if r.opts.Every > 0 && gen > 0 && gen%uint64(r.opts.Every) == 0 {
			fmt.Fprintf(r.out, "  Generations done: %v\n", gen)
		}
	}
	r.state.SetTicking(false)
	r.sched.Render()

	elapsed := r.clock.Now().Sub(start)
	size := r.engine.Size()
	fmt.Fprintln(r.out, "\nFinished:")
	r.printHashData(map[string]interface{}{
		"Last generation": r.sched.Generations(),
		"Playback time":   elapsed.Round(time.Millisecond),
		"Live cells":      core.CountAlive(r.engine.Cells(), size.Cells()),
		"Frames rendered": r.frame.Frames(),
	})
	if r.opts.Field {
		fmt.Fprintln(r.out)
		if _, err := render.DefaultTextRenderer().Write(r.out, size, r.engine.Cells(), r.state.Inverted(), 0, 0); err != nil {
			return elapsed, fmt.Errorf("write field: %w", err)
		}
		fmt.Fprintln(r.out)
	}
	return elapsed, nil
}

func (r *Report) printConfiguration() {
	size := r.engine.Size()
	fmt.Fprintln(r.out, aurora.Green("Running configuration:"))
	r.printHashData(map[string]interface{}{
		"Engine":      r.engine.Name(),
		"Dimension":   fmt.Sprintf("%v x %v", size.W, size.H),
		"Target rate": fmt.Sprintf("%.1f/s", r.state.TargetRate()),
		"Generations": r.opts.Generations,
	})
}

func (r *Report) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(r.out, "  %s: %v\n", aurora.Green(propName), d[propName])
	}
}
