package main

import (
	"log"
	"os"

	"lifeview/internal/app"
	"lifeview/internal/render"
	_ "lifeview/internal/sims/elementary"
	_ "lifeview/internal/sims/life"
	"lifeview/internal/term"

	"github.com/integrii/flaggy"
)

type envOptions struct {
	interactive bool
	generations int
	every       int
	snapshot    string
	field       bool
}

func main() {
	cfg, eo := initOptions()

	engine, err := cfg.NewEngine()
	if err != nil {
		log.Fatalf("lifeterm: %v", err)
	}
	state := cfg.NewState()

	if eo.interactive {
		t, err := term.NewConsoleUI(engine, state)
		if err != nil {
			log.Fatalf("lifeterm: %v", err)
		}
		if err := t.Start(); err != nil {
			log.Fatalf("lifeterm: %v", err)
		}
		return
	}

	r := term.NewReport(os.Stdout, engine, state, term.ReportOptions{
		Generations: eo.generations,
		Every:       eo.every,
		Viewport:    cfg.Viewport(engine.Size()),
		Palette:     render.DefaultPalette(),
		Field:       eo.field,
	})
	if _, err := r.Run(); err != nil {
		log.Fatalf("lifeterm: %v", err)
	}

	if eo.snapshot == "" {
		return
	}
	f, err := os.Create(eo.snapshot)
	if err != nil {
		log.Fatalf("lifeterm: %v", err)
	}
	defer f.Close()
	if err := r.Surface().WritePNG(f); err != nil {
		log.Fatalf("lifeterm: write snapshot: %v", err)
	}
}

func initOptions() (*app.Config, *envOptions) {
	cfg := app.NewConfig()
	eo := &envOptions{generations: 100, every: 10}

	flaggy.SetName("lifeterm")
	flaggy.SetDescription("Terminal cellular automaton viewer")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	cfg.Bind(flaggy.DefaultParser)
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Int(&eo.generations, "g", "generations", "Generations to run in non-interactive mode")
	flaggy.Int(&eo.every, "v", "every", "Print progress every N generations")
	flaggy.String(&eo.snapshot, "o", "snapshot", "Write the final frame as PNG to this path")
	flaggy.Bool(&eo.field, "t", "text", "Print the final universe as text")
	flaggy.Parse()

	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	return cfg, eo
}
