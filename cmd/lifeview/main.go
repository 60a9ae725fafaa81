//go:build ebiten

package main

import (
	"errors"
	"log"

	"lifeview/internal/app"
	_ "lifeview/internal/sims/elementary"
	_ "lifeview/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
)

// tps bounds the software timer resolution; frames still follow vsync.
const tps = 240

func main() {
	cfg := app.NewConfig()
	flaggy.SetName("lifeview")
	flaggy.SetDescription("Interactive cellular automaton viewer")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	cfg.Bind(flaggy.DefaultParser)
	flaggy.Parse()

	engine, err := cfg.NewEngine()
	if err != nil {
		log.Fatalf("lifeview: %v", err)
	}

	game := app.New(engine, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifeview — " + engine.Name())
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
