package app

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"lifeview/internal/core"
	"lifeview/internal/playback"
	"lifeview/internal/render"

	"github.com/integrii/flaggy"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Engine   string
	Width    int
	Height   int
	CellSize int
	Rate     float64
	Zoom     float64
	Seed     int64
	Random   bool
	Inverted bool
	Running  bool
	Rule     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Engine:   "life",
		Width:    64,
		Height:   64,
		CellSize: 10,
		Rate:     playback.DefaultRate,
		Zoom:     1,
		Seed:     42,
		Rule:     110,
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.String(&c.Engine, "e", "engine", "Engine to use ["+strings.Join(engineNames(), "|")+"]")
	p.Int(&c.Width, "x", "width", "Width of the universe in cells")
	p.Int(&c.Height, "y", "height", "Height of the universe in cells")
	p.Int(&c.CellSize, "c", "cell-size", "Cell edge length in pixels")
	p.Float64(&c.Rate, "f", "rate", "Target cycles per second")
	p.Float64(&c.Zoom, "z", "zoom", "Display scale of the drawing surface")
	p.Int64(&c.Seed, "s", "seed", "Seed used with --random")
	p.Bool(&c.Random, "r", "random", "Start from a random universe")
	p.Bool(&c.Inverted, "d", "dark", "Start with the inverted palette")
	p.Bool(&c.Running, "p", "play", "Start with playback running")
	p.Int(&c.Rule, "u", "rule", "Wolfram rule for the elementary engine [0-255]")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, ok := core.Engines()[c.Engine]; !ok {
		return fmt.Errorf("unknown engine %q", c.Engine)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("universe size %dx%d must be positive", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size %d must be positive", c.CellSize)
	}
	if c.Zoom <= 0 {
		return fmt.Errorf("zoom %v must be positive", c.Zoom)
	}
	if c.Rule < 0 || c.Rule > 255 {
		return fmt.Errorf("rule %d outside [0, 255]", c.Rule)
	}
	if c.Rate < playback.MinRate || c.Rate > playback.MaxRate {
		return fmt.Errorf("rate %v outside [%v, %v]", c.Rate, playback.MinRate, playback.MaxRate)
	}
	return nil
}

// NewEngine builds the configured engine, randomized when requested.
func (c *Config) NewEngine() (core.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	e := core.Engines()[c.Engine](map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"rule": strconv.Itoa(c.Rule),
	})
	if c.Random {
		e.Reset(c.Seed)
	}
	return e, nil
}

// Viewport returns the drawing surface geometry for the engine size.
func (c *Config) Viewport(size core.Size) render.Viewport {
	return render.Viewport{CellSize: c.CellSize, Grid: size}
}

// NewState returns the initial playback state.
func (c *Config) NewState() *playback.State {
	s := playback.NewState(c.Rate)
	s.SetTicking(c.Running)
	s.SetInverted(c.Inverted)
	return s
}

func engineNames() []string {
	names := make([]string, 0, len(core.Engines()))
	for k := range core.Engines() {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
