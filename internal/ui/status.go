package ui

import (
	"fmt"
	"strconv"
)

// Status is the view state shown in the status bar.
type Status struct {
	Ticking      bool
	Inverted     bool
	TargetRate   float64
	MeasuredRate float64
	Generation   uint64
	Live         int
}

// Mode returns a short label for the playback mode.
func (s Status) Mode() string {
	if s.Ticking {
		return "running"
	}
	return "paused"
}

// Lines formats the status for display, one entry per line.
func (s Status) Lines() []string {
	palette := "light"
	if s.Inverted {
		palette = "dark"
	}
	return []string{
		fmt.Sprintf("%s  gen %d  live %d  %s", s.Mode(), s.Generation, s.Live, palette),
		fmt.Sprintf("rate %s/s target, %s/s actual", formatRate(s.TargetRate), formatRate(s.MeasuredRate)),
		"SPACE play  N step  C clear  R random  D dark  UP/DOWN rate",
	}
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
