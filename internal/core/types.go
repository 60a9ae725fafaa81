package core

// Size describes the dimensions of a universe in cells.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Engine is the contract of the simulation that owns the universe state.
// The viewer never advances generations itself; it only reads the packed
// cell buffer and asks the engine to mutate it.
type Engine interface {
	Name() string
	Size() Size
	// Reset replaces the universe with a random one derived from seed.
	Reset(seed int64)
	Clear()
	Toggle(row, col int)
	Step()
	// Cells borrows the bit-packed cell buffer. The slice is only valid
	// until the next call that may mutate the engine and must not be
	// retained across such calls.
	Cells() []byte
}

// Factory constructs an Engine using an optional configuration map.
type Factory func(cfg map[string]string) Engine

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}
