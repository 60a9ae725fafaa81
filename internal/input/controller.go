package input

// Toggler flips single cells in the engine.
type Toggler interface {
	Toggle(row, col int)
}

// Playback reports whether generations are currently advancing.
type Playback interface {
	Ticking() bool
}

// Renderer paints a full frame immediately.
type Renderer interface {
	Render()
}

// DragState is the drag-paint state of a Controller.
type DragState int

const (
	// Idle means no button is held over the surface.
	Idle DragState = iota
	// Dragging means a press armed move handling on the surface.
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller translates press/move/release gestures into cell toggles,
// toggling each cell at most once per stretch of a drag spent over it.
type Controller struct {
	mapper   Mapper
	engine   Toggler
	playback Playback
	renderer Renderer

	state   DragState
	last    Cell
	hasLast bool
	painted bool
	toggles uint64
}

// NewController wires a controller. playback and renderer may be nil.
func NewController(m Mapper, engine Toggler, playback Playback, renderer Renderer) *Controller {
	return &Controller{mapper: m, engine: engine, playback: playback, renderer: renderer}
}

// State returns the current drag state.
func (c *Controller) State() DragState { return c.state }

// LastToggled returns the last cell toggled by the current drag.
func (c *Controller) LastToggled() (Cell, bool) { return c.last, c.hasLast }

// Toggles returns the total number of toggles emitted.
func (c *Controller) Toggles() uint64 { return c.toggles }

// Press arms move handling.
func (c *Controller) Press() {
	c.reset()
	c.state = Dragging
}

// Move paints the cell under p if a drag is active and the cell differs
// from the one last toggled in this drag. It returns the number of toggles
// emitted.
func (c *Controller) Move(p Point, bounds Rect) int {
	if c.state != Dragging {
		return 0
	}
	cell := c.mapper.MapToCell(p, bounds)
	if c.hasLast && cell == c.last {
		return 0
	}
	c.last, c.hasLast = cell, true
	c.painted = true
	c.toggle(cell)
	return 1
}

// Release ends the drag. A press that was neither cut short by Leave nor
// followed by painting is a click and toggles the cell under p. It returns
// the number of toggles emitted.
func (c *Controller) Release(p Point, bounds Rect) int {
	click := c.state == Dragging && !c.painted
	c.reset()
	if !click {
		return 0
	}
	return c.Click(p, bounds)
}

// Leave ends the drag when the pointer exits the surface.
func (c *Controller) Leave() {
	c.reset()
}

// Click toggles the cell under p once without touching drag state.
func (c *Controller) Click(p Point, bounds Rect) int {
	c.toggle(c.mapper.MapToCell(p, bounds))
	return 1
}

func (c *Controller) toggle(cell Cell) {
	c.engine.Toggle(cell.Row, cell.Col)
	c.toggles++
	if c.playback != nil && c.playback.Ticking() && c.renderer != nil {
		c.renderer.Render()
	}
}

func (c *Controller) reset() {
	c.state = Idle
	c.last, c.hasLast = Cell{}, false
	c.painted = false
}
