package input

import (
	"testing"

	"lifeview/internal/core"

	. "github.com/smartystreets/goconvey/convey"
)

type fakeEngine struct {
	toggles []Cell
}

func (f *fakeEngine) Toggle(row, col int) { f.toggles = append(f.toggles, Cell{Row: row, Col: col}) }

type fakePlayback struct{ ticking bool }

func (f *fakePlayback) Ticking() bool { return f.ticking }

type countingRenderer struct{ renders int }

func (r *countingRenderer) Render() { r.renders++ }

func TestController(t *testing.T) {
	Convey("Given a controller over a 4x4 grid with 10px cells", t, func() {
		m := Mapper{CellSize: 10, Grid: core.Size{W: 4, H: 4}}
		bounds := Rect{Width: 45, Height: 45}
		engine := &fakeEngine{}
		playback := &fakePlayback{}
		renderer := &countingRenderer{}
		c := NewController(m, engine, playback, renderer)

		Convey("When the pointer lingers over one cell during a drag", func() {
			c.Press()
			c.Move(Point{3, 3}, bounds)
			c.Move(Point{5, 7}, bounds)
			c.Move(Point{9, 1}, bounds)

			Convey("Exactly one toggle is emitted", func() {
				So(engine.toggles, ShouldResemble, []Cell{{0, 0}})
				So(c.State(), ShouldEqual, Dragging)
			})

			Convey("Release after painting adds no click toggle", func() {
				So(c.Release(Point{5, 7}, bounds), ShouldEqual, 0)
				So(engine.toggles, ShouldHaveLength, 1)
				So(c.State(), ShouldEqual, Idle)
				_, ok := c.LastToggled()
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the drag crosses several cells", func() {
			c.Press()
			c.Move(Point{3, 3}, bounds)
			c.Move(Point{14, 3}, bounds)
			c.Move(Point{15, 4}, bounds)
			c.Move(Point{3, 3}, bounds)

			Convey("Each new cell toggles once and revisiting toggles again", func() {
				So(engine.toggles, ShouldResemble, []Cell{{0, 0}, {0, 1}, {0, 0}})
				last, ok := c.LastToggled()
				So(ok, ShouldBeTrue)
				So(last, ShouldResemble, Cell{0, 0})
			})
		})

		Convey("When the pointer leaves mid-drag and a new drag starts", func() {
			c.Press()
			c.Move(Point{3, 3}, bounds)
			c.Leave()

			So(c.State(), ShouldEqual, Idle)

			Convey("Moves without a new press are ignored", func() {
				So(c.Move(Point{25, 25}, bounds), ShouldEqual, 0)
				So(engine.toggles, ShouldHaveLength, 1)
			})

			Convey("The new drag has no memory of the previous cell", func() {
				c.Press()
				So(c.Move(Point{3, 3}, bounds), ShouldEqual, 1)
				So(engine.toggles, ShouldResemble, []Cell{{0, 0}, {0, 0}})
			})
		})

		Convey("When a plain click happens while idle", func() {
			So(c.Click(Point{25, 36}, bounds), ShouldEqual, 1)

			Convey("One toggle is emitted and no drag starts", func() {
				So(engine.toggles, ShouldResemble, []Cell{{Row: 3, Col: 2}})
				So(c.State(), ShouldEqual, Idle)
			})
		})

		Convey("When a press is released without moving", func() {
			c.Press()

			Convey("The release is a click on the cell under the pointer", func() {
				So(c.Release(Point{25, 36}, bounds), ShouldEqual, 1)
				So(engine.toggles, ShouldResemble, []Cell{{Row: 3, Col: 2}})
				So(c.State(), ShouldEqual, Idle)
			})
		})

		Convey("When a painting drag leaves and returns with the button held", func() {
			c.Press()
			c.Move(Point{3, 3}, bounds)
			c.Move(Point{14, 3}, bounds)
			c.Leave()
			c.Move(Point{25, 25}, bounds)

			Convey("The release toggles nothing", func() {
				So(c.Release(Point{25, 25}, bounds), ShouldEqual, 0)
				So(engine.toggles, ShouldResemble, []Cell{{0, 0}, {0, 1}})
			})
		})

		Convey("When a press that never moved is cut short by Leave", func() {
			c.Press()
			c.Leave()
			So(c.Release(Point{25, 25}, bounds), ShouldEqual, 0)
			So(engine.toggles, ShouldBeEmpty)
		})

		Convey("When a release arrives without any press", func() {
			So(c.Release(Point{25, 25}, bounds), ShouldEqual, 0)
			So(engine.toggles, ShouldBeEmpty)
			So(c.Toggles(), ShouldEqual, uint64(0))
		})

		Convey("When playback is paused", func() {
			c.Click(Point{1, 1}, bounds)

			Convey("No render is forced", func() {
				So(renderer.renders, ShouldEqual, 0)
			})
		})

		Convey("When playback is running", func() {
			playback.ticking = true
			c.Click(Point{1, 1}, bounds)
			c.Press()
			c.Move(Point{12, 1}, bounds)
			c.Move(Point{13, 2}, bounds)

			Convey("Every toggle forces one render", func() {
				So(renderer.renders, ShouldEqual, 2)
				So(c.Toggles(), ShouldEqual, uint64(2))
			})
		})

		Convey("When the pointer is far outside the grid", func() {
			c.Click(Point{-100, 900}, bounds)

			Convey("The nearest edge cell is toggled", func() {
				So(engine.toggles, ShouldResemble, []Cell{{Row: 3, Col: 0}})
			})
		})
	})
}

func TestControllerWithoutCollaborators(t *testing.T) {
	Convey("A controller without playback or renderer still toggles", t, func() {
		engine := &fakeEngine{}
		c := NewController(Mapper{CellSize: 1, Grid: core.Size{W: 2, H: 2}}, engine, nil, nil)
		c.Click(Point{3, 3}, Rect{Width: 5, Height: 5})
		So(engine.toggles, ShouldResemble, []Cell{{1, 1}})
		So(Dragging.String(), ShouldEqual, "dragging")
		So(Idle.String(), ShouldEqual, "idle")
	})
}
