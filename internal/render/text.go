package render

import (
	"bytes"
	"io"

	"lifeview/internal/core"
)

// TextRenderer writes a universe as one line per row, one glyph per cell.
type TextRenderer struct {
	Live string
	Dead string
}

// DefaultTextRenderer uses filled and empty squares.
func DefaultTextRenderer() TextRenderer {
	return TextRenderer{Live: "◼", Dead: "◻"}
}

// Write renders the first maxRows rows and maxCols columns of the grid.
// Non-positive limits mean no limit. It reports whether the grid was cropped.
func (t TextRenderer) Write(w io.Writer, grid core.Size, cells []byte, inverted bool, maxCols, maxRows int) (bool, error) {
	rows, cols := grid.H, grid.W
	crop := false
	if maxRows > 0 && rows > maxRows {
		rows, crop = maxRows, true
	}
	if maxCols > 0 && cols > maxCols {
		cols, crop = maxCols, true
	}

	var b bytes.Buffer
	for row := 0; row < rows; row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			if core.Alive(cells, core.Index(row, col, grid.W)) != inverted {
				b.WriteString(t.Live)
			} else {
				b.WriteString(t.Dead)
			}
		}
	}
	_, err := w.Write(b.Bytes())
	return crop, err
}
