package core

// PackedLen returns the number of bytes needed to hold n one-bit cells.
func PackedLen(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 7) / 8
}

// Index returns the row-major linear index of (row, col) in a grid that is
// width cells wide. It must match the engine's own indexing.
func Index(row, col, width int) int { return row*width + col }

// Alive reports whether the cell at idx is set in the packed buffer. Bit
// idx%8 of byte idx/8 holds the cell. Indices outside the buffer decode as
// dead.
func Alive(buf []byte, idx int) bool {
	if idx < 0 {
		return false
	}
	byteIdx := idx / 8
	if byteIdx >= len(buf) {
		return false
	}
	mask := byte(1) << (idx % 8)
	return buf[byteIdx]&mask == mask
}

// CountAlive returns the number of set cells among the first n indices.
func CountAlive(buf []byte, n int) int {
	count := 0
	for i := 0; i < n; i++ {
		if Alive(buf, i) {
			count++
		}
	}
	return count
}
