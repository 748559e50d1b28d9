// Package board implements the board interaction state machine: it maps tile
// clicks, flip toggles and resets onto selection state, move attempts against
// the rules engine and the derived per-square view state the renderer
// consumes. It holds no chess knowledge of its own.
package board

import "fmt"

// NumSquares is the number of tiles on the board.
const NumSquares = 64

// Pos addresses one of the 64 squares: 0 = a1 .. 63 = h8, rank-major. This is
// the single indexing convention of the program; every coordinate translation
// funnels through NewPos, Flip and DisplayToLogical.
type Pos int

// NewPos validates a raw tile index at the input boundary. An out-of-range
// value indicates a defect in the caller's coordinate decoding rather than
// user input, so it fails loudly.
func NewPos(raw int) Pos {
	if raw < 0 || raw >= NumSquares {
		panic(fmt.Sprintf("board: tile index %d out of range [0,63]", raw))
	}
	return Pos(raw)
}

// Flip mirrors the position across the board center. Self-inverse.
func (p Pos) Flip() Pos {
	return Pos(NumSquares-1) - p
}

// DisplayToLogical maps a display index (row-major from the top-left corner
// of the window) to the logical position shown there when the board is not
// flipped. The mapping is its own inverse, so it also converts logical
// positions back to display indices.
func DisplayToLogical(d int) Pos {
	row, col := d/8, d%8
	return NewPos((7-row)*8 + col)
}
