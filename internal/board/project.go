package board

import "github.com/adriannic/chessview/internal/rules"

// Tile is the derived render state for one display square. Sprite is the
// piece sprite key ("" for an empty square); the flags drive the highlight
// overlays.
type Tile struct {
	Sprite   string
	Selected bool
	InCheck  bool
}

// Project maps the board, the live orientation and the highlight snapshots
// into 64 per-square records in display order (row-major from the top-left
// corner). It is a pure function of its inputs.
//
// The sprite sequence is reversed end-to-end when flipping is active and it
// is Black's turn, so the side to move always sits at the bottom of the
// window. Each highlight is placed under its own orientation snapshot, not
// the live flag: a selection or check fact keeps the orientation it was
// established under until it is recomputed.
func Project(b *rules.Board, shouldFlip bool, sel *Selection, check *CheckIndicator) [NumSquares]Tile {
	var tiles [NumSquares]Tile

	slots := b.Placement()
	if shouldFlip && b.SideToMove() == rules.Black {
		for i, j := 0, len(slots)-1; i < j; i, j = i+1, j-1 {
			slots[i], slots[j] = slots[j], slots[i]
		}
	}

	for d := 0; d < NumSquares; d++ {
		tiles[d].Sprite = slots[d]
		if sel != nil {
			tiles[d].Selected = sel.Pos == logicalAt(d, sel.Flipped)
		}
		if check != nil {
			tiles[d].InCheck = check.King == logicalAt(d, check.Flipped)
		}
	}
	return tiles
}

// logicalAt returns the logical position compared against highlights for
// display index d under the given orientation snapshot.
func logicalAt(d int, flipped bool) Pos {
	p := DisplayToLogical(d)
	if flipped {
		p = p.Flip()
	}
	return p
}
