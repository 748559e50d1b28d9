package board

import (
	"testing"

	"github.com/adriannic/chessview/internal/rules"
)

func TestProjectStartingPosition(t *testing.T) {
	tiles := Project(rules.DefaultBoard(), false, nil, nil)

	if got := countSprites(tiles); got != 32 {
		t.Errorf("non-empty sprites = %d, want 32", got)
	}
	// Display runs rank 8 down to rank 1, files a to h.
	if tiles[0].Sprite != "r" {
		t.Errorf("tiles[0] = %q, want black rook on a8", tiles[0].Sprite)
	}
	if tiles[4].Sprite != "k" {
		t.Errorf("tiles[4] = %q, want black king on e8", tiles[4].Sprite)
	}
	if tiles[60].Sprite != "K" {
		t.Errorf("tiles[60] = %q, want white king on e1", tiles[60].Sprite)
	}
	if tiles[63].Sprite != "R" {
		t.Errorf("tiles[63] = %q, want white rook on h1", tiles[63].Sprite)
	}
	for d, tile := range tiles {
		if tile.Selected || tile.InCheck {
			t.Errorf("tiles[%d] carries a highlight with none requested", d)
		}
	}
}

func TestProjectReversesOnlyForBlackWithFlip(t *testing.T) {
	afterE4 := rules.DefaultBoard().Apply(12, 28) // Black to move

	// shouldFlip with White to move: no reversal.
	tiles := Project(rules.DefaultBoard(), true, nil, nil)
	if tiles[0].Sprite != "r" {
		t.Errorf("tiles[0] = %q, want black rook with White to move", tiles[0].Sprite)
	}

	// Black to move without shouldFlip: no reversal either.
	tiles = Project(afterE4, false, nil, nil)
	if tiles[0].Sprite != "r" {
		t.Errorf("tiles[0] = %q, want black rook with flipping off", tiles[0].Sprite)
	}

	// Both together: the display reverses end to end.
	tiles = Project(afterE4, true, nil, nil)
	if tiles[0].Sprite != "R" {
		t.Errorf("tiles[0] = %q, want white rook on the reversed display", tiles[0].Sprite)
	}
	if tiles[63].Sprite != "r" {
		t.Errorf("tiles[63] = %q, want black rook on the reversed display", tiles[63].Sprite)
	}
	// White's e4 pawn: e4 = logical 28, mirrored to 35, display slot 27.
	if tiles[27].Sprite != "P" {
		t.Errorf("tiles[27] = %q, want the e4 pawn", tiles[27].Sprite)
	}
}

func TestProjectHighlightsUseOwnSnapshots(t *testing.T) {
	b := rules.DefaultBoard()

	// An unflipped selection of e2 lands at display index 52.
	sel := &Selection{Pos: 12, Flipped: false}
	tiles := Project(b, false, sel, nil)
	for d, tile := range tiles {
		want := d == 52
		if tile.Selected != want {
			t.Errorf("tiles[%d].Selected = %v, want %v", d, tile.Selected, want)
		}
	}

	// A check fact recorded under the flipped orientation places the
	// e1 highlight at the mirrored slot even on an unreversed display.
	check := &CheckIndicator{King: 4, Flipped: true}
	tiles = Project(b, false, nil, check)
	for d, tile := range tiles {
		want := d == 3 // mirror of e1's display slot 60
		if tile.InCheck != want {
			t.Errorf("tiles[%d].InCheck = %v, want %v", d, tile.InCheck, want)
		}
	}
}
