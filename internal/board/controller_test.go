package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adriannic/chessview/internal/rules"
)

// Square indices under the a1=0 convention used throughout.
const (
	sqD1 = 3
	sqE1 = 4
	sqG1 = 6
	sqE2 = 12
	sqF2 = 13
	sqG2 = 14
	sqF3 = 21
	sqE4 = 28
	sqG4 = 30
	sqH4 = 31
	sqE5 = 36
	sqF5 = 37
	sqH5 = 39
	sqG6 = 46
	sqE7 = 52
	sqF7 = 53
	sqG7 = 54
	sqD8 = 59
)

func newUnflipped() *Controller {
	c := NewController()
	c.SetFlip(false)
	return c
}

func TestInitialState(t *testing.T) {
	c := NewController()

	if c.Selection() != nil {
		t.Error("expected no selection at start")
	}
	if c.Check() != nil {
		t.Error("expected no check indicator at start")
	}
	if !c.ShouldFlip() {
		t.Error("flipping should default to on")
	}
	if got := c.StatusText(); got != "Ongoing" {
		t.Errorf("StatusText() = %q, want Ongoing", got)
	}
	if got := c.TurnText(); got != "White" {
		t.Errorf("TurnText() = %q, want White", got)
	}

	tiles := c.Tiles()
	// White to move, so the flip setting must not reverse the display.
	if tiles[0].Sprite != "r" {
		t.Errorf("top-left sprite = %q, want black rook", tiles[0].Sprite)
	}
	if tiles[60].Sprite != "K" {
		t.Errorf("e1 display slot sprite = %q, want white king", tiles[60].Sprite)
	}
	if got := countSprites(tiles); got != 32 {
		t.Errorf("non-empty sprites = %d, want 32", got)
	}
}

func TestPawnMoveScenario(t *testing.T) {
	c := newUnflipped()

	c.HandleTileClick(sqE2)
	sel := c.Selection()
	if sel == nil || sel.Pos != sqE2 {
		t.Fatalf("selection after first click = %+v, want position %d", sel, sqE2)
	}

	c.HandleTileClick(sqE4)
	if c.Selection() != nil {
		t.Error("selection should clear after a successful move")
	}

	want := rules.DefaultBoard().Apply(sqE2, sqE4).FEN()
	if got := c.Board().FEN(); got != want {
		t.Errorf("board after e2-e4:\n got %s\nwant %s", got, want)
	}
	if got := c.TurnText(); got != "Black" {
		t.Errorf("TurnText() = %q, want Black", got)
	}
}

func TestDeselectOnSameSquare(t *testing.T) {
	for name, flip := range map[string]bool{"flipped": true, "unflipped": false} {
		t.Run(name, func(t *testing.T) {
			c := NewController()
			c.SetFlip(flip)
			before := c.Board().FEN()

			// White to move: no orientation decoding either way.
			c.HandleTileClick(sqE2)
			c.HandleTileClick(sqE2)

			if c.Selection() != nil {
				t.Error("clicking the selected square must deselect")
			}
			if got := c.Board().FEN(); got != before {
				t.Errorf("board changed: %s", got)
			}
		})
	}
}

func TestReselectOverridesNeverMoves(t *testing.T) {
	c := newUnflipped()
	before := c.Board().FEN()

	c.HandleTileClick(sqE2)
	c.HandleTileClick(sqG1) // another own piece

	sel := c.Selection()
	if sel == nil || sel.Pos != sqG1 {
		t.Fatalf("selection = %+v, want re-selection of %d", sel, sqG1)
	}
	if got := c.Board().FEN(); got != before {
		t.Errorf("re-selection must not move: %s", got)
	}
}

func TestIllegalMoveIsNoOp(t *testing.T) {
	c := newUnflipped()
	c.HandleTileClick(sqE2)

	beforeFEN := c.Board().FEN()
	beforeTiles := c.Tiles()

	c.HandleTileClick(sqH4) // not reachable from e2

	if got := c.Board().FEN(); got != beforeFEN {
		t.Errorf("board changed on illegal move: %s", got)
	}
	sel := c.Selection()
	if sel == nil || sel.Pos != sqE2 {
		t.Errorf("selection = %+v, want it kept at %d", sel, sqE2)
	}
	if diff := cmp.Diff(beforeTiles, c.Tiles()); diff != "" {
		t.Errorf("view state changed on illegal move (-before +after):\n%s", diff)
	}
}

func TestClickEmptySquareNoSelection(t *testing.T) {
	c := newUnflipped()
	beforeTiles := c.Tiles()

	c.HandleTileClick(sqE4)

	if c.Selection() != nil {
		t.Error("clicking an empty square must not select")
	}
	if diff := cmp.Diff(beforeTiles, c.Tiles()); diff != "" {
		t.Errorf("view state changed (-before +after):\n%s", diff)
	}
}

func TestClickOpponentSquareNoSelection(t *testing.T) {
	c := newUnflipped()
	c.HandleTileClick(sqE7)
	if c.Selection() != nil {
		t.Error("clicking an opponent piece with no selection must not select")
	}
}

func TestToggleFlipTwiceRestoresView(t *testing.T) {
	c := newUnflipped()
	c.HandleTileClick(sqE2)
	c.HandleTileClick(sqE4) // Black to move, so flipping matters

	before := c.Tiles()
	c.ToggleFlip()
	c.ToggleFlip()

	if c.ShouldFlip() {
		t.Error("two toggles should restore the flip setting")
	}
	if diff := cmp.Diff(before, c.Tiles()); diff != "" {
		t.Errorf("view differs after double toggle (-before +after):\n%s", diff)
	}
}

func TestFlippedClicksAreDecoded(t *testing.T) {
	c := NewController() // flipping on

	// White's move needs no decoding.
	c.HandleTileClick(sqE2)
	c.HandleTileClick(sqE4)

	// Black to move with flipping active: the display is reversed.
	tiles := c.Tiles()
	if tiles[0].Sprite != "R" {
		t.Errorf("top-left sprite = %q, want white rook on the reversed display", tiles[0].Sprite)
	}
	if tiles[63].Sprite != "r" {
		t.Errorf("bottom-right sprite = %q, want black rook", tiles[63].Sprite)
	}

	// Clicks arrive in the reversed frame and must be mirrored back.
	c.HandleTileClick(63 - sqE7)
	sel := c.Selection()
	if sel == nil || sel.Pos != sqE7 || !sel.Flipped {
		t.Fatalf("selection = %+v, want e7 with a flipped snapshot", sel)
	}

	c.HandleTileClick(63 - sqE5)
	if c.Selection() != nil {
		t.Error("selection should clear after the move")
	}
	want := rules.DefaultBoard().Apply(sqE2, sqE4).Apply(sqE7, sqE5).FEN()
	if got := c.Board().FEN(); got != want {
		t.Errorf("board after 1.e4 e5:\n got %s\nwant %s", got, want)
	}
}

func TestSelectionKeepsItsOrientationSnapshot(t *testing.T) {
	c := NewController()
	c.HandleTileClick(sqE2)
	c.HandleTileClick(sqE4)

	// Black selects e7 under the flipped orientation.
	c.HandleTileClick(63 - sqE7)
	sel := c.Selection()
	if sel == nil || !sel.Flipped {
		t.Fatalf("selection = %+v, want a flipped snapshot", sel)
	}

	// Toggling afterwards must not rewrite the snapshot.
	c.ToggleFlip()
	sel = c.Selection()
	if sel == nil || sel.Pos != sqE7 || !sel.Flipped {
		t.Fatalf("selection after toggle = %+v, want e7 with the old snapshot", sel)
	}

	// The highlight renders under the selection's own snapshot, not the
	// live flag: mirrored e7 sits at display index 51.
	tiles := c.Tiles()
	for d, tile := range tiles {
		want := d == 51
		if tile.Selected != want {
			t.Errorf("tiles[%d].Selected = %v, want %v", d, tile.Selected, want)
		}
	}
}

func TestCheckIndicatorAfterMate(t *testing.T) {
	c := newUnflipped()
	// Fool's mate: 1.f3 e5 2.g4 Qh4#
	for _, click := range []int{sqF2, sqF3, sqE7, sqE5, sqG2, sqG4, sqD8, sqH4} {
		c.HandleTileClick(click)
	}

	check := c.Check()
	if check == nil {
		t.Fatal("expected a check indicator after mate")
	}
	if check.King != sqE1 || check.Flipped {
		t.Errorf("check indicator = %+v, want king on e1, unflipped", check)
	}
	if got := c.StatusText(); got != "Checkmate" {
		t.Errorf("StatusText() = %q, want Checkmate", got)
	}

	tiles := c.Tiles()
	for d, tile := range tiles {
		want := d == 60 // e1 display slot
		if tile.InCheck != want {
			t.Errorf("tiles[%d].InCheck = %v, want %v", d, tile.InCheck, want)
		}
	}
}

func TestCheckIndicatorClearsWhenCheckEnds(t *testing.T) {
	c := newUnflipped()
	// 1.e4 f5 2.Qh5+ g6: the check appears, the block removes it.
	for _, click := range []int{sqE2, sqE4, sqF7, sqF5, sqD1, sqH5} {
		c.HandleTileClick(click)
	}
	if c.Check() == nil {
		t.Fatal("expected a check indicator after Qh5+")
	}

	c.HandleTileClick(sqG7)
	c.HandleTileClick(sqG6)

	if c.Check() != nil {
		t.Errorf("check indicator = %+v, want none after the block", c.Check())
	}
}

func TestResetRestoresStart(t *testing.T) {
	c := newUnflipped()
	for _, click := range []int{sqF2, sqF3, sqE7, sqE5, sqG2, sqG4, sqD8, sqH4} {
		c.HandleTileClick(click)
	}
	c.SetFlip(true)

	c.Reset()

	if got, want := c.Board().FEN(), rules.DefaultBoard().FEN(); got != want {
		t.Errorf("board after reset:\n got %s\nwant %s", got, want)
	}
	if c.Selection() != nil {
		t.Error("selection should clear on reset")
	}
	if c.Check() != nil {
		t.Error("check indicator should clear on reset")
	}
	if !c.ShouldFlip() {
		t.Error("reset must not touch the flip setting")
	}
}

func TestOutOfRangeClickPanics(t *testing.T) {
	c := newUnflipped()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an out-of-range tile index")
		}
	}()
	c.HandleTileClick(64)
}

func countSprites(tiles [NumSquares]Tile) int {
	n := 0
	for _, tile := range tiles {
		if tile.Sprite != "" {
			n++
		}
	}
	return n
}
