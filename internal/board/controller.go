package board

import "github.com/adriannic/chessview/internal/rules"

// Selection is the currently chosen "move from" square, together with the
// orientation snapshot taken when it was established.
type Selection struct {
	Pos     Pos
	Flipped bool
}

// CheckIndicator marks the side-to-move's king while it is in check, with the
// orientation snapshot taken when the fact was recomputed.
type CheckIndicator struct {
	King    Pos
	Flipped bool
}

// Controller owns the live board, the selection, the flip setting and the
// check indicator, and turns input events into state transitions. It is not
// safe for concurrent use; one event is fully processed before the next.
type Controller struct {
	board      *rules.Board
	selection  *Selection
	check      *CheckIndicator
	shouldFlip bool
	tiles      [NumSquares]Tile
}

// NewController starts a controller at the standard starting position.
// Flipping defaults to on.
func NewController() *Controller {
	c := &Controller{
		board:      rules.DefaultBoard(),
		shouldFlip: true,
	}
	c.recomputeCheck()
	c.project()
	return c
}

// HandleTileClick processes a click on the tile at the given logical index
// (a1=0 convention, before any orientation decoding). Clicks that express no
// valid action, an empty or opponent square with nothing selected, or an
// illegal move attempt, are absorbed silently: no state changes at all.
func (c *Controller) HandleTileClick(raw int) {
	pos := NewPos(raw)
	if c.shouldFlip && c.board.SideToMove() == rules.Black {
		pos = pos.Flip()
	}

	sel := c.selection
	if sel == nil {
		if !c.board.IsOwnPiece(int(pos)) {
			return
		}
		c.selection = &Selection{
			Pos:     pos,
			Flipped: c.shouldFlip && c.board.SideToMove() == rules.Black,
		}
		c.project()
		return
	}

	switch {
	case pos == sel.Pos:
		// Clicking the selected square deselects it.
		c.selection = nil
		c.project()

	case c.board.IsOwnPiece(int(pos)):
		// Another own piece re-targets the selection; it never moves.
		c.selection = &Selection{Pos: pos, Flipped: c.shouldFlip && sel.Flipped}
		c.project()

	case c.board.IsLegalMove(int(sel.Pos), int(pos)):
		c.board = c.board.Apply(int(sel.Pos), int(pos))
		c.selection = nil
		c.recomputeCheck()
		c.project()

	default:
		// Illegal destination: absorbed, selection stays put.
	}
}

// ToggleFlip inverts the flip setting and recomputes the derived view state
// under the new orientation. Board and selection are untouched.
func (c *Controller) ToggleFlip() {
	c.shouldFlip = !c.shouldFlip
	c.recomputeCheck()
	c.project()
}

// SetFlip forces the flip setting, recomputing derived state when it changes.
func (c *Controller) SetFlip(flip bool) {
	if c.shouldFlip == flip {
		return
	}
	c.ToggleFlip()
}

// Reset replaces the board with the starting position and clears the
// selection. The flip setting survives.
func (c *Controller) Reset() {
	c.board = rules.DefaultBoard()
	c.selection = nil
	c.recomputeCheck()
	c.project()
}

// recomputeCheck rebuilds the check indicator from the current board. Called
// after every board replacement and orientation change so the indicator is
// never stale.
func (c *Controller) recomputeCheck() {
	if !c.board.InCheck() {
		c.check = nil
		return
	}
	side := c.board.SideToMove()
	c.check = &CheckIndicator{
		King:    Pos(c.board.KingSquare(side)),
		Flipped: c.shouldFlip && side == rules.Black,
	}
}

func (c *Controller) project() {
	c.tiles = Project(c.board, c.shouldFlip, c.selection, c.check)
}

// Tiles returns the projected per-square view state in display order. The
// result is a copy; it is recomputed after every mutating operation.
func (c *Controller) Tiles() [NumSquares]Tile {
	return c.tiles
}

// Board returns the live board snapshot.
func (c *Controller) Board() *rules.Board {
	return c.board
}

// ShouldFlip reports the flip setting, for the settings checkbox.
func (c *Controller) ShouldFlip() bool {
	return c.shouldFlip
}

// Selection returns the current selection, or nil.
func (c *Controller) Selection() *Selection {
	return c.selection
}

// Check returns the current check indicator, or nil.
func (c *Controller) Check() *CheckIndicator {
	return c.check
}

// StatusText returns the game status as a display string.
func (c *Controller) StatusText() string {
	return c.board.Status().String()
}

// TurnText returns the side to move as a display string.
func (c *Controller) TurnText() string {
	return c.board.SideToMove().Name()
}
