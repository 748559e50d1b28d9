// chessview-fen prints a position to the terminal through the same projector
// the GUI uses: one row per display rank, sprite keys on colored squares,
// followed by the side to move and the game status.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/fatih/color"

	"github.com/adriannic/chessview/internal/board"
	"github.com/adriannic/chessview/internal/rules"
)

var (
	fen  = flag.String("fen", "", "position to print (FEN); empty means the starting position")
	flip = flag.Bool("flip", false, "flip the board when it is Black's turn")
)

func main() {
	flag.Parse()

	b := rules.DefaultBoard()
	if *fen != "" {
		var err error
		b, err = rules.FromFEN(*fen)
		if err != nil {
			log.Fatal(err)
		}
	}

	tiles := board.Project(b, *flip, nil, nil)

	light := color.New(color.BgWhite, color.FgBlack)
	dark := color.New(color.BgCyan, color.FgBlack)

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			key := tiles[row*8+col].Sprite
			if key == "" {
				key = " "
			}
			sq := light
			if (row+col)%2 == 1 {
				sq = dark
			}
			sq.Printf(" %s ", key)
		}
		fmt.Println()
	}

	fmt.Printf("%s to move (%s)\n", b.SideToMove().Name(), b.Status())
}
