package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bot2048/internal/board"
	"github.com/vovakirdan/bot2048/internal/render"
)

var moveCmd = &cobra.Command{
	Use:   "move <direction> <16 values>",
	Short: "Apply one move to a board",
	Long: `Slide and merge the given board in one direction and print the result.
No random tile is added.

Direction is up, left, right, down (or u, l, r, d). Numeric codes work
too; put them after -- so negative codes are not read as flags.

Examples:
  bot2048 move left 2 2 4 0 0 0 0 0 0 0 0 0 0 0 0 0
  bot2048 move down 2,0,0,0,2,0,0,0,0,0,0,0,0,0,0,0
  bot2048 move -- -1 2,2,4,0,0,0,0,0,0,0,0,0,0,0,0,0`,
	Args: cobra.RangeArgs(2, 17),
	Run:  runMove,
}

func runMove(cmd *cobra.Command, args []string) {
	dir, err := board.ParseDirection(args[0])
	exitOnError("parsing direction", err)

	b, err := parseBoardArgs(args[1:])
	exitOnError("parsing board", err)

	color := useColor()
	changed := b.Move(dir)

	fmt.Println(render.Grid(b, color))
	if !changed {
		fmt.Printf("Move %s does not change the board.\n", dir)
		return
	}
	fmt.Printf("Moved %s: %d empty, max tile %d", dir, b.ZeroCount(), b.MaxTile())
	if !b.IsChangeable() {
		fmt.Print(", no moves left")
	}
	fmt.Println()
}
