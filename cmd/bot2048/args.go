package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/bot2048/internal/board"
)

// parseBoardArgs builds a board from 16 tile values in row-major order.
// A single argument holding comma-separated values is also accepted.
func parseBoardArgs(args []string) (board.Board, error) {
	if len(args) == 1 {
		args = strings.FieldsFunc(args[0], func(r rune) bool {
			return r == ',' || r == ' '
		})
	}
	if len(args) != board.Area {
		return board.Board{}, fmt.Errorf("expected %d tile values, got %d", board.Area, len(args))
	}

	var values [board.Area]int
	for i, a := range args {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return board.Board{}, fmt.Errorf("tile %d: %q is not a number", i+1, a)
		}
		values[i] = v
	}
	return board.FromValues(values)
}
