package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Direction represents a move direction.
type Direction int

// Directions are declared in boundary-code order (-2, -1, +1, +2).
// The search iterates them in this order, so it also decides tie-breaks.
const (
	DirUp Direction = iota
	DirLeft
	DirRight
	DirDown
)

// Directions lists all moves in boundary-code order.
var Directions = [4]Direction{DirUp, DirLeft, DirRight, DirDown}

// ErrInvalidDirection is returned when a code or name does not map to a direction.
var ErrInvalidDirection = errors.New("invalid direction")

// Code returns the signed boundary encoding: Up -2, Left -1, Right +1, Down +2.
// The sign selects the edge (toward index 0 or index 3), the magnitude the axis.
func (d Direction) Code() int {
	switch d {
	case DirUp:
		return -2
	case DirLeft:
		return -1
	case DirRight:
		return 1
	case DirDown:
		return 2
	default:
		return 0
	}
}

// DirectionFromCode converts a boundary code into a Direction.
func DirectionFromCode(code int) (Direction, error) {
	switch code {
	case -2:
		return DirUp, nil
	case -1:
		return DirLeft, nil
	case 1:
		return DirRight, nil
	case 2:
		return DirDown, nil
	default:
		return 0, fmt.Errorf("board: code %d: %w", code, ErrInvalidDirection)
	}
}

// ParseDirection accepts a direction name ("up", "Left", ...) or a signed code ("-2").
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	case "down", "d":
		return DirDown, nil
	}

	code, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("board: %q: %w", s, ErrInvalidDirection)
	}
	return DirectionFromCode(code)
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// horizontal reports whether the direction moves tiles along rows.
func (d Direction) horizontal() bool {
	return d == DirLeft || d == DirRight
}

// towardEnd reports whether tiles move toward index 3 of their line.
func (d Direction) towardEnd() bool {
	return d.Code() > 0
}
