// Package board implements the 4x4 2048 board: tile exponents, the
// slide-and-merge transition for four directions and tile insertion.
package board

import (
	"errors"
	"fmt"
	"math/bits"
)

const (
	// Size is the board dimension. It is fixed; there is no runtime check.
	Size = 4
	// Area is the number of cells.
	Area = Size * Size
	// WinExponent is the exponent of the winning tile (2048).
	WinExponent = 11
)

var (
	// ErrInvalidValue is returned for face values that are not 0 or a power of two up to 2048.
	ErrInvalidValue = errors.New("invalid tile value")
	// ErrInvalidExponent is returned for exponents above WinExponent.
	ErrInvalidExponent = errors.New("invalid tile exponent")
)

// RandomSource supplies randomness for real tile placement.
// The search never uses it.
type RandomSource interface {
	// Uniform returns an integer in [min, max].
	Uniform(min, max int) int
	// WeightedChoice returns a with the source's fixed weight, otherwise b.
	WeightedChoice(a, b int) int
}

// Board is a 4x4 grid of tile exponents. 0 is an empty cell, e >= 1 a tile worth 2^e.
// Board is a comparable value type: assignment copies it and == compares grids.
// The derived fields are only written by recompute.
type Board struct {
	cells [Area]uint8

	zeroCount  int
	maxExp     uint8
	changeable bool
}

// New returns an empty board.
func New() Board {
	var b Board
	b.recompute()
	return b
}

// NewSeeded returns a board with two starting tiles at distinct random cells.
// Each tile is exponent 1 or 2, drawn with src.WeightedChoice(1, 2).
func NewSeeded(src RandomSource) Board {
	var b Board

	first := src.Uniform(0, Area-1)
	second := src.Uniform(0, Area-1)
	for second == first {
		second = src.Uniform(0, Area-1)
	}
	b.cells[first] = uint8(src.WeightedChoice(1, 2))
	b.cells[second] = uint8(src.WeightedChoice(1, 2))

	b.recompute()
	return b
}

// FromValues builds a board from explicit face values in row-major order (128, not 7).
func FromValues(values [Area]int) (Board, error) {
	var b Board
	for i, v := range values {
		if v == 0 {
			continue
		}
		if v < 2 || v > 1<<WinExponent || v&(v-1) != 0 {
			return Board{}, fmt.Errorf("board: cell %d value %d: %w", i, v, ErrInvalidValue)
		}
		b.cells[i] = uint8(bits.Len(uint(v)) - 1)
	}
	b.recompute()
	return b, nil
}

// FromExponents builds a board from raw exponents in row-major order.
func FromExponents(exps [Area]uint8) (Board, error) {
	for i, e := range exps {
		if e > WinExponent {
			return Board{}, fmt.Errorf("board: cell %d exponent %d: %w", i, e, ErrInvalidExponent)
		}
	}
	b := Board{cells: exps}
	b.recompute()
	return b, nil
}

// recompute refreshes zeroCount, maxExp and changeable from the grid.
func (b *Board) recompute() {
	b.zeroCount = 0
	b.maxExp = 0
	for _, e := range b.cells {
		if e == 0 {
			b.zeroCount++
		} else if e > b.maxExp {
			b.maxExp = e
		}
	}
	b.changeable = b.zeroCount > 0 || b.hasEqualNeighbors()
}

// hasEqualNeighbors reports whether two adjacent cells in a row or column hold the same exponent.
func (b *Board) hasEqualNeighbors() bool {
	for row := range Size {
		for col := range Size - 1 {
			if b.cells[row*Size+col] == b.cells[row*Size+col+1] {
				return true
			}
		}
	}
	for col := range Size {
		for row := range Size - 1 {
			if b.cells[row*Size+col] == b.cells[(row+1)*Size+col] {
				return true
			}
		}
	}
	return false
}

// AddTile places exp at the ordinal-th empty cell, counting empties in row-major order from 1.
// It returns false without mutating the board if the board is full,
// the ordinal is out of range or exp is not 1 or 2.
func (b *Board) AddTile(ordinal int, exp uint8) bool {
	if b.zeroCount == 0 || ordinal < 1 || ordinal > b.zeroCount {
		return false
	}
	if exp != 1 && exp != 2 {
		return false
	}

	seen := 0
	for i, e := range b.cells {
		if e != 0 {
			continue
		}
		seen++
		if seen == ordinal {
			b.cells[i] = exp
			b.recompute()
			return true
		}
	}
	return false
}

// AddRandomTile places a tile drawn from src at a random empty cell.
func (b *Board) AddRandomTile(src RandomSource) bool {
	if b.zeroCount == 0 {
		return false
	}
	return b.AddTile(src.Uniform(1, b.zeroCount), uint8(src.WeightedChoice(1, 2)))
}

// IsChangeable reports whether at least one move would alter the board.
func (b Board) IsChangeable() bool {
	return b.changeable
}

// IsWon reports whether the board holds a 2048 tile or higher.
func (b Board) IsWon() bool {
	return b.maxExp >= WinExponent
}

// ZeroCount returns the number of empty cells.
func (b Board) ZeroCount() int {
	return b.zeroCount
}

// MaxExponent returns the highest exponent on the board.
func (b Board) MaxExponent() uint8 {
	return b.maxExp
}

// MaxTile returns the highest face value on the board.
func (b Board) MaxTile() int {
	if b.maxExp == 0 {
		return 0
	}
	return 1 << b.maxExp
}

// Eval scores the board for the search. Higher is better; empty cells count positively.
// Callers must not rely on the exact formula.
func (b Board) Eval() float64 {
	return float64(b.zeroCount)
}

// Exponent returns the exponent at (row, col).
func (b Board) Exponent(row, col int) uint8 {
	return b.cells[row*Size+col]
}

// ExplicitValue returns the face value at (row, col): 0 if empty, else 2^exponent.
func (b Board) ExplicitValue(row, col int) int {
	e := b.Exponent(row, col)
	if e == 0 {
		return 0
	}
	return 1 << e
}

// Exponents returns the grid as raw exponents in row-major order.
func (b Board) Exponents() [Area]uint8 {
	return b.cells
}

// Values returns the grid as face values in row-major order.
func (b Board) Values() [Area]int {
	var values [Area]int
	for i := range Area {
		values[i] = b.ExplicitValue(i/Size, i%Size)
	}
	return values
}
