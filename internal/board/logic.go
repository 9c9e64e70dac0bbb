package board

// line holds the exponents of one row or column, ordered so that
// index 0 is the edge the tiles move toward.
type line [Size]uint8

// compact pulls every non-zero tile toward index 0, keeping order.
func compact(in line) line {
	var out line
	read := 0
	for write := range Size {
		for read < Size && in[read] == 0 {
			read++
		}
		if read == Size {
			break
		}
		out[write] = in[read]
		read++
	}
	return out
}

// merge joins equal neighbours of a compacted line. The read cursor skips a
// consumed neighbour, so a merged tile cannot merge again in the same move.
func merge(in line) line {
	var out line
	read := 0
	for write := range Size {
		if read >= Size {
			break
		}
		v := in[read]
		if v != 0 && read < Size-1 && v == in[read+1] {
			out[write] = v + 1
			read += 2
			continue
		}
		out[write] = v
		read++
	}
	return out
}

// slideLine applies the compaction pass followed by the merge pass.
func slideLine(in line) line {
	return merge(compact(in))
}

// cellIndex maps position i of line n (oriented for d) to a cell index.
func cellIndex(d Direction, n, i int) int {
	if d.towardEnd() {
		i = Size - 1 - i
	}
	if d.horizontal() {
		return n*Size + i
	}
	return i*Size + n
}

// Move slides and merges all rows or columns in direction d.
// It returns whether any cell changed. No tile is added.
func (b *Board) Move(d Direction) bool {
	if d.Code() == 0 {
		return false
	}

	dirty := false
	for n := range Size {
		var in line
		for i := range Size {
			in[i] = b.cells[cellIndex(d, n, i)]
		}

		out := slideLine(in)
		if out == in {
			continue
		}

		for i := range Size {
			b.cells[cellIndex(d, n, i)] = out[i]
		}
		dirty = true
	}

	if dirty {
		b.recompute()
	}
	return dirty
}

// CloneAndMove returns a copy of b with d applied and whether the copy changed.
// The receiver is not modified.
func (b Board) CloneAndMove(d Direction) (Board, bool) {
	changed := b.Move(d)
	return b, changed
}

// CanMove reports whether moving in d would change the board.
func (b Board) CanMove(d Direction) bool {
	_, changed := b.CloneAndMove(d)
	return changed
}

// LegalMoves returns the directions that change the board, in boundary-code order.
func (b Board) LegalMoves() []Direction {
	var moves []Direction
	for _, d := range Directions {
		if b.CanMove(d) {
			moves = append(moves, d)
		}
	}
	return moves
}
