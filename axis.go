// axis.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements per-axis state used by the move generator: the
// cross-check table and anchor selection. Grounded on the teacher's
// movegen.go Axis type, with the anchor definition inverted per this
// repo's convention: an anchor is a FILLED cell with at least one empty
// neighbor along the axis, the opposite of the teacher's classical
// empty-cell anchor.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package lexengine

// fullMask is the cross-check bitmap meaning "every letter is allowed",
// used for empty cells whose orthogonal neighbors are both empty (no
// cross word is formed, so nothing constrains the placed letter).
const fullMask = ^uint64(0)

// axis describes one row (horizontal=true) or column (horizontal=false) of
// the board, precomputed once per GenerateMoves call.
type axis struct {
	board      *Board
	lex        *Lexicon
	index      int // row or column number
	horizontal bool

	// crossMask[i] is the cross-check bitmap for the i'th cell along this
	// axis (only meaningful for empty cells).
	crossMask [BoardSize]uint64
	// anchors lists the positions along this axis that are filled cells
	// with at least one empty or off-board neighbor along the axis.
	anchors []int
}

func (a *axis) cellCoord(i int) (row, col int) {
	if a.horizontal {
		return a.index, i
	}
	return i, a.index
}

// newAxis builds the cross-check table and anchor list for one row/column.
func newAxis(board *Board, lex *Lexicon, index int, horizontal bool) *axis {
	a := &axis{board: board, lex: lex, index: index, horizontal: horizontal}
	for i := 0; i < BoardSize; i++ {
		row, col := a.cellCoord(i)
		sq := board.Sq(row, col)
		if sq.Tile != nil {
			if a.isAnchor(i) {
				a.anchors = append(a.anchors, i)
			}
			continue
		}
		left, right := board.CrossWords(row, col, !a.horizontal)
		if left == "" && right == "" {
			a.crossMask[i] = fullMask
			continue
		}
		a.crossMask[i] = lex.CrossSet(left, right)
	}
	return a
}

// isAnchor reports whether the filled cell at axis position i has at least
// one neighbor along the axis that is empty or off the board.
func (a *axis) isAnchor(i int) bool {
	row, col := a.cellCoord(i)
	var before, after *Square
	if a.horizontal {
		before, after = a.board.Adjacents[row][col][Left], a.board.Adjacents[row][col][Right]
	} else {
		before, after = a.board.Adjacents[row][col][Above], a.board.Adjacents[row][col][Below]
	}
	return (before == nil || before.Tile == nil) || (after == nil || after.Tile == nil)
}

// allows reports whether letter r is permitted at axis position i under the
// cross-check table (only meaningful for empty cells).
func (a *axis) allows(i int, r rune) bool {
	mask := a.crossMask[i]
	if mask == fullMask {
		return true
	}
	bit, ok := a.lex.LetterBit(r)
	if !ok {
		return false
	}
	return mask&(1<<uint(bit)) != 0
}
