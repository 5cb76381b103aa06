// move.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the Move representation and its validation against
// a Board: tile placement moves, pass, and exchange.

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

import "fmt"

// Coordinate is a board cell reference.
type Coordinate struct {
	Row, Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%s%s", rowIds[c.Row], colIds[c.Col])
}

// Cover is a single newly-placed tile: Letter is the rack tile's printed
// face (BlankLetter for a blank), Meaning is the letter it stands for, and
// Point is its face value (always 0 for a blank).
type Cover struct {
	Letter, Meaning rune
	Point           int
}

// Covers maps the coordinates newly covered by a move to the tile placed
// there.
type Covers map[Coordinate]Cover

// MoveKind distinguishes the three shapes a Move can take.
type MoveKind int

const (
	MoveTile MoveKind = iota
	MovePass
	MoveExchange
)

// Move is a candidate or committed play. Only TileMove fields are set for
// MoveTile; only ExchangeLetters for MoveExchange; neither for MovePass.
type Move struct {
	Kind                 MoveKind
	TopLeft, BottomRight Coordinate
	Covers               Covers
	Horizontal           bool
	Word                 string
	ExchangeLetters      []rune

	cachedScore *int
}

// NewPassMove returns a pass.
func NewPassMove() *Move { return &Move{Kind: MovePass} }

// NewExchangeMove returns an exchange of the given letters.
func NewExchangeMove(letters []rune) *Move {
	return &Move{Kind: MoveExchange, ExchangeLetters: letters}
}

// NewTileMove builds a MoveTile from a set of newly-covered coordinates. It
// computes the bounding box and orientation, and assembles Word by walking
// the board fragments adjoining the covered cells (covers are not yet
// placed on board; board is consulted only for already-locked neighbors).
func NewTileMove(board *Board, covers Covers) (*Move, error) {
	if len(covers) == 0 || len(covers) > RackSize {
		return nil, errInvalidPlacement("a move must cover between 1 and %d squares, got %d", RackSize, len(covers))
	}
	m := &Move{Kind: MoveTile, Covers: covers}
	first := true
	minRow, minCol, maxRow, maxCol := 0, 0, 0, 0
	sameRow, sameCol := true, true
	var anyRow, anyCol int
	for c := range covers {
		if board.Sq(c.Row, c.Col) == nil {
			return nil, errInvalidPlacement("covered square %v is off the board", c)
		}
		if board.TileAt(c.Row, c.Col) != nil {
			return nil, errInvalidPlacement("covered square %v is already occupied", c)
		}
		if first {
			minRow, minCol, maxRow, maxCol = c.Row, c.Col, c.Row, c.Col
			anyRow, anyCol = c.Row, c.Col
			first = false
		} else {
			if c.Row < minRow {
				minRow = c.Row
			}
			if c.Row > maxRow {
				maxRow = c.Row
			}
			if c.Col < minCol {
				minCol = c.Col
			}
			if c.Col > maxCol {
				maxCol = c.Col
			}
			if c.Row != anyRow {
				sameRow = false
			}
			if c.Col != anyCol {
				sameCol = false
			}
		}
	}
	if !sameRow && !sameCol {
		return nil, errInvalidPlacement("covered squares are not collinear")
	}
	m.TopLeft = Coordinate{minRow, minCol}
	m.BottomRight = Coordinate{maxRow, maxCol}
	if len(covers) == 1 {
		// Orientation of a single-tile play is decided by which side has an
		// adjoining run of locked tiles, preferring horizontal if both or
		// neither exist.
		r, c := anyRow, anyCol
		hasHoriz := adjoins(board, r, c, true)
		hasVert := adjoins(board, r, c, false)
		m.Horizontal = hasHoriz || !hasVert
	} else {
		m.Horizontal = sameRow
	}

	word, err := m.assembleWord(board)
	if err != nil {
		return nil, err
	}
	m.Word = word
	return m, nil
}

// adjoins reports whether board has a locked tile immediately adjoining
// (r, c) along the given orientation.
func adjoins(board *Board, r, c int, horizontal bool) bool {
	dir1, dir2 := Left, Right
	if !horizontal {
		dir1, dir2 = Above, Below
	}
	sq1 := board.Adjacents[r][c][dir1]
	sq2 := board.Adjacents[r][c][dir2]
	return (sq1 != nil && sq1.Tile != nil) || (sq2 != nil && sq2.Tile != nil)
}

// assembleWord walks the move's bounding line, combining this move's
// Covers with any already-locked board tiles, and returns the full word
// formed, extended through any locked run immediately before TopLeft or
// after BottomRight. Returns KindInvalidPlacement if a gap (neither covered
// nor locked) is found within the line.
func (m *Move) assembleWord(board *Board) (string, error) {
	var main []rune
	r, c := m.TopLeft.Row, m.TopLeft.Col
	for {
		if cover, ok := m.Covers[Coordinate{r, c}]; ok {
			main = append(main, cover.Meaning)
		} else if t := board.TileAt(r, c); t != nil {
			main = append(main, t.Meaning)
		} else {
			return "", errInvalidPlacement("gap at %v in the line of play", Coordinate{r, c})
		}
		if r == m.BottomRight.Row && c == m.BottomRight.Col {
			break
		}
		if m.Horizontal {
			c++
		} else {
			r++
		}
	}

	var prefix, suffix []rune
	pr, pc := m.TopLeft.Row, m.TopLeft.Col
	for {
		var sq *Square
		if m.Horizontal {
			sq = board.Adjacents[pr][pc][Left]
		} else {
			sq = board.Adjacents[pr][pc][Above]
		}
		if sq == nil || sq.Tile == nil {
			break
		}
		prefix = append([]rune{sq.Tile.Meaning}, prefix...)
		pr, pc = sq.Row, sq.Col
	}
	sr, sc := m.BottomRight.Row, m.BottomRight.Col
	for {
		var sq *Square
		if m.Horizontal {
			sq = board.Adjacents[sr][sc][Right]
		} else {
			sq = board.Adjacents[sr][sc][Below]
		}
		if sq == nil || sq.Tile == nil {
			break
		}
		suffix = append(suffix, sq.Tile.Meaning)
		sr, sc = sq.Row, sq.Col
	}
	return string(prefix) + string(main) + string(suffix), nil
}

func (m *Move) String() string {
	switch m.Kind {
	case MovePass:
		return "(pass)"
	case MoveExchange:
		return fmt.Sprintf("(exchange %s)", string(m.ExchangeLetters))
	default:
		return fmt.Sprintf("%s at %v", m.Word, m.TopLeft)
	}
}
