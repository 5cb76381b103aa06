// board.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the Board and the Rack, together with their
// Squares and the Tiles that may occupy them.

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

import (
	"fmt"
	"strings"
)

const zero = int('0')

// BoardSize is the size of the Board.
const BoardSize = 15

// RackSize is the number of slots in a Rack.
const RackSize = 7

// Word multiplication factors on a standard board.
var wordMultipliersStandard = [BoardSize]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

// Letter multiplication factors on a standard board.
var letterMultipliersStandard = [BoardSize]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

// Word multiplication factors on an Explo board.
var wordMultipliersExplo = [BoardSize]string{
	"311111131111113",
	"111111112111111",
	"111111111211111",
	"111211111111111",
	"111121111111111",
	"111112111111211",
	"111111211111121",
	"311111121111113",
	"121111112111111",
	"112111111211111",
	"111111111121111",
	"111111111112111",
	"111112111111111",
	"111111211111111",
	"311111131111113",
}

// Letter multiplication factors on an Explo board.
var letterMultipliersExplo = [BoardSize]string{
	"111121111112111",
	"131112111111131",
	"112111311111211",
	"111111121131112",
	"211111111113111",
	"121111111211111",
	"113111112111111",
	"111211111112111",
	"111111211111311",
	"111112111111121",
	"111311111111112",
	"211131121111111",
	"112111113111211",
	"131111111211131",
	"111211111121111",
}

// colIds are the column identifiers of a board.
var colIds = [BoardSize]string{
	"1", "2", "3", "4", "5",
	"6", "7", "8", "9", "10",
	"11", "12", "13", "14", "15",
}

// rowIds are the row identifiers of a board.
var rowIds = [BoardSize]string{
	"A", "B", "C", "D", "E",
	"F", "G", "H", "I", "J",
	"L", "M", "N", "O", "P",
}

// Indices into AdjSquares.
const (
	Above = 0
	Left  = 1
	Right = 2
	Below = 3
)

// AdjSquares is a list of four Square pointers, nil where the
// corresponding adjacent Square does not exist.
type AdjSquares [4]*Square

// Square is a Board square that can hold a Tile.
type Square struct {
	Tile             *Tile
	LetterMultiplier int
	WordMultiplier   int
	Row              int
	Col              int
}

func (sq *Square) String() string {
	if sq.Tile == nil {
		return "."
	}
	if sq.Tile.IsBlank {
		return string(sq.Tile.Meaning)
	}
	return string(sq.Tile.Letter)
}

// IsEmpty reports whether this square holds no tile.
func (sq *Square) IsEmpty() bool { return sq.Tile == nil }

// Board represents the playing grid as a matrix of Squares, plus a cached
// adjacency matrix used by Fragment/CrossScore/CrossWords and the move
// generator's anchor scan.
type Board struct {
	Type      string // "standard" or "explo"
	Squares   [BoardSize][BoardSize]Square
	Adjacents [BoardSize][BoardSize]AdjSquares
	NumTiles  int
}

// NewBoard builds an empty board of the given type ("standard" or "explo").
func NewBoard(boardType string) (*Board, error) {
	var letterMultipliers, wordMultipliers *[BoardSize]string
	switch boardType {
	case "standard", "":
		letterMultipliers, wordMultipliers = &letterMultipliersStandard, &wordMultipliersStandard
		boardType = "standard"
	case "explo":
		letterMultipliers, wordMultipliers = &letterMultipliersExplo, &wordMultipliersExplo
	default:
		return nil, errEngineFault("unknown board type %q", boardType)
	}
	board := &Board{Type: boardType}
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			sq := board.Sq(i, j)
			sq.Row, sq.Col = i, j
			sq.LetterMultiplier = int(letterMultipliers[i][j]) - zero
			sq.WordMultiplier = int(wordMultipliers[i][j]) - zero
		}
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			adj := &board.Adjacents[row][col]
			if row > 0 {
				adj[Above] = board.Sq(row-1, col)
			}
			if row < BoardSize-1 {
				adj[Below] = board.Sq(row+1, col)
			}
			if col > 0 {
				adj[Left] = board.Sq(row, col-1)
			}
			if col < BoardSize-1 {
				adj[Right] = board.Sq(row, col+1)
			}
		}
	}
	return board, nil
}

// StartSquare returns the coordinate that must be covered by the opening
// play.
func (board *Board) StartSquare() (row, col int) { return BoardSize / 2, BoardSize / 2 }

// HasStartTile reports whether the board's start square is occupied.
func (board *Board) HasStartTile() bool {
	r, c := board.StartSquare()
	sq := board.Sq(r, c)
	return sq != nil && sq.Tile != nil
}

// Sq returns a pointer to a board square, or nil if out of bounds.
func (board *Board) Sq(row, col int) *Square {
	if board == nil || row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return nil
	}
	return &board.Squares[row][col]
}

// TileAt returns the tile at (row, col), or nil if empty/out of bounds.
func (board *Board) TileAt(row, col int) *Tile {
	sq := board.Sq(row, col)
	if sq == nil {
		return nil
	}
	return sq.Tile
}

// PlaceTile places tile at (row, col). Returns KindInvalidPlacement if the
// square is occupied or out of bounds. The placed tile is marked locked.
func (board *Board) PlaceTile(row, col int, tile *Tile) error {
	sq := board.Sq(row, col)
	if sq == nil {
		return errInvalidPlacement("square %d,%d is off the board", row, col)
	}
	if sq.Tile != nil {
		return errInvalidPlacement("square %d,%d is already occupied", row, col)
	}
	tile.Row, tile.Col, tile.IsLocked = row, col, true
	sq.Tile = tile
	board.NumTiles++
	return nil
}

func (board *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(fmt.Sprintf("%2s ", colIds[i]))
	}
	sb.WriteString("\n")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(fmt.Sprintf("%s ", rowIds[i]))
		for j := 0; j < BoardSize; j++ {
			sb.WriteString(fmt.Sprintf(" %v ", board.Sq(i, j)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// NumAdjacentTiles returns the number of tiles on the board adjacent to the
// given coordinate.
func (board *Board) NumAdjacentTiles(row, col int) int {
	count := 0
	for _, sq := range board.Adjacents[row][col] {
		if sq != nil && sq.Tile != nil {
			count++
		}
	}
	return count
}

// Fragment returns the run of tiles extending from (row, col) in the given
// direction, not including the square itself.
func (board *Board) Fragment(row, col, direction int) []*Tile {
	if row < 0 || col < 0 || row >= BoardSize || col >= BoardSize {
		return nil
	}
	if direction < Above || direction > Below {
		return nil
	}
	var frag []*Tile
	for {
		sq := board.Adjacents[row][col][direction]
		if sq == nil || sq.Tile == nil {
			break
		}
		frag = append(frag, sq.Tile)
		row, col = sq.Row, sq.Col
	}
	return frag
}

// WordFragment returns the word formed by the tile run emanating from
// (row, col) in the given direction, not including the square itself.
func (board *Board) WordFragment(row, col, direction int) (result string) {
	frag := board.Fragment(row, col, direction)
	if direction == Left || direction == Above {
		for _, tile := range frag {
			result = string(tile.Meaning) + result
		}
	} else {
		for _, tile := range frag {
			result += string(tile.Meaning)
		}
	}
	return
}

// CrossScore returns the sum of the scores of the tiles crossing the given
// square, either horizontally or vertically.
func (board *Board) CrossScore(row, col int, horizontal bool) (hasCrossing bool, score int) {
	dir1, dir2 := Left, Right
	if !horizontal {
		dir1, dir2 = Above, Below
	}
	for _, tile := range board.Fragment(row, col, dir1) {
		score += tile.Point
		hasCrossing = true
	}
	for _, tile := range board.Fragment(row, col, dir2) {
		score += tile.Point
		hasCrossing = true
	}
	return
}

// CrossWords returns the word fragments on either side of (row, col),
// either left/right (horizontal) or above/below (vertical).
func (board *Board) CrossWords(row, col int, horizontal bool) (left, right string) {
	dir1, dir2 := Left, Right
	if !horizontal {
		dir1, dir2 = Above, Below
	}
	for _, tile := range board.Fragment(row, col, dir1) {
		left = string(tile.Meaning) + left
	}
	for _, tile := range board.Fragment(row, col, dir2) {
		right += string(tile.Meaning)
	}
	return
}

// Rack is an ordered sequence of up to RackSize tiles held by a player
// (spec §3). A nil slot is empty.
type Rack struct {
	Slots [RackSize]*Tile
}

// NewRack returns an empty rack.
func NewRack() *Rack { return &Rack{} }

// Count returns the number of occupied slots.
func (rack *Rack) Count() int {
	n := 0
	for _, t := range rack.Slots {
		if t != nil {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the rack holds no tiles.
func (rack *Rack) IsEmpty() bool { return rack.Count() == 0 }

// Add places tile in the first empty slot. Returns KindEngineFault if the
// rack is already full (callers must check capacity before drawing).
func (rack *Rack) Add(tile *Tile) error {
	for i, t := range rack.Slots {
		if t == nil {
			rack.Slots[i] = tile
			return nil
		}
	}
	return errEngineFault("rack is full, cannot add tile %v", tile)
}

// Remove takes one tile matching letter out of the rack (a blank slot is
// matched by BlankLetter) and returns it. Returns KindInvalidPlacement if no
// matching tile is present.
func (rack *Rack) Remove(letter rune) (*Tile, error) {
	for i, t := range rack.Slots {
		if t != nil && t.Letter == letter {
			rack.Slots[i] = nil
			return t, nil
		}
	}
	return nil, errInvalidPlacement("rack does not contain tile %q", letter)
}

// HasTile reports whether the rack contains a tile with the given letter.
func (rack *Rack) HasTile(letter rune) bool {
	for _, t := range rack.Slots {
		if t != nil && t.Letter == letter {
			return true
		}
	}
	return false
}

// AsRunes returns the rack's letters (BlankLetter for blanks) in slot order,
// skipping empty slots.
func (rack *Rack) AsRunes() []rune {
	var out []rune
	for _, t := range rack.Slots {
		if t != nil {
			out = append(out, t.Letter)
		}
	}
	return out
}

func (rack *Rack) String() string { return string(rack.AsRunes()) }

// Fill draws tiles from the bag until the rack is full or the bag is
// empty. Returns the number of tiles drawn.
func (rack *Rack) Fill(bag *TileBag) int {
	drawn := 0
	for i, t := range rack.Slots {
		if t != nil {
			continue
		}
		tile, err := bag.DrawRandom()
		if err != nil {
			break
		}
		rack.Slots[i] = tile
		drawn++
	}
	return drawn
}

// ReturnToBag puts every tile in the rack back into the bag, emptying it.
func (rack *Rack) ReturnToBag(bag *TileBag) {
	for i, t := range rack.Slots {
		if t != nil {
			t.IsLocked = false
			bag.PutBack(t)
			rack.Slots[i] = nil
		}
	}
}
