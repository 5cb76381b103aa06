// movegen.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements move generation: given a Board and a Rack, find
// every legal MoveTile. Grounded in shape on the teacher's ExtendRight /
// LeftPermutation navigator pair, but built around this repo's inverted
// anchor convention (axis.go) and the Lexicon's PreNodes/PostNodes
// adjacency rather than a byte-buffer DAWG walk.
//
// For each anchor (a filled cell with an empty neighbour along the axis),
// the generator first matches the anchor's whole contiguous locked run
// ("pivotWord") from the lexicon root. back() then walks the first
// pivot letter's PreNodes/PreLetters to extend leftward into empty cells
// with rack tiles, consuming the rack via rackState; at every depth,
// including using no left extension, forwardFromPivot walks the pivot's
// end node's PostNodes/PostLetters to extend rightward past the run,
// emitting a Move wherever a node is a dictionary end-of-word and at
// least one new tile was placed. Opening plays on an empty board are
// handled separately by openingMoves, which matches through the centre
// square directly from the lexicon root.
//
// Per-axis searches run concurrently via errgroup, each with its own
// rackState snapshot, fanning results into a mutex-guarded dedup set.

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
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// rackState is a per-goroutine, mutable snapshot of a Rack's contents used
// while recursively trying placements; take/undo let the search backtrack
// without copying the whole rack at every step.
type rackState struct {
	alphabet *Alphabet
	counts   map[rune]int
	blanks   int
}

func newRackState(rack *Rack, alphabet *Alphabet) *rackState {
	rs := &rackState{alphabet: alphabet, counts: map[rune]int{}}
	for _, t := range rack.Slots {
		if t == nil {
			continue
		}
		if t.Letter == BlankLetter {
			rs.blanks++
		} else {
			rs.counts[t.Letter]++
		}
	}
	return rs
}

// take consumes one rack tile able to stand for dictionary letter r,
// preferring an exact letter over a blank. The returned undo restores the
// rack state for backtracking.
func (rs *rackState) take(r rune) (Cover, func(), bool) {
	if rs.counts[r] > 0 {
		rs.counts[r]--
		info, _ := rs.alphabet.Info(r)
		cover := Cover{Letter: r, Meaning: r, Point: info.Point}
		return cover, func() { rs.counts[r]++ }, true
	}
	if rs.blanks > 0 {
		rs.blanks--
		cover := Cover{Letter: BlankLetter, Meaning: r, Point: 0}
		return cover, func() { rs.blanks++ }, true
	}
	return Cover{}, nil, false
}

// GenerateMoves finds every legal MoveTile for rack against board, searching
// all 30 axes (15 rows, 15 columns) concurrently.
func GenerateMoves(ctx context.Context, board *Board, rack *Rack, lex *Lexicon) ([]*Move, error) {
	g, ctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	seen := map[string]bool{}
	var moves []*Move

	addMoves := func(found []*Move) {
		mu.Lock()
		defer mu.Unlock()
		for _, mv := range found {
			key := fmt.Sprintf("%v|%v|%s|%v", mv.TopLeft, mv.BottomRight, mv.Word, mv.Horizontal)
			if seen[key] {
				continue
			}
			seen[key] = true
			moves = append(moves, mv)
		}
	}

	if board.NumTiles == 0 {
		startRow, startCol := board.StartSquare()
		horizAxis := newAxis(board, lex, startRow, true)
		vertAxis := newAxis(board, lex, startCol, false)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			addMoves(openingMoves(horizAxis, startCol, lex, newRackState(rack, lex.Alphabet())))
			return nil
		})
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			addMoves(openingMoves(vertAxis, startRow, lex, newRackState(rack, lex.Alphabet())))
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return moves, nil
	}

	for i := 0; i < BoardSize; i++ {
		for _, horizontal := range []bool{true, false} {
			i, horizontal := i, horizontal
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				ax := newAxis(board, lex, i, horizontal)
				rs := newRackState(rack, lex.Alphabet())
				var found []*Move
				for _, anchor := range ax.anchors {
					found = append(found, generateFromAnchor(ax, anchor, lex, rs)...)
				}
				addMoves(found)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return moves, nil
}

// generateFromAnchor finds every move anchored at axis position anchorPos:
// a filled cell with at least one empty neighbour along the axis.
func generateFromAnchor(ax *axis, anchorPos int, lex *Lexicon, rs *rackState) []*Move {
	row, col := ax.cellCoord(anchorPos)
	beforeDir, afterDir := Left, Right
	if !ax.horizontal {
		beforeDir, afterDir = Above, Below
	}
	anchorTile := ax.board.TileAt(row, col)
	if anchorTile == nil {
		return nil
	}
	leftFrag := ax.board.WordFragment(row, col, beforeDir)
	rightFrag := ax.board.WordFragment(row, col, afterDir)
	pivotWord := leftFrag + string(anchorTile.Meaning) + rightFrag
	pivotStart := anchorPos - len([]rune(leftFrag))
	letters := []rune(pivotWord)

	n1 := lex.walk(lex.root.Child, letters[:1])
	if n1 == nil {
		return nil
	}
	var pivotEnd *LetterNode
	if len(letters) == 1 {
		pivotEnd = n1
	} else {
		pivotEnd = lex.walk(n1.Child, letters[1:])
	}
	if pivotEnd == nil {
		return nil
	}

	var moves []*Move
	var back func(node *LetterNode, pos int, leftCovers Covers)
	back = func(node *LetterNode, pos int, leftCovers Covers) {
		moves = append(moves, forwardFromPivot(ax, pivotEnd, pivotStart, len(letters), leftCovers, rs)...)
		if pos < 0 {
			return
		}
		r, c := ax.cellCoord(pos)
		if ax.board.TileAt(r, c) != nil {
			return
		}
		for i, preLetter := range node.PreLetters {
			preNode := node.PreNodes[i]
			if !ax.allows(pos, preLetter) {
				continue
			}
			cover, undo, ok := rs.take(preLetter)
			if !ok {
				continue
			}
			nc := cloneCovers(leftCovers)
			nc[Coordinate{r, c}] = cover
			back(preNode, pos-1, nc)
			undo()
		}
	}
	back(n1, pivotStart-1, Covers{})
	return moves
}

// forwardFromPivot extends rightward from node (the pivot run's end node)
// past position pivotStart+pivotLen, emitting a move at every dictionary
// end-of-word reached with at least one newly covered cell.
func forwardFromPivot(ax *axis, node *LetterNode, pivotStart, pivotLen int, leftCovers Covers, rs *rackState) []*Move {
	var moves []*Move
	var emit func(node *LetterNode, pos int, rightCovers Covers)
	emit = func(node *LetterNode, pos int, rightCovers Covers) {
		if node.IsEndOfWord && len(leftCovers)+len(rightCovers) > 0 {
			if mv := buildMove(ax, mergeCovers(leftCovers, rightCovers)); mv != nil {
				moves = append(moves, mv)
			}
		}
		if pos >= BoardSize {
			return
		}
		r, c := ax.cellCoord(pos)
		if ax.board.TileAt(r, c) != nil {
			return
		}
		for i, letter := range node.PostLetters {
			child := node.PostNodes[i]
			if !ax.allows(pos, letter) {
				continue
			}
			cover, undo, ok := rs.take(letter)
			if !ok {
				continue
			}
			nc := cloneCovers(rightCovers)
			nc[Coordinate{r, c}] = cover
			emit(child, pos+1, nc)
			undo()
		}
	}
	emit(node, pivotStart+pivotLen, Covers{})
	return moves
}

// openingMoves finds every move on an empty board that covers axis
// position startPos (the board's centre square projected onto this axis),
// trying every possible word start that could reach it within rack size.
func openingMoves(ax *axis, startPos int, lex *Lexicon, rs *rackState) []*Move {
	var moves []*Move
	minStart := startPos - RackSize + 1
	if minStart < 0 {
		minStart = 0
	}
	startCoord := func(pos int) Coordinate {
		r, c := ax.cellCoord(pos)
		return Coordinate{r, c}
	}
	for s := minStart; s <= startPos; s++ {
		var rec func(node *LetterNode, pos int, covers Covers)
		rec = func(node *LetterNode, pos int, covers Covers) {
			if node.IsEndOfWord {
				if _, ok := covers[startCoord(startPos)]; ok {
					if mv := buildMove(ax, covers); mv != nil {
						moves = append(moves, mv)
					}
				}
			}
			if pos >= BoardSize {
				return
			}
			for i, letter := range node.PostLetters {
				child := node.PostNodes[i]
				cover, undo, ok := rs.take(letter)
				if !ok {
					continue
				}
				nc := cloneCovers(covers)
				nc[startCoord(pos)] = cover
				rec(child, pos+1, nc)
				undo()
			}
		}
		rec(lex.root, s, Covers{})
	}
	return moves
}

func buildMove(ax *axis, covers Covers) *Move {
	mv, err := NewTileMove(ax.board, covers)
	if err != nil {
		return nil
	}
	return mv
}

func cloneCovers(c Covers) Covers {
	nc := make(Covers, len(c)+1)
	for k, v := range c {
		nc[k] = v
	}
	return nc
}

func mergeCovers(a, b Covers) Covers {
	nc := make(Covers, len(a)+len(b))
	for k, v := range a {
		nc[k] = v
	}
	for k, v := range b {
		nc[k] = v
	}
	return nc
}
