// bag.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the TileBag: the multiset of undrawn tiles for a
// game, plus the disjoint pick_for_order pool used to decide play order
// without touching the bag.

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

import "math/rand/v2"

// TileSet describes the full tile inventory of a Language: how many tiles
// of each letter a fresh bag starts with.
type TileSet struct {
	Counts map[rune]int
	Scores map[rune]int
}

// NewTileSet builds a TileSet, validating that every letter is a member of
// alphabet.
func NewTileSet(alphabet *Alphabet, counts map[rune]int) (*TileSet, error) {
	scores := make(map[rune]int, len(counts))
	for r, n := range counts {
		info, ok := alphabet.Info(r)
		if !ok {
			return nil, errUnknownLetter("tile set letter %q not in alphabet", r)
		}
		if n < 0 {
			return nil, errEngineFault("tile set count for %q is negative: %d", r, n)
		}
		scores[r] = info.Point
	}
	return &TileSet{Counts: counts, Scores: scores}, nil
}

// TileBag is the per-game undrawn-tile pool (spec §3/§4.2).
//
// Invariant: Remaining() equals the sum of per-letter counts still held in
// slots.
type TileBag struct {
	alphabet *Alphabet
	slots    []rune // one entry per undrawn tile

	// pickPool is the disjoint pool used by PickForOrder: every letter
	// still eligible to be drawn for order selection, independent of
	// slots. It is seeded with one of each non-blank letter and never
	// mutates slots or Remaining.
	pickPool []rune
}

// NewTileBag builds a full TileBag from a TileSet.
func NewTileBag(alphabet *Alphabet, ts *TileSet) *TileBag {
	b := &TileBag{alphabet: alphabet}
	for r, n := range ts.Counts {
		for i := 0; i < n; i++ {
			b.slots = append(b.slots, r)
		}
		if r != BlankLetter {
			b.pickPool = append(b.pickPool, r)
		}
	}
	return b
}

// Remaining returns the number of tiles left undrawn.
func (b *TileBag) Remaining() int { return len(b.slots) }

// DrawRandom removes and returns one tile, chosen with probability
// proportional to its remaining count. This falls out automatically from
// storing one slot per physical tile rather than a compact per-letter
// count, the way the teacher's Bag.DrawTile does. Returns KindExhausted if
// the bag is empty.
func (b *TileBag) DrawRandom() (*Tile, error) {
	if len(b.slots) == 0 {
		return nil, errExhausted("tile bag is empty")
	}
	i := rand.IntN(len(b.slots))
	letter := b.slots[i]
	b.slots[i] = b.slots[len(b.slots)-1]
	b.slots = b.slots[:len(b.slots)-1]
	return NewTile(b.alphabet, letter)
}

// PutBack returns a tile to the bag, used by the exchange hook.
func (b *TileBag) PutBack(t *Tile) {
	letter := t.Letter
	if t.IsBlank {
		letter = BlankLetter
	}
	b.slots = append(b.slots, letter)
}

// PickForOrder draws one letter, without replacement, from the disjoint
// order-selection pool; it never touches slots or Remaining(). Returns
// KindExhausted once every eligible letter has been drawn.
func (b *TileBag) PickForOrder() (rune, error) {
	if len(b.pickPool) == 0 {
		return 0, errExhausted("pick-for-order pool is empty")
	}
	i := rand.IntN(len(b.pickPool))
	letter := b.pickPool[i]
	b.pickPool[i] = b.pickPool[len(b.pickPool)-1]
	b.pickPool = b.pickPool[:len(b.pickPool)-1]
	return letter, nil
}

// ExchangeAllowed reports whether there are enough tiles left in the bag to
// permit an exchange hook.
func (b *TileBag) ExchangeAllowed() bool {
	return len(b.slots) >= RackSize
}

func (b *TileBag) String() string {
	return string(b.slots)
}
