// alphabet.go
//
// This file defines the Tile, Alphabet and Language types from the data
// model: the letter inventory a Language is built from, and the physical
// tile type that flows between TileBag, Rack and Board.

package lexengine

import "strings"

// LetterKind classifies a letter for the computer policy's vowel/consonant
// balancing heuristic. The blank has KindUndefined.
type LetterKind int

const (
	KindUndefined LetterKind = iota
	KindVowel
	KindConsonant
)

// BlankLetter is the rune used to represent a blank tile before it has been
// assigned a meaning.
const BlankLetter = '?'

// LetterInfo describes one letter's presence in a Language: how many tiles
// of it exist in a full set, its face value, and its kind.
type LetterInfo struct {
	Count     int
	Point     int
	Kind      LetterKind
	Frequency float64
}

// Alphabet is the full letter inventory of a Language, including the blank
// (keyed by BlankLetter, Kind always KindUndefined, Point always 0).
type Alphabet struct {
	letters map[rune]LetterInfo
	order   []rune // insertion order, used for deterministic iteration
}

// NewAlphabet builds an Alphabet from a letter->LetterInfo map, validating
// the invariant that blanks carry no point value.
func NewAlphabet(letters map[rune]LetterInfo) (*Alphabet, error) {
	a := &Alphabet{letters: make(map[rune]LetterInfo, len(letters))}
	// Deterministic order: all runes, BlankLetter included, are sorted
	// ascending, since the caller's map has no stable order of its own.
	keys := make([]rune, 0, len(letters))
	for r := range letters {
		keys = append(keys, r)
	}
	sortRunes(keys)
	for _, r := range keys {
		info := letters[r]
		if r == BlankLetter && info.Point != 0 {
			return nil, errEngineFault("blank letter must have point value 0, got %d", info.Point)
		}
		a.letters[r] = info
		a.order = append(a.order, r)
	}
	return a, nil
}

func sortRunes(rs []rune) {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && rs[j-1] > rs[j]; j-- {
			rs[j-1], rs[j] = rs[j], rs[j-1]
		}
	}
}

// Member reports whether r is a known letter of this alphabet (including the
// blank).
func (a *Alphabet) Member(r rune) bool {
	_, ok := a.letters[r]
	return ok
}

// Info returns the LetterInfo for r, or (_, false) if r is unknown.
func (a *Alphabet) Info(r rune) (LetterInfo, bool) {
	info, ok := a.letters[r]
	return info, ok
}

// Letters returns the alphabet's letters (excluding the blank) in
// deterministic order.
func (a *Alphabet) Letters() []rune {
	out := make([]rune, 0, len(a.order))
	for _, r := range a.order {
		if r != BlankLetter {
			out = append(out, r)
		}
	}
	return out
}

// String renders the alphabet as a sorted letter string, for logging.
func (a *Alphabet) String() string {
	var sb strings.Builder
	for _, r := range a.order {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Language bundles an Alphabet with the URI of its DAWG binary, per the
// data model: "Language = Alphabet + URI of DAWG binary".
type Language struct {
	Name     string
	Alphabet *Alphabet
	DawgURI  string
	Lexicon  *Lexicon
}

// Tile is a single physical Scrabble tile, per spec §3.
//
// Invariant: IsBlank ⇒ Point == 0.
type Tile struct {
	Letter   rune // the tile's printed face; BlankLetter for an unassigned blank
	Meaning  rune // the letter this tile stands for once placed (== Letter unless blank)
	Point    int
	IsBlank  bool
	IsLocked bool
	Row      int
	Col      int
}

// NewTile constructs a Tile for letter drawn from alphabet a. Returns
// KindUnknownLetter if letter is not a member of a.
func NewTile(a *Alphabet, letter rune) (*Tile, error) {
	info, ok := a.Info(letter)
	if !ok {
		return nil, errUnknownLetter("letter %q not in alphabet", letter)
	}
	t := &Tile{Letter: letter, Meaning: letter, Point: info.Point}
	if letter == BlankLetter {
		t.IsBlank = true
		t.Point = 0
	}
	return t, nil
}

// Assign gives a blank tile a meaning. It is a no-op (returns an error) on a
// non-blank tile.
func (t *Tile) Assign(meaning rune) error {
	if !t.IsBlank {
		return errInvalidPlacement("tile %q is not a blank, cannot assign a meaning", t.Letter)
	}
	t.Meaning = meaning
	return nil
}

func (t *Tile) String() string {
	if t.IsBlank {
		return string(t.Meaning) + "*"
	}
	return string(t.Meaning)
}
