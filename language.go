// language.go
//
// The standard English Alphabet/TileSet, grounded on the teacher's
// bag.go initEnglishTileSet (the classic 100-tile English distribution).
// Spec.md's Language = Alphabet + DAWG URI is per-deployment; this gives
// cmd/lexsim and cmd/lexbuild a concrete Language to build one against
// without requiring an external configuration file.

package lexengine

var englishPoints = map[rune]int{
	'a': 1, 'b': 3, 'c': 3, 'd': 2, 'e': 1,
	'f': 4, 'g': 2, 'h': 4, 'i': 1, 'j': 8,
	'k': 5, 'l': 1, 'm': 3, 'n': 1, 'o': 1,
	'p': 3, 'q': 10, 'r': 1, 's': 1, 't': 1,
	'u': 1, 'v': 4, 'w': 4, 'x': 8, 'y': 4,
	'z': 10, BlankLetter: 0,
}

var englishCounts = map[rune]int{
	'a': 9, 'b': 2, 'c': 2, 'd': 4, 'e': 12,
	'f': 2, 'g': 3, 'h': 2, 'i': 9, 'j': 1,
	'k': 1, 'l': 4, 'm': 2, 'n': 6, 'o': 8,
	'p': 2, 'q': 1, 'r': 6, 's': 4, 't': 6,
	'u': 4, 'v': 2, 'w': 2, 'x': 1, 'y': 2,
	'z': 1, BlankLetter: 2,
}

var englishVowels = map[rune]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true}

// NewEnglishAlphabet returns the standard English Alphabet, with
// per-letter LetterInfo fully populated (count, point, kind, frequency).
func NewEnglishAlphabet() (*Alphabet, error) {
	total := 0
	for _, n := range englishCounts {
		total += n
	}
	letters := make(map[rune]LetterInfo, len(englishCounts))
	for r, n := range englishCounts {
		kind := KindConsonant
		if r == BlankLetter {
			kind = KindUndefined
		} else if englishVowels[r] {
			kind = KindVowel
		}
		letters[r] = LetterInfo{
			Count:     n,
			Point:     englishPoints[r],
			Kind:      kind,
			Frequency: float64(n) / float64(total),
		}
	}
	return NewAlphabet(letters)
}

// NewEnglishTileSet returns the TileSet matching NewEnglishAlphabet.
func NewEnglishTileSet(alphabet *Alphabet) (*TileSet, error) {
	return NewTileSet(alphabet, englishCounts)
}
