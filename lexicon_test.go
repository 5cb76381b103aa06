package lexengine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testAlphabet(t *testing.T) *Alphabet {
	t.Helper()
	a, err := NewEnglishAlphabet()
	if err != nil {
		t.Fatalf("NewEnglishAlphabet: %v", err)
	}
	return a
}

var testWords = []string{
	"cat", "cats", "car", "care", "cart", "dog", "dogs", "do",
}

func TestBuildLexiconHasWord(t *testing.T) {
	lex, err := BuildLexicon(testWords, testAlphabet(t))
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	cases := []struct {
		word string
		want bool
	}{
		{"cat", true}, {"cats", true}, {"car", true}, {"care", true},
		{"cart", true}, {"dog", true}, {"dogs", true}, {"do", true},
		{"ca", false}, {"care1", false}, {"xyz", false}, {"", false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, lex.HasWord(c.word), "HasWord(%q)", c.word)
	}
}

// TestHasSequence checks property 1: every 3-letter subsequence of every
// input word is found by HasSequence.
func TestHasSequence(t *testing.T) {
	lex, err := BuildLexicon(testWords, testAlphabet(t))
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	for _, w := range testWords {
		rs := []rune(w)
		for i := 0; i+3 <= len(rs); i++ {
			seq := string(rs[i : i+3])
			if !lex.HasSequence(seq) {
				t.Errorf("HasSequence(%q) = false, want true (from word %q)", seq, w)
			}
		}
	}
}

// TestEncodeDecodeRoundTrip checks property 2: building, encoding,
// decoding, and querying must yield identical results.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	alphabet := testAlphabet(t)
	lex, err := BuildLexicon(testWords, alphabet)
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	var buf bytes.Buffer
	if err := lex.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := DecodeLexicon(&buf, alphabet)
	if err != nil {
		t.Fatalf("DecodeLexicon: %v", err)
	}
	if decoded.NodeCount() != lex.NodeCount() {
		t.Errorf("NodeCount after round-trip = %d, want %d", decoded.NodeCount(), lex.NodeCount())
	}
	for _, w := range testWords {
		if !decoded.HasWord(w) {
			t.Errorf("decoded lexicon HasWord(%q) = false, want true", w)
		}
	}
	if decoded.HasWord("notaword") {
		t.Errorf("decoded lexicon HasWord(%q) = true, want false", "notaword")
	}
}

func TestDecodeLexiconRejectsTruncatedInput(t *testing.T) {
	_, err := DecodeLexicon(bytes.NewReader([]byte{0, 0}), testAlphabet(t))
	if err == nil {
		t.Fatal("expected an error decoding a truncated buffer")
	}
	eerr, ok := err.(*EngineError)
	if !ok || eerr.Kind != KindCorruptDictionary {
		t.Errorf("got error %v, want KindCorruptDictionary", err)
	}
}
