package lexengine

import "testing"

func TestGetSequenceRoots(t *testing.T) {
	lex, err := BuildLexicon(testWords, testAlphabet(t))
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	if roots := lex.GetSequenceRoots("car"); len(roots) == 0 {
		t.Errorf("GetSequenceRoots(%q) returned no roots", "car")
	}
	if roots := lex.GetSequenceRoots("zzz"); len(roots) != 0 {
		t.Errorf("GetSequenceRoots(%q) = %d roots, want 0", "zzz", len(roots))
	}
}

func TestFindAnagrams(t *testing.T) {
	lex, err := BuildLexicon(testWords, testAlphabet(t))
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	got := lex.FindAnagrams("tac")
	want := []string{"cat"}
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("FindAnagrams(%q) = %v, want %v", "tac", got, want)
	}
}

func TestFindAnagramsWithBlank(t *testing.T) {
	lex, err := BuildLexicon(testWords, testAlphabet(t))
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	got := lex.FindAnagrams("ca?")
	found := false
	for _, w := range got {
		if w == "cat" {
			found = true
		}
	}
	if !found {
		t.Errorf("FindAnagrams(%q) = %v, want it to include %q", "ca?", got, "cat")
	}
}

func TestFindHangmen(t *testing.T) {
	lex, err := BuildLexicon(testWords, testAlphabet(t))
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	got := lex.FindHangmen("c t")
	want := "cat"
	found := false
	for _, w := range got {
		if w == want {
			found = true
		}
	}
	if !found {
		t.Errorf("FindHangmen(%q) = %v, want it to include %q", "c t", got, want)
	}
}

func TestCrossSetAndLetterBit(t *testing.T) {
	lex, err := BuildLexicon(testWords, testAlphabet(t))
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	// "ca" + ? + "" must allow 't' and 'r' (cat, car) but not 'z'.
	mask := lex.CrossSet("ca", "")
	tBit, ok := lex.LetterBit('t')
	if !ok {
		t.Fatal("LetterBit('t') not found")
	}
	if mask&(1<<uint(tBit)) == 0 {
		t.Errorf("CrossSet(%q, %q) does not allow 't'", "ca", "")
	}
	rBit, ok := lex.LetterBit('r')
	if !ok {
		t.Fatal("LetterBit('r') not found")
	}
	if mask&(1<<uint(rBit)) == 0 {
		t.Errorf("CrossSet(%q, %q) does not allow 'r'", "ca", "")
	}
	zBit, ok := lex.LetterBit('z')
	if ok && mask&(1<<uint(zBit)) != 0 {
		t.Errorf("CrossSet(%q, %q) allows 'z', want excluded", "ca", "")
	}
}
