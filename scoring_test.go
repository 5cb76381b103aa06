package lexengine

import "testing"

func coverFor(t *testing.T, alphabet *Alphabet, letter rune) Cover {
	t.Helper()
	info, ok := alphabet.Info(letter)
	if !ok {
		t.Fatalf("letter %q not in alphabet", letter)
	}
	return Cover{Letter: letter, Meaning: letter, Point: info.Point}
}

func TestScoreMoveOpeningPlay(t *testing.T) {
	alphabet := testAlphabet(t)
	lex, err := BuildLexicon(testWords, alphabet)
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	board, err := NewBoard("standard")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	row, _ := board.StartSquare()
	covers := Covers{
		{row, 6}: coverFor(t, alphabet, 'c'),
		{row, 7}: coverFor(t, alphabet, 'a'),
		{row, 8}: coverFor(t, alphabet, 't'),
	}
	mv, err := NewTileMove(board, covers)
	if err != nil {
		t.Fatalf("NewTileMove: %v", err)
	}
	if err := ValidateMove(board, lex, mv); err != nil {
		t.Fatalf("ValidateMove: %v", err)
	}
	if got, want := ScoreMove(board, mv), 10; got != want {
		t.Errorf("ScoreMove() = %d, want %d (center square doubles the 3+1+1 face value)", got, want)
	}
}

// TestValidateMoveRejectsUnknownWord covers S4: submitting an out-of-dictionary
// word must be rejected with LexiconReject and never silently scored.
func TestValidateMoveRejectsUnknownWord(t *testing.T) {
	alphabet := testAlphabet(t)
	lex, err := BuildLexicon(testWords, alphabet)
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	board, err := NewBoard("standard")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	row, _ := board.StartSquare()
	covers := Covers{
		{row, 6}: coverFor(t, alphabet, 'x'),
		{row, 7}: coverFor(t, alphabet, 'y'),
		{row, 8}: coverFor(t, alphabet, 'z'),
	}
	mv, err := NewTileMove(board, covers)
	if err != nil {
		t.Fatalf("NewTileMove: %v", err)
	}
	err = ValidateMove(board, lex, mv)
	if err == nil {
		t.Fatal("expected ValidateMove to reject an out-of-dictionary word")
	}
	eerr, ok := err.(*EngineError)
	if !ok || eerr.Kind != KindLexiconReject {
		t.Errorf("got error %v, want KindLexiconReject", err)
	}
}

func TestValidateMoveRequiresCenterSquareOnOpeningPlay(t *testing.T) {
	alphabet := testAlphabet(t)
	lex, err := BuildLexicon(testWords, alphabet)
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	board, err := NewBoard("standard")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	covers := Covers{
		{0, 0}: coverFor(t, alphabet, 'c'),
		{0, 1}: coverFor(t, alphabet, 'a'),
		{0, 2}: coverFor(t, alphabet, 't'),
	}
	mv, err := NewTileMove(board, covers)
	if err != nil {
		t.Fatalf("NewTileMove: %v", err)
	}
	err = ValidateMove(board, lex, mv)
	if err == nil {
		t.Fatal("expected ValidateMove to reject an opening play missing the center square")
	}
	if eerr, ok := err.(*EngineError); !ok || eerr.Kind != KindInvalidPlacement {
		t.Errorf("got error %v, want KindInvalidPlacement", err)
	}
}

func TestScoreMoveAppliesBingoBonus(t *testing.T) {
	alphabet := testAlphabet(t)
	board, err := NewBoard("standard")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	row, _ := board.StartSquare()
	letters := []rune{'c', 'a', 't', 's', 'c', 'a', 'r'}
	covers := Covers{}
	for i, r := range letters {
		covers[Coordinate{row, i}] = coverFor(t, alphabet, r)
	}
	mv, err := NewTileMove(board, covers)
	if err != nil {
		t.Fatalf("NewTileMove: %v", err)
	}
	score := ScoreMove(board, mv)
	if score <= BingoBonus {
		t.Errorf("ScoreMove() = %d, want more than the bingo bonus alone (%d)", score, BingoBonus)
	}
}
