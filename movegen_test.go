package lexengine

import (
	"context"
	"testing"
)

func rackFromLetters(t *testing.T, alphabet *Alphabet, letters string) *Rack {
	t.Helper()
	rack := NewRack()
	for _, r := range letters {
		tile, err := NewTile(alphabet, r)
		if err != nil {
			t.Fatalf("NewTile(%q): %v", r, err)
		}
		if err := rack.Add(tile); err != nil {
			t.Fatalf("rack.Add(%q): %v", r, err)
		}
	}
	return rack
}

func TestGenerateMovesOpeningCoversCenter(t *testing.T) {
	alphabet := testAlphabet(t)
	lex, err := BuildLexicon(testWords, alphabet)
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	board, err := NewBoard("standard")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	rack := rackFromLetters(t, alphabet, "cat")
	moves, err := GenerateMoves(context.Background(), board, rack, lex)
	if err != nil {
		t.Fatalf("GenerateMoves: %v", err)
	}
	if len(moves) == 0 {
		t.Fatal("GenerateMoves on an empty board with rack CAT returned no moves")
	}
	centerRow, centerCol := board.StartSquare()
	for _, mv := range moves {
		if mv.Word != "cat" {
			t.Errorf("opening move word = %q, want %q", mv.Word, "cat")
		}
		if _, covered := mv.Covers[Coordinate{centerRow, centerCol}]; !covered {
			t.Errorf("opening move %v does not cover the center square", mv)
		}
	}
}

// TestGenerateMovesSoundness checks property 6: every generated move is
// legal and its word is a lexicon member.
func TestGenerateMovesSoundness(t *testing.T) {
	alphabet := testAlphabet(t)
	lex, err := BuildLexicon(testWords, alphabet)
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	board, err := NewBoard("standard")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	opening := rackFromLetters(t, alphabet, "cat")
	moves, err := GenerateMoves(context.Background(), board, opening, lex)
	if err != nil || len(moves) == 0 {
		t.Fatalf("GenerateMoves: %v (len=%d)", err, len(moves))
	}
	best := moves[0]
	for _, c := range best.Covers {
		tile, err := NewTile(alphabet, c.Letter)
		if err != nil {
			t.Fatalf("NewTile: %v", err)
		}
		tile.Meaning = c.Meaning
		loc := coverCoordinate(best, c)
		if err := board.PlaceTile(loc.Row, loc.Col, tile); err != nil {
			t.Fatalf("PlaceTile: %v", err)
		}
	}

	rack2 := rackFromLetters(t, alphabet, "rse")
	moves2, err := GenerateMoves(context.Background(), board, rack2, lex)
	if err != nil {
		t.Fatalf("GenerateMoves (second rack): %v", err)
	}
	for _, mv := range moves2 {
		if !lex.HasWord(mv.Word) {
			t.Errorf("generated move word %q is not in the lexicon", mv.Word)
		}
		if len(mv.Covers) == 0 {
			t.Errorf("generated move %v covers no cells", mv)
		}
		if err := ValidateMove(board, lex, mv); err != nil {
			t.Errorf("generated move %v is not legal: %v", mv, err)
		}
	}
}

func coverCoordinate(mv *Move, target Cover) Coordinate {
	for coord, c := range mv.Covers {
		if c == target {
			return coord
		}
	}
	return Coordinate{}
}
