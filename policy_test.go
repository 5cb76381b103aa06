package lexengine

import (
	"context"
	"testing"
)

func TestGreedyRobotPlaysHighestScoringCandidate(t *testing.T) {
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
	state := &GameState{Lex: lex, Board: board, Rack: rack, BagRemaining: 50, ExchangeAllowed: true}

	mv, err := GreedyRobot{}.Play(context.Background(), state)
	if err != nil {
		t.Fatalf("GreedyRobot.Play: %v", err)
	}
	if mv.Kind != MoveTile {
		t.Fatalf("GreedyRobot.Play on an opening rack that can play CAT returned Kind=%v, want MoveTile", mv.Kind)
	}

	candidates, err := GenerateMoves(context.Background(), board, rack, lex)
	if err != nil {
		t.Fatalf("GenerateMoves: %v", err)
	}
	want := bestByScore(board, candidates)
	if ScoreMove(board, mv) != ScoreMove(board, want) {
		t.Errorf("GreedyRobot.Play score = %d, want the generator's best score %d", ScoreMove(board, mv), ScoreMove(board, want))
	}
}

func TestBalancedRobotProducesATileMove(t *testing.T) {
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
	state := &GameState{Lex: lex, Board: board, Rack: rack, BagRemaining: 50, ExchangeAllowed: true}

	mv, err := BalancedRobot{}.Play(context.Background(), state)
	if err != nil {
		t.Fatalf("BalancedRobot.Play: %v", err)
	}
	if mv == nil {
		t.Fatal("BalancedRobot.Play returned a nil move")
	}
	if mv.Kind != MoveTile {
		t.Errorf("BalancedRobot.Play Kind = %v, want MoveTile on an opening rack that can play CAT", mv.Kind)
	}
}

func TestChooseExchangeOrPassPassesWithExchangeForbidden(t *testing.T) {
	alphabet := testAlphabet(t)
	lex, err := BuildLexicon(testWords, alphabet)
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	rack := rackFromLetters(t, alphabet, "xyz")
	state := &GameState{Lex: lex, Rack: rack, BagRemaining: 3, ExchangeAllowed: false}

	mv := chooseExchangeOrPass(state)
	if mv.Kind != MovePass {
		t.Errorf("chooseExchangeOrPass with ExchangeAllowed=false returned Kind=%v, want MovePass", mv.Kind)
	}
}

func TestChooseExchangeOrPassExchangesWhenAllowed(t *testing.T) {
	alphabet := testAlphabet(t)
	lex, err := BuildLexicon(testWords, alphabet)
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	rack := rackFromLetters(t, alphabet, "xyz")
	state := &GameState{Lex: lex, Rack: rack, BagRemaining: 50, ExchangeAllowed: true}

	mv := chooseExchangeOrPass(state)
	if mv.Kind != MoveExchange {
		t.Errorf("chooseExchangeOrPass with ExchangeAllowed=true returned Kind=%v, want MoveExchange", mv.Kind)
	}
	if len(mv.ExchangeLetters) != 1 {
		t.Errorf("chooseExchangeOrPass exchange move has %d letters, want 1", len(mv.ExchangeLetters))
	}
}

func TestBestSacrificePicksFromRack(t *testing.T) {
	alphabet := testAlphabet(t)
	lex, err := BuildLexicon(testWords, alphabet)
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	rack := rackFromLetters(t, alphabet, "qzjx")
	state := &GameState{Lex: lex, Rack: rack}

	letter, ok := bestSacrifice(state)
	if !ok {
		t.Fatal("bestSacrifice returned ok=false with a non-empty rack")
	}
	found := false
	for _, r := range rack.AsRunes() {
		if r == letter {
			found = true
		}
	}
	if !found {
		t.Errorf("bestSacrifice returned %q, not a member of the rack", letter)
	}
}
