// policy.go
//
// The computer player's move-choosing policy (spec §4.5): GREEDY picks
// the generator's highest-scoring candidate, grounded on the teacher's
// robot.go HighScoreRobot. BALANCED has no teacher equivalent — it is
// built the same way (a Robot implementation selected on the Player's
// tagged variant) but scores immediate + strategic + gamma*future
// exactly per spec.

package lexengine

import (
	"context"

	"github.com/samber/lo"
)

// balancedGamma is the future-estimate weight used by BALANCED (spec
// §4.5: gamma = 0.8).
const balancedGamma = 0.8

// endgameBagThreshold below which BALANCED dampens its strategic weight.
const endgameBagThreshold = 20

// GameState is the minimal view of a running game a Robot needs to
// choose a move, grounded on the teacher's GameState (Dawg, TileSet,
// Board, Rack, exchangeForbidden).
type GameState struct {
	Lex             *Lexicon
	Board           *Board
	Rack            *Rack
	BagRemaining    int
	ExchangeAllowed bool
}

// Robot is a computer player's move-selection policy.
type Robot interface {
	Play(ctx context.Context, state *GameState) (*Move, error)
}

// PolicyKind names a built-in Robot strategy.
type PolicyKind int

const (
	GreedyPolicy PolicyKind = iota
	BalancedPolicy
)

// NewRobot returns the built-in Robot for kind.
func NewRobot(kind PolicyKind) Robot {
	if kind == BalancedPolicy {
		return BalancedRobot{}
	}
	return GreedyRobot{}
}

// GreedyRobot always plays the single highest-scoring candidate the
// generator returns, grounded on the teacher's HighScoreRobot.
type GreedyRobot struct{}

func (GreedyRobot) Play(ctx context.Context, state *GameState) (*Move, error) {
	moves, err := GenerateMoves(ctx, state.Board, state.Rack, state.Lex)
	if err != nil {
		return nil, err
	}
	if best := bestByScore(state.Board, moves); best != nil {
		return best, nil
	}
	return chooseExchangeOrPass(state), nil
}

func bestByScore(board *Board, moves []*Move) *Move {
	if len(moves) == 0 {
		return nil
	}
	return lo.MaxBy(moves, func(a, b *Move) bool {
		return ScoreMove(board, a) > ScoreMove(board, b)
	})
}

// BalancedRobot scores each candidate with immediate + strategic +
// gamma*future_estimate and plays the maximum (spec §4.5).
type BalancedRobot struct{}

func (BalancedRobot) Play(ctx context.Context, state *GameState) (*Move, error) {
	moves, err := GenerateMoves(ctx, state.Board, state.Rack, state.Lex)
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		return chooseExchangeOrPass(state), nil
	}
	best := lo.MaxBy(moves, func(a, b *Move) bool {
		return balancedValue(state, a) > balancedValue(state, b)
	})
	return best, nil
}

func balancedValue(state *GameState, mv *Move) float64 {
	if mv.Kind != MoveTile {
		return float64(ScoreMove(state.Board, mv))
	}
	immediate := float64(ScoreMove(state.Board, mv))
	return immediate + strategicValue(state, mv) + balancedGamma*futureEstimate(state, mv)
}

// strategicValue implements spec §4.5's five strategic components.
func strategicValue(state *GameState, mv *Move) float64 {
	s := 1.5 * float64(len(mv.Covers))
	if len(mv.Covers) == RackSize {
		s += 25
	}
	s -= 2.5 * float64(newlyExposedPremiums(state.Board, mv))
	s += positionHeuristic(state, mv)
	s -= rackLeavePenalty(state, mv)
	if state.BagRemaining < endgameBagThreshold {
		s *= 0.7
	}
	return s
}

// newlyExposedPremiums counts empty premium squares, not themselves
// covered by mv, that become adjacent to a newly placed tile.
func newlyExposedPremiums(board *Board, mv *Move) int {
	seen := map[Coordinate]bool{}
	for coord := range mv.Covers {
		for _, adj := range board.Adjacents[coord.Row][coord.Col] {
			if adj == nil || adj.Tile != nil {
				continue
			}
			if _, covered := mv.Covers[Coordinate{adj.Row, adj.Col}]; covered {
				continue
			}
			if adj.LetterMultiplier > 1 || adj.WordMultiplier > 1 {
				seen[Coordinate{adj.Row, adj.Col}] = true
			}
		}
	}
	return len(seen)
}

// positionHeuristic rewards plays that couple with existing tiles
// (forming a cross word) and vowels landing on letter-premium squares.
func positionHeuristic(state *GameState, mv *Move) float64 {
	var score float64
	for coord, cover := range mv.Covers {
		if hasCrossing, _ := state.Board.CrossScore(coord.Row, coord.Col, !mv.Horizontal); hasCrossing {
			score += 0.5
		}
		sq := state.Board.Sq(coord.Row, coord.Col)
		if info, ok := state.Lex.Alphabet().Info(cover.Meaning); ok && info.Kind == KindVowel && sq.LetterMultiplier > 1 {
			score += 0.3
		}
	}
	return score
}

// rackLeavePenalty penalizes the tiles remaining after mv: a lopsided
// vowel/consonant leave, duplicate consonants, and high-value tiles left
// unplayed (spec §4.5 point 4).
func rackLeavePenalty(state *GameState, mv *Move) float64 {
	leave := remainingRackRunes(state.Rack, mv)
	alphabet := state.Lex.Alphabet()
	vowels, _ := vowelConsonantCounts(alphabet, leave)

	var penalty float64
	if vowels >= 5 || vowels <= 1 {
		penalty += 6
	}
	consonantCounts := map[rune]int{}
	for _, r := range leave {
		if info, ok := alphabet.Info(r); ok && info.Kind == KindConsonant {
			consonantCounts[r]++
		}
	}
	for _, n := range consonantCounts {
		if n > 1 {
			penalty += float64(n-1) * 2
		}
	}
	for _, r := range leave {
		if info, ok := alphabet.Info(r); ok && info.Point >= 8 {
			penalty += 1.5
		}
	}
	return penalty
}

// futureEstimate projects the expected value of tiles drawn after mv,
// scaled by a vowel/consonant balance factor on the resulting rack leave
// (spec §4.5's future_estimate).
func futureEstimate(state *GameState, mv *Move) float64 {
	alphabet := state.Lex.Alphabet()
	observed := map[rune]int{}
	for _, r := range state.Rack.AsRunes() {
		observed[r]++
	}
	for i := range state.Board.Squares {
		for j := range state.Board.Squares[i] {
			if t := state.Board.Squares[i][j].Tile; t != nil {
				observed[t.Letter]++
			}
		}
	}

	var unseenTiles, unseenValue float64
	for _, letter := range alphabet.Letters() {
		info, _ := alphabet.Info(letter)
		remaining := info.Count - observed[letter]
		if remaining < 0 {
			remaining = 0
		}
		unseenTiles += float64(remaining)
		unseenValue += float64(remaining) * float64(info.Point)
	}
	if unseenTiles == 0 {
		return 0
	}
	expectedPerDraw := unseenValue / unseenTiles

	leave := remainingRackRunes(state.Rack, mv)
	vowels, consonants := vowelConsonantCounts(alphabet, leave)
	balance := 0.4
	if total := vowels + consonants; total > 0 {
		ratio := float64(vowels) / float64(total)
		switch {
		case ratio >= 0.3 && ratio <= 0.5:
			balance = 1.0
		case ratio >= 0.2 && ratio <= 0.6:
			balance = 0.7
		}
	}
	drawn := len(mv.Covers)
	if state.BagRemaining < drawn {
		drawn = state.BagRemaining
	}
	return expectedPerDraw * balance * float64(drawn)
}

func vowelConsonantCounts(alphabet *Alphabet, runes []rune) (vowels, consonants int) {
	for _, r := range runes {
		info, ok := alphabet.Info(r)
		if !ok {
			continue
		}
		switch info.Kind {
		case KindVowel:
			vowels++
		case KindConsonant:
			consonants++
		}
	}
	return
}

// remainingRackRunes returns the rack's letters after mv's covers (by
// face letter, so a consumed blank removes BlankLetter, not its meaning).
func remainingRackRunes(rack *Rack, mv *Move) []rune {
	remaining := append([]rune(nil), rack.AsRunes()...)
	if mv.Kind != MoveTile {
		return remaining
	}
	for _, cover := range mv.Covers {
		for i, r := range remaining {
			if r == cover.Letter {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return remaining
}

// chooseExchangeOrPass is the no-legal-move fallback (spec §4.5): rank
// rack tiles by sacrificability and exchange the top pick, or pass if no
// exchange is possible.
func chooseExchangeOrPass(state *GameState) *Move {
	if !state.ExchangeAllowed || state.Rack.IsEmpty() {
		return NewPassMove()
	}
	letter, ok := bestSacrifice(state)
	if !ok {
		return NewPassMove()
	}
	return NewExchangeMove([]rune{letter})
}

type sacrificeScore struct {
	letter rune
	score  float64
}

// bestSacrifice ranks rack letters high-frequency/low-point as most
// sacrificable, with S held back strongly and E mildly, per spec §4.5's
// verbal ranking.
func bestSacrifice(state *GameState) (rune, bool) {
	runes := state.Rack.AsRunes()
	if len(runes) == 0 {
		return 0, false
	}
	alphabet := state.Lex.Alphabet()
	scored := lo.Map(runes, func(r rune, _ int) sacrificeScore {
		info, _ := alphabet.Info(r)
		score := info.Frequency*2 - float64(info.Point)
		switch r {
		case 's':
			score -= 5
		case 'e':
			score -= 1
		}
		return sacrificeScore{letter: r, score: score}
	})
	best := lo.MaxBy(scored, func(a, b sacrificeScore) bool { return a.score > b.score })
	return best.letter, true
}
