// scoring.go
//
// Board scoring and move validation against the lexicon (spec §4.3):
// score_play (letter/word multipliers apply only to newly-placed tiles,
// never re-triggered on already-locked squares) and calculate_points (the
// public entry that validates dictionary membership before scoring).
//
// Grounded on the teacher's move.go TileMove.Score(), whose logic already
// implements the no-premium-retrigger rule this spec requires: covered
// squares get multipliers and cross-scores, already-locked squares
// contribute only their face value.

package lexengine

// BingoBonus is the extra score awarded for using an entire rack in one
// play.
const BingoBonus = 50

// ValidateMove checks a MoveTile for legality: the opening play must cover
// the board's center square, later plays must adjoin an existing tile, and
// the main word plus every newly-formed cross word must be in the lexicon.
func ValidateMove(board *Board, lex *Lexicon, move *Move) error {
	if move.Kind != MoveTile {
		return nil
	}
	if board.NumTiles == 0 {
		r, c := board.StartSquare()
		if _, covered := move.Covers[Coordinate{r, c}]; !covered {
			return errInvalidPlacement("opening play must cover the start square")
		}
	} else {
		touches := false
		for coord := range move.Covers {
			if board.NumAdjacentTiles(coord.Row, coord.Col) > 0 {
				touches = true
				break
			}
		}
		// A multi-tile play that extends an existing word also counts as
		// touching, even if every covered cell's immediate neighbors (other
		// than along the line of play) happen to be empty.
		if !touches && len(move.Word) > len(move.Covers) {
			touches = true
		}
		if !touches {
			return errInvalidPlacement("play does not adjoin any existing tile")
		}
	}

	if len(move.Word) < 2 && len(move.Covers) == 1 {
		// NewTileMove orients a single covered square along an adjoining
		// locked run when one exists, so a one-letter "word" here means no
		// locked neighbour at all; the HasWord check below rejects it.
	}
	if !lex.HasWord(move.Word) {
		return errLexiconReject("word %q is not in the dictionary", move.Word)
	}
	for coord, cover := range move.Covers {
		left, right := board.CrossWords(coord.Row, coord.Col, !move.Horizontal)
		if left == "" && right == "" {
			continue
		}
		cross := left + string(cover.Meaning) + right
		if !lex.HasWord(cross) {
			return errLexiconReject("cross word %q at %v is not in the dictionary", cross, coord)
		}
	}
	return nil
}

// ScoreMove computes a MoveTile's score: letter and word multipliers apply
// only to newly-covered squares; squares already occupied by a locked tile
// contribute only their tile's face value, with no multiplier re-applied.
// Cross words formed by newly-placed tiles are scored and added, each
// scaled by that tile's own word multiplier. A bingo bonus is added if the
// move uses a full rack's worth of tiles.
func ScoreMove(board *Board, move *Move) int {
	if move.Kind != MoveTile {
		return 0
	}
	if move.cachedScore != nil {
		return *move.cachedScore
	}

	mainScore := 0
	wordMultiplier := 1
	crossTotal := 0

	r, c := move.TopLeft.Row, move.TopLeft.Col
	endR, endC := move.BottomRight.Row, move.BottomRight.Col
	dr, dc := 0, 1
	if !move.Horizontal {
		dr, dc = 1, 0
	}
	// The main word also runs through any locked tiles directly before
	// TopLeft and after BottomRight.
	for sq := board.Sq(r-dr, c-dc); sq != nil && sq.Tile != nil; sq = board.Sq(r-dr, c-dc) {
		r, c = sq.Row, sq.Col
	}
	for sq := board.Sq(endR+dr, endC+dc); sq != nil && sq.Tile != nil; sq = board.Sq(endR+dr, endC+dc) {
		endR, endC = sq.Row, sq.Col
	}
	for {
		sq := board.Sq(r, c)
		if cover, covered := move.Covers[Coordinate{r, c}]; covered {
			letterScore := cover.Point
			mainScore += letterScore * sq.LetterMultiplier
			wordMultiplier *= sq.WordMultiplier
			if hasCrossing, crossScore := board.CrossScore(r, c, !move.Horizontal); hasCrossing {
				crossWordScore := (crossScore + letterScore*sq.LetterMultiplier) * sq.WordMultiplier
				crossTotal += crossWordScore
			}
		} else if sq.Tile != nil {
			mainScore += sq.Tile.Point
		}
		if r == endR && c == endC {
			break
		}
		if move.Horizontal {
			c++
		} else {
			r++
		}
	}

	total := mainScore*wordMultiplier + crossTotal
	if len(move.Covers) == RackSize {
		total += BingoBonus
	}
	move.cachedScore = &total
	return total
}
