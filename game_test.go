package lexengine

import "testing"

func newTestGame(t *testing.T) *Game {
	t.Helper()
	alphabet := testAlphabet(t)
	ts, err := NewEnglishTileSet(alphabet)
	if err != nil {
		t.Fatalf("NewEnglishTileSet: %v", err)
	}
	lex, err := BuildLexicon(testWords, alphabet)
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	game, err := NewGame("test", lex, ts, "standard", nil, NewLogger("error"))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(game.Close)
	return game
}

func startedTwoPlayerGame(t *testing.T) (*Game, string, string) {
	t.Helper()
	game := newTestGame(t)
	idA, isAdminA, err := game.CreatePlayer(HumanPlayer, "Alice", nil)
	if err != nil {
		t.Fatalf("CreatePlayer(Alice): %v", err)
	}
	if !isAdminA {
		t.Fatalf("first player to join should be admin")
	}
	idB, isAdminB, err := game.CreatePlayer(HumanPlayer, "Bob", nil)
	if err != nil {
		t.Fatalf("CreatePlayer(Bob): %v", err)
	}
	if isAdminB {
		t.Fatalf("second player to join should not be admin")
	}
	if err := game.SetReady(idA); err != nil {
		t.Fatalf("SetReady(Alice): %v", err)
	}
	if err := game.SetReady(idB); err != nil {
		t.Fatalf("SetReady(Bob): %v", err)
	}
	if snap := game.Snapshot(); snap.State != PlayerOrderSelection {
		t.Fatalf("State after both ready = %v, want %v", snap.State, PlayerOrderSelection)
	}
	if _, err := game.RequestOrder(idA); err != nil {
		t.Fatalf("RequestOrder(Alice): %v", err)
	}
	if _, err := game.RequestOrder(idB); err != nil {
		t.Fatalf("RequestOrder(Bob): %v", err)
	}
	if snap := game.Snapshot(); snap.State != GameStarted {
		t.Fatalf("State after both ordered = %v, want %v", snap.State, GameStarted)
	}
	return game, idA, idB
}

func TestGameLobbyToOrderSelectionToStarted(t *testing.T) {
	game, idA, idB := startedTwoPlayerGame(t)
	snap := game.Snapshot()
	playing := 0
	for _, p := range snap.Players {
		if p.State == PlayerPlaying {
			playing++
		}
	}
	if playing != 1 {
		t.Errorf("GAME_STARTED snapshot has %d PLAYING players, want exactly 1", playing)
	}
	if snap.Players[0].ID != idA && snap.Players[0].ID != idB {
		t.Errorf("unexpected player id in snapshot: %s", snap.Players[0].ID)
	}
}

func TestSetReadyRejectsUnknownPlayer(t *testing.T) {
	game := newTestGame(t)
	err := game.SetReady("no-such-player")
	if err == nil {
		t.Fatal("expected SetReady to fail for an unknown player")
	}
	if eerr, ok := err.(*EngineError); !ok || eerr.Kind != KindNotFound {
		t.Errorf("got error %v, want KindNotFound", err)
	}
}

func TestGameTurnRotatesBetweenPlayersOnSkip(t *testing.T) {
	game, idA, idB := startedTwoPlayerGame(t)
	snap := game.Snapshot()
	first := currentPlayerID(snap)

	other := idA
	if first == idA {
		other = idB
	}

	if err := game.SkipTurn(first); err != nil {
		t.Fatalf("SkipTurn(%s): %v", first, err)
	}
	snap = game.Snapshot()
	if got := currentPlayerID(snap); got != other {
		t.Errorf("current player after one skip = %s, want %s", got, other)
	}
	if snap.Turn != 1 {
		t.Errorf("Turn after one skip = %d, want 1", snap.Turn)
	}
}

func TestSubmitRejectsWrongTurn(t *testing.T) {
	game, idA, idB := startedTwoPlayerGame(t)
	snap := game.Snapshot()
	first := currentPlayerID(snap)
	other := idA
	if first == idA {
		other = idB
	}

	_, err := game.Submit(other, []TileSubmission{{Letter: 'c', Meaning: 'c', Location: Coordinate{7, 7}}})
	if err == nil {
		t.Fatal("expected Submit to fail when called out of turn")
	}
	if eerr, ok := err.(*EngineError); !ok || eerr.Kind != KindTurnViolation {
		t.Errorf("got error %v, want KindTurnViolation", err)
	}
}

func TestSubmitRejectsBeforeGameStarted(t *testing.T) {
	game := newTestGame(t)
	idA, _, err := game.CreatePlayer(HumanPlayer, "Alice", nil)
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	_, err = game.Submit(idA, []TileSubmission{{Letter: 'c', Meaning: 'c', Location: Coordinate{7, 7}}})
	if err == nil {
		t.Fatal("expected Submit to fail before the game has started")
	}
	if eerr, ok := err.(*EngineError); !ok || eerr.Kind != KindStateViolation {
		t.Errorf("got error %v, want KindStateViolation", err)
	}
}

// TestGameEndsWhenBothPlayersSkipTwice checks S6-style game-over detection:
// once every active player has skipped twice in a row, the game ends even
// with tiles left in the bag.
func TestGameEndsWhenBothPlayersSkipTwice(t *testing.T) {
	game, idA, idB := startedTwoPlayerGame(t)
	for i := 0; i < 4; i++ {
		snap := game.Snapshot()
		if snap.State != GameStarted {
			break
		}
		cur := currentPlayerID(snap)
		if err := game.SkipTurn(cur); err != nil {
			t.Fatalf("SkipTurn(%s) on round %d: %v", cur, i, err)
		}
	}
	snap := game.Snapshot()
	if snap.State != GameOver {
		t.Fatalf("State after 4 skips between two players = %v, want %v", snap.State, GameOver)
	}
	if len(snap.Players) != 2 || (snap.Players[0].ID != idA && snap.Players[0].ID != idB) {
		t.Errorf("unexpected players in final snapshot: %v", snap.Players)
	}
}

// TestKickCurrentPlayerOfTwoEndsGame checks that kicking the current player
// of a two-player game leaves one active player, which ends the game, and
// that only the kicked player is marked LOST.
func TestKickCurrentPlayerOfTwoEndsGame(t *testing.T) {
	game, idA, idB := startedTwoPlayerGame(t)
	snap := game.Snapshot()
	first := currentPlayerID(snap)
	other := idA
	if first == idA {
		other = idB
	}

	if err := game.Kick(first); err != nil {
		t.Fatalf("Kick(%s): %v", first, err)
	}
	snap = game.Snapshot()
	if snap.State != GameOver {
		t.Fatalf("State after kicking one of two players = %v, want %v (only one active player remains)", snap.State, GameOver)
	}
	for _, p := range snap.Players {
		if p.ID == first && p.State != PlayerLost {
			t.Errorf("kicked player state = %v, want %v", p.State, PlayerLost)
		}
		if p.ID == other && p.State == PlayerLost {
			t.Errorf("surviving player %s was unexpectedly marked LOST", other)
		}
	}
}

func TestQuitUnknownPlayerReturnsNotFound(t *testing.T) {
	game := newTestGame(t)
	err := game.Quit("ghost")
	if err == nil {
		t.Fatal("expected Quit to fail for an unknown player")
	}
	if eerr, ok := err.(*EngineError); !ok || eerr.Kind != KindNotFound {
		t.Errorf("got error %v, want KindNotFound", err)
	}
}

func TestCreatePlayerRejectedOnceOrderSelectionStarts(t *testing.T) {
	game, _, _ := startedTwoPlayerGame(t)
	_, _, err := game.CreatePlayer(HumanPlayer, "Carol", nil)
	if err == nil {
		t.Fatal("expected CreatePlayer to fail once the lobby has closed")
	}
	if eerr, ok := err.(*EngineError); !ok || eerr.Kind != KindStateViolation {
		t.Errorf("got error %v, want KindStateViolation", err)
	}
}

func TestRefereeReceivesEveryPlayerRack(t *testing.T) {
	alphabet := testAlphabet(t)
	ts, err := NewEnglishTileSet(alphabet)
	if err != nil {
		t.Fatalf("NewEnglishTileSet: %v", err)
	}
	lex, err := BuildLexicon(testWords, alphabet)
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	bc := NewChannelBroadcaster()
	game, err := NewGame("test-referee", lex, ts, "standard", bc, NewLogger("error"))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(game.Close)

	refCh := bc.Subscribe("referee-1", 64)
	t.Cleanup(func() { bc.Unsubscribe("referee-1") })
	if err := game.RegisterReferee("referee-1"); err != nil {
		t.Fatalf("RegisterReferee: %v", err)
	}

	idA, isAdminA, err := game.CreatePlayer(HumanPlayer, "Alice", nil)
	if err != nil {
		t.Fatalf("CreatePlayer(Alice): %v", err)
	}
	if !isAdminA {
		t.Fatalf("first player to join should be admin")
	}
	if _, _, err := game.CreatePlayer(HumanPlayer, "Bob", nil); err != nil {
		t.Fatalf("CreatePlayer(Bob): %v", err)
	}

	// Every broadcast sends the referee one update-racks per player: one
	// after Alice joins, two after Bob joins.
	racksSeen := 0
drain:
	for {
		select {
		case bc := <-refCh:
			if bc.Kind == UpdateRacks && bc.GameID == "test-referee" {
				racksSeen++
			}
		default:
			break drain
		}
	}
	if racksSeen != 3 {
		t.Fatalf("referee received %d update-racks broadcasts, want 3 (every player's rack on each broadcast)", racksSeen)
	}
	_ = idA

	game.UnregisterReferee("referee-1")
}

func currentPlayerID(snap GameSnapshot) string {
	for _, p := range snap.Players {
		if p.State == PlayerPlaying {
			return p.ID
		}
	}
	return ""
}
