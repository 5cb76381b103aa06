// game.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the Game controller: the lobby -> order-selection
// -> turn-rotation -> game-over state machine and its hooks (spec §4.6).
// The teacher's Game only ever plays a fixed 2-player match with turn
// computed as len(MoveList)%2; this generalizes that turn-rotation
// arithmetic to N players and wraps it in a single-goroutine actor owning
// a message channel, grounded on the message-queue/handler-map pattern
// used by lobby-game controllers in the pack
// (jacobpatterson1549-selene-bananas controller.Game.run). The channel
// itself is the per-game lock SPEC_FULL.md §5 requires, with no explicit
// sync.Mutex.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package lexengine

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Lifecycle is a Game's state (spec §3/§4.6).
type Lifecycle int

const (
	Undefined Lifecycle = iota
	WaitingForPlayers
	PlayerOrderSelection
	GameStarted
	GameOver
)

func (l Lifecycle) String() string {
	switch l {
	case WaitingForPlayers:
		return "WAITING_FOR_PLAYERS"
	case PlayerOrderSelection:
		return "PLAYER_ORDER_SELECTION"
	case GameStarted:
		return "GAME_STARTED"
	case GameOver:
		return "GAME_OVER"
	default:
		return "UNDEFINED"
	}
}

// TileSubmission is one tile of a submit hook's placement: the rack
// tile's face (BlankLetter for a blank), the meaning it is assigned, and
// the board cell it covers (spec §6: "letter, location, tile identifier").
type TileSubmission struct {
	Letter   rune
	Meaning  rune
	Location Coordinate
}

// Game is one in-progress session: state machine, turn ordering, and the
// Board/TileBag/Lexicon it owns, mutated only on its own actor goroutine.
type Game struct {
	ID            string
	State         Lifecycle
	Players       []*Player
	CurrentPlayer int
	TurnCounter   int
	Bag           *TileBag
	Board         *Board
	Lex           *Lexicon
	Broadcaster   Broadcaster

	logger     zerolog.Logger
	finishedAt time.Time

	// refereeConnIDs are watch-only connections (spec §4.6 Observability:
	// "Referee connections receive every player's rack"); they never
	// appear in Players and hold no turn.
	refereeConnIDs []string

	messages chan gameRequest
	stop     chan struct{}
}

type gameRequest struct {
	op    func(g *Game) (interface{}, error)
	reply chan gameReply
}

type gameReply struct {
	result interface{}
	err    error
}

// NewGame builds a Game in WAITING_FOR_PLAYERS and starts its actor
// goroutine.
func NewGame(id string, lex *Lexicon, tileSet *TileSet, boardType string, broadcaster Broadcaster, logger zerolog.Logger) (*Game, error) {
	board, err := NewBoard(boardType)
	if err != nil {
		return nil, err
	}
	g := &Game{
		ID:          id,
		State:       WaitingForPlayers,
		Bag:         NewTileBag(lex.Alphabet(), tileSet),
		Board:       board,
		Lex:         lex,
		Broadcaster: broadcaster,
		logger:      logger.With().Str("game", id).Logger(),
		messages:    make(chan gameRequest),
		stop:        make(chan struct{}),
	}
	go g.run()
	return g, nil
}

// Close stops the game's actor goroutine. Pending calls fail with
// StateViolation.
func (g *Game) Close() { close(g.stop) }

func (g *Game) run() {
	for {
		select {
		case req := <-g.messages:
			result, err := req.op(g)
			req.reply <- gameReply{result, err}
		case <-g.stop:
			return
		}
	}
}

// call serializes op onto the actor goroutine and waits for its result;
// this is the only way hook implementations below touch Game state.
func (g *Game) call(op func(g *Game) (interface{}, error)) (interface{}, error) {
	reply := make(chan gameReply, 1)
	select {
	case g.messages <- gameRequest{op: op, reply: reply}:
	case <-g.stop:
		return nil, errStateViolation("game %s is closed", g.ID)
	}
	r := <-reply
	return r.result, r.err
}

// createPlayerResult is CreatePlayer's call() payload: the actor boundary
// only carries one interface{} value, so the (id, isAdmin) pair returned to
// join_game/create_game callers (spec §6) travels as a struct.
type createPlayerResult struct {
	id      string
	isAdmin bool
}

// CreatePlayer adds a player to the lobby (spec §6 create_game/join_game,
// collapsed to one hook since this engine creates a bare Game before any
// player exists). isAdmin is true for the first player to join, matching
// spec.md's "admin player_id"/"is_admin" result fields and original_source's
// PlayerPrivileges.ADMIN ("the player who creates the game").
func (g *Game) CreatePlayer(kind PlayerKind, name string, policy Robot) (id string, isAdmin bool, err error) {
	res, err := g.call(func(g *Game) (interface{}, error) { return g.createPlayer(kind, name, policy) })
	if err != nil {
		return "", false, err
	}
	r := res.(createPlayerResult)
	return r.id, r.isAdmin, nil
}

func (g *Game) createPlayer(kind PlayerKind, name string, policy Robot) (createPlayerResult, error) {
	if g.State != WaitingForPlayers {
		return createPlayerResult{}, errStateViolation("players can only join while %s", WaitingForPlayers)
	}
	id := fmt.Sprintf("p%d", len(g.Players)+1)
	isAdmin := len(g.Players) == 0
	var player *Player
	if kind == ComputerPlayer {
		player = NewComputerPlayer(id, name, policy)
		player.State = PlayerLobbyReady
	} else {
		player = NewHumanPlayer(id, name)
	}
	player.IsAdmin = isAdmin
	g.Players = append(g.Players, player)
	g.broadcast()
	return createPlayerResult{id: id, isAdmin: isAdmin}, nil
}

// RegisterReferee subscribes connID as a referee connection: spec §4.6's
// Observability line ("Referee connections receive every player's rack")
// and original_source's add_referee_sid, grounded on a watch-only
// connection that never becomes a Player. Every subsequent broadcast sends
// each player's rack to connID in addition to its owner.
func (g *Game) RegisterReferee(connID string) error {
	_, err := g.call(func(g *Game) (interface{}, error) { return nil, g.registerReferee(connID) })
	return err
}

func (g *Game) registerReferee(connID string) error {
	for _, id := range g.refereeConnIDs {
		if id == connID {
			return nil
		}
	}
	g.refereeConnIDs = append(g.refereeConnIDs, connID)
	return nil
}

// UnregisterReferee removes connID, the referee-side equivalent of a
// disconnect (spec §5 "Cancellation semantics": a disconnect affects only
// observability).
func (g *Game) UnregisterReferee(connID string) {
	g.call(func(g *Game) (interface{}, error) {
		for i, id := range g.refereeConnIDs {
			if id == connID {
				g.refereeConnIDs = append(g.refereeConnIDs[:i], g.refereeConnIDs[i+1:]...)
				break
			}
		}
		return nil, nil
	})
}

// SetReady marks playerID ready; once every player is ready the game
// enters PLAYER_ORDER_SELECTION.
func (g *Game) SetReady(playerID string) error {
	_, err := g.call(func(g *Game) (interface{}, error) { return nil, g.setReady(playerID) })
	return err
}

func (g *Game) setReady(playerID string) error {
	if g.State != WaitingForPlayers {
		return errStateViolation("game is not %s", WaitingForPlayers)
	}
	player := g.playerByID(playerID)
	if player == nil {
		return errNotFound("unknown player %s", playerID)
	}
	player.State = PlayerLobbyReady
	if g.allReady() {
		g.State = PlayerOrderSelection
	}
	g.broadcast()
	return nil
}

func (g *Game) allReady() bool {
	if len(g.Players) < 2 {
		return false
	}
	for _, p := range g.Players {
		if p.State != PlayerLobbyReady {
			return false
		}
	}
	return true
}

// RequestOrder draws playerID's play-order letter; once every player has
// one, the game starts (spec §4.6 turn rotation).
func (g *Game) RequestOrder(playerID string) (rune, error) {
	res, err := g.call(func(g *Game) (interface{}, error) { return g.requestOrder(playerID) })
	if err != nil {
		return 0, err
	}
	return res.(rune), nil
}

func (g *Game) requestOrder(playerID string) (rune, error) {
	if g.State != PlayerOrderSelection {
		return 0, errStateViolation("game is not %s", PlayerOrderSelection)
	}
	player := g.playerByID(playerID)
	if player == nil {
		return 0, errNotFound("unknown player %s", playerID)
	}
	if player.OrderLetter != 0 {
		return player.OrderLetter, nil
	}
	letter, err := g.Bag.PickForOrder()
	if err != nil {
		return 0, err
	}
	player.OrderLetter = letter
	if g.allOrdered() {
		g.startGame()
	}
	g.broadcast()
	return letter, nil
}

func (g *Game) allOrdered() bool {
	for _, p := range g.Players {
		if p.OrderLetter == 0 {
			return false
		}
	}
	return true
}

func (g *Game) startGame() {
	sort.Slice(g.Players, func(i, j int) bool {
		return g.Players[i].OrderLetter < g.Players[j].OrderLetter
	})
	for _, p := range g.Players {
		p.Rack.Fill(g.Bag)
		p.State = PlayerWaiting
	}
	g.Players[0].State = PlayerPlaying
	g.CurrentPlayer = 0
	g.State = GameStarted
	g.logger.Info().Msg("game started")
	g.maybeAutoPlay()
}

// Submit attempts to place tiles for playerID (spec §4.6 submit).
func (g *Game) Submit(playerID string, tiles []TileSubmission) (int, error) {
	res, err := g.call(func(g *Game) (interface{}, error) { return g.submit(playerID, tiles) })
	if err != nil {
		return 0, err
	}
	return res.(int), nil
}

func (g *Game) submit(playerID string, tiles []TileSubmission) (int, error) {
	if g.State != GameStarted {
		return 0, errStateViolation("game is not %s", GameStarted)
	}
	player := g.currentPlayerPtr()
	if player == nil || player.ID != playerID {
		return 0, errTurnViolation("it is not player %s's turn", playerID)
	}
	if len(tiles) == 0 {
		return 0, errInvalidPlacement("submit requires at least one tile")
	}
	covers := Covers{}
	held := map[rune]int{}
	for _, r := range player.Rack.AsRunes() {
		held[r]++
	}
	for _, t := range tiles {
		if held[t.Letter] == 0 {
			return 0, errInvalidPlacement("rack does not contain tile %q", t.Letter)
		}
		held[t.Letter]--
		covers[t.Location] = Cover{Letter: t.Letter, Meaning: t.Meaning, Point: pointFor(g.Lex.Alphabet(), t.Letter)}
	}
	mv, err := NewTileMove(g.Board, covers)
	if err != nil {
		return 0, err
	}
	if err := ValidateMove(g.Board, g.Lex, mv); err != nil {
		return 0, err
	}
	score := ScoreMove(g.Board, mv)

	for _, t := range tiles {
		tile, err := player.Rack.Remove(t.Letter)
		if err != nil {
			return 0, errEngineFault("rack desync removing %q: %v", t.Letter, err)
		}
		tile.Meaning = t.Meaning
		if err := g.Board.PlaceTile(t.Location.Row, t.Location.Col, tile); err != nil {
			return 0, errEngineFault("board desync placing %q at %v: %v", t.Letter, t.Location, err)
		}
	}
	player.Score += score
	player.SkipCount = 0
	player.Rack.Fill(g.Bag)
	g.logger.Info().Str("player", playerID).Str("word", mv.Word).Int("score", score).Msg("submit")
	g.afterMutation()
	return score, nil
}

func pointFor(alphabet *Alphabet, letter rune) int {
	if letter == BlankLetter {
		return 0
	}
	info, _ := alphabet.Info(letter)
	return info.Point
}

// SkipTurn passes playerID's turn (spec §4.6 skip).
func (g *Game) SkipTurn(playerID string) error {
	_, err := g.call(func(g *Game) (interface{}, error) { return nil, g.skip(playerID) })
	return err
}

func (g *Game) skip(playerID string) error {
	if g.State != GameStarted {
		return errStateViolation("game is not %s", GameStarted)
	}
	player := g.currentPlayerPtr()
	if player == nil || player.ID != playerID {
		return errTurnViolation("it is not player %s's turn", playerID)
	}
	player.SkipCount++
	g.logger.Info().Str("player", playerID).Msg("skip")
	g.afterMutation()
	return nil
}

// ExchangeLetter exchanges one rack tile for a fresh one drawn from the
// bag (spec §4.6 exchange; counts against skip_count).
func (g *Game) ExchangeLetter(playerID string, letter rune) error {
	_, err := g.call(func(g *Game) (interface{}, error) { return nil, g.exchange(playerID, letter) })
	return err
}

func (g *Game) exchange(playerID string, letter rune) error {
	if g.State != GameStarted {
		return errStateViolation("game is not %s", GameStarted)
	}
	player := g.currentPlayerPtr()
	if player == nil || player.ID != playerID {
		return errTurnViolation("it is not player %s's turn", playerID)
	}
	if !g.Bag.ExchangeAllowed() {
		return errExhausted("fewer than %d tiles remain; exchange is not allowed", RackSize)
	}
	tile, err := player.Rack.Remove(letter)
	if err != nil {
		return err
	}
	fresh, err := g.Bag.DrawRandom()
	if err != nil {
		player.Rack.Add(tile)
		return err
	}
	tile.IsLocked = false
	g.Bag.PutBack(tile)
	player.Rack.Add(fresh)
	player.SkipCount++
	g.logger.Info().Str("player", playerID).Str("letter", string(letter)).Msg("exchange")
	g.afterMutation()
	return nil
}

// RequestHint runs the generator against a synthetic rack built from
// letters, without mutating any state (spec §4.6 hint).
func (g *Game) RequestHint(ctx context.Context, playerID string, letters []rune) (*Move, error) {
	res, err := g.call(func(g *Game) (interface{}, error) { return g.hint(ctx, playerID, letters) })
	if err != nil {
		return nil, err
	}
	return res.(*Move), nil
}

func (g *Game) hint(ctx context.Context, playerID string, letters []rune) (*Move, error) {
	if g.State != GameStarted {
		return nil, errStateViolation("game is not %s", GameStarted)
	}
	if g.playerByID(playerID) == nil {
		return nil, errNotFound("unknown player %s", playerID)
	}
	synthetic := NewRack()
	for _, r := range letters {
		tile, err := NewTile(g.Lex.Alphabet(), r)
		if err != nil {
			return nil, err
		}
		if err := synthetic.Add(tile); err != nil {
			return nil, err
		}
	}
	moves, err := GenerateMoves(ctx, g.Board, synthetic, g.Lex)
	if err != nil {
		return nil, err
	}
	best := bestByScore(g.Board, moves)
	if best == nil {
		return nil, errNotFound("no legal move found for the given letters")
	}
	return best, nil
}

// Kick removes playerID from active play; a kick mid-turn synthesises a
// skip so rotation continues (spec §5 cancellation semantics).
func (g *Game) Kick(playerID string) error {
	_, err := g.call(func(g *Game) (interface{}, error) { return nil, g.kick(playerID) })
	return err
}

// Quit is the player-initiated equivalent of Kick (spec §6 quit_game).
func (g *Game) Quit(playerID string) error {
	_, err := g.call(func(g *Game) (interface{}, error) { return nil, g.kick(playerID) })
	return err
}

func (g *Game) kick(playerID string) error {
	player := g.playerByID(playerID)
	if player == nil {
		return errNotFound("unknown player %s", playerID)
	}
	wasPlaying := player.State == PlayerPlaying
	player.State = PlayerLost
	player.Rack.ReturnToBag(g.Bag)
	g.logger.Info().Str("player", playerID).Msg("left game")
	if wasPlaying && g.State == GameStarted {
		g.afterMutation()
	} else {
		g.broadcast()
	}
	return nil
}

// Snapshot returns the current observable state (used by cmd/lexserve and
// tests; the real broadcast path calls the unexported snapshot directly).
func (g *Game) Snapshot() GameSnapshot {
	res, _ := g.call(func(g *Game) (interface{}, error) { return g.snapshot(), nil })
	return res.(GameSnapshot)
}

// afterMutation runs the bookkeeping required after every mutating hook:
// check for game-over, else rotate the turn; broadcast either way; then
// let a computer player immediately move (spec §4.6).
func (g *Game) afterMutation() {
	if g.checkGameOver() {
		g.finish()
	} else {
		g.nextTurn()
	}
	g.broadcast()
	if g.State == GameStarted {
		g.maybeAutoPlay()
	}
}

func (g *Game) checkGameOver() bool {
	if g.activeCount() <= 1 {
		return true
	}
	anyRackEmpty := false
	allSkipped := true
	for _, p := range g.Players {
		if p.State == PlayerLost {
			continue
		}
		if p.Rack.IsEmpty() {
			anyRackEmpty = true
		}
		if p.SkipCount < 2 {
			allSkipped = false
		}
	}
	if g.Bag.Remaining() == 0 && anyRackEmpty {
		return true
	}
	return allSkipped
}

func (g *Game) activeCount() int {
	n := 0
	for _, p := range g.Players {
		if p.State != PlayerLost {
			n++
		}
	}
	return n
}

func (g *Game) finish() {
	g.State = GameOver
	g.finishedAt = time.Now()
	for _, p := range g.Players {
		if p.State != PlayerLost {
			p.State = PlayerWaiting
		}
	}
	if winner := g.winner(); winner != nil {
		winner.State = PlayerWon
	}
	g.logger.Info().Msg("game over")
}

// winner returns the active player with the highest score (spec S6).
func (g *Game) winner() *Player {
	var best *Player
	for _, p := range g.Players {
		if p.State == PlayerLost {
			continue
		}
		if best == nil || p.Score > best.Score {
			best = p
		}
	}
	return best
}

func (g *Game) nextTurn() {
	if cur := g.currentPlayerPtr(); cur != nil && cur.State == PlayerPlaying {
		cur.State = PlayerWaiting
	}
	n := len(g.Players)
	for i := 1; i <= n; i++ {
		idx := (g.CurrentPlayer + i) % n
		if g.Players[idx].State != PlayerLost {
			g.CurrentPlayer = idx
			g.Players[idx].State = PlayerPlaying
			g.TurnCounter++
			return
		}
	}
}

// maybeAutoPlay drives a computer player's turn immediately, repeating
// until a human holds PLAYING or the game ends (spec §4.6: "A computer
// player in PLAYING state computes its move immediately").
func (g *Game) maybeAutoPlay() {
	for {
		cur := g.currentPlayerPtr()
		if cur == nil || cur.Kind != ComputerPlayer || cur.State != PlayerPlaying {
			return
		}
		state := &GameState{
			Lex:             g.Lex,
			Board:           g.Board,
			Rack:            cur.Rack,
			BagRemaining:    g.Bag.Remaining(),
			ExchangeAllowed: g.Bag.ExchangeAllowed(),
		}
		mv, err := cur.Policy.Play(context.Background(), state)
		if err != nil {
			g.logger.Error().Err(err).Str("player", cur.ID).Msg("robot policy failed")
			g.skip(cur.ID)
			continue
		}
		switch mv.Kind {
		case MoveTile:
			if _, err := g.submit(cur.ID, submissionsFromMove(mv)); err != nil {
				g.logger.Error().Err(err).Str("player", cur.ID).Msg("robot move rejected")
				g.skip(cur.ID)
			}
		case MoveExchange:
			if err := g.exchange(cur.ID, mv.ExchangeLetters[0]); err != nil {
				g.skip(cur.ID)
			}
		default:
			g.skip(cur.ID)
		}
		if g.State != GameStarted {
			return
		}
	}
}

func submissionsFromMove(mv *Move) []TileSubmission {
	subs := make([]TileSubmission, 0, len(mv.Covers))
	for coord, cover := range mv.Covers {
		subs = append(subs, TileSubmission{Letter: cover.Letter, Meaning: cover.Meaning, Location: coord})
	}
	return subs
}

func (g *Game) currentPlayerPtr() *Player {
	if g.CurrentPlayer < 0 || g.CurrentPlayer >= len(g.Players) {
		return nil
	}
	return g.Players[g.CurrentPlayer]
}

func (g *Game) playerByID(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// IsStale reports whether the game has been GAME_OVER for at least delay,
// for the Registry's reaper.
func (g *Game) IsStale(delay time.Duration) bool {
	res, _ := g.call(func(g *Game) (interface{}, error) {
		return g.State == GameOver && !g.finishedAt.IsZero() && time.Since(g.finishedAt) >= delay, nil
	})
	ok, _ := res.(bool)
	return ok
}

// PlayerSnapshot is one player's observable state.
type PlayerSnapshot struct {
	ID      string
	Name    string
	Score   int
	State   PlayerState
	IsAdmin bool
}

// GameSnapshot is a Game's observable state, broadcast as update-game.
type GameSnapshot struct {
	ID      string
	State   Lifecycle
	Turn    int
	Players []PlayerSnapshot
}

func (g *Game) snapshot() GameSnapshot {
	snap := GameSnapshot{ID: g.ID, State: g.State, Turn: g.TurnCounter}
	for _, p := range g.Players {
		snap.Players = append(snap.Players, PlayerSnapshot{ID: p.ID, Name: p.Name, Score: p.Score, State: p.State, IsAdmin: p.IsAdmin})
	}
	return snap
}

// broadcast publishes update-game, update-board and one update-racks per
// player, after every mutating hook (spec §4.6 Observability). Each
// registered referee connection additionally receives every player's rack,
// not just its own, per the same Observability line.
func (g *Game) broadcast() {
	if g.Broadcaster == nil {
		return
	}
	g.Broadcaster.Publish(Broadcast{Kind: UpdateGame, GameID: g.ID, Payload: g.snapshot()})
	g.Broadcaster.Publish(Broadcast{Kind: UpdateBoard, GameID: g.ID, Payload: g.Board.String()})
	for _, p := range g.Players {
		g.Broadcaster.Publish(Broadcast{Kind: UpdateRacks, GameID: g.ID, ConnID: p.ID, Payload: p.Rack.String()})
		for _, refID := range g.refereeConnIDs {
			g.Broadcaster.Publish(Broadcast{Kind: UpdateRacks, GameID: g.ID, ConnID: refID, Payload: p.Rack.String()})
		}
	}
}

// gameReapDelay is how long a GAME_OVER game is kept before Registry
// evicts it (spec §9: "clean_games is commented out; no retention policy
// is implied... implementations may choose an eviction policy but must
// document one" and §5: "an external scheduler may periodically reap
// games in GAME_OVER" — implemented in-process since no external
// scheduler is in scope).
const gameReapDelay = 10 * time.Minute

// Registry creates and retires Games in-process.
type Registry struct {
	mu          sync.Mutex
	games       map[string]*Game
	lex         *Lexicon
	tileSet     *TileSet
	broadcaster Broadcaster
	logger      zerolog.Logger
	nextID      int
	reapDelay   time.Duration
}

// NewRegistry builds a Registry and starts its background reaper.
func NewRegistry(lex *Lexicon, tileSet *TileSet, broadcaster Broadcaster, logger zerolog.Logger) *Registry {
	r := &Registry{
		games:       map[string]*Game{},
		lex:         lex,
		tileSet:     tileSet,
		broadcaster: broadcaster,
		logger:      logger,
		reapDelay:   gameReapDelay,
	}
	go r.reapLoop()
	return r
}

// CreateGame builds and registers a new Game.
func (r *Registry) CreateGame(boardType string) (*Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := fmt.Sprintf("g%d", r.nextID)
	g, err := NewGame(id, r.lex, r.tileSet, boardType, r.broadcaster, r.logger)
	if err != nil {
		return nil, err
	}
	r.games[id] = g
	return g, nil
}

// Game looks up a registered game by ID.
func (r *Registry) Game(id string) (*Game, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	return g, ok
}

func (r *Registry) reapLoop() {
	ticker := time.NewTicker(r.reapDelay)
	defer ticker.Stop()
	for range ticker.C {
		r.reapOnce()
	}
}

func (r *Registry) reapOnce() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, g := range r.games {
		if g.IsStale(r.reapDelay) {
			g.Close()
			delete(r.games, id)
		}
	}
}
