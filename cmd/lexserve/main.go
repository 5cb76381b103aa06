// main.go
//
// A thin JSON HTTP front end over the Request Surface (spec §6), grounded
// on the teacher's server.go decode-validate-call-encode handler shape
// (HandleMovesRequest/HandleWordCheckRequest), rebuilt against the
// N-player actor-based Game/Registry instead of the teacher's stateless
// one-shot move generator endpoint.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/halldorb/lexengine"
	"github.com/rs/zerolog"
)

func loadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var words []string
	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		if w := scanner.Text(); w != "" {
			words = append(words, w)
		}
	}
	return words, scanner.Err()
}

type server struct {
	registry  *lexengine.Registry
	logger    zerolog.Logger
	boardType string
}

func statusFor(err error) int {
	eerr, ok := err.(*lexengine.EngineError)
	if !ok {
		return http.StatusInternalServerError
	}
	switch eerr.Kind {
	case lexengine.KindNotFound:
		return http.StatusNotFound
	case lexengine.KindStateViolation, lexengine.KindTurnViolation, lexengine.KindExhausted:
		return http.StatusConflict
	case lexengine.KindInvalidPlacement, lexengine.KindUnknownLetter:
		return http.StatusBadRequest
	case lexengine.KindLexiconReject:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// parseLocation decodes a "H8"-style column-letter/row-number reference
// into a board Coordinate (spec §6: "location (column letter + 1-based
// row number)").
func parseLocation(loc string) (lexengine.Coordinate, error) {
	rs := []rune(loc)
	if len(rs) < 2 {
		return lexengine.Coordinate{}, fmt.Errorf("invalid location %q", loc)
	}
	colLetters := "ABCDEFGHIJLMNOP"
	col := -1
	for i, r := range colLetters {
		if r == rs[0] {
			col = i
			break
		}
	}
	if col < 0 {
		return lexengine.Coordinate{}, fmt.Errorf("invalid column letter in location %q", loc)
	}
	row, err := strconv.Atoi(string(rs[1:]))
	if err != nil || row < 1 || row > lexengine.BoardSize {
		return lexengine.Coordinate{}, fmt.Errorf("invalid row number in location %q", loc)
	}
	return lexengine.Coordinate{Row: row - 1, Col: col}, nil
}

type createGameRequest struct {
	BoardType string `json:"board_type"`
}

type createGameResponse struct {
	GameID string `json:"game_id"`
}

func (s *server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	boardType := req.BoardType
	if boardType == "" {
		boardType = s.boardType
	}
	game, err := s.registry.CreateGame(boardType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, createGameResponse{GameID: game.ID})
}

type joinGameRequest struct {
	PlayerType string `json:"player_type"`
	Name       string `json:"name"`
}

// joinGameResponse carries is_admin per spec.md's Request Surface
// (join_game -> "player_id, is_admin"): true only for the first player to
// join a given game.
type joinGameResponse struct {
	PlayerID string `json:"player_id"`
	IsAdmin  bool   `json:"is_admin"`
}

func (s *server) handleJoinGame(w http.ResponseWriter, r *http.Request, gameID string) {
	game, ok := s.registry.Game(gameID)
	if !ok {
		http.Error(w, "unknown game "+gameID, http.StatusNotFound)
		return
	}
	var req joinGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	kind := lexengine.HumanPlayer
	var policy lexengine.Robot
	if req.PlayerType == "computer" {
		kind = lexengine.ComputerPlayer
		policy = lexengine.NewRobot(lexengine.BalancedPolicy)
	}
	playerID, isAdmin, err := game.CreatePlayer(kind, req.Name, policy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, joinGameResponse{PlayerID: playerID, IsAdmin: isAdmin})
}

// registerRefereeResponse names the watch-only connection created by
// handleRegisterReferee, grounded on original_source's reserved
// player_id == "referee" connection (app.py's /game/<id>/referee route).
type registerRefereeResponse struct {
	RefereeID string `json:"referee_id"`
}

var refereeSeq uint64

func (s *server) handleRegisterReferee(w http.ResponseWriter, gameID string) {
	game, ok := s.gameAndPlayer(w, gameID)
	if !ok {
		return
	}
	refereeSeq++
	connID := fmt.Sprintf("referee-%s-%d", gameID, refereeSeq)
	if err := game.RegisterReferee(connID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, registerRefereeResponse{RefereeID: connID})
}

func (s *server) gameAndPlayer(w http.ResponseWriter, gameID string) (*lexengine.Game, bool) {
	game, ok := s.registry.Game(gameID)
	if !ok {
		http.Error(w, "unknown game "+gameID, http.StatusNotFound)
		return nil, false
	}
	return game, true
}

func (s *server) handleSetReady(w http.ResponseWriter, gameID, playerID string) {
	game, ok := s.gameAndPlayer(w, gameID)
	if !ok {
		return
	}
	if err := game.SetReady(playerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

func (s *server) handleRequestOrder(w http.ResponseWriter, gameID, playerID string) {
	game, ok := s.gameAndPlayer(w, gameID)
	if !ok {
		return
	}
	letter, err := game.RequestOrder(playerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]string{"letter": string(letter)})
}

type tileSubmissionJSON struct {
	Letter   string `json:"letter"`
	Meaning  string `json:"meaning"`
	Location string `json:"location"`
}

type submitRequest struct {
	Tiles []tileSubmissionJSON `json:"tiles"`
}

func (s *server) handleSubmit(w http.ResponseWriter, r *http.Request, gameID, playerID string) {
	game, ok := s.gameAndPlayer(w, gameID)
	if !ok {
		return
	}
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	subs := make([]lexengine.TileSubmission, 0, len(req.Tiles))
	for _, t := range req.Tiles {
		loc, err := parseLocation(t.Location)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		letterRunes := []rune(t.Letter)
		meaningRunes := []rune(t.Meaning)
		if len(letterRunes) != 1 {
			http.Error(w, "letter must be a single rune", http.StatusBadRequest)
			return
		}
		meaning := letterRunes[0]
		if len(meaningRunes) == 1 {
			meaning = meaningRunes[0]
		}
		subs = append(subs, lexengine.TileSubmission{Letter: letterRunes[0], Meaning: meaning, Location: loc})
	}
	points, err := game.Submit(playerID, subs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]int{"points": points})
}

func (s *server) handleSkip(w http.ResponseWriter, gameID, playerID string) {
	game, ok := s.gameAndPlayer(w, gameID)
	if !ok {
		return
	}
	if err := game.SkipTurn(playerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

type exchangeRequest struct {
	Letter string `json:"letter"`
}

func (s *server) handleExchange(w http.ResponseWriter, r *http.Request, gameID, playerID string) {
	game, ok := s.gameAndPlayer(w, gameID)
	if !ok {
		return
	}
	var req exchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	letters := []rune(req.Letter)
	if len(letters) != 1 {
		http.Error(w, "letter must be a single rune", http.StatusBadRequest)
		return
	}
	if err := game.ExchangeLetter(playerID, letters[0]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

type hintRequest struct {
	Letters string `json:"letters"`
}

func (s *server) handleHint(w http.ResponseWriter, r *http.Request, gameID, playerID string) {
	game, ok := s.gameAndPlayer(w, gameID)
	if !ok {
		return
	}
	var req hintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	mv, err := game.RequestHint(r.Context(), playerID, []rune(req.Letters))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]interface{}{"word": mv.Word, "score": lexengine.ScoreMove(game.Board, mv)})
}

func (s *server) handleQuit(w http.ResponseWriter, gameID, playerID string) {
	game, ok := s.gameAndPlayer(w, gameID)
	if !ok {
		return
	}
	if err := game.Quit(playerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

func (s *server) handleSnapshot(w http.ResponseWriter, gameID string) {
	game, ok := s.gameAndPlayer(w, gameID)
	if !ok {
		return
	}
	writeJSON(w, game.Snapshot())
}

func main() {
	cfg, err := lexengine.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	logger := lexengine.NewLogger(cfg.LogLevel)

	if cfg.WordListPath == "" {
		logger.Fatal().Msg("LEXENGINE_WORD_LIST_PATH must name a newline-delimited word list")
	}
	words, err := loadWords(cfg.WordListPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("reading word list")
	}
	alphabet, err := lexengine.NewEnglishAlphabet()
	if err != nil {
		logger.Fatal().Err(err).Msg("building alphabet")
	}
	lex, err := lexengine.BuildLexicon(words, alphabet)
	if err != nil {
		logger.Fatal().Err(err).Msg("building lexicon")
	}
	tileSet, err := lexengine.NewEnglishTileSet(alphabet)
	if err != nil {
		logger.Fatal().Err(err).Msg("building tile set")
	}

	broadcaster := lexengine.NewChannelBroadcaster()
	registry := lexengine.NewRegistry(lex, tileSet, broadcaster, logger)
	s := &server{registry: registry, logger: logger, boardType: cfg.BoardType}

	mux := http.NewServeMux()
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.handleCreateGame(w, r)
	})
	mux.HandleFunc("/games/", func(w http.ResponseWriter, r *http.Request) {
		gameID, playerID, action, ok := splitPath(r.URL.Path)
		if !ok {
			http.NotFound(w, r)
			return
		}
		switch {
		case playerID == "" && action == "players":
			s.handleJoinGame(w, r, gameID)
		case playerID == "" && action == "referees":
			s.handleRegisterReferee(w, gameID)
		case playerID == "" && action == "":
			s.handleSnapshot(w, gameID)
		case action == "ready":
			s.handleSetReady(w, gameID, playerID)
		case action == "order":
			s.handleRequestOrder(w, gameID, playerID)
		case action == "submit":
			s.handleSubmit(w, r, gameID, playerID)
		case action == "skip":
			s.handleSkip(w, gameID, playerID)
		case action == "exchange":
			s.handleExchange(w, r, gameID, playerID)
		case action == "hint":
			s.handleHint(w, r, gameID, playerID)
		case action == "quit":
			s.handleQuit(w, gameID, playerID)
		default:
			http.NotFound(w, r)
		}
	})

	logger.Info().Str("addr", cfg.ListenAddr).Msg("listening")
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

// splitPath parses "/games/{id}/players", "/games/{id}/referees",
// "/games/{id}/players/{pid}/{action}", or "/games/{id}" into its
// components. referees is a watch-only registration (spec §4.6
// Observability; original_source's app.py /game/<id>/referee route) with
// no player ID of its own.
func splitPath(path string) (gameID, playerID, action string, ok bool) {
	var parts []string
	for _, p := range splitNonEmpty(path, '/') {
		parts = append(parts, p)
	}
	if len(parts) < 2 || parts[0] != "games" {
		return "", "", "", false
	}
	gameID = parts[1]
	switch len(parts) {
	case 2:
		return gameID, "", "", true
	case 3:
		if parts[2] != "players" && parts[2] != "referees" {
			return "", "", "", false
		}
		return gameID, "", parts[2], true
	case 5:
		if parts[2] != "players" {
			return "", "", "", false
		}
		return gameID, parts[3], parts[4], true
	default:
		return "", "", "", false
	}
}

func splitNonEmpty(s string, sep rune) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == sep {
			if cur != "" {
				out = append(out, cur)
			}
			cur = ""
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}
