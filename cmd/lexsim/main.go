// main.go
//
// Simulates computer-vs-computer games and reports win counts, grounded
// on the teacher's main/main.go simulateGame loop (ApplyValid in a loop
// until IsOver), adapted to the N-player actor-based Game: two computer
// players join a lobby, draw play order, and the game's own
// maybeAutoPlay then drives every turn to completion since both seats
// are computers.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/halldorb/lexengine"
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

func parsePolicy(name string) lexengine.PolicyKind {
	if name == "greedy" {
		return lexengine.GreedyPolicy
	}
	return lexengine.BalancedPolicy
}

func simulateGame(lex *lexengine.Lexicon, tileSet *lexengine.TileSet, policyA, policyB string, verbose bool) (scoreA, scoreB int, err error) {
	logger := lexengine.NewLogger("warn")
	game, err := lexengine.NewGame("sim", lex, tileSet, "standard", nil, logger)
	if err != nil {
		return 0, 0, err
	}
	defer game.Close()

	idA, _, err := game.CreatePlayer(lexengine.ComputerPlayer, "Robot A", lexengine.NewRobot(parsePolicy(policyA)))
	if err != nil {
		return 0, 0, err
	}
	idB, _, err := game.CreatePlayer(lexengine.ComputerPlayer, "Robot B", lexengine.NewRobot(parsePolicy(policyB)))
	if err != nil {
		return 0, 0, err
	}
	// Computer players join already ready, so one SetReady call moves the
	// lobby into play order selection.
	if err := game.SetReady(idA); err != nil {
		return 0, 0, err
	}
	if _, err := game.RequestOrder(idA); err != nil {
		return 0, 0, err
	}
	// The second RequestOrder call completes play order selection, starts
	// the game, and runs it to completion via maybeAutoPlay since both
	// seats are computers.
	if _, err := game.RequestOrder(idB); err != nil {
		return 0, 0, err
	}

	snap := game.Snapshot()
	if verbose {
		fmt.Printf("game %s finished after %d turns\n", snap.ID, snap.Turn)
	}
	for _, p := range snap.Players {
		switch p.ID {
		case idA:
			scoreA = p.Score
		case idB:
			scoreB = p.Score
		}
	}
	return scoreA, scoreB, nil
}

func main() {
	wordsPath := flag.String("words", "", "path to a newline-delimited word list (required)")
	num := flag.Int("n", 10, "number of games to simulate")
	policyA := flag.String("policy-a", "balanced", "policy for player A: greedy or balanced")
	policyB := flag.String("policy-b", "greedy", "policy for player B: greedy or balanced")
	quiet := flag.Bool("q", false, "suppress per-game summary output")
	flag.Parse()

	if *wordsPath == "" {
		fmt.Fprintln(os.Stderr, "missing required -words flag")
		os.Exit(1)
	}
	words, err := loadWords(*wordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading word list: %v\n", err)
		os.Exit(1)
	}

	alphabet, err := lexengine.NewEnglishAlphabet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "building alphabet: %v\n", err)
		os.Exit(1)
	}
	lex, err := lexengine.BuildLexicon(words, alphabet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building lexicon: %v\n", err)
		os.Exit(1)
	}
	tileSet, err := lexengine.NewEnglishTileSet(alphabet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building tile set: %v\n", err)
		os.Exit(1)
	}

	var winsA, winsB, draws int
	for i := 0; i < *num; i++ {
		scoreA, scoreB, err := simulateGame(lex, tileSet, *policyA, *policyB, !*quiet)
		if err != nil {
			fmt.Fprintf(os.Stderr, "simulating game %d: %v\n", i, err)
			os.Exit(1)
		}
		switch {
		case scoreA > scoreB:
			winsA++
		case scoreB > scoreA:
			winsB++
		default:
			draws++
		}
	}
	fmt.Printf("%d games played.\nPlayer A (%s) won %d, Player B (%s) won %d, %d draws.\n",
		*num, *policyA, winsA, *policyB, winsB, draws)
}
