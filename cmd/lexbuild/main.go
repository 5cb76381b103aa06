// main.go
//
// Compiles a newline-delimited word list into the DAWG binary format
// described by spec §6, for dev/test convenience — not itself a product
// surface (the server and simulator load a word list directly).

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

func main() {
	in := flag.String("in", "", "path to a newline-delimited word list (required)")
	out := flag.String("out", "", "path to write the compiled DAWG binary (required)")
	flag.Parse()

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: lexbuild -in words.txt -out words.dawg")
		os.Exit(1)
	}

	words, err := loadWords(*in)
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

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := lex.Encode(f); err != nil {
		fmt.Fprintf(os.Stderr, "encoding lexicon: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d words to %s\n", len(words), *out)
}
