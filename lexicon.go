// lexicon.go
//
// This file builds the LetterNode graph that backs a Language's DAWG: trie
// insertion, structural-equality reduction (minimization), BFS index
// assignment, and the binary wire encoding from the external interface
// section. Traversal operations (has_word, find_anagrams, ...) live in
// navigate.go.
//
// Grounded on the teacher's dawg.go in shape only (Alphabet/crossCache):
// the teacher never builds a DAWG, it only loads a pre-built compressed
// buffer, so construction here is original to this repo.

package lexengine

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

// LetterNode is one node of the LetterNode graph (spec §3/§4.1). After
// BuildLexicon, every reachable node carries both a forward trie view (Child/Next)
// and explicit adjacency slices (PreNodes/PreLetters, PostNodes/PostLetters)
// used by the move generator's back/forward traversal.
type LetterNode struct {
	Letter      rune
	IsEndOfWord bool

	// Child is the first node one level deeper (the start of the sorted
	// sibling chain); Next is the following sibling at the same depth.
	Child *LetterNode
	Next  *LetterNode

	// Index is this node's position in BFS order, assigned by BuildLexicon.
	// Index 0 is reserved to mean "no child" in the binary encoding.
	Index uint32

	// PostNodes/PostLetters are this node's children (forward adjacency):
	// PostNodes[i] is reachable from this node via letter PostLetters[i].
	PostNodes   []*LetterNode
	PostLetters []rune

	// PreNodes/PreLetters are this node's parents (backward adjacency):
	// PreLetters[i] is PreNodes[i]'s own Letter (0 for the sentinel root),
	// i.e. the letter that precedes this node's letter in a word.
	PreNodes   []*LetterNode
	PreLetters []rune
}

// Lexicon is a built, queryable LetterNode graph for one Language.
type Lexicon struct {
	root     *LetterNode // sentinel; root.Child is the first real letter of any word
	alphabet *Alphabet
	byIndex  []*LetterNode // BFS order, byIndex[0] unused

	cross *crossCache
}

// Alphabet returns the alphabet this lexicon was built against.
func (l *Lexicon) Alphabet() *Alphabet { return l.alphabet }

// NodeCount returns the number of distinct nodes in the reduced graph,
// excluding the sentinel root.
func (l *Lexicon) NodeCount() int { return len(l.byIndex) - 1 }

// BuildLexicon constructs a Lexicon from a word list. Words are sorted and
// deduplicated internally; every letter must be a member of alphabet.
func BuildLexicon(words []string, alphabet *Alphabet) (*Lexicon, error) {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)

	root := &LetterNode{}
	var prev string
	first := true
	for _, w := range sorted {
		if !first && w == prev {
			continue // dedupe
		}
		first = false
		prev = w
		for _, r := range w {
			if !alphabet.Member(r) {
				return nil, errUnknownLetter("word %q contains letter %q not in alphabet", w, r)
			}
		}
		insert(root, []rune(w))
	}

	cache := make(map[string]*LetterNode)
	root.Child = reduce(cache, root.Child)

	byIndex := assignIndices(root)
	buildAdjacency(root, byIndex)

	cross, err := newCrossCache(256)
	if err != nil {
		return nil, errEngineFault("building cross-check cache: %v", err)
	}

	return &Lexicon{root: root, alphabet: alphabet, byIndex: byIndex, cross: cross}, nil
}

// insert adds the remaining letters of a word into the sorted sibling chain
// rooted at parent.Child, creating nodes as needed.
func insert(parent *LetterNode, letters []rune) {
	if len(letters) == 0 {
		return
	}
	r := letters[0]
	var prev *LetterNode
	cur := parent.Child
	for cur != nil && cur.Letter < r {
		prev = cur
		cur = cur.Next
	}
	if cur == nil || cur.Letter != r {
		node := &LetterNode{Letter: r, Next: cur}
		if prev == nil {
			parent.Child = node
		} else {
			prev.Next = node
		}
		cur = node
	}
	if len(letters) == 1 {
		cur.IsEndOfWord = true
	}
	insert(cur, letters[1:])
}

// reduce minimizes the trie rooted at node (and its Next siblings) in place,
// returning the canonical node for this subtrie/chain. Two subtries are
// equal iff their letter, end-of-word flag, and (recursively) canonicalized
// child and next pointers are equal; reduce processes children and next
// chains bottom-up so canonical identity can be tested by pointer equality
// plus the local fields, which implicitly captures max_child_depth and
// child count since those are invariants of a canonical subtrie.
func reduce(cache map[string]*LetterNode, node *LetterNode) *LetterNode {
	if node == nil {
		return nil
	}
	node.Child = reduce(cache, node.Child)
	node.Next = reduce(cache, node.Next)

	key := signature(node)
	if existing, ok := cache[key]; ok {
		return existing
	}
	cache[key] = node
	return node
}

func signature(n *LetterNode) string {
	return fmt.Sprintf("%c|%v|%p|%p", n.Letter, n.IsEndOfWord, n.Child, n.Next)
}

// assignIndices walks the reduced graph breadth-first from root, assigning
// each distinct reachable node a sequential Index starting at 1 (0 means
// "no child" in the wire encoding). byIndex[0] is left nil as a placeholder.
//
// The queue holds sibling-chain heads, not individual nodes: dequeuing a
// chain head walks its entire Next chain and assigns consecutive indices to
// every node in it before any child subtree is indexed, so a sibling chain
// always occupies a contiguous index range. DecodeLexicon's Next
// reconstruction (below) relies on that contiguity to rebuild sibling links
// from bare array position instead of re-encoding an explicit Next index per
// node.
func assignIndices(root *LetterNode) []*LetterNode {
	seen := map[*LetterNode]bool{}
	byIndex := []*LetterNode{nil}
	queue := []*LetterNode{}
	if root.Child != nil {
		queue = append(queue, root.Child)
	}
	for len(queue) > 0 {
		chainStart := queue[0]
		queue = queue[1:]
		if chainStart == nil || seen[chainStart] {
			continue
		}
		for n := chainStart; n != nil && !seen[n]; n = n.Next {
			seen[n] = true
			n.Index = uint32(len(byIndex))
			byIndex = append(byIndex, n)
			if n.Child != nil {
				queue = append(queue, n.Child)
			}
		}
	}
	return byIndex
}

// buildAdjacency derives PostNodes/PostLetters (children) and
// PreNodes/PreLetters (parents) for every node from the Child/Next chains,
// including the sentinel root (whose PostNodes are its top-level letters).
func buildAdjacency(root *LetterNode, byIndex []*LetterNode) {
	all := append([]*LetterNode{root}, byIndex[1:]...)
	for _, n := range all {
		if n == nil {
			continue
		}
		for c := n.Child; c != nil; c = c.Next {
			n.PostNodes = append(n.PostNodes, c)
			n.PostLetters = append(n.PostLetters, c.Letter)
			c.PreNodes = append(c.PreNodes, n)
			c.PreLetters = append(c.PreLetters, n.Letter)
		}
	}
}

// --- binary encoding (spec §6) ---
//
// Wire format: a leading 32-bit node count, then count pairs of 32-bit
// words per node in BFS order: (letter, packed), all network byte order.
// packed = (child_index<<2) | end_of_word_bit | end_of_list_bit<<1.
// child_index == 0 means "no child". end_of_list marks the last node in a
// sibling chain (Next == nil).

// Encode serializes the lexicon to the spec's binary DAWG format.
func (l *Lexicon) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	count := uint32(len(l.byIndex) - 1)
	if err := binary.Write(bw, binary.BigEndian, count); err != nil {
		return err
	}
	for i := 1; i < len(l.byIndex); i++ {
		n := l.byIndex[i]
		var packed uint32
		if n.Child != nil {
			packed |= n.Child.Index << 2
		}
		if n.IsEndOfWord {
			packed |= 1
		}
		if n.Next == nil {
			packed |= 2
		}
		if err := binary.Write(bw, binary.BigEndian, uint32(n.Letter)); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.BigEndian, packed); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeLexicon reads the spec's binary DAWG format and reconstructs a
// Lexicon, including re-deriving adjacency. Returns CorruptDictionary on any
// malformed input (a truncated stream, including a node count larger than
// the stream holds, or a dangling child index).
func DecodeLexicon(r io.Reader, alphabet *Alphabet) (*Lexicon, error) {
	br := bufio.NewReader(r)
	var count uint32
	if err := binary.Read(br, binary.BigEndian, &count); err != nil {
		return nil, errCorruptDictionary("reading node count: %v", err)
	}

	type raw struct {
		letter    rune
		childIdx  uint32
		eow       bool
		endOfList bool
	}
	raws := make([]raw, count)
	for i := uint32(0); i < count; i++ {
		var letterWord, packed uint32
		if err := binary.Read(br, binary.BigEndian, &letterWord); err != nil {
			return nil, errCorruptDictionary("reading letter at node %d: %v", i, err)
		}
		if err := binary.Read(br, binary.BigEndian, &packed); err != nil {
			return nil, errCorruptDictionary("reading packed word at node %d: %v", i, err)
		}
		raws[i] = raw{
			letter:    rune(letterWord),
			childIdx:  packed >> 2,
			eow:       packed&1 != 0,
			endOfList: packed&2 != 0,
		}
	}

	nodes := make([]*LetterNode, count+1) // nodes[0] unused
	for i := uint32(0); i < count; i++ {
		nodes[i+1] = &LetterNode{Letter: raws[i].letter, IsEndOfWord: raws[i].eow, Index: i + 1}
	}
	for i := uint32(0); i < count; i++ {
		idx := i + 1
		if raws[i].childIdx != 0 {
			if raws[i].childIdx > count {
				return nil, errCorruptDictionary("node %d has dangling child index %d", idx, raws[i].childIdx)
			}
			nodes[idx].Child = nodes[raws[i].childIdx]
		}
		if !raws[i].endOfList && idx < count {
			nodes[idx].Next = nodes[idx+1]
		}
	}

	root := &LetterNode{}
	if count > 0 {
		root.Child = nodes[1]
	}
	byIndex := append([]*LetterNode{nil}, nodes[1:]...)
	buildAdjacency(root, byIndex)

	cross, err := newCrossCache(256)
	if err != nil {
		return nil, errEngineFault("building cross-check cache: %v", err)
	}
	return &Lexicon{root: root, alphabet: alphabet, byIndex: byIndex, cross: cross}, nil
}

// crossCache caches cross-check bitmap lookups, keyed by the "left?right"
// pattern string, mirroring the teacher's dawg.go crossCache built on the
// same LRU library.
type crossCache struct {
	lru *lru.LRU
}

func newCrossCache(size int) (*crossCache, error) {
	l, err := lru.NewLRU(size, nil)
	if err != nil {
		return nil, err
	}
	return &crossCache{lru: l}, nil
}

func (c *crossCache) lookup(key string, fetch func() uint64) uint64 {
	if v, ok := c.lru.Get(key); ok {
		return v.(uint64)
	}
	v := fetch()
	c.lru.Add(key, v)
	return v
}
