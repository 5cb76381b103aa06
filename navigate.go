// navigate.go
//
// Traversal operations over a built Lexicon: has_word, has_sequence,
// get_sequence_roots, find_anagrams, find_hangmen, and the cross-check set
// computation used by the move generator.
//
// Grounded on the teacher's navigators.go Navigator interface
// (PushEdge/PopEdge/Accepts/Accept/IsAccepting) and its FindNavigator /
// PermutationNavigator / MatchNavigator, generalized from walking a
// compressed byte-buffer DAWG's edges to walking a LetterNode's
// PostNodes/PostLetters (forward) and PreNodes/PreLetters (backward)
// adjacency.

package lexengine

import "sort"

// HasWord reports whether word is a complete word in the lexicon.
func (l *Lexicon) HasWord(word string) bool {
	node := l.walk(l.root.Child, []rune(word))
	return node != nil && node.IsEndOfWord
}

// walk follows the sibling chain starting at `chain` to match letters[0],
// then descends into each matched node's Child chain to match the rest,
// returning the final node reached, or nil if the path doesn't exist.
func (l *Lexicon) walk(chain *LetterNode, letters []rune) *LetterNode {
	if len(letters) == 0 {
		return nil
	}
	cur := childByLetter(chain, letters[0])
	for _, r := range letters[1:] {
		if cur == nil {
			return nil
		}
		cur = childByLetter(cur.Child, r)
	}
	return cur
}

// childByLetter finds, among a node's PostNodes (or, for the sentinel root
// chain, among siblings starting at `chain`), the one reached by letter r.
func childByLetter(chain *LetterNode, r rune) *LetterNode {
	for n := chain; n != nil; n = n.Next {
		if n.Letter == r {
			return n
		}
		if n.Letter > r {
			return nil // sorted chain, no further match possible
		}
	}
	return nil
}

// HasSequence reports whether seq occurs as a contiguous subsequence of at
// least one dictionary word (i.e. GetSequenceRoots is non-empty).
func (l *Lexicon) HasSequence(seq string) bool {
	return len(l.GetSequenceRoots(seq)) > 0
}

// GetSequenceRoots returns every node in the graph from which walking seq's
// letters along PostNodes succeeds; each such node is an "anchor" at which
// seq begins as a contiguous infix of some word. This brute-force sweep
// costs O(nodes * len(seq)) in the worst case, acceptable for the reference
// lexicon sizes this engine targets.
func (l *Lexicon) GetSequenceRoots(seq string) []*LetterNode {
	letters := []rune(seq)
	if len(letters) == 0 {
		return nil
	}
	var roots []*LetterNode
	// A sequence can start at the sentinel root (matching from the first
	// letter of a word) or at any interior node (matching as an infix).
	candidates := append([]*LetterNode{l.root}, l.byIndex[1:]...)
	for _, n := range candidates {
		if n == nil {
			continue
		}
		chain := n.Child
		if n == l.root {
			chain = l.root.Child
		} else {
			chain = firstPostChain(n)
		}
		if l.walk(chain, letters) != nil {
			roots = append(roots, n)
		}
	}
	return roots
}

// firstPostChain returns the sibling chain to search from node n: its
// PostNodes form a sorted-by-letter set reachable via n.Child/Next, which is
// exactly n.Child itself in this representation.
func firstPostChain(n *LetterNode) *LetterNode {
	return n.Child
}

// FindAnagrams returns every complete word formable as a permutation of
// letters (a multiset; BlankLetter entries act as wildcards standing in for
// any single letter).
func (l *Lexicon) FindAnagrams(letters string) []string {
	counts := map[rune]int{}
	blanks := 0
	for _, r := range letters {
		if r == BlankLetter {
			blanks++
		} else {
			counts[r]++
		}
	}
	var out []string
	var buf []rune
	var rec func(node *LetterNode, counts map[rune]int, blanks int)
	rec = func(node *LetterNode, counts map[rune]int, blanks int) {
		if node.IsEndOfWord && len(buf) > 0 {
			out = append(out, string(buf))
		}
		for i := range node.PostLetters {
			child := node.PostNodes[i]
			letter := node.PostLetters[i]
			if counts[letter] > 0 {
				counts[letter]--
				buf = append(buf, letter)
				rec(child, counts, blanks)
				buf = buf[:len(buf)-1]
				counts[letter]++
			} else if blanks > 0 {
				buf = append(buf, letter)
				rec(child, counts, blanks-1)
				buf = buf[:len(buf)-1]
			}
		}
	}
	rec(l.root, counts, blanks)
	sort.Strings(out)
	return dedupeStrings(out)
}

// FindHangmen returns every complete word exactly matching pattern, where a
// space in pattern is a wildcard matching any single letter.
func (l *Lexicon) FindHangmen(pattern string) []string {
	letters := []rune(pattern)
	var out []string
	var buf []rune
	var rec func(node *LetterNode, pos int)
	rec = func(node *LetterNode, pos int) {
		if pos == len(letters) {
			if node.IsEndOfWord {
				out = append(out, string(buf))
			}
			return
		}
		want := letters[pos]
		for i := range node.PostLetters {
			child := node.PostNodes[i]
			letter := node.PostLetters[i]
			if want == ' ' || want == letter {
				buf = append(buf, letter)
				rec(child, pos+1)
				buf = buf[:len(buf)-1]
			}
		}
	}
	rec(l.root, 0)
	sort.Strings(out)
	return dedupeStrings(out)
}

func dedupeStrings(ss []string) []string {
	if len(ss) == 0 {
		return ss
	}
	out := ss[:1]
	for _, s := range ss[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}

// CrossSet computes the set of letters L (as a bitmap over the alphabet)
// such that left+string(L)+right is a valid word, caching results by the
// "left?right" pattern the way the teacher's Dawg.CrossSet does.
func (l *Lexicon) CrossSet(left, right string) uint64 {
	key := left + "?" + right
	return l.cross.lookup(key, func() uint64 {
		var bits uint64
		for i, r := range l.alphabet.Letters() {
			if i >= 64 {
				break
			}
			if l.HasWord(left + string(r) + right) {
				bits |= 1 << uint(i)
			}
		}
		return bits
	})
}

// LetterBit returns the bit position assigned to r within this lexicon's
// alphabet ordering, for interpreting a CrossSet bitmap. ok is false if r is
// not a member letter.
func (l *Lexicon) LetterBit(r rune) (pos int, ok bool) {
	for i, letter := range l.alphabet.Letters() {
		if letter == r {
			return i, true
		}
	}
	return 0, false
}
