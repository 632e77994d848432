// Package corpus holds tokenised parallel corpora and their vocabularies.
package corpus

import (
	"sort"
	"strings"
)

// Null is the synthetic source token that stands for "aligned to nothing".
// It always occupies source position 0.
const Null = "NULL"

// Sentence is an ordered sequence of tokens.
type Sentence []string

// String returns the space-joined tokens.
func (s Sentence) String() string {
	return strings.Join(s, " ")
}

// Pair is a source sentence (with leading Null) and its target sentence.
type Pair struct {
	Source Sentence
	Target Sentence
}

// NewPairs pairs source and target sentences by position. When the two sides
// differ in length the result is truncated to the shorter one.
func NewPairs(source, target []Sentence) []Pair {
	n := min(len(source), len(target))
	pairs := make([]Pair, n)
	for i := range n {
		pairs[i] = Pair{Source: source[i], Target: target[i]}
	}
	return pairs
}

// WithNull returns a copy of s with Null prepended.
func WithNull(s Sentence) Sentence {
	out := make(Sentence, 0, len(s)+1)
	out = append(out, Null)
	return append(out, s...)
}

// Vocabulary returns the distinct tokens of the given sentences in
// lexicographic order.
func Vocabulary(sentences []Sentence) []string {
	seen := make(map[string]bool)
	for _, s := range sentences {
		for _, w := range s {
			seen[w] = true
		}
	}
	vocab := make([]string, 0, len(seen))
	for w := range seen {
		vocab = append(vocab, w)
	}
	sort.Strings(vocab)
	return vocab
}

// Sources returns the source side of pairs.
func Sources(pairs []Pair) []Sentence {
	out := make([]Sentence, len(pairs))
	for i, p := range pairs {
		out[i] = p.Source
	}
	return out
}

// Targets returns the target side of pairs.
func Targets(pairs []Pair) []Sentence {
	out := make([]Sentence, len(pairs))
	for i, p := range pairs {
		out[i] = p.Target
	}
	return out
}

// Lengths returns the token count of each sentence.
func Lengths(sentences []Sentence) []int {
	out := make([]int, len(sentences))
	for i, s := range sentences {
		out[i] = len(s)
	}
	return out
}

// Head returns at most n lines from the front of lines. n <= 0 means no limit.
func Head(lines []string, n int) []string {
	if n <= 0 || n >= len(lines) {
		return lines
	}
	return lines[:n]
}
