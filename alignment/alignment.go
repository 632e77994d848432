// Package alignment represents word alignments between a source and a target
// sentence and their textual forms.
//
// Two orders are in use: the decoder writes "target-source" tokens while gold
// standards are written "source-target". A Link always knows which side is
// which, so only the formatting differs.
package alignment

import (
	"fmt"
	"strconv"
	"strings"
)

// Link aligns a target position (1-indexed) to a source position
// (0 is NULL, 1.. are source words).
type Link struct {
	Source int
	Target int
}

// String renders the link in gold order, "source-target".
func (l Link) String() string {
	return strconv.Itoa(l.Source) + "-" + strconv.Itoa(l.Target)
}

// Decoded renders the link in decoder order, "target-source".
func (l Link) Decoded() string {
	return strconv.Itoa(l.Target) + "-" + strconv.Itoa(l.Source)
}

// Sentence is the alignment of one sentence pair, one link per target position.
type Sentence []Link

// String renders the sentence in decoder order, space-joined.
func (s Sentence) String() string {
	parts := make([]string, len(s))
	for i, l := range s {
		parts[i] = l.Decoded()
	}
	return strings.Join(parts, " ")
}

// ParseLink parses a "source-target" token.
func ParseLink(tok string) (Link, error) {
	a, b, err := splitPair(tok)
	if err != nil {
		return Link{}, err
	}
	return Link{Source: a, Target: b}, nil
}

// ParseDecodedLink parses a "target-source" token.
func ParseDecodedLink(tok string) (Link, error) {
	a, b, err := splitPair(tok)
	if err != nil {
		return Link{}, err
	}
	return Link{Source: b, Target: a}, nil
}

// ParseDecoded parses a space-joined sentence of "target-source" tokens.
func ParseDecoded(line string) (Sentence, error) {
	fields := strings.Fields(line)
	out := make(Sentence, 0, len(fields))
	for _, f := range fields {
		l, err := ParseDecodedLink(f)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// JoinCorpus renders every sentence in decoder order and joins them with commas.
func JoinCorpus(sentences []Sentence) string {
	parts := make([]string, len(sentences))
	for i, s := range sentences {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// SplitCorpus splits a comma-joined alignment corpus into per-sentence strings.
func SplitCorpus(text string) []string {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, ",")
}

func splitPair(tok string) (int, int, error) {
	left, right, ok := strings.Cut(tok, "-")
	if !ok {
		return 0, 0, fmt.Errorf("alignment: malformed link %q", tok)
	}
	a, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, fmt.Errorf("alignment: malformed link %q: %w", tok, err)
	}
	b, err := strconv.Atoi(right)
	if err != nil {
		return 0, 0, fmt.Errorf("alignment: malformed link %q: %w", tok, err)
	}
	if a < 0 || b < 0 {
		return 0, 0, fmt.Errorf("alignment: negative position in %q", tok)
	}
	return a, b, nil
}
