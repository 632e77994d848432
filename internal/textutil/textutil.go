// Package textutil provides sentence tokenisation for corpus preparation.
package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// A token is a word (letters, digits, inner hyphens and apostrophes), a
// number with inner separators, or a single punctuation character.
var tokenizeRe = regexp.MustCompile(`\p{N}+(?:[.,:]\p{N}+)*|[\p{L}\p{M}\p{N}_]+(?:['’-][\p{L}\p{M}\p{N}_]+)*|[^\s\p{L}\p{M}\p{N}_]`)

// Tokenizer splits sentences into word and punctuation tokens.
type Tokenizer struct {
	Lowercase bool
	fold      cases.Caser
}

// NewTokenizer returns a tokenizer. With lowercase set, tokens are case-folded.
func NewTokenizer(lowercase bool) *Tokenizer {
	return &Tokenizer{Lowercase: lowercase, fold: cases.Lower(language.Und)}
}

// Tokenize returns the tokens of text after NFC normalisation.
func (tk *Tokenizer) Tokenize(text string) []string {
	text = norm.NFC.String(text)
	if tk.Lowercase {
		text = tk.fold.String(text)
	}
	return tokenizeRe.FindAllString(text, -1)
}

// TokenizeAll tokenises every line.
func (tk *Tokenizer) TokenizeAll(lines []string) [][]string {
	out := make([][]string, len(lines))
	for i, l := range lines {
		out[i] = tk.Tokenize(l)
	}
	return out
}

var multiSpaceRe = regexp.MustCompile(`\s+`)

// NormalizeWhitespaces collapses runs of whitespace, newlines included, into a
// single space and trims the ends.
func NormalizeWhitespaces(text string) string {
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))
}
