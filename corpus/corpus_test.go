package corpus

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewPairsTruncates(t *testing.T) {
	src := []Sentence{{"NULL", "the", "house"}, {"NULL", "the", "flower"}, {"NULL", "extra"}}
	tgt := []Sentence{{"la", "maison"}, {"la", "fleur"}}

	pairs := NewPairs(src, tgt)
	if len(pairs) != 2 {
		t.Fatalf("len(pairs) = %d, want 2", len(pairs))
	}
	if pairs[1].Source.String() != "NULL the flower" || pairs[1].Target.String() != "la fleur" {
		t.Errorf("pairs[1] = %v, want NULL the flower / la fleur", pairs[1])
	}
}

func TestVocabulary(t *testing.T) {
	sents := []Sentence{
		{"NULL", "the", "house"},
		{"NULL", "the", "blue", "house"},
		{"NULL", "the", "flower"},
	}
	got := Vocabulary(sents)
	want := []string{"NULL", "blue", "flower", "house", "the"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Vocabulary = %v, want %v", got, want)
	}
}

func TestWithNull(t *testing.T) {
	s := Sentence{"the", "house"}
	got := WithNull(s)
	if got.String() != "NULL the house" {
		t.Errorf("WithNull = %q", got.String())
	}
	if s.String() != "the house" {
		t.Errorf("input modified: %q", s.String())
	}
}

func TestHead(t *testing.T) {
	lines := []string{"a", "b", "c"}
	tests := []struct {
		n    int
		want int
	}{
		{0, 3}, {-1, 3}, {2, 2}, {5, 3},
	}
	for _, tt := range tests {
		if got := len(Head(lines, tt.n)); got != tt.want {
			t.Errorf("len(Head(lines, %d)) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPairsRoundTrip(t *testing.T) {
	pairs := []Pair{
		{Source: Sentence{"NULL", "the", "house"}, Target: Sentence{"la", "maison"}},
		{Source: Sentence{"NULL", "the", "blue", "house"}, Target: Sentence{"la", "maison", "bleu"}},
	}

	var buf bytes.Buffer
	if err := WritePairs(&buf, pairs); err != nil {
		t.Fatal(err)
	}
	want := "NULL the house\nla maison\nNULL the blue house\nla maison bleu\n"
	if buf.String() != want {
		t.Errorf("WritePairs = %q, want %q", buf.String(), want)
	}

	path := filepath.Join(t.TempDir(), "pairs.txt")
	if err := SavePairs(path, pairs); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadPairs(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded, pairs) {
		t.Errorf("LoadPairs = %v, want %v", loaded, pairs)
	}
}

func TestReadPairsOddLines(t *testing.T) {
	_, err := ReadPairs(strings.NewReader("NULL the house\nla maison\nNULL orphan\n"))
	if !errors.Is(err, ErrOddPairsFile) {
		t.Errorf("err = %v, want ErrOddPairsFile", err)
	}
}
