package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrOddPairsFile is returned when a sentence-pairs file does not hold an
// even number of lines.
var ErrOddPairsFile = errors.New("odd number of lines in sentence-pairs file")

// WritePairs writes pairs as alternating source and target lines, each
// space-tokenised and newline-terminated.
func WritePairs(w io.Writer, pairs []Pair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(bw, "%s\n%s\n", p.Source, p.Target); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPairs reads the format written by WritePairs.
func ReadPairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	n := 0
	for sc.Scan() {
		tokens := Sentence(strings.Fields(sc.Text()))
		if n%2 == 0 {
			pairs = append(pairs, Pair{Source: tokens})
		} else {
			pairs[len(pairs)-1].Target = tokens
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("corpus: %d lines: %w", n, ErrOddPairsFile)
	}
	return pairs, nil
}

// SavePairs writes pairs to path.
func SavePairs(path string, pairs []Pair) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("corpus: %w", err)
	}
	if err := WritePairs(f, pairs); err != nil {
		_ = f.Close()
		return fmt.Errorf("corpus: write %s: %w", path, err)
	}
	return f.Close()
}

// LoadPairs reads pairs from path.
func LoadPairs(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	defer func() { _ = f.Close() }()
	pairs, err := ReadPairs(f)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", path, err)
	}
	return pairs, nil
}
