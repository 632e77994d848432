// Package wordalign learns word alignments between two languages with IBM
// Model-1 and evaluates them against a hand-annotated gold standard.
//
// The pipeline has three stages, each usable on its own:
//
//	a, pairs, _ := wordalign.Train("europarl.en", "europarl.es", nil)
//	_ = a.Save("probs.tsv")
//	alignments := a.Align(pairs, nil)
//	fmt.Println(alignment.JoinCorpus(alignments)) // "1-0 2-2,1-0 2-3 3-2"
//
//	res, _ := wordalign.Evaluate("gold.txt", "gold.en", "gold.es", a, nil)
//	fmt.Println(res.Precision, res.Recall, res.AER)
package wordalign

import (
	"fmt"
	"log/slog"

	"github.com/happyhackingspace/wordalign/alignment"
	"github.com/happyhackingspace/wordalign/corpus"
	"github.com/happyhackingspace/wordalign/ibm1"
)

// Aligner wraps a translation probability table.
type Aligner struct {
	table *ibm1.Table
}

// AlignConfig holds configuration for decoding.
type AlignConfig struct {
	// FirstOccurrence makes repeated word forms share the index of their first
	// occurrence.
	FirstOccurrence bool
}

// NewAligner wraps an existing table.
func NewAligner(table *ibm1.Table) *Aligner {
	return &Aligner{table: table}
}

// Load reads a probability table file.
func Load(path string) (*Aligner, error) {
	table, err := ibm1.LoadTable(path)
	if err != nil {
		return nil, fmt.Errorf("wordalign: %w", err)
	}
	slog.Debug("Probability table loaded", "path", path, "entries", table.Len())
	return &Aligner{table: table}, nil
}

// Save writes the probability table file.
func (a *Aligner) Save(path string) error {
	if a.table == nil {
		return fmt.Errorf("wordalign: aligner not initialized")
	}
	if err := ibm1.SaveTable(a.table, path); err != nil {
		return fmt.Errorf("wordalign: %w", err)
	}
	return nil
}

// Table returns the underlying probability table.
func (a *Aligner) Table() *ibm1.Table {
	return a.table
}

// Align decodes the best alignment of every pair. Pairs not present in the
// table are added to it with probability 0 for the lifetime of a.
func (a *Aligner) Align(pairs []corpus.Pair, config *AlignConfig) []alignment.Sentence {
	var dc ibm1.DecoderConfig
	if config != nil {
		dc.FirstOccurrence = config.FirstOccurrence
	}
	filled := a.table.Filled()
	out := ibm1.NewDecoder(a.table, dc).DecodeCorpus(pairs)
	slog.Debug("Decoded", "pairs", len(pairs), "unseen-pairs", a.table.Filled()-filled)
	return out
}
