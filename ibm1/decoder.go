package ibm1

import (
	"github.com/happyhackingspace/wordalign/alignment"
	"github.com/happyhackingspace/wordalign/corpus"
)

// DecoderConfig controls how positions are assigned during decoding.
type DecoderConfig struct {
	// FirstOccurrence resolves every token to the position of the first
	// occurrence of its word form in the sentence, on both sides. A repeated
	// word then shares one index. Off by default: each token keeps its own
	// position.
	FirstOccurrence bool
}

// Decoder picks, for every target position, the most probable source position.
type Decoder struct {
	table  *Table
	config DecoderConfig
}

// NewDecoder creates a decoder over table. Decoding fills missing pairs into
// table with probability 0 (see Table.Lookup).
func NewDecoder(table *Table, config DecoderConfig) *Decoder {
	return &Decoder{table: table, config: config}
}

// Decode returns one link per target position. Source candidates are scanned
// in sentence order and only a strictly greater probability replaces the
// current best, so the earliest candidate wins ties.
func (d *Decoder) Decode(pair corpus.Pair) alignment.Sentence {
	srcPos := d.positions(pair.Source, 0)
	tgtPos := d.positions(pair.Target, 1)

	out := make(alignment.Sentence, len(pair.Target))
	for j, tw := range pair.Target {
		best := alignment.Link{Source: -1, Target: tgtPos[j]}
		bestP := 0.0
		for i, sw := range pair.Source {
			p := d.table.Lookup(sw, tw)
			if best.Source < 0 || p > bestP {
				best.Source = srcPos[i]
				bestP = p
			}
		}
		if best.Source < 0 {
			// Empty source sentence: fall back to NULL.
			best.Source = 0
		}
		out[j] = best
	}
	return out
}

// DecodeCorpus decodes every pair in order.
func (d *Decoder) DecodeCorpus(pairs []corpus.Pair) []alignment.Sentence {
	out := make([]alignment.Sentence, len(pairs))
	for i, p := range pairs {
		out[i] = d.Decode(p)
	}
	return out
}

// positions returns the index of every token, counting from base.
func (d *Decoder) positions(s corpus.Sentence, base int) []int {
	pos := make([]int, len(s))
	if !d.config.FirstOccurrence {
		for i := range s {
			pos[i] = i + base
		}
		return pos
	}
	first := make(map[string]int, len(s))
	for i, w := range s {
		if _, ok := first[w]; !ok {
			first[w] = i + base
		}
		pos[i] = first[w]
	}
	return pos
}
