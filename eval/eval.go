// Package eval scores decoded word alignments against a gold standard with
// sure and possible links.
package eval

import (
	"errors"
	"fmt"

	"github.com/happyhackingspace/wordalign/alignment"
)

// ErrUndefinedMetric is returned when a metric's denominator is zero.
var ErrUndefinedMetric = errors.New("eval: undefined metric")

// Counts are the set sizes the metrics are computed from.
type Counts struct {
	PossibleMatches int // |A ∩ P|, where P includes S
	SureMatches     int // |A ∩ S|
	Decoded         int // |A|
	SureGold        int // |S|
}

// Result holds the evaluation metrics.
type Result struct {
	Counts
	Precision float64
	Recall    float64
	AER       float64
}

// ReverseIndexes turns decoder output ("target-source" tokens, one string per
// sentence) into links comparable with the gold standard.
func ReverseIndexes(decoded []string) ([]alignment.Sentence, error) {
	out := make([]alignment.Sentence, len(decoded))
	for i, line := range decoded {
		s, err := alignment.ParseDecoded(line)
		if err != nil {
			return nil, fmt.Errorf("eval: decoded sentence %d: %w", i+1, err)
		}
		out[i] = s
	}
	return out, nil
}

// Count compares decoded sentence i with gold sentence i. Decoded links are
// counted with multiplicity.
func Count(gold []GoldSentence, decoded []alignment.Sentence) Counts {
	var c Counts
	for _, g := range gold {
		for _, l := range g.Links {
			if l.Label == Sure {
				c.SureGold++
			}
		}
	}
	for _, d := range decoded {
		c.Decoded += len(d)
	}

	n := min(len(gold), len(decoded))
	for i := range n {
		labels := make(map[alignment.Link]Label, len(gold[i].Links))
		for _, l := range gold[i].Links {
			if labels[l.Link] != Sure {
				labels[l.Link] = l.Label
			}
		}
		for _, l := range decoded[i] {
			switch labels[l] {
			case Sure:
				c.SureMatches++
				c.PossibleMatches++
			case Possible:
				c.PossibleMatches++
			}
		}
	}
	return c
}

// Precision returns |A ∩ P| / |A|.
func (c Counts) Precision() (float64, error) {
	if c.Decoded == 0 {
		return 0, fmt.Errorf("%w: precision with no decoded links", ErrUndefinedMetric)
	}
	return float64(c.PossibleMatches) / float64(c.Decoded), nil
}

// Recall returns |A ∩ S| / |S|.
func (c Counts) Recall() (float64, error) {
	if c.SureGold == 0 {
		return 0, fmt.Errorf("%w: recall with no sure gold links", ErrUndefinedMetric)
	}
	return float64(c.SureMatches) / float64(c.SureGold), nil
}

// AER returns 1 - (|A ∩ S| + |A ∩ P|) / (|A| + |S|).
func (c Counts) AER() (float64, error) {
	if c.Decoded+c.SureGold == 0 {
		return 0, fmt.Errorf("%w: AER with no links", ErrUndefinedMetric)
	}
	return 1 - float64(c.SureMatches+c.PossibleMatches)/float64(c.Decoded+c.SureGold), nil
}

// Score counts matches and computes precision, recall and AER. Any zero
// denominator is reported as an error wrapping ErrUndefinedMetric.
func Score(gold []GoldSentence, decoded []alignment.Sentence) (*Result, error) {
	r := &Result{Counts: Count(gold, decoded)}
	var err error
	if r.Precision, err = r.Counts.Precision(); err != nil {
		return nil, err
	}
	if r.Recall, err = r.Counts.Recall(); err != nil {
		return nil, err
	}
	if r.AER, err = r.Counts.AER(); err != nil {
		return nil, err
	}
	return r, nil
}
