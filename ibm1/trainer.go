package ibm1

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/happyhackingspace/wordalign/corpus"
)

var (
	// ErrNoTargetWords is returned when the target vocabulary is empty.
	ErrNoTargetWords = errors.New("ibm1: empty target vocabulary")
	// ErrEmptyCorpus is returned when there are no sentence pairs to train on.
	ErrEmptyCorpus = errors.New("ibm1: empty parallel corpus")
	// ErrUnknownWord is returned when a corpus token is missing from the vocabulary.
	ErrUnknownWord = errors.New("ibm1: word not in vocabulary")
	// ErrZeroMass is returned when a normaliser would divide by zero.
	ErrZeroMass = errors.New("ibm1: zero probability mass")
)

// TrainerConfig holds EM training parameters.
type TrainerConfig struct {
	Iterations int
	Verbose    bool
	// OnIteration, if set, is called after each completed iteration (1-based).
	OnIteration func(iteration int)
}

// DefaultTrainerConfig returns the default training config: three EM
// iterations and no convergence test.
func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		Iterations: 3,
	}
}

// Initialise assigns 1/|target| to every (source, target) pair. Entries are
// inserted target-major: for each target word, every source word in order.
func Initialise(source, target []string) (*Table, error) {
	tb := &Table{
		Source: NewAlphabet(source...),
		Target: NewAlphabet(target...),
		probs:  make(map[entry]float64),
	}
	nT := tb.Target.Size()
	if nT == 0 {
		return nil, ErrNoTargetWords
	}
	initial := 1 / float64(nT)
	for t := range nT {
		for s := range tb.Source.Size() {
			tb.set(entry{s, t}, initial)
		}
	}
	return tb, nil
}

// Train estimates P(s|t) over the given vocabularies with a fixed number of
// EM iterations.
func Train(source, target []string, pairs []corpus.Pair, config TrainerConfig) (*Table, error) {
	if config.Iterations < 0 {
		return nil, fmt.Errorf("ibm1: negative iteration count %d", config.Iterations)
	}
	if len(pairs) == 0 {
		return nil, ErrEmptyCorpus
	}
	tb, err := Initialise(source, target)
	if err != nil {
		return nil, err
	}

	// Convert the corpus to alphabet IDs once.
	type internalPair struct {
		src, tgt []int
	}
	internals := make([]internalPair, len(pairs))
	for i, p := range pairs {
		ip := internalPair{src: make([]int, len(p.Source)), tgt: make([]int, len(p.Target))}
		for j, w := range p.Source {
			if ip.src[j] = tb.Source.Get(w); ip.src[j] < 0 {
				return nil, fmt.Errorf("%w: source %q in pair %d", ErrUnknownWord, w, i+1)
			}
		}
		for j, w := range p.Target {
			if ip.tgt[j] = tb.Target.Get(w); ip.tgt[j] < 0 {
				return nil, fmt.Errorf("%w: target %q in pair %d", ErrUnknownWord, w, i+1)
			}
		}
		internals[i] = ip
	}

	nS, nT := tb.Source.Size(), tb.Target.Size()

	// prob[t][s] mirrors the table during training.
	prob := make([][]float64, nT)
	count := make([][]float64, nT)
	for t := range nT {
		prob[t] = make([]float64, nS)
		count[t] = make([]float64, nS)
		for s := range nS {
			prob[t][s] = 1 / float64(nT)
		}
	}
	total := make([]float64, nT)

	for iter := range config.Iterations {
		start := time.Now()
		for t := range nT {
			clear(count[t])
		}
		clear(total)

		for i, ip := range internals {
			// Normalisation over this sentence's target tokens only.
			sTotal := make([]float64, len(ip.src))
			for j, s := range ip.src {
				for _, t := range ip.tgt {
					sTotal[j] += prob[t][s]
				}
			}
			// E-step
			for j, s := range ip.src {
				if sTotal[j] == 0 {
					if len(ip.tgt) == 0 {
						break
					}
					return nil, fmt.Errorf("%w: source %q in pair %d", ErrZeroMass, tb.Source.Word(s), i+1)
				}
				for _, t := range ip.tgt {
					c := prob[t][s] / sTotal[j]
					count[t][s] += c
					total[t] += c
				}
			}
		}

		// M-step over the full vocabularies.
		for t := range nT {
			if total[t] == 0 {
				return nil, fmt.Errorf("%w: target %q never observed", ErrZeroMass, tb.Target.Word(t))
			}
			for s := range nS {
				prob[t][s] = count[t][s] / total[t]
			}
		}

		slog.Debug("EM iteration", "iteration", iter+1, "of", config.Iterations, "pairs", len(internals), "duration", time.Since(start))
		if config.OnIteration != nil {
			config.OnIteration(iter + 1)
		}
	}

	for t := range nT {
		for s := range nS {
			tb.set(entry{s, t}, prob[t][s])
		}
	}
	if config.Verbose {
		slog.Info("Training finished", "source-words", nS, "target-words", nT, "entries", tb.Len())
	}
	return tb, nil
}
