package wordalign

import (
	"fmt"
	"log/slog"

	"github.com/happyhackingspace/wordalign/alignment"
	"github.com/happyhackingspace/wordalign/corpus"
	"github.com/happyhackingspace/wordalign/eval"
	"github.com/happyhackingspace/wordalign/internal/htmlutil"
	"github.com/happyhackingspace/wordalign/internal/storage"
	"github.com/happyhackingspace/wordalign/internal/textutil"
)

// EvalConfig holds configuration for evaluation.
type EvalConfig struct {
	// GoldFolder is prepended to relative gold file names.
	GoldFolder      string
	FirstOccurrence bool
	KeepCase        bool
}

// EvalResult holds evaluation metrics and the decoded gold corpus.
type EvalResult struct {
	eval.Result
	// Decoded is the comma-joined decoder output for the gold sentence pairs.
	Decoded string
	Pairs   int
}

// Evaluate decodes the gold sentence pairs with a and scores the result
// against the gold annotations. Gold target sentences are NULL-completed
// before scoring: every target position without an annotation counts as a
// sure NULL link.
func Evaluate(goldPath, goldSourcePath, goldTargetPath string, a *Aligner, config *EvalConfig) (*EvalResult, error) {
	if config == nil {
		config = &EvalConfig{}
	}
	if a == nil || a.table == nil {
		return nil, fmt.Errorf("wordalign: aligner not initialized")
	}
	store := storage.NewStorage(config.GoldFolder)

	goldLines, err := store.ReadLines(goldPath)
	if err != nil {
		return nil, fmt.Errorf("wordalign: %w", err)
	}
	gold, err := eval.ParseGold(goldLines)
	if err != nil {
		return nil, fmt.Errorf("wordalign: %w", err)
	}

	sourceSents, err := readGoldSentences(store, goldSourcePath)
	if err != nil {
		return nil, err
	}
	targetSents, err := readGoldSentences(store, goldTargetPath)
	if err != nil {
		return nil, err
	}
	if len(sourceSents) != len(targetSents) || len(targetSents) != len(gold) {
		slog.Warn("Gold inputs differ in sentence count",
			"annotated", len(gold), "source", len(sourceSents), "target", len(targetSents))
	}

	pairs := TokenizePairs(sourceSents, targetSents, textutil.NewTokenizer(!config.KeepCase))
	completed, err := eval.CompleteNull(gold, corpus.Lengths(corpus.Targets(pairs)))
	if err != nil {
		return nil, fmt.Errorf("wordalign: %w", err)
	}

	decoded := alignment.JoinCorpus(a.Align(pairs, &AlignConfig{FirstOccurrence: config.FirstOccurrence}))
	reversed, err := eval.ReverseIndexes(alignment.SplitCorpus(decoded))
	if err != nil {
		return nil, fmt.Errorf("wordalign: %w", err)
	}

	res, err := eval.Score(completed, reversed)
	if err != nil {
		return nil, fmt.Errorf("wordalign: %w", err)
	}
	slog.Debug("Evaluation counts",
		"possible-matches", res.PossibleMatches, "sure-matches", res.SureMatches,
		"decoded", res.Decoded, "sure-gold", res.SureGold)
	return &EvalResult{Result: *res, Decoded: decoded, Pairs: len(pairs)}, nil
}

func readGoldSentences(store *storage.Storage, name string) ([]string, error) {
	data, err := store.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("wordalign: %w", err)
	}
	sents, err := htmlutil.ReadSentences(data)
	if err != nil {
		return nil, fmt.Errorf("wordalign: parse %s: %w", name, err)
	}
	return sents, nil
}
