package wordalign

import (
	"fmt"
	"log/slog"

	"github.com/happyhackingspace/wordalign/corpus"
	"github.com/happyhackingspace/wordalign/ibm1"
	"github.com/happyhackingspace/wordalign/internal/storage"
	"github.com/happyhackingspace/wordalign/internal/textutil"
)

// TrainConfig holds configuration for training.
type TrainConfig struct {
	Iterations int
	// MaxPairs keeps only the first MaxPairs lines of each corpus; 0 keeps all.
	MaxPairs int
	// KeepCase disables lower-casing of tokens.
	KeepCase    bool
	Verbose     bool
	OnIteration func(iteration int)
}

// DefaultTrainConfig returns the default training configuration.
func DefaultTrainConfig() *TrainConfig {
	return &TrainConfig{
		Iterations: ibm1.DefaultTrainerConfig().Iterations,
		MaxPairs:   3000,
	}
}

// Train reads a source and a target corpus (one sentence per line, aligned by
// line number), tokenises them and runs EM. It returns the aligner and the
// tokenised sentence pairs it was trained on.
func Train(sourcePath, targetPath string, config *TrainConfig) (*Aligner, []corpus.Pair, error) {
	if config == nil {
		config = DefaultTrainConfig()
	}

	store := storage.NewStorage("")
	sourceLines, err := store.ReadLines(sourcePath)
	if err != nil {
		return nil, nil, fmt.Errorf("wordalign: %w", err)
	}
	targetLines, err := store.ReadLines(targetPath)
	if err != nil {
		return nil, nil, fmt.Errorf("wordalign: %w", err)
	}
	if len(sourceLines) != len(targetLines) {
		slog.Warn("Corpus sizes differ, truncating to the shorter one",
			"source-lines", len(sourceLines), "target-lines", len(targetLines))
	}
	sourceLines = corpus.Head(sourceLines, config.MaxPairs)
	targetLines = corpus.Head(targetLines, config.MaxPairs)

	pairs := TokenizePairs(sourceLines, targetLines, textutil.NewTokenizer(!config.KeepCase))
	if len(pairs) == 0 {
		return nil, nil, fmt.Errorf("wordalign: %w", ibm1.ErrEmptyCorpus)
	}
	sourceVocab := corpus.Vocabulary(corpus.Sources(pairs))
	targetVocab := corpus.Vocabulary(corpus.Targets(pairs))
	slog.Info("Corpus prepared", "pairs", len(pairs), "source-words", len(sourceVocab), "target-words", len(targetVocab))

	table, err := ibm1.Train(sourceVocab, targetVocab, pairs, ibm1.TrainerConfig{
		Iterations:  config.Iterations,
		Verbose:     config.Verbose,
		OnIteration: config.OnIteration,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("wordalign: %w", err)
	}
	return &Aligner{table: table}, pairs, nil
}

// TokenizePairs tokenises both sides, prepends NULL to every source sentence
// and pairs them by position.
func TokenizePairs(sourceLines, targetLines []string, tk *textutil.Tokenizer) []corpus.Pair {
	source := make([]corpus.Sentence, len(sourceLines))
	for i, l := range sourceLines {
		source[i] = corpus.WithNull(tk.Tokenize(l))
	}
	target := make([]corpus.Sentence, len(targetLines))
	for i, l := range targetLines {
		target[i] = tk.Tokenize(l)
	}
	return corpus.NewPairs(source, target)
}
