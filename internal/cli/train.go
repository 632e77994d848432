package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/happyhackingspace/wordalign"
	"github.com/happyhackingspace/wordalign/corpus"
	"github.com/schollz/progressbar/v2"
	"github.com/spf13/cobra"
)

func (c *CLI) newTrainCommand() *cobra.Command {
	var iterations, maxPairs int

	cmd := &cobra.Command{
		Use:   "train <source> <target> <probs-out> <pairs-out>",
		Short: "Train IBM Model-1 translation probabilities on a parallel corpus",
		Args:  cobra.ExactArgs(4),
		Example: `  wordalign train europarl.en europarl.es probs.tsv pairs.txt
  wordalign train europarl.en europarl.es probs.tsv pairs.txt --iterations 5 --max-pairs 0 -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath, targetPath, probsPath, pairsPath := args[0], args[1], args[2], args[3]

			config := &wordalign.TrainConfig{
				Iterations: c.config.Train.Iterations,
				MaxPairs:   c.config.Train.MaxPairs,
				KeepCase:   !c.config.Tokenize.Lowercase,
				Verbose:    c.verbose,
			}
			if cmd.Flags().Changed("iterations") {
				config.Iterations = iterations
			}
			if cmd.Flags().Changed("max-pairs") {
				config.MaxPairs = maxPairs
			}

			if !c.silent && config.Iterations > 0 {
				bar := progressbar.NewOptions(config.Iterations,
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionSetDescription("EM"),
					progressbar.OptionSetRenderBlankState(true),
				)
				config.OnIteration = func(int) { _ = bar.Add(1) }
				defer func() { _ = bar.Finish() }()
			}

			slog.Info("Training", "source", sourcePath, "target", targetPath,
				"iterations", config.Iterations, "max-pairs", config.MaxPairs)
			start := time.Now()
			a, pairs, err := wordalign.Train(sourcePath, targetPath, config)
			if err != nil {
				return err
			}
			slog.Debug("Training completed", "duration", time.Since(start))

			if err := a.Save(probsPath); err != nil {
				return err
			}
			slog.Info("Probabilities saved", "path", probsPath, "entries", a.Table().Len())
			if err := corpus.SavePairs(pairsPath, pairs); err != nil {
				return err
			}
			slog.Info("Sentence pairs saved", "path", pairsPath, "pairs", len(pairs))
			return nil
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", 3, "Number of EM iterations")
	cmd.Flags().IntVar(&maxPairs, "max-pairs", 3000, "Read at most this many lines of each corpus (0 reads all)")
	return cmd
}
