package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/happyhackingspace/wordalign"
	"github.com/happyhackingspace/wordalign/internal/storage"
	"github.com/spf13/cobra"
)

func (c *CLI) newEvaluateCommand() *cobra.Command {
	var goldFolder string
	var firstOccurrence bool

	cmd := &cobra.Command{
		Use:   "evaluate <gold> <gold-source> <gold-target> <probs> <alignments-out>",
		Short: "Score decoded alignments against a gold standard (precision, recall, AER)",
		Args:  cobra.ExactArgs(5),
		Example: `  wordalign evaluate test.wa.nonullalign test.en test.es probs.tsv gold_alignments.txt --gold-folder gold`,
		RunE: func(cmd *cobra.Command, args []string) error {
			goldPath, goldSource, goldTarget, probsPath, outPath := args[0], args[1], args[2], args[3], args[4]
			if !cmd.Flags().Changed("gold-folder") {
				goldFolder = c.config.Evaluate.GoldFolder
			}
			if !cmd.Flags().Changed("first-occurrence") {
				firstOccurrence = c.config.Decode.FirstOccurrence
			}

			a, err := wordalign.Load(probsPath)
			if err != nil {
				return err
			}

			slog.Info("Evaluating", "gold", goldPath, "gold-folder", goldFolder)
			start := time.Now()
			result, err := wordalign.Evaluate(goldPath, goldSource, goldTarget, a, &wordalign.EvalConfig{
				GoldFolder:      goldFolder,
				FirstOccurrence: firstOccurrence,
				KeepCase:        !c.config.Tokenize.Lowercase,
			})
			if err != nil {
				return err
			}
			slog.Debug("Evaluation completed", "pairs", result.Pairs, "duration", time.Since(start))

			if err := storage.NewStorage("").WriteString(outPath, result.Decoded); err != nil {
				return err
			}
			slog.Info("Gold alignments saved", "path", outPath)

			fmt.Printf("Precision: %v\n", result.Precision)
			fmt.Printf("Recall: %v\n", result.Recall)
			fmt.Printf("AER: %v\n", result.AER)
			return nil
		},
	}

	cmd.Flags().StringVar(&goldFolder, "gold-folder", "", "Folder holding the gold files")
	cmd.Flags().BoolVar(&firstOccurrence, "first-occurrence", false, "Resolve repeated words to their first occurrence")
	return cmd
}
