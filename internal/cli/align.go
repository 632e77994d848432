package cli

import (
	"log/slog"
	"time"

	"github.com/happyhackingspace/wordalign"
	"github.com/happyhackingspace/wordalign/alignment"
	"github.com/happyhackingspace/wordalign/corpus"
	"github.com/happyhackingspace/wordalign/internal/storage"
	"github.com/spf13/cobra"
)

func (c *CLI) newAlignCommand() *cobra.Command {
	var firstOccurrence bool

	cmd := &cobra.Command{
		Use:   "align <probs> <alignments-out> <pairs>",
		Short: "Decode the most probable alignment of every sentence pair",
		Args:  cobra.ExactArgs(3),
		Example: `  wordalign align probs.tsv alignments.txt pairs.txt
  wordalign align probs.tsv alignments.txt pairs.txt --first-occurrence`,
		RunE: func(cmd *cobra.Command, args []string) error {
			probsPath, outPath, pairsPath := args[0], args[1], args[2]
			if !cmd.Flags().Changed("first-occurrence") {
				firstOccurrence = c.config.Decode.FirstOccurrence
			}

			start := time.Now()
			a, err := wordalign.Load(probsPath)
			if err != nil {
				return err
			}
			pairs, err := corpus.LoadPairs(pairsPath)
			if err != nil {
				return err
			}
			slog.Debug("Inputs loaded", "pairs", len(pairs), "duration", time.Since(start))

			decoded := a.Align(pairs, &wordalign.AlignConfig{FirstOccurrence: firstOccurrence})
			if err := storage.NewStorage("").WriteString(outPath, alignment.JoinCorpus(decoded)); err != nil {
				return err
			}
			slog.Info("Alignments saved", "path", outPath, "pairs", len(decoded))
			return nil
		},
	}

	cmd.Flags().BoolVar(&firstOccurrence, "first-occurrence", false, "Resolve repeated words to their first occurrence")
	return cmd
}
