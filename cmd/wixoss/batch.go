package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/peterkuimelis/wixoss/internal/batch"
	"github.com/peterkuimelis/wixoss/internal/cache"
	"github.com/peterkuimelis/wixoss/internal/card"
	"github.com/peterkuimelis/wixoss/internal/log"
)

var (
	batchWorkers int
	batchVerbose bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [file...]",
	Short: "Parse many cards concurrently",
	Long: `Batch parses the given files, or every card in the cache directory when no
file is given. A card that fails is reported and skipped; the command fails
only if no card parsed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var logger log.EventLogger = log.NewMemoryLogger()
		if batchVerbose {
			logger = log.NewTextLogger(cmd.ErrOrStderr())
		}

		var jobs []batch.Job
		if len(args) > 0 {
			jobs = batch.FromFiles(args)
		} else {
			if _, err := os.Stat(cfg.CacheDir); err != nil {
				return fmt.Errorf("cache directory: %w", err)
			}
			var err error
			jobs, err = batch.FromCache(cache.NewDir(cfg.CacheDir), logger)
			if err != nil {
				return err
			}
		}

		workers := cfg.Workers
		if cmd.Flags().Changed("workers") {
			workers = batchWorkers
		}
		results, err := batch.Runner{Workers: workers, Logger: logger}.Run(cmd.Context(), jobs)
		if err != nil {
			return err
		}

		cards := make([]card.Card, 0, len(results))
		for _, res := range results {
			if !res.OK() {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Source, res.Err)
				continue
			}
			cards = append(cards, res.Card)
		}
		if err := renderer().Cards(cmd.OutOrStdout(), cards); err != nil {
			return err
		}
		if len(cards) == 0 && len(jobs) > 0 {
			return fmt.Errorf("no card parsed out of %d", len(jobs))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "concurrent parses (default GOMAXPROCS)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "log every parse event to stderr")
}
