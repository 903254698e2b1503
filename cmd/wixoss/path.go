package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/peterkuimelis/wixoss/internal/cache"
)

// pathCmd represents the path command
var pathCmd = &cobra.Command{
	Use:   "path CARD_NO|URL",
	Short: "Print where a card is stored in the cache directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := cache.Resolve(args[0])
		if err != nil {
			return err
		}
		rel, err := q.RelativePath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(cfg.CacheDir, filepath.FromSlash(rel)))
		return nil
	},
}
