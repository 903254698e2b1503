package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/peterkuimelis/wixoss/internal/card"
)

var parseKind string

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse one card detail fragment",
	Long: `Parse reads one card detail fragment from a file, or from stdin when the
argument is "-" or missing. The kind is detected from the card type field
unless --kind is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}

		var (
			rec card.Record
			err error
		)
		if parseKind == "" {
			rec, err = card.ParseAuto(r)
		} else {
			kind, ok := card.ParseKind(parseKind)
			if !ok {
				return fmt.Errorf("unknown kind %q", parseKind)
			}
			rec, err = card.Parse(kind, r)
		}
		if err != nil {
			return err
		}
		return renderer().Card(cmd.OutOrStdout(), card.Project(rec))
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseKind, "kind", "k", "", "card kind slug (e.g. signi, lrig-assist)")
}
