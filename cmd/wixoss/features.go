package main

import (
	"github.com/spf13/cobra"

	"github.com/peterkuimelis/wixoss/internal/feature"
)

// featuresCmd represents the features command
var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List every feature tag with its label and bit value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderer().Index(cmd.OutOrStdout())
	},
}

// flagsCmd represents the flags command
var flagsCmd = &cobra.Command{
	Use:   "flags TAG...",
	Short: "Combine feature tags into one bit mask",
	Long: `Flags prints the bitwise OR of the named features, the value a client
uses to filter cards having all of them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := feature.ParseNames(args...)
		if err != nil {
			return err
		}
		return renderer().Flags(cmd.OutOrStdout(), set)
	},
}
