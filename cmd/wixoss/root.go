package main

import (
	"github.com/spf13/cobra"

	"github.com/peterkuimelis/wixoss/internal/config"
	"github.com/peterkuimelis/wixoss/internal/render"
)

var (
	configPath string
	cfg        config.Config
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "wixoss",
	Short: "Parse WIXOSS card detail pages into card records",
	Long: `wixoss reads card detail HTML, already downloaded or piped in, and prints
typed card records with normalized skill text and feature tags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("output") {
			loaded.Output, _ = flags.GetString("output")
		}
		if flags.Changed("color") {
			loaded.Color, _ = flags.GetString("color")
		}
		if flags.Changed("cache-dir") {
			loaded.CacheDir, _ = flags.GetString("cache-dir")
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wixoss/config.toml)")
	pf.StringP("output", "o", config.OutputText, "output format: text, json or yaml")
	pf.String("color", config.ColorAuto, "color mode: auto, always or never")
	pf.String("cache-dir", "", "directory of downloaded card pages")

	RootCmd.AddCommand(parseCmd, batchCmd, featuresCmd, flagsCmd, pathCmd)
}

func renderer() *render.Renderer {
	return render.New(cfg.Output, cfg.Color)
}
