// Command ringdemo demonstrates the ringbar seek ring: an interactive
// terminal scrubber with real audio playback, and a PNG preview
// renderer.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/ringbar"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	flagSize     float64
	flagRadius   float64
	flagBarWidth float64
	flagSamples  int

	cfg *Config
)

var rootCmd = &cobra.Command{
	Use:   "ringdemo",
	Short: "Interactive ring seek bar demo",
	Long: `Ringdemo draws a rounded-rectangle seek ring around the terminal and
scrubs audio playback by projecting the mouse onto it.`,
	SilenceUsage: true,
}

func init() {
	// Assigned here rather than in the composite literal: initConfig
	// reads rootCmd's flags, and referencing it from the literal forms
	// an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.config/ringdemo/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().Float64Var(&flagSize, "size", 0, "surface side length in pixels")
	rootCmd.PersistentFlags().Float64Var(&flagRadius, "radius", 0, "corner radius in pixels")
	rootCmd.PersistentFlags().Float64Var(&flagBarWidth, "bar-width", 0, "ring stroke thickness in pixels")
	rootCmd.PersistentFlags().IntVar(&flagSamples, "samples", 0, "projection sample count")

	rootCmd.AddCommand(playCmd, renderCmd)
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = LoadFrom(cfgFile)
	} else {
		cfg, err = Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("size") {
		cfg.Ring.Size = flagSize
	}
	if flags.Changed("radius") {
		cfg.Ring.CornerRadius = flagRadius
	}
	if flags.Changed("bar-width") {
		cfg.Ring.BarWidth = flagBarWidth
	}
	if flags.Changed("samples") {
		cfg.Ring.Samples = flagSamples
	}

	if verbose {
		ringbar.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
