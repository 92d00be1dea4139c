package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jward/treefold"
)

var (
	flagConfig string
	flagColor  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "treefold",
	Short:         "Fold summaries and pinned values for JSON/YAML documents",
	Long:          "Treefold parses JSON and YAML with tree-sitter and composes the summary line an editor shows for a collapsed region: bracket symbols, array item counts and previews of pinned values.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupColor(flagColor)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file (defaults apply when omitted)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "colorize output: auto|always|never")

	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(countsCmd)
}

func setupColor(mode string) error {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) &&
			!isatty.IsCygwinTerminal(os.Stdout.Fd())
	default:
		return fmt.Errorf("invalid --color %q (want auto, always or never)", mode)
	}
	return nil
}

// loadConfig returns the configured or default engine config.
func loadConfig() (treefold.Config, error) {
	if flagConfig == "" {
		return treefold.DefaultConfig(), nil
	}
	return treefold.LoadConfig(flagConfig)
}

// openDocument reads path, detects its kind from the extension, and opens
// it in a fresh engine under its own path as document id.
func openDocument(cmd *cobra.Command, path string, cfg treefold.Config) (*treefold.Engine, error) {
	kind, ok := treefold.KindForFile(path)
	if !ok {
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	engine := treefold.New(treefold.WithConfig(cfg))
	if err := engine.Open(cmd.Context(), path, kind, text); err != nil {
		return nil, err
	}
	if err := engine.Render(path); err != nil {
		return nil, err
	}
	return engine, nil
}
