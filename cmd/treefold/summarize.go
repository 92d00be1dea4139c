package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jward/treefold"
)

var (
	flagAt    string
	flagPins  []string
	flagLines bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Compose the fold summary for a region",
	Long:  "Parses the file, applies any --pin paths, and prints the summary line for the region at --at (the document root region by default).",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&flagAt, "at", "0:0", "region position as row[:col], zero-based")
	summarizeCmd.Flags().StringArrayVar(&flagPins, "pin", nil, "canonical pin path (repeatable), e.g. .a.b")
	summarizeCmd.Flags().BoolVar(&flagLines, "lines", false, "append the region's line count")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagLines {
		cfg.LineCountEnabled = true
	}

	path := args[0]
	engine, err := openDocument(cmd, path, cfg)
	if err != nil {
		return err
	}

	for _, pin := range flagPins {
		if !engine.PinPath(path, pin) {
			return fmt.Errorf("invalid pin path %q (want canonical form like .a.b)", pin)
		}
	}

	row, col, err := parsePosition(flagAt)
	if err != nil {
		return err
	}

	sum, err := engine.ComposeFoldSummary(path, row, col)
	if err != nil {
		return err
	}
	if sum == nil {
		return fmt.Errorf("no object or array region at %s", flagAt)
	}

	fmt.Println(renderSummary(sum))
	return nil
}

// parsePosition parses "row" or "row:col" into zero-based coordinates.
func parsePosition(s string) (row, col int, err error) {
	rowStr, colStr, hasCol := strings.Cut(s, ":")
	row, err = strconv.Atoi(rowStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid position %q: %w", s, err)
	}
	if hasCol {
		col, err = strconv.Atoi(colStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid position %q: %w", s, err)
		}
	}
	return row, col, nil
}

// styleColors maps the provider's opaque style tags onto terminal colors.
var styleColors = map[string]*color.Color{
	"punctuation.brace":   color.New(color.FgYellow),
	"punctuation.bracket": color.New(color.FgCyan),
}

func paint(symbol, style string) string {
	if c, ok := styleColors[style]; ok {
		return c.Sprint(symbol)
	}
	return symbol
}

// renderSummary rebuilds the summary line with the bracket symbols painted
// according to their style tags. The layout matches FoldSummary.Text.
func renderSummary(s *treefold.FoldSummary) string {
	var b strings.Builder
	dim := color.New(color.Faint)

	if len(s.Pins) > 0 {
		b.WriteString(paint(s.Opener, s.OpenerStyle))
		b.WriteByte(' ')
		for _, p := range s.Pins {
			b.WriteString(color.New(color.FgGreen).Sprint(p.Path))
			b.WriteString(": ")
			b.WriteString(p.Value)
			b.WriteString(", ")
		}
		b.WriteString(dim.Sprint("…"))
		b.WriteByte(' ')
		b.WriteString(paint(s.Closer, s.CloserStyle))
	} else {
		b.WriteString(paint(s.Opener, s.OpenerStyle))
		b.WriteString(dim.Sprint("…"))
		b.WriteString(paint(s.Closer, s.CloserStyle))
	}
	if s.HasCount {
		fmt.Fprintf(&b, " [%d]", s.Count)
	}
	if s.HasLines {
		fmt.Fprintf(&b, " lines: %d", s.Lines)
	}
	return b.String()
}
