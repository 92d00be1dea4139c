package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var flagAll bool

var countsCmd = &cobra.Command{
	Use:   "counts <file>",
	Short: "List array count annotations",
	Long:  "Parses the file, rebuilds the array count index, and prints the rows whose item count reaches the annotation threshold.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCounts,
}

func init() {
	countsCmd.Flags().BoolVar(&flagAll, "all", false, "include arrays below the annotation threshold")
}

func runCounts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagAll {
		cfg.ArrayCountThreshold = 0
	}

	path := args[0]
	engine, err := openDocument(cmd, path, cfg)
	if err != nil {
		return err
	}

	annotations := engine.CountAnnotations(path)
	rows := make([]int, 0, len(annotations))
	for row := range annotations {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	for _, row := range rows {
		fmt.Printf("%d\t[%d]\n", row+1, annotations[row])
	}
	return nil
}
