package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/minofall/minofall/internal/platform/tui"
	"github.com/minofall/minofall/internal/storage"
)

var flagRecordsPlain bool

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Browse past results",
	Long: `Browse recorded game results, grouped by generator mode.

By default an interactive table opens; --plain prints the top ten to
stdout instead.

Examples:
  minofall records
  minofall records --plain`,
	Args: cobra.NoArgs,
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagRecordsPlain, "plain", false, "Print results instead of opening the interactive table")
}

func runRecords(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRecordsPlain {
		printRecords(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunRecords(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing records: %v\n", err)
		os.Exit(1)
	}
}

func printRecords(store *storage.Store) {
	results, err := store.TopResults("", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Records")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'minofall play' to set the first record!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-8s  %-9s  %-10s  %s\n", "Rank", "Lines", "Pieces", "Mode", "End", "Date")
	fmt.Printf("  %-4s  %-7s  %-8s  %-9s  %-10s  %s\n", "----", "-----", "------", "----", "---", "----")

	// Print results
	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-8d  %-9s  %-10s  %s\n", i+1, r.Lines, r.Pieces, r.Mode, r.EndState, dateStr)
	}

	fmt.Println()
	if best, err := store.BestLines(""); err == nil {
		fmt.Printf("Best: %d lines\n", best)
	}
}
