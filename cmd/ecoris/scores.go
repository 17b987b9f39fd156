package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ecoris/internal/platform/tui"
	"github.com/vovakirdan/ecoris/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best results",
	Long: `Display the best results recorded on this machine.

Examples:
  ecoris scores
  ecoris scores --limit 25
  ecoris scores --interactive
  ecoris scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening results database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Println("All results deleted.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	results, err := store.TopResults(flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving results: %v", err)
	}

	fmt.Println("Ecoris - Best Results")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ecoris play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-22s  %-9s  %s\n", "Rank", "Score", "Lines", "Title", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-22s  %-9s  %s\n", "----", "-----", "-----", "-----", "-------", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-8d  %-5d  %-22s  %-9s  %s\n",
			i+1, r.Score, r.Lines, r.Title, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d   Games: %d   Average: %.0f\n", stats.HighScore, stats.Games, stats.AvgScore)
	}
}
