package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/boat-runner/internal/platform/tui"
	"github.com/vovakirdan/boat-runner/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded sessions",
	Long: `Open the replay browser. Select a replay and press Enter to re-run it
and check it still produces the stored result.

With --plain, print the most recent replays as text instead.

Examples:
  boatrunner replays
  boatrunner replays --plain --limit 5`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print replays as text")
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of replays to print with --plain")
}

func runReplays(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	if flagPlain {
		return printReplays(store, flagLimit)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunReplays(store, width, height)
}

func printReplays(store *storage.Store, limit int) error {
	replays, err := store.ListReplays(limit)
	if err != nil {
		return fmt.Errorf("retrieving replays: %w", err)
	}

	fmt.Println("Recorded Sessions")
	fmt.Println()

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'boatrunner play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-5s  %-12s  %-10s  %-7s  %-4s  %-7s  %s\n", "ID", "Player", "Difficulty", "Ticks", "Runs", "Best", "Date")
	fmt.Printf("  %-5s  %-12s  %-10s  %-7s  %-4s  %-7s  %s\n", "--", "------", "----------", "-----", "----", "----", "----")

	for _, r := range replays {
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = "default"
		}
		fmt.Printf("  %-5d  %-12s  %-10s  %-7d  %-4d  %-7.1f  %s\n",
			r.ID, r.Player, difficulty, r.Ticks, r.Runs, r.BestDistance,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("%d replays, %d ticks recorded\n", stats.Count, stats.TotalTicks)
	return nil
}
