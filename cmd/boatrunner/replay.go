package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boat-runner/internal/replay"
	"github.com/vovakirdan/boat-runner/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a recorded session and verify it",
	Long: `Re-run a stored session headless from its seed, config and inputs,
print the outcome, and check it matches what was stored.

Exits with an error when the replay diverges.

Examples:
  boatrunner replay 3`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid replay id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	row, err := store.LoadReplay(id)
	if err != nil {
		return err
	}
	rec, err := replay.FromStorage(row)
	if err != nil {
		return err
	}
	sum, err := replay.Play(rec)
	if err != nil {
		return err
	}

	fmt.Printf("Replay #%d by %s (%s)\n", row.ID, row.Player, row.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("  %-14s %d\n", "Seed", rec.Seed)
	fmt.Printf("  %-14s %d\n", "Ticks", sum.Ticks)
	fmt.Printf("  %-14s %d\n", "Runs", sum.Runs)
	fmt.Printf("  %-14s %d\n", "Crashes", sum.Crashes)
	fmt.Printf("  %-14s %.1f\n", "Best distance", sum.BestDistance)
	fmt.Printf("  %-14s %s (distance %.1f)\n", "Final state", sum.FinalState, sum.FinalDistance)
	fmt.Println()

	if !sum.Matches(row.Ticks, row.Runs, row.Crashes, row.BestDistance) {
		return fmt.Errorf("replay %d diverged: stored %d ticks, %d runs, %d crashes, best %.1f",
			row.ID, row.Ticks, row.Runs, row.Crashes, row.BestDistance)
	}
	fmt.Println("Verified: the replay reproduces the stored result.")
	return nil
}
