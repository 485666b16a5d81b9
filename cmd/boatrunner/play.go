package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/boat-runner/internal/core"
	"github.com/vovakirdan/boat-runner/internal/games/boatrunner"
	"github.com/vovakirdan/boat-runner/internal/platform/tui"
	"github.com/vovakirdan/boat-runner/internal/registry"
	"github.com/vovakirdan/boat-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal. The session is recorded and stored
in the replay database when you quit.

Controls:
  A/Left, D/Right - Steer
  Space/Enter     - Start
  R               - Reset (after a crash)
  Ctrl+S          - Screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slow ramp, low ceiling
  normal - Default tuning
  hard   - Fast ramp, high ceiling
  fixed  - No ramp, base speed only

Examples:
  boatrunner play
  boatrunner play --difficulty hard
  boatrunner play --seed 42 --fps 30
  boatrunner play --config ./my-boatrunner.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "boatrunner")
	if err != nil {
		return err
	}

	boatrunner.SetConfigPath(flagConfig)
	if err := boatrunner.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(boatrunner.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game already ran; only the replay is lost.
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		return nil
	}
	defer store.Close()

	id, err := tui.SaveRecording(store, game, playerName(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save replay: %v\n", err)
		return nil
	}
	if id != 0 {
		fmt.Printf("Replay saved as #%d (boatrunner replay %d)\n", id, id)
	}
	return nil
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
