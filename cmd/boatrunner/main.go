// boatrunner is an endless boat runner played in the terminal.
//
// Usage:
//
//	boatrunner play          - Play in this terminal
//	boatrunner serve         - Start SSH server for remote play
//	boatrunner replays       - Browse recorded sessions
//	boatrunner replay <id>   - Re-run a recorded session and verify it
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.boatrunner/replays.db)
//	--config <path>     - Use a custom game config (YAML or TOML)
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level> - debug, info, warn, error
//
// Every global flag can also come from a BOATRUNNER_* environment variable.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/boat-runner/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/boat-runner/internal/games/boatrunner"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boatrunner",
	Short: "Boat Runner - steer between the rocks in your terminal",
	Long: `Boat Runner is an endless runner: the boat stays put while rocks and
sea scroll toward it, getting faster the longer you survive.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  replays  - Browse recorded sessions
  replay   - Re-run a recorded session and verify it

Examples:
  boatrunner play
  boatrunner play --difficulty hard --seed 42
  boatrunner serve --ssh :2222
  boatrunner replays --plain
  boatrunner replay 3`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyEnv,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.boatrunner/replays.db", "Path to replay database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.boatrunner/boatrunner.log", "Log file used while playing locally")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
}

// applyEnv fills every flag the user did not pass from BOATRUNNER_* variables.
func applyEnv(cmd *cobra.Command, _ []string) error {
	e, err := config.ParseEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("fps") && e.FPS > 0 {
		flagFPS = e.FPS
	}
	if !flags.Changed("seed") && e.Seed != 0 {
		flagSeed = e.Seed
	}
	if !flags.Changed("db") && e.DBPath != "" {
		flagDBPath = e.DBPath
	}
	if !flags.Changed("config") && e.ConfigPath != "" {
		flagConfig = e.ConfigPath
	}
	if !flags.Changed("difficulty") && e.Difficulty != "" {
		flagDifficulty = e.Difficulty
	}
	if !flags.Changed("log-level") && e.LogLevel != "" {
		flagLogLevel = e.LogLevel
	}
	if !flags.Changed("log-file") && e.LogFile != "" {
		flagLogFile = e.LogFile
	}
	if f := flags.Lookup("ssh"); f != nil && !f.Changed && e.SSHAddr != "" {
		flagSSHAddr = e.SSHAddr
	}
	return nil
}

// newLogger builds a logger writing to w at the configured level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", flagLogLevel)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens the play log for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
