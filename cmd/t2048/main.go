// t2048 plays the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	t2048 play [variant]     - Play a board (default from config)
//	t2048 menu               - Pick boards, scores and options interactively
//	t2048 list               - List available boards
//	t2048 scores <variant>   - Show high scores for a board
//	t2048 stats              - Show totals for every board played
//	t2048 sim                - Replay a move script headlessly
//	t2048 serve              - Start SSH server for remote play
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default from config: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.t2048/scores.db)
//	--config <path>      - Use a custom config YAML
//	--difficulty <name>  - easy, normal or hard
//	--debug              - Verbose logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool

	// appConfig is loaded before any subcommand runs.
	appConfig config.T2048Config

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "t2048",
		Level:  log.WarnLevel,
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is a terminal version of the 2048 sliding-tile puzzle.

Slide all tiles in one direction; two equal tiles that meet merge into
their sum. Reach the target tile to win, and keep going as long as the
board has room.

Available commands:
  play     - Play a board directly
  menu     - Interactive menu with scores and options
  list     - Show all boards
  scores   - View high scores
  stats    - View totals per board
  sim      - Replay a move script without a terminal UI
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play 2048_5x5 --difficulty hard
  t2048 menu
  t2048 sim --seed 42 --moves "lurdlurd"
  t2048 serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig reads the config file and environment, applies flags on top
// and hands the game tunables to the t2048 package.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
	}

	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return err
	}

	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyT2048Preset(&cfg, preset)
	}
	if f := cmd.Flag("fps"); f != nil && f.Changed {
		cfg.Display.FPS = flagFPS
	}
	if f := cmd.Flag("db"); f != nil && f.Changed {
		cfg.Storage.DBPath = flagDBPath
	}

	mode, err := t2048.ParseAnimationMode(cfg.Display.Animation)
	if err != nil {
		return err
	}
	t2048.Configure(t2048.Settings{
		Spawn4Prob:   cfg.Board.Spawn4Prob,
		HistoryLimit: cfg.Session.HistoryLimit,
		Animation:    mode,
	})

	logger.Debug("config loaded",
		"variant", cfg.Board.Variant,
		"spawn4", cfg.Board.Spawn4Prob,
		"history", cfg.Session.HistoryLimit,
		"animation", mode,
		"theme", cfg.Display.Theme,
		"db", cfg.Storage.DBPath,
	)
	appConfig = cfg
	return nil
}
