package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/light-arcade/internal/core"
	"github.com/vovakirdan/light-arcade/internal/games/catch"
	"github.com/vovakirdan/light-arcade/internal/games/gallery"
	"github.com/vovakirdan/light-arcade/internal/games/mirror"
	"github.com/vovakirdan/light-arcade/internal/platform/tui"
	"github.com/vovakirdan/light-arcade/internal/registry"
	"github.com/vovakirdan/light-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD    - Move cursor / plate / aim
  Space          - Place or grab a mirror, fire, start
  Enter          - Switch the light on, continue
  [ ] or Z X     - Rotate the selected mirror
  Tab            - Select the next mirror
  Backspace/Del  - Remove the selected mirror
  Mouse          - Click to place, drag to move, drag the handle or wheel to rotate
  P/Esc          - Pause
  R              - Restart
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play mirror
  arcade play mirror --level 3
  arcade play mirror_random --difficulty hard
  arcade play catch --config ./my-catch.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (skips the mode menu)")
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// prepareGame applies config and difficulty flags and runs any game
// sub-menu. It returns the registry ID to create, or false if the user
// backed out.
func prepareGame(gameID string, store *storage.Store, cfg core.RuntimeConfig, level int) (string, bool, error) {
	switch gameID {
	case "catch":
		catch.SetConfigPath(flagConfig)
		catch.SetDifficultyPreset(flagDifficulty)
	case "gallery":
		gallery.SetConfigPath(flagConfig)
		gallery.SetDifficultyPreset(flagDifficulty)
	case "mirror_random":
		mirror.SetConfigPath(flagConfig)
		mirror.SetDifficultyPreset(flagDifficulty)
	case "mirror":
		mirror.SetConfigPath(flagConfig)
		mirror.SetDifficultyPreset(flagDifficulty)
		mirror.SetStartLevel(level)
		if level > 0 {
			return gameID, true, nil
		}

		selection, err := tui.RunMirrorModeSelector(store, cfg)
		if err != nil {
			return "", false, err
		}
		if selection == nil {
			return "", false, nil
		}
		mirror.SetStartLevel(selection.Level)
		return selection.GameID(), true, nil
	}
	return gameID, true, nil
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	cfg := terminalConfig()
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	gameID, ok, err := prepareGame(gameID, store, cfg, flagLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if !ok {
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return
	}

	log.Info("starting game", "game", gameID, "seed", cfg.Seed)
	if err := tui.Run(game, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
	}
}
