package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/light-arcade/internal/registry"
	"github.com/vovakirdan/light-arcade/internal/render"
	"github.com/vovakirdan/light-arcade/internal/storage"
)

const topScoresLimit = 10

var (
	flagChart     string
	flagAllScores bool
	flagClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display play statistics and the top 10 high scores for a game.
Puzzle games also list the best solution of every solved level.
Without a game, print a summary of every game that has been played.

Scores live in the database given by --db; the default in-memory
database is empty on every run.

Examples:
  arcade scores --db ~/.arcade/scores.db
  arcade scores mirror --db ~/.arcade/scores.db
  arcade scores catch --db ~/.arcade/scores.db --all --chart catch.png
  arcade scores gallery --db ~/.arcade/scores.db --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagChart, "chart", "", "Also save a bar chart of the scores to this PNG file")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the game's scores and level results")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return printOverview(out, store)
	}

	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s\n", info.Title)
		return nil
	}

	scores, err := printGameScores(out, store, info, flagAllScores)
	if err != nil {
		return err
	}

	if flagChart != "" {
		values := make([]int, len(scores))
		for i, s := range scores {
			values[i] = s.Score
		}
		img, err := render.ScoreChart(info.Title, values, 640, 400)
		if err != nil {
			return fmt.Errorf("draw chart: %w", err)
		}
		if err := render.SavePNG(flagChart, img); err != nil {
			return fmt.Errorf("save chart: %w", err)
		}
		fmt.Fprintf(out, "\nChart saved to %s\n", flagChart)
	}
	return nil
}

// printOverview prints one line of statistics per registered game that
// has at least one score.
func printOverview(w io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Arcade Statistics")
	fmt.Fprintln(w)
	if len(stats) == 0 {
		fmt.Fprintln(w, "No games played yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-24s  %-6s  %-8s  %-8s  %s\n", "Game", "Played", "Best", "Average", "Last Played")
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-24s  %-6d  %-8d  %-8.0f  %s\n",
			g.Title, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// printGameScores prints the stats, scores and best level solutions of one
// game. It returns the listed scores.
func printGameScores(w io.Writer, store *storage.Store, info registry.GameInfo, all bool) ([]storage.ScoreEntry, error) {
	var scores []storage.ScoreEntry
	var err error
	if all {
		scores, err = store.AllScores(info.ID)
	} else {
		scores, err = store.TopScores(info.ID, topScoresLimit)
	}
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "High Scores - %s\n", info.Title)

	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return nil, err
	}
	if stats.GamesCount > 0 {
		fmt.Fprintf(w, "Played %d times, best %d, average %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'arcade play %s --db <path>' to set the first high score!\n", info.ID)
	} else {
		fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	levels, err := store.BestLevels(info.ID)
	if err != nil {
		return nil, err
	}
	if len(levels) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Best solutions:")
		fmt.Fprintf(w, "  %-8s  %-7s  %-7s  %-6s  %s\n", "Level", "Mirrors", "Bounces", "Points", "Time")
		for _, l := range levels {
			secs := float64(l.Ticks) / float64(max(1, flagFPS))
			fmt.Fprintf(w, "  %-8s  %-7d  %-7d  %-6d  %.1fs\n", l.LevelID, l.Mirrors, l.Bounces, l.Points, secs)
		}
	}
	return scores, nil
}
