package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sigco3111/Tetris-am3d/internal/registry"
	"github.com/sigco3111/Tetris-am3d/internal/storage"
)

var flagSessions bool

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 high scores for the specified variant.

Examples:
  tetris scores tetris
  tetris scores tetris_auto
  tetris scores tetris --sessions`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagSessions, "sessions", false, "Also show recent play sessions")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available variants.")
		os.Exit(1)
	}

	// Get variant title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-5d  %s\n", i+1, entry.Score, entry.Lines, entry.Level, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games played: %d   Best: %d   Average: %.0f   Total lines: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines)
		if !stats.LastPlayed.IsZero() {
			fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}

	if flagSessions {
		printSessions(store, gameID)
	}
}

func printSessions(store *storage.Store, gameID string) {
	sessions, err := store.RecentSessions(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Recent sessions:")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-5s  %-5s  %-9s  %s\n", "Score", "Lines", "Level", "AI", "Duration", "Date")
	fmt.Printf("  %-10s  %-6s  %-5s  %-5s  %-9s  %s\n", "-----", "-----", "-----", "--", "--------", "----")

	shown := 0
	for _, rec := range sessions {
		if rec.GameID != gameID {
			continue
		}
		ai := "no"
		if rec.Autopilot {
			ai = "yes"
		}
		dur := (time.Duration(rec.DurationSecs) * time.Second).String()
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10d  %-6d  %-5d  %-5s  %-9s  %s\n",
			rec.Score, rec.Lines, rec.Level, ai, dur, dateStr)
		shown++
	}

	if shown == 0 {
		fmt.Println("  (none)")
	}
}
