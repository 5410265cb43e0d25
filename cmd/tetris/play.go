package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sigco3111/Tetris-am3d/internal/core"
	"github.com/sigco3111/Tetris-am3d/internal/games/tetris"
	"github.com/sigco3111/Tetris-am3d/internal/platform/tui"
	"github.com/sigco3111/Tetris-am3d/internal/registry"
	"github.com/sigco3111/Tetris-am3d/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagAutopilot  bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: tetris).

Controls:
  A/D, Left/Right  - Shift piece
  W/Up             - Rotate clockwise
  S/Down           - Soft drop
  Space            - Hard drop
  T                - Toggle autopilot
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 3
  hard   - Start at level 6

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --level 10
  tetris play --autopilot
  tetris play tetris_auto
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (skips the mode selector)")
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Start with the AI driving (skips the mode selector)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "tetris"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available variants.")
		os.Exit(1)
	}

	// Get terminal size early for mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)

	switch {
	case gameID == "tetris_auto":
		// Direct autopilot launch, no selector
		if flagLevel > 0 {
			tetris.SetStartLevel(flagLevel)
		}

	case flagAutopilot || flagLevel > 0:
		// Flags pin the mode, skip the selector
		if flagAutopilot {
			gameID = "tetris_auto"
		}
		if flagLevel > 0 {
			tetris.SetStartLevel(flagLevel)
		}

	default:
		// Show mode/level selector
		selection, updatedCfg, selErr := tui.RunTetrisModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		// Apply selection
		if selection.Autopilot {
			gameID = "tetris_auto"
		}
		if selection.StartLevel > 0 {
			tetris.SetStartLevel(selection.StartLevel)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
