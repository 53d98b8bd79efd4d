package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/minofall/minofall/internal/config"
	"github.com/minofall/minofall/internal/platform/tui"
	"github.com/minofall/minofall/internal/storage"
)

var (
	flagConfig    string
	flagGenerator string
	flagPreviews  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game session.

Controls:
  Left/Right  - Move tile
  Down        - Soft drop
  Space       - Hard drop
  Z / X       - Rotate
  A           - 180 turn
  C / Tab     - Hold
  R           - Restart (after game over)
  Q / Ctrl+C  - Quit

Generator options:
  bag      - Every tile appears exactly once per seven draws
  history  - Random draws biased against recent repeats

Examples:
  minofall play
  minofall play --generator history
  minofall play --previews 3
  minofall play --seed 42 --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagGenerator, "generator", "", "Tile generator: bag or history")
	playCmd.Flags().IntVar(&flagPreviews, "previews", 0, "Preview queue size (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides
	if flagGenerator != "" {
		t := config.GeneratorType(flagGenerator)
		if !t.Valid() {
			fmt.Fprintf(os.Stderr, "Error: unknown generator %q (want bag or history)\n", flagGenerator)
			os.Exit(1)
		}
		gameCfg.Generator.Type = t
	}
	if flagPreviews > 0 {
		gameCfg.Playground.Previews = flagPreviews
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := tui.RuntimeConfig{
		Game:     gameCfg,
		Seed:     flagSeed,
		TickRate: flagFPS,
		ScreenW:  width,
		ScreenH:  height,
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
