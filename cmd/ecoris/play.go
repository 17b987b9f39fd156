package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ecoris/internal/core"
	"github.com/vovakirdan/ecoris/internal/platform/tui"
	"github.com/vovakirdan/ecoris/internal/registry"
	"github.com/vovakirdan/ecoris/internal/storage"
)

var flagSkipTitle bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Ecoris",
	Long: `Start the game on the title screen.

Controls (right-handed):
  Arrows      - Move the piece (relative to the camera)
  W/S         - Pitch
  A/D         - Yaw
  Q/E         - Roll
  Z/C         - Turn the camera
  /           - Soft drop
  Space       - Hard drop
  Enter       - Start / confirm the result
  Esc/Ctrl+C  - Quit

Left-handed (controls.handedness: left): WASD moves, I/K pitch, J/L yaw,
U/O roll, N/M camera, X soft drop.

Difficulty options:
  easy   - Taller well, slower gravity
  normal - Default
  hard   - Shorter well, faster gravity

Examples:
  ecoris play
  ecoris play --skip-title
  ecoris play --difficulty hard --log-file ecoris.log --log-level debug
  ecoris play --config ./my-ecoris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSkipTitle, "skip-title", false, "Start the game without the title screen")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagFPS <= 0 {
		fail("--fps must be positive, got %d", flagFPS)
	}

	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	// The alt screen owns the terminal, so logs are discarded unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, "ecoris")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results database unavailable", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	var scores registry.ScoreSource
	if store != nil {
		scores = store
	}

	start := gameCfg.Scenes.Title
	if flagSkipTitle {
		start = gameCfg.Scenes.Play
	}

	runErr := tui.Run(tui.Options{
		Deps: registry.Deps{
			Config: gameCfg,
			Scores: scores,
			Logger: logger,
		},
		Store: store,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		StartScene: start,
		Difficulty: string(preset),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "err", runErr)
		closeLog()
		fail("%v", runErr)
	}
}
