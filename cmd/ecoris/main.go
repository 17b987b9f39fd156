// ecoris is a falling-block puzzle played in a 3D well, in the terminal.
//
// Usage:
//
//	ecoris play              - Play locally
//	ecoris serve             - Start SSH server for remote play
//	ecoris scores            - Show the best results
//	ecoris scenes            - List registered scenes
//	ecoris config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--db <path>             - Set database path (default: ~/.ecoris/scores.db)
//	--config <path>         - Use a custom game configuration
//	--difficulty <preset>   - easy, normal or hard
//	--log-level <level>     - debug, info, warn or error
//	--log-file <path>       - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/ecoris/internal/scenes/play"
	_ "github.com/vovakirdan/ecoris/internal/scenes/title"
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
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ecoris",
	Short: "Ecoris - a 3D falling-block puzzle in your terminal",
	Long: `Ecoris drops polycubes into a 3D well. Move and rotate them about all
three axes and fill complete layers before the three minutes run out.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View the best results
  scenes   - List registered scenes
  config   - Print the default configuration

Examples:
  ecoris play
  ecoris play --difficulty hard --skip-title
  ecoris serve --ssh :2222
  ecoris scores --interactive`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ecoris/scores.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(configCmd)
}
