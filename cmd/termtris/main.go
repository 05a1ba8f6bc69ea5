// termtris is a terminal falling-block puzzle game.
//
// Usage:
//
//	termtris                 - Play in the local terminal
//	termtris play            - Same as above
//	termtris serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible piece sequences
//	--config <path>   - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termtris",
	Short: "termtris - falling blocks in your terminal",
	Long: `termtris is a terminal-based falling-block puzzle game.

Controls:
  p          - Play / restart
  a/←  d/→   - Move the block left / right
  s/↓        - Move the block down
  w/↑        - Rotate the block
  Space      - Pause
  q/Ctrl+C   - Quit

Examples:
  termtris
  termtris play --seed 42
  termtris play --config ./my-termtris.yaml
  termtris serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
