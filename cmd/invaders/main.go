// invaders is a terminal remake of the classic fixed-formation shooter:
// move along the bottom of the board, fire at the enemy grid sweeping
// overhead, and quit when you have had enough.
//
// Usage:
//
//	invaders play    - Play in the local terminal
//	invaders serve   - Serve the game over SSH
//
// Global flags:
//
//	--config <path>  - Path to config YAML (default: ~/.invaders/config.yaml)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "A terminal fixed-formation shooter",
	Long: `invaders is a terminal shooter: defend the bottom of the board
against a formation of enemies sweeping side to side above you.

Available commands:
  play     - Play in the local terminal
  serve    - Start an SSH server for remote play

Examples:
  invaders play
  invaders serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
