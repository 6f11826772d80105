package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/diag"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Space      - Fire
  Q/Ctrl+C   - Quit

The board is a fixed 40x20 grid; the terminal must be large enough to
show it plus the control hint below.`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The frame adds two cells per axis, the caption two more rows.
	needW, needH := invaders.ScreenWidth, invaders.ScreenHeight+2
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Terminal too small: need at least %dx%d, have %dx%d\n", needW, needH, w, h)
			os.Exit(1)
		}
	}

	logger := diag.Open(cfg.Debug)

	if runErr := tui.Run(logger); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Println(tui.Farewell())
}
