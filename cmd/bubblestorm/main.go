// bubblestorm is a terminal bubble shooter: thrust around the playfield,
// aim with the mouse and pop the drifting enemies before the border gets you.
//
// Usage:
//
//	bubblestorm play [mode]    - Play (default mode: bubblestorm)
//	bubblestorm menu           - Interactive mode picker
//	bubblestorm list           - List available modes
//	bubblestorm scores <mode>  - Show high scores
//	bubblestorm serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.bubblestorm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its modes
	_ "github.com/vforge/bubblestorm/internal/games/bubblestorm"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bubblestorm",
	Short: "Bubblestorm - mouse-aimed bubble shooter for your terminal",
	Long: `Bubblestorm is a terminal arcade shooter. Thrust with WASD, aim with
the mouse and hold the left button to spray bubbles at incoming enemies.
Stay out of the border band or it will chew through your hull.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all available modes
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  bubblestorm play
  bubblestorm play bubblestorm_hunter --difficulty hard
  bubblestorm menu
  bubblestorm serve --ssh :2222
  bubblestorm scores bubblestorm`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bubblestorm/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
