// raycaster walks 2D line-segment levels rendered as 2.5D textured walls,
// in the terminal, in a window or over SSH.
//
// Usage:
//
//	raycaster list                 - List available levels
//	raycaster play [level]         - Walk a level in the terminal (Bubble Tea)
//	raycaster term [level]         - Walk a level in the terminal (tcell)
//	raycaster window [level]       - Walk a level in a desktop window
//	raycaster menu                 - Pick a level interactively
//	raycaster serve                - Start the SSH server
//	raycaster render [level]       - Render one frame to a PNG file
//	raycaster waypoints <level>    - Show saved camera poses
//
// Global flags:
//
//	--config <path>    - Configuration file
//	--level <id>       - Level used when none is given
//	--db <path>        - Waypoint database (default from config)
//	--fps <rate>       - Tick rate
//	--workers <n>      - Parallel column bands
//	--quality <name>   - Resolution preset: low, normal, high, native
//	--debug            - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import levels to register them
	_ "github.com/vovakirdan/tui-raycaster/internal/levels"
)

var (
	// Global flags
	flagConfig  string
	flagLevel   string
	flagDBPath  string
	flagFPS     int
	flagWorkers int
	flagQuality string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raycaster",
	Short: "Raycaster - walk textured 2.5D levels in your terminal",
	Long: `Raycaster renders 2D wall-segment levels as textured 2.5D views, one
ray per screen column, and lets you walk them with the keyboard and mouse.

Available commands:
  list       - Show all available levels
  play       - Walk a level in the terminal
  term       - Walk a level with the tcell terminal backend
  window     - Walk a level in a desktop window
  menu       - Interactive level picker
  serve      - Start SSH server for remote viewing
  render     - Render one frame to a PNG file
  waypoints  - View saved camera poses

Examples:
  raycaster list
  raycaster play pillars
  raycaster window --quality high
  raycaster render box -o box.png --angle 45
  raycaster serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	pf.StringVar(&flagLevel, "level", "", "Level ID or file (default from config)")
	pf.StringVar(&flagDBPath, "db", "", "Path to waypoint database (default from config)")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	pf.IntVar(&flagWorkers, "workers", 0, "Parallel column bands (0 = from config)")
	pf.StringVar(&flagQuality, "quality", "", "Resolution preset: low, normal, high, native")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(waypointsCmd)
}
