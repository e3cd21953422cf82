package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/platform/term"
	"github.com/vovakirdan/tui-raycaster/internal/platform/tui"
	"github.com/vovakirdan/tui-raycaster/internal/platform/window"
)

const controlsHelp = `Controls (default keys, see the keys section of the config):
  W/S, Up/Down   - Move forward/backward
  A/D            - Strafe
  Left/Right     - Turn (mouse motion turns too)
  M              - Save a waypoint
  N              - Jump to the next waypoint
  Ctrl+S         - Save a PNG screenshot to ~/.raycaster/screenshots
  ?              - Help
  Q/Esc/Ctrl+C   - Quit`

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Walk a level in the terminal",
	Long: `Walk a level in the terminal with Bubble Tea. Each character cell shows
two pixels using half blocks in truecolor.

` + controlsHelp + `

Examples:
  raycaster play
  raycaster play pillars
  raycaster play ./levels/hall.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

var termCmd = &cobra.Command{
	Use:   "term [level]",
	Short: "Walk a level with the tcell terminal backend",
	Long: `Like play, but draws straight into a tcell screen. Useful on terminals
where the Bubble Tea renderer is slow.

` + controlsHelp,
	Args: cobra.MaximumNArgs(1),
	RunE: runTerm,
}

var windowCmd = &cobra.Command{
	Use:   "window [level]",
	Short: "Walk a level in a desktop window",
	Long: `Open the level in a window. The framebuffer size comes from the screen
section of the config or from --quality, and is scaled up to the window.
The mouse is captured; horizontal motion turns the camera.

` + controlsHelp + `

Examples:
  raycaster window
  raycaster window box --quality high`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runPlay(_ *cobra.Command, args []string) error {
	a, err := setup("raycaster")
	if err != nil {
		return err
	}
	lvl, err := a.level(args)
	if err != nil {
		return err
	}
	a.openStore()
	defer a.close()

	width, height := terminalSize()
	return tui.Run(tui.Session{Session: a.session(lvl)}, width, height)
}

func runTerm(_ *cobra.Command, args []string) error {
	a, err := setup("raycaster")
	if err != nil {
		return err
	}
	lvl, err := a.level(args)
	if err != nil {
		return err
	}
	a.openStore()
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = term.Run(ctx, a.session(lvl))
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func runWindow(_ *cobra.Command, args []string) error {
	a, err := setup("raycaster")
	if err != nil {
		return err
	}
	lvl, err := a.level(args)
	if err != nil {
		return err
	}
	a.openStore()
	defer a.close()

	rt := a.cfg.Runtime(a.cfg.Screen.Width, a.cfg.Screen.Height)
	return window.Run(a.session(lvl), window.Options{
		Width:    rt.ScreenW,
		Height:   rt.ScreenH,
		Scale:    a.cfg.Screen.Scale,
		TickRate: rt.TickRate,
	})
}
