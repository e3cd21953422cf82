package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/platform/tui"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level interactively",
	Long: `Shows the level list with session counts. Enter walks the selected
level; Tab opens its saved waypoints so you can start from one of them.
Esc inside a level returns to the list.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := setup("raycaster")
	if err != nil {
		return err
	}
	a.openStore()
	defer a.close()

	// The menu resolves the level; the session only carries shared state.
	base := tui.Session{Session: a.session(world.Level{})}
	width, height := terminalSize()
	return tui.RunSession(base, a.catalog, width, height)
}
