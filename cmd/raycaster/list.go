package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the built-in levels and the level files found in the configured
levels directory.`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	a, err := setup("raycaster")
	if err != nil {
		return err
	}

	levels, err := a.catalog.List()
	if err != nil {
		a.logger.Warn("some level files could not be read", "error", err)
	}
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	idLen, titleLen := 2, 5
	for _, l := range levels {
		idLen = max(idLen, len(l.ID))
		titleLen = max(titleLen, len(l.Title))
	}

	fmt.Printf("  %-*s  %-*s  %5s  %s\n", idLen, "ID", titleLen, "Title", "Walls", "Source")
	fmt.Printf("  %-*s  %-*s  %5s  %s\n", idLen, "--", titleLen, "-----", "-----", "------")
	for _, l := range levels {
		fmt.Printf("  %-*s  %-*s  %5d  %s\n", idLen, l.ID, titleLen, l.Title, l.Walls, l.Source)
	}

	a.openStore()
	defer a.close()
	if a.store != nil {
		printRecent(a)
	}

	fmt.Println()
	fmt.Println("Run 'raycaster play <id>' to walk a level.")
	return nil
}

func printRecent(a *app) {
	sessions, err := a.store.RecentSessions(5)
	if err != nil {
		a.logger.Warn("could not read sessions", "error", err)
		return
	}
	if len(sessions) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent sessions:")
	fmt.Println()
	for _, s := range sessions {
		fmt.Printf("  %s  %-12s  %6d ticks  %7.1f walked\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.LevelID, s.Ticks, s.Distance)
	}
}
