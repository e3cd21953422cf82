package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

var (
	flagDelete int64
	flagClear  bool
)

var waypointsCmd = &cobra.Command{
	Use:   "waypoints <level>",
	Short: "Show saved camera poses for a level",
	Long: `Display the waypoints saved for a level, along with how often it has
been walked.

Examples:
  raycaster waypoints reference
  raycaster waypoints box --delete 3
  raycaster waypoints box --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runWaypoints,
}

func init() {
	waypointsCmd.Flags().Int64Var(&flagDelete, "delete", 0, "Delete the waypoint with this ID")
	waypointsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every waypoint of the level")
}

func runWaypoints(_ *cobra.Command, args []string) error {
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
	if a.store == nil {
		return fmt.Errorf("no waypoint database at %s", a.cfg.Storage.DB)
	}

	switch {
	case flagClear:
		if err := a.store.ClearWaypoints(lvl.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared waypoints of %s.\n", lvl.ID)
		return nil
	case flagDelete > 0:
		if err := a.store.DeleteWaypoint(flagDelete); err != nil {
			return err
		}
		fmt.Printf("Deleted waypoint %d.\n", flagDelete)
		return nil
	}

	wps, err := a.store.Waypoints(lvl.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Waypoints - %s\n", lvl.Name)
	fmt.Println()

	if len(wps) == 0 {
		fmt.Println("No waypoints saved yet.")
		fmt.Println()
		fmt.Printf("Press 'm' in 'raycaster play %s' to save one.\n", lvl.ID)
	} else {
		fmt.Printf("  %-4s  %-12s  %8s  %8s  %6s  %s\n", "ID", "Name", "X", "Y", "Angle", "Saved")
		fmt.Printf("  %-4s  %-12s  %8s  %8s  %6s  %s\n", "--", "----", "-", "-", "-----", "-----")
		for _, wp := range wps {
			fmt.Printf("  %-4d  %-12s  %8.2f  %8.2f  %5.0f°  %s\n",
				wp.ID, wp.Name, wp.Camera.Position.X, wp.Camera.Position.Y,
				core.Degrees(wp.Camera.Angle), wp.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := a.store.GetLevelStats(lvl.ID)
	if err == nil && stats.Sessions > 0 {
		fmt.Println()
		fmt.Printf("Sessions: %d, ticks: %d, distance walked: %.1f\n",
			stats.Sessions, stats.TotalTicks, stats.TotalDistance)
	}
	return nil
}
