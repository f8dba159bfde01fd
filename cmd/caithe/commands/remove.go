package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove wallpapers",
	Long: `Remove the wallpaper from one display, or from every display.

hyprpaper only supports unloading everything at once, so removing a
single placement unloads all wallpapers; the remaining placements stay
tracked and can be reapplied with set.`,
	Example: `  # Remove the wallpaper from display 0
  caithe remove --display 0

  # Remove all wallpapers
  caithe remove --all`,
	RunE: runRemove,
}

var (
	removeDisplay int
	removeAll     bool
)

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().IntVarP(&removeDisplay, "display", "d", -1, "target display ID")
	removeCmd.Flags().BoolVarP(&removeAll, "all", "a", false, "remove from all displays")
}

func runRemove(cmd *cobra.Command, args []string) error {
	inv, wm, err := newEnv(cmd)
	if err != nil {
		return err
	}
	configMgr, err := newConfigManager()
	if err != nil {
		return err
	}
	restorePlacements(cmd, inv, wm, configMgr)

	switch {
	case removeAll:
		if err := wm.RemoveAllWallpapers(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All wallpapers removed.")
	case removeDisplay >= 0:
		if err := wm.RemoveWallpaper(cmd.Context(), removeDisplay); err != nil {
			return err
		}
		fmt.Printf("Wallpaper removed from display %d.\n", removeDisplay)
	default:
		return fmt.Errorf("either --display or --all is required")
	}
	return persistPlacements(inv, wm, configMgr)
}
