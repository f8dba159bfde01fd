package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KleaSCM/caithe/internal/wallpaper"
)

var modeCmd = &cobra.Command{
	Use:   "mode MODE",
	Short: "Change the display mode of a wallpaper",
	Long: `Change how the wallpaper on a display is fitted.

Modes: stretch, center, tile, scale. The wallpaper is reapplied with
the new mode.`,
	Example: `  # Tile the wallpaper on display 0
  caithe mode tile --display 0

  # Scale on the primary display
  caithe mode scale`,
	Args: cobra.ExactArgs(1),
	RunE: runMode,
}

var modeDisplay int

func init() {
	rootCmd.AddCommand(modeCmd)

	modeCmd.Flags().IntVarP(&modeDisplay, "display", "d", -1, "target display ID (default primary)")
}

func runMode(cmd *cobra.Command, args []string) error {
	mode, err := wallpaper.ParseMode(args[0])
	if err != nil {
		return err
	}

	inv, wm, err := newEnv(cmd)
	if err != nil {
		return err
	}
	configMgr, err := newConfigManager()
	if err != nil {
		return err
	}
	restorePlacements(cmd, inv, wm, configMgr)

	id := modeDisplay
	if id < 0 {
		id = inv.Primary().ID
	}
	if err := wm.SetMode(cmd.Context(), id, mode); err != nil {
		return err
	}
	if err := persistPlacements(inv, wm, configMgr); err != nil {
		return err
	}

	fmt.Printf("Display %d mode set to %s.\n", id, mode)
	return nil
}
