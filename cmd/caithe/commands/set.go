package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/KleaSCM/caithe/internal/config"
	"github.com/KleaSCM/caithe/internal/display"
	"github.com/KleaSCM/caithe/internal/fileutil"
	"github.com/KleaSCM/caithe/internal/wallpaper"
)

var setCmd = &cobra.Command{
	Use:   "set IMAGE",
	Short: "Set a wallpaper",
	Long: `Set a wallpaper on one display or on every connected display.

The image is validated, preloaded into hyprpaper, and assigned to the
target display(s). Without --display or --all the primary display is
used.`,
	Example: `  # Set on the primary display
  caithe set ~/Pictures/wall.png

  # Set on display 1
  caithe set ~/Pictures/wall.png --display 1

  # Set on every display
  caithe set ~/Pictures/wall.png --all

  # Set with a display mode
  caithe set ~/Pictures/wall.png --display 0 --mode tile

  # Set a random image from the configured wallpaper directories
  caithe set --random`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSet,
}

var (
	setDisplay int
	setAll     bool
	setMode    string
	setRandom  bool
)

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().IntVarP(&setDisplay, "display", "d", -1, "target display ID")
	setCmd.Flags().BoolVarP(&setAll, "all", "a", false, "apply to all displays")
	setCmd.Flags().StringVarP(&setMode, "mode", "m", "", "display mode (stretch, center, tile, scale)")
	setCmd.Flags().BoolVar(&setRandom, "random", false, "pick a random image from wallpaper.directories")
}

func runSet(cmd *cobra.Command, args []string) error {
	inv, wm, err := newEnv(cmd)
	if err != nil {
		return err
	}
	configMgr, err := newConfigManager()
	if err != nil {
		return err
	}

	var path string
	switch {
	case setRandom:
		if path, err = randomWallpaper(configMgr); err != nil {
			return err
		}
	case len(args) == 1:
		path = fileutil.ExpandPath(args[0])
	default:
		return fmt.Errorf("an image path or --random is required")
	}

	return applyWallpaper(cmd, inv, wm, configMgr, path, setDisplay, setAll, setMode)
}

// applyWallpaper is the shared body of set and pick: restore saved
// placements, apply the image to the target display(s) with an optional
// mode, persist the result.
func applyWallpaper(cmd *cobra.Command, inv *display.Inventory, wm *wallpaper.Manager, configMgr *config.Manager, path string, displayID int, all bool, modeName string) error {
	restorePlacements(cmd, inv, wm, configMgr)

	var mode wallpaper.Mode
	haveMode := modeName != ""
	if haveMode {
		var err error
		if mode, err = wallpaper.ParseMode(modeName); err != nil {
			return err
		}
	}

	if all {
		if err := wm.SetWallpaperAllDisplays(cmd.Context(), path); err != nil {
			return err
		}
		if haveMode {
			for _, d := range inv.Displays() {
				if err := wm.SetMode(cmd.Context(), d.ID, mode); err != nil {
					return err
				}
			}
		}
		if err := savePlacements(path, inv, wm, configMgr); err != nil {
			return err
		}
		fmt.Println("Wallpaper set on all displays.")
		return nil
	}

	id := displayID
	if id < 0 {
		id = inv.Primary().ID
	}
	if !inv.Has(id) {
		return fmt.Errorf("no such display: %d", id)
	}
	if err := wm.SetWallpaper(cmd.Context(), path, id); err != nil {
		return err
	}
	if haveMode {
		if err := wm.SetMode(cmd.Context(), id, mode); err != nil {
			return err
		}
	}

	if err := savePlacements(path, inv, wm, configMgr); err != nil {
		return err
	}
	fmt.Printf("Wallpaper set on display %d.\n", id)
	return nil
}

// randomWallpaper draws one image from the configured directories.
func randomWallpaper(configMgr *config.Manager) (string, error) {
	dirs := configMgr.GetStringSlice("wallpaper.directories")
	if len(dirs) == 0 {
		return "", fmt.Errorf("no wallpaper directories configured (set wallpaper.directories)")
	}

	var images []string
	for _, dir := range dirs {
		found, err := fileutil.ImagesInDirectory(fileutil.ExpandPath(dir))
		if err != nil {
			return "", err
		}
		images = append(images, found...)
	}
	if len(images) == 0 {
		return "", fmt.Errorf("no images found in configured wallpaper directories")
	}
	return images[rand.Intn(len(images))], nil
}

// savePlacements records the new placements plus the last-used path.
func savePlacements(path string, inv *display.Inventory, wm *wallpaper.Manager, configMgr *config.Manager) error {
	if err := configMgr.Update(func(s *config.Settings) { s.UI.LastWallpaperPath = path }); err != nil {
		return err
	}
	return persistPlacements(inv, wm, configMgr)
}
