package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KleaSCM/caithe/internal/hyprctl"
	"github.com/KleaSCM/caithe/internal/picker"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a wallpaper with a file dialog",
	Long: `Open a native file dialog (zenity) and set the chosen image as the
wallpaper. Cancelling the dialog is a no-op.`,
	Example: `  # Pick for the primary display
  caithe pick

  # Pick for display 1
  caithe pick --display 1

  # Pick for all displays
  caithe pick --all`,
	RunE: runPick,
}

var (
	pickDisplay int
	pickAll     bool
)

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().IntVarP(&pickDisplay, "display", "d", -1, "target display ID")
	pickCmd.Flags().BoolVarP(&pickAll, "all", "a", false, "apply to all displays")
}

func runPick(cmd *cobra.Command, args []string) error {
	configMgr, err := newConfigManager()
	if err != nil {
		return err
	}

	defaultPath := configMgr.Get().UI.LastWallpaperPath
	if defaultPath != "" {
		defaultPath = filepath.Dir(defaultPath)
	}

	p := picker.New(hyprctl.NewRunner(commandTimeout()))
	path, err := p.PickFile(cmd.Context(), "Select Wallpaper", defaultPath)
	if err != nil {
		return fmt.Errorf("file dialog failed: %w", err)
	}
	if path == "" {
		fmt.Println("No file selected.")
		return nil
	}

	inv, wm, err := newEnv(cmd)
	if err != nil {
		return err
	}
	return applyWallpaper(cmd, inv, wm, configMgr, path, pickDisplay, pickAll, "")
}
