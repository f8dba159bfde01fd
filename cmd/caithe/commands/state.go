package commands

import (
	"github.com/spf13/cobra"

	"github.com/KleaSCM/caithe/internal/config"
	"github.com/KleaSCM/caithe/internal/display"
	"github.com/KleaSCM/caithe/internal/logger"
	"github.com/KleaSCM/caithe/internal/wallpaper"
)

// restorePlacements replays the persisted per-display records into a
// fresh wallpaper manager. Records for disconnected displays or deleted
// files are skipped with a warning, not treated as fatal.
func restorePlacements(cmd *cobra.Command, inv *display.Inventory, wm *wallpaper.Manager, cm *config.Manager) {
	log := logger.WithComponent("cli")
	for _, d := range inv.Displays() {
		ds, ok := cm.DisplaySettings(d.Name)
		if !ok || !ds.Enabled || ds.Path == "" {
			continue
		}
		if err := wm.SetWallpaper(cmd.Context(), ds.Path, d.ID); err != nil {
			log.Warn().Err(err).Str("display", d.Name).Str("path", ds.Path).Msg("Skipping saved wallpaper")
			continue
		}
		if mode, err := wallpaper.ParseMode(ds.Mode); err == nil && mode != wm.ModeFor(d.ID) {
			if err := wm.SetMode(cmd.Context(), d.ID, mode); err != nil {
				log.Warn().Err(err).Str("display", d.Name).Msg("Skipping saved mode")
			}
		}
	}
}

// persistPlacements writes the manager's current placements back to the
// settings file. Displays without a placement keep their record with
// Enabled cleared so the path survives a remove.
func persistPlacements(inv *display.Inventory, wm *wallpaper.Manager, cm *config.Manager) error {
	for _, d := range inv.Displays() {
		p, ok := wm.Placement(d.ID)
		if ok {
			if err := cm.SetDisplaySettings(config.DisplaySettings{
				Name:    d.Name,
				Mode:    p.Mode.String(),
				Path:    p.Path,
				Scale:   d.Scale,
				Enabled: true,
			}); err != nil {
				return err
			}
			continue
		}
		if ds, exists := cm.DisplaySettings(d.Name); exists && ds.Enabled {
			ds.Enabled = false
			if err := cm.SetDisplaySettings(ds); err != nil {
				return err
			}
		}
	}
	return cm.Save()
}
