// Package wallpaper orchestrates placements: validating image files,
// deriving their geometry and handing the result to the compositor's
// wallpaper daemon through the control tool.
package wallpaper

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/KleaSCM/caithe/internal/display"
	"github.com/KleaSCM/caithe/internal/fileutil"
	"github.com/KleaSCM/caithe/internal/geometry"
	"github.com/KleaSCM/caithe/internal/hyprctl"
	"github.com/KleaSCM/caithe/internal/logger"
)

// Placement is the association between one image and one display.
type Placement struct {
	Path      string `json:"path"`
	Mode      Mode   `json:"mode"`
	DisplayID int    `json:"displayId"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
}

// Manager owns the placement map, one entry per display id. It is safe
// for concurrent use; external tool invocations remain synchronous and
// blocking.
type Manager struct {
	client    *hyprctl.Client
	resolver  hyprctl.NameResolver
	inventory *display.Inventory

	mu         sync.RWMutex
	placements map[int]Placement
	order      []int
	cache      []Placement
}

// NewManager returns a Manager driving the given control tool client and
// reading display topology from inv. The client doubles as the monitor
// name resolver.
func NewManager(client *hyprctl.Client, inv *display.Inventory) *Manager {
	return &Manager{
		client:     client,
		resolver:   client,
		inventory:  inv,
		placements: make(map[int]Placement),
	}
}

// SetNameResolver swaps the ordinal-to-monitor-name resolution strategy.
func (m *Manager) SetNameResolver(r hyprctl.NameResolver) {
	m.resolver = r
}

// validatePath checks path in order: non-empty, supported extension,
// exists on disk. The first failing stage determines the error code.
func validatePath(path string) error {
	if path == "" {
		return newError(CodeInvalidPath, "wallpaper path cannot be empty")
	}
	if !fileutil.IsImageFile(path) {
		return newError(CodeUnsupportedFormat, "unsupported image format: %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		return wrapError(CodeFileNotFound, err, "file not found: %s", path)
	}
	return nil
}

// SetWallpaper validates the image at path, records a placement for the
// display and applies it through the compositor tool. An existing
// placement for the display is replaced entirely.
func (m *Manager) SetWallpaper(ctx context.Context, path string, displayID int) error {
	if err := validatePath(path); err != nil {
		return err
	}

	width, height, ok := geometry.SniffFile(path)
	if !ok {
		logger.WithComponent("wallpaper").Debug().
			Str("path", path).
			Msg("Could not sniff image dimensions, using defaults")
		width, height = geometry.DefaultWidth, geometry.DefaultHeight
	}

	p := Placement{
		Path:      path,
		Mode:      ModeScale,
		DisplayID: displayID,
		Width:     width,
		Height:    height,
		Format:    strings.ToLower(filepath.Ext(path)),
	}

	m.mu.Lock()
	if _, exists := m.placements[displayID]; !exists {
		m.order = append(m.order, displayID)
	}
	m.placements[displayID] = p
	m.cache = nil
	m.mu.Unlock()

	logger.WithComponent("wallpaper").Info().
		Str("path", path).
		Int("display", displayID).
		Int("width", width).
		Int("height", height).
		Msg("Placement recorded")

	return m.applyToCompositor(ctx, displayID)
}

// SetWallpaperAllDisplays applies the same image to every display in the
// inventory. Every display is attempted; failures are aggregated and
// reported together.
func (m *Manager) SetWallpaperAllDisplays(ctx context.Context, path string) error {
	if err := validatePath(path); err != nil {
		return err
	}

	var result *multierror.Error
	for _, d := range m.inventory.Displays() {
		if err := m.SetWallpaper(ctx, path, d.ID); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// RemoveWallpaper erases the display's placement and asks the daemon to
// unload. The in-memory record is removed even when the external call
// fails; local state tracks user intent, the compositor may lag behind.
func (m *Manager) RemoveWallpaper(ctx context.Context, displayID int) error {
	m.mu.Lock()
	if _, ok := m.placements[displayID]; !ok {
		m.mu.Unlock()
		return newError(CodeNoPlacement, "no wallpaper set for display %d", displayID)
	}
	delete(m.placements, displayID)
	m.removeFromOrder(displayID)
	m.cache = nil
	m.mu.Unlock()

	if err := m.client.UnloadAll(ctx); err != nil {
		return wrapError(CodeHyprlandCommandFailed, err, "failed to remove wallpaper for display %d", displayID)
	}
	return nil
}

// RemoveAllWallpapers erases every placement and unloads the daemon.
// Like RemoveWallpaper, the local state is cleared regardless of the
// external call's outcome.
func (m *Manager) RemoveAllWallpapers(ctx context.Context) error {
	m.mu.Lock()
	m.placements = make(map[int]Placement)
	m.order = nil
	m.cache = nil
	m.mu.Unlock()

	if err := m.client.UnloadAll(ctx); err != nil {
		return wrapError(CodeHyprlandCommandFailed, err, "failed to remove all wallpapers")
	}
	return nil
}

// SetMode changes the scaling mode of an existing placement and
// re-applies it. Geometry is not recomputed; mode only affects how the
// consumer maps the image.
func (m *Manager) SetMode(ctx context.Context, displayID int, mode Mode) error {
	m.mu.Lock()
	p, ok := m.placements[displayID]
	if !ok {
		m.mu.Unlock()
		return newError(CodeNoPlacement, "no wallpaper set for display %d", displayID)
	}
	p.Mode = mode
	m.placements[displayID] = p
	m.cache = nil
	m.mu.Unlock()

	return m.applyToCompositor(ctx, displayID)
}

// Placement returns the current placement for a display.
func (m *Manager) Placement(displayID int) (Placement, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.placements[displayID]
	return p, ok
}

// CurrentWallpaper returns the image path set for a display, or "".
func (m *Manager) CurrentWallpaper(displayID int) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.placements[displayID].Path
}

// ModeFor returns the display's scaling mode, defaulting to ModeScale
// when no placement exists.
func (m *Manager) ModeFor(displayID int) Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.placements[displayID]; ok {
		return p.Mode
	}
	return ModeScale
}

// Placements returns every current placement in insertion order. The
// result is memoized: it is rebuilt lazily on the first read after a
// mutation and the identical slice is returned until the next one.
// Callers must treat it as read-only.
func (m *Manager) Placements() []Placement {
	m.mu.RLock()
	if m.cache != nil {
		defer m.mu.RUnlock()
		return m.cache
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cache == nil {
		cache := make([]Placement, 0, len(m.order))
		for _, id := range m.order {
			cache = append(cache, m.placements[id])
		}
		m.cache = cache
	}
	return m.cache
}

// SupportedFormats returns the accepted image extensions.
func (m *Manager) SupportedFormats() []string {
	return fileutil.SupportedFormats()
}

// applyToCompositor runs the two-step sequence: preload the image, then
// set it on the resolved monitor name. A failed preload stops the
// sequence; neither step is retried.
func (m *Manager) applyToCompositor(ctx context.Context, displayID int) error {
	m.mu.RLock()
	p, ok := m.placements[displayID]
	m.mu.RUnlock()
	if !ok {
		return newError(CodeNoPlacement, "no wallpaper set for display %d", displayID)
	}

	if err := m.client.Preload(ctx, p.Path); err != nil {
		return wrapError(CodePreloadFailed, err, "failed to preload wallpaper image")
	}

	name := m.resolver.ResolveMonitorName(ctx, displayID)
	if err := m.client.SetWallpaper(ctx, name, p.Path); err != nil {
		return wrapError(CodeHyprlandCommandFailed, err, "failed to apply wallpaper to display %d", displayID)
	}

	logger.WithComponent("wallpaper").Info().
		Int("display", displayID).
		Str("monitor", name).
		Str("mode", p.Mode.String()).
		Msg("Wallpaper applied")
	return nil
}

// removeFromOrder drops an id from the insertion-order slice. Caller
// holds the write lock.
func (m *Manager) removeFromOrder(displayID int) {
	for i, id := range m.order {
		if id == displayID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}
