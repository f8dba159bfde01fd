package display

import (
	"context"
	"strings"
	"sync"

	"github.com/KleaSCM/caithe/internal/hyprctl"
	"github.com/KleaSCM/caithe/internal/logger"
)

// Synthetic record used when no detection method yields anything.
const (
	defaultName    = "DP-1"
	defaultWidth   = 1920
	defaultHeight  = 1080
	defaultRefresh = 60
)

// Inventory owns the current display snapshot. Every Refresh rebuilds it
// wholesale; records do not keep identity across refreshes.
type Inventory struct {
	client *hyprctl.Client

	mu       sync.RWMutex
	displays []Display
}

// NewInventory returns an empty inventory backed by the given client.
// Call Refresh before reading.
func NewInventory(client *hyprctl.Client) *Inventory {
	return &Inventory{client: client}
}

// Refresh repopulates the display list. Detection is an ordered fallback
// chain: native compositor listing, then the legacy X11 listing, then a
// synthetic single-display default. The synthetic fallback is usable, so
// Refresh only fails when the final list is somehow empty.
func (inv *Inventory) Refresh(ctx context.Context) error {
	log := logger.WithComponent("display")

	displays := inv.detectNative(ctx)
	if len(displays) == 0 {
		displays = inv.detectLegacy(ctx)
	}
	if len(displays) == 0 {
		log.Warn().Msg("No display detection method available, using default display")
		d := newDisplay(defaultName, defaultWidth, defaultHeight, defaultRefresh, true)
		displays = []Display{d}
	}

	if len(displays) == 0 {
		return newError(CodeNoDisplaysFound, "no displays found")
	}

	inv.mu.Lock()
	inv.displays = displays
	inv.mu.Unlock()

	log.Debug().Int("count", len(displays)).Msg("Display inventory refreshed")
	return nil
}

// detectNative queries the compositor's own monitor listing. Usable
// output means at least one parseable line; exit codes are ignored.
func (inv *Inventory) detectNative(ctx context.Context) []Display {
	log := logger.WithComponent("display")

	out, err := inv.client.Monitors(ctx)
	if err != nil || strings.TrimSpace(out) == "" {
		log.Debug().
			Err(wrapError(CodeNotRunning, err, "native monitor listing produced no output")).
			Msg("Compositor may not be running")
		return nil
	}

	displays := parseHyprlandMonitors(out)
	if len(displays) == 0 {
		log.Debug().
			Err(newError(CodeParseError, "native monitor listing did not match the expected format")).
			Msg("Ignoring native monitor listing")
	}
	return displays
}

// detectLegacy queries the X11-era listing tool.
func (inv *Inventory) detectLegacy(ctx context.Context) []Display {
	log := logger.WithComponent("display")

	out, err := inv.client.XrandrMonitors(ctx)
	if err != nil || strings.TrimSpace(out) == "" {
		log.Debug().
			Err(wrapError(CodeToolUnavailable, err, "legacy monitor listing produced no output")).
			Msg("Legacy listing tool unavailable")
		return nil
	}

	displays := parseXrandrMonitors(out)
	if len(displays) == 0 {
		log.Debug().
			Err(newError(CodeParseError, "legacy monitor listing did not match the expected format")).
			Msg("Ignoring legacy monitor listing")
	}
	return displays
}

// Displays returns a copy of the current snapshot in detection order.
func (inv *Inventory) Displays() []Display {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]Display, len(inv.displays))
	copy(out, inv.displays)
	return out
}

// Get returns the display with the given id, or a zero value when no
// such display exists.
func (inv *Inventory) Get(id int) Display {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	for _, d := range inv.displays {
		if d.ID == id {
			return d
		}
	}
	return Display{}
}

// Primary returns the display at the coordinate origin. When none
// qualifies the first display in detection order is returned as a
// reportable fallback without being promoted to primary. An empty
// inventory yields a zero value.
func (inv *Inventory) Primary() Display {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	for _, d := range inv.displays {
		if d.IsPrimary {
			return d
		}
	}
	if len(inv.displays) > 0 {
		return inv.displays[0]
	}
	return Display{}
}

// Has reports whether a display with the given id exists.
func (inv *Inventory) Has(id int) bool {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	for _, d := range inv.displays {
		if d.ID == id {
			return true
		}
	}
	return false
}

// Count returns the number of displays in the snapshot.
func (inv *Inventory) Count() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.displays)
}

// Names returns the monitor names in detection order.
func (inv *Inventory) Names() []string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	names := make([]string, 0, len(inv.displays))
	for _, d := range inv.displays {
		names = append(names, d.Name)
	}
	return names
}
