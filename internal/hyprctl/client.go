// Package hyprctl wraps the compositor control tool used to drive the
// hyprpaper wallpaper daemon and to query monitor topology.
package hyprctl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KleaSCM/caithe/internal/logger"
)

// NameResolver maps an ordinal display id to a compositor monitor name.
// The default implementation is a best-effort text scan of `hyprctl
// monitors -j`; keeping it behind an interface lets a structured JSON
// parse replace it without touching callers.
type NameResolver interface {
	ResolveMonitorName(ctx context.Context, ordinal int) string
}

// defaultMonitorNames is the conventional id→port fallback used when the
// compositor cannot be queried for real names.
var defaultMonitorNames = map[int]string{
	0: "DP-1",
	1: "DP-2",
	2: "HDMI-A-1",
}

// Client invokes the compositor control tool as a subprocess.
type Client struct {
	runner Runner
}

// NewClient returns a Client using the given Runner.
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

// NewDefaultClient returns a Client backed by os/exec with the given
// per-call timeout.
func NewDefaultClient(timeout time.Duration) *Client {
	return NewClient(NewRunner(timeout))
}

// Monitors returns the line-oriented output of `hyprctl monitors`. The
// tool's exit code is not load-bearing; empty output is the failure
// signal and is left to the caller to interpret.
func (c *Client) Monitors(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "hyprctl", "monitors")
	if len(out) == 0 && err != nil {
		return "", fmt.Errorf("hyprctl monitors: %w", err)
	}
	return string(out), nil
}

// MonitorsJSON returns the output of `hyprctl monitors -j`.
func (c *Client) MonitorsJSON(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "hyprctl", "monitors", "-j")
	if len(out) == 0 && err != nil {
		return "", fmt.Errorf("hyprctl monitors -j: %w", err)
	}
	return string(out), nil
}

// XrandrMonitors returns the output of the legacy X11 monitor listing.
func (c *Client) XrandrMonitors(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "xrandr", "--listmonitors")
	if len(out) == 0 && err != nil {
		return "", fmt.Errorf("xrandr --listmonitors: %w", err)
	}
	return string(out), nil
}

// Preload asks hyprpaper to load the image into memory ahead of a set.
// A non-zero exit is a hard failure: setting an unloaded image is
// rejected by the daemon.
func (c *Client) Preload(ctx context.Context, path string) error {
	out, err := c.runner.Run(ctx, "hyprctl", "hyprpaper", "preload", path)
	if err != nil {
		return fmt.Errorf("hyprpaper preload %q: %w (%s)", path, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// SetWallpaper applies a preloaded image to the named monitor. An empty
// monitor name applies the bare path form.
func (c *Client) SetWallpaper(ctx context.Context, monitor, path string) error {
	arg := path
	if monitor != "" {
		arg = monitor + "," + path
	}
	out, err := c.runner.Run(ctx, "hyprctl", "hyprpaper", "wallpaper", arg)
	if err != nil {
		return fmt.Errorf("hyprpaper wallpaper %q: %w (%s)", arg, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// UnloadAll drops every preloaded image from the daemon.
func (c *Client) UnloadAll(ctx context.Context) error {
	out, err := c.runner.Run(ctx, "hyprctl", "hyprpaper", "unload", "all")
	if err != nil {
		return fmt.Errorf("hyprpaper unload all: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ResolveMonitorName resolves an ordinal display id to a monitor name by
// scanning the structured monitor query output for the nth name field.
// When the query yields nothing usable it falls back to the conventional
// port table.
func (c *Client) ResolveMonitorName(ctx context.Context, ordinal int) string {
	out, err := c.MonitorsJSON(ctx)
	if err == nil {
		if name, ok := scanMonitorName(out, ordinal); ok {
			return name
		}
	} else {
		logger.WithComponent("hyprctl").Debug().
			Err(err).
			Int("ordinal", ordinal).
			Msg("Monitor query failed, using fallback names")
	}

	if name, ok := defaultMonitorNames[ordinal]; ok {
		return name
	}
	return defaultMonitorNames[0]
}

// scanMonitorName picks the value of the nth `"name":` occurrence out of
// arbitrary surrounding text. This is intentionally not a JSON parse: the
// output only needs to contain the fields somewhere, in monitor order.
func scanMonitorName(s string, ordinal int) (string, bool) {
	const key = `"name":`
	seen := 0
	for {
		idx := strings.Index(s, key)
		if idx < 0 {
			return "", false
		}
		rest := s[idx+len(key):]
		if seen == ordinal {
			open := strings.Index(rest, `"`)
			if open < 0 {
				return "", false
			}
			rest = rest[open+1:]
			end := strings.Index(rest, `"`)
			if end < 0 {
				return "", false
			}
			name := rest[:end]
			if name == "" {
				return "", false
			}
			return name, true
		}
		seen++
		s = rest
	}
}
