// Package config persists application settings as a yaml file and
// exposes both typed accessors and dotted-key access for loosely
// structured consumers.
package config

import (
	"fmt"
)

// DisplaySettings is the persisted per-display wallpaper record.
type DisplaySettings struct {
	Name    string  `yaml:"name" json:"name" mapstructure:"name"`
	Mode    string  `yaml:"mode" json:"mode" mapstructure:"mode"`
	Path    string  `yaml:"path" json:"path" mapstructure:"path"`
	Scale   float64 `yaml:"scale" json:"scale" mapstructure:"scale"`
	Enabled bool    `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
}

// WindowSettings remembers the main window geometry between runs.
type WindowSettings struct {
	Width     int  `yaml:"width" json:"width" mapstructure:"width"`
	Height    int  `yaml:"height" json:"height" mapstructure:"height"`
	X         int  `yaml:"x" json:"x" mapstructure:"x"`
	Y         int  `yaml:"y" json:"y" mapstructure:"y"`
	Maximized bool `yaml:"maximized" json:"maximized" mapstructure:"maximized"`
}

// UISettings keeps the last interactive state.
type UISettings struct {
	SelectedDisplay   int    `yaml:"selectedDisplay" json:"selectedDisplay" mapstructure:"selectedDisplay"`
	LastWallpaperPath string `yaml:"lastWallpaperPath" json:"lastWallpaperPath" mapstructure:"lastWallpaperPath"`
}

// WallpaperSettings holds wallpaper selection preferences.
type WallpaperSettings struct {
	Directories          []string `yaml:"directories" json:"directories" mapstructure:"directories"`
	DefaultMode          string   `yaml:"defaultMode" json:"defaultMode" mapstructure:"defaultMode"`
	AutoApplyAllDisplays bool     `yaml:"autoApplyAllDisplays" json:"autoApplyAllDisplays" mapstructure:"autoApplyAllDisplays"`
}

// AdvancedSettings mirrors the original application's advanced toggles.
// The slideshow and hotplug engines are not implemented; the fields are
// persisted for settings-file fidelity.
type AdvancedSettings struct {
	HotplugEvents     bool `yaml:"hotplugEvents" json:"hotplugEvents" mapstructure:"hotplugEvents"`
	LiveSync          bool `yaml:"liveSync" json:"liveSync" mapstructure:"liveSync"`
	SlideshowInterval int  `yaml:"slideshowInterval" json:"slideshowInterval" mapstructure:"slideshowInterval"`
	SlideshowEnabled  bool `yaml:"slideshowEnabled" json:"slideshowEnabled" mapstructure:"slideshowEnabled"`
}

// Settings is the full persisted application configuration.
type Settings struct {
	Window    WindowSettings    `yaml:"window" json:"window" mapstructure:"window"`
	UI        UISettings        `yaml:"ui" json:"ui" mapstructure:"ui"`
	Wallpaper WallpaperSettings `yaml:"wallpaper" json:"wallpaper" mapstructure:"wallpaper"`
	Displays  []DisplaySettings `yaml:"displays" json:"displays" mapstructure:"displays"`
	Advanced  AdvancedSettings  `yaml:"advanced" json:"advanced" mapstructure:"advanced"`
}

const (
	defaultWindowWidth       = 1200
	defaultWindowHeight      = 800
	defaultWindowX           = 100
	defaultWindowY           = 100
	defaultSlideshowInterval = 300
)

// defaultSettings returns the configuration written on first run.
func defaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
			X:      defaultWindowX,
			Y:      defaultWindowY,
		},
		UI: UISettings{
			SelectedDisplay: 0,
		},
		Wallpaper: WallpaperSettings{
			DefaultMode: "scale",
		},
		Advanced: AdvancedSettings{
			HotplugEvents:     true,
			LiveSync:          true,
			SlideshowInterval: defaultSlideshowInterval,
		},
	}
}

// Validate checks the settings for values no component can work with.
func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Advanced.SlideshowInterval < 0 {
		return fmt.Errorf("slideshow interval must not be negative, got %d", s.Advanced.SlideshowInterval)
	}
	switch s.Wallpaper.DefaultMode {
	case "stretch", "center", "tile", "scale":
	default:
		return fmt.Errorf("unknown default wallpaper mode %q", s.Wallpaper.DefaultMode)
	}
	return nil
}
