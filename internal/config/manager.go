package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KleaSCM/caithe/internal/fileutil"
	"github.com/KleaSCM/caithe/internal/logger"
)

// Manager loads, serves and saves the settings file. The typed Settings
// struct is the source of truth; a viper mirror over the same document
// backs the dotted-key accessors.
type Manager struct {
	mu       sync.RWMutex
	settings Settings
	path     string
	viper    *viper.Viper
}

// NewManager loads settings from path, falling back to defaults when the
// file does not exist yet. An empty path selects the conventional
// location under the user config directory.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		path = filepath.Join(fileutil.ConfigDir(), "config.yaml")
	}

	m := &Manager{
		settings: defaultSettings(),
		path:     path,
		viper:    viper.New(),
	}
	m.viper.SetConfigType("yaml")

	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

// load reads the settings file if present and refreshes the viper
// mirror. A missing file keeps the defaults.
func (m *Manager) load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.WithComponent("config").Debug().
				Str("path", m.path).
				Msg("No settings file, using defaults")
			return m.syncMirror()
		}
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := defaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("failed to parse settings file %s: %w", m.path, err)
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings in %s: %w", m.path, err)
	}

	m.settings = settings
	return m.syncMirror()
}

// syncMirror feeds the current settings into the viper mirror. Caller
// holds the write lock (or is the constructor).
func (m *Manager) syncMirror() error {
	data, err := yaml.Marshal(&m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.viper.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to mirror settings: %w", err)
	}
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.settings
	s.Wallpaper.Directories = append([]string(nil), s.Wallpaper.Directories...)
	s.Displays = append([]DisplaySettings(nil), s.Displays...)
	return s
}

// Update applies fn to the settings under the write lock and refreshes
// the mirror. The result is validated before it replaces the current
// settings.
func (m *Manager) Update(fn func(*Settings)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	updated := m.settings
	updated.Wallpaper.Directories = append([]string(nil), updated.Wallpaper.Directories...)
	updated.Displays = append([]DisplaySettings(nil), updated.Displays...)
	fn(&updated)

	if err := updated.Validate(); err != nil {
		return err
	}
	m.settings = updated
	return m.syncMirror()
}

// Save writes the current settings to disk, creating the config
// directory when needed.
func (m *Manager) Save() error {
	m.mu.RLock()
	data, err := yaml.Marshal(&m.settings)
	path := m.path
	m.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	logger.WithComponent("config").Debug().Str("path", path).Msg("Settings saved")
	return nil
}

// Path returns the settings file location.
func (m *Manager) Path() string {
	return m.path
}

// DisplaySettings returns the persisted record for a monitor name.
func (m *Manager) DisplaySettings(name string) (DisplaySettings, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.settings.Displays {
		if d.Name == name {
			return d, true
		}
	}
	return DisplaySettings{}, false
}

// SetDisplaySettings stores or replaces the record for a monitor name.
func (m *Manager) SetDisplaySettings(ds DisplaySettings) error {
	return m.Update(func(s *Settings) {
		for i, d := range s.Displays {
			if d.Name == ds.Name {
				s.Displays[i] = ds
				return
			}
		}
		s.Displays = append(s.Displays, ds)
	})
}

// Dotted-key accessors. Reads come from the mirror with an explicit
// default; writes land in the mirror and are folded back into the typed
// settings where a known field matches. Keys outside the schema live
// only in the mirror until the process exits.

func (m *Manager) GetString(key, def string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.viper.IsSet(key) {
		return def
	}
	return m.viper.GetString(key)
}

func (m *Manager) GetInt(key string, def int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.viper.IsSet(key) {
		return def
	}
	return m.viper.GetInt(key)
}

func (m *Manager) GetBool(key string, def bool) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.viper.IsSet(key) {
		return def
	}
	return m.viper.GetBool(key)
}

func (m *Manager) GetStringSlice(key string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.GetStringSlice(key)
}

func (m *Manager) SetString(key, value string) error { return m.setKey(key, value) }
func (m *Manager) SetInt(key string, value int) error { return m.setKey(key, value) }
func (m *Manager) SetBool(key string, value bool) error { return m.setKey(key, value) }
func (m *Manager) SetStringSlice(key string, value []string) error { return m.setKey(key, value) }

// setKey probes the change on a scratch mirror before touching the live
// one: viper Set overrides cannot be undone, and a rejected value must
// leave the dotted-key view agreeing with the typed settings.
func (m *Manager) setKey(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := yaml.Marshal(&m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	scratch := viper.New()
	scratch.SetConfigType("yaml")
	if err := scratch.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to mirror settings: %w", err)
	}
	scratch.Set(key, value)

	updated := m.settings
	if err := scratch.Unmarshal(&updated); err != nil {
		return fmt.Errorf("failed to apply setting %q: %w", key, err)
	}
	if err := updated.Validate(); err != nil {
		return err
	}

	m.settings = updated
	m.viper.Set(key, value)
	return nil
}
