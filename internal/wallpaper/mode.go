package wallpaper

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mode governs how an image maps onto a display's pixel area.
type Mode int

const (
	// ModeStretch distorts the image to fill the display exactly.
	ModeStretch Mode = iota
	// ModeCenter places the image unscaled at the display center.
	ModeCenter
	// ModeTile repeats the image to cover the display.
	ModeTile
	// ModeScale fits the image within the display preserving aspect
	// ratio. This is the default for new placements.
	ModeScale
)

func (m Mode) String() string {
	switch m {
	case ModeStretch:
		return "stretch"
	case ModeCenter:
		return "center"
	case ModeTile:
		return "tile"
	case ModeScale:
		return "scale"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "stretch":
		return ModeStretch, nil
	case "center":
		return ModeCenter, nil
	case "tile":
		return ModeTile, nil
	case "scale":
		return ModeScale, nil
	default:
		return ModeScale, fmt.Errorf("unknown wallpaper mode %q", s)
	}
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Mode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	mode, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
