// Package display maintains the inventory of outputs known to the
// compositor: detection across a chain of external listing tools,
// normalization into Display records and id-based lookup.
package display

import (
	"fmt"
	"strings"
)

// Connector is the physical port class derived from a monitor name.
type Connector string

const (
	ConnectorDisplayPort Connector = "DisplayPort"
	ConnectorHDMI        Connector = "HDMI"
	ConnectorDVI         Connector = "DVI"
	ConnectorUnknown     Connector = "Unknown"
)

// Display is one physical or virtual output.
type Display struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	RefreshRate int       `json:"refreshRate"`
	IsPrimary   bool      `json:"isPrimary"`
	IsActive    bool      `json:"isActive"`
	Connector   Connector `json:"connector"`
	Scale       float64   `json:"scale"`
}

// connectorFor classifies a monitor name by its port prefix.
func connectorFor(name string) Connector {
	switch {
	case strings.HasPrefix(name, "DP-"):
		return ConnectorDisplayPort
	case strings.HasPrefix(name, "HDMI-"):
		return ConnectorHDMI
	case strings.HasPrefix(name, "DVI-"):
		return ConnectorDVI
	default:
		return ConnectorUnknown
	}
}

// newDisplay builds a Display with the derived fields filled in. Scale
// starts at 1.0; the compositor's own scaling is not queried here.
func newDisplay(name string, width, height, refreshRate int, isPrimary bool) Display {
	return Display{
		Name:        name,
		Description: fmt.Sprintf("%s (%dx%d@%dHz)", name, width, height, refreshRate),
		Width:       width,
		Height:      height,
		RefreshRate: refreshRate,
		IsPrimary:   isPrimary,
		IsActive:    true,
		Connector:   connectorFor(name),
		Scale:       1.0,
	}
}
