package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nativeSample = `Monitor DP-1 (ID 0): 2560x1440 @ 165.001Hz at 0x0
	description: Dell Inc. DELL S2721DGF (DP-1)
	make: Dell Inc.
Monitor HDMI-A-1 (ID 1): 1920x1080 @ 60.001Hz at 2560x0
	description: Samsung Electric Company S24E450 (HDMI-A-1)
`

const legacySample = `Monitors: 2
 0: +*DP-1 2560/597x1440/336+0+0  DP-1
 1: +HDMI-A-1 1920/509x1080/286+2560+0  HDMI-A-1
`

func TestParseHyprlandMonitors(t *testing.T) {
	displays := parseHyprlandMonitors(nativeSample)
	require.Len(t, displays, 2)

	first := displays[0]
	assert.Equal(t, 0, first.ID)
	assert.Equal(t, "DP-1", first.Name)
	assert.Equal(t, 2560, first.Width)
	assert.Equal(t, 1440, first.Height)
	assert.Equal(t, 165, first.RefreshRate)
	assert.True(t, first.IsPrimary)
	assert.True(t, first.IsActive)
	assert.Equal(t, ConnectorDisplayPort, first.Connector)
	assert.Equal(t, 1.0, first.Scale)
	assert.Equal(t, "DP-1 (2560x1440@165Hz)", first.Description)

	second := displays[1]
	assert.Equal(t, 1, second.ID)
	assert.Equal(t, "HDMI-A-1", second.Name)
	assert.False(t, second.IsPrimary)
	assert.Equal(t, ConnectorHDMI, second.Connector)
}

func TestParseHyprlandMonitors_OnePrimaryAtOrigin(t *testing.T) {
	input := `Monitor DP-1 (ID 0): 1920x1080 @ 60.000Hz at 0x0
Monitor DP-2 (ID 1): 1920x1080 @ 60.000Hz at 1920x0
`
	displays := parseHyprlandMonitors(input)
	require.Len(t, displays, 2)

	var primaries int
	for _, d := range displays {
		if d.IsPrimary {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries)
	assert.True(t, displays[0].IsPrimary)
	// Input order is preserved, not sorted.
	assert.Equal(t, "DP-1", displays[0].Name)
	assert.Equal(t, "DP-2", displays[1].Name)
}

func TestParseHyprlandMonitors_NegativePosition(t *testing.T) {
	input := "Monitor DP-2 (ID 3): 1920x1080 @ 59.997Hz at -1920x0\n"
	displays := parseHyprlandMonitors(input)
	require.Len(t, displays, 1)
	assert.Equal(t, 3, displays[0].ID)
	assert.False(t, displays[0].IsPrimary)
}

func TestParseHyprlandMonitors_Garbage(t *testing.T) {
	assert.Empty(t, parseHyprlandMonitors("not a monitor listing at all\n"))
	assert.Empty(t, parseHyprlandMonitors(""))
}

func TestParseXrandrMonitors(t *testing.T) {
	displays := parseXrandrMonitors(legacySample)
	require.Len(t, displays, 2)

	first := displays[0]
	assert.Equal(t, 0, first.ID)
	assert.Equal(t, "DP-1", first.Name)
	assert.Equal(t, 2560, first.Width)
	assert.Equal(t, 1440, first.Height)
	assert.Equal(t, 60, first.RefreshRate)
	assert.True(t, first.IsPrimary)
	assert.Equal(t, ConnectorDisplayPort, first.Connector)

	second := displays[1]
	// Legacy ids are sequential in encounter order, not from the text.
	assert.Equal(t, 1, second.ID)
	assert.Equal(t, "HDMI-A-1", second.Name)
	assert.False(t, second.IsPrimary)
}

func TestConnectorFor(t *testing.T) {
	tests := []struct {
		name string
		want Connector
	}{
		{"DP-1", ConnectorDisplayPort},
		{"DP-3", ConnectorDisplayPort},
		{"HDMI-A-1", ConnectorHDMI},
		{"DVI-D-1", ConnectorDVI},
		{"eDP-1", ConnectorUnknown},
		{"Virtual-1", ConnectorUnknown},
		{"", ConnectorUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, connectorFor(tt.name), tt.name)
	}
}
