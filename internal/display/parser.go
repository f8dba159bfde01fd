package display

import (
	"regexp"
	"strconv"
	"strings"
)

// Native monitor listing, one line per output:
//
//	Monitor DP-1 (ID 0): 2560x1440 @ 165.001Hz at 0x0
//	Monitor HDMI-A-1 (ID 1): 1920x1080 @ 60.001Hz at 1920x0
var hyprlandMonitorRe = regexp.MustCompile(
	`Monitor (\S+) \(ID (\d+)\): (\d+)x(\d+) @ ([\d.]+)Hz at (-?\d+)x(-?\d+)`)

// Legacy listing (`xrandr --listmonitors`):
//
//	Monitors: 2
//	 0: +*DP-1 2560/597x1440/336+0+0  DP-1
//	 1: +HDMI-A-1 1920/509x1080/286+2560+0  HDMI-A-1
var xrandrMonitorRe = regexp.MustCompile(
	`^\s*\d+:\s+\+?\*?(\S+)\s+(\d+)/\d+x(\d+)/\d+\+(-?\d+)\+(-?\d+)\s+(\S+)`)

// parseHyprlandMonitors normalizes native listing output. IDs, geometry
// and refresh come straight out of the matched line; the display at the
// coordinate origin is the primary, first match wins.
func parseHyprlandMonitors(output string) []Display {
	var displays []Display
	havePrimary := false

	for _, line := range strings.Split(output, "\n") {
		m := hyprlandMonitorRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		id, _ := strconv.Atoi(m[2])
		width, _ := strconv.Atoi(m[3])
		height, _ := strconv.Atoi(m[4])
		refresh, _ := strconv.ParseFloat(m[5], 64)
		x, _ := strconv.Atoi(m[6])
		y, _ := strconv.Atoi(m[7])

		isPrimary := x == 0 && y == 0 && !havePrimary
		if isPrimary {
			havePrimary = true
		}

		d := newDisplay(m[1], width, height, int(refresh), isPrimary)
		d.ID = id
		displays = append(displays, d)
	}

	return displays
}

// parseXrandrMonitors normalizes legacy listing output. The text carries
// no stable ids, so records get sequential ids in encounter order, and
// no refresh rate, so 60Hz is assumed.
func parseXrandrMonitors(output string) []Display {
	var displays []Display
	havePrimary := false

	for _, line := range strings.Split(output, "\n") {
		m := xrandrMonitorRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		width, _ := strconv.Atoi(m[2])
		height, _ := strconv.Atoi(m[3])
		x, _ := strconv.Atoi(m[4])
		y, _ := strconv.Atoi(m[5])

		isPrimary := x == 0 && y == 0 && !havePrimary
		if isPrimary {
			havePrimary = true
		}

		d := newDisplay(m[1], width, height, 60, isPrimary)
		d.ID = len(displays)
		displays = append(displays, d)
	}

	return displays
}
