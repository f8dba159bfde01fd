// Package geometry holds the pure placement math shared by the wallpaper
// orchestrator: scale factors, centering offsets and tile counts derived
// from a display size and an image size.
package geometry

import "math"

// Default dimensions applied when an image's real size cannot be
// determined from its header.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// AspectScale returns the factor that fits the image inside the display
// while preserving aspect ratio: min(dw/iw, dh/ih). This is "fit"
// semantics, not "fill" — the axis needing the most shrinkage wins.
// All inputs must be positive; zero image dimensions are a caller
// contract violation.
func AspectScale(displayW, displayH, imageW, imageH int) float64 {
	scaleX := float64(displayW) / float64(imageW)
	scaleY := float64(displayH) / float64(imageH)
	return math.Min(scaleX, scaleY)
}

// CenteringOffset returns the top-left offset that centers the image on
// the display. Offsets may be negative when the image exceeds the
// display; the consumer crops symmetrically in that case.
func CenteringOffset(displayW, displayH, imageW, imageH int) (int, int) {
	return (displayW - imageW) / 2, (displayH - imageH) / 2
}

// TileCount returns how many copies of the image are needed along each
// axis to cover the display, at least 1 each for positive inputs.
func TileCount(displayW, displayH, imageW, imageH int) (int, int) {
	tilesX := int(math.Ceil(float64(displayW) / float64(imageW)))
	tilesY := int(math.Ceil(float64(displayH) / float64(imageH)))
	if tilesX < 1 {
		tilesX = 1
	}
	if tilesY < 1 {
		tilesY = 1
	}
	return tilesX, tilesY
}
