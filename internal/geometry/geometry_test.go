package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAspectScale(t *testing.T) {
	tests := []struct {
		name           string
		dw, dh, iw, ih int
		want           float64
	}{
		{"half size 4k on 1080p", 1920, 1080, 3840, 2160, 0.5},
		{"exact fit", 1920, 1080, 1920, 1080, 1.0},
		{"upscale small image", 1920, 1080, 960, 540, 2.0},
		{"width constrained", 1920, 1080, 3840, 1080, 0.5},
		{"height constrained", 1920, 1080, 1920, 2160, 0.5},
		{"portrait display", 1080, 1920, 1920, 1080, 0.5625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AspectScale(tt.dw, tt.dh, tt.iw, tt.ih), 1e-9)
		})
	}
}

func TestAspectScale_FitsWithinDisplay(t *testing.T) {
	pairs := []struct{ dw, dh, iw, ih int }{
		{2560, 1440, 800, 600},
		{1920, 1080, 5120, 2880},
		{1366, 768, 1367, 769},
	}
	for _, p := range pairs {
		s := AspectScale(p.dw, p.dh, p.iw, p.ih)
		require.Greater(t, s, 0.0)
		assert.LessOrEqual(t, s*float64(p.iw), float64(p.dw)+1e-6)
		assert.LessOrEqual(t, s*float64(p.ih), float64(p.dh)+1e-6)
	}
}

func TestCenteringOffset(t *testing.T) {
	x, y := CenteringOffset(1920, 1080, 800, 600)
	assert.Equal(t, 560, x)
	assert.Equal(t, 240, y)
}

func TestCenteringOffset_NegativeForOversizedImage(t *testing.T) {
	x, y := CenteringOffset(1920, 1080, 3840, 2160)
	assert.Equal(t, -960, x)
	assert.Equal(t, -540, y)
}

func TestCenteringOffset_RoundTripCentered(t *testing.T) {
	pairs := []struct{ dw, dh, iw, ih int }{
		{1920, 1080, 800, 600},
		{1920, 1080, 801, 601},
		{2560, 1440, 3840, 2160},
		{1366, 768, 1365, 767},
	}
	for _, p := range pairs {
		x, y := CenteringOffset(p.dw, p.dh, p.iw, p.ih)
		// Re-adding half the image should land on the display center,
		// within a pixel for odd deltas.
		cx := x + p.iw/2
		cy := y + p.ih/2
		assert.InDelta(t, p.dw/2, cx, 1)
		assert.InDelta(t, p.dh/2, cy, 1)
	}
}

func TestTileCount(t *testing.T) {
	tests := []struct {
		name           string
		dw, dh, iw, ih int
		wantX, wantY   int
	}{
		{"partial tiles round up", 1920, 1080, 400, 300, 5, 4},
		{"exact division", 1920, 1080, 960, 540, 2, 2},
		{"image larger than display", 1920, 1080, 3840, 2160, 1, 1},
		{"single column", 1920, 1080, 1920, 100, 1, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := TileCount(tt.dw, tt.dh, tt.iw, tt.ih)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}
