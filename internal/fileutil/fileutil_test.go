package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/walls/a.png", true},
		{"/walls/a.jpg", true},
		{"/walls/a.JPEG", true},
		{"/walls/a.WebP", true},
		{"/walls/a.bmp", true},
		{"/walls/a.tiff", true},
		{"/walls/a.gif", true},
		{"/walls/a.txt", false},
		{"/walls/a.svg", false},
		{"/walls/png", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsImageFile(tt.path), tt.path)
	}
}

func TestSupportedFormats_ReturnsCopy(t *testing.T) {
	formats := SupportedFormats()
	require.Contains(t, formats, ".png")
	formats[0] = ".exe"
	assert.Contains(t, SupportedFormats(), ".png")
}

func TestImagesInDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.jpg", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	images, err := ImagesInDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.png"),
	}, images)
}

func TestImagesInDirectory_Missing(t *testing.T) {
	images, err := ImagesInDirectory(filepath.Join(t.TempDir(), "gone"))
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "walls"), ExpandPath("~/walls"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/abs/path.png", ExpandPath("/abs/path.png"))
	assert.Equal(t, "relative.png", ExpandPath("relative.png"))
}
