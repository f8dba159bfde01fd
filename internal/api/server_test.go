package api

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KleaSCM/caithe/internal/config"
	"github.com/KleaSCM/caithe/internal/display"
	"github.com/KleaSCM/caithe/internal/hyprctl"
	"github.com/KleaSCM/caithe/internal/wallpaper"
)

type fakeRunner struct {
	outputs map[string]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	return []byte(f.outputs[key]), nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	r := &fakeRunner{outputs: map[string]string{
		"hyprctl monitors": `Monitor DP-1 (ID 0): 2560x1440 @ 165.001Hz at 0x0
Monitor HDMI-A-1 (ID 1): 1920x1080 @ 60.001Hz at 2560x0
`,
		"hyprctl monitors -j": `[{"name": "DP-1"},{"name": "HDMI-A-1"}]`,
	}}

	client := hyprctl.NewClient(r)
	inv := display.NewInventory(client)
	require.NoError(t, inv.Refresh(context.Background()))

	cm, err := config.NewManager(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	return NewServer(inv, wallpaper.NewManager(client, inv), cm)
}

func testPNG(t *testing.T) string {
	t.Helper()
	b := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	b = binary.BigEndian.AppendUint32(b, 13)
	b = append(b, 'I', 'H', 'D', 'R')
	b = binary.BigEndian.AppendUint32(b, 800)
	b = binary.BigEndian.AppendUint32(b, 600)
	path := filepath.Join(t.TempDir(), "wall.png")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	} else {
		rdr = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rdr)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestGetDisplays(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "GET", "/api/displays", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var displays []display.Display
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &displays))
	require.Len(t, displays, 2)
	assert.Equal(t, "DP-1", displays[0].Name)
	assert.True(t, displays[0].IsPrimary)
}

func TestGetPrimary(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "GET", "/api/displays/primary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var d display.Display
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, "DP-1", d.Name)
}

func TestSetWallpaper(t *testing.T) {
	s := newTestServer(t)
	path := testPNG(t)
	id := 0

	rec := doJSON(t, s, "POST", "/api/wallpapers", map[string]any{"path": path, "displayId": &id})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, s, "GET", "/api/wallpapers", nil)
	var placements []wallpaper.Placement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placements))
	require.Len(t, placements, 1)
	assert.Equal(t, path, placements[0].Path)
	assert.Equal(t, wallpaper.ModeScale, placements[0].Mode)
	assert.Equal(t, 800, placements[0].Width)
}

func TestSetWallpaper_All(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "POST", "/api/wallpapers", map[string]any{"path": testPNG(t), "all": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, s, "GET", "/api/wallpapers", nil)
	var placements []wallpaper.Placement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placements))
	assert.Len(t, placements, 2)
}

func TestSetWallpaper_BadRequests(t *testing.T) {
	s := newTestServer(t)
	id := 0

	rec := doJSON(t, s, "POST", "/api/wallpapers", map[string]any{"path": testPNG(t)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, "POST", "/api/wallpapers", map[string]any{"path": "", "displayId": &id})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, "POST", "/api/wallpapers", map[string]any{"path": "/missing/wall.png", "displayId": &id})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetMode(t *testing.T) {
	s := newTestServer(t)
	path := testPNG(t)
	id := 1
	rec := doJSON(t, s, "POST", "/api/wallpapers", map[string]any{"path": path, "displayId": &id})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, "PUT", "/api/wallpapers/1/mode", map[string]string{"mode": "tile"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, s, "PUT", "/api/wallpapers/0/mode", map[string]string{"mode": "tile"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, "PUT", "/api/wallpapers/1/mode", map[string]string{"mode": "diagonal"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveWallpaper(t *testing.T) {
	s := newTestServer(t)
	path := testPNG(t)
	id := 0
	rec := doJSON(t, s, "POST", "/api/wallpapers", map[string]any{"path": path, "displayId": &id})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, "DELETE", "/api/wallpapers/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, "DELETE", "/api/wallpapers/0", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, "GET", "/api/wallpapers", nil)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestConfigRoundTrip(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, "GET", "/api/config", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings config.Settings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, "scale", settings.Wallpaper.DefaultMode)

	settings.Wallpaper.DefaultMode = "center"
	rec = doJSON(t, s, "PUT", "/api/config", settings)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "center", s.configMgr.Get().Wallpaper.DefaultMode)

	settings.Wallpaper.DefaultMode = "diagonal"
	rec = doJSON(t, s, "PUT", "/api/config", settings)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "GET", "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(2), body["displays"])
}

func TestRefreshDisplays(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "POST", "/api/displays/refresh", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var displays []display.Display
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &displays))
	assert.Len(t, displays, 2)
}
