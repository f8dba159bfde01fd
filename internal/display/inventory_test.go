package display

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KleaSCM/caithe/internal/hyprctl"
)

// fakeRunner serves canned output keyed by the full command line.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, key)
	return []byte(f.outputs[key]), f.errs[key]
}

func newInventory(r hyprctl.Runner) *Inventory {
	return NewInventory(hyprctl.NewClient(r))
}

func TestRefresh_Native(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"hyprctl monitors": nativeSample,
	}}
	inv := newInventory(r)

	require.NoError(t, inv.Refresh(context.Background()))
	require.Equal(t, 2, inv.Count())
	assert.Equal(t, []string{"hyprctl monitors"}, r.calls)
	assert.Equal(t, []string{"DP-1", "HDMI-A-1"}, inv.Names())
}

func TestRefresh_FallsBackToLegacy(t *testing.T) {
	r := &fakeRunner{
		outputs: map[string]string{
			"xrandr --listmonitors": legacySample,
		},
		errs: map[string]error{
			"hyprctl monitors": errors.New("exec: \"hyprctl\": executable file not found in $PATH"),
		},
	}
	inv := newInventory(r)

	require.NoError(t, inv.Refresh(context.Background()))
	require.Equal(t, 2, inv.Count())
	assert.Equal(t, []string{"hyprctl monitors", "xrandr --listmonitors"}, r.calls)
}

func TestRefresh_SyntheticDefault(t *testing.T) {
	inv := newInventory(&fakeRunner{})

	require.NoError(t, inv.Refresh(context.Background()))
	require.Equal(t, 1, inv.Count())

	d := inv.Displays()[0]
	assert.Equal(t, "DP-1", d.Name)
	assert.Equal(t, 1920, d.Width)
	assert.Equal(t, 1080, d.Height)
	assert.Equal(t, 60, d.RefreshRate)
	assert.True(t, d.IsPrimary)
	assert.True(t, d.IsActive)
}

func TestRefresh_UnparseableOutputFallsThrough(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"hyprctl monitors":      "unknown compositor chatter\n",
		"xrandr --listmonitors": "Monitors: 0\n",
	}}
	inv := newInventory(r)

	require.NoError(t, inv.Refresh(context.Background()))
	require.Equal(t, 1, inv.Count())
	assert.True(t, inv.Displays()[0].IsPrimary)
}

func TestRefresh_ReplacesSnapshot(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"hyprctl monitors": nativeSample,
	}}
	inv := newInventory(r)
	require.NoError(t, inv.Refresh(context.Background()))
	require.Equal(t, 2, inv.Count())

	r.outputs["hyprctl monitors"] = "Monitor DP-3 (ID 7): 1280x1024 @ 75.000Hz at 0x0\n"
	require.NoError(t, inv.Refresh(context.Background()))
	require.Equal(t, 1, inv.Count())
	assert.Equal(t, "DP-3", inv.Displays()[0].Name)
	assert.False(t, inv.Has(0))
	assert.True(t, inv.Has(7))
}

func TestGet(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"hyprctl monitors": nativeSample}}
	inv := newInventory(r)
	require.NoError(t, inv.Refresh(context.Background()))

	assert.Equal(t, "HDMI-A-1", inv.Get(1).Name)
	assert.Equal(t, Display{}, inv.Get(42))
}

func TestPrimary(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"hyprctl monitors": nativeSample}}
	inv := newInventory(r)
	require.NoError(t, inv.Refresh(context.Background()))

	assert.Equal(t, "DP-1", inv.Primary().Name)
	assert.True(t, inv.Primary().IsPrimary)
}

func TestPrimary_NoOriginDisplay(t *testing.T) {
	input := `Monitor DP-1 (ID 0): 1920x1080 @ 60.000Hz at 1920x0
Monitor DP-2 (ID 1): 1920x1080 @ 60.000Hz at 3840x0
`
	r := &fakeRunner{outputs: map[string]string{"hyprctl monitors": input}}
	inv := newInventory(r)
	require.NoError(t, inv.Refresh(context.Background()))

	// First in detection order is the reportable fallback, but it is
	// never silently promoted to primary.
	p := inv.Primary()
	assert.Equal(t, "DP-1", p.Name)
	assert.False(t, p.IsPrimary)
}

func TestPrimary_EmptyInventory(t *testing.T) {
	inv := newInventory(&fakeRunner{})
	assert.Equal(t, Display{}, inv.Primary())
}

func TestDisplays_ReturnsCopy(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"hyprctl monitors": nativeSample}}
	inv := newInventory(r)
	require.NoError(t, inv.Refresh(context.Background()))

	got := inv.Displays()
	got[0].Name = "mutated"
	assert.Equal(t, "DP-1", inv.Displays()[0].Name)
}

func TestCodeOf(t *testing.T) {
	err := newError(CodeNoDisplaysFound, "no displays found")
	assert.Equal(t, CodeNoDisplaysFound, CodeOf(err))
	assert.Equal(t, CodeNone, CodeOf(nil))
	assert.Equal(t, CodeNone, CodeOf(errors.New("plain")))
	assert.Equal(t, "NoDisplaysFound: no displays found", err.Error())
}

func TestCodeOf_ClassifiedDetectionFailures(t *testing.T) {
	native := wrapError(CodeNotRunning, errors.New("exit status 1"), "native monitor listing produced no output")
	assert.Equal(t, CodeNotRunning, CodeOf(native))
	assert.Equal(t, CodeNotRunning, CodeOf(fmt.Errorf("refresh: %w", native)))
	assert.ErrorContains(t, native, "exit status 1")

	legacy := wrapError(CodeToolUnavailable, errors.New("executable not found"), "legacy monitor listing produced no output")
	assert.Equal(t, CodeToolUnavailable, CodeOf(legacy))

	assert.Equal(t, CodeParseError, CodeOf(newError(CodeParseError, "unparseable listing")))
}
