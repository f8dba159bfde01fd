// Package picker wraps the desktop file-selection dialog. The dialog is
// an external tool; a cancelled dialog yields an empty path, which
// callers treat as "no selection, no-op".
package picker

import (
	"context"
	"fmt"
	"strings"

	"github.com/KleaSCM/caithe/internal/fileutil"
	"github.com/KleaSCM/caithe/internal/hyprctl"
)

// Picker runs the zenity file-selection dialog.
type Picker struct {
	runner hyprctl.Runner
}

// New returns a Picker using the given runner.
func New(runner hyprctl.Runner) *Picker {
	return &Picker{runner: runner}
}

// PickFile opens the dialog and returns the selected path. Cancelling
// the dialog returns ("", nil): cancellation is a normal outcome, not a
// failure.
func (p *Picker) PickFile(ctx context.Context, title, defaultPath string) (string, error) {
	args := []string{"--file-selection", "--title=" + title}
	if defaultPath != "" {
		args = append(args, "--filename="+defaultPath)
	}

	var filter strings.Builder
	filter.WriteString("--file-filter=Image files |")
	for _, ext := range fileutil.SupportedFormats() {
		fmt.Fprintf(&filter, " *%s", ext)
	}
	args = append(args, filter.String(), "--file-filter=All files | *")

	out, err := p.runner.Run(ctx, "zenity", args...)
	selection := strings.TrimSpace(string(out))
	if err != nil || selection == "" {
		// Non-zero exit is how zenity reports a cancelled dialog.
		return "", nil
	}
	return selection, nil
}
