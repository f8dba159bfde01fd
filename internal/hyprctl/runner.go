package hyprctl

import (
	"context"
	"os/exec"
	"time"

	"github.com/KleaSCM/caithe/internal/logger"
)

// DefaultTimeout bounds a single external tool invocation. A hung hyprctl
// should never hang the caller indefinitely.
const DefaultTimeout = 10 * time.Second

// Runner executes an external command and returns its combined stdout and
// stderr. The returned error is non-nil when the process could not be
// spawned or exited non-zero; callers decide whether the exit status is
// meaningful for their command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands through os/exec with a per-call deadline.
type execRunner struct {
	timeout time.Duration
}

// NewRunner returns a Runner backed by os/exec. A non-positive timeout
// falls back to DefaultTimeout.
func NewRunner(timeout time.Duration) Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &execRunner{timeout: timeout}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()

	log := logger.WithComponent("hyprctl")
	if err != nil {
		log.Debug().
			Str("command", name).
			Strs("args", args).
			Err(err).
			Msg("Command finished with error")
	} else {
		log.Debug().
			Str("command", name).
			Strs("args", args).
			Int("bytes", len(out)).
			Msg("Command finished")
	}

	return out, err
}
