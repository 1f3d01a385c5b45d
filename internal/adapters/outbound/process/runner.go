package process

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

// waitDelay bounds how long Run waits for output pipes after the process
// has been killed. Student programs may leave children holding them.
const waitDelay = 2 * time.Second

// ExecRunner implements domain.ProcessRunner with os/exec.
type ExecRunner struct{}

func New() *ExecRunner {
	return &ExecRunner{}
}

// Run starts the process and waits for it. A non-zero exit status is not an
// error; an error means the process could not be run at all or ctx was
// cancelled. TimedOut is reported only when spec.Timeout expired.
func (r *ExecRunner) Run(ctx context.Context, spec domain.ProcessSpec) (domain.ProcessResult, error) {
	runCtx := ctx
	if spec.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, spec.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	res := domain.ProcessResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err == nil {
		return res, nil
	}

	// The parent's own deadline or cancellation is not our time limit.
	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		return res, ctxErr
	}
	if spec.Timeout > 0 && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		res.TimedOut = true
		res.ExitCode = -1
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return res, err
}
