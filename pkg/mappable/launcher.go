package mappable

import (
	"fmt"
	"os/exec"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// Launcher starts external programs.
type Launcher interface {
	// Launch starts executable with argv and returns once it is running.
	Launch(executable string, argv []string) error
}

// ProcessLauncher starts programs as detached children.
//
// The child runs in a new session with stdin, stdout and stderr on the null
// device. Launch never waits for the program; a background goroutine reaps it
// when it exits.
type ProcessLauncher struct {
	logger *log.Logger
}

// NewProcessLauncher creates a launcher. A nil logger uses log.Default().
func NewProcessLauncher(logger *log.Logger) *ProcessLauncher {
	if logger == nil {
		logger = log.Default()
	}
	return &ProcessLauncher{logger: logger}
}

// Launch resolves executable on PATH and starts it.
func (p *ProcessLauncher) Launch(executable string, argv []string) error {
	path, err := exec.LookPath(executable)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", executable, err)
	}
	if len(argv) == 0 {
		argv = []string{executable}
	}

	// Nil Stdin, Stdout and Stderr connect the child to the null device.
	cmd := &exec.Cmd{
		Path:        path,
		Args:        argv,
		SysProcAttr: detachedAttr(),
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", executable, err)
	}

	pid := cmd.Process.Pid
	p.logger.Debug("Started process", "executable", executable, "pid", pid)
	go func() {
		err := cmd.Wait()
		p.logger.Debug("Process exited", "executable", executable, "pid", pid, "err", err)
	}()
	return nil
}

// RecordingLauncher records launches instead of starting anything.
type RecordingLauncher struct {
	// Err is returned from every Launch call.
	Err error

	mu    sync.Mutex
	calls []ExecPayload
}

// Launch records the call.
func (r *RecordingLauncher) Launch(executable string, argv []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, ExecPayload{Executable: executable, Args: slices.Clone(argv)})
	return r.Err
}

// Calls returns the recorded launches in order.
func (r *RecordingLauncher) Calls() []ExecPayload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}
