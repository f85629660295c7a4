//go:build unix

package mappable

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLauncher() *ProcessLauncher {
	return NewProcessLauncher(log.New(os.Stderr))
}

func TestProcessLauncherStartsProgram(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	out := filepath.Join(t.TempDir(), "ran")

	err := quietLauncher().Launch("sh", []string{"sh", "-c", "echo ok > " + out})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && strings.TrimSpace(string(data)) == "ok"
	}, 5*time.Second, 10*time.Millisecond)
}

func TestProcessLauncherDoesNotWait(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}

	start := time.Now()
	err := quietLauncher().Launch("sleep", []string{"sleep", "5"})
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestProcessLauncherNewSession(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	if _, err := os.Stat("/proc/self/stat"); err != nil {
		t.Skip("procfs not available")
	}
	out := filepath.Join(t.TempDir(), "sid")

	// Field 6 of /proc/<pid>/stat is the session id; a session leader's equals its pid.
	script := `set -- $(cat /proc/$$/stat); echo "$1 $6" > ` + out
	require.NoError(t, quietLauncher().Launch("sh", []string{"sh", "-c", script}))

	var fields []string
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		if err != nil {
			return false
		}
		fields = strings.Fields(string(data))
		return len(fields) == 2
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, fields[0], fields[1])
}

func TestProcessLauncherMissingExecutable(t *testing.T) {
	err := quietLauncher().Launch("/nonexistent/viv-test-prog", nil)
	assert.Error(t, err)
}

func TestDispatcherExecMissingExecutable(t *testing.T) {
	d := NewDispatcher(WithLogger(log.New(os.Stderr)))
	assert.NotPanics(t, func() { d.Dispatch(nil, Exec("/nonexistent/viv-test-prog")) })
}

func TestDispatcherExecTrue(t *testing.T) {
	path, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true not available")
	}
	d := NewDispatcher(WithLogger(log.New(os.Stderr)))

	start := time.Now()
	d.Dispatch(nil, Exec(path, path))
	assert.Less(t, time.Since(start), 2*time.Second)
}
