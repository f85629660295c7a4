package cli

import (
	"bytes"
	"context"
	stdio "io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/viv/internal/ipc"
	"github.com/matzehuels/viv/pkg/config"
	"github.com/matzehuels/viv/pkg/errors"
	"github.com/matzehuels/viv/pkg/io"
	"github.com/matzehuels/viv/pkg/server"
)

const testConfigPath = "testdata/viv.toml"

// runCLI executes the root command with args and returns what it wrote to
// its output stream.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(stdio.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(stdio.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func runJSON(t *testing.T, args ...string) io.Snapshot {
	t.Helper()
	out, err := runCLI(t, args...)
	require.NoError(t, err)
	snap, err := io.ReadJSON(strings.NewReader(out))
	require.NoError(t, err, "output: %s", out)
	return snap
}

func TestLayoutOptionsValidate(t *testing.T) {
	opts := layoutOptions{format: formatTable}
	require.NoError(t, opts.validate())

	opts = layoutOptions{format: "yaml"}
	err := opts.validate()
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	opts = layoutOptions{format: formatTable, output: "out.json"}
	require.NoError(t, opts.validate())
	assert.Equal(t, formatJSON, opts.format)
}

func TestLayoutCommand(t *testing.T) {
	snap := runJSON(t, "--config", testConfigPath, "layout", "--format", "json")

	require.Len(t, snap.Workspaces, 1)
	ws := snap.Workspaces[0]
	assert.Equal(t, "main", ws.Name)
	assert.Equal(t, "OUT-1", ws.Output)
	require.Len(t, ws.Views, 2)
	assert.Equal(t, io.Box{Width: 500, Height: 600}, ws.Views[0].Target)
	assert.Equal(t, io.Box{X: 500, Width: 500, Height: 600}, ws.Views[1].Target)
}

func TestLayoutCommandAll(t *testing.T) {
	snap := runJSON(t, "-c", testConfigPath, "layout", "--all", "-f", "json")

	require.Len(t, snap.Workspaces, 2)
	other := snap.Find("other")
	require.NotNil(t, other)
	assert.Empty(t, other.Output)
	assert.Equal(t, io.Box{}, other.Views[0].Target, "hidden workspaces are not laid out")
}

func TestLayoutCommandWorkspace(t *testing.T) {
	snap := runJSON(t, "-c", testConfigPath, "layout", "-w", "other", "-f", "json")
	require.Len(t, snap.Workspaces, 1)
	assert.Equal(t, "other", snap.Workspaces[0].Name)

	_, err := runCLI(t, "-c", testConfigPath, "layout", "-w", "missing")
	assert.True(t, errors.Is(err, errors.ErrCodeWorkspaceNotFound))
}

func TestLayoutCommandTable(t *testing.T) {
	out, err := runCLI(t, "-c", testConfigPath, "layout")
	require.NoError(t, err)
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "500x600+500+0")
}

func TestLayoutCommandOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	_, err := runCLI(t, "-c", testConfigPath, "layout", "--all", "-o", path)
	require.NoError(t, err)

	snap, err := io.ImportJSON(path)
	require.NoError(t, err)
	assert.Len(t, snap.Workspaces, 2)
}

func TestLayoutCommandMissingConfig(t *testing.T) {
	_, err := runCLI(t, "-c", filepath.Join(t.TempDir(), "nope.toml"), "layout")
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestDispatchCommandIncrementDivide(t *testing.T) {
	snap := runJSON(t, "-c", testConfigPath, "dispatch", "-f", "json", "increment-divide", "0.1")
	require.Len(t, snap.Workspaces, 1)
	assert.Equal(t, 600, snap.Workspaces[0].Views[0].Target.Width)

	snap = runJSON(t, "-c", testConfigPath, "dispatch", "-f", "json", "increment-divide", "-0.1")
	assert.Equal(t, 400, snap.Workspaces[0].Views[0].Target.Width)
	assert.InDelta(t, 0.4, snap.Workspaces[0].Layout.Parameter, 1e-9)
}

func TestDispatchCommandSwapOut(t *testing.T) {
	snap := runJSON(t, "-c", testConfigPath, "dispatch", "-f", "json", "swap-out")
	require.Len(t, snap.Workspaces, 1)
	assert.Equal(t, "main", snap.Workspaces[0].Name)
	assert.Empty(t, snap.Workspaces[0].Output)

	snap = runJSON(t, "-c", testConfigPath, "dispatch", "-f", "json", "--all", "swap-out")
	other := snap.Find("other")
	require.NotNil(t, other)
	assert.Equal(t, "OUT-1", other.Output)
	assert.Equal(t, io.Box{Width: 1000, Height: 600}, other.Views[0].Target)
}

func TestDispatchCommandTerminate(t *testing.T) {
	out, err := runCLI(t, "-c", testConfigPath, "dispatch", "terminate")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDispatchCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown action", []string{"fly"}, errors.ErrCodeInvalidAction},
		{"missing delta", []string{"increment-divide"}, errors.ErrCodeInvalidAction},
		{"bad delta", []string{"increment-divide", "lots"}, errors.ErrCodeInvalidAction},
		{"args on terminate", []string{"terminate", "now"}, errors.ErrCodeInvalidAction},
		{"unknown workspace", []string{"-w", "missing", "swap-out"}, errors.ErrCodeWorkspaceNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, append([]string{"-c", testConfigPath, "dispatch"}, tt.args...)...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestStatusFromSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	_, err := runCLI(t, "-c", testConfigPath, "layout", "--all", "-o", path)
	require.NoError(t, err)

	snap := runJSON(t, "status", "--from", path, "-f", "json")
	require.Len(t, snap.Workspaces, 1)
	assert.Equal(t, "main", snap.Workspaces[0].Name)

	snap = runJSON(t, "status", "--from", path, "-f", "json", "--all")
	assert.Len(t, snap.Workspaces, 2)

	snap = runJSON(t, "status", "--from", path, "-w", "other", "-f", "json")
	require.Len(t, snap.Workspaces, 1)
	assert.Equal(t, "other", snap.Workspaces[0].Name)

	_, err = runCLI(t, "status", "--from", path, "-w", "missing")
	assert.Error(t, err)
}

func TestStatusFlagsExclusive(t *testing.T) {
	_, err := runCLI(t, "status", "--from", "a.json", "--remote", "127.0.0.1:1")
	assert.Error(t, err)
}

func TestRemoteCommands(t *testing.T) {
	cfg, err := config.Load(testConfigPath)
	require.NoError(t, err)
	host, err := server.New(cfg, server.WithLogger(log.New(stdio.Discard)))
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() {
		served <- ipc.Serve(ctx, ipc.Config{Host: host, Listener: ln, Logger: log.New(stdio.Discard)})
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-served:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("serve did not stop")
		}
	})

	snap := runJSON(t, "status", "--remote", addr, "-f", "json", "--all")
	assert.Len(t, snap.Workspaces, 2)

	snap = runJSON(t, "dispatch", "--remote", addr, "-f", "json", "increment-divide", "0.1")
	require.Len(t, snap.Workspaces, 1)
	assert.Equal(t, "main", snap.Workspaces[0].Name)
	assert.Equal(t, 600, snap.Workspaces[0].Views[0].Target.Width)

	// State persists on the served host.
	snap = runJSON(t, "status", "--remote", addr, "-f", "json")
	assert.Equal(t, 600, snap.Workspaces[0].Views[0].Target.Width)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viv", "config.toml")

	_, err := runCLI(t, "config", "init", path)
	require.NoError(t, err)
	_, err = config.Load(path)
	require.NoError(t, err)

	_, err = runCLI(t, "config", "init", path)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = runCLI(t, "config", "init", path, "--force")
	assert.NoError(t, err)
}

func TestConfigInitStdout(t *testing.T) {
	out, err := runCLI(t, "config", "init", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "border_width")

	cfg, err := config.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestConfigInitDefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	_, err := runCLI(t, "config", "init")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "viv", "config.toml"))
	assert.NoError(t, err)
}

func TestConfigCheck(t *testing.T) {
	_, err := runCLI(t, "-c", testConfigPath, "config", "check")
	assert.NoError(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("border_width = -1\n"), 0o644))
	_, err = runCLI(t, "-c", bad, "config", "check")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	out, err := runCLI(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "viv", "config.toml"), strings.TrimSpace(out))

	out, err = runCLI(t, "-c", "custom.toml", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, "custom.toml", strings.TrimSpace(out))
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, err := runCLI(t, "completion", shell)
		require.NoError(t, err, shell)
		assert.Contains(t, out, "viv", shell)
	}

	_, err := runCLI(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestLogFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viv.log")
	_, err := runCLI(t, "-c", testConfigPath, "--log-file", path, "layout", "-f", "json")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Laid out 1 workspaces")
}
