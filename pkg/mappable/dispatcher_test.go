package mappable

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/viv/pkg/observability"
	"github.com/matzehuels/viv/pkg/wm"
)

type fakeHost struct {
	terminated int
	swapped    []*wm.Output
	swapErr    error
}

func (h *fakeHost) Terminate() { h.terminated++ }

func (h *fakeHost) SwapOut(o *wm.Output) error {
	h.swapped = append(h.swapped, o)
	return h.swapErr
}

type dispatchRecorder struct {
	observability.NoopDispatchHooks
	actions []string
	spawns  []string
	errs    []error
}

func (r *dispatchRecorder) OnDispatch(action, workspace string) {
	r.actions = append(r.actions, action+"@"+workspace)
}

func (r *dispatchRecorder) OnSpawn(executable string, err error) {
	r.spawns = append(r.spawns, executable)
	r.errs = append(r.errs, err)
}

func newTestDispatcher(t *testing.T, opts ...Option) (*Dispatcher, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	return NewDispatcher(append([]Option{WithLogger(logger)}, opts...)...), &buf
}

func splitWorkspace(ratio float64) *wm.Workspace {
	return wm.NewWorkspace("main", wm.Layout{Name: "split", Algorithm: wm.Split, Parameter: ratio})
}

func TestExecLaunchesProgram(t *testing.T) {
	rec := &RecordingLauncher{}
	d, buf := newTestDispatcher(t, WithLauncher(rec))

	d.Dispatch(nil, Exec("/bin/true", "/bin/true"))

	require.Len(t, rec.Calls(), 1)
	assert.Equal(t, "/bin/true", rec.Calls()[0].Executable)
	assert.Equal(t, []string{"/bin/true"}, rec.Calls()[0].Args)
	assert.Contains(t, buf.String(), "Executing /bin/true")
}

func TestExecDefaultArgv(t *testing.T) {
	rec := &RecordingLauncher{}
	d, _ := newTestDispatcher(t, WithLauncher(rec))

	d.Dispatch(splitWorkspace(0.5), Exec("foot"))

	require.Len(t, rec.Calls(), 1)
	assert.Equal(t, []string{"foot"}, rec.Calls()[0].Args)
}

func TestExecFailureIsSwallowed(t *testing.T) {
	rec := &RecordingLauncher{Err: errors.New("no such file")}
	hooks := &dispatchRecorder{}
	observability.SetDispatchHooks(hooks)
	t.Cleanup(observability.Reset)

	d, buf := newTestDispatcher(t, WithLauncher(rec))
	assert.NotPanics(t, func() { d.Dispatch(nil, Exec("/nonexistent/prog")) })

	assert.Contains(t, buf.String(), "Failed to launch")
	assert.Equal(t, []string{"/nonexistent/prog"}, hooks.spawns)
	require.Len(t, hooks.errs, 1)
	assert.Error(t, hooks.errs[0])
}

func TestIncrementDivide(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		delta float64
		want  float64
	}{
		{"grow", 0.5, 0.1, 0.6},
		{"shrink", 0.5, -0.2, 0.3},
		{"clamp high", 0.95, 0.1, 1.0},
		{"clamp low", 0.05, -0.1, 0.0},
		{"zero", 0.4, 0, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDispatcher(t, WithLauncher(&RecordingLauncher{}))
			ws := splitWorkspace(tt.start)

			d.Dispatch(ws, IncrementDivide(tt.delta))

			assert.InDelta(t, tt.want, ws.ActiveLayout().Parameter, 1e-9)
		})
	}
}

func TestIncrementDivideWithoutLayout(t *testing.T) {
	d, _ := newTestDispatcher(t, WithLauncher(&RecordingLauncher{}))
	ws := wm.NewWorkspace("bare")

	assert.NotPanics(t, func() { d.Dispatch(ws, IncrementDivide(0.1)) })
	assert.NotPanics(t, func() { d.Dispatch(nil, IncrementDivide(0.1)) })
}

func TestTerminate(t *testing.T) {
	host := &fakeHost{}
	d, _ := newTestDispatcher(t, WithLauncher(&RecordingLauncher{}), WithHost(host))

	d.Dispatch(splitWorkspace(0.5), Terminate())

	assert.Equal(t, 1, host.terminated)
}

func TestSwapOut(t *testing.T) {
	out := &wm.Output{Name: "HDMI-A-1", Width: 1920, Height: 1080}
	ws := splitWorkspace(0.5)
	out.Show(ws)

	t.Run("delegates to host", func(t *testing.T) {
		host := &fakeHost{}
		d, buf := newTestDispatcher(t, WithLauncher(&RecordingLauncher{}), WithHost(host))

		d.Dispatch(ws, SwapOut())

		require.Len(t, host.swapped, 1)
		assert.Same(t, out, host.swapped[0])
		assert.Contains(t, buf.String(), "Attempting swap-out")
	})

	t.Run("host error is logged", func(t *testing.T) {
		host := &fakeHost{swapErr: errors.New("nothing to swap")}
		d, buf := newTestDispatcher(t, WithLauncher(&RecordingLauncher{}), WithHost(host))

		d.Dispatch(ws, SwapOut())

		assert.Contains(t, buf.String(), "Swap-out failed")
	})

	t.Run("workspace without output", func(t *testing.T) {
		host := &fakeHost{}
		d, _ := newTestDispatcher(t, WithLauncher(&RecordingLauncher{}), WithHost(host))

		d.Dispatch(splitWorkspace(0.5), SwapOut())

		assert.Empty(t, host.swapped)
	})
}

func TestNoHost(t *testing.T) {
	d, buf := newTestDispatcher(t, WithLauncher(&RecordingLauncher{}))
	ws := splitWorkspace(0.5)
	(&wm.Output{Name: "X"}).Show(ws)

	assert.NotPanics(t, func() {
		d.Dispatch(ws, Terminate())
		d.Dispatch(ws, SwapOut())
	})
	assert.Contains(t, buf.String(), "No host")
}

func TestReservedActionsDoNothing(t *testing.T) {
	rec := &RecordingLauncher{}
	host := &fakeHost{}
	d, _ := newTestDispatcher(t, WithLauncher(rec), WithHost(host))
	ws := splitWorkspace(0.5)
	v := wm.NewView("term", wm.ViewTypeXDGShell, wm.NewHeadlessSurface(0, 0))
	ws.AddView(v)

	for _, b := range []Binding{NextWindow(), PrevWindow(), TileWindow()} {
		d.Dispatch(ws, b)
	}

	assert.Empty(t, rec.Calls())
	assert.Zero(t, host.terminated)
	assert.Empty(t, host.swapped)
	assert.Equal(t, 0.5, ws.ActiveLayout().Parameter)
	assert.Equal(t, []*wm.View{v}, ws.Views)
}

func TestZeroBindingIsNoop(t *testing.T) {
	hooks := &dispatchRecorder{}
	observability.SetDispatchHooks(hooks)
	t.Cleanup(observability.Reset)

	d, _ := newTestDispatcher(t, WithLauncher(&RecordingLauncher{}))
	d.Dispatch(splitWorkspace(0.5), Binding{})

	assert.Empty(t, hooks.actions)
}

func TestDispatchReportsHooks(t *testing.T) {
	hooks := &dispatchRecorder{}
	observability.SetDispatchHooks(hooks)
	t.Cleanup(observability.Reset)

	d, _ := newTestDispatcher(t, WithLauncher(&RecordingLauncher{}), WithHost(&fakeHost{}))
	ws := splitWorkspace(0.5)

	d.Dispatch(ws, IncrementDivide(0.1))
	d.Dispatch(ws, Terminate())
	d.Dispatch(nil, NextWindow())

	assert.Equal(t, []string{"increment-divide@main", "terminate@main", "next-window@"}, hooks.actions)
}
