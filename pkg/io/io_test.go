package io

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/viv/pkg/errors"
	"github.com/matzehuels/viv/pkg/geom"
	"github.com/matzehuels/viv/pkg/wm"
)

func sampleWorkspace() *wm.Workspace {
	ws := wm.NewWorkspace("main",
		wm.Layout{Name: "split", Algorithm: wm.Split, Parameter: 0.6},
		wm.Layout{Name: "full", Algorithm: wm.Fullscreen},
	)
	out := &wm.Output{Name: "HDMI-A-1", Width: 1920, Height: 1080}
	out.Show(ws)

	editor := wm.NewView("editor", wm.ViewTypeXDGShell, wm.NewHeadlessSurface(0, 0))
	editor.Current = geom.Box{X: 0, Y: 0, Width: 1152, Height: 1080}
	editor.Target = editor.Current
	float := wm.NewView("picker", wm.ViewTypeXWayland, nil)
	float.Floating = true

	ws.AddView(editor)
	ws.AddView(float)
	return ws
}

func TestCapture(t *testing.T) {
	ws := sampleWorkspace()
	hidden := wm.NewWorkspace("hidden")

	s := Capture(ws, nil, hidden)

	if len(s.Workspaces) != 2 {
		t.Fatalf("got %d workspaces, want 2", len(s.Workspaces))
	}
	got := s.Workspaces[0]
	if got.Output != "HDMI-A-1" {
		t.Errorf("output = %q", got.Output)
	}
	if got.Layout == nil || got.Layout.Algorithm != "split" || got.Layout.Parameter != 0.6 {
		t.Errorf("layout = %+v", got.Layout)
	}
	if len(got.Views) != 2 {
		t.Fatalf("got %d views, want 2", len(got.Views))
	}
	if got.Views[0].Current != (Box{Width: 1152, Height: 1080}) {
		t.Errorf("current = %+v", got.Views[0].Current)
	}
	if got.Views[0].ID != ws.Views[0].ID.String() {
		t.Errorf("id = %q", got.Views[0].ID)
	}
	if !got.Views[1].Floating || got.Views[1].Type != "xwayland" {
		t.Errorf("view[1] = %+v", got.Views[1])
	}

	if h := s.Workspaces[1]; h.Output != "" || h.Layout != nil {
		t.Errorf("hidden workspace = %+v", h)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(Capture(sampleWorkspace()), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	for _, want := range []string{`"workspaces"`, `"output": "HDMI-A-1"`, `"width": 1152`, `"floating": true`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %s", want)
		}
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(Snapshot{}, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"workspaces": []`) {
		t.Errorf("empty snapshot encoded as %s", buf.String())
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	want := Capture(sampleWorkspace())

	if err := ExportJSON(want, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}

	ws := got.Find("main")
	if ws == nil {
		t.Fatal("workspace main missing after import")
	}
	if ws.Views[0].Current.Geom() != (geom.Box{Width: 1152, Height: 1080}) {
		t.Errorf("current = %+v", ws.Views[0].Current)
	}
	if got.Find("missing") != nil {
		t.Error("Find(missing) should be nil")
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"workspaces": [`},
		{"unknown field", `{"workspaces": [], "extra": 1}`},
		{"missing name", `{"workspaces": [{"views": []}]}`},
		{"duplicate", `{"workspaces": [{"name": "a"}, {"name": "a"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("got %v, want FILE_NOT_FOUND", err)
	}
}

func TestExportJSONBadPath(t *testing.T) {
	if err := ExportJSON(Snapshot{}, filepath.Join(t.TempDir(), "missing", "out.json")); err == nil {
		t.Error("expected error for missing directory")
	}
}
