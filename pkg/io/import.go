package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/viv/pkg/errors"
)

// ReadJSON decodes a snapshot from r.
//
// Unknown fields are rejected, as are workspaces without a name and
// duplicate workspace names. ReadJSON does not close r.
func ReadJSON(r io.Reader) (Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode: %w", err)
	}

	seen := make(map[string]bool, len(s.Workspaces))
	for i, ws := range s.Workspaces {
		if ws.Name == "" {
			return Snapshot{}, errors.New(errors.ErrCodeInvalidInput, "workspace %d has no name", i)
		}
		if seen[ws.Name] {
			return Snapshot{}, errors.New(errors.ErrCodeInvalidInput, "duplicate workspace %q", ws.Name)
		}
		seen[ws.Name] = true
	}
	return s, nil
}

// ImportJSON reads a snapshot from the JSON file at path.
func ImportJSON(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Snapshot{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := ReadJSON(f)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
