package wm

import "github.com/matzehuels/viv/pkg/errors"

// Pool is the server-wide registry of workspaces.
// It keeps configuration order and remembers when each workspace was last
// on an output.
type Pool struct {
	workspaces []*Workspace
	clock      uint64
	shown      map[*Workspace]uint64
}

// NewPool creates a pool holding the given workspaces in order.
func NewPool(ws ...*Workspace) *Pool {
	return &Pool{workspaces: ws, shown: make(map[*Workspace]uint64)}
}

// Add appends a workspace. Names must be unique.
func (p *Pool) Add(ws *Workspace) error {
	if p.Get(ws.Name) != nil {
		return errors.New(errors.ErrCodeInvalidInput, "workspace %q already exists", ws.Name)
	}
	p.workspaces = append(p.workspaces, ws)
	return nil
}

// Get returns the workspace with the given name, or nil.
func (p *Pool) Get(name string) *Workspace {
	for _, ws := range p.workspaces {
		if ws.Name == name {
			return ws
		}
	}
	return nil
}

// Workspaces returns the workspaces in pool order.
func (p *Pool) Workspaces() []*Workspace {
	return append([]*Workspace(nil), p.workspaces...)
}

// Len returns the number of workspaces.
func (p *Pool) Len() int { return len(p.workspaces) }

// SwapOut replaces the workspace shown on o with the least recently shown
// workspace that is not on any output, and returns the newly shown one.
//
// Workspaces that were never swapped in count as oldest, ties going to the
// earlier one in pool order. Repeated swaps on one output therefore cycle
// through the pool in configuration order.
func (p *Pool) SwapOut(o *Output) (*Workspace, error) {
	if len(p.workspaces) < 2 {
		return nil, errors.New(errors.ErrCodeNoSpareWorkspace, "cannot swap out workspace, only %d exists", len(p.workspaces))
	}

	var next *Workspace
	for _, ws := range p.workspaces {
		if ws.Output != nil {
			continue
		}
		if next == nil || p.shown[ws] < p.shown[next] {
			next = ws
		}
	}
	if next == nil {
		return nil, errors.New(errors.ErrCodeNoSpareWorkspace, "every workspace is already on an output")
	}

	if p.shown == nil {
		p.shown = make(map[*Workspace]uint64)
	}
	if prev := o.Workspace(); prev != nil {
		p.clock++
		p.shown[prev] = p.clock
	}
	p.clock++
	p.shown[next] = p.clock

	o.Show(next)
	return next, nil
}
