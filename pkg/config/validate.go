package config

import (
	"fmt"

	"github.com/matzehuels/viv/pkg/errors"
	"github.com/matzehuels/viv/pkg/mappable"
	"github.com/matzehuels/viv/pkg/wm"
)

// Validate checks the configuration and returns the first problem found as
// an INVALID_CONFIG error.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
	}
	return nil
}

func (c *Config) validate() error {
	if err := errors.Field("border_width", errors.ValidateBorderWidth(c.BorderWidth)); err != nil {
		return err
	}
	if len(c.Terminal) > 0 {
		if err := errors.Field("terminal", errors.ValidateArgv(c.Terminal)); err != nil {
			return err
		}
	}

	layouts := make(map[string]bool, len(c.Layouts))
	for i, l := range c.Layouts {
		field := fmt.Sprintf("layouts[%d]", i)
		if err := errors.Field(field+".name", errors.ValidateName(l.Name)); err != nil {
			return err
		}
		if layouts[l.Name] {
			return errors.Field(field+".name", fmt.Errorf("duplicate layout %q", l.Name))
		}
		layouts[l.Name] = true
		if err := errors.Field(field+".parameter", errors.ValidateRatio(l.Parameter)); err != nil {
			return err
		}
	}

	if len(c.Workspaces) == 0 {
		return errors.Field("workspaces", fmt.Errorf("at least one workspace is required"))
	}
	workspaces := make(map[string]bool, len(c.Workspaces))
	for i, ws := range c.Workspaces {
		field := fmt.Sprintf("workspaces[%d]", i)
		if err := errors.Field(field+".name", errors.ValidateName(ws.Name)); err != nil {
			return err
		}
		if workspaces[ws.Name] {
			return errors.Field(field+".name", fmt.Errorf("duplicate workspace %q", ws.Name))
		}
		workspaces[ws.Name] = true
		for _, name := range ws.Layouts {
			if !layouts[name] {
				return errors.Field(field+".layouts", fmt.Errorf("unknown layout %q", name))
			}
		}
		for j, v := range ws.Views {
			if _, err := wm.ParseViewType(v.Type); err != nil {
				return errors.Field(fmt.Sprintf("%s.views[%d].type", field, j), err)
			}
		}
	}

	outputs := make(map[string]bool, len(c.Outputs))
	shown := make(map[string]string, len(c.Outputs))
	for i, o := range c.Outputs {
		field := fmt.Sprintf("outputs[%d]", i)
		if err := errors.Field(field+".name", errors.ValidateName(o.Name)); err != nil {
			return err
		}
		if outputs[o.Name] {
			return errors.Field(field+".name", fmt.Errorf("duplicate output %q", o.Name))
		}
		outputs[o.Name] = true
		if err := errors.Field(field, errors.ValidateDimensions(o.Width, o.Height)); err != nil {
			return err
		}
		m := o.Margins
		if err := errors.Field(field+".margins", errors.ValidateMargins(o.Width, o.Height, m.Top, m.Bottom, m.Left, m.Right)); err != nil {
			return err
		}
		if o.Workspace == "" {
			continue
		}
		if !workspaces[o.Workspace] {
			return errors.Field(field+".workspace", fmt.Errorf("unknown workspace %q", o.Workspace))
		}
		if other, ok := shown[o.Workspace]; ok {
			return errors.Field(field+".workspace", fmt.Errorf("workspace %q is already shown on %s", o.Workspace, other))
		}
		shown[o.Workspace] = o.Name
	}

	keys := make(map[string]bool, len(c.Bindings))
	for i, b := range c.Bindings {
		field := fmt.Sprintf("bindings[%d]", i)
		if b.Key == "" {
			return errors.Field(field+".key", fmt.Errorf("key cannot be empty"))
		}
		if keys[b.Key] {
			return errors.Field(field+".key", fmt.Errorf("duplicate binding for %q", b.Key))
		}
		keys[b.Key] = true
		if _, err := c.binding(b); err != nil {
			return errors.Field(field, err)
		}
	}
	return nil
}

// binding parses b. An exec binding without arguments runs the terminal.
func (c *Config) binding(b BindingConfig) (mappable.Binding, error) {
	args := b.Args
	if len(args) == 0 {
		if a, err := mappable.ParseAction(b.Action); err == nil && a == mappable.ActionExec {
			args = c.Terminal
		}
	}
	return mappable.ParseBinding(b.Action, args)
}
