package mappable

import (
	"strings"

	"github.com/matzehuels/viv/pkg/errors"
)

// Action identifies a mappable function.
type Action int

const (
	ActionExec Action = iota
	ActionIncrementDivide
	ActionTerminate
	ActionSwapOut
	ActionNextWindow
	ActionPrevWindow
	ActionTileWindow
)

var actionNames = []string{
	ActionExec:            "exec",
	ActionIncrementDivide: "increment-divide",
	ActionTerminate:       "terminate",
	ActionSwapOut:         "swap-out",
	ActionNextWindow:      "next-window",
	ActionPrevWindow:      "prev-window",
	ActionTileWindow:      "tile-window",
}

// Actions lists the whole catalog in declaration order.
func Actions() []Action {
	out := make([]Action, len(actionNames))
	for i := range actionNames {
		out[i] = Action(i)
	}
	return out
}

// String returns the action's binding name.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction resolves a binding name. Underscores are accepted for dashes.
func ParseAction(name string) (Action, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, s := range actionNames {
		if s == key {
			return Action(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidAction, "unknown action %q", name)
}
