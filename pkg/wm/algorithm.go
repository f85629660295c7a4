package wm

import (
	"strings"

	"github.com/matzehuels/viv/pkg/errors"
)

// Algorithm selects how a layout places views.
type Algorithm int

const (
	// Split places the main view in a left column and stacks the
	// remaining views in a right column.
	Split Algorithm = iota
	// Fullscreen gives every view the whole output.
	Fullscreen
	// FibonacciSpiral is reserved; it currently leaves geometry unchanged.
	FibonacciSpiral
	// CentralColumn is reserved; it currently leaves geometry unchanged.
	CentralColumn
	// IndentedTabs is reserved; it currently leaves geometry unchanged.
	IndentedTabs
)

var algorithmNames = map[Algorithm]string{
	Split:           "split",
	Fullscreen:      "fullscreen",
	FibonacciSpiral: "fibonacci-spiral",
	CentralColumn:   "central-column",
	IndentedTabs:    "indented-tabs",
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Split, Fullscreen, FibonacciSpiral, CentralColumn, IndentedTabs}
}

// String returns the config name of the algorithm.
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}
	return "unknown"
}

// Reserved reports whether the algorithm is a placeholder with no placement yet.
func (a Algorithm) Reserved() bool {
	switch a {
	case FibonacciSpiral, CentralColumn, IndentedTabs:
		return true
	}
	return false
}

// ParseAlgorithm resolves a config name such as "split" or "central-column".
// Underscores are accepted in place of dashes.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for a, s := range algorithmNames {
		if s == key {
			return a, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidLayout, "unknown layout algorithm %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so algorithms can be
// decoded straight from TOML and JSON.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
