package mappable

import (
	"fmt"
	"strings"
)

// Payload is the argument carried by a binding.
// The set of implementations is closed: [ExecPayload], [IncrementPayload]
// and [EmptyPayload].
type Payload interface {
	fmt.Stringer
	payload()
}

// ExecPayload names a program to launch.
type ExecPayload struct {
	Executable string
	// Args is the full argument vector, including argv[0].
	// When empty, argv is just the executable.
	Args []string
}

// Argv returns the argument vector to start the program with.
func (p ExecPayload) Argv() []string {
	if len(p.Args) == 0 {
		return []string{p.Executable}
	}
	return p.Args
}

func (p ExecPayload) String() string { return strings.Join(p.Argv(), " ") }

// IncrementPayload carries a signed change to a layout parameter.
type IncrementPayload struct {
	Delta float64
}

func (p IncrementPayload) String() string { return fmt.Sprintf("%+g", p.Delta) }

// EmptyPayload is used by actions without arguments.
type EmptyPayload struct{}

func (EmptyPayload) String() string { return "" }

func (ExecPayload) payload()      {}
func (IncrementPayload) payload() {}
func (EmptyPayload) payload()     {}
