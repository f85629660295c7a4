package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxDimension bounds output sizes; anything larger is certainly a typo.
const maxDimension = 1 << 15

// ValidateRatio checks a layout parameter used as a split ratio.
// The value must be a finite number in [0, 1].
func ValidateRatio(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return New(ErrCodeInvalidLayout, "ratio must be a finite number")
	}
	if r < 0 || r > 1 {
		return New(ErrCodeInvalidLayout, "ratio %v out of range [0, 1]", r)
	}
	return nil
}

// ValidateBorderWidth checks the compositor-wide border width.
func ValidateBorderWidth(w int) error {
	if w < 0 {
		return New(ErrCodeInvalidConfig, "border width cannot be negative (got %d)", w)
	}
	if w > 256 {
		return New(ErrCodeInvalidConfig, "border width too large (max 256, got %d)", w)
	}
	return nil
}

// ValidateDimensions checks an output's pixel size.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidConfig, "output size must be positive (got %dx%d)", width, height)
	}
	if width > maxDimension || height > maxDimension {
		return New(ErrCodeInvalidConfig, "output size too large (max %d, got %dx%d)", maxDimension, width, height)
	}
	return nil
}

// ValidateMargins checks that the reserved margins leave a usable area
// on an output of the given size.
func ValidateMargins(width, height, top, bottom, left, right int) error {
	if top < 0 || bottom < 0 || left < 0 || right < 0 {
		return New(ErrCodeInvalidConfig, "margins cannot be negative")
	}
	if left+right >= width {
		return New(ErrCodeInvalidConfig, "horizontal margins (%d) leave no usable width on a %d pixel output", left+right, width)
	}
	if top+bottom >= height {
		return New(ErrCodeInvalidConfig, "vertical margins (%d) leave no usable height on a %d pixel output", top+bottom, height)
	}
	return nil
}

// ValidateName checks workspace, output and layout names.
//
// Names show up in URLs and log lines, so the rules are conservative:
//   - Not empty, at most 64 characters
//   - No control characters or whitespace
//   - No path separators
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "name too long (max 64 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "name %q contains whitespace or control characters", name)
		}
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "name %q cannot contain path separators", name)
	}
	return nil
}

// ValidateArgv checks a command line handed to the exec action.
// The first element is the executable and must be non-empty; no element may
// contain a null byte since it could not be passed to execve.
func ValidateArgv(argv []string) error {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return New(ErrCodeInvalidAction, "command cannot be empty")
	}
	for _, a := range argv {
		if strings.ContainsRune(a, '\x00') {
			return New(ErrCodeInvalidAction, "command argument contains a null byte")
		}
	}
	return nil
}
