package errors

import (
	"math"
	"testing"
)

func TestValidateRatio(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"typical", 0.6, false},

		{"negative", -0.1, true},
		{"above one", 1.01, true},
		{"NaN", math.NaN(), true},
		{"infinity", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRatio(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRatio(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidLayout) {
				t.Errorf("ValidateRatio(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidLayout)
			}
		})
	}
}

func TestValidateBorderWidth(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"typical", 2, false},
		{"negative", -1, true},
		{"huge", 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBorderWidth(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBorderWidth(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"full hd", 1920, 1080, false},
		{"tiny", 1, 1, false},
		{"zero width", 0, 1080, true},
		{"negative height", 1920, -1, true},
		{"too large", 1 << 16, 1080, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMargins(t *testing.T) {
	tests := []struct {
		name                     string
		top, bottom, left, right int
		wantErr                  bool
	}{
		{"none", 0, 0, 0, 0, false},
		{"bar", 24, 0, 0, 0, false},
		{"negative", -1, 0, 0, 0, true},
		{"no width left", 0, 0, 960, 960, true},
		{"no height left", 540, 540, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMargins(1920, 1080, tt.top, tt.bottom, tt.left, tt.right)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMargins() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "main", false},
		{"with dash", "web-2", false},
		{"output style", "DP-1", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 65)), true},
		{"space", "my workspace", true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"control char", "a\x01b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateArgv(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{"single", []string{"/bin/true"}, false},
		{"with args", []string{"foot", "-e", "htop"}, false},

		{"nil", nil, true},
		{"empty executable", []string{""}, true},
		{"blank executable", []string{"  "}, true},
		{"null byte", []string{"foot", "a\x00b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArgv(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateArgv(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
