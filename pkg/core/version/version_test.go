package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Module", Module},
		{"Library", Library},
		{"CLI", CLI},
		{"Config", Config},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"library", Library},
		{"datex", Library},
		{"cli", CLI},
		{"config", Config},
		{"unknown", Module},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComponentVersion(tt.name); got != tt.expected {
				t.Errorf("ComponentVersion(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.HasPrefix(info, "datex "+Module) {
		t.Errorf("Info() = %q, want prefix %q", info, "datex "+Module)
	}
	if !strings.Contains(info, runtime.Version()) {
		t.Errorf("Info() = %q, missing Go version", info)
	}
}
