// Package platform provides host preflight checks: effective privilege and
// distribution identity. Both must pass before any stage mutates system state.
package platform

import (
	"fmt"
	"os"
	"strings"

	"github.com/ksyq12/provision/internal/errors"
)

// osReleasePath is the standard distribution descriptor file.
const osReleasePath = "/etc/os-release"

// supportedDistros is the set of distribution IDs the tool provisions.
var supportedDistros = map[string]bool{
	"ubuntu": true,
	"debian": true,
}

// OSInfo describes the detected distribution.
type OSInfo struct {
	ID      string // e.g. "ubuntu"
	Name    string // e.g. "Ubuntu"
	Version string // e.g. "24.04"
}

// RequireRoot verifies the effective user is the superuser.
// The detected uid is included in the error for diagnostics.
func RequireRoot() error {
	if euid := os.Geteuid(); euid != 0 {
		return errors.Wrap(errors.ErrCodePrivilege,
			fmt.Sprintf("root privileges required (running as uid %d)", euid), nil)
	}
	return nil
}

// DetectOS reads /etc/os-release and verifies the distribution is supported.
func DetectOS() (*OSInfo, error) {
	return DetectOSFromFile(osReleasePath)
}

// DetectOSFromFile parses an os-release style file at the given path.
// A missing file means the distribution cannot be determined, which is fatal.
func DetectOSFromFile(path string) (*OSInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodePlatform,
				fmt.Sprintf("cannot determine distribution: %s not found", path), nil)
		}
		return nil, errors.Wrap(errors.ErrCodePlatform, "cannot read os-release", err)
	}

	info := parseOSRelease(string(data))
	if info.ID == "" {
		return nil, errors.Wrap(errors.ErrCodePlatform,
			"cannot determine distribution: os-release has no ID field", nil)
	}

	if !supportedDistros[info.ID] {
		return nil, errors.Wrap(errors.ErrCodePlatform,
			fmt.Sprintf("unsupported distribution: %s (supported: ubuntu, debian)", info.ID), nil)
	}

	return info, nil
}

// parseOSRelease extracts the fields this tool cares about from os-release
// key=value content. Values may be quoted.
func parseOSRelease(content string) *OSInfo {
	info := &OSInfo{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		switch key {
		case "ID":
			info.ID = strings.ToLower(value)
		case "NAME":
			info.Name = value
		case "VERSION_ID":
			info.Version = value
		}
	}
	return info
}
