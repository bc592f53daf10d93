package cli

import (
	"github.com/ksyq12/provision/internal/config"
	"github.com/ksyq12/provision/internal/platform"
)

// Mock dependency implementations for testing.

// MockSettingsLoader returns fixed settings
type MockSettingsLoader struct {
	Settings *config.Settings
	Err      error
}

// Load returns the configured settings or error
func (m *MockSettingsLoader) Load() (*config.Settings, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Settings == nil {
		return config.New(), nil
	}
	return m.Settings, nil
}

// MockRootChecker simulates privilege checks
type MockRootChecker struct {
	Err error
}

// RequireRoot returns the configured error
func (m *MockRootChecker) RequireRoot() error {
	return m.Err
}

// MockOSDetector returns a fixed OS identity
type MockOSDetector struct {
	Info *platform.OSInfo
	Err  error
}

// DetectOS returns the configured OSInfo or error
func (m *MockOSDetector) DetectOS() (*platform.OSInfo, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Info == nil {
		return &platform.OSInfo{ID: "ubuntu", Name: "Ubuntu", Version: "24.04"}, nil
	}
	return m.Info, nil
}
