package cli

import (
	"github.com/ksyq12/provision/internal/config"
	"github.com/ksyq12/provision/internal/executor"
	"github.com/ksyq12/provision/internal/platform"
)

// Dependencies aggregates the CLI's external collaborators for testability.
type Dependencies struct {
	SettingsLoader SettingsLoader
	RootChecker    RootChecker
	OSDetector     OSDetector
	Executor       executor.CommandExecutor
}

// SettingsLoader loads the tool settings.
type SettingsLoader interface {
	Load() (*config.Settings, error)
}

// RootChecker checks superuser privileges.
type RootChecker interface {
	RequireRoot() error
}

// OSDetector identifies the host distribution.
type OSDetector interface {
	DetectOS() (*platform.OSInfo, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = defaultDeps()

func defaultDeps() *Dependencies {
	return &Dependencies{
		SettingsLoader: &realSettingsLoader{},
		RootChecker:    &realRootChecker{},
		OSDetector:     &realOSDetector{},
		Executor:       executor.NewSystemExecutor(),
	}
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// ResetDeps restores the real dependencies (for testing)
func ResetDeps() {
	deps = defaultDeps()
}

// Real implementations that delegate to the underlying packages

type realSettingsLoader struct{}

func (r *realSettingsLoader) Load() (*config.Settings, error) {
	return config.Load()
}

type realRootChecker struct{}

func (r *realRootChecker) RequireRoot() error {
	return platform.RequireRoot()
}

type realOSDetector struct{}

func (r *realOSDetector) DetectOS() (*platform.OSInfo, error) {
	return platform.DetectOS()
}
