// Package workflow runs an ordered sequence of provisioning stages.
//
// Stages execute strictly top to bottom; the first failure stops the run and
// is returned as-is. There is no retry, no rollback and no aggregation of
// errors: earlier stages are idempotent, so the remedy for a failed run is
// to fix the cause and run the tool again.
package workflow

import (
	"github.com/ksyq12/provision/internal/logger"
	"github.com/ksyq12/provision/internal/output"
)

// Stage is one step of a provisioning workflow.
type Stage struct {
	Name string
	Run  func() error
}

// Run executes stages in order, announcing each one, and stops at the first
// failure.
func Run(stages []Stage) error {
	for _, stage := range stages {
		output.Info("%s", stage.Name)
		logger.Debug("running stage %q", stage.Name)
		if err := stage.Run(); err != nil {
			logger.Error("stage %q failed: %v", stage.Name, err)
			return err
		}
	}
	return nil
}
