// Package pkgmgr ensures the system packages this tool depends on are
// installed, using apt on Debian and Ubuntu hosts. Installs are idempotent:
// re-running against a host that already has everything is a no-op beyond
// the index refresh.
package pkgmgr

import (
	"fmt"
	"strings"

	"github.com/ksyq12/provision/internal/errors"
	"github.com/ksyq12/provision/internal/executor"
	"github.com/ksyq12/provision/internal/logger"
)

// WebPackages are required by the web provisioning workflow.
var WebPackages = []string{"nginx", "certbot", "python3-certbot-nginx"}

// dockerInstallScript is Docker's convenience installer, used only when the
// docker binary is absent.
const dockerInstallScript = "curl -fsSL https://get.docker.com | sh"

// Apt drives the apt package manager through a command executor.
type Apt struct {
	exec executor.CommandExecutor
}

// New creates an Apt manager with the system executor.
func New() *Apt {
	return NewWithExecutor(executor.NewSystemExecutor())
}

// NewWithExecutor creates an Apt manager with a custom executor (for testing).
func NewWithExecutor(exec executor.CommandExecutor) *Apt {
	return &Apt{exec: exec}
}

// aptGet runs apt-get with the noninteractive frontend. Diagnostic output is
// captured for the error message, never printed on success.
func (a *Apt) aptGet(args ...string) error {
	full := append([]string{"DEBIAN_FRONTEND=noninteractive", "apt-get", "-qq"}, args...)
	output, err := a.exec.Execute("env", full...)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInstall,
			fmt.Sprintf("apt-get %s failed: %s", args[0], strings.TrimSpace(string(output))), err)
	}
	return nil
}

// EnsurePackages refreshes the package index, upgrades installed packages and
// installs the given set. Already-installed packages are left alone by apt.
func (a *Apt) EnsurePackages(packages []string) error {
	logger.Info("refreshing package index")
	if err := a.aptGet("update"); err != nil {
		return err
	}

	logger.Info("upgrading installed packages")
	if err := a.aptGet("upgrade", "-y"); err != nil {
		return err
	}

	logger.Info("installing packages: %s", strings.Join(packages, " "))
	installArgs := append([]string{"install", "-y"}, packages...)
	return a.aptGet(installArgs...)
}

// HasDocker reports whether the docker binary is resolvable.
func (a *Apt) HasDocker() bool {
	_, err := a.exec.LookPath("docker")
	return err == nil
}

// EnsureDocker installs the container runtime via the upstream convenience
// script when it is absent, then verifies the binary actually resolves.
// A successful install command with no docker binary afterwards is fatal.
func (a *Apt) EnsureDocker() error {
	if a.HasDocker() {
		logger.Debug("docker already present, skipping install")
		return nil
	}

	logger.Info("docker not found, installing container runtime")
	output, err := a.exec.Execute("sh", "-c", dockerInstallScript)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInstall,
			fmt.Sprintf("docker install failed: %s", strings.TrimSpace(string(output))), err)
	}

	if !a.HasDocker() {
		return errors.ErrDockerMissing
	}
	return nil
}
