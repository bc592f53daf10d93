package webserver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ksyq12/provision/internal/errors"
	"github.com/ksyq12/provision/internal/executor"
	"github.com/ksyq12/provision/internal/logger"
)

// Nginx manages the nginx site configuration and service state.
type Nginx struct {
	available string
	enabled   string
	exec      executor.CommandExecutor
}

// New creates an Nginx manager with the given site directories.
func New(available, enabled string) *Nginx {
	return NewWithExecutor(available, enabled, executor.NewSystemExecutor())
}

// NewWithExecutor creates an Nginx manager with a custom executor (for testing).
func NewWithExecutor(available, enabled string, exec executor.CommandExecutor) *Nginx {
	return &Nginx{
		available: available,
		enabled:   enabled,
		exec:      exec,
	}
}

// SitePath returns the sites-available path for a domain.
func (n *Nginx) SitePath(domain string) string {
	return filepath.Join(n.available, domain)
}

// Install writes the rendered site configuration for domain atomically:
// the content goes to a private temp file in the target directory first and
// is renamed into place, so nginx never observes a partial file. The temp
// file is removed on every failure path.
func (n *Nginx) Install(domain, content string) error {
	if err := os.MkdirAll(n.available, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, "failed to create sites-available directory", err)
	}
	if err := os.MkdirAll(n.enabled, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, "failed to create sites-enabled directory", err)
	}

	tmp, err := os.CreateTemp(n.available, "."+domain+".tmp-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeWrite, "failed to create scratch file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return errors.WrapDomain(errors.ErrCodeWrite, domain, "failed to write site config", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return errors.WrapDomain(errors.ErrCodeWrite, domain, "failed to set config permissions", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapDomain(errors.ErrCodeWrite, domain, "failed to close scratch file", err)
	}

	target := n.SitePath(domain)
	if err := os.Rename(tmpPath, target); err != nil {
		return errors.WrapDomain(errors.ErrCodeWrite, domain, "failed to install site config", err)
	}

	logger.Debug("installed site config at %s", target)
	return nil
}

// Enable activates a site by symlinking it into sites-enabled. An existing
// link of the same name is replaced, so re-running is safe.
func (n *Nginx) Enable(domain string) error {
	source := n.SitePath(domain)
	target := filepath.Join(n.enabled, domain)

	if _, err := os.Stat(source); os.IsNotExist(err) {
		return errors.WrapDomain(errors.ErrCodeWrite, domain, "site config not found in sites-available", nil)
	}

	if info, err := os.Lstat(target); err == nil {
		if info.Mode()&os.ModeSymlink == 0 {
			return errors.WrapDomain(errors.ErrCodeWrite, domain, "enabled site is not a symlink, refusing to replace", nil)
		}
		if err := os.Remove(target); err != nil {
			return errors.WrapDomain(errors.ErrCodeWrite, domain, "failed to replace enabled-site link", err)
		}
	}

	if err := os.Symlink(source, target); err != nil {
		return errors.WrapDomain(errors.ErrCodeWrite, domain, "failed to enable site", err)
	}

	return nil
}

// Test validates the nginx configuration syntax. It must pass before any
// start or reload; activating a broken configuration is never attempted.
func (n *Nginx) Test() error {
	output, err := n.exec.Execute("nginx", "-t")
	if err != nil {
		return errors.Wrap(errors.ErrCodeService,
			fmt.Sprintf("nginx config test failed: %s", strings.TrimSpace(string(output))), err)
	}
	return nil
}

// IsActive reports whether the nginx service is currently running.
func (n *Nginx) IsActive() bool {
	output, err := n.exec.Execute("systemctl", "is-active", "nginx")
	return err == nil && strings.TrimSpace(string(output)) == "active"
}

// EnsureActive brings nginx up with the current configuration: a stopped
// service is enabled and started, a running one gets a graceful reload.
// Callers must run Test first.
func (n *Nginx) EnsureActive() error {
	if !n.IsActive() {
		logger.Info("nginx is not active, starting it")
		if output, err := n.exec.Execute("systemctl", "enable", "nginx"); err != nil {
			logger.Warn("systemctl enable nginx failed: %s", strings.TrimSpace(string(output)))
		}
		if output, err := n.exec.Execute("systemctl", "start", "nginx"); err != nil {
			return errors.Wrap(errors.ErrCodeService,
				fmt.Sprintf("failed to start nginx: %s", strings.TrimSpace(string(output))), err)
		}
		return nil
	}

	if output, err := n.exec.Execute("systemctl", "reload", "nginx"); err != nil {
		return errors.Wrap(errors.ErrCodeService,
			fmt.Sprintf("failed to reload nginx: %s", strings.TrimSpace(string(output))), err)
	}
	return nil
}
