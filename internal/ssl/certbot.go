package ssl

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ksyq12/provision/internal/errors"
	"github.com/ksyq12/provision/internal/executor"
)

// Cert points at the certificate material certbot wrote for a domain.
// The files are owned and renewed by certbot; this tool only reads the paths.
type Cert struct {
	Domain   string
	CertPath string
	KeyPath  string
}

// cmdExecutor is the command executor (can be replaced for testing)
var cmdExecutor executor.CommandExecutor = executor.NewSystemExecutor()

// SetExecutor allows tests to inject a mock executor
func SetExecutor(exec executor.CommandExecutor) {
	cmdExecutor = exec
}

// ResetExecutor resets the executor to the default system executor
func ResetExecutor() {
	cmdExecutor = executor.NewSystemExecutor()
}

// IsInstalled checks if certbot is installed
func IsInstalled() bool {
	_, err := cmdExecutor.LookPath("certbot")
	return err == nil
}

// CertPaths returns the well-known certificate paths for a domain under the
// given letsencrypt live directory.
func CertPaths(liveDir, domain string) *Cert {
	return &Cert{
		Domain:   domain,
		CertPath: filepath.Join(liveDir, domain, "fullchain.pem"),
		KeyPath:  filepath.Join(liveDir, domain, "privkey.pem"),
	}
}

// Issue obtains and installs a certificate for the domain using the certbot
// nginx plugin. The run is fully non-interactive: terms of service are
// accepted and HTTP is redirected to HTTPS. Any non-zero exit is fatal; no
// retry, no fallback to HTTP-only serving.
func Issue(liveDir, domain, email string) (*Cert, error) {
	if !IsInstalled() {
		return nil, errors.Wrap(errors.ErrCodeCertificate,
			"certbot is not installed (apt install certbot python3-certbot-nginx)", nil)
	}

	args := []string{
		"--nginx",
		"-d", domain,
		"--email", email,
		"--agree-tos",
		"--non-interactive",
		"--redirect",
	}

	output, err := cmdExecutor.Execute("certbot", args...)
	if err != nil {
		return nil, errors.WrapDomain(errors.ErrCodeCertificate, domain,
			fmt.Sprintf("certbot failed: %s", strings.TrimSpace(string(output))), err)
	}

	return CertPaths(liveDir, domain), nil
}
