package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ksyq12/provision/internal/errors"
	"github.com/ksyq12/provision/internal/executor"
	"github.com/ksyq12/provision/internal/logger"
	"github.com/ksyq12/provision/internal/ssl"
	"golang.org/x/crypto/bcrypt"
)

// htpasswdImage provides the htpasswd utility for credential generation.
const htpasswdImage = "httpd:2"

// Options configures the registry instance.
type Options struct {
	Image   string // registry container image
	Name    string // fixed container name
	Port    int    // published host port
	DataDir string // persistent registry data
	AuthDir string // htpasswd credential directory
	Realm   string // basic-auth realm
}

// Registry bootstraps a TLS-terminated, htpasswd-authenticated container
// registry through the docker CLI.
type Registry struct {
	opts Options
	exec executor.CommandExecutor
}

// New creates a Registry manager with the system executor.
func New(opts Options) *Registry {
	return NewWithExecutor(opts, executor.NewSystemExecutor())
}

// NewWithExecutor creates a Registry manager with a custom executor (for testing).
func NewWithExecutor(opts Options, exec executor.CommandExecutor) *Registry {
	return &Registry{opts: opts, exec: exec}
}

// HtpasswdPath returns the credential file location.
func (r *Registry) HtpasswdPath() string {
	return filepath.Join(r.opts.AuthDir, "htpasswd")
}

// EnsureCredentials creates the htpasswd file with a single entry for user.
// If the file already exists it is left exactly as it is: re-running never
// rotates or appends credentials. The password travels to htpasswd via stdin
// so it never appears in a process listing; with local=true the bcrypt entry
// is generated in-process instead of through the htpasswd container.
func (r *Registry) EnsureCredentials(user, password string, local bool) error {
	path := r.HtpasswdPath()
	if _, err := os.Stat(path); err == nil {
		logger.Info("credential file %s exists, leaving it unchanged", path)
		return nil
	}

	if err := os.MkdirAll(r.opts.AuthDir, 0700); err != nil {
		return errors.Wrap(errors.ErrCodeRegistry, "failed to create auth directory", err)
	}

	var entry string
	var err error
	if local {
		entry, err = localEntry(user, password)
	} else {
		entry, err = r.htpasswdEntry(user, password)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(entry), 0600); err != nil {
		return errors.Wrap(errors.ErrCodeRegistry, "failed to write credential file", err)
	}

	logger.Debug("created credential file %s for user %s", path, user)
	return nil
}

// htpasswdEntry generates a bcrypt htpasswd line via the containerized
// htpasswd utility, piping the password through stdin.
func (r *Registry) htpasswdEntry(user, password string) (string, error) {
	output, err := r.exec.ExecuteWithInput(
		strings.NewReader(password+"\n"),
		"docker", "run", "--rm", "-i", "--entrypoint", "htpasswd",
		htpasswdImage, "-niB", user,
	)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRegistry,
			fmt.Sprintf("htpasswd generation failed: %s", strings.TrimSpace(string(output))), err)
	}
	entry := strings.TrimSpace(string(output))
	if !strings.HasPrefix(entry, user+":") {
		return "", errors.Wrap(errors.ErrCodeRegistry,
			fmt.Sprintf("unexpected htpasswd output: %s", entry), nil)
	}
	return entry + "\n", nil
}

// localEntry generates the bcrypt htpasswd line in-process, for hosts where
// docker is not usable at credential-creation time.
func localEntry(user, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRegistry, "bcrypt hash failed", err)
	}
	return fmt.Sprintf("%s:%s\n", user, hash), nil
}

// Launch replaces any previous registry instance with a fresh container
// bound to the domain's certificate material. Stop and remove failures are
// swallowed: there may simply be nothing to stop.
func (r *Registry) Launch(cert *ssl.Cert) error {
	if output, err := r.exec.Execute("docker", "stop", r.opts.Name); err != nil {
		logger.Debug("docker stop %s: %s", r.opts.Name, strings.TrimSpace(string(output)))
	}
	if output, err := r.exec.Execute("docker", "rm", r.opts.Name); err != nil {
		logger.Debug("docker rm %s: %s", r.opts.Name, strings.TrimSpace(string(output)))
	}

	dataDir, err := filepath.Abs(r.opts.DataDir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRegistry, "failed to resolve data directory", err)
	}
	authDir, err := filepath.Abs(r.opts.AuthDir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRegistry, "failed to resolve auth directory", err)
	}
	certDir := filepath.Dir(cert.CertPath)

	args := []string{
		"run", "-d",
		"--restart=always",
		"--name", r.opts.Name,
		"-p", fmt.Sprintf("%d:5000", r.opts.Port),
		"-v", dataDir + ":/var/lib/registry",
		"-v", certDir + ":/certs:ro",
		"-v", authDir + ":/auth:ro",
		"-e", "REGISTRY_HTTP_ADDR=0.0.0.0:5000",
		"-e", "REGISTRY_HTTP_TLS_CERTIFICATE=/certs/" + filepath.Base(cert.CertPath),
		"-e", "REGISTRY_HTTP_TLS_KEY=/certs/" + filepath.Base(cert.KeyPath),
		"-e", "REGISTRY_AUTH=htpasswd",
		"-e", "REGISTRY_AUTH_HTPASSWD_REALM=" + r.opts.Realm,
		"-e", "REGISTRY_AUTH_HTPASSWD_PATH=/auth/htpasswd",
		"--label", "com.centurylinklabs.watchtower.enable=false",
		r.opts.Image,
	}

	output, err := r.exec.Execute("docker", args...)
	if err != nil {
		return errors.WrapDomain(errors.ErrCodeRegistry, cert.Domain,
			fmt.Sprintf("registry launch failed: %s", strings.TrimSpace(string(output))), err)
	}

	logger.InfoFields("registry container started", map[string]interface{}{
		"name": r.opts.Name,
		"port": r.opts.Port,
	})
	return nil
}

// IsRunning reports whether the named registry container is up.
func (r *Registry) IsRunning() bool {
	output, err := r.exec.Execute("docker", "ps",
		"--filter", "name=^"+r.opts.Name+"$",
		"--format", "{{.Names}}")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) == r.opts.Name
}
