package cli

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ksyq12/provision/internal/config"
	"github.com/ksyq12/provision/internal/errors"
	"github.com/ksyq12/provision/internal/executor"
	"github.com/ksyq12/provision/internal/ssl"
)

// setupWeb wires mock dependencies with temp site directories and resets the
// web command flags.
func setupWeb(t *testing.T, mock *executor.MockExecutor, rootErr error) *config.Settings {
	t.Helper()

	tempDir := t.TempDir()
	settings := config.New()
	settings.NginxAvailable = filepath.Join(tempDir, "sites-available")
	settings.NginxEnabled = filepath.Join(tempDir, "sites-enabled")
	settings.TemplatePath = filepath.Join(tempDir, "missing-template.conf")

	SetDeps(&Dependencies{
		SettingsLoader: &MockSettingsLoader{Settings: settings},
		RootChecker:    &MockRootChecker{Err: rootErr},
		OSDetector:     &MockOSDetector{},
		Executor:       mock,
	})
	ssl.SetExecutor(mock)
	t.Cleanup(func() {
		ResetDeps()
		ssl.ResetExecutor()
	})

	webDomain = ""
	webEmail = ""
	return settings
}

func TestRunWebMissingOptions(t *testing.T) {
	tests := []struct {
		name       string
		domain     string
		email      string
		wantOption string
	}{
		{"missing domain", "", "a@example.com", "--domain"},
		{"missing email", "example.com", "", "--email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &executor.MockExecutor{}
			setupWeb(t, mock, nil)
			webDomain = tt.domain
			webEmail = tt.email

			err := runWeb(webCmd, nil)
			if err == nil {
				t.Fatal("expected usage error")
			}
			if !strings.Contains(err.Error(), tt.wantOption) {
				t.Errorf("error should name %s, got %q", tt.wantOption, err.Error())
			}
			if len(mock.Calls) != 0 {
				t.Errorf("no commands may run before validation passes, got %d calls", len(mock.Calls))
			}
		})
	}
}

func TestRunWebRequiresRoot(t *testing.T) {
	mock := &executor.MockExecutor{}
	rootErr := errors.Wrap(errors.ErrCodePrivilege, "root privileges required (running as uid 1000)", nil)
	setupWeb(t, mock, rootErr)
	webDomain = "example.com"
	webEmail = "a@example.com"

	err := runWeb(webCmd, nil)
	if !errors.Is(err, errors.ErrRootRequired) {
		t.Fatalf("expected privilege error, got %v", err)
	}
	if len(mock.Calls) != 0 {
		t.Errorf("no package or config operations may precede the privilege check, got %+v", mock.Calls)
	}
}

func TestRunWebSuccess(t *testing.T) {
	mock := &executor.MockExecutor{
		ExecuteFunc: func(name string, args ...string) ([]byte, error) {
			if name == "systemctl" && args[0] == "is-active" {
				return []byte("inactive\n"), stderrors.New("exit status 3")
			}
			return []byte(""), nil
		},
	}
	settings := setupWeb(t, mock, nil)
	webDomain = "example.com"
	webEmail = "a@example.com"

	if err := runWeb(webCmd, nil); err != nil {
		t.Fatalf("runWeb failed: %v", err)
	}

	// Site config is installed and contains the substituted domain
	data, err := os.ReadFile(filepath.Join(settings.NginxAvailable, "example.com"))
	if err != nil {
		t.Fatalf("site config not installed: %v", err)
	}
	if !strings.Contains(string(data), "server_name example.com;") {
		t.Error("site config missing substituted domain")
	}

	// Enabled symlink exists
	if _, err := os.Lstat(filepath.Join(settings.NginxEnabled, "example.com")); err != nil {
		t.Errorf("enabled-site symlink missing: %v", err)
	}

	// Ordering: apt-get install before nginx -t, nginx -t before
	// systemctl start, start before certbot
	index := func(name, firstArg string) int {
		for i, call := range mock.Calls {
			if call.Name == name && (firstArg == "" || (len(call.Args) > 0 && call.Args[0] == firstArg)) {
				return i
			}
		}
		return -1
	}
	testIdx := index("nginx", "-t")
	startIdx := index("systemctl", "start")
	certbotIdx := index("certbot", "")
	if testIdx == -1 || startIdx == -1 || certbotIdx == -1 {
		t.Fatalf("expected nginx -t, systemctl start and certbot calls: %+v", mock.Calls)
	}
	if !(testIdx < startIdx && startIdx < certbotIdx) {
		t.Errorf("stage ordering violated: test=%d start=%d certbot=%d", testIdx, startIdx, certbotIdx)
	}
}

func TestRunWebSyntaxFailureBlocksActivation(t *testing.T) {
	mock := &executor.MockExecutor{
		ExecuteFunc: func(name string, args ...string) ([]byte, error) {
			if name == "nginx" && args[0] == "-t" {
				return []byte("nginx: configuration file test failed"), stderrors.New("exit status 1")
			}
			return []byte(""), nil
		},
	}
	setupWeb(t, mock, nil)
	webDomain = "example.com"
	webEmail = "a@example.com"

	err := runWeb(webCmd, nil)
	if err == nil {
		t.Fatal("expected error when nginx -t fails")
	}
	if errors.CodeOf(err) != errors.ErrCodeService {
		t.Errorf("expected SERVICE code, got %s", errors.CodeOf(err))
	}

	for _, call := range mock.Calls {
		if call.Name == "systemctl" && len(call.Args) > 0 &&
			(call.Args[0] == "start" || call.Args[0] == "reload") {
			t.Errorf("service must not be started or reloaded after syntax failure: %+v", call)
		}
		if call.Name == "certbot" {
			t.Error("certificate issuance must not run after syntax failure")
		}
	}
}
