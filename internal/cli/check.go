package cli

import (
	"os"

	"github.com/ksyq12/provision/internal/output"
	"github.com/ksyq12/provision/internal/registry"
	"github.com/ksyq12/provision/internal/request"
	"github.com/ksyq12/provision/internal/ssl"
	"github.com/ksyq12/provision/internal/webserver"
	"github.com/spf13/cobra"
)

var checkDomain string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check host status and diagnose issues",
	Long: `Run diagnostic checks on the host without changing anything.

Checks:
  - nginx, certbot and docker installation
  - nginx configuration syntax and service state
  - certificate material for a domain (with --domain)
  - registry container state

Examples:
  provision check
  provision check -d example.com --json`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkDomain, "domain", "d", "", "Also check site config and certificate for this domain")

	rootCmd.AddCommand(checkCmd)
}

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `json:"status"` // "success", "warning", "error"
	Message string `json:"message"`
}

// CheckReport contains all diagnostic results
type CheckReport struct {
	Binaries  []CheckResult `json:"binaries"`
	WebServer []CheckResult `json:"web_server"`
	Domain    []CheckResult `json:"domain,omitempty"`
	Registry  []CheckResult `json:"registry"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if checkDomain != "" {
		if err := request.ValidateDomain(checkDomain); err != nil {
			return err
		}
	}

	settings, err := deps.SettingsLoader.Load()
	if err != nil {
		return err
	}

	nginx := webserver.NewWithExecutor(settings.NginxAvailable, settings.NginxEnabled, deps.Executor)
	reg := registry.NewWithExecutor(registry.Options{
		Name: settings.RegistryName,
		Port: settings.RegistryPort,
	}, deps.Executor)

	report := &CheckReport{}
	report.Binaries = checkBinaries()
	report.WebServer = checkWebServer(nginx)
	if checkDomain != "" {
		report.Domain = checkDomainState(nginx, settings.LetsencryptDir, checkDomain)
	}
	report.Registry = checkRegistry(reg)

	if jsonOutput {
		return output.JSON(report)
	}

	displayReport(report)
	return nil
}

func checkBinaries() []CheckResult {
	results := []CheckResult{}

	binaries := []struct {
		name     string
		optional bool
	}{
		{"nginx", false},
		{"certbot", false},
		{"docker", true},
	}

	for _, b := range binaries {
		if _, err := deps.Executor.LookPath(b.name); err == nil {
			results = append(results, CheckResult{"success", b.name + " installed"})
			continue
		}
		status := "error"
		msg := b.name + " not installed"
		if b.optional {
			status = "warning"
			msg += " (required for the registry workflow only)"
		}
		results = append(results, CheckResult{status, msg})
	}

	return results
}

func checkWebServer(nginx *webserver.Nginx) []CheckResult {
	results := []CheckResult{}

	if err := nginx.Test(); err == nil {
		results = append(results, CheckResult{"success", "nginx config syntax OK"})
	} else {
		results = append(results, CheckResult{"error", "nginx config syntax error"})
	}

	if nginx.IsActive() {
		results = append(results, CheckResult{"success", "nginx service active"})
	} else {
		results = append(results, CheckResult{"warning", "nginx service not active"})
	}

	return results
}

func checkDomainState(nginx *webserver.Nginx, liveDir, domain string) []CheckResult {
	results := []CheckResult{}

	if _, err := os.Stat(nginx.SitePath(domain)); err == nil {
		results = append(results, CheckResult{"success", "site config exists for " + domain})
	} else {
		results = append(results, CheckResult{"warning", "no site config for " + domain})
	}

	cert := ssl.CertPaths(liveDir, domain)
	if _, err := os.Stat(cert.CertPath); err == nil {
		results = append(results, CheckResult{"success", "certificate present for " + domain})
	} else {
		results = append(results, CheckResult{"warning", "no certificate for " + domain})
	}
	if _, err := os.Stat(cert.KeyPath); err == nil {
		results = append(results, CheckResult{"success", "private key present for " + domain})
	} else {
		results = append(results, CheckResult{"warning", "no private key for " + domain})
	}

	return results
}

func checkRegistry(reg *registry.Registry) []CheckResult {
	if reg.IsRunning() {
		return []CheckResult{{"success", "registry container running"}}
	}
	return []CheckResult{{"warning", "registry container not running"}}
}

func displayReport(report *CheckReport) {
	sections := []struct {
		title  string
		checks []CheckResult
	}{
		{"Checking binaries...", report.Binaries},
		{"Checking web server...", report.WebServer},
		{"Checking domain...", report.Domain},
		{"Checking registry...", report.Registry},
	}

	for _, section := range sections {
		if len(section.checks) == 0 {
			continue
		}
		output.Print(section.title)
		for _, check := range section.checks {
			displayCheck(check)
		}
	}
}

func displayCheck(check CheckResult) {
	switch check.Status {
	case "success":
		output.Success("%s", check.Message)
	case "warning":
		output.Warn("%s", check.Message)
	case "error":
		output.Error("%s", check.Message)
	}
}
