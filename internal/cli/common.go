package cli

import (
	"github.com/ksyq12/provision/internal/config"
	"github.com/ksyq12/provision/internal/logger"
	"github.com/ksyq12/provision/internal/pkgmgr"
	"github.com/ksyq12/provision/internal/request"
	"github.com/ksyq12/provision/internal/ssl"
	"github.com/ksyq12/provision/internal/template"
	"github.com/ksyq12/provision/internal/webserver"
	"github.com/ksyq12/provision/internal/workflow"
)

// preflight verifies privilege and platform before any stage mutates state.
func preflight() error {
	if err := deps.RootChecker.RequireRoot(); err != nil {
		return err
	}
	osInfo, err := deps.OSDetector.DetectOS()
	if err != nil {
		return err
	}
	logger.InfoFields("host supported", map[string]interface{}{
		"distro":  osInfo.ID,
		"version": osInfo.Version,
	})
	return nil
}

// webStages builds the shared stage sequence of both workflows: preflight,
// packages, site config, service activation and certificate issuance.
// The registry workflow sets withDocker so the container runtime is
// bootstrapped inside the package stage, before any config or service
// mutation. The issued certificate is reported through onCert for
// downstream stages.
func webStages(req *request.ProvisionRequest, settings *config.Settings, withDocker bool, onCert func(*ssl.Cert)) []workflow.Stage {
	nginx := webserver.NewWithExecutor(settings.NginxAvailable, settings.NginxEnabled, deps.Executor)
	apt := pkgmgr.NewWithExecutor(deps.Executor)

	return []workflow.Stage{
		{
			Name: "checking host",
			Run:  preflight,
		},
		{
			Name: "installing packages",
			Run: func() error {
				if err := apt.EnsurePackages(pkgmgr.WebPackages); err != nil {
					return err
				}
				if withDocker {
					return apt.EnsureDocker()
				}
				return nil
			},
		},
		{
			Name: "rendering site configuration",
			Run: func() error {
				content, err := template.RenderSite(settings.TemplatePath, req.Domain)
				if err != nil {
					return err
				}
				if err := nginx.Install(req.Domain, content); err != nil {
					return err
				}
				return nginx.Enable(req.Domain)
			},
		},
		{
			Name: "activating web server",
			Run: func() error {
				// Syntax check gates activation: never reload onto broken config
				if err := nginx.Test(); err != nil {
					return err
				}
				return nginx.EnsureActive()
			},
		},
		{
			Name: "issuing certificate",
			Run: func() error {
				cert, err := ssl.Issue(settings.LetsencryptDir, req.Domain, req.Email)
				if err != nil {
					return err
				}
				if onCert != nil {
					onCert(cert)
				}
				return nil
			},
		},
	}
}
