package cli

import (
	"github.com/ksyq12/provision/internal/errors"
	"github.com/ksyq12/provision/internal/output"
	"github.com/ksyq12/provision/internal/registry"
	"github.com/ksyq12/provision/internal/request"
	"github.com/ksyq12/provision/internal/ssl"
	"github.com/ksyq12/provision/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	regDomain    string
	regEmail     string
	regUser      string
	regPassword  string
	regLocalAuth bool
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Provision a web server plus an authenticated container registry",
	Long: `Provision the host as a TLS-enabled web server and launch an
htpasswd-authenticated container registry bound to the issued certificate.

Runs every web workflow stage (docker is installed alongside the web
packages if absent), then creates the registry credentials (once; an
existing htpasswd file is never touched) and replaces the running registry
container.

Examples:
  provision registry -d example.com -e admin@example.com -u reguser -p secret
  provision registry -d example.com -e admin@example.com -u reguser -p secret --local-auth`,
	RunE: runRegistry,
}

func init() {
	registryCmd.Flags().StringVarP(&regDomain, "domain", "d", "", "Domain to provision (required)")
	registryCmd.Flags().StringVarP(&regEmail, "email", "e", "", "Contact email for Let's Encrypt (required)")
	registryCmd.Flags().StringVarP(&regUser, "user", "u", "", "Registry username (required)")
	registryCmd.Flags().StringVarP(&regPassword, "password", "p", "", "Registry password (required)")
	registryCmd.Flags().BoolVar(&regLocalAuth, "local-auth", false, "Generate the htpasswd entry in-process instead of via the htpasswd container")

	rootCmd.AddCommand(registryCmd)
}

func runRegistry(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	req, err := request.NewWithRegistry(regDomain, regEmail, regUser, regPassword)
	if err != nil {
		return err
	}

	settings, err := deps.SettingsLoader.Load()
	if err != nil {
		return err
	}

	reg := registry.NewWithExecutor(registry.Options{
		Image:   settings.RegistryImage,
		Name:    settings.RegistryName,
		Port:    settings.RegistryPort,
		DataDir: settings.DataDir,
		AuthDir: settings.AuthDir,
		Realm:   settings.AuthRealm,
	}, deps.Executor)

	// The launch stage consumes the certificate issued earlier in the run.
	var cert *ssl.Cert

	stages := webStages(req, settings, true, func(c *ssl.Cert) { cert = c })
	stages = append(stages,
		workflow.Stage{
			Name: "creating registry credentials",
			Run: func() error {
				return reg.EnsureCredentials(req.RegistryUser, req.RegistryPass, regLocalAuth)
			},
		},
		workflow.Stage{
			Name: "launching registry",
			Run: func() error {
				if cert == nil {
					return errors.Wrap(errors.ErrCodeRegistry, "no certificate from issuance stage", nil)
				}
				return reg.Launch(cert)
			},
		},
	)

	if err := workflow.Run(stages); err != nil {
		return err
	}

	output.Success("registry running at https://%s:%d", req.Domain, settings.RegistryPort)
	return nil
}
