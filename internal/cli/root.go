package cli

import (
	"os"

	"github.com/ksyq12/provision/internal/logger"
	"github.com/ksyq12/provision/internal/output"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "provision",
	Short: "Host provisioning CLI",
	Long: `provision sets up a Debian or Ubuntu host as a TLS-enabled web server,
optionally with an authenticated container registry behind it.

The tool runs a fixed sequence of idempotent stages: preflight checks,
package installation, nginx site configuration, service activation,
certificate issuance via certbot, and (for the registry workflow) registry
credential creation and container launch. The first failing stage stops the
run; fixing the cause and re-running is always safe.

Running two instances concurrently against the same host is not supported.`,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		output.Fatal("%v", err)
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
