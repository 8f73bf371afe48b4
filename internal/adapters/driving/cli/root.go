// Package cli implements the formery command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/formery-dev/formery/internal/adapters/driven/auth"
	"github.com/formery-dev/formery/internal/core/ports/driven"
	"github.com/formery-dev/formery/internal/core/ports/driving"
	"github.com/formery-dev/formery/internal/logger"
)

// Services injected by main before Execute.
var (
	formService driving.FormService
	configStore driven.ConfigStore
	tokenFile   *auth.TokenFile
)

var (
	version = "dev"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "formery",
	Short: "Manage Google Forms from declarative YAML specs",
	Long: `formery turns YAML form descriptions into real Google Forms.

Describe a form once in YAML - title, sections, questions - and formery
creates or updates it through the Google Forms API, numbering section
and question titles automatically so responses stay easy to correlate.

Examples:
  # Authenticate with Google
  formery auth login

  # Validate a spec without touching the API
  formery validate survey.yaml

  # Create a form (re-run with --form-id to update it)
  formery create survey.yaml
  formery create survey.yaml --form-id 1FAbc...

  # Keep a form in sync while editing the spec
  formery create survey.yaml --form-id 1FAbc... --watch

  # Export responses as CSV
  formery responses 1FAbc... --out responses.csv`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// SetServices injects the implementations the commands run against.
func SetServices(fs driving.FormService, cs driven.ConfigStore, tf *auth.TokenFile) {
	formService = fs
	configStore = cs
	tokenFile = tf
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
