// Package root contains the root command for the application.
package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"fbarbosa/invest-recon/internal/config"
	"fbarbosa/invest-recon/internal/container"
)

var app *container.Container

// Cmd is the root command.
var Cmd = &cobra.Command{
	Use:   "invest-recon",
	Short: "A CLI client to reconcile investment statements against bank accounts.",
	Long: `invest-recon interprets free-text statements pasted from an investment
platform, reconciles the extracted values against known accounts, and turns
the confirmed deltas into transactions. It also drives the two-phase CSV
upload workflow of the transaction API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()

		cfg, err := config.Initialize()
		if err != nil {
			return err
		}

		app, err = container.New(cfg)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// App returns the wired dependency container. It is only valid inside a
// command's Run, after PersistentPreRunE has executed.
func App() *container.Container {
	if app == nil {
		panic(fmt.Errorf("container accessed before initialization"))
	}
	return app
}
