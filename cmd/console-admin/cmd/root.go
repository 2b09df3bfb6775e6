// Package cmd implements the console-admin CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

var version string

var rootCmd = &cobra.Command{
	Use:   "console-admin",
	Short: "Console API administration CLI",
	Long: `console-admin manages the console API's module catalog and
per-tenant entitlements.

It connects directly to the configured database (same environment
variables as the server: DB_HOST, DB_USER, ...).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the CLI version from build flags.
func SetVersion(v string) {
	version = v
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println(version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(sidebarCmd)
}
