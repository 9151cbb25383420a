package cmd

import (
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:     "uninstall",
	Aliases: []string{"rm", "remove"},
	Short:   "Remove the proxy service, binary, and config",
	Long: `Completely remove the installed proxy from this host:
  - Stops and deregisters the service (systemd or OpenRC)
  - Deletes the install directory with binary, config, and state

Tolerates partial or missing installations; never fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUninstall()
	},
}

func init() {
	RootCmd.AddCommand(uninstallCmd)
}
