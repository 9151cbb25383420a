package cmd

import (
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:     "info",
	Aliases: []string{"i"},
	Short:   "Show the installed node's listener addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNodeInfo(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)
}
