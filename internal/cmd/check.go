package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fscarmen2/LightProxy/internal/app"
	"github.com/fscarmen2/LightProxy/internal/platform"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the installed SOCKS5 listener relays connections",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.New(app.DefaultPaths(), platform.Info{}, nopManager{})
		return a.Check(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
