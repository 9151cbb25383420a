package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fscarmen2/LightProxy/internal/backend"
)

var Version = "0.0.0-dev"

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version and supported backends",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("LightProxy version: %s\n", Version)
		fmt.Println("Backends:")
		for _, k := range []backend.Kind{backend.Xray, backend.SingBox} {
			fmt.Printf("  %s (%s)\n", k, k.Repo())
		}
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
