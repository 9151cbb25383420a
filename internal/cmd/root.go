package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fscarmen2/LightProxy/internal/app"
	"github.com/fscarmen2/LightProxy/internal/backend"
	"github.com/fscarmen2/LightProxy/internal/logger"
	"github.com/fscarmen2/LightProxy/internal/platform"
	"github.com/fscarmen2/LightProxy/internal/service"
)

var (
	flagNodeInfo  bool
	flagUninstall bool
	flagSocksPort int
	flagHTTPPort  int
	flagType      string
	flagVerbose   bool
)

// RootCmd is the install path; -u and -n divert it.
var RootCmd = &cobra.Command{
	Use:   "lightproxy",
	Short: "Install a local forward proxy (xray or sing-box) as a system service",
	Long: `LightProxy downloads the latest xray or sing-box release for this
host's architecture, writes a config with a SOCKS5 and an HTTP listener
on loopback, and registers the proxy with systemd or OpenRC.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel("debug")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case flagUninstall:
			return runUninstall()
		case flagNodeInfo:
			return runNodeInfo(cmd.Context())
		default:
			return runInstall(cmd.Context())
		}
	},
}

func Execute() {
	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		// Unrecognized flags show usage and exit clean; real
		// failures are fatal with status 1.
		if isFlagError(err) {
			RootCmd.Usage()
			os.Exit(0)
		}
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func isFlagError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag") ||
		strings.HasPrefix(msg, "bad flag syntax") ||
		strings.HasPrefix(msg, "flag needs an argument")
}

func init() {
	// Claim the help flag without a shorthand so -h stays free for
	// the HTTP port.
	RootCmd.Flags().Bool("help", false, "help for lightproxy")

	RootCmd.Flags().BoolVarP(&flagNodeInfo, "node-info", "n", false, "show node info only")
	RootCmd.Flags().BoolVarP(&flagUninstall, "uninstall", "u", false, "uninstall instead of install")
	RootCmd.Flags().IntVarP(&flagSocksPort, "socks-port", "s", 1080, "SOCKS5 listen port")
	RootCmd.Flags().IntVarP(&flagHTTPPort, "http-port", "h", 8080, "HTTP listen port")
	RootCmd.Flags().StringVarP(&flagType, "type", "t", string(backend.Xray),
		fmt.Sprintf("proxy type: %s or %s", backend.Xray, backend.SingBox))
	RootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "verbose logging")
}

func runInstall(ctx context.Context) error {
	kind, err := backend.Parse(flagType)
	if err != nil {
		return err
	}

	plat, err := platform.Detect()
	if err != nil {
		return err
	}
	svc, err := service.New(plat.Init)
	if err != nil {
		return err
	}

	a := app.New(app.DefaultPaths(), plat, svc)
	return a.Install(ctx, kind, flagSocksPort, flagHTTPPort)
}

func runUninstall() error {
	uninstallApp().Uninstall()
	return nil
}

func runNodeInfo(ctx context.Context) error {
	a := app.New(app.DefaultPaths(), platform.Info{}, nopManager{})
	return a.NodeInfo(ctx)
}

// uninstallApp never fails: if the init system cannot be determined the
// filesystem cleanup still runs with a no-op service manager.
func uninstallApp() *app.App {
	plat, err := platform.Detect()
	if err != nil {
		logger.Warn("Platform detection failed, cleaning files only: %v", err)
		return app.New(app.DefaultPaths(), platform.Info{}, nopManager{})
	}
	svc, err := service.New(plat.Init)
	if err != nil {
		logger.Warn("No service manager, cleaning files only: %v", err)
		svc = nopManager{}
	}
	return app.New(app.DefaultPaths(), plat, svc)
}

type nopManager struct{}

func (nopManager) Install(service.Unit) error { return nil }
func (nopManager) Remove()                    {}
func (nopManager) Installed() bool            { return false }
