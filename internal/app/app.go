// Package app wires the install and uninstall flows together:
// platform detection, dependency checks, release download, config
// rendering, and service registration.
package app

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fscarmen2/LightProxy/internal/backend"
	"github.com/fscarmen2/LightProxy/internal/platform"
	"github.com/fscarmen2/LightProxy/internal/render"
	"github.com/fscarmen2/LightProxy/internal/service"
)

// Paths fixes where everything lands on disk.
type Paths struct {
	InstallDir string
}

func DefaultPaths() Paths {
	return Paths{InstallDir: "/etc/lightproxy"}
}

func (p Paths) BinaryPath(kind backend.Kind) string {
	return filepath.Join(p.InstallDir, kind.BinaryName())
}

func (p Paths) ConfigPath() string {
	return filepath.Join(p.InstallDir, "config.json")
}

func (p Paths) LogPath() string {
	return filepath.Join(p.InstallDir, "lightproxy.log")
}

// App carries the per-run dependencies. Construct once, use for one
// command.
type App struct {
	Paths  Paths
	Plat   platform.Info
	Svc    service.Manager
	Client *http.Client
	Out    io.Writer
}

func New(paths Paths, plat platform.Info, svc service.Manager) *App {
	return &App{
		Paths:  paths,
		Plat:   plat,
		Svc:    svc,
		Client: http.DefaultClient,
		Out:    os.Stdout,
	}
}

// target assembles the immutable install description for one run.
func (a *App) target(kind backend.Kind, socksPort, httpPort int) render.Target {
	return render.Target{
		Kind:       kind,
		SocksPort:  socksPort,
		HTTPPort:   httpPort,
		InstallDir: a.Paths.InstallDir,
		BinaryPath: a.Paths.BinaryPath(kind),
		ConfigPath: a.Paths.ConfigPath(),
	}
}
