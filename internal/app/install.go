package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fscarmen2/LightProxy/internal/backend"
	"github.com/fscarmen2/LightProxy/internal/deps"
	"github.com/fscarmen2/LightProxy/internal/logger"
	"github.com/fscarmen2/LightProxy/internal/release"
	"github.com/fscarmen2/LightProxy/internal/render"
	"github.com/fscarmen2/LightProxy/internal/service"
	"github.com/fscarmen2/LightProxy/internal/state"
)

// runAsUser is the unprivileged identity the proxy process runs under.
const runAsUser = "nobody"

// Install performs the whole install path. Every failure is fatal and
// unrecoverable; there is no rollback of earlier steps.
func (a *App) Install(ctx context.Context, kind backend.Kind, socksPort, httpPort int) error {
	t := a.target(kind, socksPort, httpPort)

	if err := os.MkdirAll(t.InstallDir, 0755); err != nil {
		return fmt.Errorf("create install dir: %w", err)
	}
	if err := logger.SetOutput(a.Paths.LogPath()); err != nil {
		logger.Warn("Log file setup failed: %v", err)
	}

	logger.Info("Installing %s (socks %d, http %d) on %s/%s...",
		kind, socksPort, httpPort, a.Plat.OSID, a.Plat.Machine)

	fetchTool, err := deps.Ensure(a.Plat.OSID, kind)
	if err != nil {
		return err
	}

	rel, err := release.Latest(ctx, a.Client, kind)
	if err != nil {
		return err
	}
	asset, err := release.SelectAsset(rel, kind, a.archTag(kind))
	if err != nil {
		return err
	}
	logger.Info("Latest release: %s (%s)", rel.Tag, asset.Name)

	if err := release.Install(ctx, kind, asset, fetchTool, t.BinaryPath); err != nil {
		return err
	}

	if err := render.Write(t); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	if err := state.Save(t.InstallDir, state.Record{
		Backend:     kind,
		Version:     rel.Tag,
		SocksPort:   socksPort,
		HTTPPort:    httpPort,
		BinaryPath:  t.BinaryPath,
		ConfigPath:  t.ConfigPath,
		InstalledAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("write install record: %w", err)
	}

	if err := a.Svc.Install(service.Unit{
		BinaryPath: t.BinaryPath,
		ConfigPath: t.ConfigPath,
		RunAsUser:  runAsUser,
	}); err != nil {
		return fmt.Errorf("register service: %w", err)
	}

	logger.Info("%s %s installed and running.", kind, rel.Tag)
	a.printNodeInfo(ctx, kind, socksPort, httpPort)
	return nil
}

// archTag picks the backend's naming scheme for the detected CPU.
func (a *App) archTag(kind backend.Kind) string {
	if kind == backend.Xray {
		return a.Plat.Arch.Xray
	}
	return a.Plat.Arch.SingBox
}
