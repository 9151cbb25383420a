package app

import (
	"fmt"
	"os"

	"github.com/fscarmen2/LightProxy/internal/backend"
	"github.com/fscarmen2/LightProxy/internal/logger"
	"github.com/fscarmen2/LightProxy/internal/state"
)

// Uninstall reverses install side effects. Every step's failure is
// tolerated so cleanup proceeds maximally; the uninstall path never
// fails fatally, and running it twice ends in the same state.
func (a *App) Uninstall() {
	kind, found := a.installedBackend()

	if a.Svc.Installed() || found {
		logger.Info("Stopping service...")
		a.Svc.Remove()
	}

	if _, err := os.Stat(a.Paths.InstallDir); err == nil {
		logger.Info("Removing install directory: %s", a.Paths.InstallDir)
		if err := os.RemoveAll(a.Paths.InstallDir); err != nil {
			logger.Warn("Failed to remove install directory: %v", err)
		}
	}

	if found {
		fmt.Fprintf(a.Out, "Removed %s.\n", kind)
	} else {
		fmt.Fprintln(a.Out, "No installation found.")
	}
}

// installedBackend identifies what is installed, preferring the state
// record over filesystem probing. When no record exists the binaries
// are probed in fixed order, xray first; only the first hit is
// reported.
func (a *App) installedBackend() (backend.Kind, bool) {
	if rec, err := state.Load(a.Paths.InstallDir); err == nil && rec != nil {
		return rec.Backend, true
	} else if err != nil {
		logger.Warn("Unreadable install record, probing binaries: %v", err)
	}

	for _, kind := range []backend.Kind{backend.Xray, backend.SingBox} {
		if _, err := os.Stat(a.Paths.BinaryPath(kind)); err == nil {
			return kind, true
		}
	}
	return "", false
}
