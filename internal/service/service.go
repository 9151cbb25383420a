// Package service registers the installed backend with the host's init
// system and tears it down again on uninstall.
package service

import (
	"fmt"
	"os/exec"

	"github.com/fscarmen2/LightProxy/internal/logger"
	"github.com/fscarmen2/LightProxy/internal/platform"
)

const serviceName = "lightproxy"

// Unit is everything a unit definition is derived from.
type Unit struct {
	BinaryPath string
	ConfigPath string
	RunAsUser  string
}

// Manager is one init system's view of the service. The implementation
// is selected once at startup and never switched at runtime.
type Manager interface {
	// Install writes the unit definition, enables it at boot, and
	// starts it. Any failure is fatal to the install.
	Install(u Unit) error
	// Remove stops, disables, and deletes the unit. Failures are
	// logged and ignored so cleanup proceeds maximally.
	Remove()
	// Installed reports whether the unit definition exists.
	Installed() bool
}

// New selects the Manager for the detected init system.
func New(init platform.InitSystem) (Manager, error) {
	switch init {
	case platform.Systemd:
		return &systemdManager{unitPath: "/etc/systemd/system/" + serviceName + ".service"}, nil
	case platform.OpenRC:
		return &openrcManager{scriptPath: "/etc/init.d/" + serviceName}, nil
	default:
		return nil, fmt.Errorf("%w: init system %q", platform.ErrUnsupportedPlatform, init)
	}
}

// run executes one init-system control command, logging instead of
// failing; used only on the uninstall path.
func run(name string, args ...string) {
	if out, err := exec.Command(name, args...).CombinedOutput(); err != nil {
		logger.Debug("%s %v failed: %v, output: %s", name, args, err, out)
	}
}
