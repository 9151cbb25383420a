// Package deps makes sure the external tools the installer shells out
// to are actually on the host, installing them when they are not.
package deps

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/fscarmen2/LightProxy/internal/backend"
	"github.com/fscarmen2/LightProxy/internal/logger"
)

var ErrMissingDependency = errors.New("missing dependency")

// pkgManager is the install command prefix for one package manager family.
type pkgManager struct {
	name string
	args []string
}

// managerFor maps an os-release ID to its package manager. The set is a
// fixed enumeration; anything else is unsupported.
func managerFor(osID string) (pkgManager, error) {
	switch osID {
	case "debian", "ubuntu":
		return pkgManager{"apt-get", []string{"install", "-y"}}, nil
	case "alpine":
		return pkgManager{"apk", []string{"add"}}, nil
	case "fedora", "centos", "rhel", "rocky", "almalinux":
		return pkgManager{"dnf", []string{"install", "-y"}}, nil
	case "arch":
		return pkgManager{"pacman", []string{"-S", "--noconfirm"}}, nil
	case "opensuse", "opensuse-leap", "opensuse-tumbleweed":
		return pkgManager{"zypper", []string{"install", "-y"}}, nil
	default:
		return pkgManager{}, fmt.Errorf("%w: no package manager known for OS %q", ErrMissingDependency, osID)
	}
}

// archiveToolFor returns the extraction tool a backend's release archive
// needs.
func archiveToolFor(kind backend.Kind) string {
	if kind == backend.Xray {
		return "unzip"
	}
	return "tar"
}

func have(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}

// Ensure checks for a fetch tool and the backend's archive tool and
// installs whatever is absent. It returns the fetch tool to use. When
// everything is already present no subprocess is spawned.
func Ensure(osID string, kind backend.Kind) (fetchTool string, err error) {
	// An already-present fetch tool wins over installing one.
	switch {
	case have("curl"):
		fetchTool = "curl"
	case have("wget"):
		fetchTool = "wget"
	default:
		fetchTool = "curl"
		if err := installPackage(osID, "curl"); err != nil {
			return "", err
		}
	}

	archiveTool := archiveToolFor(kind)
	if !have(archiveTool) {
		if err := installPackage(osID, archiveTool); err != nil {
			return "", err
		}
	}
	return fetchTool, nil
}

func installPackage(osID, pkg string) error {
	pm, err := managerFor(osID)
	if err != nil {
		return err
	}
	logger.Info("Installing %s via %s...", pkg, pm.name)
	args := append(append([]string{}, pm.args...), pkg)
	out, err := exec.Command(pm.name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s install %s: %v: %s", ErrMissingDependency, pm.name, pkg, err, out)
	}
	return nil
}
