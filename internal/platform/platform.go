// Package platform resolves everything about the host that install
// decisions depend on: OS id, init system, CPU architecture.
package platform

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

var ErrUnsupportedPlatform = errors.New("unsupported platform")

type InitSystem string

const (
	Systemd InitSystem = "systemd"
	OpenRC  InitSystem = "openrc"
)

// ArchTags carries the backend-specific names one CPU architecture goes
// by in release asset filenames.
type ArchTags struct {
	Xray    string
	SingBox string
}

// Info is derived once at startup and read-only afterwards.
type Info struct {
	OSID    string
	Init    InitSystem
	Machine string
	Arch    ArchTags
}

const osReleasePath = "/etc/os-release"

// Detect inspects the host. It is deterministic and local; any value
// outside the supported enumeration is an error.
func Detect() (Info, error) {
	osID, err := osIDFrom(osReleasePath)
	if err != nil {
		return Info{}, err
	}

	init, err := detectInit()
	if err != nil {
		return Info{}, err
	}

	machine, err := unameMachine()
	if err != nil {
		return Info{}, err
	}
	tags, err := TagsFor(machine)
	if err != nil {
		return Info{}, err
	}

	return Info{OSID: osID, Init: init, Machine: machine, Arch: tags}, nil
}

// TagsFor maps a kernel machine string to both backends' asset tags.
func TagsFor(machine string) (ArchTags, error) {
	switch {
	case machine == "x86_64":
		return ArchTags{Xray: "64", SingBox: "amd64"}, nil
	case machine == "aarch64":
		return ArchTags{Xray: "arm64-v8a", SingBox: "arm64"}, nil
	case strings.HasPrefix(machine, "arm"):
		return ArchTags{Xray: "arm32-v7a", SingBox: "armv7"}, nil
	default:
		return ArchTags{}, fmt.Errorf("%w: architecture %q", ErrUnsupportedPlatform, machine)
	}
}

func osIDFrom(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: cannot read %s: %v", ErrUnsupportedPlatform, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "ID=") {
			continue
		}
		id := strings.TrimPrefix(line, "ID=")
		id = strings.Trim(id, `"'`)
		if id != "" {
			return id, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%w: no ID field in %s", ErrUnsupportedPlatform, path)
}

// detectInit probes the two supported service managers, systemd first.
func detectInit() (InitSystem, error) {
	if _, err := exec.LookPath("systemctl"); err == nil {
		return Systemd, nil
	}
	if _, err := exec.LookPath("rc-service"); err == nil {
		return OpenRC, nil
	}
	return "", fmt.Errorf("%w: neither systemctl nor rc-service found", ErrUnsupportedPlatform)
}

func unameMachine() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Machine[:]), nil
}
