package service

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fscarmen2/LightProxy/internal/logger"
)

const systemdUnit = `[Unit]
Description=LightProxy local forward proxy
After=network-online.target
Wants=network-online.target

[Service]
Type=simple
User=%s
ExecStart=%s run -c %s
Restart=on-failure
RestartSec=3
KillSignal=SIGTERM
TimeoutStopSec=10

[Install]
WantedBy=multi-user.target
`

type systemdManager struct {
	unitPath string
}

func renderSystemdUnit(u Unit) string {
	return fmt.Sprintf(systemdUnit, u.RunAsUser, u.BinaryPath, u.ConfigPath)
}

func (m *systemdManager) Install(u Unit) error {
	if err := os.WriteFile(m.unitPath, []byte(renderSystemdUnit(u)), 0644); err != nil {
		return err
	}

	steps := [][]string{
		{"systemctl", "daemon-reload"},
		{"systemctl", "enable", serviceName},
		{"systemctl", "restart", serviceName},
	}
	for _, cmd := range steps {
		if out, err := exec.Command(cmd[0], cmd[1:]...).CombinedOutput(); err != nil {
			return fmt.Errorf("%v: %v: %s", cmd, err, out)
		}
	}
	return nil
}

func (m *systemdManager) Remove() {
	run("systemctl", "stop", serviceName)
	run("systemctl", "disable", serviceName)
	if _, err := os.Stat(m.unitPath); err == nil {
		if err := os.Remove(m.unitPath); err != nil {
			logger.Warn("Failed to remove unit file: %v", err)
		} else {
			logger.Info("Removed unit file: %s", m.unitPath)
		}
		run("systemctl", "daemon-reload")
	}
}

func (m *systemdManager) Installed() bool {
	_, err := os.Stat(m.unitPath)
	return err == nil
}
