package service

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fscarmen2/LightProxy/internal/logger"
)

const openrcScript = `#!/sbin/openrc-run

name="LightProxy local forward proxy"
command="%s"
command_args="run -c %s"
command_user="%s"
supervisor="supervise-daemon"
respawn_delay=3

depend() {
	need net
	after firewall
}
`

type openrcManager struct {
	scriptPath string
}

func renderOpenRCScript(u Unit) string {
	return fmt.Sprintf(openrcScript, u.BinaryPath, u.ConfigPath, u.RunAsUser)
}

func (m *openrcManager) Install(u Unit) error {
	if err := os.WriteFile(m.scriptPath, []byte(renderOpenRCScript(u)), 0755); err != nil {
		return err
	}

	steps := [][]string{
		{"rc-update", "add", serviceName, "default"},
		{"rc-service", serviceName, "restart"},
	}
	for _, cmd := range steps {
		if out, err := exec.Command(cmd[0], cmd[1:]...).CombinedOutput(); err != nil {
			return fmt.Errorf("%v: %v: %s", cmd, err, out)
		}
	}
	return nil
}

func (m *openrcManager) Remove() {
	run("rc-service", serviceName, "stop")
	run("rc-update", "del", serviceName, "default")
	if _, err := os.Stat(m.scriptPath); err == nil {
		if err := os.Remove(m.scriptPath); err != nil {
			logger.Warn("Failed to remove init script: %v", err)
		} else {
			logger.Info("Removed init script: %s", m.scriptPath)
		}
	}
}

func (m *openrcManager) Installed() bool {
	_, err := os.Stat(m.scriptPath)
	return err == nil
}
