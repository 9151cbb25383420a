// Package render emits the backend-specific proxy configuration: two
// loopback inbounds (SOCKS5 and HTTP) and one direct outbound.
package render

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fscarmen2/LightProxy/internal/backend"
)

const loopback = "127.0.0.1"

// Target is the immutable per-run install description.
type Target struct {
	Kind       backend.Kind
	SocksPort  int
	HTTPPort   int
	InstallDir string
	BinaryPath string
	ConfigPath string
}

// Render produces the config document in the schema the selected
// backend expects. The two schemas differ structurally but describe the
// same listeners.
func Render(t Target) ([]byte, error) {
	var doc interface{}
	switch t.Kind {
	case backend.Xray:
		doc = xrayConfig(t)
	case backend.SingBox:
		doc = singBoxConfig(t)
	default:
		return nil, fmt.Errorf("invalid proxy type %q", t.Kind)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Write renders and writes the config to t.ConfigPath.
func Write(t Target) error {
	data, err := Render(t)
	if err != nil {
		return err
	}
	return os.WriteFile(t.ConfigPath, data, 0644)
}
