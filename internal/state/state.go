// Package state persists what was installed so uninstall and info do
// not have to sniff the filesystem.
package state

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/fscarmen2/LightProxy/internal/backend"
)

const fileName = "state.toml"

// Record is written once at install time and read back afterwards.
type Record struct {
	Backend     backend.Kind `toml:"backend"`
	Version     string       `toml:"version"`
	SocksPort   int          `toml:"socks_port"`
	HTTPPort    int          `toml:"http_port"`
	BinaryPath  string       `toml:"binary_path"`
	ConfigPath  string       `toml:"config_path"`
	InstalledAt time.Time    `toml:"installed_at"`
}

func Path(installDir string) string {
	return filepath.Join(installDir, fileName)
}

// Save writes the record into the install directory.
func Save(installDir string, r Record) error {
	data, err := toml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(Path(installDir), data, 0600)
}

// Load reads the record back. A missing file returns (nil, nil) so
// callers can fall back to probing installs that predate the record.
func Load(installDir string) (*Record, error) {
	data, err := os.ReadFile(Path(installDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var r Record
	if err := toml.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
