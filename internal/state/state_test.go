package state

import (
	"testing"
	"time"

	"github.com/fscarmen2/LightProxy/internal/backend"
)

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	want := Record{
		Backend:     backend.SingBox,
		Version:     "v1.11.4",
		SocksPort:   1080,
		HTTPPort:    8080,
		BinaryPath:  "/etc/lightproxy/sing-box",
		ConfigPath:  "/etc/lightproxy/config.json",
		InstalledAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	if err := Save(dir, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got == nil {
		t.Fatal("Load() = nil after Save")
	}
	if *got != want {
		t.Errorf("Load() = %+v, want %+v", *got, want)
	}
}

func TestLoadMissing(t *testing.T) {
	rec, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if rec != nil {
		t.Errorf("Load(missing) = %+v, want nil", rec)
	}
}
