package deps

import (
	"errors"
	"testing"

	"github.com/fscarmen2/LightProxy/internal/backend"
)

func TestManagerFor(t *testing.T) {
	tests := []struct {
		osID    string
		want    string
		wantErr bool
	}{
		{osID: "debian", want: "apt-get"},
		{osID: "ubuntu", want: "apt-get"},
		{osID: "alpine", want: "apk"},
		{osID: "fedora", want: "dnf"},
		{osID: "centos", want: "dnf"},
		{osID: "arch", want: "pacman"},
		{osID: "opensuse-leap", want: "zypper"},
		{osID: "gentoo", wantErr: true},
		{osID: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.osID, func(t *testing.T) {
			pm, err := managerFor(tt.osID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("managerFor(%q) error = %v, wantErr %v", tt.osID, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMissingDependency) {
					t.Errorf("managerFor(%q) error = %v, want ErrMissingDependency", tt.osID, err)
				}
				return
			}
			if pm.name != tt.want {
				t.Errorf("managerFor(%q) = %q, want %q", tt.osID, pm.name, tt.want)
			}
		})
	}
}

func TestArchiveToolFor(t *testing.T) {
	if got := archiveToolFor(backend.Xray); got != "unzip" {
		t.Errorf("archiveToolFor(xray) = %q, want unzip", got)
	}
	if got := archiveToolFor(backend.SingBox); got != "tar" {
		t.Errorf("archiveToolFor(sing-box) = %q, want tar", got)
	}
}
