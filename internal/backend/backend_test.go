package backend

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "xray", want: Xray},
		{in: "sing-box", want: SingBox},
		{in: "singbox", wantErr: true},
		{in: "v2ray", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchAsset(t *testing.T) {
	tests := []struct {
		kind    Kind
		name    string
		archTag string
		want    bool
	}{
		{Xray, "Xray-linux-64.zip", "64", true},
		{Xray, "Xray-linux-arm64-v8a.zip", "arm64-v8a", true},
		{Xray, "Xray-linux-64.zip.dgst", "64", false},
		{Xray, "Xray-windows-64.zip", "64", false},
		{Xray, "Xray-linux-arm64-v8a.zip", "64", false},
		{SingBox, "sing-box-1.11.4-linux-amd64.tar.gz", "amd64", true},
		{SingBox, "sing-box-1.11.4-linux-arm64.tar.gz", "arm64", true},
		{SingBox, "sing-box-1.11.4-linux-amd64.tar.gz", "arm64", false},
		{SingBox, "sing-box-1.11.4-windows-amd64.zip", "amd64", false},
		{SingBox, "something-linux-amd64.tar.gz", "amd64", false},
	}

	for _, tt := range tests {
		if got := tt.kind.MatchAsset(tt.name, tt.archTag); got != tt.want {
			t.Errorf("%s.MatchAsset(%q, %q) = %v, want %v", tt.kind, tt.name, tt.archTag, got, tt.want)
		}
	}
}

func TestKindProperties(t *testing.T) {
	if Xray.Repo() != "XTLS/Xray-core" || SingBox.Repo() != "SagerNet/sing-box" {
		t.Errorf("unexpected repos: %q, %q", Xray.Repo(), SingBox.Repo())
	}
	if Xray.BinaryName() != "xray" || SingBox.BinaryName() != "sing-box" {
		t.Errorf("unexpected binary names: %q, %q", Xray.BinaryName(), SingBox.BinaryName())
	}
	if Xray.ArchiveExt() != ".zip" || SingBox.ArchiveExt() != ".tar.gz" {
		t.Errorf("unexpected archive formats: %q, %q", Xray.ArchiveExt(), SingBox.ArchiveExt())
	}
}
