package render

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fscarmen2/LightProxy/internal/backend"
)

func testTarget(kind backend.Kind, socks, httpPort int) Target {
	return Target{
		Kind:       kind,
		SocksPort:  socks,
		HTTPPort:   httpPort,
		InstallDir: "/etc/lightproxy",
		BinaryPath: "/etc/lightproxy/" + kind.BinaryName(),
		ConfigPath: "/etc/lightproxy/config.json",
	}
}

func TestRenderXray(t *testing.T) {
	data, err := Render(testTarget(backend.Xray, 1080, 8080))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var doc struct {
		Inbounds []struct {
			Listen   string `json:"listen"`
			Port     int    `json:"port"`
			Protocol string `json:"protocol"`
			Settings struct {
				Auth string `json:"auth"`
			} `json:"settings"`
		} `json:"inbounds"`
		Outbounds []struct {
			Protocol string `json:"protocol"`
		} `json:"outbounds"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(doc.Inbounds) != 2 {
		t.Fatalf("got %d inbounds, want 2", len(doc.Inbounds))
	}
	byProto := map[string]int{}
	for _, in := range doc.Inbounds {
		if in.Listen != "127.0.0.1" {
			t.Errorf("inbound %s listens on %q, want 127.0.0.1", in.Protocol, in.Listen)
		}
		byProto[in.Protocol] = in.Port
	}
	if byProto["socks"] != 1080 || byProto["http"] != 8080 {
		t.Errorf("inbound ports = %v, want socks:1080 http:8080", byProto)
	}
	if doc.Inbounds[0].Settings.Auth != "noauth" {
		t.Errorf("socks auth = %q, want noauth", doc.Inbounds[0].Settings.Auth)
	}
	if len(doc.Outbounds) != 1 || doc.Outbounds[0].Protocol != "freedom" {
		t.Errorf("outbounds = %+v, want one freedom outbound", doc.Outbounds)
	}
}

func TestRenderSingBox(t *testing.T) {
	data, err := Render(testTarget(backend.SingBox, 2080, 9080))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var doc struct {
		Inbounds []struct {
			Type       string `json:"type"`
			Listen     string `json:"listen"`
			ListenPort int    `json:"listen_port"`
		} `json:"inbounds"`
		Outbounds []struct {
			Type string `json:"type"`
		} `json:"outbounds"`
		Route struct {
			Final string `json:"final"`
		} `json:"route"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(doc.Inbounds) != 2 {
		t.Fatalf("got %d inbounds, want 2", len(doc.Inbounds))
	}
	byType := map[string]int{}
	for _, in := range doc.Inbounds {
		if in.Listen != "127.0.0.1" {
			t.Errorf("inbound %s listens on %q, want 127.0.0.1", in.Type, in.Listen)
		}
		byType[in.Type] = in.ListenPort
	}
	if byType["socks"] != 2080 || byType["http"] != 9080 {
		t.Errorf("inbound ports = %v, want socks:2080 http:9080", byType)
	}
	if len(doc.Outbounds) != 1 || doc.Outbounds[0].Type != "direct" {
		t.Errorf("outbounds = %+v, want one direct outbound", doc.Outbounds)
	}
	if doc.Route.Final != "direct" {
		t.Errorf("route.final = %q, want direct", doc.Route.Final)
	}
}

func TestRenderInvalidKind(t *testing.T) {
	if _, err := Render(Target{Kind: "v2ray"}); err == nil {
		t.Fatal("Render() expected error for unknown backend")
	}
}

func TestWrite(t *testing.T) {
	target := testTarget(backend.Xray, 1080, 8080)
	target.ConfigPath = filepath.Join(t.TempDir(), "config.json")

	if err := Write(target); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	data, err := os.ReadFile(target.ConfigPath)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !json.Valid(data) {
		t.Error("written config is not valid JSON")
	}
}
