package cmd

import (
	"errors"
	"testing"
)

func TestIsFlagError(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"unknown flag: --frobnicate", true},
		{"unknown shorthand flag: 'x' in -x", true},
		{"bad flag syntax: ---s", true},
		{"flag needs an argument: 's' in -s", true},
		{`invalid proxy type "v2ray"`, false},
		{"register service: exit status 1", false},
	}

	for _, tt := range tests {
		if got := isFlagError(errors.New(tt.msg)); got != tt.want {
			t.Errorf("isFlagError(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}

func TestRootFlagDefaults(t *testing.T) {
	for _, tt := range []struct {
		name string
		want string
	}{
		{"socks-port", "1080"},
		{"http-port", "8080"},
		{"type", "xray"},
	} {
		f := RootCmd.Flags().Lookup(tt.name)
		if f == nil {
			t.Fatalf("flag %q not registered", tt.name)
		}
		if f.DefValue != tt.want {
			t.Errorf("flag %q default = %q, want %q", tt.name, f.DefValue, tt.want)
		}
	}

	// -h must carry the HTTP port, not help.
	if f := RootCmd.Flags().ShorthandLookup("h"); f == nil || f.Name != "http-port" {
		t.Errorf("shorthand -h bound to %v, want http-port", f)
	}
}
