package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/roboviz/gridtransport/gridtransport"
	"github.com/roboviz/gridtransport/occgrid"
)

const testConfig = `
[server]
http_address = "localhost:9000"
cors_origins = ["http://viz.local"]

[colors]
color_occupied = "0,0,0,255"
color_free = "255,255,255,255"
color_unknown = "128,128,128,255"
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(filename, []byte(contents), 0644); err != nil {
		t.Fatalf("Unable to write test config: %v\n", err)
	}
	return filename
}

func resetConfig() {
	tc = tomlConfig{}
	tc.Server.HTTPAddress = DefaultWebAddress
	serverColors = occgrid.DefaultColorConfiguration()
}

func TestLoadConfig(t *testing.T) {
	defer resetConfig()
	if err := LoadConfig(writeConfig(t, testConfig)); err != nil {
		t.Fatalf("Unable to load config: %v\n", err)
	}
	if HTTPAddress() != "localhost:9000" {
		t.Errorf("Expected address localhost:9000, got %q\n", HTTPAddress())
	}
	if serverColors.Format != gridtransport.FormatRGBA {
		t.Errorf("Expected RGBA colors from config, got %q\n", serverColors.Format)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	defer resetConfig()
	if err := LoadConfig(""); err != nil {
		t.Fatalf("Empty config filename should be accepted: %v\n", err)
	}
	if HTTPAddress() != DefaultWebAddress {
		t.Errorf("Expected default address, got %q\n", HTTPAddress())
	}
}

func TestLoadConfigBadColors(t *testing.T) {
	defer resetConfig()
	bad := `
[colors]
color_occupied = "0,0,0,255"
color_free = "1"
`
	if err := LoadConfig(writeConfig(t, bad)); err == nil {
		t.Errorf("Expected error on mixed color formats\n")
	}
}
