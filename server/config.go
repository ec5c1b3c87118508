package server

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/roboviz/gridtransport/gridtransport"
	"github.com/roboviz/gridtransport/occgrid"
)

// DefaultWebAddress is the default address of the HTTP server.
const DefaultWebAddress = "localhost:8000"

var (
	// the parsed TOML configuration data
	tc tomlConfig

	// color configuration resolved from the TOML settings
	serverColors *occgrid.ColorConfiguration
)

type tomlConfig struct {
	Server  localConfig
	Logging gridtransport.LogConfig
	Colors  colorsConfig
}

type localConfig struct {
	HTTPAddress string   `toml:"http_address"`
	CORSOrigins []string `toml:"cors_origins"`
}

// colorsConfig selects the pixel encoding per occupancy class.  Each value is
// either a grayscale intensity like "128" or an RGBA quadruple like
// "255,0,0,255"; all three must resolve to the same pixel format.
type colorsConfig struct {
	Occupied string `toml:"color_occupied"`
	Free     string `toml:"color_free"`
	Unknown  string `toml:"color_unknown"`
}

func init() {
	tc.Server.HTTPAddress = DefaultWebAddress
	serverColors = occgrid.DefaultColorConfiguration()
}

// LoadConfig reads a TOML configuration file, sets up logging, and resolves
// the server's color configuration.
func LoadConfig(filename string) error {
	if filename == "" {
		return nil
	}
	if _, err := toml.DecodeFile(filename, &tc); err != nil {
		return fmt.Errorf("could not decode TOML config %q: %v", filename, err)
	}
	if tc.Server.HTTPAddress == "" {
		tc.Server.HTTPAddress = DefaultWebAddress
	}
	tc.Logging.SetLogger()

	c := gridtransport.NewConfig()
	if tc.Colors.Occupied != "" {
		c.Set("color_occupied", tc.Colors.Occupied)
	}
	if tc.Colors.Free != "" {
		c.Set("color_free", tc.Colors.Free)
	}
	if tc.Colors.Unknown != "" {
		c.Set("color_unknown", tc.Colors.Unknown)
	}
	colors, err := occgrid.ColorConfigFromConfig(c)
	if err != nil {
		return err
	}
	serverColors = colors
	return nil
}

// HTTPAddress returns the address the web server listens on.
func HTTPAddress() string {
	return tc.Server.HTTPAddress
}
