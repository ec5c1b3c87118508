/*
Package occgrid converts occupancy-grid maps to rasters and back, rescales
them to new resolutions, and packages the result for wire transport.
*/
package occgrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/roboviz/gridtransport/gridtransport"
)

// Default grayscale intensities for the three occupancy classes.
const (
	DefaultColorOccupied = 0
	DefaultColorFree     = 1
	DefaultColorUnknown  = 128
)

// ErrColorFormat is returned when the colors of a configuration do not all
// share the same pixel format.
var ErrColorFormat = errors.New("all colors need to have the same format")

// PixelColor is the encoding of one occupancy class in a given pixel format.
// The native value is an integer packing of the color channels; Bytes holds
// its little-endian byte encoding as laid out in a raster.
type PixelColor struct {
	Format gridtransport.PixelFormat
	Value  uint32
	Bytes  []byte
}

// GrayColor returns a pixel color of the given 8-bit intensity.
func GrayColor(value uint8) PixelColor {
	return PixelColor{
		Format: gridtransport.FormatGray,
		Value:  uint32(value),
		Bytes:  []byte{value},
	}
}

// RGBAColor returns a 4-byte pixel color.  Alpha occupies the most
// significant byte of the native value, then red, green, and blue in
// descending byte order.
func RGBAColor(red, green, blue, alpha uint8) PixelColor {
	value := uint32(alpha)<<24 | uint32(red)<<16 | uint32(green)<<8 | uint32(blue)
	b := make([]byte, 4)
	for i := 0; i < 4; i++ {
		b[i] = uint8(value >> (i * 8) & 0xff)
	}
	return PixelColor{
		Format: gridtransport.FormatRGBA,
		Value:  value,
		Bytes:  b,
	}
}

// ColorConfiguration is the color specification to use when converting
// between an occupancy grid and a raster.  All three colors share one pixel
// format.
type ColorConfiguration struct {
	Occupied PixelColor
	Free     PixelColor
	Unknown  PixelColor
	Format   gridtransport.PixelFormat
}

// Colors holds optional per-class overrides for NewColorConfiguration.  A nil
// field selects the default grayscale encoding for that class.
type Colors struct {
	Occupied *PixelColor
	Free     *PixelColor
	Unknown  *PixelColor
}

// NewColorConfiguration resolves optional color overrides into a complete
// configuration.  Unset classes fall back to grayscale defaults: occupied 0
// (black), free 1, unknown 128.  Mixing pixel formats across the three
// classes fails with ErrColorFormat.
func NewColorConfiguration(colors Colors) (*ColorConfiguration, error) {
	occupied := GrayColor(DefaultColorOccupied)
	if colors.Occupied != nil {
		occupied = *colors.Occupied
	}
	free := GrayColor(DefaultColorFree)
	if colors.Free != nil {
		free = *colors.Free
	}
	unknown := GrayColor(DefaultColorUnknown)
	if colors.Unknown != nil {
		unknown = *colors.Unknown
	}
	if occupied.Format != free.Format || free.Format != unknown.Format {
		return nil, fmt.Errorf("colors %q, %q, %q: %w",
			occupied.Format, free.Format, unknown.Format, ErrColorFormat)
	}
	return &ColorConfiguration{
		Occupied: occupied,
		Free:     free,
		Unknown:  unknown,
		Format:   occupied.Format,
	}, nil
}

// DefaultColorConfiguration returns the grayscale defaults for all three
// occupancy classes.
func DefaultColorConfiguration() *ColorConfiguration {
	config, _ := NewColorConfiguration(Colors{})
	return config
}

// ColorConfigFromConfig builds a color configuration from keyword settings.
// Each of "color_occupied", "color_free", and "color_unknown" is either a
// grayscale intensity like "128" or an RGBA quadruple like "255,0,0,255".
func ColorConfigFromConfig(c gridtransport.Config) (*ColorConfiguration, error) {
	var colors Colors
	for _, setting := range []struct {
		key   string
		color **PixelColor
	}{
		{"color_occupied", &colors.Occupied},
		{"color_free", &colors.Free},
		{"color_unknown", &colors.Unknown},
	} {
		s, found, err := c.GetString(setting.key)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		color, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("bad %q setting: %v", setting.key, err)
		}
		*setting.color = &color
	}
	return NewColorConfiguration(colors)
}

// ParseColor parses a color specification string: one 0-255 value for
// grayscale or four comma-separated 0-255 values for RGBA.
func ParseColor(s string) (PixelColor, error) {
	parts := strings.Split(s, ",")
	channels := make([]uint8, len(parts))
	for i, part := range parts {
		value, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return PixelColor{}, fmt.Errorf("bad color channel %q in %q", part, s)
		}
		channels[i] = uint8(value)
	}
	switch len(channels) {
	case 1:
		return GrayColor(channels[0]), nil
	case 4:
		return RGBAColor(channels[0], channels[1], channels[2], channels[3]), nil
	default:
		return PixelColor{}, fmt.Errorf("color %q must have 1 (gray) or 4 (RGBA) channels", s)
	}
}
