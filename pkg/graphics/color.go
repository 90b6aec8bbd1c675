package graphics

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ARGB constructs a Color from alpha, red, green, blue bytes (all 0-255).
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// A returns the alpha byte.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red byte.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green byte.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue byte.
func (c Color) B() uint8 { return uint8(c) }

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(c.R()) / maxByte,
		float64(c.G()) / maxByte,
		float64(c.B()) / maxByte,
		float64(c.A()) / maxByte
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts the color to the standard library's non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ShiftBrightness multiplies the HSV value channel of c by factor, clamping
// the result to [0, 1]. Hue and saturation are kept and alpha is preserved.
// A factor of exactly 1 returns c unchanged.
func ShiftBrightness(c Color, factor float64) Color {
	if factor == 1 {
		return c
	}
	cf := colorful.Color{
		R: float64(c.R()) / maxByte,
		G: float64(c.G()) / maxByte,
		B: float64(c.B()) / maxByte,
	}
	h, s, v := cf.Hsv()
	shifted := colorful.Hsv(h, s, clamp01(v*factor)).Clamped()
	r, g, b := shifted.RGB255()
	return ARGB(c.A(), r, g, b)
}

// platformColorNames mirrors the named colors accepted by the mobile
// platforms' color parsers. Their values differ from the CSS table for a few
// entries (gray, green), so they are consulted before colornames.
var platformColorNames = map[string]Color{
	"black":     0xFF000000,
	"darkgray":  0xFF444444,
	"darkgrey":  0xFF444444,
	"gray":      0xFF888888,
	"grey":      0xFF888888,
	"lightgray": 0xFFCCCCCC,
	"lightgrey": 0xFFCCCCCC,
	"white":     0xFFFFFFFF,
	"red":       0xFFFF0000,
	"green":     0xFF00FF00,
	"blue":      0xFF0000FF,
	"yellow":    0xFFFFFF00,
	"cyan":      0xFF00FFFF,
	"magenta":   0xFFFF00FF,
	"aqua":      0xFF00FFFF,
	"fuchsia":   0xFFFF00FF,
	"lime":      0xFF00FF00,
	"maroon":    0xFF800000,
	"navy":      0xFF000080,
	"olive":     0xFF808000,
	"purple":    0xFF800080,
	"silver":    0xFFC0C0C0,
	"teal":      0xFF008080,
}

// ParseColor parses a color literal: #RGB, #RRGGBB, #AARRGGBB or a color name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}
	name := strings.ToLower(s)
	if c, ok := platformColorNames[name]; ok {
		return c, nil
	}
	if rgba, ok := colornames.Map[name]; ok {
		return ARGB(rgba.A, rgba.R, rgba.G, rgba.B), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(hex string) (Color, error) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", "#"+hex, err)
	}
	switch len(hex) {
	case 3:
		r, g, b := uint8(v>>8&0xF), uint8(v>>4&0xF), uint8(v&0xF)
		return RGB(r*0x11, g*0x11, b*0x11), nil
	case 6:
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		return Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("invalid hex color length %q", "#"+hex)
	}
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
