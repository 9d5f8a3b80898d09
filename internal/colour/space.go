// Package colour provides perceptual colour-space conversion, tone-scale
// generation, WCAG contrast computation and brand theme assembly.
package colour

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat is returned when a colour string cannot be parsed
// as a 3- or 6-digit hex value.
var ErrInvalidColorFormat = errors.New("invalid colour format")

// Converter converts between hex colours and a lightness/chroma/hue
// representation. The precise implementation uses a perceptually uniform
// colour space; the fallback approximates lightness from relative luminance.
// Implementations are stateless and safe for concurrent use.
type Converter interface {
	// ToLCH converts a hex colour to (lightness, chroma, hue).
	ToLCH(hex string) (l, c, h float64, err error)

	// FromLCH converts (lightness, chroma, hue) back to a hex colour.
	FromLCH(l, c, h float64) string

	// Precise reports whether this converter performs a true perceptual
	// conversion. Callers can use this to detect degraded precision.
	Precise() bool
}

// NewConverter returns the converter used for all theme generation.
// Selected once at process start and read-only thereafter.
func NewConverter() Converter {
	return PreciseConverter{}
}

// NormalizeHex validates a hex colour string and normalizes it to the
// lowercase "#rrggbb" form. Accepts 3- or 6-digit values with or without
// a leading hash.
func NormalizeHex(hex string) (string, error) {
	s := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(hex), "#"))

	switch len(s) {
	case 3:
		s = fmt.Sprintf("%c%c%c%c%c%c", s[0], s[0], s[1], s[1], s[2], s[2])
	case 6:
		// Already expanded.
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
		}
	}

	return "#" + s, nil
}

// hexToRGB parses a normalized or raw hex string into 8-bit channels.
func hexToRGB(hex string) (r, g, b uint8, err error) {
	normalized, err := NormalizeHex(hex)
	if err != nil {
		return 0, 0, 0, err
	}

	var ri, gi, bi int
	if _, err := fmt.Sscanf(normalized, "#%02x%02x%02x", &ri, &gi, &bi); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	return uint8(ri), uint8(gi), uint8(bi), nil
}

// PreciseConverter converts through a perceptually uniform
// lightness/chroma/hue space so equal numeric steps look perceptually
// equal. Out-of-gamut results are clamped back into sRGB.
type PreciseConverter struct{}

// ToLCH converts a hex colour to perceptual (lightness, chroma, hue).
func (PreciseConverter) ToLCH(hex string) (float64, float64, float64, error) {
	normalized, err := NormalizeHex(hex)
	if err != nil {
		return 0, 0, 0, err
	}

	col, err := colorful.Hex(normalized)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	h, c, l := col.Hcl()
	return l, c, h, nil
}

// FromLCH converts perceptual (lightness, chroma, hue) to a hex colour,
// clamping out-of-gamut values into sRGB.
func (PreciseConverter) FromLCH(l, c, h float64) string {
	return colorful.Hcl(h, c, l).Clamped().Hex()
}

// Precise reports true: this converter is the perceptual path.
func (PreciseConverter) Precise() bool { return true }

// LuminanceFallbackConverter approximates the perceptual conversion when a
// precise backend is not wanted. Lightness is taken as the byte-weighted
// sRGB luminance Y = (0.2126R + 0.7152G + 0.0722B)/255 and chroma/hue are
// fixed defaults; the reverse path produces a grayscale colour. Tone scales
// built through it lose hue entirely, which is why Precise reports false.
type LuminanceFallbackConverter struct{}

// Fallback chroma and hue used when no perceptual backend is in play.
const (
	fallbackChroma = 0.08
	fallbackHue    = 30.0
)

// ToLCH approximates lightness from sRGB luminance and returns the fixed
// default chroma and hue.
func (LuminanceFallbackConverter) ToLCH(hex string) (float64, float64, float64, error) {
	r, g, b, err := hexToRGB(hex)
	if err != nil {
		return 0, 0, 0, err
	}

	y := (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255.0
	return y, fallbackChroma, fallbackHue, nil
}

// FromLCH clamps lightness into a grayscale hex colour. Chroma and hue are
// ignored: the fallback cannot reproduce them.
func (LuminanceFallbackConverter) FromLCH(l, _, _ float64) string {
	v := int(l * 255)
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return fmt.Sprintf("#%02x%02x%02x", v, v, v)
}

// Precise reports false: conversions through this path are approximate.
func (LuminanceFallbackConverter) Precise() bool { return false }
