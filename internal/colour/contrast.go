// Package colour provides WCAG contrast computation.
package colour

import "math"

// Level is a WCAG conformance level for text contrast.
type Level string

// WCAG contrast levels and their minimum ratios for text.
const (
	LevelAA      Level = "AA"       // normal text, >= 4.5:1
	LevelAAA     Level = "AAA"      // normal text, >= 7.0:1
	LevelAALarge Level = "AA_LARGE" // large text, >= 3.0:1
)

// MinRatio returns the minimum contrast ratio required by the level.
// Unknown levels default to AA.
func (l Level) MinRatio() float64 {
	switch l {
	case LevelAAA:
		return 7.0
	case LevelAALarge:
		return 3.0
	default:
		return 4.5
	}
}

// RelativeLuminance calculates the relative luminance of a hex colour
// according to WCAG 2.0. Returns a value between 0 (darkest) and
// 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(hex string) (float64, error) {
	r, g, b, err := hexToRGB(hex)
	if err != nil {
		return 0, err
	}

	rf := linearize(float64(r) / 255.0)
	gf := linearize(float64(g) / 255.0)
	bf := linearize(float64(b) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf, nil
}

// linearize applies gamma correction to an sRGB channel.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG 2.0 contrast ratio between two hex
// colours. Returns a value between 1 and 21, where 21 is maximum contrast
// (black vs white). Symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b string) (float64, error) {
	la, err := RelativeLuminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := RelativeLuminance(b)
	if err != nil {
		return 0, err
	}

	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

// IsContrastSafe reports whether a background/foreground pairing meets the
// given WCAG level for text.
func IsContrastSafe(bg, fg string, level Level) (bool, error) {
	ratio, err := ContrastRatio(bg, fg)
	if err != nil {
		return false, err
	}
	return ratio >= level.MinRatio(), nil
}

// aaSafe is the repair-loop helper for internally generated token pairs.
// Generated tokens are valid by construction, so a parse failure is
// treated as unsafe rather than propagated.
func aaSafe(bg, fg string) bool {
	ok, err := IsContrastSafe(bg, fg, LevelAA)
	return err == nil && ok
}
