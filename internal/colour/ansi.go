// Package colour provides ANSI terminal previews for theme colours.
package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured swatch for a hex colour. Width specifies
// how many characters wide the block should be. Malformed colours render as
// plain text so preview output never fails a command.
func Preview(hex string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	r, g, b, err := hexToRGB(hex)
	if err != nil {
		return strings.Repeat("?", width)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithLabel formats a labelled swatch followed by the hex value,
// for aligned token listings.
func PreviewWithLabel(hex, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", Preview(hex, width), label, hex)
}

// PreviewPairing renders a pairing as its foreground text on its background
// colour, so contrast problems are visible at a glance.
func PreviewPairing(p Pairing, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	br, bg2, bb, err := hexToRGB(p.BG)
	if err != nil {
		return text
	}
	fr, fg2, fb, err := hexToRGB(p.FG)
	if err != nil {
		return text
	}

	display := text
	if len(display) > width {
		display = display[:width]
	} else if len(display) < width {
		pad := (width - len(display)) / 2
		display = strings.Repeat(" ", pad) + display + strings.Repeat(" ", width-len(display)-pad)
	}

	bgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, br, bg2, bb, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fr, fg2, fb, ansiSuffix)
	return bgSeq + fgSeq + display + ansiReset
}

// SupportsANSIColours reports whether stdout is a terminal that likely
// accepts truecolor escape sequences.
func SupportsANSIColours() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
