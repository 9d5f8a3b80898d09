// Package colour provides brand theme token assembly and pairing repair.
package colour

// Fixed tokens shared by every proposed theme.
const (
	textToken    = "#0B0B0B" // near black body text
	successToken = "#10b981"
	warningToken = "#f59e0b"
	errorToken   = "#ef4444"

	white = "#ffffff"
	black = "#000000"
)

// BaseColors are the four resolved brand colours a theme is built from.
// All fields are populated; default substitution for missing input fields
// happens in the brand package before a theme is proposed.
type BaseColors struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Accent    string `json:"accent" yaml:"accent"`
	Muted     string `json:"muted" yaml:"muted"`
}

// Pairing is a background/foreground pair intended to satisfy WCAG AA for
// normal text. Repair is greedy and single-pass, so a pairing may still sit
// below threshold; ValidateTheme surfaces that instead of hiding it.
type Pairing struct {
	BG string `json:"bg" yaml:"bg"`
	FG string `json:"fg" yaml:"fg"`
}

// Pairs holds the named colour pairings of a theme. Link, border and focus
// colours are fixed assignments with no repair pass.
type Pairs struct {
	CTA         Pairing `json:"cta" yaml:"cta"`
	Chip        Pairing `json:"chip" yaml:"chip"`
	Card        Pairing `json:"card" yaml:"card"`
	Link        string  `json:"link" yaml:"link"`
	LinkHover   string  `json:"link_hover" yaml:"link_hover"`
	Border      string  `json:"border" yaml:"border"`
	BorderFocus string  `json:"border_focus" yaml:"border_focus"`
}

// Theme is a complete proposed colour theme: named tokens, repaired
// pairings and the base colours it was derived from. Themes are built
// fresh per request and never mutated afterwards.
type Theme struct {
	Tokens     map[string]string `json:"tokens" yaml:"tokens"`
	Pairs      Pairs             `json:"pairs" yaml:"pairs"`
	BaseColors BaseColors        `json:"base_colors" yaml:"base_colors"`

	// VariantName is empty for the base theme, or "vibrant"/"muted" for
	// generated variants.
	VariantName string `json:"variant_name,omitempty" yaml:"variant_name,omitempty"`

	// Precise reports whether the theme was built through the perceptual
	// converter. False means tone scales were approximated from luminance.
	Precise bool `json:"precise" yaml:"precise"`
}

// scaleStops maps the named ramp stops onto tone-scale indices. The 500
// stop is intentionally absent: it pins the original, unscaled input colour.
var scaleStops = []struct {
	suffix string
	index  int
}{
	{"50", 0}, {"100", 1}, {"200", 2}, {"300", 3}, {"400", 4},
	{"600", 5}, {"700", 6}, {"800", 7}, {"900", 8},
}

// ProposeTheme assembles a full token set and colour pairings from resolved
// brand colours. Four tone scales are derived (brand from primary, accent
// from secondary, neutral from the accent field, surface from pure white)
// and unsafe pairings are repaired with a greedy single pass: each pair is
// fixed in isolation, in a documented order, with no backtracking across
// pairs. The repair can fail; that is reported by ValidateTheme, not here.
func ProposeTheme(conv Converter, base BaseColors) (*Theme, error) {
	brandScale, err := ToneScale(conv, base.Primary)
	if err != nil {
		return nil, err
	}
	accentScale, err := ToneScale(conv, base.Secondary)
	if err != nil {
		return nil, err
	}
	neutralScale, err := ToneScale(conv, base.Accent)
	if err != nil {
		return nil, err
	}
	surfaceScale, err := ToneScale(conv, white)
	if err != nil {
		return nil, err
	}

	tokens := map[string]string{
		"bg":               surfaceScale[0],
		"surface":          surfaceScale[2],
		"surface-contrast": brandScale[8],

		"text":       textToken,
		"text-muted": neutralScale[4],

		"success": successToken,
		"warning": warningToken,
		"error":   errorToken,
		"info":    base.Secondary,

		"muted":            base.Muted,
		"muted-foreground": neutralScale[6],
	}

	fillScale(tokens, "brand", brandScale, base.Primary)
	fillScale(tokens, "accent", accentScale, base.Secondary)
	fillScale(tokens, "neutral", neutralScale, base.Accent)

	return &Theme{
		Tokens:     tokens,
		Pairs:      repairPairs(tokens),
		BaseColors: base,
		Precise:    conv.Precise(),
	}, nil
}

// fillScale writes the 50..900 stops of a ramp into the token map, pinning
// the 500 stop to the original input colour.
func fillScale(tokens map[string]string, name string, scale []string, base string) {
	for _, stop := range scaleStops {
		tokens[name+"-"+stop.suffix] = scale[stop.index]
	}
	tokens[name+"-500"] = base
}

// repairPairs builds the named pairings and applies the greedy repair
// sequence. This is not a constraint solver: each pairing gets at most two
// fallback attempts and earlier decisions are never revisited.
func repairPairs(tokens map[string]string) Pairs {
	// CTA: brand on white, darken the background first, invert the text
	// last.
	cta := Pairing{BG: tokens["brand-500"], FG: white}
	if !aaSafe(cta.BG, cta.FG) {
		cta.BG = tokens["brand-700"]
		if !aaSafe(cta.BG, cta.FG) {
			cta.FG = black
		}
	}

	// Chip: muted background with dark brand text, darkening the text one
	// stop if needed.
	chip := Pairing{BG: tokens["muted"], FG: tokens["brand-700"]}
	if !aaSafe(chip.BG, chip.FG) {
		chip.FG = tokens["brand-900"]
	}

	// Card: surface with body text, falling back to the page background.
	card := Pairing{BG: tokens["surface"], FG: tokens["text"]}
	if !aaSafe(card.BG, card.FG) {
		card.BG = tokens["bg"]
	}

	return Pairs{
		CTA:         cta,
		Chip:        chip,
		Card:        card,
		Link:        tokens["accent-500"],
		LinkHover:   tokens["accent-700"],
		Border:      tokens["neutral-200"],
		BorderFocus: tokens["brand-500"],
	}
}
