// Package colour provides theme export helpers for rendering layers.
package colour

import (
	"fmt"
	"sort"
	"strings"
)

// FlatMap flattens a theme into a single string-to-string map suitable for
// serialization into a renderer's variable set. Pairings are exposed under
// "pair-" keys alongside the tokens.
func (t *Theme) FlatMap() map[string]string {
	flat := make(map[string]string, len(t.Tokens)+10)
	for name, value := range t.Tokens {
		flat[name] = value
	}

	flat["pair-cta-bg"] = t.Pairs.CTA.BG
	flat["pair-cta-fg"] = t.Pairs.CTA.FG
	flat["pair-chip-bg"] = t.Pairs.Chip.BG
	flat["pair-chip-fg"] = t.Pairs.Chip.FG
	flat["pair-card-bg"] = t.Pairs.Card.BG
	flat["pair-card-fg"] = t.Pairs.Card.FG
	flat["pair-link"] = t.Pairs.Link
	flat["pair-link-hover"] = t.Pairs.LinkHover
	flat["pair-border"] = t.Pairs.Border
	flat["pair-border-focus"] = t.Pairs.BorderFocus

	return flat
}

// CSSVariables renders the flattened theme as a deterministic block of CSS
// custom properties. Keys are sorted so output is stable across runs.
func (t *Theme) CSSVariables(prefix string) string {
	if prefix == "" {
		prefix = "bt"
	}

	flat := t.FlatMap()
	names := make([]string, 0, len(flat))
	for name := range flat {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "  --%s-%s: %s;\n", prefix, name, flat[name])
	}
	sb.WriteString("}\n")
	return sb.String()
}

// UsageGuide groups a theme's tokens and pairings by intended use, for
// consumers that want role-oriented access instead of raw token names.
type UsageGuide struct {
	Backgrounds map[string]string `json:"backgrounds" yaml:"backgrounds"`
	Text        map[string]string `json:"text" yaml:"text"`
	Interactive map[string]string `json:"interactive" yaml:"interactive"`
	Components  map[string]string `json:"components" yaml:"components"`
}

// NewUsageGuide builds the usage guide for a theme.
func NewUsageGuide(t *Theme) UsageGuide {
	return UsageGuide{
		Backgrounds: map[string]string{
			"primary":   t.Tokens["bg"],
			"secondary": t.Tokens["surface"],
			"brand":     t.Tokens["brand-50"],
			"accent":    t.Tokens["accent-50"],
		},
		Text: map[string]string{
			"primary":   t.Tokens["text"],
			"secondary": t.Tokens["text-muted"],
			"brand":     t.Tokens["brand-700"],
			"accent":    t.Tokens["accent-700"],
		},
		Interactive: map[string]string{
			"button-bg":  t.Pairs.CTA.BG,
			"button-fg":  t.Pairs.CTA.FG,
			"link":       t.Pairs.Link,
			"link-hover": t.Pairs.LinkHover,
		},
		Components: map[string]string{
			"card-bg": t.Pairs.Card.BG,
			"card-fg": t.Pairs.Card.FG,
			"chip-bg": t.Pairs.Chip.BG,
			"chip-fg": t.Pairs.Chip.FG,
			"border":  t.Pairs.Border,
			"focus":   t.Pairs.BorderFocus,
		},
	}
}
