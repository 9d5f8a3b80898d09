package colour

import (
	"strings"
	"testing"
)

func TestFlatMapIncludesTokensAndPairs(t *testing.T) {
	theme := mustPropose(t, PreciseConverter{}, testBase)
	flat := theme.FlatMap()

	if got := flat["brand-500"]; got != testBase.Primary {
		t.Errorf("brand-500 = %q, want %q", got, testBase.Primary)
	}

	pairKeys := []string{
		"pair-cta-bg", "pair-cta-fg", "pair-chip-bg", "pair-chip-fg",
		"pair-card-bg", "pair-card-fg", "pair-link", "pair-link-hover",
		"pair-border", "pair-border-focus",
	}
	for _, key := range pairKeys {
		if _, ok := flat[key]; !ok {
			t.Errorf("missing flat key %q", key)
		}
	}
	if len(flat) != len(theme.Tokens)+len(pairKeys) {
		t.Errorf("flat map size = %d, want %d", len(flat), len(theme.Tokens)+len(pairKeys))
	}

	// The flat map is a copy; mutating it must not touch the theme.
	flat["brand-500"] = "#000000"
	if theme.Tokens["brand-500"] == "#000000" {
		t.Error("FlatMap leaked the underlying token map")
	}
}

func TestCSSVariables(t *testing.T) {
	theme := mustPropose(t, PreciseConverter{}, testBase)

	css := theme.CSSVariables("brand")
	if !strings.HasPrefix(css, ":root {\n") || !strings.HasSuffix(css, "}\n") {
		t.Errorf("unexpected CSS shape:\n%s", css)
	}
	if !strings.Contains(css, "--brand-bg: ") {
		t.Error("missing --brand-bg variable")
	}
	if !strings.Contains(css, "--brand-pair-cta-bg: ") {
		t.Error("missing --brand-pair-cta-bg variable")
	}

	// Deterministic output: two renders are byte-identical.
	if css != theme.CSSVariables("brand") {
		t.Error("CSSVariables output is not stable")
	}

	// Empty prefix falls back to the default.
	if !strings.Contains(theme.CSSVariables(""), "--bt-bg: ") {
		t.Error("default prefix not applied")
	}
}

func TestNewUsageGuide(t *testing.T) {
	theme := mustPropose(t, PreciseConverter{}, testBase)
	guide := NewUsageGuide(theme)

	if guide.Backgrounds["primary"] != theme.Tokens["bg"] {
		t.Errorf("backgrounds.primary = %q, want bg token", guide.Backgrounds["primary"])
	}
	if guide.Text["brand"] != theme.Tokens["brand-700"] {
		t.Errorf("text.brand = %q, want brand-700", guide.Text["brand"])
	}
	if guide.Interactive["button-bg"] != theme.Pairs.CTA.BG {
		t.Errorf("interactive.button-bg = %q, want cta bg", guide.Interactive["button-bg"])
	}
	if guide.Components["chip-fg"] != theme.Pairs.Chip.FG {
		t.Errorf("components.chip-fg = %q, want chip fg", guide.Components["chip-fg"])
	}
}
