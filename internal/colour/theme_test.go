package colour

import (
	"testing"
)

var testBase = BaseColors{
	Primary:   "#2D5BFF",
	Secondary: "#00C2A8",
	Accent:    "#00C2A8",
	Muted:     "#EBEEF3",
}

func mustPropose(t *testing.T, conv Converter, base BaseColors) *Theme {
	t.Helper()
	theme, err := ProposeTheme(conv, base)
	if err != nil {
		t.Fatalf("ProposeTheme error: %v", err)
	}
	return theme
}

func TestProposeThemeTokenCoverage(t *testing.T) {
	theme := mustPropose(t, PreciseConverter{}, testBase)

	required := []string{
		"bg", "surface", "surface-contrast", "text", "text-muted",
		"success", "warning", "error", "info", "muted", "muted-foreground",
	}
	for _, ramp := range []string{"brand", "accent", "neutral"} {
		for _, stop := range []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"} {
			required = append(required, ramp+"-"+stop)
		}
	}

	for _, name := range required {
		if _, ok := theme.Tokens[name]; !ok {
			t.Errorf("missing token %q", name)
		}
	}
	if len(theme.Tokens) != len(required) {
		t.Errorf("token count = %d, want %d", len(theme.Tokens), len(required))
	}
}

func TestProposeThemePinsBaseStops(t *testing.T) {
	base := BaseColors{
		Primary:   "#241461",
		Secondary: "#0099ff",
		Accent:    "#3a3a3a",
		Muted:     "#d9d8fc",
	}
	theme := mustPropose(t, PreciseConverter{}, base)

	tests := []struct {
		token string
		want  string
	}{
		{token: "brand-500", want: "#241461"},
		{token: "accent-500", want: "#0099ff"},
		{token: "neutral-500", want: "#3a3a3a"},
		{token: "info", want: "#0099ff"},
		{token: "muted", want: "#d9d8fc"},
		{token: "text", want: "#0B0B0B"},
	}
	for _, tt := range tests {
		if got := theme.Tokens[tt.token]; got != tt.want {
			t.Errorf("token %s = %q, want original input %q", tt.token, got, tt.want)
		}
	}
}

func TestProposeThemeFixedAssignments(t *testing.T) {
	theme := mustPropose(t, PreciseConverter{}, testBase)

	if theme.Pairs.Link != theme.Tokens["accent-500"] {
		t.Errorf("link = %q, want accent-500 %q", theme.Pairs.Link, theme.Tokens["accent-500"])
	}
	if theme.Pairs.LinkHover != theme.Tokens["accent-700"] {
		t.Errorf("link_hover = %q, want accent-700 %q", theme.Pairs.LinkHover, theme.Tokens["accent-700"])
	}
	if theme.Pairs.Border != theme.Tokens["neutral-200"] {
		t.Errorf("border = %q, want neutral-200 %q", theme.Pairs.Border, theme.Tokens["neutral-200"])
	}
	if theme.Pairs.BorderFocus != theme.Tokens["brand-500"] {
		t.Errorf("border_focus = %q, want brand-500 %q", theme.Pairs.BorderFocus, theme.Tokens["brand-500"])
	}
}

// A CTA pairing must either meet AA or be flagged by the validator; the two
// are never both silently "ok but actually unsafe".
func TestProposeThemeCTARepairOrFlag(t *testing.T) {
	bases := []BaseColors{
		testBase,
		{Primary: "#241461", Secondary: "#0099ff", Accent: "#3a3a3a", Muted: "#d9d8fc"},
		{Primary: "#ffff00", Secondary: "#00C2A8", Accent: "#3a3a3a", Muted: "#EBEEF3"}, // hostile: yellow on white
		{Primary: "#cccccc", Secondary: "#dddddd", Accent: "#eeeeee", Muted: "#f5f5f5"}, // hostile: everything pale
	}

	for _, base := range bases {
		theme := mustPropose(t, PreciseConverter{}, base)

		if theme.Pairs.CTA.BG == theme.Pairs.CTA.FG {
			t.Errorf("cta bg == fg (%q) for base %+v", theme.Pairs.CTA.BG, base)
		}

		safe := aaSafe(theme.Pairs.CTA.BG, theme.Pairs.CTA.FG)
		report := ValidateTheme(theme)
		if !safe && report.Valid {
			t.Errorf("unsafe CTA pairing not flagged for base %+v: %+v", base, theme.Pairs.CTA)
		}
	}
}

func TestProposeThemeDefaultsAreSafe(t *testing.T) {
	theme := mustPropose(t, PreciseConverter{}, testBase)

	if !aaSafe(theme.Pairs.CTA.BG, theme.Pairs.CTA.FG) {
		t.Errorf("default CTA pairing unsafe: %+v", theme.Pairs.CTA)
	}
	if !aaSafe(theme.Pairs.Card.BG, theme.Pairs.Card.FG) {
		t.Errorf("default card pairing unsafe: %+v", theme.Pairs.Card)
	}
	if report := ValidateTheme(theme); !report.Valid {
		t.Errorf("default theme reported invalid: %v", report.Issues)
	}
}

func TestProposeThemePreciseFlag(t *testing.T) {
	if theme := mustPropose(t, PreciseConverter{}, testBase); !theme.Precise {
		t.Error("theme from precise converter should report Precise")
	}
	if theme := mustPropose(t, LuminanceFallbackConverter{}, testBase); theme.Precise {
		t.Error("theme from fallback converter must not report Precise")
	}
}

func TestProposeThemeInvalidColour(t *testing.T) {
	bad := testBase
	bad.Primary = "blurple"
	if _, err := ProposeTheme(PreciseConverter{}, bad); err == nil {
		t.Error("expected error for malformed primary colour")
	}
}
