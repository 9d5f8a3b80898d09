package colour

import (
	"strings"
	"testing"
)

func TestValidateThemeClean(t *testing.T) {
	theme := mustPropose(t, PreciseConverter{}, testBase)

	report := ValidateTheme(theme)
	if !report.Valid {
		t.Fatalf("expected valid theme, got issues: %v", report.Issues)
	}
	if report.IssueCount() != 0 {
		t.Errorf("issue count = %d, want 0", report.IssueCount())
	}
	if len(report.Fixes) != 0 {
		t.Errorf("unexpected fixes: %v", report.Fixes)
	}
}

func TestValidateThemeFlagsUnsafeCTA(t *testing.T) {
	theme := mustPropose(t, PreciseConverter{}, testBase)
	// Force a pairing the repair pass would never produce.
	theme.Pairs.CTA = Pairing{BG: "#777777", FG: "#888888"}

	report := ValidateTheme(theme)
	if report.Valid {
		t.Fatal("expected invalid report")
	}
	if report.IssueCount() != 1 {
		t.Fatalf("issue count = %d, want 1: %v", report.IssueCount(), report.Issues)
	}
	if !strings.Contains(report.Issues[0], "CTA contrast too low") {
		t.Errorf("unexpected issue text: %q", report.Issues[0])
	}
	// Black text on #777777 clears AA, so the suggested fix is a darker fg.
	if got := report.Fixes["cta_fg"]; got != black {
		t.Errorf("cta_fg fix = %q, want %q", got, black)
	}
}

func TestValidateThemeFlagsUnsafeCard(t *testing.T) {
	theme := mustPropose(t, PreciseConverter{}, testBase)
	theme.Pairs.Card = Pairing{BG: "#eeeeee", FG: "#dddddd"}

	report := ValidateTheme(theme)
	if report.Valid {
		t.Fatal("expected invalid report")
	}
	if !strings.Contains(report.Issues[0], "card contrast too low") {
		t.Errorf("unexpected issue text: %q", report.Issues[0])
	}
	if got := report.Fixes["card_bg"]; got != theme.Tokens["bg"] {
		t.Errorf("card_bg fix = %q, want bg token %q", got, theme.Tokens["bg"])
	}
}

func TestValidateThemeDarkCTASuggestsBackgroundFix(t *testing.T) {
	theme := mustPropose(t, PreciseConverter{}, testBase)
	// Black cannot rescue a near-black background, so the fix targets bg.
	theme.Pairs.CTA = Pairing{BG: "#111111", FG: "#222222"}

	report := ValidateTheme(theme)
	if report.Valid {
		t.Fatal("expected invalid report")
	}
	if got := report.Fixes["cta_bg"]; got != theme.Tokens["brand-700"] {
		t.Errorf("cta_bg fix = %q, want brand-700 %q", got, theme.Tokens["brand-700"])
	}
}
