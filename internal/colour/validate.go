// Package colour provides post-hoc contrast validation for proposed themes.
package colour

import "fmt"

// ValidationReport is the result of re-checking a theme's key pairings.
// Unresolved contrast problems are data, not errors: callers decide whether
// to block on Valid == false.
type ValidationReport struct {
	Valid  bool              `json:"valid" yaml:"valid"`
	Issues []string          `json:"issues" yaml:"issues"`
	Fixes  map[string]string `json:"fixes" yaml:"fixes"`
}

// IssueCount returns the number of unresolved contrast issues.
func (r ValidationReport) IssueCount() int { return len(r.Issues) }

// ValidateTheme re-checks the CTA and card pairings at WCAG AA and reports
// any pairing the greedy repair left below threshold, together with a
// suggested fix. A theme that passed repair silently is never reported as
// unsafe, and an unsafe theme is never reported as valid.
func ValidateTheme(theme *Theme) ValidationReport {
	report := ValidationReport{
		Issues: []string{},
		Fixes:  map[string]string{},
	}

	cta := theme.Pairs.CTA
	if !aaSafe(cta.BG, cta.FG) {
		ratio, _ := ContrastRatio(cta.BG, cta.FG)
		report.Issues = append(report.Issues, fmt.Sprintf("CTA contrast too low: %.2f", ratio))
		if aaSafe(cta.BG, black) {
			report.Fixes["cta_fg"] = black
		} else {
			report.Fixes["cta_bg"] = theme.Tokens["brand-700"]
		}
	}

	card := theme.Pairs.Card
	if !aaSafe(card.BG, card.FG) {
		ratio, _ := ContrastRatio(card.BG, card.FG)
		report.Issues = append(report.Issues, fmt.Sprintf("card contrast too low: %.2f", ratio))
		report.Fixes["card_bg"] = theme.Tokens["bg"]
	}

	report.Valid = len(report.Issues) == 0
	return report
}
