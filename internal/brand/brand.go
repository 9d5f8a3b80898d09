// Package brand defines brand input types, default colour resolution and
// feature extraction from brand text signals.
package brand

import "github.com/brandtone/brandtone/internal/colour"

// Documented defaults substituted for missing (not malformed) colour
// fields. Accent falls back to the resolved secondary.
const (
	DefaultPrimary   = "#2D5BFF"
	DefaultSecondary = "#00C2A8"
	DefaultMuted     = "#EBEEF3"
)

// Colors are the optional brand colour inputs as supplied by collaborators
// (scraper output, brand files, advisory overrides). Empty fields mean
// "unknown" and resolve to the documented defaults.
type Colors struct {
	Primary   string `json:"primary,omitempty" yaml:"primary,omitempty" validate:"omitempty,hexcolor"`
	Secondary string `json:"secondary,omitempty" yaml:"secondary,omitempty" validate:"omitempty,hexcolor"`
	Accent    string `json:"accent,omitempty" yaml:"accent,omitempty" validate:"omitempty,hexcolor"`
	Muted     string `json:"muted,omitempty" yaml:"muted,omitempty" validate:"omitempty,hexcolor"`
}

// Signals are the free-text brand signals used for keyword matching only.
type Signals struct {
	Name        string `json:"name" yaml:"name"`
	Tagline     string `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	SourceNotes string `json:"source_notes,omitempty" yaml:"source_notes,omitempty"`
}

// Identity is a full brand definition as loaded from a brand file.
type Identity struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Tagline     string   `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Tone        string   `json:"tone,omitempty" yaml:"tone,omitempty"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	SourceNotes string   `json:"source_notes,omitempty" yaml:"source_notes,omitempty"`
	Colors      Colors   `json:"colors,omitempty" yaml:"colors,omitempty"`

	// Advisory holds optional overrides produced by an external design
	// advisory service; this engine never calls that service itself.
	Advisory *AdvisoryOverrides `json:"advisory,omitempty" yaml:"advisory,omitempty"`
}

// Signals returns the text signals of the identity.
func (id Identity) Signals() Signals {
	return Signals{Name: id.Name, Tagline: id.Tagline, SourceNotes: id.SourceNotes}
}

// ResolveColors is the single place where missing colour fields become
// defaults. Precedence per field: supplied value, then the documented
// default; accent additionally coalesces through secondary. Malformed
// values are not coerced here; they fail later with a colour format error.
func ResolveColors(c Colors) colour.BaseColors {
	resolved := colour.BaseColors{
		Primary:   orDefault(c.Primary, DefaultPrimary),
		Secondary: orDefault(c.Secondary, DefaultSecondary),
		Muted:     orDefault(c.Muted, DefaultMuted),
	}
	resolved.Accent = orDefault(c.Accent, resolved.Secondary)
	return resolved
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
