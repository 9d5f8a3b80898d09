// Package brand provides merging of external design-advisory overrides.
package brand

// Typography is an advisory font pairing (Google Fonts family names).
type Typography struct {
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`
	Body    string `json:"body,omitempty" yaml:"body,omitempty"`
}

// AdvisoryOverrides is the output of an external advisory (LLM) service.
// This engine never calls that service; it only merges the override data a
// caller hands it. Zero-valued fields leave the identity untouched.
type AdvisoryOverrides struct {
	Typography   Typography     `json:"typography,omitempty" yaml:"typography,omitempty"`
	Layout       string         `json:"layout,omitempty" yaml:"layout,omitempty" validate:"omitempty,oneof=A B C"`
	SpacingScale []float64      `json:"spacing_scale,omitempty" yaml:"spacing_scale,omitempty"`
	Radius       map[string]int `json:"radius,omitempty" yaml:"radius,omitempty"`
	Colors       Colors         `json:"colors,omitempty" yaml:"colors,omitempty"`
	HeroBrief    string         `json:"hero_brief,omitempty" yaml:"hero_brief,omitempty"`
}

// ApplyOverrides merges advisory overrides into a copy of the identity.
// Only the colour fields affect theme generation; the rest travel with the
// identity for downstream rendering collaborators. The input is never
// mutated.
func ApplyOverrides(id Identity, overrides *AdvisoryOverrides) Identity {
	if overrides == nil {
		return id
	}

	merged := id
	merged.Advisory = overrides

	if overrides.Colors.Primary != "" {
		merged.Colors.Primary = overrides.Colors.Primary
	}
	if overrides.Colors.Secondary != "" {
		merged.Colors.Secondary = overrides.Colors.Secondary
	}
	if overrides.Colors.Accent != "" {
		merged.Colors.Accent = overrides.Colors.Accent
	}
	if overrides.Colors.Muted != "" {
		merged.Colors.Muted = overrides.Colors.Muted
	}

	return merged
}
