// Package template defines the content template catalog and scoring against
// brand feature vectors.
package template

import (
	"errors"
	"fmt"
	"sort"
)

// ErrTemplateNotFound is returned when a template id is not in the registry.
var ErrTemplateNotFound = errors.New("template not found")

// Channel is the target content surface a template renders to.
type Channel string

// Supported channels.
const (
	ChannelOnePager Channel = "onepager"
	ChannelStory    Channel = "story"
	ChannelLinkedIn Channel = "linkedin"
)

// ParseChannel validates a channel name.
func ParseChannel(s string) (Channel, error) {
	switch Channel(s) {
	case ChannelOnePager, ChannelStory, ChannelLinkedIn:
		return Channel(s), nil
	default:
		return "", fmt.Errorf("unknown channel %q (want onepager, story or linkedin)", s)
	}
}

// Density is a template's content-capacity tier.
type Density string

// Density tiers.
const (
	DensityLight  Density = "light"
	DensityMedium Density = "medium"
	DensityHeavy  Density = "heavy"
)

// HeroStyle is the placement of a template's hero section.
type HeroStyle string

// Hero styles.
const (
	HeroLeft     HeroStyle = "left"
	HeroRight    HeroStyle = "right"
	HeroCentered HeroStyle = "centered"
	HeroSplit    HeroStyle = "split"
)

// Meta describes one template in the catalog: which channels it serves,
// its feature fingerprint for brand matching, the content slots it offers
// and its layout characteristics. Metas are created once at process start
// and never mutated.
type Meta struct {
	ID          string             `json:"id" yaml:"id"`
	Channels    []Channel          `json:"channels" yaml:"channels"`
	Fingerprint map[string]float64 `json:"fingerprint" yaml:"fingerprint"`
	Slots       []string           `json:"slots" yaml:"slots"`
	Density     Density            `json:"density" yaml:"density"`
	HeroStyle   HeroStyle          `json:"hero_style" yaml:"hero_style"`
	AspectHint  string             `json:"aspect_hint" yaml:"aspect_hint"`
}

// ServesChannel reports whether the template renders to the channel.
func (m Meta) ServesChannel(channel Channel) bool {
	for _, c := range m.Channels {
		if c == channel {
			return true
		}
	}
	return false
}

// HasSlot reports whether the template offers the named slot.
func (m Meta) HasSlot(slot string) bool {
	for _, s := range m.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// Registry is an immutable template catalog. It is constructed explicitly
// and passed to the components that need it; there is no package-level
// catalog state. Safe for concurrent use once built.
type Registry struct {
	metas []Meta
}

// NewRegistry builds a registry from the given metas. The slice is copied
// so later mutation by the caller cannot reach the registry.
func NewRegistry(metas ...Meta) *Registry {
	owned := make([]Meta, len(metas))
	copy(owned, metas)
	return &Registry{metas: owned}
}

// Len returns the number of templates in the registry.
func (r *Registry) Len() int { return len(r.metas) }

// All returns a copy of every template in catalog order.
func (r *Registry) All() []Meta {
	out := make([]Meta, len(r.metas))
	copy(out, r.metas)
	return out
}

// ByID looks up a template by id.
func (r *Registry) ByID(id string) (Meta, error) {
	for _, m := range r.metas {
		if m.ID == id {
			return m, nil
		}
	}
	return Meta{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
}

// ByChannel returns the templates serving a channel, in catalog order.
func (r *Registry) ByChannel(channel Channel) []Meta {
	var out []Meta
	for _, m := range r.metas {
		if m.ServesChannel(channel) {
			out = append(out, m)
		}
	}
	return out
}

// SortedByFingerprint returns templates ordered by the weighted dot product
// of their fingerprints against the given weights, descending. Ties keep
// catalog order. An empty channel means the whole catalog.
func (r *Registry) SortedByFingerprint(weights map[string]float64, channel Channel) []Meta {
	candidates := r.metas
	if channel != "" {
		candidates = r.ByChannel(channel)
	}

	out := make([]Meta, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		return dotProduct(out[i].Fingerprint, weights) > dotProduct(out[j].Fingerprint, weights)
	})
	return out
}

func dotProduct(fingerprint, weights map[string]float64) float64 {
	score := 0.0
	for feature, weight := range fingerprint {
		score += weight * weights[feature]
	}
	return score
}
