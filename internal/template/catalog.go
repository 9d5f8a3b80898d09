// Package template provides the builtin template catalog.
package template

// Builtin returns the standard catalog. Fingerprint weights encode how
// strongly a template favours each brand feature; larger, more specific
// fingerprints are allowed to outscore generic ones by design.
func Builtin() *Registry {
	return NewRegistry(
		// One-pager templates (16:9).
		Meta{
			ID:          "onepager.hero-left-cta",
			Channels:    []Channel{ChannelOnePager},
			Fingerprint: map[string]float64{"has_products": 0.6, "has_testimonials": 0.4, "has_pricing": 0.2},
			Slots:       []string{"hero", "features_3up", "testimonials", "cta"},
			Density:     DensityMedium,
			HeroStyle:   HeroLeft,
			AspectHint:  "16:9",
		},
		Meta{
			ID:          "onepager.hero-right-cta",
			Channels:    []Channel{ChannelOnePager},
			Fingerprint: map[string]float64{"has_products": 0.6, "has_values": 0.3},
			Slots:       []string{"hero", "feature_rail", "cta"},
			Density:     DensityLight,
			HeroStyle:   HeroRight,
			AspectHint:  "16:9",
		},
		Meta{
			ID:          "onepager.hero-centered-split",
			Channels:    []Channel{ChannelOnePager},
			Fingerprint: map[string]float64{"has_testimonials": 0.5, "has_values": 0.4, "has_pricing": 0.3},
			Slots:       []string{"hero", "testimonials", "pricing", "cta"},
			Density:     DensityMedium,
			HeroStyle:   HeroCentered,
			AspectHint:  "16:9",
		},
		Meta{
			ID:          "onepager.feature-rail-3up",
			Channels:    []Channel{ChannelOnePager},
			Fingerprint: map[string]float64{"has_products": 0.8, "has_features": 0.7},
			Slots:       []string{"hero", "features_3up", "cta"},
			Density:     DensityHeavy,
			HeroStyle:   HeroCentered,
			AspectHint:  "16:9",
		},
		Meta{
			ID:          "onepager.testimonial-stack",
			Channels:    []Channel{ChannelOnePager},
			Fingerprint: map[string]float64{"has_testimonials": 0.9, "has_social_proof": 0.8},
			Slots:       []string{"hero", "testimonials", "social_proof", "cta"},
			Density:     DensityMedium,
			HeroStyle:   HeroCentered,
			AspectHint:  "16:9",
		},
		Meta{
			ID:          "onepager.pricing-2col",
			Channels:    []Channel{ChannelOnePager},
			Fingerprint: map[string]float64{"has_pricing": 0.9, "has_products": 0.6},
			Slots:       []string{"hero", "pricing", "features", "cta"},
			Density:     DensityMedium,
			HeroStyle:   HeroCentered,
			AspectHint:  "16:9",
		},

		// Story templates (9:16).
		Meta{
			ID:          "story.story-pdp-cta",
			Channels:    []Channel{ChannelStory},
			Fingerprint: map[string]float64{"has_products": 0.8, "has_pdp": 0.9},
			Slots:       []string{"hero", "pdp_features", "cta"},
			Density:     DensityLight,
			HeroStyle:   HeroCentered,
			AspectHint:  "9:16",
		},
		Meta{
			ID:          "story.story-highlights",
			Channels:    []Channel{ChannelStory},
			Fingerprint: map[string]float64{"has_personalization": 0.9, "has_data": 0.8},
			Slots:       []string{"hero", "highlights", "personalization", "cta"},
			Density:     DensityMedium,
			HeroStyle:   HeroCentered,
			AspectHint:  "9:16",
		},
		Meta{
			ID:          "story.story-ai-search",
			Channels:    []Channel{ChannelStory},
			Fingerprint: map[string]float64{"has_ai": 0.9, "has_search": 0.8},
			Slots:       []string{"hero", "ai_features", "search_demo", "cta"},
			Density:     DensityMedium,
			HeroStyle:   HeroCentered,
			AspectHint:  "9:16",
		},

		// LinkedIn templates (16:9).
		Meta{
			ID:          "linkedin.li-product-announcement",
			Channels:    []Channel{ChannelLinkedIn},
			Fingerprint: map[string]float64{"has_products": 0.8, "has_announcement": 0.7},
			Slots:       []string{"hero", "product_announcement", "cta"},
			Density:     DensityLight,
			HeroStyle:   HeroCentered,
			AspectHint:  "16:9",
		},
		Meta{
			ID:          "linkedin.li-before-after",
			Channels:    []Channel{ChannelLinkedIn},
			Fingerprint: map[string]float64{"has_results": 0.9, "has_transformation": 0.8},
			Slots:       []string{"hero", "before_after", "results", "cta"},
			Density:     DensityMedium,
			HeroStyle:   HeroCentered,
			AspectHint:  "16:9",
		},
	)
}
