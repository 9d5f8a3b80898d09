package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFeaturesEmptySignals(t *testing.T) {
	vector := ExtractFeatures(Signals{})

	require.Len(t, vector, len(FeatureNames), "every feature present even when unset")
	for _, name := range FeatureNames {
		assert.Equal(t, 0.0, vector[name], "feature %s should default to 0", name)
	}
}

func TestExtractFeaturesNotesMarkersWin(t *testing.T) {
	vector := ExtractFeatures(Signals{
		Tagline:     "the best product pricing around",
		SourceNotes: "has_products has_pricing has_testimonials",
	})

	assert.Equal(t, 1.0, vector[FeatureProducts], "notes marker pins 1.0 over tagline hit")
	assert.Equal(t, 1.0, vector[FeaturePricing])
	assert.Equal(t, 1.0, vector[FeatureTestimonials])
}

func TestExtractFeaturesTaglineWeights(t *testing.T) {
	tests := []struct {
		name    string
		tagline string
		feature string
		want    float64
	}{
		{name: "products", tagline: "a platform for teams", feature: FeatureProducts, want: 0.8},
		{name: "pricing", tagline: "fair subscription plans", feature: FeaturePricing, want: 0.7},
		{name: "testimonials", tagline: "loved in every review", feature: FeatureTestimonials, want: 0.6},
		{name: "values", tagline: "our mission matters", feature: FeatureValues, want: 0.5},
		{name: "features", tagline: "capability without clutter", feature: FeatureFeatures, want: 0.6},
		{name: "data", tagline: "analytics you can act on", feature: FeatureData, want: 0.7},
		{name: "search", tagline: "discover what matters", feature: FeatureSearch, want: 0.8},
		{name: "announcement", tagline: "launch day is here", feature: FeatureAnnouncement, want: 0.7},
		{name: "results", tagline: "boost your pipeline", feature: FeatureResults, want: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vector := ExtractFeatures(Signals{Name: "Acme", Tagline: tt.tagline})
			assert.Equal(t, tt.want, vector[tt.feature])
		})
	}
}

func TestExtractFeaturesAIImplications(t *testing.T) {
	vector := ExtractFeatures(Signals{Name: "Clerkly AI"})

	assert.Equal(t, 1.0, vector[FeatureAI])
	assert.Equal(t, 0.7, vector[FeatureSearch], "AI implies search")
	assert.Equal(t, 0.8, vector[FeaturePersonalization], "AI implies personalization")
}

func TestExtractFeaturesImplicationsNeverLower(t *testing.T) {
	// Direct search hit (0.8) must survive the weaker AI implication (0.7).
	vector := ExtractFeatures(Signals{Name: "Acme AI", Tagline: "search everything"})
	assert.Equal(t, 0.8, vector[FeatureSearch])
}

func TestExtractFeaturesDerivedFeatures(t *testing.T) {
	vector := ExtractFeatures(Signals{SourceNotes: "has_products has_testimonials"})

	assert.Equal(t, 0.8, vector[FeaturePDP], "products imply a product detail page")
	assert.Equal(t, 0.8, vector[FeatureSocialProof], "testimonials imply social proof")
}

func TestExtractFeaturesPersonalizationSetsData(t *testing.T) {
	vector := ExtractFeatures(Signals{Tagline: "personalized onboarding"})

	assert.Equal(t, 1.0, vector[FeaturePersonalization])
	assert.Equal(t, 0.8, vector[FeatureData])
}

func TestExtractFeaturesResultsSetTransformation(t *testing.T) {
	vector := ExtractFeatures(Signals{Tagline: "transform your workflow"})

	assert.Equal(t, 0.7, vector[FeatureResults])
	assert.Equal(t, 0.7, vector[FeatureTransformation])
}

func TestExtractFeaturesDeterministic(t *testing.T) {
	signals := Signals{
		Name:        "Acme AI",
		Tagline:     "a personalized platform to discover insights",
		SourceNotes: "has_pricing",
	}
	assert.Equal(t, ExtractFeatures(signals), ExtractFeatures(signals))
}

func TestFeatureVectorGet(t *testing.T) {
	vector := FeatureVector{FeatureAI: 0.9}
	assert.Equal(t, 0.9, vector.Get(FeatureAI))
	assert.Equal(t, 0.0, vector.Get(FeatureSearch), "absent features read as 0")
}
