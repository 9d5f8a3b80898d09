package template

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brandtone/brandtone/internal/brand"
)

func TestScoreDotProduct(t *testing.T) {
	meta := Meta{
		ID:          "story.story-ai-search",
		Fingerprint: map[string]float64{"has_ai": 0.9, "has_search": 0.8},
	}

	// has_search is absent from the vector and defaults to zero.
	features := brand.FeatureVector{"has_ai": 1.0}
	assert.InDelta(t, 0.9, Score(meta, features), 1e-9)
}

func TestScoreEmptyInputs(t *testing.T) {
	meta := Meta{Fingerprint: map[string]float64{"has_ai": 0.9}}
	assert.Equal(t, 0.0, Score(meta, brand.FeatureVector{}))
	assert.Equal(t, 0.0, Score(Meta{}, brand.FeatureVector{"has_ai": 1.0}))
}

func TestScoreFavoursSpecificity(t *testing.T) {
	generic := Meta{Fingerprint: map[string]float64{"has_products": 0.6}}
	specific := Meta{Fingerprint: map[string]float64{
		"has_products": 0.6, "has_pdp": 0.9, "has_pricing": 0.4,
	}}

	features := brand.FeatureVector{
		"has_products": 0.8,
		"has_pdp":      0.8,
		"has_pricing":  0.7,
	}

	// No magnitude normalization: the larger fingerprint wins on overlap.
	assert.Greater(t, Score(specific, features), Score(generic, features))
}
