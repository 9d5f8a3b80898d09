// Package brand provides feature extraction from brand text signals.
package brand

import "strings"

// The fixed feature set. Every extracted vector contains all of these,
// with unset features held at 0.0.
const (
	FeatureProducts        = "has_products"
	FeaturePricing         = "has_pricing"
	FeatureTestimonials    = "has_testimonials"
	FeatureValues          = "has_values"
	FeatureFeatures        = "has_features"
	FeatureSocialProof     = "has_social_proof"
	FeaturePDP             = "has_pdp"
	FeaturePersonalization = "has_personalization"
	FeatureData            = "has_data"
	FeatureAI              = "has_ai"
	FeatureSearch          = "has_search"
	FeatureAnnouncement    = "has_announcement"
	FeatureResults         = "has_results"
	FeatureTransformation  = "has_transformation"
)

// FeatureNames lists the full feature set in declaration order.
var FeatureNames = []string{
	FeatureProducts, FeaturePricing, FeatureTestimonials, FeatureValues,
	FeatureFeatures, FeatureSocialProof, FeaturePDP, FeaturePersonalization,
	FeatureData, FeatureAI, FeatureSearch, FeatureAnnouncement,
	FeatureResults, FeatureTransformation,
}

// FeatureVector maps feature names to weights in [0, 1].
type FeatureVector map[string]float64

// Get returns the weight for a feature, or 0 if absent. Extracted vectors
// always carry every known feature; this guards ad hoc vectors in tests
// and external callers.
func (v FeatureVector) Get(name string) float64 { return v[name] }

// featureRule is one row of the extraction table: a feature, the
// source-notes markers that pin it to 1.0, the tagline keywords that set
// its tagline weight, and extra features set alongside a tagline hit.
type featureRule struct {
	feature       string
	notesMarkers  []string
	taglineWords  []string
	taglineWeight float64
	alsoSets      map[string]float64
}

// extractionRules is evaluated in order, once, for every extraction.
// Markers and keywords match as lowercase substrings, mirroring how brand
// source notes are produced upstream.
var extractionRules = []featureRule{
	{
		feature:       FeatureProducts,
		notesMarkers:  []string{"has_products", "products"},
		taglineWords:  []string{"product", "platform", "solution", "tool"},
		taglineWeight: 0.8,
	},
	{
		feature:       FeaturePricing,
		notesMarkers:  []string{"has_pricing", "pricing"},
		taglineWords:  []string{"pricing", "cost", "price", "subscription"},
		taglineWeight: 0.7,
	},
	{
		feature:       FeatureTestimonials,
		notesMarkers:  []string{"has_testimonials"},
		taglineWords:  []string{"testimonial", "review", "feedback", "customer"},
		taglineWeight: 0.6,
	},
	{
		feature:       FeatureValues,
		notesMarkers:  []string{"has_values"},
		taglineWords:  []string{"value", "mission", "purpose", "vision"},
		taglineWeight: 0.5,
	},
	{
		feature:       FeatureFeatures,
		notesMarkers:  []string{"has_features"},
		taglineWords:  []string{"feature", "capability", "functionality"},
		taglineWeight: 0.6,
	},
	{
		feature:       FeaturePersonalization,
		taglineWords:  []string{"personalization", "personalized"},
		taglineWeight: 1.0,
		alsoSets:      map[string]float64{FeatureData: 0.8},
	},
	{
		feature:       FeatureData,
		taglineWords:  []string{"data", "analytics", "insights", "metrics"},
		taglineWeight: 0.7,
	},
	{
		feature:       FeatureSearch,
		taglineWords:  []string{"search", "discover", "find", "explore"},
		taglineWeight: 0.8,
	},
	{
		feature:       FeatureAnnouncement,
		taglineWords:  []string{"new", "launch", "announce", "release"},
		taglineWeight: 0.7,
	},
	{
		feature:       FeatureResults,
		taglineWords:  []string{"result", "outcome", "transform", "improve", "boost"},
		taglineWeight: 0.7,
		alsoSets:      map[string]float64{FeatureTransformation: 0.7},
	},
}

// implication raises a target feature to a floor when a source feature
// exceeds its threshold. Applied after all direct rules, in order.
type implication struct {
	source    string
	threshold float64
	target    string
	floor     float64
}

var implications = []implication{
	{source: FeatureAI, threshold: 0.5, target: FeatureSearch, floor: 0.7},
	{source: FeatureAI, threshold: 0.5, target: FeaturePersonalization, floor: 0.8},
	{source: FeatureTestimonials, threshold: 0.5, target: FeatureSocialProof, floor: 0.8},
	{source: FeatureProducts, threshold: 0.5, target: FeaturePDP, floor: 0.8},
}

// ExtractFeatures converts brand text signals into a weighted feature
// vector over the fixed feature set. Direct rules run first (an exact
// source-notes marker outweighs a tagline keyword hit), then the AI rule,
// then derived implications. Deterministic: same signals, same vector.
func ExtractFeatures(signals Signals) FeatureVector {
	vector := make(FeatureVector, len(FeatureNames))
	for _, name := range FeatureNames {
		vector[name] = 0.0
	}

	notes := strings.ToLower(signals.SourceNotes)
	tagline := strings.ToLower(signals.Tagline)
	name := strings.ToLower(signals.Name)

	for _, rule := range extractionRules {
		if containsAny(notes, rule.notesMarkers) {
			vector[rule.feature] = 1.0
			continue
		}
		if containsAny(tagline, rule.taglineWords) {
			vector[rule.feature] = rule.taglineWeight
			for target, weight := range rule.alsoSets {
				if weight > vector[target] {
					vector[target] = weight
				}
			}
		}
	}

	// AI reads from the brand name as well as the tagline.
	if strings.Contains(name, "ai") || strings.Contains(tagline, "ai") {
		vector[FeatureAI] = 1.0
	}

	for _, imp := range implications {
		if vector[imp.source] > imp.threshold && vector[imp.target] < imp.floor {
			vector[imp.target] = imp.floor
		}
	}

	return vector
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
