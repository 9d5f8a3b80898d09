// Package template provides template scoring against feature vectors.
package template

import "github.com/brandtone/brandtone/internal/brand"

// Score computes the weighted dot product of a template's fingerprint
// against a brand feature vector. Features absent from the vector count as
// zero. Scores are deliberately not normalized by fingerprint magnitude:
// templates with larger, more specific fingerprints can outscore generic
// ones even with partial feature overlap, which favours specificity.
func Score(meta Meta, features brand.FeatureVector) float64 {
	score := 0.0
	for feature, weight := range meta.Fingerprint {
		score += weight * features.Get(feature)
	}
	return score
}
