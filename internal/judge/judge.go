package judge

import (
	"strconv"
	"strings"

	"github.com/brandtone/brandtone/internal/brand"
	"github.com/brandtone/brandtone/internal/colour"
	"github.com/brandtone/brandtone/internal/template"
)

// Composite weights for both judges.
const (
	accessibilityWeight = 0.4
	brandFitWeight      = 0.35
	harmonyWeight       = 0.25

	contentFitWeight     = 0.4
	brandAlignmentWeight = 0.35
	hierarchyWeight      = 0.25
)

// Density band boundaries in outline characters.
const (
	mediumDensityChars = 1000
	heavyDensityChars  = 2000
)

// Ranked is one template candidate with its fingerprint score.
type Ranked struct {
	Meta  template.Meta `json:"meta"`
	Score float64       `json:"score"`
}

// PickTemplates scores every template serving the channel against the
// feature vector and returns at most topK candidates, best first. Ties
// keep catalog order. topK <= 0 or an empty channel slice yields an empty
// result, never an error.
func PickTemplates(reg *template.Registry, features brand.FeatureVector, channel template.Channel, topK int) []Ranked {
	candidates := reg.ByChannel(channel)

	scores := make([]float64, len(candidates))
	for i, meta := range candidates {
		scores[i] = template.Score(meta, features)
	}

	ranked := make([]Ranked, 0, len(candidates))
	for _, idx := range RankDescending(scores) {
		ranked = append(ranked, Ranked{Meta: candidates[idx], Score: scores[idx]})
	}

	if topK < 0 {
		topK = 0
	}
	if topK < len(ranked) {
		ranked = ranked[:topK]
	}
	return ranked
}

// JudgeColorSchemes ranks candidate themes for a brand by a composite of
// accessibility, brand fit and palette harmony. The result is a permutation
// of input indices, best first; equal composites keep input order.
func JudgeColorSchemes(themes []*colour.Theme, id brand.Identity) []int {
	scores := make([]float64, len(themes))
	for i, theme := range themes {
		scores[i] = accessibilityWeight*accessibilityScore(theme) +
			brandFitWeight*brandFitScore(theme, id) +
			harmonyWeight*harmonyScore(theme)
	}
	return RankDescending(scores)
}

// JudgeTemplateSelection ranks candidate templates for a brand and a
// concrete content outline by a composite of content fit, brand alignment
// and visual hierarchy. The result is a permutation of input indices.
func JudgeTemplateSelection(metas []template.Meta, id brand.Identity, outline ContentOutline) []int {
	features := brand.ExtractFeatures(id.Signals())

	scores := make([]float64, len(metas))
	for i, meta := range metas {
		scores[i] = contentFitWeight*contentFitScore(meta, outline) +
			brandAlignmentWeight*brandAlignmentScore(meta, id, features) +
			hierarchyWeight*hierarchyScore(meta)
	}
	return RankDescending(scores)
}

// accessibilityScore maps the validation report onto [0,1]: a clean theme
// scores 1.0, each unresolved contrast issue costs a quarter.
func accessibilityScore(theme *colour.Theme) float64 {
	report := colour.ValidateTheme(theme)
	if report.Valid {
		return 1.0
	}
	score := 1.0 - 0.25*float64(report.IssueCount())
	if score < 0 {
		return 0
	}
	return score
}

func brandFitScore(theme *colour.Theme, id brand.Identity) float64 {
	score := 0.0
	want := brand.ResolveColors(id.Colors)

	if strings.EqualFold(theme.BaseColors.Primary, want.Primary) {
		score += 0.3
	}
	if strings.EqualFold(theme.BaseColors.Secondary, want.Secondary) {
		score += 0.2
	}

	tone := strings.ToLower(id.Tone)
	professional := strings.Contains(tone, "professional") || strings.Contains(tone, "corporate")
	creative := strings.Contains(tone, "creative") || strings.Contains(tone, "vibrant")
	if (professional && readsMuted(theme)) || (creative && readsVibrant(theme)) {
		score += 0.2
	}

	if techBrand(id) && techLeaning(theme.Tokens["brand-500"]) {
		score += 0.1
	}

	return cap1(score)
}

// readsMuted reports whether the theme presents as subdued. Variants are
// self-describing; the base theme always carries muted tokens and reads
// both ways, so tone alignment never penalizes an un-varianted proposal.
func readsMuted(theme *colour.Theme) bool {
	if theme.VariantName != "" {
		return theme.VariantName == "muted"
	}
	return theme.Tokens["muted"] != ""
}

func readsVibrant(theme *colour.Theme) bool {
	if theme.VariantName != "" {
		return theme.VariantName == "vibrant"
	}
	return theme.Tokens["accent-500"] != ""
}

func techBrand(id brand.Identity) bool {
	text := strings.ToLower(id.Name + " " + id.Tagline)
	return strings.Contains(text, "ai") || strings.Contains(text, "tech")
}

// techLeaning reports whether a hex colour is blue-leaning or gray-leaning
// in plain RGB terms: blue strictly dominates both other channels, or the
// channel spread is small enough to read as gray.
func techLeaning(hex string) bool {
	normalized, err := colour.NormalizeHex(hex)
	if err != nil {
		return false
	}
	v, err := strconv.ParseUint(normalized[1:], 16, 32)
	if err != nil {
		return false
	}
	r := int((v >> 16) & 0xff)
	g := int((v >> 8) & 0xff)
	b := int(v & 0xff)

	if b > r && b > g {
		return true
	}
	spread := max(r, g, b) - min(r, g, b)
	return spread <= 24
}

func harmonyScore(theme *colour.Theme) float64 {
	score := 0.0

	if rampStops(theme.Tokens, "brand-") >= 8 &&
		rampStops(theme.Tokens, "accent-") >= 8 &&
		rampStops(theme.Tokens, "neutral-") >= 8 {
		score += 0.3
	}
	if theme.Tokens["brand-50"] != "" && theme.Tokens["brand-900"] != "" {
		score += 0.2
	}
	if theme.Tokens["success"] != "" && theme.Tokens["warning"] != "" && theme.Tokens["error"] != "" {
		score += 0.2
	}
	if theme.Tokens["surface"] != "" && theme.Tokens["text"] != "" {
		score += 0.3
	}

	return cap1(score)
}

func rampStops(tokens map[string]string, prefix string) int {
	n := 0
	for name := range tokens {
		if strings.HasPrefix(name, prefix) {
			n++
		}
	}
	return n
}

func contentFitScore(meta template.Meta, outline ContentOutline) float64 {
	score := 0.0

	if len(outline.Sections) > 0 {
		matched := 0
		for _, section := range outline.Sections {
			text := section.text()
			for _, slot := range meta.Slots {
				if strings.Contains(text, strings.ToLower(slot)) {
					matched++
					break
				}
			}
		}
		score += float64(matched) / float64(len(outline.Sections)) * 0.5
	}

	if densityBand(outline.Length()) == meta.Density {
		score += 0.3
	}

	return cap1(score)
}

func densityBand(length int) template.Density {
	switch {
	case length < mediumDensityChars:
		return template.DensityLight
	case length < heavyDensityChars:
		return template.DensityMedium
	default:
		return template.DensityHeavy
	}
}

func brandAlignmentScore(meta template.Meta, id brand.Identity, features brand.FeatureVector) float64 {
	score := 0.0

	tone := strings.ToLower(id.Tone)
	professional := strings.Contains(tone, "professional") || strings.Contains(tone, "corporate")
	creative := strings.Contains(tone, "creative") || strings.Contains(tone, "vibrant")
	switch meta.HeroStyle {
	case template.HeroCentered, template.HeroLeft:
		if professional {
			score += 0.3
		}
	case template.HeroRight, template.HeroSplit:
		if creative {
			score += 0.3
		}
	}

	total := 0.0
	matched := 0.0
	for feature, weight := range meta.Fingerprint {
		total += weight
		if features.Get(feature) > 0.5 {
			matched += weight
		}
	}
	if total > 0 {
		score += 0.4 * (matched / total)
	}

	return cap1(score)
}

func hierarchyScore(meta template.Meta) float64 {
	score := 0.0

	if meta.HasSlot("hero") {
		score += 0.3
	}
	if meta.HasSlot("cta") {
		score += 0.2
	}
	if len(meta.Slots) >= 4 {
		score += 0.2
	}
	if anySlotContains(meta.Slots, "feature", "benefit") {
		score += 0.2
	}
	if anySlotContains(meta.Slots, "testimonial", "social_proof") {
		score += 0.1
	}

	return cap1(score)
}

func anySlotContains(slots []string, substrings ...string) bool {
	for _, slot := range slots {
		for _, sub := range substrings {
			if strings.Contains(slot, sub) {
				return true
			}
		}
	}
	return false
}

func cap1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
