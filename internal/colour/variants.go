// Package colour provides theme variant generation.
package colour

// Chroma multipliers for the generated variants.
const (
	vibrantChromaFactor = 1.2
	mutedChromaFactor   = 0.8
)

// ProposeThemeVariants produces up to count themes for the given base
// colours. The first is always the base theme. When the converter is
// precise, a "vibrant" variant (primary chroma x1.2) and a "muted" variant
// (primary chroma x0.8) follow. With the luminance fallback, chroma cannot
// be adjusted meaningfully, so no extra variants are generated; the known
// limitation is that callers then receive fewer themes than requested.
func ProposeThemeVariants(conv Converter, base BaseColors, count int) ([]*Theme, error) {
	baseTheme, err := ProposeTheme(conv, base)
	if err != nil {
		return nil, err
	}

	themes := []*Theme{baseTheme}
	if count <= 1 || !conv.Precise() {
		return capVariants(themes, count), nil
	}

	l, c, h, err := conv.ToLCH(base.Primary)
	if err != nil {
		return nil, err
	}

	for _, v := range []struct {
		name   string
		factor float64
	}{
		{"vibrant", vibrantChromaFactor},
		{"muted", mutedChromaFactor},
	} {
		variantBase := base
		variantBase.Primary = conv.FromLCH(l, c*v.factor, h)

		theme, err := ProposeTheme(conv, variantBase)
		if err != nil {
			return nil, err
		}
		theme.VariantName = v.name
		themes = append(themes, theme)
	}

	return capVariants(themes, count), nil
}

func capVariants(themes []*Theme, count int) []*Theme {
	if count < 0 {
		count = 0
	}
	if len(themes) > count {
		return themes[:count]
	}
	return themes
}
