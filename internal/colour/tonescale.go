// Package colour provides tone-scale generation from a single base colour.
package colour

// ToneSteps is the fixed 12-step lightness ladder used for every tone
// scale, from near-white down to near-black.
var ToneSteps = []float64{0.98, 0.95, 0.90, 0.80, 0.70, 0.60, 0.50, 0.40, 0.30, 0.20, 0.10, 0.05}

// minChroma is the floor applied after dampening so scales never collapse
// to pure gray.
const minChroma = 0.02

// chromaFactor returns the dampening factor for a given lightness step.
// Chroma is halved at the extremes and reduced to 80% in the shoulder
// regions so very light and very dark stops stay printable.
func chromaFactor(l float64) float64 {
	switch {
	case l < 0.2 || l > 0.9:
		return 0.5
	case l < 0.3 || l > 0.8:
		return 0.8
	default:
		return 1.0
	}
}

// ToneScale derives a 12-colour shade ramp from one base colour. Hue is
// held constant, lightness follows ToneSteps, and chroma is dampened near
// the extremes. The result is deterministic for a given converter and base.
func ToneScale(conv Converter, baseHex string) ([]string, error) {
	_, c, h, err := conv.ToLCH(baseHex)
	if err != nil {
		return nil, err
	}

	scale := make([]string, len(ToneSteps))
	for i, l := range ToneSteps {
		adjusted := c * chromaFactor(l)
		if adjusted < minChroma {
			adjusted = minChroma
		}
		scale[i] = conv.FromLCH(l, adjusted, h)
	}

	return scale, nil
}
