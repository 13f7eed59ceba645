package viz

import (
	"math"

	"github.com/vanderheijden86/conceptscope/pkg/model"
	"github.com/vanderheijden86/conceptscope/pkg/surface"
)

// Styler is the style engine: a pure mapping from an attribution value to a
// visual encoding. It holds only the concept color table and has no other
// state, so identical inputs always yield identical descriptors and tests
// can assert on values instead of pixels.
type Styler struct {
	concepts []model.Concept
}

// NewStyler builds a style engine over the dataset's concept table. The
// slice is shared, not copied, so concept recoloring shows up on the next
// encode.
func NewStyler(concepts []model.Concept) Styler {
	return Styler{concepts: concepts}
}

// Encode maps an attribution value to fill and outline colors.
//
// When normalize is set the value is rescaled to (value-lower)/(upper-lower)
// with no clamping; callers own the bounds, and degenerate bounds
// (upper == lower) yield IEEE ±Inf or NaN intensities rather than a panic,
// which renderers composite as blank. conceptID None encodes with black.
//
// The outline always carries the full intensity; the fill is dimmed to 75%
// when emphasizeOutline is set so the outline stands out against the
// interior.
func (s Styler) Encode(value, lower, upper float64, conceptID int, normalize, emphasizeOutline bool) surface.VisualStyle {
	if normalize {
		value = (value - lower) / (upper - lower)
	}

	var c model.Color
	if conceptID != None {
		c = s.concepts[conceptID].Color
	}
	r, g, b := channel(c[0]), channel(c[1]), channel(c[2])

	fillAlpha := value
	if emphasizeOutline {
		fillAlpha = value * 0.75
	}

	return surface.VisualStyle{
		Fill:    surface.RGBA{R: r, G: g, B: b, A: fillAlpha},
		Outline: surface.RGBA{R: r, G: g, B: b, A: value},
	}
}

// SwatchStyle is the fixed mid-value encoding used for concept buttons: they
// are legends showing the concept's pure color, independent of any
// attribution.
func (s Styler) SwatchStyle(conceptID int) surface.VisualStyle {
	return s.Encode(0.5, 0, 1, conceptID, true, true)
}

// channel converts a [0,1] color channel to its 8-bit value, flooring as the
// upstream renderer does. Out-of-range inputs are clipped so a slightly
// overshooting color table cannot wrap around.
func channel(v float64) uint8 {
	f := math.Floor(v * 255)
	switch {
	case f < 0 || math.IsNaN(f):
		return 0
	case f > 255:
		return 255
	default:
		return uint8(f)
	}
}
