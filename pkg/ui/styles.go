package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vanderheijden86/conceptscope/pkg/surface"
)

// Terminal cells have no real alpha channel, so attribution tints are
// composited here: the fill color is blended over the terminal background at
// the encoded opacity, and the text color flips between light and dark by
// the blended background's luminance.

func (t Theme) backgroundColor() colorful.Color {
	if t.Renderer.HasDarkBackground() {
		return mustHex("#282A36")
	}
	return mustHex("#FFFFFF")
}

// WordStyle turns a visual style descriptor into a renderable lipgloss
// style. Unstyled elements keep the bare word look.
func (t Theme) WordStyle(st surface.VisualStyle, styled bool) lipgloss.Style {
	if !styled {
		return t.Word
	}

	bg := t.backgroundColor()
	fill := colorful.Color{
		R: float64(st.Fill.R) / 255,
		G: float64(st.Fill.G) / 255,
		B: float64(st.Fill.B) / 255,
	}
	blended := bg.BlendRgb(fill, drawableAlpha(st.Fill.A))

	fg := "#1A1A1A"
	if _, _, l := blended.Hsl(); l < 0.5 {
		fg = "#F8F8F2"
	}

	s := t.Renderer.NewStyle().
		Background(lipgloss.Color(blended.Hex())).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1)

	// The outline carries the undimmed intensity; underline once it is
	// strong enough to be the dominant cue.
	if drawableAlpha(st.Outline.A) >= 0.5 {
		s = s.Underline(true)
	}
	return s
}

// SwatchBar renders a short colored bar for legends and the status line.
func (t Theme) SwatchBar(st surface.VisualStyle) string {
	c := fmt.Sprintf("#%02X%02X%02X", st.Outline.R, st.Outline.G, st.Outline.B)
	return t.Renderer.NewStyle().Foreground(ThemeFg(c)).Render("▐")
}

// drawableAlpha clamps an encoded intensity to [0,1]; NaN and ±Inf (the
// degenerate-bounds sentinel) draw as fully transparent.
func drawableAlpha(a float64) float64 {
	switch {
	case math.IsNaN(a) || math.IsInf(a, 0) || a < 0:
		return 0
	case a > 1:
		return 1
	default:
		return a
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
