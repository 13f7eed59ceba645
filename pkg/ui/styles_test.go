package ui

import (
	"math"
	"testing"

	"github.com/vanderheijden86/conceptscope/pkg/surface"
)

func TestDrawableAlpha(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.3, 0.3},
		{0, 0},
		{1, 1},
		{-0.5, 0},
		{2.5, 1},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := drawableAlpha(tt.in); got != tt.want {
			t.Errorf("drawableAlpha(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWordStyleUnstyledKeepsBareLook(t *testing.T) {
	th := TestTheme()
	got := th.WordStyle(surface.VisualStyle{}, false)
	if got.Render("word") != th.Word.Render("word") {
		t.Error("unstyled element must use the bare word style")
	}
}

func TestWordStyleUnderlineTracksOutline(t *testing.T) {
	th := TestTheme()

	strong := surface.VisualStyle{
		Fill:    surface.RGBA{R: 255, A: 0.6},
		Outline: surface.RGBA{R: 255, A: 0.8},
	}
	if !th.WordStyle(strong, true).GetUnderline() {
		t.Error("strong outline must underline")
	}

	weak := surface.VisualStyle{
		Fill:    surface.RGBA{R: 255, A: 0.2},
		Outline: surface.RGBA{R: 255, A: 0.3},
	}
	if th.WordStyle(weak, true).GetUnderline() {
		t.Error("weak outline must not underline")
	}

	degenerate := surface.VisualStyle{
		Fill:    surface.RGBA{A: math.NaN()},
		Outline: surface.RGBA{A: math.NaN()},
	}
	if th.WordStyle(degenerate, true).GetUnderline() {
		t.Error("non-finite outline must render transparent, not underlined")
	}
}

func TestWordStyleBackgroundScalesWithValue(t *testing.T) {
	th := TestTheme()
	faint := th.WordStyle(surface.VisualStyle{Fill: surface.RGBA{R: 255, A: 0.1}}, true)
	strong := th.WordStyle(surface.VisualStyle{Fill: surface.RGBA{R: 255, A: 0.9}}, true)
	if faint.GetBackground() == strong.GetBackground() {
		t.Error("different intensities must blend to different backgrounds")
	}
}
