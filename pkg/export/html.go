package export

import (
	"fmt"
	"html"
	"math"
	"os"
	"strings"
	"time"

	"github.com/vanderheijden86/conceptscope/pkg/model"
	"github.com/vanderheijden86/conceptscope/pkg/surface"
	"github.com/vanderheijden86/conceptscope/pkg/viz"
)

// HTMLOptions controls HTML export.
type HTMLOptions struct {
	Title string
	Stats *model.Stats // optional summary block
}

// SaveHTML writes a self-contained page reflecting the view's current state.
func SaveHTML(path string, v *viz.View, opts HTMLOptions) error {
	doc := RenderHTML(v, opts)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing html export: %w", err)
	}
	return nil
}

// RenderHTML builds the page without touching the filesystem.
func RenderHTML(v *viz.View, opts HTMLOptions) string {
	title := opts.Title
	if title == "" {
		title = "Attribution view"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>%s</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem; color: #1a1a2e; }
  h3 { margin: 1.2rem 0 0.4rem; }
  .word {
    display: inline-block; padding: 2px 6px; margin: 2px;
    border: 2px solid transparent; border-radius: 6px;
  }
  .selected { font-weight: 700; text-decoration: underline; }
  .current { font-style: italic; }
  .summary { color: #555577; font-size: 0.85rem; margin-top: 1.5rem; }
</style>
</head>
<body>
<h2>%s</h2>
`, html.EscapeString(title), html.EscapeString(title))

	for _, sec := range buildSections(v) {
		fmt.Fprintf(&b, "<h3>%s</h3>\n<div>\n", html.EscapeString(sec.title))
		for _, row := range sec.rows {
			b.WriteString("<div>")
			for _, c := range row {
				writeWordSpan(&b, c)
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("</div>\n")
	}

	if opts.Stats != nil && opts.Stats.Count > 0 {
		s := opts.Stats
		fmt.Fprintf(&b, `<p class="summary">%d attribution values · min %.3f · median %.3f · max %.3f · mean %.3f ± %.3f</p>
`, s.Count, s.Min, s.Median, s.Max, s.Mean, s.StdDev)
	}
	fmt.Fprintf(&b, `<p class="summary">exported %s · mode %s</p>
</body></html>
`, time.Now().Format("2006-01-02 15:04:05"), v.Mode())

	return b.String()
}

func writeWordSpan(b *strings.Builder, c cell) {
	classes := "word"
	if c.selected {
		classes += " selected"
	}
	if c.current {
		classes += " current"
	}

	style := ""
	if c.styled {
		style = fmt.Sprintf(` style="background-color:%s;border-color:%s"`,
			cssRGBA(c.style.Fill), cssRGBA(c.style.Outline))
	}

	tooltip := ""
	if c.tooltip != "" {
		tooltip = fmt.Sprintf(` title="%s"`, html.EscapeString(c.tooltip))
	}

	fmt.Fprintf(b, `<span class="%s"%s%s>%s</span>`, classes, style, tooltip, html.EscapeString(c.label))
}

// cssRGBA formats a color for inline CSS. Non-finite intensities (the
// degenerate-bounds sentinel) render fully transparent rather than invalid.
func cssRGBA(c surface.RGBA) string {
	a := c.A
	if math.IsNaN(a) || math.IsInf(a, 0) {
		a = 0
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, a)
}
