package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"

	"github.com/vanderheijden86/conceptscope/pkg/surface"
	"github.com/vanderheijden86/conceptscope/pkg/viz"
)

// SnapshotOptions controls static snapshot export behaviour.
type SnapshotOptions struct {
	Path   string // Output path; format inferred from extension when Format empty
	Format string // "svg" or "png" (case-insensitive). If empty, inferred from Path.
	Title  string // Optional title rendered above the panels
}

// Geometry shared by both renderers. Values chosen for basicfont's 7x13
// glyphs so PNG and SVG snapshots line up.
const (
	charW     = 8
	lineH     = 26
	cellPadX  = 6
	cellGapX  = 6
	marginX   = 24
	marginY   = 28
	titleGapY = 34
)

// SaveSnapshot renders a static snapshot (SVG or PNG) of the view's current
// visible state.
func SaveSnapshot(v *viz.View, opts SnapshotOptions) error {
	format := strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	if format == "" {
		switch strings.ToLower(filepath.Ext(opts.Path)) {
		case ".svg":
			format = "svg"
		case ".png":
			format = "png"
		default:
			format = "svg" // safe default
			if opts.Path != "" && filepath.Ext(opts.Path) == "" {
				opts.Path = opts.Path + ".svg"
			}
		}
	}
	if format != "svg" && format != "png" {
		return fmt.Errorf("unsupported format %q (want svg or png)", format)
	}
	if opts.Path == "" {
		return fmt.Errorf("output path is required")
	}

	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create parent dir: %w", err)
		}
	}

	sections := buildSections(v)
	w, h := snapshotBounds(sections, opts.Title)

	switch format {
	case "svg":
		f, err := os.Create(opts.Path)
		if err != nil {
			return fmt.Errorf("create svg: %w", err)
		}
		defer f.Close()
		return RenderSVG(f, sections, opts.Title, w, h)
	default:
		return renderPNG(opts.Path, sections, opts.Title, w, h)
	}
}

// snapshotBounds computes the canvas size for the laid-out sections.
func snapshotBounds(sections []section, title string) (int, int) {
	maxW := marginX*2 + charW*cellWidth(title)
	y := marginY
	if title != "" {
		y += titleGapY
	}
	for _, sec := range sections {
		y += titleGapY
		for _, row := range sec.rows {
			x := marginX
			for _, c := range row {
				x += cellBoxWidth(c) + cellGapX
			}
			if x+marginX > maxW {
				maxW = x + marginX
			}
			y += lineH
		}
		y += lineH / 2
	}
	return maxW, y + marginY
}

func cellBoxWidth(c cell) int {
	return charW*cellWidth(c.label) + 2*cellPadX
}

// RenderSVG writes the sections as an SVG document.
func RenderSVG(w io.Writer, sections []section, title string, width, height int) error {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	y := marginY
	if title != "" {
		canvas.Text(marginX, y, title, "font-family:monospace;font-size:16px;font-weight:bold;fill:#1a1a2e")
		y += titleGapY
	}

	for _, sec := range sections {
		canvas.Text(marginX, y, sec.title, "font-family:monospace;font-size:14px;font-weight:bold;fill:#555577")
		y += lineH
		for _, row := range sec.rows {
			x := marginX
			for _, c := range row {
				bw := cellBoxWidth(c)
				if c.styled {
					canvas.Rect(x, y-lineH+8, bw, lineH-6,
						fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.3f;stroke:rgb(%d,%d,%d);stroke-opacity:%.3f;stroke-width:2",
							c.style.Fill.R, c.style.Fill.G, c.style.Fill.B, drawAlpha(c.style.Fill),
							c.style.Outline.R, c.style.Outline.G, c.style.Outline.B, drawAlpha(c.style.Outline)))
				}
				weight := "normal"
				if c.selected {
					weight = "bold"
				}
				canvas.Text(x+cellPadX, y+4, c.label,
					fmt.Sprintf("font-family:monospace;font-size:13px;font-weight:%s;fill:#1a1a2e", weight))
				x += bw + cellGapX
			}
			y += lineH
		}
		y += titleGapY - lineH + lineH/2
	}

	canvas.End()
	return nil
}

// renderPNG rasterizes the same layout with gg.
func renderPNG(path string, sections []section, title string, width, height int) error {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	y := float64(marginY)
	if title != "" {
		dc.SetRGB255(0x1a, 0x1a, 0x2e)
		dc.DrawString(title, float64(marginX), y)
		y += titleGapY
	}

	for _, sec := range sections {
		dc.SetRGB255(0x55, 0x55, 0x77)
		dc.DrawString(sec.title, float64(marginX), y)
		y += lineH
		for _, row := range sec.rows {
			x := float64(marginX)
			for _, c := range row {
				bw := float64(cellBoxWidth(c))
				if c.styled {
					dc.SetRGBA255(int(c.style.Fill.R), int(c.style.Fill.G), int(c.style.Fill.B),
						int(drawAlpha(c.style.Fill)*255))
					dc.DrawRoundedRectangle(x, y-lineH+8, bw, lineH-6, 4)
					dc.Fill()
					dc.SetRGBA255(int(c.style.Outline.R), int(c.style.Outline.G), int(c.style.Outline.B),
						int(drawAlpha(c.style.Outline)*255))
					dc.DrawRoundedRectangle(x, y-lineH+8, bw, lineH-6, 4)
					dc.SetLineWidth(2)
					dc.Stroke()
				}
				dc.SetRGB255(0x1a, 0x1a, 0x2e)
				dc.DrawString(c.label, x+cellPadX, y+4)
				x += bw + cellGapX
			}
			y += lineH
		}
		y += lineH / 2
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("writing png export: %w", err)
	}
	return nil
}

// drawAlpha clamps an intensity to a drawable [0,1] opacity; non-finite
// values (the degenerate-bounds sentinel) render transparent.
func drawAlpha(c surface.RGBA) float64 {
	a := c.A
	switch {
	case math.IsNaN(a) || math.IsInf(a, 0) || a < 0:
		return 0
	case a > 1:
		return 1
	default:
		return a
	}
}
