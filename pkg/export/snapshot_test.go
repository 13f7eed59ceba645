package export

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vanderheijden86/conceptscope/pkg/surface"
)

func TestSaveSnapshotFormats(t *testing.T) {
	v := exportView(t)
	dir := t.TempDir()

	tests := []struct {
		name     string
		opts     SnapshotOptions
		wantFile string
	}{
		{"svg by extension", SnapshotOptions{Path: filepath.Join(dir, "a.svg")}, "a.svg"},
		{"png by extension", SnapshotOptions{Path: filepath.Join(dir, "b.png")}, "b.png"},
		{"explicit format", SnapshotOptions{Path: filepath.Join(dir, "c.dat"), Format: "svg"}, "c.dat"},
		{"bare path defaults to svg", SnapshotOptions{Path: filepath.Join(dir, "d")}, "d.svg"},
		{"nested dir created", SnapshotOptions{Path: filepath.Join(dir, "sub", "e.svg")}, filepath.Join("sub", "e.svg")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := SaveSnapshot(v, tt.opts); err != nil {
				t.Fatalf("SaveSnapshot: %v", err)
			}
			if _, err := os.Stat(filepath.Join(dir, tt.wantFile)); err != nil {
				t.Errorf("expected output file: %v", err)
			}
		})
	}
}

func TestSaveSnapshotErrors(t *testing.T) {
	v := exportView(t)
	if err := SaveSnapshot(v, SnapshotOptions{Path: "x", Format: "pdf"}); err == nil {
		t.Error("unsupported format must fail")
	}
	if err := SaveSnapshot(v, SnapshotOptions{Format: "svg"}); err == nil {
		t.Error("missing path must fail")
	}
}

func TestRenderSVG(t *testing.T) {
	v := exportView(t)
	v.Controller().ClickOutput(1)
	v.Controller().ClickConcept(0)

	sections := buildSections(v)
	w, h := snapshotBounds(sections, "demo")
	if w <= 0 || h <= 0 {
		t.Fatalf("bounds = %dx%d", w, h)
	}

	var buf bytes.Buffer
	if err := RenderSVG(&buf, sections, "demo", w, h); err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	doc := buf.String()

	for _, want := range []string{
		"<svg", "</svg>", ">demo<", ">Concepts<", ">Inputs<", ">Outputs<",
		"fill:rgb(255,0,0)", "fill-opacity:0.375",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestBuildSectionsSkipsHidden(t *testing.T) {
	v := exportView(t)
	v.Concepts().Element(1).SetHidden(true)

	for _, sec := range buildSections(v) {
		if sec.title != "Concepts" {
			continue
		}
		if got := len(sec.rows[0]); got != 1 {
			t.Fatalf("concept row has %d cells, want 1 after hiding", got)
		}
		return
	}
	t.Fatal("no Concepts section")
}

func TestDrawAlpha(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.5, 0.5},
		{-0.2, 0},
		{1.7, 1},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := drawAlpha(surface.RGBA{A: tt.in}); got != tt.want {
			t.Errorf("drawAlpha(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCellWidth(t *testing.T) {
	if got := cellWidth("cat"); got != 3 {
		t.Errorf("ascii width = %d, want 3", got)
	}
	if got := cellWidth("猫"); got != 2 {
		t.Errorf("wide rune width = %d, want 2", got)
	}
}
