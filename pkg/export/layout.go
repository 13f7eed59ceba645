// Package export renders the current view state to static artifacts: a
// self-contained HTML page (the shareable form the upstream pipeline used to
// emit) and SVG/PNG snapshots. All renderers read the same surface tree the
// TUI shows, so an export always matches what was on screen.
package export

import (
	"github.com/mattn/go-runewidth"

	"github.com/vanderheijden86/conceptscope/pkg/model"
	"github.com/vanderheijden86/conceptscope/pkg/surface"
	"github.com/vanderheijden86/conceptscope/pkg/viz"
)

// cell is one renderable word/button with its resolved styling.
type cell struct {
	label    string
	tooltip  string
	style    surface.VisualStyle
	styled   bool
	selected bool
	current  bool
}

// section is one titled panel of rows.
type section struct {
	title string
	rows  [][]cell
}

// buildSections flattens the view's visible elements into renderable
// sections, in panel order.
func buildSections(v *viz.View) []section {
	var out []section

	if p := v.Concepts(); p != nil {
		title := "Concepts"
		if v.Mode() == model.ModeMultiClass {
			title = "Classes"
		}
		out = append(out, section{title: title, rows: [][]cell{rowCells(p.Row())}})
	}

	inputs := section{title: "Inputs"}
	for _, r := range v.Inputs().Rows() {
		inputs.rows = append(inputs.rows, rowCells(r))
	}
	out = append(out, inputs)

	if p := v.Outputs(); p != nil {
		out = append(out, section{title: "Outputs", rows: [][]cell{rowCells(p.Row())}})
	}

	return out
}

func rowCells(r *surface.Row) []cell {
	var cells []cell
	for _, e := range r.Elements() {
		if e.Hidden() {
			continue
		}
		st, styled := e.Style()
		cells = append(cells, cell{
			label:    e.Label(),
			tooltip:  e.Tooltip(),
			style:    st,
			styled:   styled,
			selected: e.HasClass(surface.ClassSelected),
			current:  e.HasClass(surface.ClassCurrent),
		})
	}
	return cells
}

// cellWidth returns the rendered width of a label in terminal cells; the
// geometric exporters scale it by their character width.
func cellWidth(label string) int {
	return runewidth.StringWidth(label)
}
