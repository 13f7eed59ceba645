package viz

import (
	"fmt"

	"github.com/vanderheijden86/conceptscope/pkg/surface"
)

// OutputPanel materializes the generated output words. Present only in
// concepts mode. Outputs before the active one are "past" (eligible as an
// explaining context) and are the only ones that receive attribution
// styling; the active one is marked "current".
type OutputPanel struct {
	state  *State
	styler Styler

	row      *surface.Row
	elements []*surface.Element // index = output id
}

// NewOutputPanel creates the output word elements inside container.
func NewOutputPanel(state *State, styler Styler, container *surface.Container) *OutputPanel {
	p := &OutputPanel{
		state:  state,
		styler: styler,
		row:    container.AddRow(),
	}
	for _, w := range state.Dataset().Outputs.Words {
		p.elements = append(p.elements, p.row.Append(w))
	}
	return p
}

// Refresh re-marks past/current outputs and tints past ones with the active
// concept's attribution; everything else resets to the bare default.
func (p *OutputPanel) Refresh() {
	d := p.state.Dataset()
	outputID := p.state.ActiveOutput()
	conceptID := p.state.ActiveConcept()

	for i, e := range p.elements {
		past := outputID != None && i < outputID
		e.SetClass(surface.ClassPast, past)
		e.SetClass(surface.ClassCurrent, i == outputID)

		if past && conceptID != None {
			value := d.OutputAttribution(outputID, i, conceptID)
			e.SetStyle(p.styler.Encode(value, 0, 1, conceptID, true, true))
			e.SetTooltip(fmt.Sprintf("%.3f", value))
		} else {
			e.ClearStyle()
			e.ClearTooltip()
		}
	}
}

// Element returns the element for an output id. Used by renderers for hit
// testing and by tests.
func (p *OutputPanel) Element(id int) *surface.Element { return p.elements[id] }

// Row returns the panel's single row.
func (p *OutputPanel) Row() *surface.Row { return p.row }
