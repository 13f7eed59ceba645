package viz

import (
	"github.com/vanderheijden86/conceptscope/pkg/surface"
)

// ConceptPanel materializes one button per concept into its container, in
// dataset order, and reorders/hides them per the current output context's
// top-k ranking on refresh. The elements slice, indexed by concept id, is
// the source of truth for identity; no metadata lives on the elements
// themselves.
type ConceptPanel struct {
	state  *State
	styler Styler
	ranker *Ranker

	row      *surface.Row
	elements []*surface.Element // index = concept id
}

// NewConceptPanel creates the concept buttons inside container.
func NewConceptPanel(state *State, styler Styler, ranker *Ranker, container *surface.Container) *ConceptPanel {
	p := &ConceptPanel{
		state:  state,
		styler: styler,
		ranker: ranker,
		row:    container.AddRow(),
	}
	for id, c := range state.Dataset().Concepts {
		e := p.row.Append(c.Name)
		if c.Description != "" {
			e.SetTooltip(c.Description)
		}
		e.SetStyle(styler.SwatchStyle(id))
		p.elements = append(p.elements, e)
	}
	return p
}

// Refresh re-applies ordering, visibility, swatch styling and the selected
// marker from the current state. With no output context (or no rankable
// attribution data) every concept shows in dataset order, ignoring top-k.
func (p *ConceptPanel) Refresh() {
	concepts := p.state.Dataset().Concepts
	for id, e := range p.elements {
		// Re-read name/color so SetConceptName/SetConceptColor take
		// effect on the next refresh.
		e.SetLabel(concepts[id].Name)
		e.SetStyle(p.styler.SwatchStyle(id))
	}

	ranked := p.ranker.TopK(p.state.ActiveOutput())
	if len(ranked) == 0 {
		p.row.PromoteOrder(p.elements)
		for _, e := range p.elements {
			e.SetHidden(false)
		}
	} else {
		first := make([]*surface.Element, len(ranked))
		visible := make(map[int]struct{}, len(ranked))
		for i, id := range ranked {
			first[i] = p.elements[id]
			visible[id] = struct{}{}
		}
		p.row.PromoteOrder(first)
		for id, e := range p.elements {
			_, ok := visible[id]
			e.SetHidden(!ok)
		}
	}

	active := p.state.ActiveConcept()
	for id, e := range p.elements {
		e.SetClass(surface.ClassSelected, id == active)
	}
}

// Element returns the button for a concept id. Used by renderers for hit
// testing and by tests.
func (p *ConceptPanel) Element(id int) *surface.Element { return p.elements[id] }

// Row returns the panel's single row in current render order.
func (p *ConceptPanel) Row() *surface.Row { return p.row }

// IndexOf maps an element back to its concept id, or None when the element
// is not one of the panel's buttons.
func (p *ConceptPanel) IndexOf(e *surface.Element) int {
	for id, el := range p.elements {
		if el == e {
			return id
		}
	}
	return None
}
