package viz

import (
	"fmt"

	"github.com/vanderheijden86/conceptscope/pkg/surface"
)

// InputPanel materializes every input sentence as a row of bare word
// elements and tints them with the active concept's attribution on refresh.
type InputPanel struct {
	state  *State
	styler Styler

	rows     []*surface.Row
	elements [][]*surface.Element // [sentence][word]
}

// NewInputPanel creates the word elements inside container, one row per
// sentence, with no styling beyond the label.
func NewInputPanel(state *State, styler Styler, container *surface.Container) *InputPanel {
	p := &InputPanel{state: state, styler: styler}
	for _, sentence := range state.Dataset().Inputs {
		row := container.AddRow()
		words := make([]*surface.Element, 0, len(sentence.Words))
		for _, w := range sentence.Words {
			words = append(words, row.Append(w))
		}
		p.rows = append(p.rows, row)
		p.elements = append(p.elements, words)
	}
	return p
}

// Refresh restyles every word from the active (output, concept) pair. With
// no active pair the value falls back to 0, which encodes as a fully
// transparent tint; tooltips carry the raw value to 3 decimals and exist
// only while a concept is active.
func (p *InputPanel) Refresh() {
	d := p.state.Dataset()
	outputID := p.state.ActiveOutput()
	conceptID := p.state.ActiveConcept()

	for si, words := range p.elements {
		for wi, e := range words {
			var value float64
			if outputID != None && conceptID != None {
				value = d.InputAttribution(si, outputID, wi, conceptID)
			}
			e.SetStyle(p.styler.Encode(value, 0, 1, conceptID, true, true))
			if conceptID != None {
				e.SetTooltip(fmt.Sprintf("%.3f", value))
			} else {
				e.ClearTooltip()
			}
		}
	}
}

// Element returns the word element at (sentence, word). Used by renderers
// for hit testing and by tests.
func (p *InputPanel) Element(sentence, word int) *surface.Element {
	return p.elements[sentence][word]
}

// Rows returns the sentence rows in order.
func (p *InputPanel) Rows() []*surface.Row { return p.rows }
