// Package model defines the immutable attribution dataset consumed by the
// viewer: concepts (named, colored latent directions), input sentences with
// per-word attribution tensors, and optionally the generated output sentence
// with its output-explaining-output attributions.
package model

import "fmt"

// None is the sentinel for "no id" wherever a nullable concept or output
// index is expected.
const None = -1

// Color is an RGB triplet with each channel in [0, 1], as emitted by the
// upstream pipeline (matplotlib-style).
type Color [3]float64

// Concept is one latent direction. Index in Dataset.Concepts is its id.
type Concept struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       Color  `json:"color"`
}

// Sentence is one input sentence. Attributions is indexed
// [output id][word index][concept id].
type Sentence struct {
	Words        []string      `json:"words"`
	Attributions [][][]float64 `json:"attributions"`
}

// Outputs holds the generated output sentence and its attributions, indexed
// [row output id][column output id][concept id]. The tensor is stored square;
// only columns j < i are meaningful for rendering (an output is explained in
// terms of already-generated outputs), but the upstream pipeline emits the
// full tensor so the diagonal exists.
type Outputs struct {
	Words        []string      `json:"words"`
	Attributions [][][]float64 `json:"attributions"`
}

// Dataset is the parsed attribution snapshot. It is constructed once and
// never mutated, with the single exception of the concept table cosmetics
// (SetConceptName / SetConceptColor), which exist so callers can relabel
// concepts after discovery without re-running the pipeline.
type Dataset struct {
	Concepts []Concept  `json:"concepts"`
	Inputs   []Sentence `json:"inputs"`
	Outputs  *Outputs   `json:"outputs,omitempty"`
}

// Mode selects which panels the view shows. Derived once at construction
// from container presence and stored immutably.
type Mode int

const (
	// ModeSingleClass shows inputs only; the sole concept is implicitly active.
	ModeSingleClass Mode = iota
	// ModeMultiClass shows a class strip plus inputs.
	ModeMultiClass
	// ModeConcepts shows concepts, inputs and outputs.
	ModeConcepts
)

func (m Mode) String() string {
	switch m {
	case ModeSingleClass:
		return "single-class"
	case ModeMultiClass:
		return "multi-class"
	case ModeConcepts:
		return "concepts"
	default:
		return "unknown"
	}
}

// DeriveMode maps container presence onto a mode: an outputs container means
// concepts mode, otherwise a concepts container means multi-class, otherwise
// single-class.
func DeriveMode(hasConcepts, hasOutputs bool) Mode {
	switch {
	case hasOutputs:
		return ModeConcepts
	case hasConcepts:
		return ModeMultiClass
	default:
		return ModeSingleClass
	}
}

// SetConceptName renames a concept. The id must come from enumerating
// Concepts; out-of-range ids panic.
func (d *Dataset) SetConceptName(id int, name string) {
	d.Concepts[id].Name = name
}

// SetConceptColor recolors a concept. The id must come from enumerating
// Concepts; out-of-range ids panic.
func (d *Dataset) SetConceptColor(id int, c Color) {
	d.Concepts[id].Color = c
}

// NumOutputs returns the number of output words, or 0 when the snapshot has
// no outputs section.
func (d *Dataset) NumOutputs() int {
	if d.Outputs == nil {
		return 0
	}
	return len(d.Outputs.Words)
}

// InputAttribution returns the attribution of conceptID on word wordIdx of
// sentence sentenceIdx for the given output, or 0 when either id is None.
// Ids that do come from the dataset but index a missing tensor slice are a
// pipeline bug and panic.
func (d *Dataset) InputAttribution(sentenceIdx, outputID, wordIdx, conceptID int) float64 {
	if outputID == None || conceptID == None {
		return 0
	}
	return d.Inputs[sentenceIdx].Attributions[outputID][wordIdx][conceptID]
}

// OutputAttribution returns the attribution of conceptID on output column j
// explaining output row i.
func (d *Dataset) OutputAttribution(row, col, conceptID int) float64 {
	return d.Outputs.Attributions[row][col][conceptID]
}

// Validate checks the cross-sectional shape of the snapshot: every
// attribution vector must have one entry per concept, every sentence tensor
// one row per word, and, when an outputs section is present, one attribution
// set per output for every sentence. It reports the first inconsistency
// found.
func (d *Dataset) Validate() error {
	if len(d.Concepts) == 0 {
		return fmt.Errorf("snapshot has no concepts")
	}
	nc := len(d.Concepts)
	for si, s := range d.Inputs {
		if len(s.Words) == 0 {
			return fmt.Errorf("input sentence %d has no words", si)
		}
		if d.Outputs != nil && len(s.Attributions) != len(d.Outputs.Words) {
			return fmt.Errorf("input sentence %d: attributions for %d outputs, want %d",
				si, len(s.Attributions), len(d.Outputs.Words))
		}
		for oi, rows := range s.Attributions {
			if len(rows) != len(s.Words) {
				return fmt.Errorf("input sentence %d output %d: %d attribution rows for %d words",
					si, oi, len(rows), len(s.Words))
			}
			for wi, vec := range rows {
				if len(vec) != nc {
					return fmt.Errorf("input sentence %d output %d word %d: %d attribution values for %d concepts",
						si, oi, wi, len(vec), nc)
				}
			}
		}
	}
	if d.Outputs != nil {
		n := len(d.Outputs.Words)
		if len(d.Outputs.Attributions) != n {
			return fmt.Errorf("outputs: %d attribution rows for %d words", len(d.Outputs.Attributions), n)
		}
		for i, row := range d.Outputs.Attributions {
			if len(row) != n {
				return fmt.Errorf("outputs row %d: %d columns for %d words", i, len(row), n)
			}
			for j, vec := range row {
				if len(vec) != nc {
					return fmt.Errorf("outputs row %d column %d: %d attribution values for %d concepts",
						i, j, len(vec), nc)
				}
			}
		}
	}
	return nil
}
