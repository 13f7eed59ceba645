// Package viz is the stateful view-controller over an attribution snapshot:
// it owns the hover/pin selection state machine, the pure color-encoding
// function, the top-k concept ranking, and the three panels that materialize
// concepts, input words and output words into a surface tree. It has no
// host-environment dependency; pkg/ui and pkg/export are thin renderers over
// it.
package viz

import "github.com/vanderheijden86/conceptscope/pkg/model"

// None re-exports the nullable-id sentinel for callers that only import viz.
const None = model.None

// State is the single mutable selection state of a view. The hovered ids are
// the *active* ids: whenever no pointer interaction is in flight they mirror
// the pinned ids, so hover can never leave a concept stuck active after the
// pointer leaves.
//
// State is created once per view with mode-dependent defaults and mutated
// only through the Controller.
type State struct {
	mode model.Mode
	data *model.Dataset

	hoveredConcept int
	pinnedConcept  int
	hoveredOutput  int
	pinnedOutput   int

	// topK bounds how many concepts are shown per output context; None
	// means show all.
	topK int
}

// NewState builds the selection state for the given mode.
//
// Initial ids per mode: concepts mode starts with nothing active; multi-class
// starts pinned on output 0 with no concept; single-class starts pinned on
// output 0 and concept 0 (the sole class is implicitly active).
func NewState(data *model.Dataset, mode model.Mode, topK int) *State {
	s := &State{
		mode: mode,
		data: data,
		topK: topK,

		hoveredConcept: None,
		pinnedConcept:  None,
		hoveredOutput:  None,
		pinnedOutput:   None,
	}
	switch mode {
	case model.ModeMultiClass:
		s.pinnedOutput = 0
		s.hoveredOutput = 0
	case model.ModeSingleClass:
		s.pinnedOutput = 0
		s.hoveredOutput = 0
		s.pinnedConcept = 0
		s.hoveredConcept = 0
	}
	return s
}

// Mode returns the view mode the state was created with.
func (s *State) Mode() model.Mode { return s.mode }

// Dataset returns the immutable snapshot backing the view.
func (s *State) Dataset() *model.Dataset { return s.data }

// ActiveConcept returns the concept id currently governing rendering: the
// hovered id, which falls back to the pinned id outside pointer interaction.
func (s *State) ActiveConcept() int { return s.hoveredConcept }

// PinnedConcept returns the pinned concept id, None when nothing is pinned.
func (s *State) PinnedConcept() int { return s.pinnedConcept }

// ActiveOutput returns the output id currently governing rendering.
func (s *State) ActiveOutput() int { return s.hoveredOutput }

// PinnedOutput returns the pinned output id, None when nothing is pinned.
func (s *State) PinnedOutput() int { return s.pinnedOutput }

// TopK returns the concept display bound, None for unbounded.
func (s *State) TopK() int { return s.topK }

// SetTopK changes the concept display bound. Values below 1 mean unbounded.
func (s *State) SetTopK(k int) {
	if k < 1 {
		k = None
	}
	s.topK = k
}
