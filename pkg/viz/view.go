package viz

import (
	"errors"
	"fmt"

	"github.com/vanderheijden86/conceptscope/pkg/model"
	"github.com/vanderheijden86/conceptscope/pkg/surface"
)

// DefaultTopK is the concepts-mode bound applied when the caller does not
// choose one, matching the upstream pipeline's default.
const DefaultTopK = 3

// ErrNoInputsContainer is returned when the mandatory inputs container id is
// missing.
var ErrNoInputsContainer = errors.New("inputs container id is required")

// Options configure a View. The mode is never passed: it is derived once
// from which containers are present (outputs ⇒ concepts mode, else concepts
// ⇒ multi-class, else single-class) and stored immutably.
type Options struct {
	ConceptsContainer string
	InputsContainer   string
	OutputsContainer  string

	// TopK bounds how many concepts show per output context. Positive
	// values bound, 0 picks the mode default (DefaultTopK in concepts
	// mode, unbounded otherwise), None forces unbounded.
	TopK int
}

// View assembles the state store, style engine, ranking engine, panels and
// interaction controller over one snapshot and one surface tree.
type View struct {
	mode       model.Mode
	state      *State
	styler     Styler
	ranker     *Ranker
	controller *Controller

	concepts *ConceptPanel
	inputs   *InputPanel
	outputs  *OutputPanel
}

// New builds a view inside tree and renders the initial state into it.
func New(tree *surface.Tree, data *model.Dataset, opts Options) (*View, error) {
	if opts.InputsContainer == "" {
		return nil, ErrNoInputsContainer
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	mode := model.DeriveMode(opts.ConceptsContainer != "", opts.OutputsContainer != "")
	if mode == model.ModeConcepts && data.Outputs == nil {
		return nil, fmt.Errorf("concepts mode needs an outputs section in the snapshot")
	}

	topK, err := resolveTopK(opts.TopK, mode)
	if err != nil {
		return nil, err
	}

	v := &View{mode: mode}
	v.state = NewState(data, mode, topK)
	v.styler = NewStyler(data.Concepts)
	v.ranker = NewRanker(v.state)

	var panels []Panel
	if mode != model.ModeSingleClass {
		v.concepts = NewConceptPanel(v.state, v.styler, v.ranker, tree.Container(opts.ConceptsContainer))
		panels = append(panels, v.concepts)
	}
	v.inputs = NewInputPanel(v.state, v.styler, tree.Container(opts.InputsContainer))
	panels = append(panels, v.inputs)
	if mode == model.ModeConcepts {
		v.outputs = NewOutputPanel(v.state, v.styler, tree.Container(opts.OutputsContainer))
		panels = append(panels, v.outputs)
	}

	v.controller = NewController(v.state, panels...)
	v.controller.Refresh()
	return v, nil
}

func resolveTopK(k int, mode model.Mode) (int, error) {
	switch {
	case k > 0:
		return k, nil
	case k == 0:
		if mode == model.ModeConcepts {
			return DefaultTopK, nil
		}
		return None, nil
	case k == None:
		return None, nil
	default:
		return 0, fmt.Errorf("topk must be positive, 0 (mode default) or None, got %d", k)
	}
}

// Mode returns the derived view mode.
func (v *View) Mode() model.Mode { return v.mode }

// State returns the selection state.
func (v *View) State() *State { return v.state }

// Styler returns the style engine.
func (v *View) Styler() Styler { return v.styler }

// Ranker returns the ranking engine.
func (v *View) Ranker() *Ranker { return v.ranker }

// Controller returns the interaction controller renderers dispatch into.
func (v *View) Controller() *Controller { return v.controller }

// Concepts returns the concept panel, nil in single-class mode.
func (v *View) Concepts() *ConceptPanel { return v.concepts }

// Inputs returns the input panel.
func (v *View) Inputs() *InputPanel { return v.inputs }

// Outputs returns the output panel, nil outside concepts mode.
func (v *View) Outputs() *OutputPanel { return v.outputs }
