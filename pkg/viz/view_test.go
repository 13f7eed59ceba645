package viz

import (
	"errors"
	"testing"

	"github.com/vanderheijden86/conceptscope/pkg/model"
	"github.com/vanderheijden86/conceptscope/pkg/surface"
)

func newConceptsView(t *testing.T, opts Options) *View {
	t.Helper()
	if opts.InputsContainer == "" {
		opts = Options{
			ConceptsContainer: "concepts",
			InputsContainer:   "inputs",
			OutputsContainer:  "outputs",
			TopK:              opts.TopK,
		}
	}
	v, err := New(surface.NewTree(), conceptsDataset(), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v
}

func TestNewDerivesMode(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want model.Mode
	}{
		{"all containers", Options{ConceptsContainer: "c", InputsContainer: "i", OutputsContainer: "o"}, model.ModeConcepts},
		{"no outputs", Options{ConceptsContainer: "c", InputsContainer: "i"}, model.ModeMultiClass},
		{"inputs only", Options{InputsContainer: "i"}, model.ModeSingleClass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(surface.NewTree(), conceptsDataset(), tt.opts)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if v.Mode() != tt.want {
				t.Errorf("mode = %v, want %v", v.Mode(), tt.want)
			}
		})
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	d := conceptsDataset()

	if _, err := New(surface.NewTree(), d, Options{}); !errors.Is(err, ErrNoInputsContainer) {
		t.Errorf("missing inputs container: err = %v, want ErrNoInputsContainer", err)
	}

	noOut := conceptsDataset()
	noOut.Outputs = nil
	_, err := New(surface.NewTree(), noOut, Options{
		ConceptsContainer: "c", InputsContainer: "i", OutputsContainer: "o",
	})
	if err == nil {
		t.Error("concepts mode without an outputs section must fail")
	}

	_, err = New(surface.NewTree(), d, Options{InputsContainer: "i", TopK: -7})
	if err == nil {
		t.Error("negative non-None topk must fail")
	}
}

func TestNewRejectsShortInputTensors(t *testing.T) {
	// A sentence with fewer attribution sets than outputs would make a
	// plain hover after an output selection read past the tensor; it must
	// be rejected at construction, not surface as a panic mid-session.
	d := conceptsDataset()
	d.Inputs[0].Attributions = d.Inputs[0].Attributions[:1]
	_, err := New(surface.NewTree(), d, Options{
		ConceptsContainer: "c", InputsContainer: "i", OutputsContainer: "o",
	})
	if err == nil {
		t.Fatal("truncated input tensor must fail validation")
	}
}

func TestTopKDefaultsPerMode(t *testing.T) {
	v := newConceptsView(t, Options{})
	if got := v.State().TopK(); got != DefaultTopK {
		t.Errorf("concepts mode default topk = %d, want %d", got, DefaultTopK)
	}

	m, err := New(surface.NewTree(), conceptsDataset(), Options{ConceptsContainer: "c", InputsContainer: "i"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.State().TopK(); got != None {
		t.Errorf("multi-class default topk = %d, want unbounded", got)
	}

	v = newConceptsView(t, Options{TopK: None})
	if got := v.State().TopK(); got != None {
		t.Errorf("explicit None topk = %d, want unbounded", got)
	}
}

func TestPanelsPerMode(t *testing.T) {
	v := newConceptsView(t, Options{})
	if v.Concepts() == nil || v.Inputs() == nil || v.Outputs() == nil {
		t.Error("concepts mode must build all three panels")
	}

	m, err := New(surface.NewTree(), conceptsDataset(), Options{ConceptsContainer: "c", InputsContainer: "i"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Concepts() == nil || m.Inputs() == nil {
		t.Error("multi-class mode must build concept and input panels")
	}
	if m.Outputs() != nil {
		t.Error("multi-class mode must not build an output panel")
	}

	s, err := New(surface.NewTree(), conceptsDataset(), Options{InputsContainer: "i"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Concepts() != nil || s.Outputs() != nil {
		t.Error("single-class mode builds only the input panel")
	}
}

// The single-class walkthrough: two concepts, one two-word sentence, concept
// 0 implicitly active from the start.
func TestSingleClassInitialPaint(t *testing.T) {
	d := &model.Dataset{
		Concepts: []model.Concept{
			{Name: "A", Color: model.Color{1, 0, 0}},
			{Name: "B", Color: model.Color{0, 1, 0}},
		},
		Inputs: []model.Sentence{
			{
				Words:        []string{"x", "y"},
				Attributions: [][][]float64{{{0.2, 0.8}, {0.9, 0.1}}},
			},
		},
	}
	v, err := New(surface.NewTree(), d, Options{InputsContainer: "i"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := v.State().ActiveConcept(); got != 0 {
		t.Fatalf("single-class active concept = %d, want 0", got)
	}

	x := v.Inputs().Element(0, 0)
	st, ok := x.Style()
	if !ok {
		t.Fatal("word x must be styled on the initial paint")
	}
	want := v.Styler().Encode(0.2, 0, 1, 0, true, true)
	if st != want {
		t.Errorf("word x style = %+v, want %+v", st, want)
	}
	if got := x.Tooltip(); got != "0.200" {
		t.Errorf("word x tooltip = %q, want %q", got, "0.200")
	}

	y := v.Inputs().Element(0, 1)
	st, _ = y.Style()
	want = v.Styler().Encode(0.9, 0, 1, 0, true, true)
	if st != want {
		t.Errorf("word y style = %+v, want %+v", st, want)
	}
}

func TestConceptPanelRanking(t *testing.T) {
	v := newConceptsView(t, Options{TopK: 2})
	p := v.Concepts()

	// No output context yet: everything visible in dataset order, topk
	// ignored.
	for id := 0; id < 3; id++ {
		if p.Element(id).Hidden() {
			t.Fatalf("concept %d hidden before any output context", id)
		}
	}
	order := p.Row().Elements()
	for id := 0; id < 3; id++ {
		if order[id] != p.Element(id) {
			t.Fatalf("initial order is not dataset order at position %d", id)
		}
	}

	// Pinning output 2 ranks by row 2 column 2: {0.6, 0.6, 0.6} ties rank
	// 0,1 with topk=2, hiding 2.
	v.Controller().ClickOutput(2)
	if p.Element(2).Hidden() != true {
		t.Error("concept 2 should be hidden outside the top 2")
	}
	order = p.Row().Elements()
	if order[0] != p.Element(0) || order[1] != p.Element(1) {
		t.Error("ranked concepts must render first in rank order")
	}

	// Releasing the output restores the full dataset-order strip.
	v.Controller().ClickOutput(2)
	for id := 0; id < 3; id++ {
		if p.Element(id).Hidden() {
			t.Errorf("concept %d still hidden after the context was released", id)
		}
	}
}

func TestConceptPanelSelectionMarker(t *testing.T) {
	v := newConceptsView(t, Options{})
	p := v.Concepts()

	v.Controller().HoverConcept(1)
	for id := 0; id < 3; id++ {
		want := id == 1
		if got := p.Element(id).HasClass(surface.ClassSelected); got != want {
			t.Errorf("concept %d selected = %v, want %v", id, got, want)
		}
	}
	v.Controller().UnhoverConcept(1)
	if p.Element(1).HasClass(surface.ClassSelected) {
		t.Error("selection marker must clear when hover ends without a pin")
	}
}

func TestConceptPanelPicksUpRenames(t *testing.T) {
	v := newConceptsView(t, Options{})
	d := v.State().Dataset()

	d.SetConceptName(0, "orthography")
	d.SetConceptColor(0, model.Color{0, 0, 1})
	v.Controller().Refresh()

	e := v.Concepts().Element(0)
	if got := e.Label(); got != "orthography" {
		t.Errorf("label = %q, want the new name", got)
	}
	st, _ := e.Style()
	if want := v.Styler().SwatchStyle(0); st != want {
		t.Errorf("swatch = %+v, want the recolored %+v", st, want)
	}
}

func TestConceptPanelDescriptions(t *testing.T) {
	d := conceptsDataset()
	d.Concepts[0].Description = "surface form features"
	v, err := New(surface.NewTree(), d, Options{
		ConceptsContainer: "c", InputsContainer: "i", OutputsContainer: "o",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := v.Concepts().Element(0).Tooltip(); got != "surface form features" {
		t.Errorf("tooltip = %q, want the description", got)
	}
	if got := v.Concepts().Element(1).Tooltip(); got != "" {
		t.Errorf("concept without description: tooltip = %q, want empty", got)
	}
}

func TestInputPanelBlankWithoutSelection(t *testing.T) {
	v := newConceptsView(t, Options{})
	e := v.Inputs().Element(0, 0)

	// Concepts mode starts with nothing active: words are encoded at value
	// 0 with the nil concept and carry no tooltip.
	st, ok := e.Style()
	if !ok {
		t.Fatal("input words always carry an encoded style")
	}
	if st.Fill.A != 0 || st.Outline.A != 0 {
		t.Errorf("idle word must be fully transparent, got %+v", st)
	}
	if e.Tooltip() != "" {
		t.Errorf("idle word must have no tooltip, got %q", e.Tooltip())
	}
}

func TestInputPanelTintsActivePair(t *testing.T) {
	v := newConceptsView(t, Options{})
	c := v.Controller()

	c.ClickOutput(1)
	c.HoverConcept(2)

	// Sentence 0, output 1, word 1, concept 2 carries 0.7.
	e := v.Inputs().Element(0, 1)
	st, _ := e.Style()
	want := v.Styler().Encode(0.7, 0, 1, 2, true, true)
	if st != want {
		t.Errorf("style = %+v, want %+v", st, want)
	}
	if got := e.Tooltip(); got != "0.700" {
		t.Errorf("tooltip = %q, want %q", got, "0.700")
	}

	c.UnhoverConcept(2)
	if got := e.Tooltip(); got != "" {
		t.Errorf("tooltip must clear with the concept, got %q", got)
	}
}

func TestOutputPanelMarksPastAndCurrent(t *testing.T) {
	v := newConceptsView(t, Options{})
	p := v.Outputs()
	c := v.Controller()

	c.ClickOutput(2)
	c.HoverConcept(0)

	for i := 0; i < 3; i++ {
		e := p.Element(i)
		if got, want := e.HasClass(surface.ClassPast), i < 2; got != want {
			t.Errorf("output %d past = %v, want %v", i, got, want)
		}
		if got, want := e.HasClass(surface.ClassCurrent), i == 2; got != want {
			t.Errorf("output %d current = %v, want %v", i, got, want)
		}
	}

	// Past outputs styled from row 2 concept 0: column 0 carries 0.7.
	st, ok := p.Element(0).Style()
	if !ok {
		t.Fatal("past output must be styled while a concept is active")
	}
	if want := v.Styler().Encode(0.7, 0, 1, 0, true, true); st != want {
		t.Errorf("past output style = %+v, want %+v", st, want)
	}
	if _, ok := p.Element(2).Style(); ok {
		t.Error("the current output itself must stay unstyled")
	}

	c.UnhoverConcept(0)
	if _, ok := p.Element(0).Style(); ok {
		t.Error("past styling must clear with the concept")
	}
}

func TestRefreshIdempotent(t *testing.T) {
	v := newConceptsView(t, Options{})
	c := v.Controller()
	c.ClickOutput(1)
	c.ClickConcept(0)

	snapshot := func() []surface.VisualStyle {
		var out []surface.VisualStyle
		for _, row := range v.Inputs().Rows() {
			for _, e := range row.Elements() {
				st, _ := e.Style()
				out = append(out, st)
			}
		}
		return out
	}

	before := snapshot()
	c.Refresh()
	c.Refresh()
	after := snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("refresh changed style %d: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestConceptPanelIndexOf(t *testing.T) {
	v := newConceptsView(t, Options{})
	p := v.Concepts()
	if got := p.IndexOf(p.Element(2)); got != 2 {
		t.Errorf("IndexOf = %d, want 2", got)
	}
	if got := p.IndexOf(v.Inputs().Element(0, 0)); got != None {
		t.Errorf("foreign element: IndexOf = %d, want None", got)
	}
}
