package surface

import "testing"

func TestTreeContainers(t *testing.T) {
	tree := NewTree()

	a := tree.Container("concepts")
	if a == nil || a.ID() != "concepts" {
		t.Fatalf("Container returned %v", a)
	}
	if tree.Container("concepts") != a {
		t.Error("same id must return the same container")
	}
	if tree.Container("") != nil {
		t.Error("empty id must return nil")
	}

	tree.Container("inputs")
	tree.Container("outputs")
	got := tree.Containers()
	want := []string{"concepts", "inputs", "outputs"}
	if len(got) != len(want) {
		t.Fatalf("Containers returned %d entries, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.ID() != want[i] {
			t.Errorf("container %d = %q, want %q", i, c.ID(), want[i])
		}
	}
}

func TestRowAppendKeepsOrder(t *testing.T) {
	tree := NewTree()
	row := tree.Container("c").AddRow()
	labels := []string{"one", "two", "three"}
	for _, l := range labels {
		row.Append(l)
	}
	if row.Len() != 3 {
		t.Fatalf("Len = %d, want 3", row.Len())
	}
	for i, e := range row.Elements() {
		if e.Label() != labels[i] {
			t.Errorf("element %d = %q, want %q", i, e.Label(), labels[i])
		}
	}
}

func TestPromoteOrder(t *testing.T) {
	row := (&Container{}).AddRow()
	a := row.Append("a")
	b := row.Append("b")
	c := row.Append("c")
	d := row.Append("d")

	row.PromoteOrder([]*Element{c, a})
	want := []*Element{c, a, b, d}
	for i, e := range row.Elements() {
		if e != want[i] {
			t.Fatalf("position %d = %q, want %q", i, e.Label(), want[i].Label())
		}
	}

	// Foreign elements are ignored; the remainder keeps relative order.
	foreign := &Element{label: "x"}
	row.PromoteOrder([]*Element{foreign, d})
	want = []*Element{d, c, a, b}
	for i, e := range row.Elements() {
		if e != want[i] {
			t.Fatalf("after second promote, position %d = %q, want %q", i, e.Label(), want[i].Label())
		}
	}

	row.PromoteOrder(nil)
	if row.Len() != 4 {
		t.Errorf("empty promote must not drop elements, len = %d", row.Len())
	}
}

func TestElementStyleLifecycle(t *testing.T) {
	row := (&Container{}).AddRow()
	e := row.Append("w")

	if _, ok := e.Style(); ok {
		t.Error("fresh element must report no style")
	}
	st := VisualStyle{Fill: RGBA{R: 10, A: 0.5}, Outline: RGBA{R: 10, A: 1}}
	e.SetStyle(st)
	got, ok := e.Style()
	if !ok || got != st {
		t.Errorf("Style = %+v/%v, want %+v/true", got, ok, st)
	}
	e.ClearStyle()
	if _, ok := e.Style(); ok {
		t.Error("ClearStyle must reset the styled flag")
	}
}

func TestElementClassesAndVisibility(t *testing.T) {
	row := (&Container{}).AddRow()
	e := row.Append("w")

	e.SetClass(ClassSelected, true)
	e.SetClass(ClassPast, true)
	e.SetClass(ClassPast, false)
	if !e.HasClass(ClassSelected) || e.HasClass(ClassPast) {
		t.Errorf("classes: selected=%v past=%v", e.HasClass(ClassSelected), e.HasClass(ClassPast))
	}

	e.SetHidden(true)
	if !e.Hidden() {
		t.Error("SetHidden(true) not reflected")
	}

	e.SetTooltip("0.123")
	if e.Tooltip() != "0.123" {
		t.Errorf("tooltip = %q", e.Tooltip())
	}
	e.ClearTooltip()
	if e.Tooltip() != "" {
		t.Errorf("tooltip after clear = %q", e.Tooltip())
	}
}
