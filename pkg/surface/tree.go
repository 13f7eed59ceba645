// Package surface is the retained element tree the panels render into: a
// handful of named containers, each holding rows of labelled elements that
// carry classes, a visual style and an optional tooltip. It is the only
// shared mutable structure besides the selection state, and it is deliberately
// renderer-agnostic: the TUI, the HTML exporter and the snapshot exporter all
// read the same tree.
package surface

// RGBA is a display color with 8-bit channels and a floating alpha. Alpha
// stays a float so unnormalized or degenerate encoding results (including
// NaN from zero-width bounds) flow through without clamping or panicking;
// renderers decide how to composite them.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// VisualStyle is the opaque style descriptor produced by the style engine:
// an interior fill and an outline, each with its own intensity.
type VisualStyle struct {
	Fill    RGBA
	Outline RGBA
}

// Class is a boolean visual marker on an element ("selected", "past", ...).
type Class string

const (
	// ClassSelected marks the element matching the active concept.
	ClassSelected Class = "selected"
	// ClassPast marks outputs already generated relative to the active one.
	ClassPast Class = "past"
	// ClassCurrent marks the active output itself.
	ClassCurrent Class = "current"
)

// Element is a single visual node: one concept button or one word.
type Element struct {
	label   string
	tooltip string
	hidden  bool
	classes map[Class]struct{}
	style   VisualStyle
	styled  bool
}

// Label returns the element's visible text.
func (e *Element) Label() string { return e.label }

// SetLabel replaces the element's visible text.
func (e *Element) SetLabel(s string) { e.label = s }

// SetStyle assigns a visual style to the element.
func (e *Element) SetStyle(s VisualStyle) {
	e.style = s
	e.styled = true
}

// ClearStyle resets the element to its bare default appearance.
func (e *Element) ClearStyle() {
	e.style = VisualStyle{}
	e.styled = false
}

// Style returns the current style and whether one is set.
func (e *Element) Style() (VisualStyle, bool) { return e.style, e.styled }

// SetTooltip attaches (replacing any prior) a tooltip.
func (e *Element) SetTooltip(s string) { e.tooltip = s }

// ClearTooltip removes the tooltip entirely.
func (e *Element) ClearTooltip() { e.tooltip = "" }

// Tooltip returns the current tooltip, empty when none.
func (e *Element) Tooltip() string { return e.tooltip }

// SetClass adds or removes a class marker.
func (e *Element) SetClass(c Class, on bool) {
	if on {
		e.classes[c] = struct{}{}
	} else {
		delete(e.classes, c)
	}
}

// HasClass reports whether the class marker is set.
func (e *Element) HasClass(c Class) bool {
	_, ok := e.classes[c]
	return ok
}

// SetHidden toggles element visibility without removing it from the tree.
func (e *Element) SetHidden(h bool) { e.hidden = h }

// Hidden reports whether the element is hidden.
func (e *Element) Hidden() bool { return e.hidden }

// Row is an ordered run of elements rendered on one line (one sentence, or
// the single strip of concept buttons).
type Row struct {
	elements []*Element
}

// Append creates a new element with the given label at the end of the row.
func (r *Row) Append(label string) *Element {
	e := &Element{label: label, classes: make(map[Class]struct{})}
	r.elements = append(r.elements, e)
	return e
}

// Elements returns the row's elements in render order. Callers must not
// mutate the returned slice.
func (r *Row) Elements() []*Element { return r.elements }

// Len returns the number of elements in the row.
func (r *Row) Len() int { return len(r.elements) }

// PromoteOrder reorders the row so the given elements render first, in the
// given order; elements not listed keep their relative order and trail.
// Elements not belonging to the row are ignored. The reorder is stable, which
// is what keeps rank ties reproducible on screen.
func (r *Row) PromoteOrder(first []*Element) {
	promoted := make(map[*Element]struct{}, len(first))
	ordered := make([]*Element, 0, len(r.elements))
	for _, e := range first {
		if containsElement(r.elements, e) {
			promoted[e] = struct{}{}
			ordered = append(ordered, e)
		}
	}
	for _, e := range r.elements {
		if _, ok := promoted[e]; !ok {
			ordered = append(ordered, e)
		}
	}
	r.elements = ordered
}

func containsElement(els []*Element, target *Element) bool {
	for _, e := range els {
		if e == target {
			return true
		}
	}
	return false
}

// Container is a named region of the tree: the concepts strip, the inputs
// block or the outputs strip.
type Container struct {
	id   string
	rows []*Row
}

// ID returns the container identifier it was created with.
func (c *Container) ID() string { return c.id }

// AddRow appends an empty row to the container.
func (c *Container) AddRow() *Row {
	r := &Row{}
	c.rows = append(c.rows, r)
	return r
}

// Rows returns the container's rows in render order.
func (c *Container) Rows() []*Row { return c.rows }

// Tree is the root of the element tree. Containers are created on first
// access and keep their creation order for rendering.
type Tree struct {
	containers map[string]*Container
	order      []string
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{containers: make(map[string]*Container)}
}

// Container returns the container with the given id, creating it on first
// use. An empty id is invalid and returns nil, which lets callers thread
// "this panel is absent" through naturally.
func (t *Tree) Container(id string) *Container {
	if id == "" {
		return nil
	}
	if c, ok := t.containers[id]; ok {
		return c
	}
	c := &Container{id: id}
	t.containers[id] = c
	t.order = append(t.order, id)
	return c
}

// Containers returns all containers in creation order.
func (t *Tree) Containers() []*Container {
	out := make([]*Container, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.containers[id])
	}
	return out
}
