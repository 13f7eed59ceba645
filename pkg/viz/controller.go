package viz

import "github.com/vanderheijden86/conceptscope/pkg/debug"

// Panel is anything that re-derives its visual state from the selection
// state. Every controller transition ends by refreshing all panels present.
type Panel interface {
	Refresh()
}

// Controller implements the hover/click protocol over the selection state.
// Methods take the element index directly; binding them to pointer or key
// events is the renderer's job, which keeps the whole state machine testable
// without a rendering surface.
//
// The protocol's rules:
//   - hover always overrides the visual; unhover falls back to the pin
//   - a pinned concept freezes the output context (output hover/click no-op)
//   - selecting a new output invalidates any concept selection
type Controller struct {
	state  *State
	panels []Panel
}

// NewController wires the state to the panels it refreshes after every
// transition.
func NewController(state *State, panels ...Panel) *Controller {
	return &Controller{state: state, panels: panels}
}

// State exposes the selection state, primarily for renderers and tests.
func (c *Controller) State() *State { return c.state }

// HoverConcept makes id the active concept for the duration of the hover.
func (c *Controller) HoverConcept(id int) {
	debug.Log("hover concept %d", id)
	c.state.hoveredConcept = id
	c.refresh()
}

// UnhoverConcept restores the active concept to the pinned one (or none).
func (c *Controller) UnhoverConcept(id int) {
	debug.Log("unhover concept %d", id)
	c.state.hoveredConcept = c.state.pinnedConcept
	c.refresh()
}

// ClickConcept toggles the pin on id and makes the result active
// immediately.
func (c *Controller) ClickConcept(id int) {
	debug.Log("click concept %d", id)
	if c.state.pinnedConcept == id {
		c.state.pinnedConcept = None
	} else {
		c.state.pinnedConcept = id
	}
	c.state.hoveredConcept = c.state.pinnedConcept
	c.refresh()
}

// HoverOutput makes id the active output and clears any concept selection.
// No-op while a concept is pinned.
func (c *Controller) HoverOutput(id int) {
	if c.state.pinnedConcept != None {
		return
	}
	debug.Log("hover output %d", id)
	c.state.hoveredOutput = id
	c.state.hoveredConcept = None
	c.state.pinnedConcept = None
	c.refresh()
}

// UnhoverOutput restores the active output to the pinned one. No-op while a
// concept is pinned, and no-op on the pinned output itself (a pin is sticky
// against its own unhover).
func (c *Controller) UnhoverOutput(id int) {
	if c.state.pinnedConcept != None {
		return
	}
	if id == c.state.pinnedOutput {
		return
	}
	debug.Log("unhover output %d", id)
	c.state.hoveredOutput = c.state.pinnedOutput
	c.refresh()
}

// ClickOutput toggles the pin on output id, clears any concept selection,
// and re-activates from the new pin. No-op while a concept is pinned.
func (c *Controller) ClickOutput(id int) {
	if c.state.pinnedConcept != None {
		return
	}
	debug.Log("click output %d", id)
	if c.state.pinnedOutput == id {
		c.state.pinnedOutput = None
	} else {
		c.state.pinnedOutput = id
	}
	c.state.pinnedConcept = None
	c.state.hoveredConcept = None
	c.state.hoveredOutput = c.state.pinnedOutput
	c.refresh()
}

// Refresh re-renders every panel from the current state without a
// transition. Used after dataset cosmetics (concept renames) and by
// renderers on first paint.
func (c *Controller) Refresh() {
	c.refresh()
}

func (c *Controller) refresh() {
	for _, p := range c.panels {
		p.Refresh()
	}
}
