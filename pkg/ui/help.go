package ui

import (
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# cv — attribution viewer

Words and concepts are tinted by attribution strength: the stronger a
concept contributes, the more saturated the tint.

## Interaction

* Move the cursor (or the mouse) over a **concept** to preview its
  attributions on every input and past output word.
* Press *enter* (or click) to **pin** a concept; pinning freezes the output
  context until the concept is unpinned.
* Hover or pin an **output** word to change the explaining context; only
  already-generated outputs can explain it, so earlier words tint and later
  ones stay plain. Selecting a new output clears any concept selection.
* ` + "`[`/`]`" + ` narrow or widen the top-k concept strip.

## Export

` + "`e`" + ` writes a self-contained HTML page, ` + "`s`" + ` an SVG
snapshot, both reflecting exactly the pinned state on screen.
`

// renderHelp renders the help overlay once per resize; glamour picks a
// light/dark style from the terminal background.
func renderHelp(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(width-4, 80)),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
