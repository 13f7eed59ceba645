package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/conceptscope/pkg/model"
	"github.com/vanderheijden86/conceptscope/pkg/surface"
	"github.com/vanderheijden86/conceptscope/pkg/viz"
)

// layout renders the frame and rebuilds the mouse hit regions. Called from
// Update after every state change; View only returns the cached frame, so a
// frame and its hit regions can never drift apart.
func (m *Model) layout() {
	if m.showHelp {
		if m.helpView == "" {
			m.helpView = renderHelp(max(m.width, 40))
		}
		m.frame = m.helpView
		m.hits = nil
		return
	}

	var lines []string
	m.hits = m.hits[:0]

	lines = append(lines, m.headerLine(), "")

	if p := m.view.Concepts(); p != nil {
		title := "Concepts"
		if m.view.Mode() == model.ModeMultiClass {
			title = "Classes"
		}
		lines = append(lines, m.sectionTitle(title, panelConcepts))
		lines = m.renderConceptRow(lines, p)
		lines = append(lines, "")
	}

	lines = append(lines, m.sectionTitle("Inputs", panelInputs))
	lines = m.renderInputRows(lines)
	lines = append(lines, "")

	if p := m.view.Outputs(); p != nil {
		lines = append(lines, m.sectionTitle("Outputs", panelOutputs))
		lines = m.renderOutputRow(lines, p)
		lines = append(lines, "")
	}

	lines = append(lines, m.statusLine())
	if m.width > 0 {
		lines = append(lines, m.help.View(m.keys))
	}

	m.frame = strings.Join(lines, "\n")
}

func (m *Model) headerLine() string {
	title := m.opts.Title
	if title == "" {
		title = "cv"
	}
	info := fmt.Sprintf("  %s · %d concepts · top-k %s", m.view.Mode(), len(m.data.Concepts), m.topKLabel())
	return m.theme.Header.Render(title) + m.theme.Hint.Render(info)
}

func (m *Model) sectionTitle(title string, p panelID) string {
	if m.focus == p {
		return m.theme.SectionOn.Render(title)
	}
	return m.theme.Section.Render(title)
}

func (m *Model) renderConceptRow(lines []string, p *viz.ConceptPanel) []string {
	y := len(lines)
	var b strings.Builder
	x := 0
	for _, e := range p.Row().Elements() {
		if e.Hidden() {
			continue
		}
		id := p.IndexOf(e)
		cell := m.renderElement(e, m.focus == panelConcepts && id == m.conceptCursor)
		w := lipgloss.Width(cell)
		m.hits = append(m.hits, hit{y: y, x0: x, x1: x + w, panel: panelConcepts, a: id})
		b.WriteString(cell)
		b.WriteString(" ")
		x += w + 1
	}
	return append(lines, b.String())
}

func (m *Model) renderInputRows(lines []string) []string {
	for si, row := range m.view.Inputs().Rows() {
		y := len(lines)
		var b strings.Builder
		x := 0
		for wi, e := range row.Elements() {
			focused := m.focus == panelInputs && si == m.sentCursor && wi == m.wordCursor
			cell := m.renderElement(e, focused)
			w := lipgloss.Width(cell)
			m.hits = append(m.hits, hit{y: y, x0: x, x1: x + w, panel: panelInputs, a: si, b: wi})
			b.WriteString(cell)
			b.WriteString(" ")
			x += w + 1
		}
		lines = append(lines, b.String())
	}
	return lines
}

func (m *Model) renderOutputRow(lines []string, p *viz.OutputPanel) []string {
	y := len(lines)
	var b strings.Builder
	x := 0
	for id, e := range p.Row().Elements() {
		cell := m.renderElement(e, m.focus == panelOutputs && id == m.outputCursor)
		w := lipgloss.Width(cell)
		m.hits = append(m.hits, hit{y: y, x0: x, x1: x + w, panel: panelOutputs, a: id})
		b.WriteString(cell)
		b.WriteString(" ")
		x += w + 1
	}
	return append(lines, b.String())
}

func (m *Model) renderElement(e *surface.Element, focused bool) string {
	st, styled := e.Style()
	s := m.theme.WordStyle(st, styled)
	if e.HasClass(surface.ClassSelected) {
		s = s.Bold(true).Underline(true)
	}
	if e.HasClass(surface.ClassCurrent) {
		s = s.Italic(true)
	}
	if focused {
		s = s.Reverse(true)
	}
	return s.Render(e.Label())
}

func (m *Model) statusLine() string {
	if m.status != "" {
		return m.theme.Status.Render(m.status)
	}

	var parts []string
	if e := m.elementAtCursor(); e != nil && e.Tooltip() != "" {
		parts = append(parts, m.theme.StatusKey.Render(e.Label())+m.theme.Status.Render(" "+e.Tooltip()))
	}
	if c := m.view.State().ActiveConcept(); c != viz.None && c < len(m.data.Concepts) {
		parts = append(parts, m.theme.Status.Render("concept: "+m.data.Concepts[c].Name))
	}
	if m.opts.Config.UI.ShowStats && m.stats.Count > 0 {
		parts = append(parts, m.theme.Status.Render(
			fmt.Sprintf("attr %d vals · median %.3f · max %.3f", m.stats.Count, m.stats.Median, m.stats.Max)))
	}
	if len(parts) == 0 {
		return m.theme.Hint.Render("? for help")
	}
	return strings.Join(parts, m.theme.Hint.Render("  ·  "))
}
