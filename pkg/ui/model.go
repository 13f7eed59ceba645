// Package ui provides the terminal user interface for cv: a Bubble Tea
// program over the view-controller in pkg/viz. All interaction semantics
// live in the controller; this package only translates key and mouse events
// into controller calls at the boundary and renders the surface tree with
// lipgloss.
package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/conceptscope/pkg/config"
	"github.com/vanderheijden86/conceptscope/pkg/debug"
	"github.com/vanderheijden86/conceptscope/pkg/export"
	"github.com/vanderheijden86/conceptscope/pkg/model"
	"github.com/vanderheijden86/conceptscope/pkg/surface"
	"github.com/vanderheijden86/conceptscope/pkg/viz"
	"github.com/vanderheijden86/conceptscope/pkg/watcher"
)

// panelID identifies which panel holds keyboard focus.
type panelID int

const (
	panelConcepts panelID = iota
	panelInputs
	panelOutputs
)

// hit is one hoverable screen region recorded during layout, used for mouse
// hit testing. For inputs a is the sentence index and b the word index; for
// the other panels a is the concept/output id.
type hit struct {
	y, x0, x1 int
	panel     panelID
	a, b      int
}

// Options configure the TUI.
type Options struct {
	Title      string
	VizOptions viz.Options
	Config     config.Config
	Watcher    *watcher.Watcher
	// Reload re-reads the snapshot from its source; nil disables the
	// reload key and live reload.
	Reload func() (*model.Dataset, error)
}

// Model is the Bubble Tea model for the viewer.
type Model struct {
	opts  Options
	data  *model.Dataset
	tree  *surface.Tree
	view  *viz.View
	stats model.Stats

	theme Theme
	keys  keyMap
	help  help.Model

	focus         panelID
	conceptCursor int
	outputCursor  int
	sentCursor    int
	wordCursor    int

	width, height int
	showHelp      bool
	helpView      string
	status        string

	frame    string
	hits     []hit
	hovering *hit
}

type fileChangedMsg struct{}

type reloadedMsg struct {
	data *model.Dataset
	err  error
}

// New builds the TUI over a fresh surface tree and view.
func New(data *model.Dataset, opts Options) (*Model, error) {
	tree := surface.NewTree()
	view, err := viz.New(tree, data, opts.VizOptions)
	if err != nil {
		return nil, err
	}

	m := &Model{
		opts:  opts,
		data:  data,
		tree:  tree,
		view:  view,
		stats: model.Summary(data),
		theme: DefaultTheme(lipgloss.DefaultRenderer()),
		keys:  defaultKeyMap(),
		help:  help.New(),
		focus: firstPanel(view),
	}
	m.syncCursors()
	m.layout()
	return m, nil
}

func firstPanel(v *viz.View) panelID {
	if v.Concepts() != nil {
		return panelConcepts
	}
	return panelInputs
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.opts.Watcher != nil {
		return waitForChange(m.opts.Watcher)
	}
	return nil
}

func waitForChange(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Changed()
		return fileChangedMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.helpView = ""
		m.layout()
		return m, nil

	case fileChangedMsg:
		cmds := []tea.Cmd{waitForChange(m.opts.Watcher)}
		if m.opts.Reload != nil {
			cmds = append(cmds, m.reloadCmd())
		}
		return m, tea.Batch(cmds...)

	case reloadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("reload failed: %v", msg.err)
		} else {
			m.applyReload(msg.data)
		}
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.MouseMsg:
		m.updateMouse(msg)
		m.layout()
		return m, nil
	}
	return m, nil
}

func (m *Model) reloadCmd() tea.Cmd {
	reload := m.opts.Reload
	return func() tea.Msg {
		d, err := reload()
		return reloadedMsg{data: d, err: err}
	}
}

// applyReload swaps in a re-read snapshot and replays the pinned selection
// where the new data still has those ids.
func (m *Model) applyReload(data *model.Dataset) {
	pinnedConcept := m.view.State().PinnedConcept()
	pinnedOutput := m.view.State().PinnedOutput()

	tree := surface.NewTree()
	view, err := viz.New(tree, data, m.opts.VizOptions)
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	m.data = data
	m.tree = tree
	m.view = view
	m.stats = model.Summary(data)

	ctrl := view.Controller()
	if pinnedOutput != viz.None && pinnedOutput < data.NumOutputs() &&
		pinnedOutput != view.State().PinnedOutput() {
		ctrl.ClickOutput(pinnedOutput)
	}
	if pinnedConcept != viz.None && pinnedConcept < len(data.Concepts) &&
		pinnedConcept != view.State().PinnedConcept() {
		ctrl.ClickConcept(pinnedConcept)
	}

	m.syncCursors()
	m.status = fmt.Sprintf("snapshot reloaded at %s", time.Now().Format("15:04:05"))
	debug.Log("snapshot reloaded: %d concepts, %d sentences", len(data.Concepts), len(data.Inputs))
}

func (m *Model) syncCursors() {
	m.conceptCursor = 0
	m.sentCursor, m.wordCursor = 0, 0
	m.outputCursor = 0
	if o := m.view.State().PinnedOutput(); o != viz.None {
		m.outputCursor = o
	}
	if m.panelPresent(m.focus) {
		return
	}
	m.focus = firstPanel(m.view)
}

func (m *Model) panelPresent(p panelID) bool {
	switch p {
	case panelConcepts:
		return m.view.Concepts() != nil
	case panelOutputs:
		return m.view.Outputs() != nil
	default:
		return true
	}
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		default:
			m.showHelp = false
			m.layout()
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.NextPanel):
		m.cyclePanel(1)

	case key.Matches(msg, m.keys.PrevPanel):
		m.cyclePanel(-1)

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Select):
		m.selectAtCursor()

	case key.Matches(msg, m.keys.Unhover):
		m.unhoverCursor()

	case key.Matches(msg, m.keys.TopKUp):
		m.bumpTopK(1)

	case key.Matches(msg, m.keys.TopKDown):
		m.bumpTopK(-1)

	case key.Matches(msg, m.keys.Yank):
		m.yank()

	case key.Matches(msg, m.keys.Export):
		m.exportArtifact("html")

	case key.Matches(msg, m.keys.Snapshot):
		m.exportArtifact("svg")

	case key.Matches(msg, m.keys.Reload):
		if m.opts.Reload != nil {
			return m, m.reloadCmd()
		}
		m.status = "no reloadable source"
	}

	m.layout()
	return m, nil
}

// cyclePanel moves focus to the next present panel, restoring the departed
// panel's hover to its pin on the way out.
func (m *Model) cyclePanel(dir int) {
	m.leaveFocus()
	order := []panelID{panelConcepts, panelInputs, panelOutputs}
	idx := int(m.focus)
	for range order {
		idx = (idx + dir + len(order)) % len(order)
		if m.panelPresent(order[idx]) {
			m.focus = order[idx]
			return
		}
	}
}

func (m *Model) leaveFocus() {
	ctrl := m.view.Controller()
	switch m.focus {
	case panelConcepts:
		ctrl.UnhoverConcept(m.conceptCursor)
	case panelOutputs:
		ctrl.UnhoverOutput(m.outputCursor)
	}
}

func (m *Model) moveCursor(dir int) {
	ctrl := m.view.Controller()
	switch m.focus {
	case panelConcepts:
		n := len(m.data.Concepts)
		if n == 0 {
			return
		}
		m.conceptCursor = clampWrap(m.conceptCursor+dir, n)
		ctrl.HoverConcept(m.conceptCursor)

	case panelOutputs:
		n := m.data.NumOutputs()
		if n == 0 {
			return
		}
		m.outputCursor = clampWrap(m.outputCursor+dir, n)
		ctrl.HoverOutput(m.outputCursor)

	case panelInputs:
		m.moveWordCursor(dir)
	}
}

// moveWordCursor walks the flattened word sequence across sentences.
func (m *Model) moveWordCursor(dir int) {
	if len(m.data.Inputs) == 0 {
		return
	}
	s, w := m.sentCursor, m.wordCursor+dir
	for {
		if w < 0 {
			s--
			if s < 0 {
				s = len(m.data.Inputs) - 1
			}
			w = len(m.data.Inputs[s].Words) - 1
		} else if w >= len(m.data.Inputs[s].Words) {
			s++
			if s >= len(m.data.Inputs) {
				s = 0
			}
			w = 0
		} else {
			break
		}
	}
	m.sentCursor, m.wordCursor = s, w
}

func clampWrap(v, n int) int {
	if v < 0 {
		return n - 1
	}
	if v >= n {
		return 0
	}
	return v
}

func (m *Model) selectAtCursor() {
	ctrl := m.view.Controller()
	switch m.focus {
	case panelConcepts:
		ctrl.ClickConcept(m.conceptCursor)
	case panelOutputs:
		wasPinned := m.view.State().PinnedConcept() != viz.None
		ctrl.ClickOutput(m.outputCursor)
		if wasPinned {
			m.status = "unpin the concept first to change output"
		}
	}
}

func (m *Model) unhoverCursor() {
	ctrl := m.view.Controller()
	switch m.focus {
	case panelConcepts:
		ctrl.UnhoverConcept(m.conceptCursor)
	case panelOutputs:
		ctrl.UnhoverOutput(m.outputCursor)
	}
}

func (m *Model) bumpTopK(dir int) {
	st := m.view.State()
	k := st.TopK()
	if k == viz.None {
		k = len(m.data.Concepts)
	}
	k += dir
	switch {
	case k >= len(m.data.Concepts):
		st.SetTopK(viz.None)
	case k < 1:
		// Narrowing stops at one concept; it must not wrap to unbounded.
		st.SetTopK(1)
	default:
		st.SetTopK(k)
	}
	m.view.Controller().Refresh()
	m.status = fmt.Sprintf("top-k: %s", m.topKLabel())
}

func (m *Model) topKLabel() string {
	if k := m.view.State().TopK(); k != viz.None {
		return fmt.Sprintf("%d", k)
	}
	return "all"
}

// yank copies the attribution value under the cursor to the clipboard.
func (m *Model) yank() {
	e := m.elementAtCursor()
	if e == nil || e.Tooltip() == "" {
		m.status = "nothing to copy here"
		return
	}
	if err := clipboard.WriteAll(e.Tooltip()); err != nil {
		m.status = fmt.Sprintf("clipboard: %v", err)
		return
	}
	m.status = fmt.Sprintf("copied %s", e.Tooltip())
}

func (m *Model) elementAtCursor() *surface.Element {
	switch m.focus {
	case panelConcepts:
		if p := m.view.Concepts(); p != nil {
			return p.Element(m.conceptCursor)
		}
	case panelOutputs:
		if p := m.view.Outputs(); p != nil {
			return p.Element(m.outputCursor)
		}
	case panelInputs:
		if len(m.data.Inputs) > 0 {
			return m.view.Inputs().Element(m.sentCursor, m.wordCursor)
		}
	}
	return nil
}

func (m *Model) exportArtifact(format string) {
	stamp := time.Now().Format("20060102-150405")
	dir := m.opts.Config.Export.Dir
	if dir == "" {
		dir = "."
	}
	var err error
	var path string
	switch format {
	case "html":
		path = fmt.Sprintf("%s/cv-%s.html", dir, stamp)
		err = export.SaveHTML(path, m.view, export.HTMLOptions{Title: m.opts.Title, Stats: &m.stats})
	default:
		path = fmt.Sprintf("%s/cv-%s.%s", dir, stamp, format)
		err = export.SaveSnapshot(m.view, export.SnapshotOptions{Path: path, Format: format, Title: m.opts.Title})
	}
	if err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("exported %s", path)
}

// updateMouse translates pointer events into the controller protocol: motion
// hovers the region under the pointer, leaving a region unhovers it, and a
// left press clicks it.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	target := m.hitAt(msg.X, msg.Y)

	if msg.Action == tea.MouseActionMotion {
		if sameHit(m.hovering, target) {
			return
		}
		m.leaveHover()
		m.enterHover(target)
		return
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && target != nil {
		ctrl := m.view.Controller()
		switch target.panel {
		case panelConcepts:
			m.focus = panelConcepts
			m.conceptCursor = target.a
			ctrl.ClickConcept(target.a)
		case panelOutputs:
			m.focus = panelOutputs
			m.outputCursor = target.a
			ctrl.ClickOutput(target.a)
		case panelInputs:
			m.focus = panelInputs
			m.sentCursor, m.wordCursor = target.a, target.b
		}
	}
}

func (m *Model) leaveHover() {
	if m.hovering == nil {
		return
	}
	ctrl := m.view.Controller()
	switch m.hovering.panel {
	case panelConcepts:
		ctrl.UnhoverConcept(m.hovering.a)
	case panelOutputs:
		ctrl.UnhoverOutput(m.hovering.a)
	}
	m.hovering = nil
}

func (m *Model) enterHover(target *hit) {
	m.hovering = target
	if target == nil {
		return
	}
	ctrl := m.view.Controller()
	switch target.panel {
	case panelConcepts:
		m.conceptCursor = target.a
		ctrl.HoverConcept(target.a)
	case panelOutputs:
		m.outputCursor = target.a
		ctrl.HoverOutput(target.a)
	case panelInputs:
		m.sentCursor, m.wordCursor = target.a, target.b
	}
}

func (m *Model) hitAt(x, y int) *hit {
	for i := range m.hits {
		h := &m.hits[i]
		if h.y == y && x >= h.x0 && x < h.x1 {
			return h
		}
	}
	return nil
}

func sameHit(a, b *hit) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.panel == b.panel && a.a == b.a && a.b == b.b
}

// View implements tea.Model; the frame is laid out in Update so mouse hit
// regions always match what is on screen.
func (m *Model) View() string {
	return m.frame
}
