// Package testutil generates synthetic attribution snapshots. All generators
// are seeded for deterministic, reproducible output.
package testutil

import (
	"fmt"
	"math/rand"

	"github.com/vanderheijden86/conceptscope/pkg/model"
)

// GeneratorConfig controls snapshot generation.
type GeneratorConfig struct {
	Seed      int64 // Random seed for determinism
	Concepts  int   // Number of concepts (default 3)
	Sentences int   // Number of input sentences (default 2)
	MaxWords  int   // Max words per sentence (default 6)
	Outputs   int   // Number of output words; 0 omits the outputs section
}

// DefaultConfig returns a config suitable for most tests: multi-class shape
// with a handful of words.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:      42,
		Concepts:  3,
		Sentences: 2,
		MaxWords:  6,
	}
}

// Generator creates snapshot fixtures.
type Generator struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

// New creates a generator from the config, filling zero fields with defaults.
func New(cfg GeneratorConfig) *Generator {
	def := DefaultConfig()
	if cfg.Concepts == 0 {
		cfg.Concepts = def.Concepts
	}
	if cfg.Sentences == 0 {
		cfg.Sentences = def.Sentences
	}
	if cfg.MaxWords == 0 {
		cfg.MaxWords = def.MaxWords
	}
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}
}

// palette mirrors the tab10-style colors the upstream pipeline assigns to
// discovered concepts.
var palette = []model.Color{
	{0.12, 0.47, 0.71},
	{1.00, 0.50, 0.05},
	{0.17, 0.63, 0.17},
	{0.84, 0.15, 0.16},
	{0.58, 0.40, 0.74},
	{0.55, 0.34, 0.29},
	{0.89, 0.47, 0.76},
	{0.50, 0.50, 0.50},
	{0.74, 0.74, 0.13},
	{0.09, 0.75, 0.81},
}

var words = []string{
	"the", "cat", "sat", "on", "a", "warm", "mat", "while", "rain",
	"fell", "softly", "outside", "and", "nothing", "else", "moved",
}

// Snapshot builds a dataset with the configured shape. Attribution values are
// uniform in [0, 1), so they sit inside the default normalization bounds.
func (g *Generator) Snapshot() *model.Dataset {
	d := &model.Dataset{}

	for i := 0; i < g.cfg.Concepts; i++ {
		d.Concepts = append(d.Concepts, model.Concept{
			Name:  fmt.Sprintf("concept #%d", i),
			Color: palette[i%len(palette)],
		})
	}

	rows := g.cfg.Outputs
	if rows == 0 {
		// Without outputs there is still one implicit explanation row
		// (the single pinned context).
		rows = 1
	}

	for s := 0; s < g.cfg.Sentences; s++ {
		n := 1 + g.rng.Intn(g.cfg.MaxWords)
		sent := model.Sentence{}
		for w := 0; w < n; w++ {
			sent.Words = append(sent.Words, words[g.rng.Intn(len(words))])
		}
		sent.Attributions = g.tensor(rows, n)
		d.Inputs = append(d.Inputs, sent)
	}

	if g.cfg.Outputs > 0 {
		out := &model.Outputs{}
		for i := 0; i < g.cfg.Outputs; i++ {
			out.Words = append(out.Words, words[g.rng.Intn(len(words))])
		}
		out.Attributions = g.tensor(g.cfg.Outputs, g.cfg.Outputs)
		d.Outputs = out
	}

	return d
}

// tensor builds a [rows][cols][concepts] attribution tensor.
func (g *Generator) tensor(rows, cols int) [][][]float64 {
	t := make([][][]float64, rows)
	for i := range t {
		t[i] = make([][]float64, cols)
		for j := range t[i] {
			vec := make([]float64, g.cfg.Concepts)
			for k := range vec {
				vec[k] = g.rng.Float64()
			}
			t[i][j] = vec
		}
	}
	return t
}
