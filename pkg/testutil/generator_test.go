package testutil

import (
	"testing"

	"github.com/vanderheijden86/conceptscope/pkg/model"
)

func TestSnapshotShapeIsValid(t *testing.T) {
	tests := []struct {
		name string
		cfg  GeneratorConfig
	}{
		{"defaults", DefaultConfig()},
		{"single concept", GeneratorConfig{Seed: 1, Concepts: 1, Sentences: 1, MaxWords: 3}},
		{"with outputs", GeneratorConfig{Seed: 7, Concepts: 4, Sentences: 3, MaxWords: 5, Outputs: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.cfg).Snapshot()
			if err := d.Validate(); err != nil {
				t.Fatalf("generated snapshot invalid: %v", err)
			}
			if tt.cfg.Outputs > 0 && d.NumOutputs() != tt.cfg.Outputs {
				t.Errorf("outputs = %d, want %d", d.NumOutputs(), tt.cfg.Outputs)
			}
			if tt.cfg.Outputs == 0 && d.Outputs != nil {
				t.Error("outputs section present without being requested")
			}
		})
	}
}

func TestSnapshotDeterministic(t *testing.T) {
	cfg := GeneratorConfig{Seed: 99, Concepts: 3, Sentences: 2, MaxWords: 4, Outputs: 3}
	a := New(cfg).Snapshot()
	b := New(cfg).Snapshot()

	aj, err := model.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	bj, err := model.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if string(aj) != string(bj) {
		t.Error("same seed produced different snapshots")
	}
}

func TestSnapshotValuesInUnitInterval(t *testing.T) {
	d := New(GeneratorConfig{Seed: 5, Concepts: 2, Sentences: 2, MaxWords: 4, Outputs: 2}).Snapshot()
	check := func(tensor [][][]float64) {
		for _, rows := range tensor {
			for _, vec := range rows {
				for _, v := range vec {
					if v < 0 || v >= 1 {
						t.Fatalf("value %v outside [0,1)", v)
					}
				}
			}
		}
	}
	for _, s := range d.Inputs {
		check(s.Attributions)
	}
	check(d.Outputs.Attributions)
}
