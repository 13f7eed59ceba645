package model

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Parse decodes a snapshot JSON document and validates its shape. Concepts
// without a name get the upstream default "concept #<i>".
func Parse(data []byte) (*Dataset, error) {
	var d Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	for i := range d.Concepts {
		if d.Concepts[i].Name == "" {
			d.Concepts[i].Name = fmt.Sprintf("concept #%d", i)
		}
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &d, nil
}

// ParseFile reads and decodes a snapshot from disk.
func ParseFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(data)
}

// Marshal re-encodes a dataset, primarily for embedding into HTML exports
// and for round-tripping snapshots into the SQLite catalogue.
func Marshal(d *Dataset) ([]byte, error) {
	return json.Marshal(d)
}
