//go:build ignore

// generate_testdata.go creates demo attribution snapshots for manual testing.
// Usage: go run scripts/generate_testdata.go
//
// Creates:
//   testdata/demo/single.json     (1 concept, inputs only)
//   testdata/demo/multi.json      (4 classes, inputs only)
//   testdata/demo/concepts.json   (6 concepts, inputs + outputs)
//   testdata/demo/catalogue.db    (all three, named, in a snapshot catalogue)
package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vanderheijden86/conceptscope/pkg/model"
	"github.com/vanderheijden86/conceptscope/pkg/testutil"
)

type snapshotSpec struct {
	name string
	cfg  testutil.GeneratorConfig
}

var snapshots = []snapshotSpec{
	{"single", testutil.GeneratorConfig{Seed: 1, Concepts: 1, Sentences: 3, MaxWords: 8}},
	{"multi", testutil.GeneratorConfig{Seed: 2, Concepts: 4, Sentences: 3, MaxWords: 8}},
	{"concepts", testutil.GeneratorConfig{Seed: 3, Concepts: 6, Sentences: 2, MaxWords: 8, Outputs: 7}},
}

func main() {
	outputDir := filepath.Join("testdata", "demo")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output directory: %v\n", err)
		os.Exit(1)
	}

	docs := make(map[string][]byte, len(snapshots))
	for _, spec := range snapshots {
		d := testutil.New(spec.cfg).Snapshot()
		data, err := model.Marshal(d)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode %s: %v\n", spec.name, err)
			os.Exit(1)
		}
		docs[spec.name] = data

		path := filepath.Join(outputDir, spec.name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("written %s (%d bytes)\n", path, len(data))
	}

	if err := writeCatalogue(filepath.Join(outputDir, "catalogue.db"), docs); err != nil {
		fmt.Fprintf(os.Stderr, "write catalogue: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\ndone, demo snapshots in", outputDir)
}

func writeCatalogue(path string, docs map[string][]byte) error {
	os.Remove(path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE snapshots (
		name       TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		data       TEXT NOT NULL
	)`); err != nil {
		return err
	}

	created := time.Now().Add(-time.Duration(len(docs)) * time.Minute)
	i := 0
	for _, spec := range snapshots {
		stamp := created.Add(time.Duration(i) * time.Minute).Format(time.RFC3339)
		if _, err := db.Exec(`INSERT INTO snapshots (name, created_at, data) VALUES (?, ?, ?)`,
			spec.name, stamp, string(docs[spec.name])); err != nil {
			return err
		}
		i++
	}
	fmt.Printf("written %s (%d snapshots)\n", path, len(docs))
	return nil
}
