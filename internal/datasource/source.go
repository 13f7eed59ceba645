// Package datasource discovers and loads attribution snapshots. A snapshot
// lives either in a bare JSON file written by the upstream pipeline, or in a
// SQLite catalogue holding several named snapshots. Discovery scans a
// directory, validates candidates in parallel, and picks the freshest valid
// source, preferring the catalogue at comparable freshness since it reflects
// the most recent pipeline run.
package datasource

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/conceptscope/pkg/debug"
	"github.com/vanderheijden86/conceptscope/pkg/model"
)

// SourceType identifies how a snapshot is stored.
type SourceType string

const (
	SourceTypeJSON   SourceType = "json"
	SourceTypeSQLite SourceType = "sqlite"
)

// DataSource is one discovered snapshot location.
type DataSource struct {
	Type    SourceType
	Path    string
	ModTime time.Time
	Valid   bool
	Err     error // validation failure, when !Valid
}

// DiscoverSources scans dir for snapshot JSON files and SQLite catalogues
// and validates each candidate concurrently.
func DiscoverSources(dir string) ([]DataSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot directory: %w", err)
	}

	var sources []DataSource
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		typ, ok := sourceTypeForName(e.Name())
		if !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		sources = append(sources, DataSource{
			Type:    typ,
			Path:    filepath.Join(dir, e.Name()),
			ModTime: info.ModTime(),
		})
	}

	var g errgroup.Group
	var mu sync.Mutex
	for i := range sources {
		g.Go(func() error {
			err := validateSource(sources[i])
			mu.Lock()
			sources[i].Valid = err == nil
			sources[i].Err = err
			mu.Unlock()
			if err != nil {
				debug.Log("source %s invalid: %v", sources[i].Path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sources, nil
}

func sourceTypeForName(name string) (SourceType, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return SourceTypeJSON, true
	case ".db", ".sqlite", ".sqlite3":
		return SourceTypeSQLite, true
	default:
		return "", false
	}
}

func validateSource(s DataSource) error {
	switch s.Type {
	case SourceTypeJSON:
		_, err := model.ParseFile(s.Path)
		return err
	case SourceTypeSQLite:
		r, err := NewSQLiteReader(s.Path)
		if err != nil {
			return err
		}
		defer r.Close()
		names, err := r.ListSnapshots()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return fmt.Errorf("catalogue holds no snapshots")
		}
		return nil
	default:
		return fmt.Errorf("unknown source type: %s", s.Type)
	}
}

// SelectBestSource picks the freshest valid source. When a catalogue and a
// JSON file are equally fresh (within a small window, since pipelines write
// both in one run) the catalogue wins.
func SelectBestSource(sources []DataSource) (DataSource, error) {
	valid := make([]DataSource, 0, len(sources))
	for _, s := range sources {
		if s.Valid {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return DataSource{}, fmt.Errorf("no valid snapshot sources")
	}

	sort.Slice(valid, func(a, b int) bool {
		da := valid[b].ModTime.Sub(valid[a].ModTime)
		if da.Abs() <= 2*time.Second {
			return valid[a].Type == SourceTypeSQLite && valid[b].Type != SourceTypeSQLite
		}
		return valid[a].ModTime.After(valid[b].ModTime)
	})
	return valid[0], nil
}
