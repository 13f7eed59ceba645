package datasource

import (
	"fmt"
	"os"

	"github.com/vanderheijden86/conceptscope/pkg/model"
)

// Load resolves path into a dataset. A JSON file parses directly; a SQLite
// catalogue yields the snapshot named by snapshotName (newest when empty); a
// directory goes through discovery and freshest-valid selection.
//
// The returned string is the concrete file backing the dataset, suitable for
// handing to the watcher.
func Load(path, snapshotName string) (*model.Dataset, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("stat snapshot path: %w", err)
	}

	if info.IsDir() {
		sources, err := DiscoverSources(path)
		if err != nil {
			return nil, "", err
		}
		best, err := SelectBestSource(sources)
		if err != nil {
			return nil, "", fmt.Errorf("no usable snapshot in %s: %w", path, err)
		}
		return loadFromSource(best, snapshotName)
	}

	typ, ok := sourceTypeForName(path)
	if !ok {
		return nil, "", fmt.Errorf("unsupported snapshot file %s (want .json or a sqlite catalogue)", path)
	}
	return loadFromSource(DataSource{Type: typ, Path: path}, snapshotName)
}

func loadFromSource(s DataSource, snapshotName string) (*model.Dataset, string, error) {
	switch s.Type {
	case SourceTypeJSON:
		d, err := model.ParseFile(s.Path)
		if err != nil {
			return nil, "", err
		}
		return d, s.Path, nil

	case SourceTypeSQLite:
		r, err := NewSQLiteReader(s.Path)
		if err != nil {
			return nil, "", err
		}
		defer r.Close()
		d, err := r.LoadSnapshot(snapshotName)
		if err != nil {
			return nil, "", err
		}
		return d, s.Path, nil

	default:
		return nil, "", fmt.Errorf("unknown source type: %s", s.Type)
	}
}

// ListCatalogue returns the snapshot names available at path when it is a
// SQLite catalogue, or nil for plain JSON sources. Used by the picker.
func ListCatalogue(path string) ([]SnapshotInfo, error) {
	typ, ok := sourceTypeForName(path)
	if !ok || typ != SourceTypeSQLite {
		return nil, nil
	}
	r, err := NewSQLiteReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.ListSnapshots()
}
