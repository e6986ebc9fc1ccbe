// Package hmdb loads the zipped HMDB metabolite dump into an in-memory
// index of chemical structure records.
package hmdb

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"ligandid/pkg/identify/models"
)

// ErrDumpNotFound indicates the zipped dump file does not exist.
var ErrDumpNotFound = errors.New("hmdb dump not found")

// ErrNoXMLEntry indicates the zip archive contains no XML dump.
var ErrNoXMLEntry = errors.New("no xml entry in archive")

// Index resolves metabolite names, accessions, and synonyms to structure
// records. The multi-gigabyte dump is streamed once at load time; only
// the four fields the pipeline needs are retained.
type Index struct {
	records map[string]models.Record
	primary map[string]bool
	count   int
}

// Load opens the zipped dump at path and indexes every metabolite entry.
func Load(path string) (*Index, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDumpNotFound, path)
		}
		return nil, fmt.Errorf("open hmdb dump: %w", err)
	}
	defer r.Close()

	var entry *zip.File
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, ".xml") {
			entry = f
			break
		}
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoXMLEntry, path)
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", entry.Name, err)
	}
	defer rc.Close()

	idx := &Index{records: make(map[string]models.Record)}
	if err := idx.parse(rc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", entry.Name, err)
	}
	return idx, nil
}

// Lookup returns the record indexed under id, with MetaboliteID set to
// the queried identifier. An unknown id yields an incomplete record.
func (ix *Index) Lookup(ctx context.Context, id string) (models.Record, error) {
	rec := ix.records[strings.TrimSpace(id)]
	rec.MetaboliteID = id
	return rec, nil
}

// Len reports the number of metabolite entries indexed.
func (ix *Index) Len() int {
	return ix.count
}
