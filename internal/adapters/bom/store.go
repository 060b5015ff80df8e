// Package bom implements the file-backed bill of materials store.
package bom

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"

	"github.com/scribibble/dpnd/internal/core/domain"
)

// Store implements ports.BomStore with one dpnd.json file per component
// version directory.
type Store struct{}

// NewStore creates a new BOM store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the BOM from componentDir. A missing file is a legitimate
// "no dependencies" state and loads as an empty BOM; anything that exists
// but does not parse as the expected mapping is an error.
func (s *Store) Load(componentDir string) (domain.Bom, error) {
	path := domain.BomPath(componentDir)

	//nolint:gosec // path is the fixed BOM filename inside a caller-chosen directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewBom(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBomReadFailed.Error()), "path", path)
	}

	var b domain.Bom
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrMalformedBom, err), "path", path)
	}

	if err := b.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return b, nil
}

// Save writes the BOM to componentDir. Keys serialize in sorted order, so
// repeated saves of the same BOM produce identical bytes.
func (s *Store) Save(componentDir string, b domain.Bom) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrBomMarshalFailed.Error())
	}
	data = append(data, '\n')

	path := domain.BomPath(componentDir)

	//nolint:gosec // path is the fixed BOM filename inside a caller-chosen directory
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBomWriteFailed.Error()), "path", path)
	}

	return nil
}
