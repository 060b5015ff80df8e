// Package ports defines the core interfaces for the application.
package ports

import "github.com/scribibble/dpnd/internal/core/domain"

// BomStore loads and persists a component's bill of materials.
//
//go:generate mockgen -source=bom_store.go -destination=mocks/mock_bom_store.go -package=mocks
type BomStore interface {
	// Load reads the BOM from the given component directory.
	// A missing BOM file is not an error: it loads as an empty BOM.
	// Malformed content is a load-time error.
	Load(componentDir string) (domain.Bom, error)

	// Save writes the BOM to the given component directory, preserving
	// all four fields of every requirement across a round trip.
	Save(componentDir string, bom domain.Bom) error
}
