// Package editor implements in-memory BOM mutation for the require verb.
package editor

import (
	"go.trai.ch/zerr"

	"github.com/scribibble/dpnd/internal/core/domain"
	"github.com/scribibble/dpnd/internal/core/ports"
)

// Editor adds requirements to a component's BOM. It never recurses and is
// independent of the resolution engine.
type Editor struct {
	store  ports.BomStore
	logger ports.Logger
}

// New creates an Editor backed by the given store.
func New(store ports.BomStore, logger ports.Logger) *Editor {
	return &Editor{store: store, logger: logger}
}

// Require pins component to (url, ref, dir, depth) in the BOM at
// componentDir and persists it. A component with no BOM gets one created;
// the SELF entry is (re)stamped unconditionally; a requirement for the same
// component with the same dir overwrites the previous record.
func (e *Editor) Require(componentDir, component, url, ref, dir string, depth int) error {
	if depth < 0 {
		return zerr.With(domain.ErrInvalidDepth, "depth", depth)
	}

	bom, err := e.store.Load(componentDir)
	if err != nil {
		return err
	}

	bom.SetSelf()
	bom.Set(component, domain.Requirement{URL: url, Ref: ref, Dir: dir, Depth: depth})

	if err := e.store.Save(componentDir, bom); err != nil {
		return err
	}

	e.logger.Info("required " + component + "/" + dir + " @ " + ref)
	return nil
}
