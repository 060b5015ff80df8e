// Package resolver implements the recursive dependency resolution engine.
package resolver

import (
	"context"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/scribibble/dpnd/internal/core/domain"
	"github.com/scribibble/dpnd/internal/core/ports"
)

// Resolver materializes a component's transitive dependency tree under the
// flat layout root.
//
// Resolution always re-fetches every visited dependency. The contract is
// idempotent re-materialization, not skip-if-current: staleness detection
// is deliberately left to the VCS backend's fetch/reset cost.
type Resolver struct {
	store   ports.BomStore
	backend ports.VCSBackend
	paths   ports.PathResolver
	logger  ports.Logger
	tracer  ports.Tracer
}

// visitKey identifies one materialized component version during a traversal.
type visitKey struct {
	component string
	dir       string
}

// New creates a Resolver from its collaborators.
func New(
	store ports.BomStore,
	backend ports.VCSBackend,
	paths ports.PathResolver,
	logger ports.Logger,
	tracer ports.Tracer,
) *Resolver {
	return &Resolver{
		store:   store,
		backend: backend,
		paths:   paths,
		logger:  logger,
		tracer:  tracer,
	}
}

// Populate resolves every entry of the component's BOM, depth first.
//
// componentDir is the component's own version directory; the flat layout
// root is two levels above it and is recomputed for every nested BOM from
// that BOM's own directory, so the traversal never depends on process-wide
// working directory state. The first failure anywhere in the traversal
// aborts the whole operation; siblings already materialized stay in place.
func (r *Resolver) Populate(ctx context.Context, componentDir string, bom domain.Bom) error {
	abs, err := filepath.Abs(componentDir)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve component directory")
	}

	// Tracks the (component, dir) pairs on the current resolution path.
	// A pair seen again while still being resolved means the graph cycles;
	// diamonds are fine because entries leave the set on the way back up.
	resolving := make(map[visitKey]struct{})

	return r.populate(ctx, abs, bom, resolving)
}

func (r *Resolver) populate(
	ctx context.Context,
	componentDir string,
	bom domain.Bom,
	resolving map[visitKey]struct{},
) error {
	root := domain.LayoutRoot(componentDir)

	for _, name := range bom.Dependencies() {
		req := bom[name]

		key := visitKey{component: name, dir: req.Dir}
		if _, busy := resolving[key]; busy {
			err := zerr.With(domain.ErrCycleDetected, "component", name)
			return zerr.With(err, "dir", req.Dir)
		}
		resolving[key] = struct{}{}

		if err := r.resolveOne(ctx, root, name, req, resolving); err != nil {
			return err
		}

		delete(resolving, key)
	}

	return nil
}

// resolveOne materializes a single dependency and descends into its BOM.
func (r *Resolver) resolveOne(
	ctx context.Context,
	root, name string,
	req domain.Requirement,
	resolving map[visitKey]struct{},
) error {
	ctx, span := r.tracer.Start(ctx, "populate "+name+"/"+req.Dir)
	defer span.End()

	target, err := r.paths.Resolve(root, name, req.Dir)
	if err != nil {
		span.RecordError(err)
		return err
	}

	r.logger.Info("populating " + name + "/" + req.Dir + " @ " + req.Ref)

	if err := r.backend.PopulateRef(ctx, target, req.URL, req.Ref, req.Depth); err != nil {
		span.RecordError(err)
		return zerr.With(err, "component", name)
	}

	// The dependency's own BOM resolves against the root reachable from its
	// location, not the requiring component's.
	depBom, err := r.store.Load(target)
	if err != nil {
		span.RecordError(err)
		return zerr.With(err, "component", name)
	}

	if err := r.populate(ctx, target, depBom, resolving); err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
