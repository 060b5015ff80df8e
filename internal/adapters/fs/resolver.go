// Package fs implements filesystem-level adapters for the flat layout.
package fs

import (
	"os"

	"go.trai.ch/zerr"

	"github.com/scribibble/dpnd/internal/core/domain"
)

// Resolver implements ports.PathResolver for the flat two-level layout.
type Resolver struct{}

// NewResolver creates a new path resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns root/<component>/<versionDir> and creates the directory.
// MkdirAll makes repeated resolution of the same pair a no-op.
func (r *Resolver) Resolve(root, component, versionDir string) (string, error) {
	target := domain.ComponentPath(root, component, versionDir)
	if err := os.MkdirAll(target, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrTargetCreateFailed.Error()), "target", target)
	}
	return target, nil
}
