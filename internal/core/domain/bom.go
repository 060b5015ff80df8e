// Package domain contains the core types for the dpnd dependency tool.
package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

const (
	// SelfKey is the reserved BOM key identifying the component the BOM belongs to.
	SelfKey = "SELF"

	// SelfRef is the fixed reference carried by the SELF entry. It is a marker,
	// never a fetch target.
	SelfRef = "latest"

	// SelfDir is the fixed version directory carried by the SELF entry.
	SelfDir = "latest"
)

// Requirement pins one dependency to a remote, a revision and a target
// version directory.
//
// Dir is caller-supplied and not derived from Ref. Two requirements for the
// same component with different Dir values coexist as separate directories;
// a second requirement with the same Dir silently overwrites the first.
type Requirement struct {
	// URL is the remote locator. Empty for the SELF entry.
	URL string `json:"url"`

	// Ref is a revision identifier: a commit hash, a tag path or a branch name.
	Ref string `json:"ref"`

	// Dir is the version directory name to materialize under the flat root.
	Dir string `json:"dir"`

	// Depth bounds the fetched history. 0 means full history.
	Depth int `json:"depth"`
}

// Bom is a component's bill of materials: a mapping from component name to
// the pinned requirement, plus the reserved SELF entry.
type Bom map[string]Requirement

// NewBom returns an empty bill of materials.
func NewBom() Bom {
	return make(Bom)
}

// SelfRequirement returns the marker record stamped under SelfKey.
func SelfRequirement() Requirement {
	return Requirement{URL: "", Ref: SelfRef, Dir: SelfDir, Depth: 0}
}

// SetSelf stamps the SELF entry, overwriting any previous one.
func (b Bom) SetSelf() {
	b[SelfKey] = SelfRequirement()
}

// Set adds or overwrites the requirement for the given component.
func (b Bom) Set(component string, req Requirement) {
	b[component] = req
}

// Dependencies returns the component names to resolve, excluding SELF,
// sorted for deterministic traversal order.
func (b Bom) Dependencies() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		if name == SelfKey {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate checks that every non-SELF entry carries the fields resolution
// needs. It is called on load so that a malformed BOM fails before any
// fetch is attempted.
func (b Bom) Validate() error {
	for name, req := range b {
		if name == SelfKey {
			continue
		}
		if name == "" {
			return zerr.With(ErrMalformedBom, "reason", "empty component name")
		}
		if req.URL == "" {
			return zerr.With(zerr.With(ErrMalformedBom, "component", name), "missing_field", "url")
		}
		if req.Ref == "" {
			return zerr.With(zerr.With(ErrMalformedBom, "component", name), "missing_field", "ref")
		}
		if req.Dir == "" {
			return zerr.With(zerr.With(ErrMalformedBom, "component", name), "missing_field", "dir")
		}
		if req.Depth < 0 {
			return zerr.With(zerr.With(ErrMalformedBom, "component", name), "depth", req.Depth)
		}
	}
	return nil
}
