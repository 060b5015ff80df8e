package ports

// PathResolver computes the sibling directory for a component version under
// the flat layout and performs the directory creation needed before
// population.
//
//go:generate mockgen -source=path_resolver.go -destination=mocks/mock_path_resolver.go -package=mocks
type PathResolver interface {
	// Resolve returns root/<component>/<versionDir>, creating the directory
	// if it does not exist. Creating an existing directory is a no-op.
	Resolve(root, component, versionDir string) (string, error)
}
