package ports

import "context"

// VCSBackend materializes version-controlled working trees. One concrete
// implementation wraps the git client; the interface leaves room for
// alternate backends.
//
//go:generate mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCSBackend interface {
	// PopulateRef ensures targetDir exists, initializes it as a working tree
	// if needed, registers url as its origin, fetches ref (bounding history
	// to depth commits when depth > 0) and hard-resets the tree to the
	// fetched reference. Safe to call repeatedly on the same directory.
	PopulateRef(ctx context.Context, targetDir, url, ref string, depth int) error
}
