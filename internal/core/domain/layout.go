package domain

import "path/filepath"

const (
	// BomFileName is the name of the persisted bill of materials file.
	BomFileName = "dpnd.json"

	// ConfigFileName is the name of the optional tool configuration file.
	ConfigFileName = "dpnd.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// LayoutRoot returns the flat layout root for a component version directory.
//
// A component lives at root/<component>/<dir>, so its root is two levels up.
// Every dependency of the component materializes directly under that root,
// never nested inside the component's own tree.
func LayoutRoot(componentDir string) string {
	return filepath.Dir(filepath.Dir(componentDir))
}

// ComponentPath returns the sibling directory for a component version under
// the flat layout root.
func ComponentPath(root, component, versionDir string) string {
	return filepath.Join(root, component, versionDir)
}

// BomPath returns the path of the BOM file inside a component directory.
func BomPath(componentDir string) string {
	return filepath.Join(componentDir, BomFileName)
}
