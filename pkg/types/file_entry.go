package types

import "path/filepath"

// FileEntry represents one discovered file in the working set.
type FileEntry struct {
	Path string `json:"path"` // absolute path
	Ext  string `json:"ext"`  // lower-cased extension, including the dot
}

// Name returns the base name of the file.
func (f FileEntry) Name() string {
	return filepath.Base(f.Path)
}

// Dir returns the parent directory of the file.
func (f FileEntry) Dir() string {
	return filepath.Dir(f.Path)
}
