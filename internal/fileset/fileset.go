// Package fileset discovers and validates the candidate file set for a
// rename pass: every regular file in one directory, all sharing a single
// allow-listed extension, ordered by a natural sort of their absolute paths.
package fileset

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/maruel/natural"

	"batchrename/internal/errors"
	"batchrename/internal/log"
	"batchrename/pkg/types"
)

// Discover lists the regular files of dir and validates them as one
// homogeneous set. Names matching an ignore glob are skipped before any
// validation. On success it returns the entries in natural path order
// together with their common lower-cased extension.
func Discover(dir string, allowed []string, ignore []string) ([]types.FileEntry, string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.NewFileError("directory not found", dir, errors.NotFound, nil)
		}
		return nil, "", errors.NewFileError("cannot access directory", dir, errors.InvalidTarget, err)
	}
	if !info.IsDir() {
		return nil, "", errors.NewFileError("not a directory", dir, errors.InvalidTarget, nil)
	}

	ignoreGlobs, err := compileIgnoreGlobs(ignore)
	if err != nil {
		return nil, "", err
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", errors.NewFileError("cannot read directory", dir, errors.InvalidTarget, err)
	}

	var files []types.FileEntry
	for _, entry := range dirEntries {
		if !entry.Type().IsRegular() {
			continue
		}
		if matchesAny(ignoreGlobs, entry.Name()) {
			log.Debug("ignoring %s", entry.Name())
			continue
		}
		abs, err := filepath.Abs(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, "", errors.NewFileError("cannot resolve path", entry.Name(), errors.InvalidTarget, err)
		}
		files = append(files, types.FileEntry{
			Path: abs,
			Ext:  strings.ToLower(filepath.Ext(entry.Name())),
		})
	}

	if len(files) == 0 {
		return nil, "", errors.NewFileError("no files found in directory", dir, errors.EmptySet, nil)
	}

	ext := files[0].Ext
	for _, f := range files[1:] {
		if f.Ext != ext {
			return nil, "", errors.NewFileError("mixed file extensions in directory", dir, errors.MixedExtensions, nil)
		}
	}

	if !extensionAllowed(ext, allowed) {
		return nil, "", errors.NewFileError(
			"extension not allowed: "+ext+" (allowed: "+strings.Join(allowed, ", ")+")",
			dir, errors.DisallowedExtension, nil)
	}

	sort.Slice(files, func(i, j int) bool {
		return natural.Less(files[i].Path, files[j].Path)
	})

	log.Debug("discovered %d %s files in %s", len(files), ext, dir)
	return files, ext, nil
}

// Writable reports whether new directory entries can be created in dir.
// Renaming mutates the directory, so the check happens at selection time
// rather than surfacing as a mid-pass failure.
func Writable(dir string) bool {
	probe, err := os.CreateTemp(dir, ".batchrename-*")
	if err != nil {
		return false
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return true
}

func compileIgnoreGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.NewConfigError("invalid ignore pattern", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matchesAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func extensionAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(a, ext) {
			return true
		}
	}
	return false
}
