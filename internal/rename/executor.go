// Package rename pairs generated names with discovered files in positional
// order and performs the on-disk rename.
package rename

import (
	"os"
	"path/filepath"

	"batchrename/internal/config"
	"batchrename/internal/errors"
	"batchrename/internal/log"
	"batchrename/pkg/types"
)

// Executor performs the positional rename pass.
type Executor struct {
	dryRun    bool
	preflight bool
}

// New creates an Executor with preflight collision checking enabled.
func New() *Executor {
	return &Executor{preflight: true}
}

// NewWithConfig creates an Executor configured from cfg.
func NewWithConfig(cfg *config.Config) *Executor {
	return &Executor{
		dryRun:    cfg.Rename.DryRun,
		preflight: cfg.Rename.Preflight,
	}
}

// SetDryRun sets whether renames are performed or only logged.
func (e *Executor) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// IsDryRun returns whether the executor is in dry run mode.
func (e *Executor) IsDryRun() bool {
	return e.dryRun
}

// Rename renames each file to its positionally paired new name, keeping the
// file's parent directory and its own extension. A leading empty name is
// discarded before the count check; any other empty name aborts before a
// single file is touched. Processing is strictly in order; the
// first failing pair aborts the remainder, already-renamed files stay
// renamed, and the returned error names the failing index and paths.
func (e *Executor) Rename(files []types.FileEntry, newNames []string) ([]types.RenameResult, error) {
	// Known leading-blank artifact of some generated name lists.
	if len(newNames) > 0 && newNames[0] == "" {
		newNames = newNames[1:]
	}

	if len(files) != len(newNames) {
		return nil, errors.NewCountError(len(files), len(newNames))
	}

	plan := make([]types.RenameResult, len(files))
	for i, f := range files {
		// A blank name past the leading slot would rename the file to its
		// bare extension, a hidden dotfile.
		if newNames[i] == "" {
			return nil, errors.NewRenameError(i, f.Path, "",
				errors.New("blank generated name"))
		}
		plan[i] = types.RenameResult{
			SourcePath:      f.Path,
			DestinationPath: filepath.Join(f.Dir(), newNames[i]+f.Ext),
		}
	}

	if e.preflight {
		if err := checkPlan(plan); err != nil {
			return nil, err
		}
	}

	results := make([]types.RenameResult, 0, len(plan))
	for i, p := range plan {
		if p.SourcePath == p.DestinationPath {
			log.Debug("name unchanged, skipping %s", p.SourcePath)
			results = append(results, p)
			continue
		}
		if e.dryRun {
			log.Info("would rename %s -> %s", p.SourcePath, p.DestinationPath)
			results = append(results, p)
			continue
		}
		if err := os.Rename(p.SourcePath, p.DestinationPath); err != nil {
			p.Error = err
			results = append(results, p)
			return results, errors.NewRenameError(i, p.SourcePath, p.DestinationPath, err)
		}
		log.Info("renamed %s -> %s", p.SourcePath, p.DestinationPath)
		p.Renamed = true
		results = append(results, p)
	}

	return results, nil
}

// checkPlan rejects plans with duplicate destinations or destinations that
// already exist on disk, before any file is touched. Renaming a file onto
// its own current path is allowed.
func checkPlan(plan []types.RenameResult) error {
	seen := make(map[string]bool, len(plan))
	for i, p := range plan {
		if seen[p.DestinationPath] {
			return errors.NewRenameError(i, p.SourcePath, p.DestinationPath,
				errors.New("duplicate destination in rename plan"))
		}
		seen[p.DestinationPath] = true

		if p.DestinationPath == p.SourcePath {
			continue
		}
		if _, err := os.Stat(p.DestinationPath); err == nil {
			return errors.NewRenameError(i, p.SourcePath, p.DestinationPath,
				errors.New("destination already exists"))
		}
	}
	return nil
}
