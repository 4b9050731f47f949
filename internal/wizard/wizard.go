// Package wizard sequences the four rename stages and gates forward
// progress on each stage's readiness predicate. The controller owns the
// accumulated state but no business logic of its own and no rendering: it
// invokes the validator, binder, builder, generator, and executor, and
// re-evaluates readiness after every action.
package wizard

import (
	"path/filepath"

	"batchrename/internal/config"
	"batchrename/internal/errors"
	"batchrename/internal/fileset"
	"batchrename/internal/log"
	"batchrename/internal/rename"
	"batchrename/internal/split"
	"batchrename/internal/table"
	"batchrename/internal/template"
	"batchrename/pkg/types"
)

// Stage identifies one wizard stage.
type Stage int

const (
	SelectFolder Stage = iota
	SelectData
	BuildFormat
	Confirm
)

// String returns the stage's display name.
func (s Stage) String() string {
	switch s {
	case SelectFolder:
		return "Select Folder"
	case SelectData:
		return "Select Data"
	case BuildFormat:
		return "Build Format"
	case Confirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

// StageCount is the number of wizard stages.
const StageCount = 4

// Controller drives the stage-gated rename workflow.
type Controller struct {
	cfg   *config.Config
	stage Stage

	folder    string
	files     []types.FileEntry
	extension string

	tablePath string
	table     *types.DataTable
	selection *template.Selection

	builder  *template.Builder
	template template.Template
	accepted bool
}

// New creates a Controller at the SelectFolder stage.
func New(cfg *config.Config) *Controller {
	return &Controller{
		cfg:       cfg,
		stage:     SelectFolder,
		selection: template.NewSelection(),
	}
}

// Stage returns the current stage.
func (c *Controller) Stage() Stage {
	return c.stage
}

// Ready reports whether the current stage's readiness predicate holds.
func (c *Controller) Ready() bool {
	switch c.stage {
	case SelectFolder:
		return c.folder != "" && len(c.files) > 1
	case SelectData:
		return c.table != nil && c.selection.Count() > 0
	case BuildFormat:
		return c.accepted && !c.template.IsEmpty()
	case Confirm:
		return false // terminal
	default:
		return false
	}
}

// Next advances one stage if the current stage is ready.
func (c *Controller) Next() error {
	if c.stage == Confirm {
		return errors.New("already at the final stage")
	}
	if !c.Ready() {
		return errors.Newf("stage %q is not ready to advance", c.stage)
	}
	c.stage++
	return nil
}

// Back steps one stage backwards; always allowed except at the first stage.
func (c *Controller) Back() error {
	if c.stage == SelectFolder {
		return errors.New("already at the first stage")
	}
	c.stage--
	return nil
}

// SetFolder discovers and validates the file set of dir, replacing any
// previously discovered set. The directory must be writable, since renaming
// mutates it.
func (c *Controller) SetFolder(dir string) error {
	files, ext, err := fileset.Discover(dir, c.cfg.Rename.AllowedExtensions, c.cfg.Rename.Ignore)
	if err != nil {
		return err
	}
	if !fileset.Writable(dir) {
		return errors.NewFileError("no write permission for folder", dir, errors.InvalidTarget, nil)
	}
	c.folder = dir
	c.files = files
	c.extension = ext
	log.Info("selected folder %s (%d %s files)", dir, len(files), ext)
	return nil
}

// Folder returns the selected working folder.
func (c *Controller) Folder() string { return c.folder }

// Files returns the discovered file set in natural order.
func (c *Controller) Files() []types.FileEntry { return c.files }

// Extension returns the file set's common extension.
func (c *Controller) Extension() string { return c.extension }

// SplitCandidate reports whether the discovered set is a single file of the
// split-eligible document type, in which case splitting may be offered.
func (c *Controller) SplitCandidate() bool {
	return len(c.files) == 1 && c.files[0].Ext == c.cfg.Split.EligibleExtension
}

// SplitFolder splits the single discovered document into pagesPerChunk-page
// chunks inside the configured output subdirectory, then makes that
// subdirectory the working folder and re-discovers it.
func (c *Controller) SplitFolder(pagesPerChunk int) error {
	if !c.SplitCandidate() {
		return errors.NewKind(errors.SplitFailure, "the selected folder is not a split candidate")
	}
	outDir := filepath.Join(c.folder, c.cfg.Split.OutputDir)
	if err := split.Split(c.files[0].Path, outDir, pagesPerChunk); err != nil {
		return err
	}
	return c.SetFolder(outDir)
}

// ClearFolder resets the folder selection, e.g. when the operator declines
// to split a single document.
func (c *Controller) ClearFolder() {
	c.folder = ""
	c.files = nil
	c.extension = ""
}

// LoadTable binds the spreadsheet at path, replacing any previously bound
// table and resetting the field selection.
func (c *Controller) LoadTable(path string) error {
	t, err := table.Load(path, c.cfg.Table.Sheet)
	if err != nil {
		return err
	}
	c.tablePath = path
	c.table = t
	c.selection = template.NewSelection()
	c.builder = nil
	c.accepted = false
	log.Info("bound table %s (%d columns, %d rows)", path, len(t.Columns), t.Len())
	return nil
}

// TablePath returns the bound spreadsheet path.
func (c *Controller) TablePath() string { return c.tablePath }

// Table returns the bound data table, nil before SelectData completes.
func (c *Controller) Table() *types.DataTable { return c.table }

// Fields returns the selectable column names of the bound table.
func (c *Controller) Fields() []string {
	if c.table == nil {
		return nil
	}
	return c.table.Columns
}

// ToggleField flips selection of a field and reports its new state.
func (c *Controller) ToggleField(name string) bool {
	selected := c.selection.Toggle(name)
	// A stale builder would keep the previous field set.
	c.builder = nil
	c.accepted = false
	return selected
}

// IsFieldSelected reports whether the named field is selected.
func (c *Controller) IsFieldSelected(name string) bool {
	return c.selection.IsSelected(name)
}

// SelectedFields returns the selected fields in toggle order.
func (c *Controller) SelectedFields() []string {
	return c.selection.Selected()
}

// Builder returns the template builder over the current selection,
// creating it on first use. The builder is rebuilt from scratch whenever
// the selection changes.
func (c *Controller) Builder() *template.Builder {
	if c.builder == nil {
		c.builder = template.NewBuilder(c.selection.Selected(), c.extension)
		c.accepted = false
	}
	return c.builder
}

// AcceptTemplate validates the builder's separator entries and stores the
// built template. Acceptance is when InvalidCharacters surfaces.
func (c *Controller) AcceptTemplate() error {
	b := c.Builder()
	if err := b.Validate(); err != nil {
		return err
	}
	c.template = b.Build()
	c.accepted = true
	log.Info("accepted template %q", c.template.String())
	return nil
}

// Template returns the accepted template.
func (c *Controller) Template() template.Template {
	return c.template
}

// Summary describes the accumulated choices for the Confirm stage.
type Summary struct {
	Folder    string
	FileCount int
	TablePath string
	RowCount  int
	Template  string
}

// Summary returns the Confirm stage summary.
func (c *Controller) Summary() Summary {
	s := Summary{
		Folder:    c.folder,
		FileCount: len(c.files),
		TablePath: c.tablePath,
		Template:  c.template.String(),
	}
	if c.table != nil {
		s.RowCount = c.table.Len()
	}
	return s
}

// Execute generates one name per table row and renames the discovered files
// in positional order. Failures leave the controller at its current stage
// so the operator can correct the input and retry.
func (c *Controller) Execute() ([]types.RenameResult, error) {
	names, err := template.Generate(c.table, c.template)
	if err != nil {
		return nil, err
	}
	executor := rename.NewWithConfig(c.cfg)
	return executor.Rename(c.files, names)
}
