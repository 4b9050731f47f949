package wizard_test

import (
	"path/filepath"
	"testing"

	"batchrename/internal/config"
	"batchrename/internal/errors"
	"batchrename/internal/wizard"
	"batchrename/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.New()
	cfg.Rename.AllowedExtensions = []string{".pdf"}
	return cfg
}

// setupController walks a controller through the folder and data stages.
func setupController(t *testing.T) (*wizard.Controller, string) {
	t.Helper()
	dir := t.TempDir()
	testutils.CreateTestFiles(t, dir, "a.pdf", "b.pdf")
	tablePath := testutils.CreateWorkbook(t, t.TempDir(), "data.xlsx", [][]interface{}{
		{"Name", "Year"},
		{"Alpha", 2020},
		{"Beta", 2021},
	})

	c := wizard.New(testConfig())
	require.NoError(t, c.SetFolder(dir))
	require.NoError(t, c.Next())
	require.NoError(t, c.LoadTable(tablePath))
	return c, dir
}

func TestStageNames(t *testing.T) {
	assert.Equal(t, "Select Folder", wizard.SelectFolder.String())
	assert.Equal(t, "Confirm", wizard.Confirm.String())
}

func TestInitialStageNotReady(t *testing.T) {
	c := wizard.New(testConfig())
	assert.Equal(t, wizard.SelectFolder, c.Stage())
	assert.False(t, c.Ready())
	assert.Error(t, c.Next())
	assert.Error(t, c.Back())
}

func TestFolderStageRequiresMoreThanOneFile(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFiles(t, dir, "only.pdf")

	c := wizard.New(testConfig())
	require.NoError(t, c.SetFolder(dir))
	assert.False(t, c.Ready(), "a single file is not enough to advance")
	assert.True(t, c.SplitCandidate())
}

func TestDataStageRequiresTableAndSelection(t *testing.T) {
	c, _ := setupController(t)
	assert.Equal(t, wizard.SelectData, c.Stage())
	assert.False(t, c.Ready(), "no field selected yet")

	assert.True(t, c.ToggleField("Name"))
	assert.True(t, c.Ready())

	c.ToggleField("Name")
	assert.False(t, c.Ready())
}

func TestBuildFormatStageRequiresAcceptedTemplate(t *testing.T) {
	c, _ := setupController(t)
	c.ToggleField("Name")
	require.NoError(t, c.Next())

	assert.Equal(t, wizard.BuildFormat, c.Stage())
	assert.False(t, c.Ready())

	require.NoError(t, c.AcceptTemplate())
	assert.True(t, c.Ready())
	require.NoError(t, c.Next())
	assert.Equal(t, wizard.Confirm, c.Stage())

	// Terminal: never ready to advance.
	assert.False(t, c.Ready())
	assert.Error(t, c.Next())
}

func TestBackAlwaysAllowedExceptAtStart(t *testing.T) {
	c, _ := setupController(t)
	require.NoError(t, c.Back())
	assert.Equal(t, wizard.SelectFolder, c.Stage())
	assert.Error(t, c.Back())
}

func TestInvalidSeparatorBlocksAcceptance(t *testing.T) {
	c, _ := setupController(t)
	c.ToggleField("Name")
	c.ToggleField("Year")
	require.NoError(t, c.Next())

	require.NoError(t, c.Builder().SetSeparator(0, "bad/sep"))
	err := c.AcceptTemplate()
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.InvalidCharacters))
	assert.False(t, c.Ready())
	assert.Equal(t, wizard.BuildFormat, c.Stage(), "failure returns control to the current stage")
}

func TestToggleFieldInvalidatesBuilder(t *testing.T) {
	c, _ := setupController(t)
	c.ToggleField("Name")
	require.NoError(t, c.Next())
	require.NoError(t, c.AcceptTemplate())
	require.True(t, c.Ready())

	c.ToggleField("Year")
	assert.False(t, c.Ready(), "selection change drops the accepted template")
	assert.Equal(t, []string{"Name", "Year"}, c.Builder().Fields())
}

func TestReloadTableResetsSelection(t *testing.T) {
	c, _ := setupController(t)
	c.ToggleField("Name")
	require.NoError(t, c.LoadTable(c.TablePath()))
	assert.Empty(t, c.SelectedFields())
	assert.False(t, c.Ready())
}

func TestSetFolderNotFound(t *testing.T) {
	c := wizard.New(testConfig())
	err := c.SetFolder(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, wizard.SelectFolder, c.Stage())
}

func TestClearFolder(t *testing.T) {
	c, _ := setupController(t)
	c.ClearFolder()
	assert.Empty(t, c.Folder())
	assert.Empty(t, c.Files())
}

func TestExecuteRenamesFiles(t *testing.T) {
	c, dir := setupController(t)
	c.ToggleField("Name")
	require.NoError(t, c.Next())
	require.NoError(t, c.AcceptTemplate())
	require.NoError(t, c.Next())

	summary := c.Summary()
	assert.Equal(t, 2, summary.FileCount)
	assert.Equal(t, 2, summary.RowCount)
	assert.Equal(t, "Name.pdf", summary.Template)

	results, err := c.Execute()
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.FileExists(t, filepath.Join(dir, "Alpha.pdf"))
	assert.FileExists(t, filepath.Join(dir, "Beta.pdf"))
}

func TestExecuteMissingColumn(t *testing.T) {
	c, _ := setupController(t)
	c.ToggleField("Name")
	require.NoError(t, c.Next())
	require.NoError(t, c.AcceptTemplate())
	require.NoError(t, c.Next())

	// Bind a different table that lacks the selected column, keeping the
	// accepted template. The defensive check must enumerate the gap.
	other := testutils.CreateWorkbook(t, t.TempDir(), "other.xlsx", [][]interface{}{
		{"Region"},
		{"North"},
		{"South"},
	})
	require.NoError(t, c.LoadTable(other))

	_, err := c.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsMissingColumn(err))
	assert.Contains(t, err.Error(), "Name")
}
