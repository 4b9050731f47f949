package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"batchrename/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)
	return tmpFile.Name()
}

const (
	validYAML = `
rename:
  allowed_extensions: [".pdf", ".tiff"]
  ignore: ["._*"]
  dry_run: true
  preflight: true
split:
  eligible_extension: ".pdf"
  output_dir: "chunks"
  pages_per_chunk: 3
table:
  sheet: "Data"
logging:
  level: "debug"
`
	invalidSyntaxYAML = `
rename:
  allowed_extensions: [".pdf"
`
	invalidValueYAML = `
split:
  pages_per_chunk: -2
`
	invalidExtensionYAML = `
rename:
  allowed_extensions: ["pdf"]
`
	partialYAML = `
logging:
  level: "debug"
`
	preflightOffYAML = `
rename:
  preflight: false
`
)

func TestLoadConfigFileValid(t *testing.T) {
	path := createTestYAML(t, validYAML)
	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".pdf", ".tiff"}, cfg.Rename.AllowedExtensions)
	assert.Equal(t, []string{"._*"}, cfg.Rename.Ignore)
	assert.True(t, cfg.Rename.DryRun)
	assert.True(t, cfg.Rename.Preflight)
	assert.Equal(t, "chunks", cfg.Split.OutputDir)
	assert.Equal(t, 3, cfg.Split.PagesPerChunk)
	assert.Equal(t, "Data", cfg.Table.Sheet)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{".pdf"}, cfg.Rename.AllowedExtensions)
	assert.Equal(t, "split", cfg.Split.OutputDir)
	assert.Equal(t, 1, cfg.Split.PagesPerChunk)
	assert.True(t, cfg.Rename.Preflight)
}

func TestLoadConfigFilePartialKeepsPreflightDefault(t *testing.T) {
	// A file that sets only unrelated keys must not silently disable the
	// preflight collision check.
	path := createTestYAML(t, partialYAML)
	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Rename.Preflight)
	assert.Equal(t, []string{".pdf"}, cfg.Rename.AllowedExtensions)
}

func TestLoadConfigFileExplicitPreflightOff(t *testing.T) {
	path := createTestYAML(t, preflightOffYAML)
	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	assert.False(t, cfg.Rename.Preflight)
}

func TestLoadConfigFileInvalidSyntax(t *testing.T) {
	path := createTestYAML(t, invalidSyntaxYAML)
	_, err := config.LoadConfigFile(path)
	assert.Error(t, err)
}

func TestLoadConfigFileInvalidValue(t *testing.T) {
	// Negative chunk size is dropped in favor of the default rather than
	// rejected; the merged config must still validate.
	path := createTestYAML(t, invalidValueYAML)
	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Split.PagesPerChunk)
}

func TestLoadConfigFileExtensionWithoutDot(t *testing.T) {
	path := createTestYAML(t, invalidExtensionYAML)
	_, err := config.LoadConfigFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dot")
}

func TestValidate(t *testing.T) {
	cfg := config.New()
	require.NoError(t, cfg.Validate())

	cfg.Split.OutputDir = ""
	assert.Error(t, cfg.Validate())
}

func TestSaveConfigRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Rename.AllowedExtensions = []string{".pdf", ".png"}
	cfg.Split.PagesPerChunk = 5

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Rename.AllowedExtensions, loaded.Rename.AllowedExtensions)
	assert.Equal(t, 5, loaded.Split.PagesPerChunk)
}
