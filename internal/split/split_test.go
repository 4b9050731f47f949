package split_test

import (
	"os"
	"path/filepath"
	"testing"

	"batchrename/internal/errors"
	"batchrename/internal/split"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkCount(t *testing.T) {
	// 7 pages at 3 per chunk -> 3 chunks.
	assert.Equal(t, 3, split.ChunkCount(7, 3))
	assert.Equal(t, 1, split.ChunkCount(3, 3))
	assert.Equal(t, 7, split.ChunkCount(7, 1))
	assert.Equal(t, 1, split.ChunkCount(2, 5))
	assert.Equal(t, 0, split.ChunkCount(0, 3))
	assert.Equal(t, 0, split.ChunkCount(7, 0))
}

func TestPageRange(t *testing.T) {
	// 7 pages at 3 per chunk -> 1-3, 4-6, 7-7 (page counts 3, 3, 1).
	first, last := split.PageRange(1, 3, 7)
	assert.Equal(t, [2]int{1, 3}, [2]int{first, last})

	first, last = split.PageRange(2, 3, 7)
	assert.Equal(t, [2]int{4, 6}, [2]int{first, last})

	first, last = split.PageRange(3, 3, 7)
	assert.Equal(t, [2]int{7, 7}, [2]int{first, last})
}

func TestSplitRejectsNonPositiveChunkSize(t *testing.T) {
	err := split.Split("in.pdf", t.TempDir(), 0)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.SplitFailure))
}

func TestSplitUnparseableDocument(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(in, []byte("not a pdf"), 0644))

	outDir := filepath.Join(dir, "split")
	err := split.Split(in, outDir, 3)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.SplitFailure))

	// The output directory is created before parsing; no chunks inside.
	entries, readErr := os.ReadDir(outDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
