// Package split pre-splits a single multi-page document into page-bounded
// chunk files so each chunk can receive its own generated name.
package split

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"batchrename/internal/errors"
	"batchrename/internal/log"
)

// ChunkCount returns the number of chunk files produced for totalPages
// split into chunks of pagesPerChunk.
func ChunkCount(totalPages, pagesPerChunk int) int {
	if totalPages <= 0 || pagesPerChunk <= 0 {
		return 0
	}
	return (totalPages + pagesPerChunk - 1) / pagesPerChunk
}

// PageRange returns the 1-based inclusive page bounds of chunk (1-based).
// The last chunk may be short.
func PageRange(chunk, pagesPerChunk, totalPages int) (first, last int) {
	first = (chunk-1)*pagesPerChunk + 1
	last = chunk * pagesPerChunk
	if last > totalPages {
		last = totalPages
	}
	return first, last
}

// Split writes pagesPerChunk-page chunk files named split_{i}{ext} (1-based,
// sequential) into outDir, creating the directory if absent. No partial
// cleanup is guaranteed on failure.
func Split(inPath, outDir string, pagesPerChunk int) error {
	if pagesPerChunk < 1 {
		return errors.NewKind(errors.SplitFailure,
			fmt.Sprintf("pages per chunk must be positive, got %d", pagesPerChunk))
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return errors.WrapKind(err, errors.SplitFailure, "cannot create output directory "+outDir)
	}

	totalPages, err := api.PageCountFile(inPath)
	if err != nil {
		return errors.WrapKind(err, errors.SplitFailure, "cannot read page count of "+inPath)
	}
	log.Debug("splitting %s: %d pages, %d per chunk", inPath, totalPages, pagesPerChunk)

	ext := strings.ToLower(filepath.Ext(inPath))
	chunks := ChunkCount(totalPages, pagesPerChunk)
	for chunk := 1; chunk <= chunks; chunk++ {
		first, last := PageRange(chunk, pagesPerChunk, totalPages)
		outPath := filepath.Join(outDir, fmt.Sprintf("split_%d%s", chunk, ext))
		pages := []string{fmt.Sprintf("%d-%d", first, last)}
		if err := api.TrimFile(inPath, outPath, pages, nil); err != nil {
			return errors.WrapKind(err, errors.SplitFailure,
				fmt.Sprintf("cannot write chunk %d (%s)", chunk, outPath))
		}
		log.Info("wrote chunk %s (pages %d-%d)", outPath, first, last)
	}

	return nil
}
