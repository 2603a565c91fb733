// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/convert-to-txt/pkg/types"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any documents failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Batch converts each input into outDir/<base>.txt, printing per-file
// status to w and returning a summary. Inputs whose output file
// already exists are skipped; failures do not abort the run.
func Batch(c *Converter, inputs []string, outDir string, methods types.MethodConfig, w io.Writer) BatchResult {
	var result BatchResult

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", outDir, err)
		result.Failed = len(inputs)
		return result
	}

	for _, input := range inputs {
		base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		outPath := filepath.Join(outDir, base+".txt")

		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
			result.Skipped++
			continue
		}

		if _, err := c.Convert(Request{Input: input, Output: outPath, Methods: methods}); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "converted: %s\n", base)
		result.Converted++
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
