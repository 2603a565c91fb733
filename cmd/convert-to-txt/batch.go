package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/convert-to-txt/internal/convert"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] inputs...",
	Short: "Convert multiple documents into a directory of text files",
	Long: `Batch converts each input document to <output-dir>/<name>.txt. Inputs
whose output file already exists are skipped, and a failing document
does not stop the run; the command exits non-zero when any document
failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("output-dir", "txt", "directory for the converted text files")
	addConversionFlags(batchCmd)

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("output-dir")
	cfg := conversionConfig(cmd)

	result := convert.Batch(newCLIConverter(cmd, cfg), args, outDir, cfg.Methods, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", result.Failed)
	}
	return nil
}
