package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/convert-to-txt/internal/convert"
)

// defaultOutputFile is where the extracted text lands when no output
// argument is given.
const defaultOutputFile = "output.txt"

var convertCmd = &cobra.Command{
	Use:   "convert [flags] input [output]",
	Short: "Convert a document to a plain text file",
	Long: `Convert detects the input document's type, picks the fastest installed
conversion tool for it, and writes the extracted text to the output
file (default output.txt, must end in .txt). With --text the extracted
text is printed to stdout instead of written to a file.

The page specification PAGES contains one or more comma-separated page
ranges. A page range is either a page number, or two page numbers
separated by a dash. For instance, specification 1-10 outputs pages 1
to 10, and specification 1,3,99999-4 outputs pages 1 and 3, followed
by all the document pages in reverse order up to page 4. Page
selection applies to pdf and djvu documents and is ignored for types
without page-addressable extraction.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("pages", "p", "", "pages to process, e.g. \"1-10\" or \"15-10,3,23-30\" (default: all pages)")
	convertCmd.Flags().Bool("text", false, "print the extracted text to stdout instead of writing a file")
	addConversionFlags(convertCmd)

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	cfg := conversionConfig(cmd)

	output := cfg.OutputFile
	if len(args) == 2 {
		output = args[1]
	}
	if toStdout, _ := cmd.Flags().GetBool("text"); toStdout {
		output = ""
	}

	pages, _ := cmd.Flags().GetString("pages")

	res, err := newCLIConverter(cmd, cfg).Convert(convert.Request{
		Input:   input,
		Output:  output,
		Pages:   pages,
		Methods: cfg.Methods,
	})
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Fprint(os.Stdout, res.Text)
	} else {
		log.Infof("conversion successful: %s", res.OutputPath)
	}
	return nil
}
