// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tool

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/convert-to-txt/internal/pages"
)

// Tool is one external conversion utility, modeled as a pure function
// from (input path, page selection) to extracted text.
type Tool interface {
	// Name returns the name users know the tool by.
	Name() string

	// Available reports whether the tool's binary resolves on PATH.
	Available() bool

	// Extract converts the document at input, optionally restricted to
	// the given pages, and returns the extracted text. Tools that do
	// not address pages ignore the page selection.
	Extract(input string, pg *pages.Spec) (string, error)
}

// toolError folds a failed invocation's stderr into the returned error.
func toolError(name, stderr string, err error) error {
	stderr = strings.TrimSpace(stderr)
	if stderr != "" {
		return fmt.Errorf("%s: %w: %s", name, err, stderr)
	}
	return fmt.Errorf("%s: %w", name, err)
}

// tempTxt creates an empty temporary .txt file and returns its path.
// The .txt suffix matters: ebook-convert and textutil pick their output
// format from it.
func tempTxt() (string, error) {
	f, err := os.CreateTemp("", "convert-to-txt-*.txt")
	if err != nil {
		return "", fmt.Errorf("creating temp output file: %w", err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", err
	}
	return name, nil
}

// pdftotext extracts PDF text with poppler's pdftotext, writing to
// stdout. Page selection uses -f/-l, which only address one ascending
// window, so multi-range and descending specs expand to one invocation
// per page with the outputs concatenated in spec order.
type pdftotext struct {
	run Runner
}

func (t *pdftotext) Name() string { return "pdftotext" }

func (t *pdftotext) Available() bool {
	_, err := t.run.LookPath("pdftotext")
	return err == nil
}

func (t *pdftotext) Extract(input string, pg *pages.Spec) (string, error) {
	if pg == nil {
		stdout, stderr, err := t.run.Run("pdftotext", input, "-")
		if err != nil {
			return "", toolError(t.Name(), stderr, err)
		}
		return stdout, nil
	}

	var b strings.Builder
	for _, p := range pg.Expand() {
		n := strconv.Itoa(p)
		stdout, stderr, err := t.run.Run("pdftotext", "-f", n, "-l", n, input, "-")
		if err != nil {
			return "", toolError(t.Name(), stderr, fmt.Errorf("page %d: %w", p, err))
		}
		b.WriteString(stdout)
	}
	return b.String(), nil
}

// djvutxt extracts DjVu text. Its --page option takes the page spec in
// exactly the comma-separated form this tool parses, descending ranges
// included, so the spec is forwarded verbatim.
type djvutxt struct {
	run Runner
}

func (t *djvutxt) Name() string { return "djvutxt" }

func (t *djvutxt) Available() bool {
	_, err := t.run.LookPath("djvutxt")
	return err == nil
}

func (t *djvutxt) Extract(input string, pg *pages.Spec) (string, error) {
	var args []string
	if pg != nil {
		args = append(args, "--page="+pg.String())
	}
	args = append(args, input)

	stdout, stderr, err := t.run.Run("djvutxt", args...)
	if err != nil {
		return "", toolError(t.Name(), stderr, err)
	}
	return stdout, nil
}

// epubtxt dumps an EPUB with unzip -c: an EPUB is a zip archive of
// mostly-text documents, and printing its members to stdout yields a
// crude but fast text rendition. Same trick the shell ebook-tools use.
type epubtxt struct {
	run Runner
}

func (t *epubtxt) Name() string { return "epubtxt" }

func (t *epubtxt) Available() bool {
	_, err := t.run.LookPath("unzip")
	return err == nil
}

func (t *epubtxt) Extract(input string, _ *pages.Spec) (string, error) {
	stdout, stderr, err := t.run.Run("unzip", "-c", input)
	if err != nil {
		return "", toolError(t.Name(), stderr, err)
	}
	return stdout, nil
}

// catdoc extracts text from legacy Word documents, printing to stdout.
type catdoc struct {
	run Runner
}

func (t *catdoc) Name() string { return "catdoc" }

func (t *catdoc) Available() bool {
	_, err := t.run.LookPath("catdoc")
	return err == nil
}

func (t *catdoc) Extract(input string, _ *pages.Spec) (string, error) {
	stdout, stderr, err := t.run.Run("catdoc", input)
	if err != nil {
		return "", toolError(t.Name(), stderr, err)
	}
	return stdout, nil
}

// textutil is the macOS text conversion utility. It only writes to a
// file, so extraction goes through a temp file that is read back.
type textutil struct {
	run Runner
}

func (t *textutil) Name() string { return "textutil" }

func (t *textutil) Available() bool {
	_, err := t.run.LookPath("textutil")
	return err == nil
}

func (t *textutil) Extract(input string, _ *pages.Spec) (string, error) {
	out, err := tempTxt()
	if err != nil {
		return "", err
	}
	defer os.Remove(out)

	_, stderr, err := t.run.Run("textutil", "-convert", "txt", input, "-output", out)
	if err != nil {
		return "", toolError(t.Name(), stderr, err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return "", fmt.Errorf("%s: reading converted output: %w", t.Name(), err)
	}
	return string(data), nil
}

// ebookConvert is calibre's universal converter: slow, but it accepts
// every format this tool dispatches. It writes to a file, so extraction
// goes through a temp file that is read back.
type ebookConvert struct {
	run Runner
}

func (t *ebookConvert) Name() string { return "ebook-convert" }

func (t *ebookConvert) Available() bool {
	_, err := t.run.LookPath("ebook-convert")
	return err == nil
}

func (t *ebookConvert) Extract(input string, _ *pages.Spec) (string, error) {
	out, err := tempTxt()
	if err != nil {
		return "", err
	}
	defer os.Remove(out)

	_, stderr, err := t.run.Run("ebook-convert", input, out)
	if err != nil {
		return "", toolError(t.Name(), stderr, err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return "", fmt.Errorf("%s: reading converted output: %w", t.Name(), err)
	}
	return string(data), nil
}
