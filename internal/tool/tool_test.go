// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tool

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/convert-to-txt/internal/pages"
)

// mockRunner records invocations and returns configured responses.
type mockRunner struct {
	installed map[string]bool   // binary -> whether LookPath succeeds
	stdout    map[string]string // binary -> canned stdout
	errs      map[string]error  // binary -> Run failure
	calls     [][]string
	onRun     func(name string, args []string) // hook for tools that write files
}

func (m *mockRunner) LookPath(file string) (string, error) {
	if m.installed[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockRunner) Run(name string, args ...string) (string, string, error) {
	m.calls = append(m.calls, append([]string{name}, args...))
	if m.onRun != nil {
		m.onRun(name, args)
	}
	if err := m.errs[name]; err != nil {
		return "", "tool wrote this to stderr", err
	}
	return m.stdout[name], "", nil
}

func mustParse(t *testing.T, spec string) *pages.Spec {
	t.Helper()
	pg, err := pages.Parse(spec)
	if err != nil {
		t.Fatalf("parsing %q: %v", spec, err)
	}
	return pg
}

func TestPdftotextAllPages(t *testing.T) {
	run := &mockRunner{stdout: map[string]string{"pdftotext": "page text"}}
	tool := &pdftotext{run}

	got, err := tool.Extract("in.pdf", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "page text" {
		t.Errorf("got %q, want %q", got, "page text")
	}

	want := [][]string{{"pdftotext", "in.pdf", "-"}}
	if !reflect.DeepEqual(run.calls, want) {
		t.Errorf("calls = %v, want %v", run.calls, want)
	}
}

func TestPdftotextExpandsPages(t *testing.T) {
	run := &mockRunner{stdout: map[string]string{"pdftotext": "p|"}}
	tool := &pdftotext{run}

	got, err := tool.Extract("in.pdf", mustParse(t, "3-1,5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// One invocation per page, descending order preserved.
	want := [][]string{
		{"pdftotext", "-f", "3", "-l", "3", "in.pdf", "-"},
		{"pdftotext", "-f", "2", "-l", "2", "in.pdf", "-"},
		{"pdftotext", "-f", "1", "-l", "1", "in.pdf", "-"},
		{"pdftotext", "-f", "5", "-l", "5", "in.pdf", "-"},
	}
	if !reflect.DeepEqual(run.calls, want) {
		t.Errorf("calls = %v, want %v", run.calls, want)
	}
	if got != "p|p|p|p|" {
		t.Errorf("concatenated output = %q", got)
	}
}

func TestDjvutxtForwardsSpecVerbatim(t *testing.T) {
	run := &mockRunner{stdout: map[string]string{"djvutxt": "djvu text"}}
	tool := &djvutxt{run}

	if _, err := tool.Extract("in.djvu", mustParse(t, "15-10,3,23-30")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][]string{{"djvutxt", "--page=15-10,3,23-30", "in.djvu"}}
	if !reflect.DeepEqual(run.calls, want) {
		t.Errorf("calls = %v, want %v", run.calls, want)
	}
}

func TestEpubtxtUsesUnzip(t *testing.T) {
	run := &mockRunner{
		installed: map[string]bool{"unzip": true},
		stdout:    map[string]string{"unzip": "chapter one"},
	}
	tool := &epubtxt{run}

	if !tool.Available() {
		t.Fatal("epubtxt should be available when unzip is installed")
	}

	got, err := tool.Extract("book.epub", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "chapter one" {
		t.Errorf("got %q", got)
	}

	want := [][]string{{"unzip", "-c", "book.epub"}}
	if !reflect.DeepEqual(run.calls, want) {
		t.Errorf("calls = %v, want %v", run.calls, want)
	}
}

func TestEbookConvertReadsTempOutput(t *testing.T) {
	run := &mockRunner{}
	run.onRun = func(name string, args []string) {
		if name != "ebook-convert" {
			t.Fatalf("unexpected binary %q", name)
		}
		// args are [input, output]; the real tool writes the output file.
		if err := os.WriteFile(args[1], []byte("converted body"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	tool := &ebookConvert{run}

	got, err := tool.Extract("in.docx", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "converted body" {
		t.Errorf("got %q, want %q", got, "converted body")
	}

	if len(run.calls) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(run.calls))
	}
	outPath := run.calls[0][2]
	if !strings.HasSuffix(outPath, ".txt") {
		t.Errorf("temp output %q should end in .txt", outPath)
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Errorf("temp output %q should be removed after extraction", outPath)
	}
}

func TestTextutilWritesThroughTempFile(t *testing.T) {
	run := &mockRunner{}
	run.onRun = func(name string, args []string) {
		// args are [-convert txt input -output out].
		if err := os.WriteFile(args[4], []byte("word text"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	tool := &textutil{run}

	got, err := tool.Extract("memo.doc", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "word text" {
		t.Errorf("got %q", got)
	}

	call := run.calls[0]
	if call[0] != "textutil" || call[1] != "-convert" || call[2] != "txt" || call[3] != "memo.doc" || call[4] != "-output" {
		t.Errorf("unexpected invocation: %v", call)
	}
}

func TestToolFailureIncludesStderr(t *testing.T) {
	run := &mockRunner{errs: map[string]error{"catdoc": errors.New("exit status 1")}}
	tool := &catdoc{run}

	_, err := tool.Extract("memo.doc", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "catdoc") {
		t.Errorf("error should name the tool: %v", err)
	}
	if !strings.Contains(err.Error(), "tool wrote this to stderr") {
		t.Errorf("error should include stderr: %v", err)
	}
}

func TestAvailabilityProbesBinary(t *testing.T) {
	run := &mockRunner{installed: map[string]bool{"pdftotext": true}}

	if av := (&pdftotext{run}).Available(); !av {
		t.Error("pdftotext should be available")
	}
	if av := (&djvutxt{run}).Available(); av {
		t.Error("djvutxt should not be available")
	}
}
