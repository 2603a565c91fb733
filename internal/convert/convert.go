// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates document-to-text conversion: it detects
// the input type, selects the external tool for it, translates the
// page selection, runs the tool, and validates the result. No text
// extraction happens here; the external tools own that.
package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/convert-to-txt/internal/cache"
	"github.com/pdiddy/convert-to-txt/internal/detect"
	"github.com/pdiddy/convert-to-txt/internal/logging"
	"github.com/pdiddy/convert-to-txt/internal/pages"
	"github.com/pdiddy/convert-to-txt/internal/tool"
	"github.com/pdiddy/convert-to-txt/pkg/types"
)

var (
	// ErrInputNotFound means the input path does not exist or is not a
	// regular file.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInvalidOutputExtension means the output path does not end in .txt.
	ErrInvalidOutputExtension = errors.New("output file needs a .txt extension")

	// ErrToolFailed means the selected tool was invoked and failed.
	// There is no cascade to another candidate after this point.
	ErrToolFailed = errors.New("conversion tool failed")

	// ErrOutputWrite means the extracted text could not be written out.
	ErrOutputWrite = errors.New("writing output failed")
)

// Converter runs conversions against a tool registry. Each Convert
// call is independent; a Converter is safe for sequential reuse.
type Converter struct {
	registry *tool.Registry
	log      *logrus.Logger
	store    *cache.Store // nil when caching is disabled
}

// New builds a Converter over the given registry. A nil logger keeps
// the converter silent, the right default for library use.
func New(registry *tool.Registry, log *logrus.Logger) *Converter {
	if log == nil {
		log = logging.New()
	}
	return &Converter{registry: registry, log: log}
}

// WithCache attaches a conversion result cache. Cache errors degrade
// to warnings; they never fail a conversion.
func (c *Converter) WithCache(store *cache.Store) *Converter {
	c.store = store
	return c
}

// Request describes one conversion.
type Request struct {
	// Input is the document to convert. Required.
	Input string

	// Output is the destination text file, which must end in .txt.
	// When empty, the extracted text is returned in the Result instead
	// of being written anywhere.
	Output string

	// Pages optionally restricts extraction, e.g. "1-10" or
	// "15-10,3,23-30". Silently ignored for document types without
	// page-addressable extraction.
	Pages string

	// Methods optionally pins the tool used per document type.
	Methods types.MethodConfig
}

// Result reports a finished conversion.
type Result struct {
	// Text holds the extracted text when no output path was given.
	Text string

	// OutputPath is the file written when an output path was given.
	OutputPath string

	// MimeType is the detected classification of the input.
	MimeType types.MimeType

	// Tool names the selected external tool; empty on the plaintext
	// fast path. Set on cache hits too, even though nothing ran.
	Tool string

	// EmptyExtraction is set when the extracted text has no
	// alphanumeric content. The conversion still counts as a success:
	// a blank document is a legitimate input, but the usual cause is
	// an image-only source that would need OCR.
	EmptyExtraction bool
}

// Convert runs the full conversion procedure for req.
func (c *Converter) Convert(req Request) (*Result, error) {
	info, err := os.Stat(req.Input)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, req.Input)
	}

	if req.Output != "" {
		if !strings.EqualFold(filepath.Ext(req.Output), ".txt") {
			return nil, fmt.Errorf("%w: %s", ErrInvalidOutputExtension, req.Output)
		}
		if _, err := os.Stat(req.Output); err == nil {
			c.log.Infof("output file already exists and will be overwritten: %s", req.Output)
		}
	}

	mt, err := detect.File(req.Input)
	if err != nil {
		return nil, err
	}
	c.log.Debugf("detected %s as %s", req.Input, mt)

	// Fast path: already text, hand the raw bytes through untouched.
	if mt == types.MimePlainText {
		c.log.Warnf("%s is already plain text, no conversion needed", req.Input)
		data, err := os.ReadFile(req.Input)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", req.Input, err)
		}
		return c.report(req, &Result{MimeType: mt}, string(data))
	}

	selected, err := c.registry.Select(mt, req.Methods.ForType(mt))
	if err != nil {
		return nil, err
	}

	var pg *pages.Spec
	if req.Pages != "" {
		if mt.SupportsPaging() {
			if pg, err = pages.Parse(req.Pages); err != nil {
				return nil, err
			}
		} else {
			c.log.Debugf("%s documents are not page-addressable, ignoring pages %q", mt, req.Pages)
		}
	}

	res := &Result{MimeType: mt, Tool: selected.Name()}

	var key string
	if c.store != nil {
		key, err = cache.FileKey(req.Input, req.Pages, selected.Name())
		if err != nil {
			c.log.Warnf("cache: %v", err)
		} else if text, found, err := c.store.Lookup(key); err != nil {
			c.log.Warnf("cache: %v", err)
		} else if found {
			c.log.Debugf("cache hit for %s", req.Input)
			return c.report(req, res, text)
		}
	}

	c.log.Infof("converting %s with %s", req.Input, selected.Name())
	text, err := selected.Extract(req.Input, pg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolFailed, err)
	}

	if c.store != nil && key != "" {
		err := c.store.Put(cache.Entry{
			Key:       key,
			InputPath: req.Input,
			MimeType:  mt.String(),
			Tool:      selected.Name(),
			Pages:     req.Pages,
			Text:      text,
		})
		if err != nil {
			c.log.Warnf("cache: %v", err)
		}
	}

	return c.report(req, res, text)
}

// report validates the extracted text and either writes it to the
// requested output file or returns it in the result.
func (c *Converter) report(req Request, res *Result, text string) (*Result, error) {
	if !hasContent(text) {
		res.EmptyExtraction = true
		c.log.Warnf("extracted text from %s is empty, extraction may have failed (image-only source needing OCR?)", req.Input)
	}

	if req.Output == "" {
		res.Text = text
		return res, nil
	}

	if err := os.WriteFile(req.Output, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	res.OutputPath = req.Output
	c.log.Debugf("wrote %d bytes to %s", len(text), req.Output)
	return res, nil
}

// hasContent reports whether text contains at least one letter or
// digit. Whitespace-only or punctuation-only output is what a silent
// extraction failure looks like.
func hasContent(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
