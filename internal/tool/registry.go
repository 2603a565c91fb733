// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tool

import (
	"errors"
	"fmt"

	"github.com/pdiddy/convert-to-txt/pkg/types"
)

var (
	// ErrUnsupportedType means no registered tool handles the type.
	ErrUnsupportedType = errors.New("unsupported document type")

	// ErrNoConverter means tools exist for the type but none of them
	// resolves on PATH.
	ErrNoConverter = errors.New("no converter available")
)

// Registry holds the static table mapping document types to their
// ordered candidate tools, fastest first, ebook-convert last as the
// universal fallback.
type Registry struct {
	candidates map[types.MimeType][]Tool
	all        []Tool
}

// NewRegistry builds the tool table over the given runner.
func NewRegistry(run Runner) *Registry {
	var (
		pdf       = &pdftotext{run}
		djvu      = &djvutxt{run}
		epub      = &epubtxt{run}
		word      = &textutil{run}
		wordAlt   = &catdoc{run}
		universal = &ebookConvert{run}
	)

	return &Registry{
		candidates: map[types.MimeType][]Tool{
			types.MimePDF:  {pdf, universal},
			types.MimeDjvu: {djvu, universal},
			types.MimeEpub: {epub, universal},
			types.MimeDoc:  {word, wordAlt, universal},
			types.MimeDocx: {universal},
			types.MimeRTF:  {universal},
		},
		all: []Tool{pdf, djvu, epub, word, wordAlt, universal},
	}
}

// Select picks the tool for a MIME type.
//
// Without an override, candidates are tried in table order and the
// first one installed wins. A non-empty override restricts the choice
// to the named tool and fails when it is not installed: silently
// substituting ebook-convert would hand the caller a far slower tool
// than the one they asked for.
//
// Selection is purely an availability check. Once a tool has been
// selected and invoked, its failure is terminal; there is no
// retry-on-failure cascade to the next candidate.
func (r *Registry) Select(mt types.MimeType, override types.ConvertMethod) (Tool, error) {
	cands, ok := r.candidates[mt]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mt)
	}

	if override != "" {
		for _, t := range cands {
			if t.Name() != string(override) {
				continue
			}
			if !t.Available() {
				return nil, fmt.Errorf("%w: %s was requested for %s documents but is not installed",
					ErrNoConverter, override, mt)
			}
			return t, nil
		}
		return nil, fmt.Errorf("%w: %s cannot convert %s documents", ErrUnsupportedType, override, mt)
	}

	for _, t := range cands {
		if t.Available() {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w for %s documents", ErrNoConverter, mt)
}

// Candidates returns the candidate tools for a type in selection order.
func (r *Registry) Candidates(mt types.MimeType) []Tool {
	return r.candidates[mt]
}

// All returns every registered tool once, for availability listings.
func (r *Registry) All() []Tool {
	return r.all
}

// Types returns the supported document types in a stable order.
func (r *Registry) Types() []types.MimeType {
	return []types.MimeType{
		types.MimePDF,
		types.MimeDjvu,
		types.MimeEpub,
		types.MimeDoc,
		types.MimeDocx,
		types.MimeRTF,
	}
}
