// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/convert-to-txt/pkg/types"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		installed map[string]bool
		mt        types.MimeType
		override  types.ConvertMethod
		wantTool  string
		wantErr   error
	}{
		{
			name:      "primary preferred when installed",
			installed: map[string]bool{"pdftotext": true, "ebook-convert": true},
			mt:        types.MimePDF,
			wantTool:  "pdftotext",
		},
		{
			name:      "universal fallback when primary missing",
			installed: map[string]bool{"ebook-convert": true},
			mt:        types.MimePDF,
			wantTool:  "ebook-convert",
		},
		{
			name:      "doc secondary when textutil missing",
			installed: map[string]bool{"catdoc": true, "ebook-convert": true},
			mt:        types.MimeDoc,
			wantTool:  "catdoc",
		},
		{
			name:      "docx only has the universal converter",
			installed: map[string]bool{"ebook-convert": true},
			mt:        types.MimeDocx,
			wantTool:  "ebook-convert",
		},
		{
			name:      "epub availability probes unzip",
			installed: map[string]bool{"unzip": true},
			mt:        types.MimeEpub,
			wantTool:  "epubtxt",
		},
		{
			name:      "no candidate installed",
			installed: map[string]bool{},
			mt:        types.MimeDjvu,
			wantErr:   ErrNoConverter,
		},
		{
			name:      "unsupported type",
			installed: map[string]bool{"ebook-convert": true},
			mt:        types.MimeOther,
			wantErr:   ErrUnsupportedType,
		},
		{
			name:      "override wins over faster primary",
			installed: map[string]bool{"pdftotext": true, "ebook-convert": true},
			mt:        types.MimePDF,
			override:  types.MethodEbookConvert,
			wantTool:  "ebook-convert",
		},
		{
			name:      "override naming a missing tool fails hard",
			installed: map[string]bool{"ebook-convert": true},
			mt:        types.MimePDF,
			override:  types.MethodPdftotext,
			wantErr:   ErrNoConverter,
		},
		{
			name:      "override that is not a candidate for the type",
			installed: map[string]bool{"catdoc": true},
			mt:        types.MimePDF,
			override:  types.MethodCatdoc,
			wantErr:   ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry(&mockRunner{installed: tt.installed})
			tool, err := reg.Select(tt.mt, tt.override)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTool, tool.Name())
		})
	}
}

func TestNoConverterErrorNamesType(t *testing.T) {
	reg := NewRegistry(&mockRunner{})
	_, err := reg.Select(types.MimeDjvu, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "djvu")
}

func TestCandidatesOrder(t *testing.T) {
	reg := NewRegistry(&mockRunner{})

	var names []string
	for _, tool := range reg.Candidates(types.MimeDoc) {
		names = append(names, tool.Name())
	}
	assert.Equal(t, []string{"textutil", "catdoc", "ebook-convert"}, names)
}

func TestAllListsEachToolOnce(t *testing.T) {
	reg := NewRegistry(&mockRunner{})

	seen := map[string]int{}
	for _, tool := range reg.All() {
		seen[tool.Name()]++
	}
	for name, n := range seen {
		assert.Equal(t, 1, n, "tool %s listed %d times", name, n)
	}
	assert.Len(t, seen, 6)
}
