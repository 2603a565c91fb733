// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect classifies input documents by MIME type. Detection
// sniffs file content rather than trusting the extension, so a PDF
// named report.doc still dispatches to the PDF tools. The one
// exception is the .txt extension, which short-circuits to plaintext
// before any content inspection.
package detect

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/pdiddy/convert-to-txt/pkg/types"
)

// sniffed maps content signatures to classifications, in match order.
var sniffed = []struct {
	mime string
	t    types.MimeType
}{
	{"application/pdf", types.MimePDF},
	{"image/vnd.djvu", types.MimeDjvu},
	{"application/epub+zip", types.MimeEpub},
	{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", types.MimeDocx},
	{"application/msword", types.MimeDoc},
	{"text/rtf", types.MimeRTF},
	{"application/rtf", types.MimeRTF},
	{"text/plain", types.MimePlainText},
}

// byExt resolves documents whose content sniff comes back generic
// (octet-stream, bare zip). Bundled DjVu files and some OOXML archives
// land here.
var byExt = map[string]types.MimeType{
	".pdf":  types.MimePDF,
	".djvu": types.MimeDjvu,
	".djv":  types.MimeDjvu,
	".epub": types.MimeEpub,
	".doc":  types.MimeDoc,
	".docx": types.MimeDocx,
	".rtf":  types.MimeRTF,
}

// File classifies the document at path. Unrecognized content yields
// MimeOther, which the converter reports as an unsupported type; it is
// not an error at this layer.
func File(path string) (types.MimeType, error) {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return types.MimePlainText, nil
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return types.MimeOther, fmt.Errorf("detecting type of %s: %w", path, err)
	}

	for _, s := range sniffed {
		if mt.Is(s.mime) {
			return s.t, nil
		}
	}

	if mt.Is("application/octet-stream") || mt.Is("application/zip") {
		if t, ok := byExt[strings.ToLower(filepath.Ext(path))]; ok {
			return t, nil
		}
	}

	return types.MimeOther, nil
}
