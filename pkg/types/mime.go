// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared document classifications and
// configuration structures used across the conversion pipeline.
package types

// MimeType classifies a document for conversion tool selection.
type MimeType string

const (
	MimePDF       MimeType = "pdf"
	MimeDjvu      MimeType = "djvu"
	MimeEpub      MimeType = "epub"
	MimeDoc       MimeType = "doc"
	MimeDocx      MimeType = "docx"
	MimeRTF       MimeType = "rtf"
	MimePlainText MimeType = "plaintext"

	// MimeOther marks documents no registered tool can convert.
	MimeOther MimeType = "other"
)

func (m MimeType) String() string { return string(m) }

// SupportsPaging reports whether the format allows page-addressable
// extraction. Only these types honor a page specification; for all
// others a page spec is accepted and ignored.
func (m MimeType) SupportsPaging() bool {
	return m == MimePDF || m == MimeDjvu
}
