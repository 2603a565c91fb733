// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConvertMethod names an external conversion tool.
type ConvertMethod string

const (
	MethodPdftotext    ConvertMethod = "pdftotext"
	MethodDjvutxt      ConvertMethod = "djvutxt"
	MethodEpubtxt      ConvertMethod = "epubtxt"
	MethodTextutil     ConvertMethod = "textutil"
	MethodCatdoc       ConvertMethod = "catdoc"
	MethodEbookConvert ConvertMethod = "ebook-convert"
)

// MethodConfig holds per-type conversion method overrides. An empty
// field means automatic selection: the fastest installed tool for the
// type, falling back to ebook-convert. A non-empty field pins the
// named tool and fails the conversion when it is not installed.
type MethodConfig struct {
	Djvu   ConvertMethod `json:"djvu,omitempty" yaml:"djvu,omitempty"`
	Epub   ConvertMethod `json:"epub,omitempty" yaml:"epub,omitempty"`
	Msword ConvertMethod `json:"msword,omitempty" yaml:"msword,omitempty"`
	PDF    ConvertMethod `json:"pdf,omitempty" yaml:"pdf,omitempty"`
}

// ForType returns the configured override for a MIME type, or "" when
// none applies. Both Word variants share the msword override.
func (c MethodConfig) ForType(mt MimeType) ConvertMethod {
	switch mt {
	case MimeDjvu:
		return c.Djvu
	case MimeEpub:
		return c.Epub
	case MimeDoc, MimeDocx:
		return c.Msword
	case MimePDF:
		return c.PDF
	}
	return ""
}

// ConvertConfig holds settings for a conversion run.
type ConvertConfig struct {
	// Methods pins the conversion tool per document type.
	Methods MethodConfig `json:"methods" yaml:"methods"`

	// Timeout bounds a single external tool invocation (default 10m).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// OutputFile is the default output path for the CLI (default "output.txt").
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// CacheConfig holds settings for the conversion result cache.
type CacheConfig struct {
	// Enabled turns the cache on; conversions then reuse stored results
	// for unchanged inputs.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the cache directory (default: the user cache dir).
	Dir string `json:"dir" yaml:"dir"`
}

// LoggingConfig holds the console logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warning, error (default info).
	Level string `json:"level" yaml:"level"`

	// Format is one of console, only_msg, simple (default only_msg).
	Format string `json:"format" yaml:"format"`
}
