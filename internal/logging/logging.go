// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the converter's logger. Library callers
// get a silent logger from New; the CLI calls Setup to enable console
// output with the selected level and format.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/convert-to-txt/pkg/types"
)

// New returns a logger with all output discarded, the right default
// when the converter is used as a library.
func New() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Setup configures log for console output on stderr. Quiet discards
// all output regardless of level, and verbose forces debug level over
// whatever cfg asks for.
func Setup(log *logrus.Logger, quiet, verbose bool, cfg types.LoggingConfig) error {
	if quiet {
		log.SetOutput(io.Discard)
		return nil
	}

	level := logrus.DebugLevel
	if !verbose {
		var err error
		level, err = parseLevel(cfg.Level)
		if err != nil {
			return err
		}
	}

	format, err := newFormatter(cfg.Format)
	if err != nil {
		return err
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	log.SetFormatter(format)
	return nil
}

func parseLevel(s string) (logrus.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return logrus.InfoLevel, nil
	case "debug":
		return logrus.DebugLevel, nil
	case "warning", "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	}
	return 0, fmt.Errorf("unknown log level %q (use debug, info, warning, or error)", s)
}

func newFormatter(name string) (logrus.Formatter, error) {
	switch name {
	case "", "only_msg":
		return onlyMsgFormatter{}, nil
	case "simple":
		return simpleFormatter{}, nil
	case "console":
		return consoleFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown log format %q (use console, only_msg, or simple)", name)
}

// onlyMsgFormatter prints the bare message, the default format.
type onlyMsgFormatter struct{}

func (onlyMsgFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return []byte(e.Message + "\n"), nil
}

// simpleFormatter prints "LEVEL    message".
type simpleFormatter struct{}

func (simpleFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("%-8s %s\n", levelTag(e.Level), e.Message)), nil
}

// consoleFormatter prints "program    | LEVEL    | message".
type consoleFormatter struct{}

func (consoleFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("%-10s | %-8s | %s\n", "convert", levelTag(e.Level), e.Message)), nil
}

func levelTag(l logrus.Level) string {
	if l == logrus.WarnLevel {
		return "WARNING"
	}
	return strings.ToUpper(l.String())
}
