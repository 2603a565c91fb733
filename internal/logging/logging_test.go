// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/convert-to-txt/pkg/types"
)

func TestNewIsSilent(t *testing.T) {
	log := New()
	assert.Equal(t, io.Discard, log.Out)
}

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		cfg     types.LoggingConfig
		want    logrus.Level
	}{
		{"default is info", false, types.LoggingConfig{}, logrus.InfoLevel},
		{"explicit warning", false, types.LoggingConfig{Level: "warning"}, logrus.WarnLevel},
		{"explicit error", false, types.LoggingConfig{Level: "error"}, logrus.ErrorLevel},
		{"verbose forces debug", true, types.LoggingConfig{Level: "error"}, logrus.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New()
			require.NoError(t, Setup(log, false, tt.verbose, tt.cfg))
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestSetupQuietDiscards(t *testing.T) {
	log := New()
	require.NoError(t, Setup(log, true, false, types.LoggingConfig{Level: "debug"}))
	assert.Equal(t, io.Discard, log.Out)
}

func TestSetupRejectsUnknownValues(t *testing.T) {
	assert.Error(t, Setup(New(), false, false, types.LoggingConfig{Level: "loud"}))
	assert.Error(t, Setup(New(), false, false, types.LoggingConfig{Format: "fancy"}))
}

func TestFormatters(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"only_msg", "conversion done\n"},
		{"", "conversion done\n"},
		{"simple", "WARNING  conversion done\n"},
		{"console", "convert    | WARNING  | conversion done\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			log := New()
			require.NoError(t, Setup(log, false, false, types.LoggingConfig{Format: tt.format, Level: "debug"}))

			var buf bytes.Buffer
			log.SetOutput(&buf)
			log.Warn("conversion done")

			assert.Equal(t, tt.want, buf.String())
		})
	}
}
