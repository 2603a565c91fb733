// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tool models the external conversion utilities and selects
// the right one for a document type. Every subprocess interaction
// goes through the Runner interface so the selection and invocation
// logic is testable without the binaries installed.
package tool

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

// DefaultTimeout bounds a single external tool invocation. A hung
// subprocess would otherwise block the conversion forever.
const DefaultTimeout = 10 * time.Minute

// Runner abstracts command lookup and execution.
type Runner interface {
	// LookPath reports where the named binary resolves on PATH.
	LookPath(file string) (string, error)

	// Run executes the command and returns its captured stdout and stderr.
	Run(name string, args ...string) (stdout, stderr string, err error)
}

// osRunner is the production runner backed by os/exec.
type osRunner struct {
	timeout time.Duration
}

// NewRunner returns a Runner that executes real commands under the
// given per-invocation timeout. A non-positive timeout means
// DefaultTimeout.
func NewRunner(timeout time.Duration) Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &osRunner{timeout: timeout}
}

func (r *osRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (r *osRunner) Run(name string, args ...string) (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		err = fmt.Errorf("timed out after %s", r.timeout)
	}
	return stdout.String(), stderr.String(), err
}
