// Copyright (c) 2025, The Icinga 2 Diagnostics Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package command runs external probe binaries and classifies their failures
// into structured errors.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	diagerrors "github.com/Icinga/icinga2-diagnostics/pkg/errors"
)

// waitDelay bounds how long Output waits for pipes held open by children of
// a killed process.
const waitDelay = time.Second

// Runner executes a binary and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs binaries resolved from PATH.
type ExecRunner struct {
	// Timeout bounds each invocation. Zero means no bound beyond ctx.
	Timeout time.Duration
}

// Run resolves name on PATH and runs it with args. Errors are
// *errors.StructuredError with one of the codes NOT_FOUND, NON_ZERO_EXIT,
// TIMEOUT or EXEC_FAILED.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	errCtx := map[string]any{
		"binary": name,
		"args":   args,
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return nil, diagerrors.WrapWithContext(diagerrors.ErrCodeNotFound,
			fmt.Sprintf("%s not found in PATH", name), err, errCtx)
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, diagerrors.WrapWithContext(diagerrors.ErrCodeTimeout,
				fmt.Sprintf("%s did not finish in time", name), ctxErr, errCtx)
		}
		return nil, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		errCtx["exit_code"] = exitErr.ExitCode()
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			errCtx["stderr"] = msg
		}
		return nil, diagerrors.WrapWithContext(diagerrors.ErrCodeNonZeroExit,
			fmt.Sprintf("%s exited with status %d", name, exitErr.ExitCode()), err, errCtx)
	}

	return nil, diagerrors.WrapWithContext(diagerrors.ErrCodeExecFailed,
		fmt.Sprintf("failed to execute %s", name), err, errCtx)
}

// Func adapts a function to the Runner interface.
type Func func(ctx context.Context, name string, args ...string) ([]byte, error)

// Run calls f.
func (f Func) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return f(ctx, name, args...)
}
