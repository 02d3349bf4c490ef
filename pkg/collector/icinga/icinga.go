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

package icinga

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Icinga/icinga2-diagnostics/pkg/collector/command"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/file"
	"github.com/Icinga/icinga2-diagnostics/pkg/defaults"
	diagerrors "github.com/Icinga/icinga2-diagnostics/pkg/errors"
	"github.com/Icinga/icinga2-diagnostics/pkg/logging"
	"github.com/Icinga/icinga2-diagnostics/pkg/version"
)

const (
	// DefaultBinary is the daemon binary looked up on PATH.
	DefaultBinary = "icinga2"

	// VersionArg asks the daemon to print its version banner.
	VersionArg = "--version"

	// Banner identifies the version line in the daemon output.
	Banner = "Icinga 2 network monitoring daemon"

	// NotInstalled is displayed whenever no version could be determined.
	NotInstalled = "Not installed"
)

// Status classifies the outcome of a version probe.
type Status string

const (
	StatusInstalled      Status = "installed"
	StatusBinaryNotFound Status = "binary-not-found"
	StatusNonZeroExit    Status = "non-zero-exit"
	StatusBannerNotFound Status = "banner-not-found"
	StatusExecFailed     Status = "exec-failed"
)

// Info is the result of a daemon version probe.
// Version is NotInstalled for every status other than StatusInstalled.
type Info struct {
	Binary  string           `json:"binary" yaml:"binary"`
	Version string           `json:"version" yaml:"version"`
	Status  Status           `json:"status" yaml:"status"`
	Parsed  *version.Version `json:"parsed,omitempty" yaml:"parsed,omitempty"`

	// Err holds the reason for a non-installed status.
	Err error `json:"-" yaml:"-"`
}

// Installed reports whether a version was found.
func (i Info) Installed() bool {
	return i.Status == StatusInstalled
}

// Collector queries the Icinga 2 daemon for its version.
type Collector struct {
	// Binary defaults to DefaultBinary.
	Binary string

	// Runner defaults to command.ExecRunner with defaults.ProbeTimeout.
	Runner command.Runner

	Logger *slog.Logger
}

// Collect runs "<binary> --version" and extracts the version token.
// It never fails: every problem maps to the NotInstalled sentinel with the
// cause recorded in Info.Status and Info.Err.
func (c *Collector) Collect(ctx context.Context) Info {
	log := logging.OrDiscard(c.Logger)

	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	runner := c.Runner
	if runner == nil {
		runner = command.ExecRunner{Timeout: defaults.ProbeTimeout}
	}

	log.Debug("querying icinga2 version", slog.String("binary", binary))

	out, err := runner.Run(ctx, binary, VersionArg)
	if err != nil {
		status := statusFor(err)
		log.Debug("icinga2 version query failed",
			slog.String("binary", binary),
			slog.String("status", string(status)),
			slog.String("error", err.Error()))
		return notInstalled(binary, status, err)
	}

	token, err := ExtractVersion(out)
	if err != nil {
		log.Debug("icinga2 version banner not found",
			slog.String("binary", binary),
			slog.String("error", err.Error()))
		return notInstalled(binary, StatusBannerNotFound, err)
	}

	info := Info{
		Binary:  binary,
		Version: token,
		Status:  StatusInstalled,
	}
	if v, perr := version.ParseLoose(token); perr == nil && v.IsValid() {
		info.Parsed = &v
	} else if perr != nil {
		log.Debug("icinga2 version is not numeric",
			slog.String("version", token),
			slog.String("error", perr.Error()))
	}

	log.Debug("collected icinga2 version", slog.String("version", token))
	return info
}

// ExtractVersion scans daemon output for the banner line and returns the
// text between its first and second ':', cut before the first '-'. When
// several lines carry the banner the last usable one wins. Invalid UTF-8 or
// oversized output elsewhere does not hide the banner line.
func ExtractVersion(output []byte) (string, error) {
	p := file.NewParser(
		file.WithSkipComments(false),
		file.WithKVDelimiter(":"),
	)

	lines := p.SplitOutput(output, DefaultBinary+" "+VersionArg)

	var found string
	for _, line := range lines {
		if !strings.Contains(line, Banner) {
			continue
		}
		_, after, ok := p.Split(line)
		if !ok {
			continue
		}
		token, _, _ := strings.Cut(after, ":")
		token, _, _ = strings.Cut(token, "-")
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		found = token
	}

	if found == "" {
		return "", diagerrors.NewWithContext(diagerrors.ErrCodeParse, "version banner not found",
			map[string]any{"banner": Banner, "lines": len(lines)})
	}
	return found, nil
}

func statusFor(err error) Status {
	switch diagerrors.CodeOf(err) {
	case diagerrors.ErrCodeNotFound:
		return StatusBinaryNotFound
	case diagerrors.ErrCodeNonZeroExit:
		return StatusNonZeroExit
	default:
		return StatusExecFailed
	}
}

func notInstalled(binary string, status Status, err error) Info {
	return Info{
		Binary:  binary,
		Version: NotInstalled,
		Status:  status,
		Err:     err,
	}
}
