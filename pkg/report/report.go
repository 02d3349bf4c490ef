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

package report

import (
	"fmt"
	"io"
	"time"

	"github.com/Icinga/icinga2-diagnostics/pkg/collector/host"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/icinga"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/systemd"
	"github.com/Icinga/icinga2-diagnostics/pkg/header"
)

// Section and banner lines of the text report.
const (
	TitleLine         = "### Icinga Diagnostics ###"
	OSSectionLine     = "### OS ###"
	IcingaSectionLine = "### Icinga 2 ###"
	NotRootAdvisory   = "Not running as root. Not all checks might be successful"
)

// Report is the result of one diagnostics run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Hostname   string    `json:"hostname" yaml:"hostname"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
	Privileged bool      `json:"privileged" yaml:"privileged"`

	Host   host.Info   `json:"host" yaml:"host"`
	Icinga icinga.Info `json:"icinga" yaml:"icinga"`

	// Service is nil when the unit was not probed.
	Service *systemd.UnitInfo `json:"service,omitempty" yaml:"service,omitempty"`
}

// ToolVersion returns the version recorded in the header metadata.
func (r *Report) ToolVersion() string {
	return r.Metadata[header.MetadataVersion]
}

// RenderText writes the text report to w line by line.
func (r *Report) RenderText(w io.Writer) error {
	return Render(r, WriterSink{W: w})
}

// Sink receives the report one line at a time. Lines carry no trailing
// newline.
type Sink interface {
	WriteLine(line string) error
}

// WriterSink writes each line followed by "\n" to W.
type WriterSink struct {
	W io.Writer
}

// WriteLine implements Sink.
func (s WriterSink) WriteLine(line string) error {
	_, err := io.WriteString(s.W, line+"\n")
	return err
}

// Render writes the human-readable report to sink. It stops at the first
// write error.
func Render(r *Report, sink Sink) error {
	w := &lineWriter{sink: sink}

	w.line(TitleLine)
	w.linef("# Version: %s", r.ToolVersion())
	w.linef("# Run on %s at %s", r.Hostname, r.Timestamp.Format(time.DateTime))
	w.line("")
	if !r.Privileged {
		w.line(NotRootAdvisory)
		w.line("")
	}

	w.line(OSSectionLine)
	w.line("")
	w.linef("OS: %s", r.Host.Platform)
	w.linef("Virtualisation: %s", r.Host.Virtualization)
	w.linef("Go: %s", r.Host.RuntimeVersion)
	w.linef("CPU cores: %d", r.Host.CPUCores)
	w.linef("RAM: %.1f Gi", r.Host.MemoryGiB)
	w.line("")

	w.line(IcingaSectionLine)
	w.line("")
	w.linef("Icinga 2: %s", r.Icinga.Version)
	if r.Icinga.Installed() && r.Service != nil && r.Service.Available {
		w.linef("Icinga 2 service: %s", r.Service.Summary())
	}

	if w.err != nil {
		return fmt.Errorf("failed to write report: %w", w.err)
	}
	return nil
}

type lineWriter struct {
	sink Sink
	err  error
}

func (w *lineWriter) line(s string) {
	if w.err != nil {
		return
	}
	w.err = w.sink.WriteLine(s)
}

func (w *lineWriter) linef(format string, args ...any) {
	w.line(fmt.Sprintf(format, args...))
}
