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

package diagnostics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Icinga/icinga2-diagnostics/pkg/collector"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/host"
	"github.com/Icinga/icinga2-diagnostics/pkg/header"
	"github.com/Icinga/icinga2-diagnostics/pkg/logging"
	"github.com/Icinga/icinga2-diagnostics/pkg/report"
	"github.com/Icinga/icinga2-diagnostics/pkg/serializer"
)

// Collector labels used in logs and metrics.
const (
	CollectorHost    = "host"
	CollectorIcinga  = "icinga"
	CollectorSystemd = "systemd"
)

// Runner performs one diagnostics run: it collects host and daemon facts,
// serializes the report and optionally writes a metrics textfile.
type Runner struct {
	// Version is the tool version printed in the report header.
	Version string

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer is the serializer to use for output. If nil, the text report
	// is written to stdout.
	Serializer serializer.Serializer

	// SkipService disables the systemd unit query.
	SkipService bool

	// MetricsFile, when set, receives the run's metrics in the Prometheus
	// textfile format.
	MetricsFile string

	Logger *slog.Logger

	// Now and Privileged default to time.Now and host.IsPrivileged.
	Now        func() time.Time
	Privileged func() bool
}

// Run collects, renders and writes the report. Collection never fails;
// only output errors are returned. The report is returned even then.
func (n *Runner) Run(ctx context.Context) (*report.Report, error) {
	log := logging.OrDiscard(n.Logger)

	factory := n.Factory
	if factory == nil {
		factory = collector.NewDefaultFactory(collector.WithLogger(n.Logger))
	}
	now := n.Now
	if now == nil {
		now = time.Now
	}
	isPrivileged := n.Privileged
	if isPrivileged == nil {
		isPrivileged = host.IsPrivileged
	}

	m := newMetrics()

	log.Debug("starting diagnostics run")

	at := now()
	r := &report.Report{
		Timestamp:  at,
		Privileged: isPrivileged(),
	}
	if err := r.Init(header.KindDiagnosticsReport, header.APIVersion, n.Version, at); err != nil {
		return nil, err
	}
	log.Debug("initialized report", slog.String("run_id", r.RunID()), slog.Bool("privileged", r.Privileged))

	m.observe(CollectorHost, func() {
		r.Host = factory.CreateHostCollector().Collect(ctx)
	})
	r.Hostname = r.Host.Hostname

	m.observe(CollectorIcinga, func() {
		r.Icinga = factory.CreateIcingaCollector().Collect(ctx)
	})

	if !n.SkipService && r.Icinga.Installed() {
		m.observe(CollectorSystemd, func() {
			unit := factory.CreateServiceCollector().Collect(ctx)
			r.Service = &unit
		})
	}

	m.record(r)

	log.Debug("diagnostics collection complete",
		slog.String("icinga_status", string(r.Icinga.Status)),
		slog.Any("degraded", r.Host.Degraded))

	ser := n.Serializer
	if ser == nil {
		ser = serializer.NewStdoutWriter(serializer.FormatText)
	}
	if err := ser.Serialize(ctx, r); err != nil {
		log.Error("failed to serialize", slog.String("error", err.Error()))
		return r, fmt.Errorf("failed to serialize: %w", err)
	}

	if n.MetricsFile != "" {
		if err := m.writeTextfile(n.MetricsFile); err != nil {
			log.Error("failed to write metrics", slog.String("error", err.Error()))
			return r, err
		}
		log.Debug("wrote metrics file", slog.String("path", n.MetricsFile))
	}

	return r, nil
}
