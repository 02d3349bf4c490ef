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
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Icinga/icinga2-diagnostics/pkg/report"
)

// metrics is the per-run metric set. A private registry keeps the textfile
// free of Go runtime and process collectors.
type metrics struct {
	registry *prometheus.Registry

	cpuCores          prometheus.Gauge
	memoryBytes       prometheus.Gauge
	privileged        prometheus.Gauge
	icingaInfo        *prometheus.GaugeVec
	collectorDuration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		cpuCores: factory.NewGauge(prometheus.GaugeOpts{
			Name: "icinga_diagnostics_host_cpu_cores",
			Help: "Number of logical CPU cores",
		}),
		memoryBytes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "icinga_diagnostics_host_memory_bytes",
			Help: "Physical memory in bytes, page size times physical pages",
		}),
		privileged: factory.NewGauge(prometheus.GaugeOpts{
			Name: "icinga_diagnostics_privileged",
			Help: "Whether the diagnostics ran as root (1) or not (0)",
		}),
		icingaInfo: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "icinga_diagnostics_icinga_info",
				Help: "Installed Icinga 2 version, always 1",
			},
			[]string{"version", "status"},
		),
		collectorDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "icinga_diagnostics_collector_duration_seconds",
				Help:    "Time taken by individual collectors",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
			[]string{"collector"}, // host, icinga, systemd
		),
	}
}

// observe runs fn and records its duration under the collector label.
func (m *metrics) observe(collector string, fn func()) {
	start := time.Now()
	defer func() {
		m.collectorDuration.WithLabelValues(collector).Observe(time.Since(start).Seconds())
	}()
	fn()
}

func (m *metrics) record(r *report.Report) {
	m.cpuCores.Set(float64(r.Host.CPUCores))
	m.memoryBytes.Set(r.Host.MemoryBytes())
	m.icingaInfo.WithLabelValues(r.Icinga.Version, string(r.Icinga.Status)).Set(1)
	if r.Privileged {
		m.privileged.Set(1)
	} else {
		m.privileged.Set(0)
	}
}

// writeTextfile writes the metrics in the node_exporter textfile format.
// The file is replaced atomically.
func (m *metrics) writeTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics file %s: %w", path, err)
	}
	return nil
}
