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

// Package diagnostics runs the collectors and writes the report.
//
// # Flow
//
// A run is strictly sequential:
//
//  1. header initialization (timestamp, version, run id) and privilege check
//  2. host facts
//  3. Icinga 2 daemon version
//  4. systemd unit state, only when the daemon is installed
//  5. serialization in the configured format
//  6. optional Prometheus textfile
//
// # Usage
//
//	writer, err := serializer.NewFileWriterOrStdout(serializer.FormatText, "")
//	if err != nil {
//	    return err
//	}
//	defer writer.Close()
//
//	runner := &diagnostics.Runner{
//	    Version:     "0.2.0",
//	    Factory:     collector.NewDefaultFactory(collector.WithLogger(logger)),
//	    Serializer:  writer,
//	    MetricsFile: "/var/lib/node_exporter/icinga_diagnostics.prom",
//	    Logger:      logger,
//	}
//	rep, err := runner.Run(ctx)
//
// # Metrics
//
// Every run uses its own registry, so the textfile only contains:
//
//	icinga_diagnostics_host_cpu_cores
//	icinga_diagnostics_host_memory_bytes
//	icinga_diagnostics_icinga_info{version,status}
//	icinga_diagnostics_collector_duration_seconds{collector}
//	icinga_diagnostics_privileged
package diagnostics
