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

// Package collector wires the diagnostic collectors together.
//
// # Collectors
//
// Every collector has a single Collect method that never fails. Problems
// are recorded on the result as fallback values:
//
//   - collector/host: platform, virtualization, CPU cores, memory
//   - collector/icinga: daemon version from "icinga2 --version"
//   - collector/systemd: state of the daemon's service unit
//
// The supporting packages collector/command and collector/file run external
// commands and split their output.
//
// # Factory Pattern
//
// The Factory interface abstracts collector creation so the runner can be
// tested without touching the host:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithIcingaBinary("/usr/sbin/icinga2"),
//	    collector.WithServiceUnit("icinga2.service"),
//	    collector.WithTimeout(30*time.Second),
//	    collector.WithLogger(logger),
//	)
//
//	hostInfo := factory.CreateHostCollector().Collect(ctx)
//	daemon := factory.CreateIcingaCollector().Collect(ctx)
//
// Collectors run sequentially in the order host, daemon, service.
package collector
