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

// Package host collects basic facts about the machine running the report.
//
// # Facts
//
//   - Platform: "<System>-<kernel>-<arch>-with-<distro>-<version>" from gopsutil,
//     falling back to /etc/os-release and then GOOS-GOARCH
//   - Virtualization: output of virt-what, or "Not determinable. Not running as root?"
//   - RuntimeVersion: the Go runtime version of this binary
//   - CPUCores: logical cores, never below 1
//   - MemoryGiB: floor(sysconf(_SC_PAGE_SIZE) * sysconf(_SC_PHYS_PAGES) / 2^30)
//
// # Degradation
//
// Collect never fails. When a probe errors or returns an implausible value
// the field gets its fallback and its name is appended to Info.Degraded:
//
//	c := &host.Collector{Logger: logger}
//	info := c.Collect(ctx)
//	if len(info.Degraded) > 0 {
//	    // some fields are fallbacks
//	}
//
// virt-what is the only external process started by this package. It needs
// root, so its failure is logged at debug level only.
//
// # Testing
//
// Replace the Probe to feed fixed values:
//
//	c := &host.Collector{Probe: fakeProbe{cores: 8, pageSize: 4096, pages: 4 << 18}}
package host
