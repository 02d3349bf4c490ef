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

package host

import (
	"context"
	"log/slog"
	"math"
	"runtime"

	"github.com/Icinga/icinga2-diagnostics/pkg/logging"
)

// VirtualizationUnknown is reported when virt-what cannot be run, which in
// practice means the tool is not running as root.
const VirtualizationUnknown = "Not determinable. Not running as root?"

// Field names used in Info.Degraded.
const (
	FieldHostname       = "hostname"
	FieldPlatform       = "platform"
	FieldCPUCores       = "cpu_cores"
	FieldMemory         = "memory"
	FieldVirtualization = "virtualization"
)

const bytesPerGiB = 1 << 30

// Info holds the host facts of one report run.
type Info struct {
	Hostname       string  `json:"hostname" yaml:"hostname"`
	Platform       string  `json:"platform" yaml:"platform"`
	Virtualization string  `json:"virtualization" yaml:"virtualization"`
	RuntimeVersion string  `json:"runtimeVersion" yaml:"runtimeVersion"`
	CPUCores       int     `json:"cpuCores" yaml:"cpuCores"`
	PageSize       int64   `json:"pageSize" yaml:"pageSize"`
	PhysicalPages  int64   `json:"physicalPages" yaml:"physicalPages"`
	MemoryGiB      float64 `json:"memoryGiB" yaml:"memoryGiB"`

	// Degraded lists the fields that fell back to a default value.
	Degraded []string `json:"degraded,omitempty" yaml:"degraded,omitempty"`
}

// MemoryBytes returns PageSize * PhysicalPages.
func (i Info) MemoryBytes() float64 {
	return float64(i.PageSize) * float64(i.PhysicalPages)
}

// MemoryGiB returns floor(pageSize * pages / 2^30), or 0 for non-positive input.
func MemoryGiB(pageSize, pages int64) float64 {
	if pageSize <= 0 || pages <= 0 {
		return 0
	}
	if pages > math.MaxInt64/pageSize {
		return math.Floor(float64(pageSize) * float64(pages) / bytesPerGiB)
	}
	return float64((pageSize * pages) / bytesPerGiB)
}

// Collector gathers host facts. It never fails; every probe error degrades
// a single field.
type Collector struct {
	// Probe defaults to a SystemProbe.
	Probe Probe

	// SkipVirtualization avoids running virt-what; the field is then unknown.
	SkipVirtualization bool

	Logger *slog.Logger
}

// Collect queries the probe for each field in turn.
func (c *Collector) Collect(ctx context.Context) Info {
	log := logging.OrDiscard(c.Logger)

	probe := c.Probe
	if probe == nil {
		probe = &SystemProbe{Logger: c.Logger}
	}

	info := Info{
		RuntimeVersion: runtime.Version(),
	}
	degrade := func(field string, err error) {
		info.Degraded = append(info.Degraded, field)
		log.Warn("host fact unavailable, using fallback",
			slog.String("field", field),
			slog.String("error", err.Error()))
	}

	log.Debug("collecting host information")

	hostname, err := probe.Hostname(ctx)
	if err != nil || hostname == "" {
		if err == nil {
			err = errEmpty
		}
		degrade(FieldHostname, err)
		hostname = "unknown"
	}
	info.Hostname = hostname

	platform, err := probe.Platform(ctx)
	if err != nil || platform == "" {
		if err == nil {
			err = errEmpty
		}
		degrade(FieldPlatform, err)
		platform = runtime.GOOS + "-" + runtime.GOARCH
	}
	info.Platform = platform

	cores, err := probe.CPUCount(ctx)
	if err != nil || cores < 1 {
		if err == nil {
			err = errNotPositive
		}
		degrade(FieldCPUCores, err)
		cores = max(runtime.NumCPU(), 1)
	}
	info.CPUCores = cores

	pageSize, pages, err := probe.Memory(ctx)
	if err != nil || pageSize <= 0 || pages <= 0 {
		if err == nil {
			err = errNotPositive
		}
		degrade(FieldMemory, err)
		pageSize, pages = 0, 0
	}
	info.PageSize = pageSize
	info.PhysicalPages = pages
	info.MemoryGiB = MemoryGiB(pageSize, pages)

	if c.SkipVirtualization {
		info.Virtualization = VirtualizationUnknown
	} else {
		virt, err := probe.Virtualization(ctx)
		if err != nil {
			// virt-what needs root; this is the common case, not a warning.
			log.Debug("virtualization probe failed", slog.String("error", err.Error()))
			info.Degraded = append(info.Degraded, FieldVirtualization)
			virt = VirtualizationUnknown
		}
		info.Virtualization = virt
	}

	log.Debug("collected host information",
		slog.String("platform", info.Platform),
		slog.Int("cpu_cores", info.CPUCores),
		slog.Float64("memory_gib", info.MemoryGiB))

	return info
}
