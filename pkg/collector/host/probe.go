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
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	gohost "github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Icinga/icinga2-diagnostics/pkg/collector/command"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/file"
	"github.com/Icinga/icinga2-diagnostics/pkg/defaults"
)

var (
	errEmpty       = errors.New("empty value")
	errNotPositive = errors.New("value is not positive")
)

var (
	filePathReleasePrimary  = "/etc/os-release"
	filePathReleaseFallback = "/usr/lib/os-release"

	virtWhatBinary = "virt-what"
)

// Probe reads raw host facts. Implementations may fail; the Collector maps
// failures to fallbacks.
type Probe interface {
	Hostname(ctx context.Context) (string, error)
	Platform(ctx context.Context) (string, error)
	CPUCount(ctx context.Context) (int, error)
	Memory(ctx context.Context) (pageSize, pages int64, err error)
	Virtualization(ctx context.Context) (string, error)
}

// SystemProbe reads facts from the running host.
type SystemProbe struct {
	// Runner executes virt-what. Defaults to command.ExecRunner.
	Runner command.Runner

	Logger *slog.Logger
}

// Hostname returns the kernel host name.
func (p *SystemProbe) Hostname(context.Context) (string, error) {
	return os.Hostname()
}

// Platform describes the OS as <System>-<kernel>-<arch>-with-<distro>-<version>.
// When gopsutil cannot read host information the os-release file is used.
func (p *SystemProbe) Platform(ctx context.Context) (string, error) {
	hi, err := gohost.InfoWithContext(ctx)
	if err == nil {
		return FormatPlatform(hi.OS, hi.KernelVersion, hi.KernelArch, hi.Platform, hi.PlatformVersion), nil
	}

	release, rerr := readOSRelease()
	if rerr != nil {
		return "", fmt.Errorf("failed to read host info: %w", errors.Join(err, rerr))
	}
	return FormatPlatform(runtime.GOOS, "", runtime.GOARCH, release["ID"], release["VERSION_ID"]), nil
}

// CPUCount returns the number of logical cores.
func (p *SystemProbe) CPUCount(ctx context.Context) (int, error) {
	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("failed to count logical cpus: %w", err)
	}
	return n, nil
}

// Memory returns the page size and number of physical pages. Where sysconf
// is unavailable the total from gopsutil is expressed in OS pages.
func (p *SystemProbe) Memory(ctx context.Context) (int64, int64, error) {
	pageSize, pages, err := sysconfMemory()
	if err == nil {
		return pageSize, pages, nil
	}

	vm, verr := mem.VirtualMemoryWithContext(ctx)
	if verr != nil {
		return 0, 0, fmt.Errorf("failed to read physical memory: %w", errors.Join(err, verr))
	}
	pageSize, pages = totalToPages(vm.Total, os.Getpagesize())
	return pageSize, pages, nil
}

// totalToPages expresses a byte total in whole pages of pageSize bytes.
// A non-positive page size yields zero pages.
func totalToPages(total uint64, pageSize int) (int64, int64) {
	if pageSize <= 0 {
		return 0, 0
	}
	pages := total / uint64(pageSize)
	if pages > math.MaxInt64 {
		pages = math.MaxInt64
	}
	return int64(pageSize), int64(pages)
}

// Virtualization runs virt-what and joins the reported facts. Bare metal
// prints nothing and is reported as "none".
func (p *SystemProbe) Virtualization(ctx context.Context) (string, error) {
	runner := p.Runner
	if runner == nil {
		runner = command.ExecRunner{Timeout: defaults.ProbeTimeout}
	}

	out, err := runner.Run(ctx, virtWhatBinary)
	if err != nil {
		return "", err
	}

	lines := file.NewParser(file.WithSkipComments(false), file.WithLogger(p.Logger)).
		SplitOutput(out, virtWhatBinary)
	if len(lines) == 0 {
		return "none", nil
	}
	return strings.Join(lines, ", "), nil
}

// FormatPlatform joins the non-empty platform components.
//
//	FormatPlatform("linux", "6.8.0-45-generic", "x86_64", "ubuntu", "24.04")
//	// Linux-6.8.0-45-generic-x86_64-with-ubuntu-24.04
func FormatPlatform(osName, kernel, arch, distro, distroVersion string) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{cases.Title(language.Und).String(osName), kernel, arch} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	res := strings.Join(parts, "-")

	if distro != "" {
		res += "-with-" + distro
		if distroVersion != "" {
			res += "-" + distroVersion
		}
	}
	return res
}

func readOSRelease() (map[string]string, error) {
	path := filePathReleasePrimary
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = filePathReleaseFallback
	}

	parser := file.NewParser(
		file.WithVTrimChars(`"'`),
		file.WithSkipEmptyValues(true),
	)
	return parser.GetMap(path)
}
