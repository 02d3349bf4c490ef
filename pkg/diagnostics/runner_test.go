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
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Icinga/icinga2-diagnostics/pkg/collector"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/command"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/host"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/icinga"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/systemd"
	"github.com/Icinga/icinga2-diagnostics/pkg/header"
	"github.com/Icinga/icinga2-diagnostics/pkg/serializer"
)

type hostFunc func(context.Context) host.Info

func (f hostFunc) Collect(ctx context.Context) host.Info { return f(ctx) }

type serviceFunc func(context.Context) systemd.UnitInfo

func (f serviceFunc) Collect(ctx context.Context) systemd.UnitInfo { return f(ctx) }

type fakeFactory struct {
	host    host.Info
	icinga  collector.IcingaCollector
	service systemd.UnitInfo

	calls []string
}

func (f *fakeFactory) CreateHostCollector() collector.HostCollector {
	return hostFunc(func(context.Context) host.Info {
		f.calls = append(f.calls, CollectorHost)
		return f.host
	})
}

func (f *fakeFactory) CreateIcingaCollector() collector.IcingaCollector {
	f.calls = append(f.calls, CollectorIcinga)
	return f.icinga
}

func (f *fakeFactory) CreateServiceCollector() collector.ServiceCollector {
	return serviceFunc(func(context.Context) systemd.UnitInfo {
		f.calls = append(f.calls, CollectorSystemd)
		return f.service
	})
}

func icingaWith(out string, err error) collector.IcingaCollector {
	return &icinga.Collector{Runner: command.Func(func(context.Context, string, ...string) ([]byte, error) {
		return []byte(out), err
	})}
}

func newFactory(ic collector.IcingaCollector) *fakeFactory {
	return &fakeFactory{
		host: host.Info{
			Hostname:       "icinga-master",
			Platform:       "Linux-6.8.0-45-generic-x86_64-with-ubuntu-24.04",
			Virtualization: "kvm",
			RuntimeVersion: "go1.25.0",
			CPUCores:       4,
			PageSize:       4096,
			PhysicalPages:  2097152,
			MemoryGiB:      8,
		},
		icinga:  ic,
		service: systemd.UnitInfo{Unit: systemd.DefaultUnit, LoadState: "loaded", ActiveState: "active", SubState: "running", Available: true},
	}
}

var fixedTime = time.Date(2025, 12, 30, 10, 30, 0, 0, time.UTC)

func newRunner(f collector.Factory, buf *bytes.Buffer) *Runner {
	return &Runner{
		Version:    "0.2.0",
		Factory:    f,
		Serializer: serializer.NewWriter(serializer.FormatText, buf),
		Now:        func() time.Time { return fixedTime },
		Privileged: func() bool { return false },
	}
}

func TestRunner_Run_Installed(t *testing.T) {
	f := newFactory(icingaWith("Icinga 2 network monitoring daemon: 2.14.2-1\n", nil))
	var buf bytes.Buffer

	r, err := newRunner(f, &buf).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{CollectorHost, CollectorIcinga, CollectorSystemd}, f.calls)
	assert.Equal(t, header.KindDiagnosticsReport, r.Kind)
	assert.Equal(t, "0.2.0", r.ToolVersion())
	assert.NotEmpty(t, r.RunID())
	assert.Equal(t, "icinga-master", r.Hostname)
	require.NotNil(t, r.Service)

	want := `### Icinga Diagnostics ###
# Version: 0.2.0
# Run on icinga-master at 2025-12-30 10:30:00

Not running as root. Not all checks might be successful

### OS ###

OS: Linux-6.8.0-45-generic-x86_64-with-ubuntu-24.04
Virtualisation: kvm
Go: go1.25.0
CPU cores: 4
RAM: 8.0 Gi

### Icinga 2 ###

Icinga 2: 2.14.2
Icinga 2 service: active/running
`
	assert.Equal(t, want, buf.String())
}

func TestRunner_Run_NotInstalled(t *testing.T) {
	f := newFactory(icingaWith("", errors.New("exec: \"icinga2\": executable file not found in $PATH")))
	var buf bytes.Buffer

	r, err := newRunner(f, &buf).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{CollectorHost, CollectorIcinga}, f.calls)
	assert.Nil(t, r.Service)
	assert.True(t, strings.HasSuffix(buf.String(), "Icinga 2: Not installed\n"))
}

func TestRunner_Run_SkipService(t *testing.T) {
	f := newFactory(icingaWith("Icinga 2 network monitoring daemon: 2.14.2-1\n", nil))
	var buf bytes.Buffer

	runner := newRunner(f, &buf)
	runner.SkipService = true
	r, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, f.calls, CollectorSystemd)
	assert.Nil(t, r.Service)
	assert.NotContains(t, buf.String(), "Icinga 2 service:")
}

func TestRunner_Run_ServiceBusUnavailable(t *testing.T) {
	f := newFactory(icingaWith("Icinga 2 network monitoring daemon: 2.14.2-1\n", nil))
	f.service = systemd.UnitInfo{
		Unit:        systemd.DefaultUnit,
		LoadState:   systemd.StateUnknown,
		ActiveState: systemd.StateUnknown,
		SubState:    systemd.StateUnknown,
	}
	var buf bytes.Buffer

	r, err := newRunner(f, &buf).Run(context.Background())
	require.NoError(t, err)

	require.NotNil(t, r.Service)
	assert.False(t, r.Service.Available)
	assert.NotContains(t, buf.String(), "Icinga 2 service:")
	assert.True(t, strings.HasSuffix(buf.String(), "Icinga 2: 2.14.2\n"))
}

func TestRunner_Run_Privileged(t *testing.T) {
	f := newFactory(icingaWith("Icinga 2 network monitoring daemon: 2.14.2-1\n", nil))
	var buf bytes.Buffer

	runner := newRunner(f, &buf)
	runner.Privileged = func() bool { return true }
	_, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "Not running as root")
}

func TestRunner_Run_Repeatable(t *testing.T) {
	section := func() string {
		f := newFactory(icingaWith("Icinga 2 network monitoring daemon: 2.13.0-1\n", nil))
		var buf bytes.Buffer
		runner := newRunner(f, &buf)
		runner.Now = time.Now
		_, err := runner.Run(context.Background())
		require.NoError(t, err)
		_, after, found := strings.Cut(buf.String(), "### OS ###")
		require.True(t, found)
		return after
	}

	assert.Equal(t, section(), section())
}

type failingSerializer struct{}

func (failingSerializer) Serialize(context.Context, any) error {
	return errors.New("disk full")
}

func TestRunner_Run_SerializeError(t *testing.T) {
	f := newFactory(icingaWith("Icinga 2 network monitoring daemon: 2.14.2-1\n", nil))
	runner := newRunner(f, nil)
	runner.Serializer = failingSerializer{}

	r, err := runner.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	require.NotNil(t, r)
	assert.Equal(t, "2.14.2", r.Icinga.Version)
}

func TestRunner_Run_MetricsFile(t *testing.T) {
	f := newFactory(icingaWith("Icinga 2 network monitoring daemon: 2.14.2-1\n", nil))
	var buf bytes.Buffer

	path := filepath.Join(t.TempDir(), "icinga_diagnostics.prom")
	runner := newRunner(f, &buf)
	runner.MetricsFile = path
	_, err := runner.Run(context.Background())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "icinga_diagnostics_host_cpu_cores 4\n")
	assert.Contains(t, text, "icinga_diagnostics_host_memory_bytes 8.589934592e+09\n")
	assert.Contains(t, text, `icinga_diagnostics_icinga_info{status="installed",version="2.14.2"} 1`)
	assert.Contains(t, text, "icinga_diagnostics_privileged 0\n")
	assert.Contains(t, text, `icinga_diagnostics_collector_duration_seconds_count{collector="host"} 1`)
	assert.Contains(t, text, `icinga_diagnostics_collector_duration_seconds_count{collector="systemd"} 1`)
	assert.NotContains(t, text, "go_goroutines")
}

func TestRunner_Run_MetricsFileError(t *testing.T) {
	f := newFactory(icingaWith("Icinga 2 network monitoring daemon: 2.14.2-1\n", nil))
	var buf bytes.Buffer

	runner := newRunner(f, &buf)
	runner.MetricsFile = filepath.Join(t.TempDir(), "missing", "metrics.prom")
	_, err := runner.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics file")
	assert.NotEmpty(t, buf.String(), "report is written before metrics")
}
