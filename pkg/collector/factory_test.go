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

package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Icinga/icinga2-diagnostics/pkg/collector/command"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/host"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/icinga"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/systemd"
	"github.com/Icinga/icinga2-diagnostics/pkg/defaults"
	"github.com/Icinga/icinga2-diagnostics/pkg/logging"
)

func TestNewDefaultFactory_Defaults(t *testing.T) {
	f := NewDefaultFactory()

	assert.Equal(t, icinga.DefaultBinary, f.IcingaBinary)
	assert.Equal(t, systemd.DefaultUnit, f.ServiceUnit)
	assert.Equal(t, defaults.ProbeTimeout, f.Timeout)
	assert.Nil(t, f.Logger)
}

func TestNewDefaultFactory_Options(t *testing.T) {
	logger := logging.Discard()
	f := NewDefaultFactory(
		WithIcingaBinary("/usr/sbin/icinga2"),
		WithServiceUnit("icinga2-master.service"),
		WithTimeout(5*time.Second),
		WithLogger(logger),
	)

	assert.Equal(t, "/usr/sbin/icinga2", f.IcingaBinary)
	assert.Equal(t, "icinga2-master.service", f.ServiceUnit)
	assert.Equal(t, 5*time.Second, f.Timeout)
	assert.Same(t, logger, f.Logger)
}

func TestNewDefaultFactory_EmptyOptionsKeepDefaults(t *testing.T) {
	f := NewDefaultFactory(WithIcingaBinary(""), WithServiceUnit(""), WithTimeout(0))

	assert.Equal(t, icinga.DefaultBinary, f.IcingaBinary)
	assert.Equal(t, systemd.DefaultUnit, f.ServiceUnit)
	assert.Zero(t, f.Timeout)
}

func TestDefaultFactory_CreateHostCollector(t *testing.T) {
	f := NewDefaultFactory(WithTimeout(3 * time.Second))

	c, ok := f.CreateHostCollector().(*host.Collector)
	require.True(t, ok, "expected *host.Collector")

	probe, ok := c.Probe.(*host.SystemProbe)
	require.True(t, ok, "expected *host.SystemProbe")
	assert.Equal(t, command.ExecRunner{Timeout: 3 * time.Second}, probe.Runner)
}

func TestDefaultFactory_CreateIcingaCollector(t *testing.T) {
	f := NewDefaultFactory(WithIcingaBinary("/opt/icinga2/sbin/icinga2"))

	c, ok := f.CreateIcingaCollector().(*icinga.Collector)
	require.True(t, ok, "expected *icinga.Collector")
	assert.Equal(t, "/opt/icinga2/sbin/icinga2", c.Binary)
	assert.Equal(t, command.ExecRunner{Timeout: defaults.ProbeTimeout}, c.Runner)
}

func TestDefaultFactory_CreateServiceCollector(t *testing.T) {
	f := NewDefaultFactory(WithServiceUnit("test.service"))

	c, ok := f.CreateServiceCollector().(*systemd.Collector)
	require.True(t, ok, "expected *systemd.Collector")
	assert.Equal(t, "test.service", c.Unit)
}
