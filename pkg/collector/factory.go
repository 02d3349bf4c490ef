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
	"context"
	"log/slog"
	"time"

	"github.com/Icinga/icinga2-diagnostics/pkg/collector/command"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/host"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/icinga"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/systemd"
	"github.com/Icinga/icinga2-diagnostics/pkg/defaults"
)

// HostCollector gathers facts about the local machine.
type HostCollector interface {
	Collect(ctx context.Context) host.Info
}

// IcingaCollector gathers the installed monitoring daemon version.
type IcingaCollector interface {
	Collect(ctx context.Context) icinga.Info
}

// ServiceCollector gathers the state of the daemon's service unit.
type ServiceCollector interface {
	Collect(ctx context.Context) systemd.UnitInfo
}

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateHostCollector() HostCollector
	CreateIcingaCollector() IcingaCollector
	CreateServiceCollector() ServiceCollector
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	IcingaBinary string
	ServiceUnit  string
	Timeout      time.Duration
	Logger       *slog.Logger
}

// Option is a functional option for configuring DefaultFactory.
type Option func(*DefaultFactory)

// WithIcingaBinary sets the daemon binary name or path.
func WithIcingaBinary(binary string) Option {
	return func(f *DefaultFactory) {
		if binary != "" {
			f.IcingaBinary = binary
		}
	}
}

// WithServiceUnit sets the systemd unit queried by the service collector.
func WithServiceUnit(unit string) Option {
	return func(f *DefaultFactory) {
		if unit != "" {
			f.ServiceUnit = unit
		}
	}
}

// WithTimeout bounds each external command. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(f *DefaultFactory) {
		f.Timeout = d
	}
}

// WithLogger sets the logger handed to every collector.
func WithLogger(logger *slog.Logger) Option {
	return func(f *DefaultFactory) {
		f.Logger = logger
	}
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		IcingaBinary: icinga.DefaultBinary,
		ServiceUnit:  systemd.DefaultUnit,
		Timeout:      defaults.ProbeTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *DefaultFactory) runner() command.Runner {
	return command.ExecRunner{Timeout: f.Timeout}
}

// CreateHostCollector creates a host collector backed by the system probe.
func (f *DefaultFactory) CreateHostCollector() HostCollector {
	return &host.Collector{
		Probe:  &host.SystemProbe{Runner: f.runner(), Logger: f.Logger},
		Logger: f.Logger,
	}
}

// CreateIcingaCollector creates a daemon version collector.
func (f *DefaultFactory) CreateIcingaCollector() IcingaCollector {
	return &icinga.Collector{
		Binary: f.IcingaBinary,
		Runner: f.runner(),
		Logger: f.Logger,
	}
}

// CreateServiceCollector creates a systemd unit collector.
func (f *DefaultFactory) CreateServiceCollector() ServiceCollector {
	return &systemd.Collector{
		Unit:   f.ServiceUnit,
		Logger: f.Logger,
	}
}
