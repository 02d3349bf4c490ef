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

package systemd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/Icinga/icinga2-diagnostics/pkg/defaults"
	diagerrors "github.com/Icinga/icinga2-diagnostics/pkg/errors"
	"github.com/Icinga/icinga2-diagnostics/pkg/logging"
)

const (
	// DefaultUnit is the unit shipped by the icinga2 packages.
	DefaultUnit = "icinga2.service"

	// StateUnknown is used for every state when the unit cannot be queried.
	StateUnknown = "unknown"
)

// UnitInfo is the load and activity state of a single systemd unit.
type UnitInfo struct {
	Unit        string `json:"unit" yaml:"unit"`
	LoadState   string `json:"loadState" yaml:"loadState"`
	ActiveState string `json:"activeState" yaml:"activeState"`
	SubState    string `json:"subState" yaml:"subState"`
	Available   bool   `json:"available" yaml:"available"`
}

// Summary renders the state as "<active>/<sub>", e.g. "active/running".
func (u UnitInfo) Summary() string {
	return u.ActiveState + "/" + u.SubState
}

// PropertyGetter is the subset of *dbus.Conn used by the collector.
type PropertyGetter interface {
	GetUnitPropertiesContext(ctx context.Context, unit string) (map[string]any, error)
	Close()
}

// Dialer opens a connection to systemd.
type Dialer func(ctx context.Context) (PropertyGetter, error)

// DialSystem connects to the system instance of systemd over D-Bus.
func DialSystem(ctx context.Context) (PropertyGetter, error) {
	conn, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Collector reads the state of one unit. Failures never propagate; they
// produce an unavailable UnitInfo with unknown states.
type Collector struct {
	// Unit defaults to DefaultUnit.
	Unit string

	// Dial defaults to DialSystem.
	Dial Dialer

	// Timeout bounds the whole query. Defaults to defaults.ServiceProbeTimeout.
	Timeout time.Duration

	Logger *slog.Logger
}

// Collect queries LoadState, ActiveState and SubState of the unit.
func (c *Collector) Collect(ctx context.Context) UnitInfo {
	log := logging.OrDiscard(c.Logger)

	unit := c.Unit
	if unit == "" {
		unit = DefaultUnit
	}

	info, err := c.query(ctx, unit)
	if err != nil {
		// Containers and non-systemd hosts have no bus; this is expected.
		log.Debug("systemd unit state unavailable",
			slog.String("unit", unit),
			slog.String("error", err.Error()))
		return unknownUnit(unit)
	}

	log.Debug("collected systemd unit state",
		slog.String("unit", unit),
		slog.String("active", info.ActiveState),
		slog.String("sub", info.SubState))
	return info
}

func (c *Collector) query(ctx context.Context, unit string) (UnitInfo, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaults.ServiceProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dial := c.Dial
	if dial == nil {
		dial = DialSystem
	}

	conn, err := dial(ctx)
	if err != nil {
		return UnitInfo{}, diagerrors.Wrap(diagerrors.ErrCodeUnavailable, "failed to connect to systemd", err)
	}
	defer conn.Close()

	props, err := conn.GetUnitPropertiesContext(ctx, unit)
	if err != nil {
		return UnitInfo{}, diagerrors.WrapWithContext(diagerrors.ErrCodeUnavailable,
			"failed to get unit properties", err, map[string]any{"unit": unit})
	}

	info := UnitInfo{
		Unit:        unit,
		LoadState:   stringProperty(props, "LoadState"),
		ActiveState: stringProperty(props, "ActiveState"),
		SubState:    stringProperty(props, "SubState"),
		Available:   true,
	}
	if info.LoadState == StateUnknown && info.ActiveState == StateUnknown {
		return UnitInfo{}, diagerrors.NewWithContext(diagerrors.ErrCodeParse,
			"unit properties carry no state", map[string]any{"unit": unit})
	}
	return info, nil
}

func stringProperty(props map[string]any, key string) string {
	v, ok := props[key]
	if !ok {
		return StateUnknown
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	if s == "" {
		return StateUnknown
	}
	return s
}

func unknownUnit(unit string) UnitInfo {
	return UnitInfo{
		Unit:        unit,
		LoadState:   StateUnknown,
		ActiveState: StateUnknown,
		SubState:    StateUnknown,
	}
}
