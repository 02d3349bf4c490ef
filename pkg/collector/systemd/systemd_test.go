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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	props  map[string]any
	err    error
	unit   string
	closed bool
}

func (f *fakeConn) GetUnitPropertiesContext(_ context.Context, unit string) (map[string]any, error) {
	f.unit = unit
	return f.props, f.err
}

func (f *fakeConn) Close() { f.closed = true }

func dialer(conn *fakeConn) Dialer {
	return func(context.Context) (PropertyGetter, error) { return conn, nil }
}

func TestCollector_Collect(t *testing.T) {
	conn := &fakeConn{props: map[string]any{
		"LoadState":   "loaded",
		"ActiveState": "active",
		"SubState":    "running",
		"Id":          "icinga2.service",
	}}

	info := (&Collector{Dial: dialer(conn)}).Collect(context.Background())

	assert.Equal(t, UnitInfo{
		Unit:        DefaultUnit,
		LoadState:   "loaded",
		ActiveState: "active",
		SubState:    "running",
		Available:   true,
	}, info)
	assert.Equal(t, "active/running", info.Summary())
	assert.Equal(t, DefaultUnit, conn.unit)
	assert.True(t, conn.closed)
}

func TestCollector_Collect_CustomUnit(t *testing.T) {
	conn := &fakeConn{props: map[string]any{
		"LoadState":   "not-found",
		"ActiveState": "inactive",
		"SubState":    "dead",
	}}

	info := (&Collector{Unit: "icinga2-master.service", Dial: dialer(conn)}).Collect(context.Background())

	assert.Equal(t, "icinga2-master.service", conn.unit)
	assert.Equal(t, "icinga2-master.service", info.Unit)
	assert.Equal(t, "inactive/dead", info.Summary())
	assert.True(t, info.Available)
}

func TestCollector_Collect_Degraded(t *testing.T) {
	tests := []struct {
		name string
		dial Dialer
	}{
		{
			name: "no bus",
			dial: func(context.Context) (PropertyGetter, error) {
				return nil, errors.New("dial unix /run/systemd/private: connect: no such file or directory")
			},
		},
		{
			name: "property query fails",
			dial: dialer(&fakeConn{err: errors.New("access denied")}),
		},
		{
			name: "no state properties",
			dial: dialer(&fakeConn{props: map[string]any{"Id": "icinga2.service"}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := (&Collector{Dial: tt.dial}).Collect(context.Background())

			assert.False(t, info.Available)
			assert.Equal(t, DefaultUnit, info.Unit)
			assert.Equal(t, StateUnknown, info.LoadState)
			assert.Equal(t, StateUnknown, info.ActiveState)
			assert.Equal(t, StateUnknown, info.SubState)
		})
	}
}

func TestCollector_Collect_AppliesTimeout(t *testing.T) {
	var deadline time.Time
	var ok bool
	c := &Collector{
		Timeout: 2 * time.Second,
		Dial: func(ctx context.Context) (PropertyGetter, error) {
			deadline, ok = ctx.Deadline()
			return nil, errors.New("no bus")
		},
	}

	start := time.Now()
	c.Collect(context.Background())

	require.True(t, ok)
	assert.WithinDuration(t, start.Add(2*time.Second), deadline, time.Second)
}

func TestStringProperty(t *testing.T) {
	props := map[string]any{
		"ActiveState": "active",
		"Empty":       "",
		"Number":      uint32(3),
	}

	assert.Equal(t, "active", stringProperty(props, "ActiveState"))
	assert.Equal(t, StateUnknown, stringProperty(props, "Empty"))
	assert.Equal(t, StateUnknown, stringProperty(props, "Missing"))
	assert.Equal(t, "3", stringProperty(props, "Number"))
}

func TestCollector_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	info := (&Collector{}).Collect(context.Background())

	assert.Equal(t, DefaultUnit, info.Unit)
	if !info.Available {
		t.Log("D-Bus unavailable - graceful degradation returned unknown state")
		assert.Equal(t, StateUnknown, info.ActiveState)
		return
	}
	assert.NotEmpty(t, info.LoadState)
	t.Logf("%s: %s (%s)", info.Unit, info.Summary(), info.LoadState)
}
