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

// Package systemd reads the state of the Icinga 2 service unit over D-Bus.
//
// # Usage
//
//	collector := &systemd.Collector{Unit: "icinga2.service"}
//	unit := collector.Collect(ctx)
//	fmt.Println(unit.Summary()) // active/running
//
// # Graceful Degradation
//
// Hosts without systemd, containers without a system bus and unprivileged
// sessions without bus access are common. In all these cases Collect returns
// a UnitInfo with Available set to false and every state set to "unknown".
// The failure is logged at debug level.
//
// # Testing
//
// Dial is injectable so tests can replace the bus connection:
//
//	c := &systemd.Collector{Dial: func(context.Context) (systemd.PropertyGetter, error) {
//	    return fakeConn{props: map[string]any{"ActiveState": "active"}}, nil
//	}}
package systemd
