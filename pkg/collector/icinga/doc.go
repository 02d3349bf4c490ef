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

// Package icinga detects the installed Icinga 2 daemon version.
//
// # Probe
//
// The collector runs "icinga2 --version" and looks for the banner line
//
//	icinga2 - The Icinga 2 network monitoring daemon (version: r2.14.2-1)
//
// The version token is the text after the first ':' up to the next '-',
// trimmed ("r2.14.2" above). If several lines carry the banner, the last one
// is used.
//
// # Outcomes
//
// Collect never returns an error. Failures collapse to the "Not installed"
// sentinel and keep their cause for inspection:
//
//	StatusBinaryNotFound  binary missing from PATH
//	StatusNonZeroExit     binary exited non-zero
//	StatusBannerNotFound  output had no usable banner line
//	StatusExecFailed      any other execution failure (timeout, permissions)
//
// # Usage
//
//	c := &icinga.Collector{Logger: logger}
//	info := c.Collect(ctx)
//	fmt.Println("Icinga 2: " + info.Version)
package icinga
