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

package defaults

import "time"

// Collector timeouts.
const (
	// ProbeTimeout bounds a single external process invocation such as
	// "icinga2 --version" or "virt-what". Zero disables the bound.
	ProbeTimeout = 30 * time.Second

	// ServiceProbeTimeout bounds the systemd D-Bus unit state query.
	ServiceProbeTimeout = 5 * time.Second
)
