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

//go:build linux || darwin

package host

import (
	"fmt"

	"github.com/tklauser/go-sysconf"
)

// sysconfMemory returns sysconf(_SC_PAGE_SIZE) and sysconf(_SC_PHYS_PAGES).
func sysconfMemory() (int64, int64, error) {
	pageSize, err := sysconf.Sysconf(sysconf.SC_PAGE_SIZE)
	if err != nil {
		return 0, 0, fmt.Errorf("sysconf page size: %w", err)
	}
	pages, err := sysconf.Sysconf(sysconf.SC_PHYS_PAGES)
	if err != nil {
		return 0, 0, fmt.Errorf("sysconf physical pages: %w", err)
	}
	return pageSize, pages, nil
}
