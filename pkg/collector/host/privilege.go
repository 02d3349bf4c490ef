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
	"os"
	"os/user"
	"strings"
)

// IsPrivileged reports whether the process runs as root (or Administrator
// on Windows). Some probes, such as virt-what, need it.
func IsPrivileged() bool {
	name := ""
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	return privileged(os.Geteuid(), name)
}

// privileged decides from an effective uid (-1 where unsupported) and a user name.
func privileged(euid int, username string) bool {
	if euid == 0 {
		return true
	}
	switch {
	case username == "root":
		return true
	case strings.EqualFold(username, "Administrator"):
		return true
	case strings.HasSuffix(strings.ToLower(username), `\administrator`):
		return true
	default:
		return false
	}
}
