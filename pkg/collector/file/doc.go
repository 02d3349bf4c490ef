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

// Package file parses line-oriented text for the collectors.
//
// The same Parser handles files on disk (/etc/os-release) and captured
// command output ("icinga2 --version", "virt-what").
//
// # Usage
//
// Key-value files:
//
//	p := file.NewParser(
//	    file.WithVTrimChars(`"'`),
//	    file.WithSkipEmptyValues(true),
//	)
//	release, err := p.GetMap("/etc/os-release")
//
// Command output:
//
//	p := file.NewParser(file.WithSkipComments(false), file.WithKVDelimiter(":"))
//	for _, line := range p.SplitOutput(stdout, "icinga2 --version") {
//	    _, value, ok := p.Split(line)
//	    ...
//	}
//
// SplitLines rejects content larger than the configured maximum size (1MB
// by default) or that is not valid UTF-8. SplitOutput has no size limit and
// replaces invalid UTF-8 line by line.
package file
