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

// Package cli implements the command-line interface of icinga-diagnostics.
//
// # Overview
//
// The tool has a single command. Run without arguments it prints the text
// report to stdout:
//
//	icinga-diagnostics
//
// # Flags
//
//	--format, -t     Output format: text, json, yaml, table (default: text)
//	--output, -o     Output file path (default: stdout)
//	--icinga-binary  Icinga 2 binary (default: icinga2, env ICINGA2_BIN)
//	--service-unit   systemd unit (default: icinga2.service)
//	--skip-service   Do not query the unit state over D-Bus
//	--metrics-file   Prometheus textfile output path
//	--timeout        Timeout per external command (default: 30s)
//	--log-level      debug, info, warn, error (default: warn)
//	--version, -v    Show version information
//
// Every flag except --skip-service and --version also reads an environment
// variable, see --help.
//
// # Exit Codes
//
// The exit code is 0 whenever the report was written, including when the
// daemon is not installed or host facts fell back to defaults. It is 1 for
// invalid flags and for output errors.
//
// # Logging
//
// Structured JSON logs go to stderr so they never mix with the report.
package cli
