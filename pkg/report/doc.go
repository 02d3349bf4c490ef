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

// Package report renders a diagnostics run as the line-oriented text report.
//
// # Layout
//
//	### Icinga Diagnostics ###
//	# Version: 0.2.0
//	# Run on icinga-master at 2025-12-30 10:30:00
//
//	Not running as root. Not all checks might be successful
//
//	### OS ###
//
//	OS: Linux-6.8.0-45-generic-x86_64-with-ubuntu-24.04
//	Virtualisation: kvm
//	Go: go1.25.0
//	CPU cores: 8
//	RAM: 15.0 Gi
//
//	### Icinga 2 ###
//
//	Icinga 2: 2.14.2
//	Icinga 2 service: active/running
//
// The advisory only appears for unprivileged runs. The service line only
// appears when the daemon is installed and its unit state could be read.
//
// # Sinks
//
// Render writes to a Sink, the single output capability of the printer.
// WriterSink adapts an io.Writer and backs Report.RenderText, which the text
// serializer calls with its output.
package report
