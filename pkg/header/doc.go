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

// Package header provides the document header of machine-readable reports.
//
// JSON and YAML output start with an apiVersion/kind header so that stored
// reports can be recognized and correlated:
//
//	{
//	  "kind": "DiagnosticsReport",
//	  "apiVersion": "diagnostics.icinga.com/v1alpha1",
//	  "metadata": {
//	    "run-id": "0b4cbd2b-3c52-4c4f-9f5b-43a4a5f0e7d1",
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "0.2.0"
//	  }
//	}
//
// # Usage
//
//	var h header.Header
//	if err := h.Init(header.KindDiagnosticsReport, header.APIVersion, version, time.Now()); err != nil {
//		return err
//	}
//
// The run id is a random UUID, unique per invocation. The text report does
// not print the header; it only uses the timestamp and version.
package header
