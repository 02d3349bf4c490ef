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

// Package serializer writes reports in the supported output formats.
//
// The package supports four output formats:
//   - Text: the line-oriented report, for values implementing TextRenderer
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//
// Usage:
//
//	format, err := serializer.ParseFormat("json")
//	if err != nil {
//		return err
//	}
//	writer, err := serializer.NewFileWriterOrStdout(format, path)
//	if err != nil {
//		return err
//	}
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, report); err != nil {
//		return err
//	}
//
// Table output flattens nested structs into dotted keys, skipping fields
// tagged `json:"-"` and inlining embedded structs.
package serializer
