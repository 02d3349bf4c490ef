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

package header

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	diagerrors "github.com/Icinga/icinga2-diagnostics/pkg/errors"
)

// APIVersion is the schema version of every document this tool emits.
const APIVersion = "diagnostics.icinga.com/v1alpha1"

// Metadata keys set by Init.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
	MetadataRunID     = "run-id"
)

// Kind represents the type of a diagnostics document.
type Kind string

// Valid Kind constants.
const (
	KindDiagnosticsReport Kind = "DiagnosticsReport"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindDiagnosticsReport:
		return true
	default:
		return false
	}
}

// Header identifies a diagnostics document in machine-readable output.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init resets the Header to kind and apiVersion and records the run time,
// the tool version and a fresh random run id in Metadata. An unknown kind
// leaves the Header untouched.
func (h *Header) Init(kind Kind, apiVersion, version string, now time.Time) error {
	if !kind.IsValid() {
		return diagerrors.NewWithContext(diagerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown document kind %q", kind), map[string]any{"kind": string(kind)})
	}

	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		MetadataTimestamp: now.UTC().Format(time.RFC3339),
		MetadataRunID:     uuid.NewString(),
	}
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
	return nil
}

// RunID returns the run id set by Init, or "".
func (h *Header) RunID() string {
	return h.Metadata[MetadataRunID]
}
