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

package version

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr error
	}{
		{name: "full", input: "2.13.0", want: Version{Major: 2, Minor: 13, Patch: 0, Precision: 3}},
		{name: "v prefix", input: "v2.14.2", want: Version{Major: 2, Minor: 14, Patch: 2, Precision: 3}},
		{name: "major minor", input: "2.12", want: Version{Major: 2, Minor: 12, Precision: 2}},
		{name: "major only", input: "2", want: Version{Major: 2, Precision: 1}},
		{name: "package suffix", input: "2.13.0-1", want: Version{Major: 2, Minor: 13, Precision: 3, Extras: "-1"}},
		{name: "build metadata", input: "2.14.0+git", want: Version{Major: 2, Minor: 14, Precision: 3, Extras: "+git"}},
		{name: "empty", input: "", wantErr: ErrEmptyVersion},
		{name: "too many", input: "1.2.3.4", wantErr: ErrTooManyComponents},
		{name: "letters", input: "a.b.c", wantErr: ErrNonNumeric},
		{name: "empty component", input: "2..1", wantErr: ErrNonNumeric},
		{name: "sentinel", input: "Not installed", wantErr: ErrNonNumeric},
		{name: "signed component", input: "+1.2", wantErr: ErrNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseVersion(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLoose(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"r2.13.0", "2.13.0"},
		{" v2.14.2) ", "2.14.2"},
		{"2.12.1", "2.12.1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLoose(tt.input)
			if err != nil {
				t.Fatalf("ParseLoose(%q) error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseLoose(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseLoose("release"); err == nil {
		t.Error("ParseLoose(release) should fail")
	}
}

func TestVersion_String(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{Version{Major: 2, Precision: 1}, "2"},
		{Version{Major: 2, Minor: 13, Precision: 2}, "2.13"},
		{Version{Major: 2, Minor: 13, Patch: 1, Precision: 3, Extras: "-1"}, "2.13.1"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
