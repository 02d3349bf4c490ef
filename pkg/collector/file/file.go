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

package file

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Icinga/icinga2-diagnostics/pkg/logging"
)

// Options for configuring the Parser.
type Option func(*Parser)

// Parser splits line-oriented text (files or captured command output)
// into lines and key-value pairs.
type Parser struct {
	delimiter       string
	maxSize         int
	skipComments    bool
	kvDelimiter     string
	vTrimChars      string
	skipEmptyValues bool
	logger          *slog.Logger
}

// WithDelimiter sets the delimiter used to split entries.
// Default is newline ("\n").
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		p.delimiter = delim
	}
}

// WithMaxSize sets the maximum size (in bytes) of the content to be parsed.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether to skip lines starting with '#'.
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithKVDelimiter sets the key-value delimiter used by Split and the map helpers.
// Default is "=".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithVTrimChars sets characters to trim from values.
// Default is no trimming.
func WithVTrimChars(trimChars string) Option {
	return func(p *Parser) {
		p.vTrimChars = trimChars
	}
}

// WithSkipEmptyValues drops keys whose value is empty or missing from maps.
// Default is false.
func WithSkipEmptyValues(skip bool) Option {
	return func(p *Parser) {
		p.skipEmptyValues = skip
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a new parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		delimiter:    "\n",
		maxSize:      1 << 20,
		skipComments: true,
		kvDelimiter:  "=",
	}

	for _, opt := range opts {
		opt(p)
	}
	p.logger = logging.OrDiscard(p.logger)
	return p
}

// SplitLines validates b and splits it into trimmed, non-empty lines.
// source only names the content in errors and log records.
func (p *Parser) SplitLines(b []byte, source string) ([]string, error) {
	if len(b) > p.maxSize {
		return nil, fmt.Errorf("content of %q exceeds maximum size of %d bytes", source, p.maxSize)
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of %q is not valid UTF-8", source)
	}

	return p.splitClean(string(b), source), nil
}

// SplitOutput splits captured command output into trimmed, non-empty lines.
// Unlike SplitLines it never fails: there is no size limit and invalid UTF-8
// sequences are replaced per line, so one bad byte only affects its own line.
func (p *Parser) SplitOutput(b []byte, source string) []string {
	lines := p.splitClean(string(b), source)
	for i, line := range lines {
		if !utf8.ValidString(line) {
			p.logger.Debug("replacing invalid UTF-8 in line",
				slog.String("source", source), slog.Int("line", i))
			lines[i] = strings.ToValidUTF8(line, string(utf8.RuneError))
		}
	}
	return lines
}

func (p *Parser) splitClean(s, source string) []string {
	parts := strings.Split(s, p.delimiter)

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}
		if p.skipComments && strings.HasPrefix(clean, "#") {
			p.logger.Debug("skipping comment line", slog.String("source", source))
			continue
		}
		result = append(result, clean)
	}
	return result
}

// GetLines reads the file at path and returns its non-empty lines.
func (p *Parser) GetLines(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	return p.SplitLines(b, path)
}

// Split cuts line around the first key-value delimiter. Both halves are
// trimmed; ok is false when the delimiter is absent.
func (p *Parser) Split(line string) (key, value string, ok bool) {
	k, v, found := strings.Cut(line, p.kvDelimiter)
	if !found {
		return strings.TrimSpace(line), "", false
	}

	value = strings.TrimSpace(v)
	if p.vTrimChars != "" {
		value = strings.Trim(value, p.vTrimChars)
	}
	return strings.TrimSpace(k), value, true
}

// ParseMap turns lines into a map using Split. Lines without a delimiter
// map to an empty value unless empty values are skipped.
func (p *Parser) ParseMap(lines []string) map[string]string {
	result := make(map[string]string, len(lines))
	for _, line := range lines {
		key, value, _ := p.Split(line)
		if p.skipEmptyValues && value == "" {
			p.logger.Debug("skipping entry with empty value", slog.String("key", key))
			continue
		}
		result[key] = value
	}
	return result
}

// GetMap reads the file at path and parses its lines into a map.
func (p *Parser) GetMap(path string) (map[string]string, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return nil, err
	}
	return p.ParseMap(lines), nil
}
