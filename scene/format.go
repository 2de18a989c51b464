// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/pathkit"
)

// ErrUnsupportedFormat is returned for a file extension or format that has
// no decoder.
var ErrUnsupportedFormat = errors.New("scene: unsupported format")

// Format is a document encoding.
type Format int

// Supported formats.
const (
	YAML Format = iota
	TOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Decode parses a document. Unknown fields are rejected. An empty input
// yields an empty document.
func Decode(data []byte, f Format) (*Document, error) {
	doc := &Document{}
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scene: decode yaml: %w", err)
		}
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(doc); err != nil {
			return nil, fmt.Errorf("scene: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	return doc, nil
}

// Encode serializes doc.
func Encode(doc *Document, f Format) ([]byte, error) {
	switch f {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("scene: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("scene: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case TOML:
		b, err := toml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("scene: encode toml: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
}

// Load reads and decodes the document at path, choosing the format from
// its extension.
func Load(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	doc, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	pathkit.Logger().Info("scene: loaded", "path", path, "format", f.String(), "shapes", len(doc.Shapes))
	return doc, nil
}
