// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package snapshotfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the serialization of a snapshot file, independent of any
// outer compression.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
	FormatHCL  Format = "hcl"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatCBOR, FormatHCL}

// Compression is the outer compression wrapped around a snapshot file.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

var formatExtensions = map[string]Format{
	".json":  FormatJSON,
	".jsonc": FormatJSON,
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".cbor":  FormatCBOR,
	".hcl":   FormatHCL,
}

var compressionExtensions = map[string]Compression{
	".zst": CompressionZstd,
	".lz4": CompressionLZ4,
}

// DetectFormat derives the format and compression from a file path:
// "release.yaml" is (FormatYAML, CompressionNone) and
// "release.cbor.zst" is (FormatCBOR, CompressionZstd). Extensions are
// matched case-insensitively.
func DetectFormat(path string) (Format, Compression, error) {
	base := strings.ToLower(filepath.Base(path))

	compression := CompressionNone
	if detected, ok := compressionExtensions[filepath.Ext(base)]; ok {
		compression = detected
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	extension := filepath.Ext(base)
	format, ok := formatExtensions[extension]
	if !ok {
		if extension == "" {
			return "", "", fmt.Errorf("%w: %s has no extension (want .json, .jsonc, .yaml, .yml, .cbor, or .hcl)", ErrUnknownFormat, path)
		}
		return "", "", fmt.Errorf("%w: %q in %s", ErrUnknownFormat, extension, path)
	}
	return format, compression, nil
}

// ParseFormat converts a format name as typed on a command line
// ("json", "yaml", "cbor", "hcl") to a Format.
func ParseFormat(name string) (Format, error) {
	for _, format := range Formats {
		if string(format) == strings.ToLower(name) {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// NameFromPath extracts a process name from a file path by stripping
// the directory and every recognized extension:
// "plans/release.cbor.zst" returns "release".
func NameFromPath(path string) string {
	base := filepath.Base(path)
	if _, ok := compressionExtensions[strings.ToLower(filepath.Ext(base))]; ok {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if _, ok := formatExtensions[strings.ToLower(filepath.Ext(base))]; ok {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base
}
