// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package snapshotfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/procflow/lib/codec"
	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

// Encode serializes a document in the given format. JSON output is
// indented and newline-terminated; comments from a JSONC source are
// not preserved.
func Encode(document Document, format Format) ([]byte, error) {
	if document.Activities == nil {
		document.Activities = []activity.Activity{}
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(document, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding JSON snapshot: %w", err)
		}
		return append(data, '\n'), nil

	case FormatYAML:
		data, err := yaml.Marshal(document)
		if err != nil {
			return nil, fmt.Errorf("encoding YAML snapshot: %w", err)
		}
		return data, nil

	case FormatCBOR:
		data, err := codec.Marshal(document)
		if err != nil {
			return nil, fmt.Errorf("encoding CBOR snapshot: %w", err)
		}
		return data, nil

	case FormatHCL:
		return encodeHCL(document)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func encodeHCL(document Document) ([]byte, error) {
	file := hclwrite.NewEmptyFile()
	body := file.Body()

	if document.Process != "" {
		body.SetAttributeValue("process", cty.StringVal(document.Process))
		body.AppendNewline()
	}

	for index, content := range document.Activities {
		if !content.Status.IsValid() {
			return nil, fmt.Errorf("encoding HCL snapshot: activities[%d]: unknown status %q", index, content.Status)
		}
		if index > 0 {
			body.AppendNewline()
		}

		block := body.AppendNewBlock("activity", []string{content.ID}).Body()
		if content.Name != "" {
			block.SetAttributeValue("name", cty.StringVal(content.Name))
		}
		block.SetAttributeValue("status", cty.StringVal(string(content.Status)))
		if len(content.Dependencies) > 0 {
			values := make([]cty.Value, len(content.Dependencies))
			for position, dependencyID := range content.Dependencies {
				values[position] = cty.StringVal(dependencyID)
			}
			block.SetAttributeValue("dependencies", cty.ListVal(values))
		}
		if content.Order != nil {
			block.SetAttributeValue("order", cty.NumberIntVal(int64(*content.Order)))
		}
	}

	return hclwrite.Format(file.Bytes()), nil
}

// WriteFile encodes a document in the format and compression implied
// by path and writes it atomically: the bytes go to a temporary file
// in the same directory, which is then renamed over path.
func WriteFile(path string, document Document) error {
	format, compression, err := DetectFormat(path)
	if err != nil {
		return err
	}

	data, err := Encode(document, format)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	data, err = compress(data, compression)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	temporary := path + ".tmp"
	if err := os.WriteFile(temporary, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", temporary, err)
	}
	if err := os.Rename(temporary, path); err != nil {
		os.Remove(temporary)
		return fmt.Errorf("renaming %s to %s: %w", temporary, path, err)
	}
	return nil
}
