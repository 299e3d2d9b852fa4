// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package snapshotfile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/procflow/lib/codec"
	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

// decode turns uncompressed bytes into a Document without any
// integrity checks. source names the input in HCL diagnostics.
func decode(data []byte, format Format, source string) (Document, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatCBOR:
		return decodeCBOR(data)
	case FormatHCL:
		return decodeHCL(data, source)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// decodeJSON accepts either a document object or a bare array of
// activities. Comments and trailing commas are stripped first.
func decodeJSON(data []byte) (Document, error) {
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))

	var document Document
	if len(stripped) > 0 && stripped[0] == '[' {
		if err := json.Unmarshal(stripped, &document.Activities); err != nil {
			return Document{}, fmt.Errorf("parsing JSON snapshot: %w", err)
		}
		return document, nil
	}
	if err := json.Unmarshal(stripped, &document); err != nil {
		return Document{}, fmt.Errorf("parsing JSON snapshot: %w", err)
	}
	return document, nil
}

// decodeYAML accepts either a document mapping or a bare sequence of
// activities.
func decodeYAML(data []byte) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Document{}, fmt.Errorf("parsing YAML snapshot: %w", err)
	}
	if root.Kind == 0 {
		// Empty input.
		return Document{}, nil
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	var document Document
	var err error
	if node.Kind == yaml.SequenceNode {
		err = node.Decode(&document.Activities)
	} else {
		err = node.Decode(&document)
	}
	if err != nil {
		return Document{}, fmt.Errorf("parsing YAML snapshot: %w", err)
	}
	return document, nil
}

func decodeCBOR(data []byte) (Document, error) {
	var document Document
	if err := codec.Unmarshal(data, &document); err != nil {
		return Document{}, fmt.Errorf("parsing CBOR snapshot: %w", err)
	}
	return document, nil
}

// hclDocument is the HCL shape of a snapshot file:
//
//	process = "release"
//
//	activity "draft" {
//	  name         = "Draft plan"
//	  status       = "pending"
//	  dependencies = ["requirements"]
//	  order        = 2
//	}
type hclDocument struct {
	Process    string        `hcl:"process,optional"`
	Activities []hclActivity `hcl:"activity,block"`
}

type hclActivity struct {
	ID           string   `hcl:"id,label"`
	Name         string   `hcl:"name,optional"`
	Status       string   `hcl:"status"`
	Dependencies []string `hcl:"dependencies,optional"`
	Order        *int     `hcl:"order,optional"`
}

func decodeHCL(data []byte, source string) (Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, source)
	if diags.HasErrors() {
		return Document{}, fmt.Errorf("parsing HCL snapshot: %w", diags)
	}

	var parsed hclDocument
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return Document{}, fmt.Errorf("decoding HCL snapshot: %w", diags)
	}

	document := Document{
		Process:    parsed.Process,
		Activities: make([]activity.Activity, 0, len(parsed.Activities)),
	}
	for _, block := range parsed.Activities {
		status, err := activity.ParseStatus(block.Status)
		if err != nil {
			return Document{}, fmt.Errorf("activity %q: %w", block.ID, err)
		}
		document.Activities = append(document.Activities, activity.Activity{
			ID:           block.ID,
			Name:         block.Name,
			Status:       status,
			Dependencies: block.Dependencies,
			Order:        block.Order,
		})
	}
	return document, nil
}
