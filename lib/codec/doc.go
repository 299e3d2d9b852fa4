// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration shared by
// every procflow package that reads or writes binary snapshots.
//
// procflow uses two serialization formats with a clear boundary:
//
//   - JSON (and the JSONC, YAML, and HCL authoring formats) for files
//     people write and for CLI --json output.
//   - CBOR for compact machine-written snapshot files and for the
//     canonical bytes that snapshot digests are computed over.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same logical snapshot always produces identical bytes, which is what
// makes digests comparable across machines.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Types implementing encoding.TextMarshaler (activity.Status) are
// encoded as CBOR text strings through MarshalText, so a status that
// fails validation cannot be written out and an unknown status string
// cannot be read back in.
//
// # Struct tags
//
// fxamacker/cbor reads `json` tags when `cbor` tags are absent, so the
// schema types carry only `json` tags and serialize identically in both
// formats. Do not put both tags on one field.
package codec
