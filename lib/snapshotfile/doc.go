// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package snapshotfile reads and writes process snapshots on disk.
//
// A snapshot file holds one process: an optional process name and the
// complete list of its activities. The dependency engine in
// lib/depgraph never touches files; this package is the boundary where
// bytes become a [depgraph.Snapshot] and where the integrity checks the
// engine deliberately skips (duplicate ids, dangling references,
// cycles) are applied according to caller policy.
//
// Supported formats, chosen by file extension:
//
//	.json .jsonc   JSON with comments and trailing commas
//	.yaml .yml     YAML
//	.cbor          deterministic CBOR (lib/codec)
//	.hcl           activity "<id>" { ... } blocks
//
// Any of them may carry an outer .zst or .lz4 compression suffix, e.g.
// "release.cbor.zst".
//
// The typical flow:
//
//  1. ReadFile or Parse: bytes → Document, checked against LoadOptions
//  2. Document.Snapshot: hand the activities to lib/depgraph
//  3. Digest: fingerprint the snapshot to detect concurrent edits
//     between validation and persistence
package snapshotfile
