// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package activity defines the schema for process activities: the work
// items of a process, their lifecycle status, and the prerequisite
// activities each one declares.
//
// The types here are pure data. Dependency graph queries (readiness,
// cycle detection, blocked sets, dependency chains) live in
// [github.com/bureau-foundation/procflow/lib/depgraph], which reads
// slices of [Activity] values supplied by the caller.
//
// Activity uses `json` struct tags so the same type serializes to JSON
// (external snapshot files, CLI --json output), CBOR (lib/codec reads
// json tags as a fallback), and YAML (explicit `yaml` tags mirror the
// JSON names).
package activity
