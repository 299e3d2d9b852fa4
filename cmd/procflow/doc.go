// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// procflow answers dependency questions about the activities of a
// process snapshot: cycle checks for proposed edges, readiness,
// blocked and chain listings, and status transition validation.
//
// Usage:
//
//	procflow <command> [flags]
//
// Run "procflow --help" for the command list.
package main
