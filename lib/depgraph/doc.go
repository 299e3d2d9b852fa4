// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package depgraph answers dependency questions about the activities
// of one process: whether a proposed prerequisite edge would create a
// cycle, whether an activity may start, which activities are waiting
// on a given one, and what an activity transitively depends on. It
// also validates proposed status changes against those answers.
//
// Every function takes the whole process as a [Snapshot] and returns a
// boolean, a list of IDs, or a [TransitionResult]. Nothing is cached
// between calls: each call builds whatever lookup tables it needs from
// the snapshot it was given, so the caller can mutate its own copy and
// resubmit without any invalidation step. The package performs no I/O
// and holds no mutable package state, so calls may run concurrently as
// long as no caller mutates a snapshot while it is being read.
//
// # Edges
//
// An edge runs from an activity to each of its prerequisites (the IDs
// in [activity.Activity.Dependencies]). "Chain" queries follow edges
// forward (toward prerequisites); "blocked" and "dependents" queries
// follow them backward (toward activities that wait).
//
// # Totality
//
// No function here returns an error or panics on malformed input. A
// dependency ID that does not exist in the snapshot is a dead end for
// traversal and an unsatisfied prerequisite for readiness: a dangling
// reference means something is wrong, not that the dependency is done.
// Traversals use an explicit frontier and a visited set, so a snapshot
// that already contains a cycle (bulk imports, hand-edited files)
// still terminates in O(V+E). [FindCycle] and [Validate] exist for
// callers that want to detect such input up front.
package depgraph
