// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package snapshotfile

import (
	"github.com/bureau-foundation/procflow/lib/depgraph"
	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

// Document is the contents of one snapshot file.
type Document struct {
	// Process names the process the activities belong to. Optional
	// in every format; ReadFile fills it from the file name when the
	// file does not set it.
	Process string `json:"process,omitempty" yaml:"process,omitempty"`

	// Activities is the complete activity list, in file order.
	Activities []activity.Activity `json:"activities" yaml:"activities"`
}

// Snapshot returns the activities as a depgraph.Snapshot. The slice is
// shared with the document, not copied.
func (document Document) Snapshot() depgraph.Snapshot {
	return depgraph.Snapshot(document.Activities)
}
