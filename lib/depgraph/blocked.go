// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depgraph

import "github.com/bureau-foundation/procflow/lib/schema/activity"

// BlockedActivities returns the IDs of activities that list activityID
// as a direct prerequisite and are not themselves completed, in
// snapshot order. This is a one-hop relation: use
// [TransitiveDependents] for everything downstream.
//
// If activityID appears more than once in the snapshot, the dependents
// are still reported once each.
func BlockedActivities(activityID string, snapshot Snapshot) []string {
	var result []string
	seen := make(map[string]struct{})
	for i := range snapshot {
		content := &snapshot[i]
		if content.Status == activity.StatusCompleted {
			continue
		}
		if !content.DependsOn(activityID) {
			continue
		}
		if _, duplicate := seen[content.ID]; duplicate {
			continue
		}
		seen[content.ID] = struct{}{}
		result = append(result, content.ID)
	}
	return result
}
