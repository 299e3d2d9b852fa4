// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depgraph

import (
	"slices"
	"testing"

	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

// makeActivity builds an activity named after its ID.
func makeActivity(id string, status activity.Status, dependencies ...string) activity.Activity {
	return activity.Activity{
		ID:           id,
		Name:         "Activity " + id,
		Status:       status,
		Dependencies: dependencies,
	}
}

// linearSnapshot is the 3 → 2 → 1 chain with everything pending.
func linearSnapshot() Snapshot {
	return Snapshot{
		makeActivity("1", activity.StatusPending),
		makeActivity("2", activity.StatusPending, "1"),
		makeActivity("3", activity.StatusPending, "2"),
	}
}

// withStatus returns a copy of snapshot with activityID's status set.
func withStatus(snapshot Snapshot, activityID string, status activity.Status) Snapshot {
	result := make(Snapshot, len(snapshot))
	for i := range snapshot {
		result[i] = snapshot[i].Clone()
		if result[i].ID == activityID {
			result[i].Status = status
		}
	}
	return result
}

func mustGet(t *testing.T, snapshot Snapshot, activityID string) activity.Activity {
	t.Helper()
	content, exists := snapshot.Get(activityID)
	if !exists {
		t.Fatalf("activity %s not in snapshot", activityID)
	}
	return content
}

func requireIDs(t *testing.T, got, want []string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func activityIDs(activities []activity.Activity) []string {
	ids := make([]string, len(activities))
	for i := range activities {
		ids[i] = activities[i].ID
	}
	return ids
}
