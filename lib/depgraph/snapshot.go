// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depgraph

import (
	"cmp"
	"slices"
	"strings"

	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

// Snapshot is the complete activity list of one process at the moment
// of a call. The engine never retains or modifies it.
type Snapshot []activity.Activity

// Get returns the activity with the given ID. When a snapshot contains
// the same ID more than once, the first occurrence wins, matching the
// lookup the engine itself uses.
func (snapshot Snapshot) Get(activityID string) (activity.Activity, bool) {
	for i := range snapshot {
		if snapshot[i].ID == activityID {
			return snapshot[i], true
		}
	}
	return activity.Activity{}, false
}

// IDs returns every activity ID in snapshot order.
func (snapshot Snapshot) IDs() []string {
	ids := make([]string, len(snapshot))
	for i := range snapshot {
		ids[i] = snapshot[i].ID
	}
	return ids
}

// index maps activity IDs to the activity in the snapshot.
type index map[string]*activity.Activity

// index builds the ID lookup for one call.
func (snapshot Snapshot) index() index {
	lookup := make(index, len(snapshot))
	for i := range snapshot {
		if _, exists := lookup[snapshot[i].ID]; exists {
			continue
		}
		lookup[snapshot[i].ID] = &snapshot[i]
	}
	return lookup
}

// dependents builds the reverse edge map: prerequisite ID → IDs of the
// activities that list it, in snapshot order. Activities that list the
// same prerequisite twice appear once.
func (snapshot Snapshot) dependents() map[string][]string {
	type edge struct{ dependency, dependent string }
	reverse := make(map[string][]string)
	seen := make(map[edge]struct{})
	for i := range snapshot {
		dependentID := snapshot[i].ID
		for _, dependencyID := range snapshot[i].Dependencies {
			key := edge{dependency: dependencyID, dependent: dependentID}
			if _, duplicate := seen[key]; duplicate {
				continue
			}
			seen[key] = struct{}{}
			reverse[dependencyID] = append(reverse[dependencyID], dependentID)
		}
	}
	return reverse
}

// SortByOrder sorts activities for display: ascending Order, with
// activities that have no Order after those that do, then by ID. The
// sort is stable so equal keys keep snapshot order.
func SortByOrder(activities []activity.Activity) {
	slices.SortStableFunc(activities, func(a, b activity.Activity) int {
		switch {
		case a.Order != nil && b.Order != nil:
			if result := cmp.Compare(*a.Order, *b.Order); result != 0 {
				return result
			}
		case a.Order != nil:
			return -1
		case b.Order != nil:
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})
}
