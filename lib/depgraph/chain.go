// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depgraph

// DependencyChain returns every activity that activityID transitively
// depends on, following dependency edges outward. The starting
// activity is not included. Each ID appears exactly once, in the order
// the breadth-first walk discovered it: nearest prerequisites first.
// This is an explanation order, not an execution schedule.
//
// A prerequisite ID missing from the snapshot is included (it was
// discovered) but not expanded. Returns nil when the activity has no
// prerequisites or does not exist.
func DependencyChain(activityID string, snapshot Snapshot) []string {
	lookup := snapshot.index()
	visited := map[string]struct{}{activityID: {}}
	queue := []string{activityID}
	var chain []string

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		content, exists := lookup[current]
		if !exists {
			continue
		}
		for _, dependencyID := range content.Dependencies {
			if _, seen := visited[dependencyID]; !seen {
				visited[dependencyID] = struct{}{}
				queue = append(queue, dependencyID)
				chain = append(chain, dependencyID)
			}
		}
	}
	return chain
}

// TransitiveDependents returns every activity that transitively
// depends on activityID, following dependency edges backward, in
// breadth-first discovery order. Unlike [BlockedActivities] it does
// not filter by status: it answers "what is downstream of this", which
// is what a caller needs to explain the impact of reopening or
// removing an activity.
func TransitiveDependents(activityID string, snapshot Snapshot) []string {
	reverse := snapshot.dependents()
	visited := map[string]struct{}{activityID: {}}
	queue := []string{activityID}
	var result []string

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, dependentID := range reverse[current] {
			if _, seen := visited[dependentID]; !seen {
				visited[dependentID] = struct{}{}
				queue = append(queue, dependentID)
				result = append(result, dependentID)
			}
		}
	}
	return result
}
