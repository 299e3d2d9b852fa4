// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depgraph

import "github.com/bureau-foundation/procflow/lib/schema/activity"

// Ready returns the pending activities whose prerequisites are all
// completed: the work that can be picked up now. Sorted by
// [SortByOrder].
func Ready(snapshot Snapshot) []activity.Activity {
	lookup := snapshot.index()
	var result []activity.Activity
	for i := range snapshot {
		content := &snapshot[i]
		if content.Status != activity.StatusPending {
			continue
		}
		if allDependenciesCompleted(lookup, content) {
			result = append(result, *content)
		}
	}
	SortByOrder(result)
	return result
}

// Waiting returns the pending activities that cannot start because at
// least one prerequisite is not completed (or does not exist). Ready
// and Waiting partition the pending activities. Sorted by
// [SortByOrder].
func Waiting(snapshot Snapshot) []activity.Activity {
	lookup := snapshot.index()
	var result []activity.Activity
	for i := range snapshot {
		content := &snapshot[i]
		if content.Status != activity.StatusPending {
			continue
		}
		if !allDependenciesCompleted(lookup, content) {
			result = append(result, *content)
		}
	}
	SortByOrder(result)
	return result
}

// UnblockCount returns the number of pending activities that would
// become ready if activityID were completed: activities for which
// activityID is the only unmet prerequisite. Returns 0 for unknown IDs
// and for activities nothing depends on.
func UnblockCount(activityID string, snapshot Snapshot) int {
	lookup := snapshot.index()
	count := 0
	for _, dependentID := range snapshot.dependents()[activityID] {
		dependent, exists := lookup[dependentID]
		if !exists || dependent.Status != activity.StatusPending {
			continue
		}

		otherUnmet := false
		for _, dependencyID := range dependent.Dependencies {
			if dependencyID == activityID {
				continue
			}
			dependency, exists := lookup[dependencyID]
			if !exists || dependency.Status != activity.StatusCompleted {
				otherUnmet = true
				break
			}
		}
		if !otherUnmet {
			count++
		}
	}
	return count
}

// Visit states for iterative depth-first traversals.
const (
	unvisited uint8 = iota
	visiting
	finished
)

// CriticalDepth returns the longest chain of dependency edges among
// activities that are not completed: the minimum number of sequential
// steps left before the whole process can finish, however much work
// runs in parallel. Completed and missing prerequisites are not
// counted. An edge that closes a cycle contributes nothing, so corrupt
// input still yields a finite answer.
func CriticalDepth(snapshot Snapshot) int {
	lookup := snapshot.index()
	open := func(activityID string) bool {
		content, exists := lookup[activityID]
		return exists && content.Status != activity.StatusCompleted
	}

	type frame struct {
		id   string
		next int
	}

	state := make(map[string]uint8, len(lookup))
	depth := make(map[string]int, len(lookup))
	deepest := 0

	for i := range snapshot {
		root := snapshot[i].ID
		if !open(root) || state[root] != unvisited {
			continue
		}
		state[root] = visiting
		stack := []frame{{id: root}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			dependencies := lookup[top.id].Dependencies
			if top.next < len(dependencies) {
				dependencyID := dependencies[top.next]
				top.next++
				if open(dependencyID) && state[dependencyID] == unvisited {
					state[dependencyID] = visiting
					stack = append(stack, frame{id: dependencyID})
				}
				continue
			}

			// All prerequisites are finished (or on the stack, which
			// means a cycle edge that is ignored).
			longest := 0
			for _, dependencyID := range dependencies {
				if open(dependencyID) && state[dependencyID] == finished {
					longest = max(longest, depth[dependencyID]+1)
				}
			}
			depth[top.id] = longest
			state[top.id] = finished
			deepest = max(deepest, longest)
			stack = stack[:len(stack)-1]
		}
	}
	return deepest
}
