// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depgraph

// WouldCreateCycle reports whether adding proposedDependencyID to the
// dependencies of activityID would make the dependency graph cyclic.
// Callers run this before persisting a new edge.
//
// An activity depending on itself is always a cycle. Otherwise the
// check walks from the proposed prerequisite along existing edges: if
// that walk reaches activityID, the prerequisite already depends
// (transitively) on activityID and the new edge would close the loop.
func WouldCreateCycle(snapshot Snapshot, activityID, proposedDependencyID string) bool {
	if activityID == proposedDependencyID {
		return true
	}
	return canReach(snapshot.index(), proposedDependencyID, activityID)
}

// WouldCreateCycles is the batch form of [WouldCreateCycle] for a
// form that submits a whole dependency list at once: it reports
// whether any of the proposed prerequisites would close a cycle. The
// lookup table is built once for the whole batch.
func WouldCreateCycles(snapshot Snapshot, activityID string, proposedDependencyIDs []string) bool {
	lookup := snapshot.index()
	for _, dependencyID := range proposedDependencyIDs {
		if dependencyID == activityID {
			return true
		}
		if canReach(lookup, dependencyID, activityID) {
			return true
		}
	}
	return false
}

// canReach reports whether target is reachable from 'from' by
// following dependency edges. IDs missing from the lookup are dead
// ends. Breadth-first with a visited set, so it terminates on graphs
// that already contain cycles.
func canReach(lookup index, from, target string) bool {
	visited := map[string]struct{}{from: {}}
	queue := []string{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		content, exists := lookup[current]
		if !exists {
			continue
		}
		for _, dependencyID := range content.Dependencies {
			if dependencyID == target {
				return true
			}
			if _, seen := visited[dependencyID]; !seen {
				visited[dependencyID] = struct{}{}
				queue = append(queue, dependencyID)
			}
		}
	}
	return false
}
