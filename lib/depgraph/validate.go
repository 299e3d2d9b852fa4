// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depgraph

import (
	"fmt"
	"strings"
)

// DanglingReference is a dependency ID that does not resolve to any
// activity in the snapshot.
type DanglingReference struct {
	ActivityID   string `json:"activity_id"`
	DependencyID string `json:"dependency_id"`
}

// Dangling returns every dependency that names an activity absent from
// the snapshot, in snapshot order.
func Dangling(snapshot Snapshot) []DanglingReference {
	lookup := snapshot.index()
	var result []DanglingReference
	for i := range snapshot {
		for _, dependencyID := range snapshot[i].Dependencies {
			if _, exists := lookup[dependencyID]; !exists {
				result = append(result, DanglingReference{
					ActivityID:   snapshot[i].ID,
					DependencyID: dependencyID,
				})
			}
		}
	}
	return result
}

// FindCycle returns one dependency cycle in the snapshot as a path
// that starts and ends with the same ID (for example [a b c a], meaning
// a depends on b, b on c, and c on a). Returns nil if the graph is
// acyclic. A self-dependency is reported as [a a].
//
// The engine's own queries tolerate cycles; this is for callers
// loading data that did not pass through [WouldCreateCycle], such as
// bulk imports, and want to reject it up front.
func FindCycle(snapshot Snapshot) []string {
	lookup := snapshot.index()
	state := make(map[string]uint8, len(lookup))

	type frame struct {
		id   string
		next int
	}

	for i := range snapshot {
		root := snapshot[i].ID
		if state[root] != unvisited {
			continue
		}
		state[root] = visiting
		stack := []frame{{id: root}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			dependencies := lookup[top.id].Dependencies
			if top.next >= len(dependencies) {
				state[top.id] = finished
				stack = stack[:len(stack)-1]
				continue
			}
			dependencyID := dependencies[top.next]
			top.next++
			if _, exists := lookup[dependencyID]; !exists {
				continue
			}
			switch state[dependencyID] {
			case unvisited:
				state[dependencyID] = visiting
				stack = append(stack, frame{id: dependencyID})
			case visiting:
				// Back edge: the cycle is the stack suffix starting
				// at dependencyID.
				start := 0
				for position := range stack {
					if stack[position].id == dependencyID {
						start = position
						break
					}
				}
				cycle := make([]string, 0, len(stack)-start+1)
				for _, entry := range stack[start:] {
					cycle = append(cycle, entry.id)
				}
				return append(cycle, dependencyID)
			}
		}
	}
	return nil
}

// FormatCycle renders a cycle path from [FindCycle] as "a → b → a".
func FormatCycle(cycle []string) string {
	return strings.Join(cycle, " → ")
}

// Validate checks a snapshot for structural problems and returns a
// list of human-readable issues. An empty list means the snapshot is
// well formed: unique IDs, every activity individually valid, every
// dependency resolvable, and no cycles.
func Validate(snapshot Snapshot) []string {
	var issues []string

	firstIndex := make(map[string]int, len(snapshot))
	for index := range snapshot {
		content := &snapshot[index]
		if err := content.Validate(); err != nil {
			issues = append(issues, fmt.Sprintf("activities[%d]: %v", index, err))
		}
		if content.ID == "" {
			continue
		}
		if first, exists := firstIndex[content.ID]; exists {
			issues = append(issues, fmt.Sprintf(
				"activities[%d]: duplicate id %q (first used at activities[%d])",
				index, content.ID, first,
			))
			continue
		}
		firstIndex[content.ID] = index
	}

	for _, reference := range Dangling(snapshot) {
		issues = append(issues, fmt.Sprintf(
			"activity %s: dependency %s does not exist in this process",
			reference.ActivityID, reference.DependencyID,
		))
	}

	if cycle := FindCycle(snapshot); cycle != nil {
		issues = append(issues, "dependency cycle: "+FormatCycle(cycle))
	}

	return issues
}
