// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depgraph

import (
	"fmt"
	"testing"

	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

func TestDependencyChainLinear(t *testing.T) {
	snapshot := linearSnapshot()
	requireIDs(t, DependencyChain("3", snapshot), []string{"2", "1"})
	requireIDs(t, DependencyChain("2", snapshot), []string{"1"})
	requireIDs(t, DependencyChain("1", snapshot), nil)
}

func TestDependencyChainBreadthFirstOrder(t *testing.T) {
	// top depends on left and right; both depend on base; left also
	// depends on deep, which depends on base.
	snapshot := Snapshot{
		makeActivity("top", activity.StatusPending, "left", "right"),
		makeActivity("left", activity.StatusPending, "deep", "base"),
		makeActivity("right", activity.StatusPending, "base"),
		makeActivity("deep", activity.StatusPending, "base"),
		makeActivity("base", activity.StatusCompleted),
	}
	requireIDs(t, DependencyChain("top", snapshot), []string{"left", "right", "deep", "base"})
}

func TestDependencyChainNoDuplicatesOnCycle(t *testing.T) {
	snapshot := Snapshot{
		makeActivity("a", activity.StatusPending, "b"),
		makeActivity("b", activity.StatusPending, "c"),
		makeActivity("c", activity.StatusPending, "a", "b"),
	}
	// The start is never part of its own chain, even when reachable.
	requireIDs(t, DependencyChain("a", snapshot), []string{"b", "c"})
	requireIDs(t, DependencyChain("c", snapshot), []string{"a", "b"})
}

func TestDependencyChainMissingPrerequisite(t *testing.T) {
	snapshot := Snapshot{
		makeActivity("a", activity.StatusPending, "ghost", "b"),
		makeActivity("b", activity.StatusPending),
	}
	requireIDs(t, DependencyChain("a", snapshot), []string{"ghost", "b"})
	requireIDs(t, DependencyChain("ghost", snapshot), nil)
}

func TestTransitiveDependents(t *testing.T) {
	snapshot := linearSnapshot()
	requireIDs(t, TransitiveDependents("1", snapshot), []string{"2", "3"})
	requireIDs(t, TransitiveDependents("3", snapshot), nil)

	// Completed dependents are still downstream.
	snapshot = withStatus(snapshot, "2", activity.StatusCompleted)
	requireIDs(t, TransitiveDependents("1", snapshot), []string{"2", "3"})
}

func TestTransitiveDependentsOnCycle(t *testing.T) {
	snapshot := Snapshot{
		makeActivity("a", activity.StatusPending, "b"),
		makeActivity("b", activity.StatusPending, "a"),
		makeActivity("c", activity.StatusPending, "a"),
	}
	requireIDs(t, TransitiveDependents("a", snapshot), []string{"b", "c"})
}

func TestDependentsListedOncePerEdge(t *testing.T) {
	snapshot := Snapshot{
		makeActivity("a", activity.StatusCompleted),
		makeActivity("b", activity.StatusPending, "a"),
		makeActivity("c", activity.StatusPending, "a"),
		makeActivity("b", activity.StatusPending, "a"),
	}
	requireIDs(t, snapshot.dependents()["a"], []string{"b", "c"})
	requireIDs(t, TransitiveDependents("a", snapshot), []string{"b", "c"})
}

// A very wide fan-in builds its reverse edges in linear time; a
// per-edge scan of the growing dependent list would make this test
// quadratic.
func TestTransitiveDependentsWideFanIn(t *testing.T) {
	const width = 100000
	snapshot := make(Snapshot, 0, width+1)
	snapshot = append(snapshot, makeActivity("root", activity.StatusPending))
	for i := range width {
		snapshot = append(snapshot, makeActivity(fmt.Sprintf("leaf-%d", i), activity.StatusPending, "root"))
	}

	dependents := TransitiveDependents("root", snapshot)
	if len(dependents) != width {
		t.Fatalf("got %d dependents, want %d", len(dependents), width)
	}
	if dependents[0] != "leaf-0" || dependents[width-1] != fmt.Sprintf("leaf-%d", width-1) {
		t.Errorf("dependents not in snapshot order: first %s, last %s", dependents[0], dependents[width-1])
	}
}
