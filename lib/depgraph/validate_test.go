// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depgraph

import (
	"strings"
	"testing"

	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

func TestFindCycleAcyclic(t *testing.T) {
	if cycle := FindCycle(linearSnapshot()); cycle != nil {
		t.Errorf("FindCycle(acyclic) = %v, want nil", cycle)
	}
	if cycle := FindCycle(nil); cycle != nil {
		t.Errorf("FindCycle(nil) = %v, want nil", cycle)
	}
}

func TestFindCycle(t *testing.T) {
	snapshot := Snapshot{
		makeActivity("entry", activity.StatusPending, "a"),
		makeActivity("a", activity.StatusPending, "b"),
		makeActivity("b", activity.StatusPending, "c"),
		makeActivity("c", activity.StatusPending, "a"),
	}
	requireIDs(t, FindCycle(snapshot), []string{"a", "b", "c", "a"})
	if got := FormatCycle(FindCycle(snapshot)); got != "a → b → c → a" {
		t.Errorf("FormatCycle = %q", got)
	}
}

func TestFindCycleSelfDependency(t *testing.T) {
	snapshot := Snapshot{makeActivity("loop", activity.StatusPending, "loop")}
	requireIDs(t, FindCycle(snapshot), []string{"loop", "loop"})
}

func TestFindCycleIgnoresDanglingReferences(t *testing.T) {
	snapshot := Snapshot{makeActivity("a", activity.StatusPending, "ghost")}
	if cycle := FindCycle(snapshot); cycle != nil {
		t.Errorf("FindCycle = %v, want nil", cycle)
	}
}

func TestDangling(t *testing.T) {
	snapshot := Snapshot{
		makeActivity("a", activity.StatusPending, "ghost", "b"),
		makeActivity("b", activity.StatusPending, "phantom"),
	}
	references := Dangling(snapshot)
	want := []DanglingReference{
		{ActivityID: "a", DependencyID: "ghost"},
		{ActivityID: "b", DependencyID: "phantom"},
	}
	if len(references) != len(want) {
		t.Fatalf("Dangling = %+v, want %+v", references, want)
	}
	for i := range want {
		if references[i] != want[i] {
			t.Errorf("Dangling[%d] = %+v, want %+v", i, references[i], want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	if issues := Validate(linearSnapshot()); len(issues) != 0 {
		t.Errorf("Validate(valid) = %v", issues)
	}

	snapshot := Snapshot{
		makeActivity("a", activity.StatusPending, "b"),
		makeActivity("b", activity.StatusPending, "a"),
		makeActivity("a", activity.StatusCompleted),
		{ID: "", Status: activity.StatusPending},
		makeActivity("c", "finished"),
		makeActivity("d", activity.StatusPending, "ghost"),
	}
	issues := Validate(snapshot)
	wantFragments := []string{
		`duplicate id "a"`,
		"activities[3]: activity: id is required",
		`unknown status "finished"`,
		"dependency ghost does not exist",
		"dependency cycle: a → b → a",
	}
	joined := strings.Join(issues, "\n")
	for _, fragment := range wantFragments {
		if !strings.Contains(joined, fragment) {
			t.Errorf("Validate issues missing %q:\n%s", fragment, joined)
		}
	}
}
