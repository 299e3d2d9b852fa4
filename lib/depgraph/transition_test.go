// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depgraph

import (
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

func TestValidateTransitionRequiresPrerequisites(t *testing.T) {
	tests := []struct {
		from activity.Status
		to   activity.Status
	}{
		{activity.StatusPending, activity.StatusInProgress},
		{activity.StatusPending, activity.StatusCompleted},
		{activity.StatusInProgress, activity.StatusCompleted},
	}
	for _, test := range tests {
		t.Run(string(test.from)+"->"+string(test.to), func(t *testing.T) {
			snapshot := Snapshot{
				makeActivity("design", activity.StatusInProgress),
				makeActivity("build", test.from, "design"),
			}
			result := ValidateTransition(mustGet(t, snapshot, "build"), test.to, snapshot)
			if result.Valid {
				t.Fatal("transition with unfinished prerequisite should be invalid")
			}
			if !strings.Contains(result.Reason, "Activity design") {
				t.Errorf("Reason = %q, want it to name the unfinished dependency", result.Reason)
			}

			snapshot = withStatus(snapshot, "design", activity.StatusCompleted)
			result = ValidateTransition(mustGet(t, snapshot, "build"), test.to, snapshot)
			if !result.Valid {
				t.Errorf("transition with completed prerequisite rejected: %s", result.Reason)
			}
			if result.Reason != "" {
				t.Errorf("valid result has Reason %q", result.Reason)
			}
		})
	}
}

func TestValidateTransitionReasonListsOnlyUnmet(t *testing.T) {
	snapshot := Snapshot{
		{ID: "a", Name: "Gather requirements", Status: activity.StatusCompleted},
		{ID: "b", Name: "Review budget", Status: activity.StatusPending},
		{ID: "c", Status: activity.StatusPaused},
		{ID: "d", Name: "Kickoff", Status: activity.StatusPending, Dependencies: []string{"a", "b", "c", "ghost"}},
	}
	result := ValidateTransition(mustGet(t, snapshot, "d"), activity.StatusInProgress, snapshot)
	if result.Valid {
		t.Fatal("expected rejection")
	}
	want := "waiting on unfinished dependencies: Review budget, c, ghost"
	if result.Reason != want {
		t.Errorf("Reason = %q, want %q", result.Reason, want)
	}
}

func TestValidateTransitionReopen(t *testing.T) {
	snapshot := Snapshot{
		makeActivity("base", activity.StatusCompleted),
		makeActivity("next", activity.StatusPending, "base"),
	}
	result := ValidateTransition(mustGet(t, snapshot, "base"), activity.StatusPending, snapshot)
	if result.Valid {
		t.Fatal("reopening with a waiting dependent should be invalid")
	}
	if !strings.HasPrefix(result.Reason, "1 activity depends") {
		t.Errorf("Reason = %q, want singular count", result.Reason)
	}

	snapshot = append(snapshot, makeActivity("other", activity.StatusInProgress, "base"))
	result = ValidateTransition(mustGet(t, snapshot, "base"), activity.StatusPending, snapshot)
	if result.Valid || !strings.HasPrefix(result.Reason, "2 activities depend") {
		t.Errorf("result = %+v, want rejection counting 2 activities", result)
	}

	// Once every dependent is completed, reopening is allowed.
	snapshot = withStatus(withStatus(snapshot, "next", activity.StatusCompleted), "other", activity.StatusCompleted)
	result = ValidateTransition(mustGet(t, snapshot, "base"), activity.StatusPending, snapshot)
	if !result.Valid {
		t.Errorf("reopen with only completed dependents rejected: %s", result.Reason)
	}
}

func TestValidateTransitionUncheckedPairsAreValid(t *testing.T) {
	// Every prerequisite and dependent is unfinished, so any checked
	// transition would fail. Unchecked pairs must still pass.
	snapshot := Snapshot{
		makeActivity("pre", activity.StatusPending),
		makeActivity("subject", activity.StatusPending, "pre"),
		makeActivity("post", activity.StatusPending, "subject"),
	}
	checked := map[[2]activity.Status]bool{
		{activity.StatusPending, activity.StatusInProgress}:   true,
		{activity.StatusPending, activity.StatusCompleted}:    true,
		{activity.StatusInProgress, activity.StatusCompleted}: true,
		{activity.StatusCompleted, activity.StatusPending}:    true,
	}
	for _, from := range activity.Statuses {
		for _, to := range activity.Statuses {
			if checked[[2]activity.Status{from, to}] {
				continue
			}
			current := withStatus(snapshot, "subject", from)
			result := ValidateTransition(mustGet(t, current, "subject"), to, current)
			if !result.Valid {
				t.Errorf("%s -> %s rejected (%s), want valid no-op", from, to, result.Reason)
			}
		}
	}
}

func TestValidateTransitionDoesNotMutate(t *testing.T) {
	snapshot := linearSnapshot()
	before := withStatus(snapshot, "3", activity.StatusPending)
	ValidateTransition(mustGet(t, snapshot, "3"), activity.StatusCompleted, snapshot)
	for i := range snapshot {
		if snapshot[i].Status != before[i].Status {
			t.Errorf("activity %s status changed to %s", snapshot[i].ID, snapshot[i].Status)
		}
	}
}

func TestTransitionResultErr(t *testing.T) {
	content := makeActivity("x", activity.StatusPending, "y")
	if err := (TransitionResult{Valid: true}).Err(content, activity.StatusInProgress); err != nil {
		t.Errorf("Err() on valid result = %v", err)
	}

	err := TransitionResult{Valid: false, Reason: "waiting"}.Err(content, activity.StatusInProgress)
	var transitionError *TransitionError
	if !errors.As(err, &transitionError) {
		t.Fatalf("Err() = %T, want *TransitionError", err)
	}
	if transitionError.From != activity.StatusPending || transitionError.To != activity.StatusInProgress {
		t.Errorf("TransitionError = %+v", transitionError)
	}
	if !strings.Contains(err.Error(), "pending → in_progress") {
		t.Errorf("Error() = %q", err.Error())
	}
}
