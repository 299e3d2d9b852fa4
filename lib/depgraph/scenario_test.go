// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depgraph

import (
	"strings"
	"testing"

	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

// TestLinearProcessScenario walks the three-activity process
// {1: []}, {2: [1]}, {3: [2]} through the questions an editor asks.
func TestLinearProcessScenario(t *testing.T) {
	snapshot := linearSnapshot()

	if !CanStart(mustGet(t, snapshot, "1"), snapshot) {
		t.Error("activity 1 has no prerequisites and should be able to start")
	}
	if CanStart(mustGet(t, snapshot, "2"), snapshot) {
		t.Error("activity 2 should wait for activity 1")
	}

	if !WouldCreateCycle(snapshot, "1", "3") {
		t.Error("making 1 depend on 3 should be rejected as cyclic")
	}

	requireIDs(t, DependencyChain("3", snapshot), []string{"2", "1"})

	result := ValidateTransition(mustGet(t, snapshot, "3"), activity.StatusInProgress, snapshot)
	if result.Valid {
		t.Error("activity 3 cannot start while activity 2 is pending")
	}
	if !strings.Contains(result.Reason, "Activity 2") {
		t.Errorf("Reason = %q, want it to name activity 2", result.Reason)
	}

	// The caller completes activity 1 in its own copy and resubmits.
	snapshot = withStatus(snapshot, "1", activity.StatusCompleted)
	if !CanStart(mustGet(t, snapshot, "2"), snapshot) {
		t.Error("activity 2 should be able to start once activity 1 is completed")
	}
	requireIDs(t, activityIDs(Ready(snapshot)), []string{"2"})
}
