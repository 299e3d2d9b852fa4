// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depgraph

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

// TransitionResult is the outcome of [ValidateTransition]. Reason is
// empty when Valid is true and otherwise holds a sentence meant for
// direct display. Callers branch on Valid only.
type TransitionResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Err returns nil for a valid result and a *TransitionError otherwise.
// The activity and target status are recorded in the error so it reads
// well once it has left the caller that asked.
func (result TransitionResult) Err(content activity.Activity, newStatus activity.Status) error {
	if result.Valid {
		return nil
	}
	return &TransitionError{
		ActivityID: content.ID,
		From:       content.Status,
		To:         newStatus,
		Reason:     result.Reason,
	}
}

// TransitionError reports a status change rejected by
// [ValidateTransition].
type TransitionError struct {
	ActivityID string
	From       activity.Status
	To         activity.Status
	Reason     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("activity %s: %s → %s rejected: %s", e.ActivityID, e.From, e.To, e.Reason)
}

// ValidateTransition decides whether content may move from its current
// status to newStatus given the rest of the process. It mutates
// nothing; the caller applies the new status only when the result is
// valid.
//
// Checked transitions:
//   - pending -> in_progress, pending -> completed,
//     in_progress -> completed: every prerequisite must be completed.
//   - completed -> pending (reopen): no non-completed activity may
//     directly depend on this one, since reopening would leave those
//     activities waiting on an unfinished prerequisite after they were
//     allowed past it.
//
// Every other pair, including same-status no-ops and anything
// involving blocked or paused, is valid here. Those rules belong to
// the caller.
func ValidateTransition(content activity.Activity, newStatus activity.Status, snapshot Snapshot) TransitionResult {
	switch content.Status {
	case activity.StatusPending:
		switch newStatus {
		case activity.StatusInProgress, activity.StatusCompleted:
			return requirePrerequisites(content, snapshot)
		}
	case activity.StatusInProgress:
		if newStatus == activity.StatusCompleted {
			return requirePrerequisites(content, snapshot)
		}
	case activity.StatusCompleted:
		if newStatus == activity.StatusPending {
			return requireNoWaitingDependents(content, snapshot)
		}
	case activity.StatusBlocked, activity.StatusPaused:
		// Statuses the engine does not interpret.
	}
	return TransitionResult{Valid: true}
}

func requirePrerequisites(content activity.Activity, snapshot Snapshot) TransitionResult {
	unmet := UnmetDependencies(content, snapshot)
	if len(unmet) == 0 {
		return TransitionResult{Valid: true}
	}
	labels := make([]string, len(unmet))
	for i, dependency := range unmet {
		labels[i] = dependency.Label()
	}
	return TransitionResult{
		Valid:  false,
		Reason: "waiting on unfinished dependencies: " + strings.Join(labels, ", "),
	}
}

func requireNoWaitingDependents(content activity.Activity, snapshot Snapshot) TransitionResult {
	blocked := BlockedActivities(content.ID, snapshot)
	switch len(blocked) {
	case 0:
		return TransitionResult{Valid: true}
	case 1:
		return TransitionResult{
			Valid:  false,
			Reason: "1 activity depends on this one and is not completed; reopening would leave it blocked",
		}
	default:
		return TransitionResult{
			Valid:  false,
			Reason: fmt.Sprintf("%d activities depend on this one and are not completed; reopening would leave them blocked", len(blocked)),
		}
	}
}
