// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depgraph

import "github.com/bureau-foundation/procflow/lib/schema/activity"

// Unmet describes one prerequisite that is not satisfied.
type Unmet struct {
	// ID is the prerequisite's activity ID as listed in Dependencies.
	ID string `json:"id"`

	// Name is the prerequisite's display name. Empty when Missing.
	Name string `json:"name,omitempty"`

	// Status is the prerequisite's current status. Empty when Missing.
	Status activity.Status `json:"status,omitempty"`

	// Missing is true when the ID does not exist in the snapshot.
	Missing bool `json:"missing,omitempty"`
}

// Label returns the name to show for the prerequisite, falling back
// to its ID.
func (unmet Unmet) Label() string {
	if unmet.Name != "" {
		return unmet.Name
	}
	return unmet.ID
}

// CanStart reports whether every prerequisite of content is completed.
// An activity with no prerequisites can always start. A prerequisite
// that does not exist in the snapshot counts as not completed.
//
// CanStart does not look at content.Status: it answers "are the
// prerequisites satisfied", and the transition validator decides which
// status changes need that answer.
func CanStart(content activity.Activity, snapshot Snapshot) bool {
	if len(content.Dependencies) == 0 {
		return true
	}
	return allDependenciesCompleted(snapshot.index(), &content)
}

// UnmetDependencies returns the prerequisites of content that are not
// completed, in declaration order. Returns nil when CanStart would be
// true.
func UnmetDependencies(content activity.Activity, snapshot Snapshot) []Unmet {
	if len(content.Dependencies) == 0 {
		return nil
	}
	return unmetDependencies(snapshot.index(), &content)
}

// allDependenciesCompleted returns true if every dependency exists in
// the lookup and has status completed.
func allDependenciesCompleted(lookup index, content *activity.Activity) bool {
	for _, dependencyID := range content.Dependencies {
		dependency, exists := lookup[dependencyID]
		if !exists || dependency.Status != activity.StatusCompleted {
			return false
		}
	}
	return true
}

func unmetDependencies(lookup index, content *activity.Activity) []Unmet {
	var result []Unmet
	for _, dependencyID := range content.Dependencies {
		dependency, exists := lookup[dependencyID]
		if !exists {
			result = append(result, Unmet{ID: dependencyID, Missing: true})
			continue
		}
		if dependency.Status != activity.StatusCompleted {
			result = append(result, Unmet{
				ID:     dependencyID,
				Name:   dependency.Name,
				Status: dependency.Status,
			})
		}
	}
	return result
}
