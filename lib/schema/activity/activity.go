// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activity

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state of an activity. The set of values is
// closed: UnmarshalText rejects anything not listed below, so a Status
// obtained from any decoder is always one of the constants.
//
// The dependency engine interprets only StatusPending,
// StatusInProgress, and StatusCompleted. StatusBlocked and StatusPaused
// are set by people in the broader system; to the engine they are
// simply "not completed".
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
	StatusPaused     Status = "paused"
)

// Statuses lists every valid status in lifecycle order.
var Statuses = []Status{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
	StatusBlocked,
	StatusPaused,
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusBlocked, StatusPaused:
		return true
	default:
		return false
	}
}

// String returns the wire form of the status.
func (s Status) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler. Unknown values are
// refused so that a corrupted in-memory status cannot be written out.
func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("unknown activity status %q", string(s))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStatus converts a wire string to a Status. The empty string is
// an error: every activity has an explicit status.
func ParseStatus(value string) (Status, error) {
	if value == "" {
		return "", errors.New("activity status is required")
	}
	status := Status(value)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown activity status %q (valid: pending, in_progress, completed, blocked, paused)", value)
	}
	return status, nil
}

// Activity is one unit of work in a process.
type Activity struct {
	// ID is unique within the process and stable across edits.
	ID string `json:"id" yaml:"id"`

	// Name is the display label. The dependency engine only uses it
	// to phrase rejection reasons.
	Name string `json:"name" yaml:"name"`

	// Status is the lifecycle state.
	Status Status `json:"status" yaml:"status"`

	// Dependencies lists the IDs of activities that must be completed
	// before this one may start. Set semantics: order carries no
	// meaning, entries are unique, and an activity never lists
	// itself.
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`

	// Order is an optional display/priority sequence. It is
	// independent of the dependency graph and only affects how
	// listings are sorted.
	Order *int `json:"order,omitempty" yaml:"order,omitempty"`
}

// Validate checks the activity in isolation and returns the first
// problem found, or nil. Checks that need the rest of the process
// (dangling references, cycles) belong to depgraph.Validate.
func (a *Activity) Validate() error {
	if a.ID == "" {
		return errors.New("activity: id is required")
	}
	if !a.Status.IsValid() {
		if a.Status == "" {
			return fmt.Errorf("activity %s: status is required", a.ID)
		}
		return fmt.Errorf("activity %s: unknown status %q", a.ID, a.Status)
	}
	seen := make(map[string]struct{}, len(a.Dependencies))
	for index, dependencyID := range a.Dependencies {
		if dependencyID == "" {
			return fmt.Errorf("activity %s: dependencies[%d] is empty", a.ID, index)
		}
		if dependencyID == a.ID {
			return fmt.Errorf("activity %s: cannot depend on itself", a.ID)
		}
		if _, duplicate := seen[dependencyID]; duplicate {
			return fmt.Errorf("activity %s: duplicate dependency %s", a.ID, dependencyID)
		}
		seen[dependencyID] = struct{}{}
	}
	return nil
}

// DependsOn reports whether activityID appears in a.Dependencies.
func (a *Activity) DependsOn(activityID string) bool {
	for _, dependencyID := range a.Dependencies {
		if dependencyID == activityID {
			return true
		}
	}
	return false
}

// Label returns the name when set, otherwise the ID. Used wherever an
// activity is mentioned in human-readable text.
func (a *Activity) Label() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}

// Clone returns a deep copy, so the caller can mutate the copy's
// dependency slice and order without aliasing the original.
func (a Activity) Clone() Activity {
	if a.Dependencies != nil {
		a.Dependencies = append([]string(nil), a.Dependencies...)
	}
	if a.Order != nil {
		order := *a.Order
		a.Order = &order
	}
	return a
}
