// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package snapshotfile

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/procflow/lib/depgraph"
)

var (
	// ErrUnknownFormat is returned when a path's extension does not
	// name a supported format.
	ErrUnknownFormat = errors.New("unknown snapshot format")

	// ErrCycle is wrapped by every *CycleError.
	ErrCycle = errors.New("dependency cycle")

	// ErrDangling is returned under DanglingReject when an activity
	// depends on an id that is not in the snapshot.
	ErrDangling = errors.New("dangling dependency reference")

	// ErrTooLarge is returned when a compressed snapshot decompresses
	// to more than LoadOptions.MaxBytes.
	ErrTooLarge = errors.New("snapshot too large")

	// ErrTooManyActivities is returned when a snapshot exceeds
	// LoadOptions.MaxActivities.
	ErrTooManyActivities = errors.New("too many activities")
)

// CycleError reports a dependency cycle found while loading a snapshot
// under CycleReject. Path starts and ends with the same id.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCycle, depgraph.FormatCycle(e.Path))
}

func (e *CycleError) Unwrap() error {
	return ErrCycle
}
