// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package snapshotfile

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bureau-foundation/procflow/lib/depgraph"
)

// CyclePolicy decides what loading does when the activity graph
// contains a dependency cycle.
type CyclePolicy string

const (
	// CycleReject fails the load with a *CycleError. The zero value
	// behaves as CycleReject.
	CycleReject CyclePolicy = "reject"

	// CycleTolerate loads the snapshot anyway and logs the cycle. The
	// engine's traversals terminate on cycles, but activities on a
	// cycle can never become startable.
	CycleTolerate CyclePolicy = "tolerate"
)

// IsValid reports whether p is a known policy. The empty string is
// valid and means CycleReject.
func (p CyclePolicy) IsValid() bool {
	switch p {
	case "", CycleReject, CycleTolerate:
		return true
	default:
		return false
	}
}

// DanglingPolicy decides what loading does when an activity depends on
// an id that is not in the snapshot.
type DanglingPolicy string

const (
	DanglingIgnore DanglingPolicy = "ignore"

	// DanglingWarn logs each dangling reference and continues. The
	// zero value behaves as DanglingWarn.
	DanglingWarn DanglingPolicy = "warn"

	DanglingReject DanglingPolicy = "reject"
)

// IsValid reports whether p is a known policy. The empty string is
// valid and means DanglingWarn.
func (p DanglingPolicy) IsValid() bool {
	switch p {
	case "", DanglingIgnore, DanglingWarn, DanglingReject:
		return true
	default:
		return false
	}
}

// LoadOptions controls the integrity checks applied after decoding.
// The zero value rejects cycles, warns about dangling references
// (without a logger, silently), and sets no size limits.
type LoadOptions struct {
	CyclePolicy    CyclePolicy
	DanglingPolicy DanglingPolicy

	// MaxActivities bounds the number of activities. 0 means
	// unlimited.
	MaxActivities int

	// MaxBytes bounds the decompressed size of a compressed file;
	// larger files fail with ErrTooLarge without being expanded in
	// full. 0 means unlimited.
	MaxBytes int64

	// Logger receives warnings for tolerated cycles and dangling
	// references. Nil discards them.
	Logger *slog.Logger
}

func (options LoadOptions) logger() *slog.Logger {
	if options.Logger != nil {
		return options.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Parse decodes uncompressed data in the given format and checks the
// result against options.
func Parse(data []byte, format Format, options LoadOptions) (Document, error) {
	document, err := decode(data, format, "snapshot."+string(format))
	if err != nil {
		return Document{}, err
	}
	if err := check(document, options); err != nil {
		return Document{}, err
	}
	return document, nil
}

// ReadFile reads, decompresses, decodes, and checks a snapshot file.
// When the file does not name its process, Process is derived from the
// file name.
func ReadFile(path string, options LoadOptions) (Document, error) {
	format, compression, err := DetectFormat(path)
	if err != nil {
		return Document{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	data, err = decompress(data, compression, options.MaxBytes)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	document, err := decode(data, format, path)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	if document.Process == "" {
		document.Process = NameFromPath(path)
	}

	options.Logger = options.logger().With("path", path)
	if err := check(document, options); err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return document, nil
}

// check applies the per-activity and whole-snapshot integrity checks.
func check(document Document, options LoadOptions) error {
	if !options.CyclePolicy.IsValid() {
		return fmt.Errorf("unknown cycle policy %q", options.CyclePolicy)
	}
	if !options.DanglingPolicy.IsValid() {
		return fmt.Errorf("unknown dangling policy %q", options.DanglingPolicy)
	}

	activities := document.Activities
	if options.MaxActivities > 0 && len(activities) > options.MaxActivities {
		return fmt.Errorf("%w: snapshot has %d activities, limit is %d",
			ErrTooManyActivities, len(activities), options.MaxActivities)
	}

	firstIndex := make(map[string]int, len(activities))
	for index := range activities {
		if err := activities[index].Validate(); err != nil {
			return fmt.Errorf("activities[%d]: %w", index, err)
		}
		if first, duplicate := firstIndex[activities[index].ID]; duplicate {
			return fmt.Errorf("activities[%d]: duplicate id %q (first used at activities[%d])",
				index, activities[index].ID, first)
		}
		firstIndex[activities[index].ID] = index
	}

	logger := options.logger()
	snapshot := document.Snapshot()

	if options.DanglingPolicy != DanglingIgnore {
		dangling := depgraph.Dangling(snapshot)
		if len(dangling) > 0 && options.DanglingPolicy == DanglingReject {
			references := make([]string, len(dangling))
			for index, reference := range dangling {
				references[index] = reference.ActivityID + " → " + reference.DependencyID
			}
			return fmt.Errorf("%w: %s", ErrDangling, strings.Join(references, ", "))
		}
		for _, reference := range dangling {
			logger.Warn("activity depends on an id not in the snapshot; it cannot start until the reference is fixed",
				"activity", reference.ActivityID,
				"dependency", reference.DependencyID,
			)
		}
	}

	if cycle := depgraph.FindCycle(snapshot); cycle != nil {
		if options.CyclePolicy != CycleTolerate {
			return &CycleError{Path: cycle}
		}
		logger.Warn("snapshot contains a dependency cycle; activities on it can never start",
			"cycle", depgraph.FormatCycle(cycle),
		)
	}

	return nil
}
