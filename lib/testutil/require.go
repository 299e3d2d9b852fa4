// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"fmt"
	"slices"
)

// T is the subset of testing.TB the helpers need.
type T interface {
	Helper()
	Fatalf(format string, args ...any)
}

// RequireEqualStrings fails the test unless got and want hold the same
// strings in the same order. A nil slice equals an empty one.
//
//	testutil.RequireEqualStrings(t, depgraph.DependencyChain("3", snapshot), []string{"2", "1"})
func RequireEqualStrings(t T, got, want []string, msgAndArgs ...any) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("got %q, want %q: %s", got, want, formatMessage(msgAndArgs))
	}
}

// RequireErrorIs fails the test unless errors.Is(err, target).
//
//	testutil.RequireErrorIs(t, err, snapshotfile.ErrCycle, "loading cyclic snapshot")
func RequireErrorIs(t T, err, target error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		t.Fatalf("got nil error, want %v: %s", target, formatMessage(msgAndArgs))
	}
	if !errors.Is(err, target) {
		t.Fatalf("error %q does not wrap %v: %s", err, target, formatMessage(msgAndArgs))
	}
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}
