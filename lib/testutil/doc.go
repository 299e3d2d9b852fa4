// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for procflow packages.
//
// [WriteFile] writes fixture content into a test's temporary directory
// and returns the path, for tests that exercise file loading.
//
// [RequireEqualStrings] and [RequireErrorIs] are the comparisons the
// suite repeats most often: id lists from the dependency engine and
// sentinel errors from loaders.
//
// [UniqueID] generates monotonically increasing identifiers for test
// disambiguation, e.g. when building large synthetic snapshots.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no procflow-internal dependencies.
package testutil
