// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for procflow.
//
// Configuration is loaded from a single file specified by either the
// PROCFLOW_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no ~/.config discovery and no automatic
// file search. When neither is given, [Load] returns [ErrNoConfig] and
// the CLI falls back to [Default].
//
// The file supports environment-specific sections (development,
// staging, production) that override base values when
// [Config].Environment matches. Production defaults are stricter:
// without a production section, snapshots with dangling references are
// rejected instead of loaded with a warning.
//
// ${HOME} and ${VAR:-default} patterns are expanded in
// snapshot.default_path after loading. No other environment variables
// override config values.
//
// Key exports:
//
//   - [Config] -- master struct with Snapshot, Output, Log
//   - [Default] -- returns a Config with development defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.SnapshotOptions] -- the snapshotfile.LoadOptions the
//     configuration implies
package config
