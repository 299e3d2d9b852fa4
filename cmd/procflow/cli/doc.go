// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for procflow.
//
// Commands form a tree assembled in cmd/procflow/commands. Each
// [Command] either runs or groups children; [Command.Execute] walks the
// tree, parses flags from a tagged parameter struct (see [BindFlags])
// and prints help. Embedding [JSONOutput] in a parameter struct adds
// --json.
//
// Mistyped subcommands and long flags get a "did you mean" hint naming
// the nearest known name within three edits.
//
// [ExitError] lets a command report a negative answer (a rejected
// transition, a failed validation) through the exit code after printing
// its own output.
package cli
