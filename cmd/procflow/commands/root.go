// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the procflow command tree.
package commands

import (
	"io"

	"github.com/bureau-foundation/procflow/cmd/procflow/cli"
)

// environment carries the output streams every command writes to.
type environment struct {
	stdout io.Writer
	stderr io.Writer
}

// Root returns the top-level procflow command. Query results go to
// stdout; diagnostics and help go to stderr.
func Root(stdout, stderr io.Writer) *cli.Command {
	env := environment{stdout: stdout, stderr: stderr}
	return &cli.Command{
		Name:    "procflow",
		Summary: "Answer dependency questions about a process snapshot",
		Description: `procflow answers dependency questions about the activities of one
process: whether a prerequisite edge would create a cycle, whether an
activity may start, what is waiting on it, what it depends on, and
whether a status change is allowed.

Every query reads a snapshot file (YAML, JSON, CBOR, or HCL, optionally
zstd- or lz4-compressed) named by --file or by snapshot.default_path in
the configuration. Nothing is written back: procflow only answers.`,
		Subcommands: []*cli.Command{
			checkEdgeCommand(env),
			canStartCommand(env),
			blockedCommand(env),
			chainCommand(env),
			transitionCommand(env),
			readyCommand(env),
			impactCommand(env),
			validateCommand(env),
			explainCommand(env),
			convertCommand(env),
			digestCommand(env),
			versionCommand(env),
		},
	}
}
