// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/procflow/cmd/procflow/commands"
)

func main() {
	if err := run(); err != nil {
		// Query commands that answer "no" (a rejected transition, an
		// edge that would close a cycle) have already printed their
		// answer. Don't print a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return commands.Root(os.Stdout, os.Stderr).Execute(os.Args[1:])
}
