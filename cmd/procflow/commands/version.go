// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/procflow/cmd/procflow/cli"
	"github.com/bureau-foundation/procflow/lib/version"
)

type versionParams struct {
	cli.JSONOutput
}

func versionCommand(env environment) *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print build information",
		Usage:   "procflow version [flags]",
		Params:  func() any { return &params },
		Run: func(args []string) error {
			if done, err := params.EmitJSON(env.stdout, version.Current()); done {
				return err
			}
			fmt.Fprintln(env.stdout, version.Full())
			return nil
		},
	}
}
