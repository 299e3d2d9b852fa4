// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/bureau-foundation/procflow/cmd/procflow/cli"
	"github.com/bureau-foundation/procflow/lib/snapshotfile"
)

type digestParams struct {
	snapshotParams
	cli.JSONOutput
}

type digestResult struct {
	Process    string `json:"process,omitempty"`
	Activities int    `json:"activities"`
	Digest     string `json:"digest"`
}

func digestCommand(env environment) *cli.Command {
	var params digestParams

	return &cli.Command{
		Name:    "digest",
		Summary: "Print a content fingerprint of the snapshot",
		Description: `Print the BLAKE3 fingerprint of the snapshot's process name and
activities. It does not depend on file format, compression, or the
order activities appear in, so it identifies the state a decision was
made against: record it when validating, and compare before applying a
change.`,
		Usage: "procflow digest [flags]",
		Examples: []cli.Example{
			{
				Description: "Fingerprint the current snapshot",
				Command:     "procflow digest -f release.yaml",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if err := positional(args, "procflow digest [flags]"); err != nil {
				return err
			}
			s, err := params.open(env)
			if err != nil {
				return err
			}
			digest, err := snapshotfile.Digest(s.document)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(env.stdout, digestResult{
				Process:    s.document.Process,
				Activities: len(s.document.Activities),
				Digest:     digest,
			}); done {
				return err
			}
			s.println(digest)
			return nil
		},
	}
}
