// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/procflow/cmd/procflow/cli"
	"github.com/bureau-foundation/procflow/lib/snapshotfile"
)

type convertParams struct {
	snapshotParams
	cli.JSONOutput
}

type convertResult struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Activities  int    `json:"activities"`
	Digest      string `json:"digest"`
}

func convertCommand(env environment) *cli.Command {
	var params convertParams
	const usage = "procflow convert <output> [flags]"

	return &cli.Command{
		Name:    "convert",
		Summary: "Rewrite a snapshot in another format or compression",
		Description: `Load the snapshot (applying the usual checks) and write it to <output>.
The format and compression come from the output extension: .json,
.yaml/.yml, .cbor, or .hcl, optionally followed by .zst or .lz4.

The write is atomic. The digest printed afterwards is the same for
every format, so it can be compared against "procflow digest" of the
source.`,
		Usage: usage,
		Examples: []cli.Example{
			{
				Description: "Archive a snapshot as compressed CBOR",
				Command:     "procflow convert release.cbor.zst -f release.yaml",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if err := positional(args, usage, "output"); err != nil {
				return err
			}
			destination := args[0]
			if _, _, err := snapshotfile.DetectFormat(destination); err != nil {
				return err
			}
			s, err := params.open(env)
			if err != nil {
				return err
			}

			if err := snapshotfile.WriteFile(destination, s.document); err != nil {
				return err
			}
			digest, err := snapshotfile.Digest(s.document)
			if err != nil {
				return err
			}
			s.logger.Info("snapshot converted", "source", s.path, "destination", destination)

			if done, err := params.EmitJSON(env.stdout, convertResult{
				Source:      s.path,
				Destination: destination,
				Activities:  len(s.document.Activities),
				Digest:      digest,
			}); done {
				return err
			}
			s.println(fmt.Sprintf("wrote %s (%d activities)", destination, len(s.document.Activities)))
			s.println(s.styler.Faint(digest))
			return nil
		},
	}
}
