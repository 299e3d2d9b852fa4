// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/procflow/cmd/procflow/cli"
	"github.com/bureau-foundation/procflow/lib/depgraph"
	"github.com/bureau-foundation/procflow/lib/snapshotfile"
)

type validateParams struct {
	snapshotParams
	cli.JSONOutput
}

type validateResult struct {
	Process    string   `json:"process,omitempty"`
	Activities int      `json:"activities"`
	Issues     []string `json:"issues"`
}

func validateCommand(env environment) *cli.Command {
	var params validateParams

	return &cli.Command{
		Name:    "validate",
		Summary: "Check a snapshot for dangling references and cycles",
		Description: `Load a snapshot without the configured cycle and dangling-reference
policies and report every structural problem: dependencies on ids that
are not in the process, and dependency cycles.

Files that cannot be decoded at all (syntax errors, unknown statuses,
duplicate ids) fail with an error instead. Exits 1 when any issue is
found.`,
		Usage: "procflow validate [flags]",
		Examples: []cli.Example{
			{
				Description: "Check a snapshot before committing it",
				Command:     "procflow validate -f release.yaml",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if err := positional(args, "procflow validate [flags]"); err != nil {
				return err
			}
			s, err := params.open(env, func(options *snapshotfile.LoadOptions) {
				options.CyclePolicy = snapshotfile.CycleTolerate
				options.DanglingPolicy = snapshotfile.DanglingIgnore
			})
			if err != nil {
				return err
			}

			issues := depgraph.Validate(s.snapshot)
			if issues == nil {
				issues = []string{}
			}
			if done, err := params.EmitJSON(env.stdout, validateResult{
				Process:    s.document.Process,
				Activities: len(s.document.Activities),
				Issues:     issues,
			}); done {
				if err == nil && len(issues) > 0 {
					return negative()
				}
				return err
			}

			if len(issues) == 0 {
				s.println(s.styler.Verdict(true, "ok") + fmt.Sprintf("  %s: %d activities, no issues",
					s.path, len(s.document.Activities)))
				return nil
			}
			s.println(s.styler.Verdict(false, "invalid") + fmt.Sprintf("  %s: %d issues", s.path, len(issues)))
			for _, issue := range issues {
				s.println("  " + issue)
			}
			return negative()
		},
	}
}
