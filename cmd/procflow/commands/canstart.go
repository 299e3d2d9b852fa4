// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/bureau-foundation/procflow/cmd/procflow/cli"
	"github.com/bureau-foundation/procflow/lib/depgraph"
)

type canStartParams struct {
	snapshotParams
	cli.JSONOutput
}

type canStartResult struct {
	Activity string           `json:"activity"`
	CanStart bool             `json:"can_start"`
	Unmet    []depgraph.Unmet `json:"unmet"`
}

func canStartCommand(env environment) *cli.Command {
	var params canStartParams
	const usage = "procflow can-start <activity> [flags]"

	return &cli.Command{
		Name:    "can-start",
		Summary: "Check whether an activity's prerequisites are all completed",
		Description: `Report whether every prerequisite of <activity> is completed. A
prerequisite missing from the snapshot counts as unfinished. The
activity's own status is not considered.

Exits 1 and lists the unfinished prerequisites when it cannot start.`,
		Usage: usage,
		Examples: []cli.Example{
			{
				Description: "Is the draft unblocked?",
				Command:     "procflow can-start draft",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if err := positional(args, usage, "activity"); err != nil {
				return err
			}
			s, err := params.open(env)
			if err != nil {
				return err
			}
			content, err := s.resolve(args[0])
			if err != nil {
				return err
			}

			canStart := depgraph.CanStart(content, s.snapshot)
			unmet := depgraph.UnmetDependencies(content, s.snapshot)

			if done, err := params.EmitJSON(env.stdout, canStartResult{
				Activity: content.ID,
				CanStart: canStart,
				Unmet:    unmet,
			}); done {
				if err == nil && !canStart {
					return negative()
				}
				return err
			}

			if canStart {
				s.println(s.styler.Verdict(true, "ready") + "  " + s.styler.ActivityLine(content))
				return nil
			}
			s.println(s.styler.Verdict(false, "waiting") + "  " + s.styler.ActivityLine(content))
			for _, dependency := range unmet {
				if dependency.Missing {
					s.println("  " + s.styler.MissingLine(dependency.ID))
					continue
				}
				prerequisite, _ := s.snapshot.Get(dependency.ID)
				s.println("  " + s.styler.ActivityLine(prerequisite))
			}
			return negative()
		},
	}
}
