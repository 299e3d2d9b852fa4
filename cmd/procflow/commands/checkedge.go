// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/procflow/cmd/procflow/cli"
	"github.com/bureau-foundation/procflow/lib/depgraph"
)

type checkEdgeParams struct {
	snapshotParams
	cli.JSONOutput
}

type checkEdgeResult struct {
	Activity         string `json:"activity"`
	Dependency       string `json:"dependency"`
	WouldCreateCycle bool   `json:"would_create_cycle"`
}

func checkEdgeCommand(env environment) *cli.Command {
	var params checkEdgeParams
	const usage = "procflow check-edge <activity> <dependency> [flags]"

	return &cli.Command{
		Name:    "check-edge",
		Summary: "Check whether a new dependency would create a cycle",
		Description: `Report whether making <activity> depend on <dependency> would close a
dependency cycle. Nothing is modified: run this before adding the edge.

Exits 1 when the edge would create a cycle, including an activity
depending on itself.`,
		Usage: usage,
		Examples: []cli.Example{
			{
				Description: "Can publishing wait on the archive step?",
				Command:     "procflow check-edge publish archive -f release.yaml",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if err := positional(args, usage, "activity", "dependency"); err != nil {
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
			dependency, err := s.resolve(args[1])
			if err != nil {
				return err
			}

			cycle := depgraph.WouldCreateCycle(s.snapshot, content.ID, dependency.ID)
			s.logger.Debug("edge checked",
				"activity", content.ID,
				"dependency", dependency.ID,
				"would_create_cycle", cycle,
			)

			if done, err := params.EmitJSON(env.stdout, checkEdgeResult{
				Activity:         content.ID,
				Dependency:       dependency.ID,
				WouldCreateCycle: cycle,
			}); done {
				if err == nil && cycle {
					return negative()
				}
				return err
			}

			edge := fmt.Sprintf("%s → %s", content.ID, dependency.ID)
			if cycle {
				s.println(s.styler.Verdict(false, "cycle") + "  adding " + edge + " would create a dependency cycle")
				return negative()
			}
			s.println(s.styler.Verdict(true, "ok") + "  " + edge + " keeps the process acyclic")
			return nil
		},
	}
}
