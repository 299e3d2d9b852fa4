// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/bureau-foundation/procflow/cmd/procflow/cli"
	"github.com/bureau-foundation/procflow/lib/depgraph"
)

// listParams serve the commands that answer with a list of ids.
type listParams struct {
	snapshotParams
	cli.JSONOutput
}

type listResult struct {
	Activity string   `json:"activity"`
	IDs      []string `json:"ids"`
}

// listCommand builds a command that resolves one activity, computes a
// list of related ids, and prints them numbered.
func listCommand(env environment, name, summary, description, empty string, examples []cli.Example, query func(string, depgraph.Snapshot) []string) *cli.Command {
	var params listParams
	usage := "procflow " + name + " <activity> [flags]"

	return &cli.Command{
		Name:        name,
		Summary:     summary,
		Description: description,
		Usage:       usage,
		Examples:    examples,
		Params:      func() any { return &params },
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

			ids := query(content.ID, s.snapshot)
			if ids == nil {
				ids = []string{}
			}
			if done, err := params.EmitJSON(env.stdout, listResult{Activity: content.ID, IDs: ids}); done {
				return err
			}

			s.println(s.styler.Header(content.ID) + "  " + s.styler.Faint(summary))
			if len(ids) == 0 {
				s.println(s.styler.Faint(empty))
				return nil
			}
			s.println(s.styler.Chain(ids, s.lookup))
			return nil
		},
	}
}

func blockedCommand(env environment) *cli.Command {
	return listCommand(env, "blocked",
		"Activities directly waiting on this one",
		`List the activities that name <activity> as a direct prerequisite and
are not yet completed, in snapshot order. Completing <activity> is
necessary (not always sufficient) for each of them to start.`,
		"nothing is waiting on it",
		[]cli.Example{{Description: "What is the review holding up?", Command: "procflow blocked review"}},
		depgraph.BlockedActivities,
	)
}

func chainCommand(env environment) *cli.Command {
	return listCommand(env, "chain",
		"Everything this activity transitively depends on",
		`List every prerequisite of <activity>, direct and indirect, nearest
first (breadth-first). This is an explanation of what stands behind an
activity, not an execution schedule.`,
		"no prerequisites",
		[]cli.Example{{Description: "Everything behind publishing", Command: "procflow chain publish"}},
		depgraph.DependencyChain,
	)
}

func impactCommand(env environment) *cli.Command {
	return listCommand(env, "impact",
		"Everything downstream of this activity",
		`List every activity that transitively depends on <activity>, whatever
its status, nearest first. Use this before reopening or removing an
activity to see what it affects.`,
		"nothing depends on it",
		[]cli.Example{{Description: "What would reopening collect affect?", Command: "procflow impact collect"}},
		depgraph.TransitiveDependents,
	)
}
