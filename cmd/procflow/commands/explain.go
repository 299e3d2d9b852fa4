// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/procflow/cmd/procflow/cli"
	"github.com/bureau-foundation/procflow/lib/depgraph"
	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

type explainParams struct {
	snapshotParams
	cli.JSONOutput
}

type explainResult struct {
	Activity     activity.Activity `json:"activity"`
	Dependents   []string          `json:"dependents"`
	CanStart     bool              `json:"can_start"`
	Unmet        []depgraph.Unmet  `json:"unmet"`
	Blocked      []string          `json:"blocked"`
	Chain        []string          `json:"chain"`
	Impact       []string          `json:"impact"`
	UnblockCount int               `json:"unblock_count"`
}

func explainCommand(env environment) *cli.Command {
	var params explainParams
	const usage = "procflow explain <activity> [flags]"

	return &cli.Command{
		Name:    "explain",
		Summary: "Show an activity with its prerequisites and dependents",
		Description: `Show everything procflow knows about one activity: a graph of its
direct prerequisites (left) and direct dependents (right), whether it
can start, what it is waiting on, and how much of the process is
downstream of it.`,
		Usage: usage,
		Examples: []cli.Example{
			{
				Description: "Explain the draft step",
				Command:     "procflow explain draft",
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

			result := explainResult{
				Activity:     content,
				Dependents:   directDependents(content.ID, s.snapshot),
				CanStart:     depgraph.CanStart(content, s.snapshot),
				Unmet:        depgraph.UnmetDependencies(content, s.snapshot),
				Blocked:      depgraph.BlockedActivities(content.ID, s.snapshot),
				Chain:        depgraph.DependencyChain(content.ID, s.snapshot),
				Impact:       depgraph.TransitiveDependents(content.ID, s.snapshot),
				UnblockCount: depgraph.UnblockCount(content.ID, s.snapshot),
			}
			if done, err := params.EmitJSON(env.stdout, result); done {
				return err
			}

			s.println(s.styler.ActivityLine(content))
			s.println("")
			s.println(s.styler.Neighborhood(content.ID, content.Dependencies, result.Dependents, s.lookup))
			s.println("")

			if result.CanStart {
				s.println(s.styler.Verdict(true, "prerequisites met"))
			} else {
				labels := make([]string, len(result.Unmet))
				for index, unmet := range result.Unmet {
					labels[index] = unmet.Label()
				}
				s.println(s.styler.Verdict(false, "waiting on") + fmt.Sprintf(" %d of %d prerequisites: %s",
					len(result.Unmet), len(content.Dependencies), strings.Join(labels, ", ")))
			}
			s.println(s.styler.Faint(fmt.Sprintf("%d transitive prerequisites, %d downstream, %d blocked directly, completing it unblocks %d",
				len(result.Chain), len(result.Impact), len(result.Blocked), result.UnblockCount)))
			return nil
		},
	}
}

// directDependents returns the ids of every activity that lists
// activityID as a prerequisite, whatever its status, in snapshot
// order.
func directDependents(activityID string, snapshot depgraph.Snapshot) []string {
	dependents := []string{}
	for index := range snapshot {
		if snapshot[index].DependsOn(activityID) {
			dependents = append(dependents, snapshot[index].ID)
		}
	}
	return dependents
}
