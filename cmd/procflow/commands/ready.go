// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/procflow/cmd/procflow/cli"
	"github.com/bureau-foundation/procflow/lib/depgraph"
	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

type readyParams struct {
	snapshotParams
	cli.JSONOutput
	Waiting bool `json:"-" flag:"waiting,w" desc:"also list pending activities that cannot start yet"`
}

type readyEntry struct {
	activity.Activity
	Unblocks int `json:"unblocks"`
}

type readyResult struct {
	Process       string       `json:"process,omitempty"`
	Ready         []readyEntry `json:"ready"`
	Waiting       []readyEntry `json:"waiting,omitempty"`
	CriticalDepth int          `json:"critical_depth"`
}

func readyCommand(env environment) *cli.Command {
	var params readyParams

	return &cli.Command{
		Name:    "ready",
		Summary: "List pending activities whose prerequisites are all completed",
		Description: `List the pending activities that can start now, in display order.
Each shows how many other activities would become ready if it were
completed. The footer reports the critical depth: the longest chain of
unfinished activities left in the process.

With --waiting, the pending activities that cannot start yet are listed
too.`,
		Usage: "procflow ready [flags]",
		Examples: []cli.Example{
			{
				Description: "What can be picked up now?",
				Command:     "procflow ready -f release.yaml",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if err := positional(args, "procflow ready [flags]"); err != nil {
				return err
			}
			s, err := params.open(env)
			if err != nil {
				return err
			}

			result := readyResult{
				Process:       s.document.Process,
				Ready:         s.entries(depgraph.Ready(s.snapshot)),
				CriticalDepth: depgraph.CriticalDepth(s.snapshot),
			}
			if params.Waiting {
				result.Waiting = s.entries(depgraph.Waiting(s.snapshot))
			}
			if done, err := params.EmitJSON(env.stdout, result); done {
				return err
			}

			s.println(s.styler.Header(fmt.Sprintf("Ready (%d)", len(result.Ready))))
			s.printEntries(result.Ready, "nothing can start right now")
			if params.Waiting {
				s.println("")
				s.println(s.styler.Header(fmt.Sprintf("Waiting (%d)", len(result.Waiting))))
				s.printEntries(result.Waiting, "nothing is waiting")
			}
			s.println("")
			s.println(s.styler.Faint(fmt.Sprintf("critical depth: %d", result.CriticalDepth)))
			return nil
		},
	}
}

func (s *session) entries(activities []activity.Activity) []readyEntry {
	entries := make([]readyEntry, len(activities))
	for index, content := range activities {
		entries[index] = readyEntry{
			Activity: content,
			Unblocks: depgraph.UnblockCount(content.ID, s.snapshot),
		}
	}
	return entries
}

func (s *session) printEntries(entries []readyEntry, empty string) {
	if len(entries) == 0 {
		s.println(s.styler.Faint("  " + empty))
		return
	}
	for _, entry := range entries {
		line := "  " + s.styler.ActivityLine(entry.Activity)
		if entry.Unblocks > 0 {
			line += s.styler.Faint(fmt.Sprintf("  unblocks %d", entry.Unblocks))
		}
		s.println(line)
	}
}
