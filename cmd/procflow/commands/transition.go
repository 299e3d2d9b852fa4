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

type transitionParams struct {
	snapshotParams
	cli.JSONOutput
}

type transitionResult struct {
	Activity string          `json:"activity"`
	From     activity.Status `json:"from"`
	To       activity.Status `json:"to"`
	depgraph.TransitionResult
}

func transitionCommand(env environment) *cli.Command {
	var params transitionParams
	const usage = "procflow transition <activity> <status> [flags]"

	statuses := make([]string, len(activity.Statuses))
	for index, status := range activity.Statuses {
		statuses[index] = string(status)
	}

	return &cli.Command{
		Name:    "transition",
		Summary: "Check whether a status change is allowed",
		Description: fmt.Sprintf(`Report whether <activity> may move from its current status to
<status> (one of %s). Starting or completing
requires every prerequisite to be completed; reopening a completed
activity requires that nothing unfinished depends on it. Other changes
are not checked here.

Nothing is written. Exits 1 with the reason when the change is
rejected.`, strings.Join(statuses, ", ")),
		Usage: usage,
		Examples: []cli.Example{
			{
				Description: "May the draft start?",
				Command:     "procflow transition draft in_progress",
			},
			{
				Description: "May collection be reopened?",
				Command:     "procflow transition collect pending --json",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if err := positional(args, usage, "activity", "status"); err != nil {
				return err
			}
			newStatus, err := activity.ParseStatus(args[1])
			if err != nil {
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

			result := depgraph.ValidateTransition(content, newStatus, s.snapshot)
			s.logger.Debug("transition checked",
				"activity", content.ID,
				"from", content.Status,
				"to", newStatus,
				"valid", result.Valid,
			)

			if done, err := params.EmitJSON(env.stdout, transitionResult{
				Activity:         content.ID,
				From:             content.Status,
				To:               newStatus,
				TransitionResult: result,
			}); done {
				if err == nil && !result.Valid {
					return negative()
				}
				return err
			}

			change := s.styler.StatusBadge(content.Status) + " → " + s.styler.StatusBadge(newStatus)
			if result.Valid {
				s.println(s.styler.Verdict(true, "allowed") + "  " + content.ID + "  " + change)
				return nil
			}
			s.println(s.styler.Verdict(false, "rejected") + "  " + content.ID + "  " + change)
			s.println("  " + result.Reason)
			return negative()
		},
	}
}
