// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bureau-foundation/procflow/cmd/procflow/cli"
	"github.com/bureau-foundation/procflow/lib/activityui"
	"github.com/bureau-foundation/procflow/lib/config"
	"github.com/bureau-foundation/procflow/lib/depgraph"
	"github.com/bureau-foundation/procflow/lib/schema/activity"
	"github.com/bureau-foundation/procflow/lib/snapshotfile"
)

// defaultWidth is the column budget when output is not a terminal and
// the configuration does not set one.
const defaultWidth = 100

// snapshotParams are the flags shared by every command that reads a
// snapshot. Embed it in a command's params struct.
type snapshotParams struct {
	Config  string `json:"-" flag:"config"    desc:"configuration file (default: $PROCFLOW_CONFIG)"`
	File    string `json:"-" flag:"file,f"    desc:"snapshot file (default: snapshot.default_path from config)"`
	Verbose bool   `json:"-" flag:"verbose,v" desc:"log debug diagnostics to stderr"`
}

// session is a loaded snapshot plus everything needed to present
// answers about it.
type session struct {
	env      environment
	config   *config.Config
	logger   *slog.Logger
	styler   *activityui.Styler
	path     string
	document snapshotfile.Document
	snapshot depgraph.Snapshot
}

// loadConfig reads --config, then $PROCFLOW_CONFIG, and falls back to
// the defaults when neither is set.
func (params *snapshotParams) loadConfig() (*config.Config, error) {
	if params.Config != "" {
		return config.LoadFile(params.Config)
	}
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		return config.Default(), nil
	}
	return cfg, err
}

// open loads configuration and the snapshot. adjust may relax the load
// options the configuration implies; validate uses it to report
// problems instead of refusing to load.
func (params *snapshotParams) open(env environment, adjust ...func(*snapshotfile.LoadOptions)) (*session, error) {
	cfg, err := params.loadConfig()
	if err != nil {
		return nil, err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	var levelVar slog.LevelVar
	levelVar.Set(level)
	if params.Verbose {
		levelVar.Set(slog.LevelDebug)
	}
	logger := cli.NewCommandLogger(env.stderr, &levelVar)

	width := cfg.Output.Width
	if width <= 0 {
		width = cli.TerminalWidth(env.stdout, defaultWidth)
	}
	styler := activityui.NewStyler(env.stdout, activityui.DefaultTheme, cfg.Output.Color, width)

	path := params.File
	if path == "" {
		path = cfg.ExpandDefaultPath()
	}

	options := cfg.SnapshotOptions(logger)
	for _, apply := range adjust {
		apply(&options)
	}

	document, err := snapshotfile.ReadFile(path, options)
	if err != nil {
		return nil, err
	}
	logger.Debug("snapshot loaded",
		"path", path,
		"process", document.Process,
		"activities", len(document.Activities),
		"environment", cfg.Environment,
	)

	return &session{
		env:      env,
		config:   cfg,
		logger:   logger,
		styler:   styler,
		path:     path,
		document: document,
		snapshot: document.Snapshot(),
	}, nil
}

// resolve finds the activity an argument refers to: an id first, then
// a unique exact name. When neither matches, the error suggests the
// closest activity by fuzzy match.
func (s *session) resolve(reference string) (activity.Activity, error) {
	if content, ok := s.snapshot.Get(reference); ok {
		return content, nil
	}

	var matches []activity.Activity
	for _, content := range s.document.Activities {
		if content.Name == reference {
			matches = append(matches, content)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
	default:
		ids := make([]string, len(matches))
		for index, content := range matches {
			ids[index] = content.ID
		}
		return activity.Activity{}, fmt.Errorf("activity name %q is ambiguous in %s: use one of the ids %s",
			reference, s.document.Process, strings.Join(ids, ", "))
	}

	if suggestion, ok := activityui.Suggest(reference, s.document.Activities); ok {
		return activity.Activity{}, fmt.Errorf("activity %q not found in %s (did you mean %q?)",
			reference, s.document.Process, suggestion.ID)
	}
	return activity.Activity{}, fmt.Errorf("activity %q not found in %s", reference, s.document.Process)
}

// lookup adapts the snapshot for activityui renderers.
func (s *session) lookup(activityID string) (activity.Activity, bool) {
	return s.snapshot.Get(activityID)
}

// println writes one line of text output.
func (s *session) println(text string) {
	fmt.Fprintln(s.env.stdout, text)
}

// positional checks that args holds exactly the named positional
// arguments.
func positional(args []string, usage string, names ...string) error {
	if len(args) < len(names) {
		return fmt.Errorf("%s is required\n\nUsage: %s", names[len(args)], usage)
	}
	if len(args) > len(names) {
		return fmt.Errorf("expected %d positional arguments, got %d\n\nUsage: %s", len(names), len(args), usage)
	}
	return nil
}

// negative is the error a query returns after printing a "no" answer.
func negative() error {
	return &cli.ExitError{Code: 1}
}
