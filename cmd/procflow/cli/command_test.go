// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string
	root := &Command{
		Name: "procflow",
		Subcommands: []*Command{
			{Name: "chain", Run: func(args []string) error {
				called = "chain:" + strings.Join(args, ",")
				return nil
			}},
			{Name: "blocked", Run: func(args []string) error {
				called = "blocked"
				return nil
			}},
		},
	}

	if err := root.Execute([]string{"chain", "draft"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if called != "chain:draft" {
		t.Errorf("called = %q, want chain:draft", called)
	}
}

func TestCommand_Execute_ParamsBinding(t *testing.T) {
	var params struct {
		JSONOutput
		File string `flag:"file,f"`
	}
	var gotArgs []string
	command := &Command{
		Name:   "chain",
		Params: func() any { return &params },
		Run: func(args []string) error {
			gotArgs = args
			return nil
		},
	}

	if err := command.Execute([]string{"--file", "p.yaml", "--json", "draft"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if params.File != "p.yaml" || !params.OutputJSON {
		t.Errorf("params = %+v", params)
	}
	if len(gotArgs) != 1 || gotArgs[0] != "draft" {
		t.Errorf("args = %v, want [draft]", gotArgs)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	var params struct {
		File string `flag:"file"`
	}
	command := &Command{
		Name:   "chain",
		Params: func() any { return &params },
		Run:    func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--fiel", "p.yaml"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --file?") {
		t.Errorf("error = %q, want suggestion for --file", err)
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "procflow",
		Subcommands: []*Command{
			{Name: "transition", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute([]string{"transiton"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "transition"?`) {
		t.Errorf("error = %q, want suggestion", err)
	}

	err = root.Execute([]string{"qqqqqqqqqq"})
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %v, want unknown command without suggestion", err)
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	ran := false
	command := &Command{
		Name: "chain",
		Run: func(args []string) error {
			ran = true
			return nil
		},
	}

	if err := command.Execute([]string{"--help"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if ran {
		t.Error("Run should not be called for --help")
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name:        "procflow",
		Subcommands: []*Command{{Name: "chain", Run: func(args []string) error { return nil }}},
	}

	if err := root.Execute(nil); err == nil || !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %v, want subcommand required", err)
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	var params struct {
		File string `flag:"file,f" desc:"snapshot file"`
	}
	root := &Command{Name: "procflow"}
	command := &Command{
		Name:        "chain",
		Description: "Show the dependency chain of an activity.",
		Usage:       "procflow chain <activity> [flags]",
		Params:      func() any { return &params },
		Examples: []Example{
			{Description: "Chain for the draft step", Command: "procflow chain draft"},
		},
		parent: root,
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"Show the dependency chain of an activity.",
		"Usage:\n  procflow chain <activity> [flags]",
		"--file",
		"snapshot file",
		"# Chain for the draft step",
		"procflow chain draft",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "procflow"}
	child := &Command{Name: "chain", parent: root}
	if got := child.fullName(); got != "procflow chain" {
		t.Errorf("fullName() = %q, want %q", got, "procflow chain")
	}
}
