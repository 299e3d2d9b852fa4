// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is one node of the procflow command tree. A node either runs
// something (Run) or groups further nodes (Subcommands); a node with
// both falls back to Run when the first argument names no child.
type Command struct {
	Name    string // as typed, e.g. "can-start"
	Summary string // one line, listed under the parent's help

	// Description replaces Summary at the top of the command's own help.
	Description string

	// Usage overrides the generated "Usage:" line.
	Usage string

	Examples []Example

	// Params yields a tagged parameter struct whose fields become flags
	// through [FlagsFromParams]. Flags takes precedence when both are set.
	Params func() any

	// Flags builds the flag set by hand. It is called on every parse and
	// help rendering, so it must return a fresh set each time.
	Flags func() *pflag.FlagSet

	Subcommands []*Command

	// Run receives the positional arguments left after flag parsing.
	Run func(args []string) error

	parent *Command
}

// Example is a single "# description / command line" pair in help.
type Example struct {
	Description string
	Command     string
}

// flagSet builds the command's flags, or returns nil when it has none.
func (c *Command) flagSet() *pflag.FlagSet {
	switch {
	case c.Flags != nil:
		return c.Flags()
	case c.Params != nil:
		return FlagsFromParams(c.Name, c.Params())
	default:
		return nil
	}
}

// Execute routes args through the tree: a leading help flag prints help,
// a leading bare word selects a subcommand, and whatever remains is
// parsed as flags and handed to Run.
func (c *Command) Execute(args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(os.Stderr)
		return nil
	}

	if len(c.Subcommands) > 0 {
		if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
			child, err := c.child(args[0])
			if err != nil {
				return err
			}
			return child.Execute(args[1:])
		}
		if c.Run == nil {
			c.PrintHelp(os.Stderr)
			if len(args) == 0 {
				return errors.New("subcommand required")
			}
			return fmt.Errorf("subcommand required (got flag %q)", args[0])
		}
	}

	positional, err := c.parseFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			c.PrintHelp(os.Stderr)
			return nil
		}
		return err
	}

	if c.Run == nil {
		c.PrintHelp(os.Stderr)
		return fmt.Errorf("no action defined for %q", c.fullName())
	}
	return c.Run(positional)
}

// child looks up the subcommand called name and links it back to c so
// its help shows the full path.
func (c *Command) child(name string) (*Command, error) {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			sub.parent = c
			return sub, nil
		}
	}
	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		return nil, c.usageError(fmt.Sprintf("unknown command %q (did you mean %q?)", name, suggestion))
	}
	return nil, c.usageError(fmt.Sprintf("unknown command %q", name))
}

// parseFlags returns the positional arguments left in args once the
// command's flags are consumed. pflag's own error printing is silenced;
// failures come back as usage errors with a flag suggestion attached
// when one is close.
func (c *Command) parseFlags(args []string) ([]string, error) {
	flagSet := c.flagSet()
	if flagSet == nil {
		return args, nil
	}
	flagSet.SetOutput(io.Discard)

	err := flagSet.Parse(args)
	switch {
	case err == nil:
		return flagSet.Args(), nil
	case errors.Is(err, pflag.ErrHelp):
		return nil, err
	}

	message := err.Error()
	if strings.Contains(message, "unknown flag") || strings.Contains(message, "unknown shorthand flag") {
		// Parse left flagSet partially populated; match against a clean one.
		if suggestion := suggestFlag(args, c.flagSet()); suggestion != "" {
			message += fmt.Sprintf(" (did you mean %s?)", suggestion)
		}
	}
	return nil, c.usageError(message)
}

func (c *Command) usageError(message string) error {
	return fmt.Errorf("%s\n\nRun '%s --help' for usage.", message, c.fullName())
}

// PrintHelp renders description, usage, subcommands, flags, and
// examples to w, omitting empty sections.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	if heading := c.Description; heading != "" || c.Summary != "" {
		if heading == "" {
			heading = c.Summary
		}
		fmt.Fprintf(w, "%s\n\n", heading)
	}

	usage := c.Usage
	switch {
	case usage != "":
	case len(c.Subcommands) > 0:
		usage = name + " <command> [flags]"
	default:
		usage = name + " [flags]"
	}
	fmt.Fprintf(w, "Usage:\n  %s\n", usage)

	if len(c.Subcommands) > 0 {
		fmt.Fprint(w, "\nCommands:\n")
		table := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(table, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		table.Flush()
	}

	if flagSet := c.flagSet(); flagSet != nil {
		if usages := flagSet.FlagUsages(); usages != "" {
			fmt.Fprintf(w, "\nFlags:\n%s", usages)
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprint(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description == "" {
				fmt.Fprintf(w, "  %s\n", example.Command)
				continue
			}
			fmt.Fprintf(w, "  # %s\n  %s\n\n", example.Description, example.Command)
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

// fullName joins the names from the root down to c with spaces.
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func isHelpFlag(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	}
	return false
}
