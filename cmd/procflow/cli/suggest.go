// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// maxSuggestionDistance is the largest edit distance still offered as
// a "did you mean" hint.
const maxSuggestionDistance = 3

// closestName returns the candidate nearest to input by edit distance,
// or "" when none is within maxSuggestionDistance. Ties keep the
// earliest candidate.
func closestName(input string, candidates []string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range candidates {
		if distance := levenshtein(input, candidate); distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best
}

// suggestCommand names the sibling command a mistyped name most likely
// meant.
func suggestCommand(unknown string, commands []*Command) string {
	names := make([]string, len(commands))
	for index, command := range commands {
		names[index] = command.Name
	}
	return closestName(unknown, names)
}

// suggestFlag finds the first long flag in args that flagSet does not
// define and returns the nearest defined flag as "--name". Shorthand
// flags are too short to suggest meaningfully and are skipped.
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	var defined []string
	flagSet.VisitAll(func(flag *pflag.Flag) {
		defined = append(defined, flag.Name)
	})

	for _, arg := range args {
		if arg == "--" {
			return ""
		}
		name, isLong := strings.CutPrefix(arg, "--")
		if !isLong {
			continue
		}
		name, _, _ = strings.Cut(name, "=")
		if flagSet.Lookup(name) != nil {
			continue
		}
		if suggestion := closestName(name, defined); suggestion != "" {
			return "--" + suggestion
		}
		return ""
	}
	return ""
}

// levenshtein is the edit distance between a and b over bytes,
// computed with a single rolling row.
func levenshtein(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(b); j++ {
		diagonal := row[0]
		row[0] = j
		for i := 1; i <= len(a); i++ {
			substitution := diagonal
			if a[i-1] != b[j-1] {
				substitution++
			}
			diagonal = row[i]
			row[i] = min(row[i]+1, row[i-1]+1, substitution)
		}
	}
	return row[len(a)]
}
