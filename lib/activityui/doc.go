// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package activityui renders activities and their dependency
// neighborhoods for terminal output.
//
// All rendering goes through a [Styler], which pairs a [Theme] with a
// lipgloss renderer whose color profile is fixed at construction
// ("auto" detects from the output, "always" forces 256 colors, "never"
// produces plain text). Widths are measured and truncated with
// charmbracelet/x/ansi so escape sequences never count toward a
// column budget.
//
// [Styler.Neighborhood] draws one activity with its prerequisites
// fanning in from the left and its dependents fanning out to the right:
//
//	✓ collect ─┐
//	● review  ─┼─ draft ─── ○ publish
//	budget?   ─┘
//
// [Styler.Chain] renders a numbered prerequisite chain, and
// [Suggest] picks the activity whose id or name best fuzzy-matches a
// mistyped reference.
package activityui
