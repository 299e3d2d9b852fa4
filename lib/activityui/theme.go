// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activityui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

// Theme defines the color palette for procflow's terminal output. All
// colors are ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	StatusPending    lipgloss.Color
	StatusInProgress lipgloss.Color
	StatusCompleted  lipgloss.Color
	StatusBlocked    lipgloss.Color
	StatusPaused     lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color

	// Verdicts: accepted transitions and startable activities use
	// Success, rejections and integrity issues use Failure.
	Success lipgloss.Color
	Failure lipgloss.Color
}

// StatusColor returns the color for a status, or FaintText for values
// outside the known set.
func (theme Theme) StatusColor(status activity.Status) lipgloss.Color {
	switch status {
	case activity.StatusPending:
		return theme.StatusPending
	case activity.StatusInProgress:
		return theme.StatusInProgress
	case activity.StatusCompleted:
		return theme.StatusCompleted
	case activity.StatusBlocked:
		return theme.StatusBlocked
	case activity.StatusPaused:
		return theme.StatusPaused
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	StatusPending:    lipgloss.Color("75"),  // blue
	StatusInProgress: lipgloss.Color("220"), // yellow/amber
	StatusCompleted:  lipgloss.Color("114"), // green
	StatusBlocked:    lipgloss.Color("196"), // red
	StatusPaused:     lipgloss.Color("141"), // light purple

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),

	Success: lipgloss.Color("114"),
	Failure: lipgloss.Color("203"),
}

// StatusIcon returns the single-character indicator for a status.
func StatusIcon(status activity.Status) string {
	switch status {
	case activity.StatusPending:
		return "○"
	case activity.StatusInProgress:
		return "●"
	case activity.StatusCompleted:
		return "✓"
	case activity.StatusBlocked:
		return "◐"
	case activity.StatusPaused:
		return "‖"
	default:
		return "?"
	}
}
