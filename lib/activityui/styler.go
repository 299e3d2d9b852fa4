// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activityui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

// Lookup resolves an activity id. depgraph.Snapshot.Get satisfies it.
type Lookup func(activityID string) (activity.Activity, bool)

// Color modes accepted by NewStyler.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Styler renders activities with a theme at a fixed width.
type Styler struct {
	renderer *lipgloss.Renderer
	theme    Theme
	width    int
}

// NewStyler creates a styler writing to output. colorMode is one of
// ColorAuto, ColorAlways, or ColorNever; unknown values behave like
// ColorAuto. width is the column budget for line-oriented output.
func NewStyler(output io.Writer, theme Theme, colorMode string, width int) *Styler {
	renderer := lipgloss.NewRenderer(output)
	switch colorMode {
	case ColorAlways:
		// SetColorProfile is required: the renderer otherwise
		// re-detects from the environment and drops colors when output
		// is not a terminal.
		renderer.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Styler{renderer: renderer, theme: theme, width: width}
}

// Width returns the column budget.
func (styler *Styler) Width() int {
	return styler.width
}

func (styler *Styler) style(color lipgloss.Color) lipgloss.Style {
	return styler.renderer.NewStyle().Foreground(color)
}

// StatusBadge renders a status as its icon and wire name, colored by
// status: "✓ completed".
func (styler *Styler) StatusBadge(status activity.Status) string {
	return styler.style(styler.theme.StatusColor(status)).Render(StatusIcon(status) + " " + string(status))
}

// Header renders a bold section heading.
func (styler *Styler) Header(text string) string {
	return styler.style(styler.theme.HeaderForeground).Bold(true).Render(text)
}

// Faint renders secondary text.
func (styler *Styler) Faint(text string) string {
	return styler.style(styler.theme.FaintText).Render(text)
}

// Verdict renders text in the success or failure color.
func (styler *Styler) Verdict(ok bool, text string) string {
	if ok {
		return styler.style(styler.theme.Success).Bold(true).Render(text)
	}
	return styler.style(styler.theme.Failure).Bold(true).Render(text)
}

// ActivityLine renders one activity as "icon id  name  status",
// truncated to the styler width.
func (styler *Styler) ActivityLine(content activity.Activity) string {
	statusStyle := styler.style(styler.theme.StatusColor(content.Status))
	line := statusStyle.Render(StatusIcon(content.Status)) + " " +
		styler.style(styler.theme.NormalText).Bold(true).Render(content.ID)
	if content.Name != "" {
		line += "  " + styler.style(styler.theme.NormalText).Render(content.Name)
	}
	line += "  " + statusStyle.Render(string(content.Status))
	return styler.truncate(line, styler.width)
}

// MissingLine renders a reference to an id that is not in the
// snapshot.
func (styler *Styler) MissingLine(activityID string) string {
	line := styler.Faint("? " + activityID + "  (not in this process)")
	return styler.truncate(line, styler.width)
}

// Chain renders a numbered list of activities, one per line, resolving
// each id through lookup. Ids the lookup does not know are shown as
// missing rather than dropped.
func (styler *Styler) Chain(activityIDs []string, lookup Lookup) string {
	if len(activityIDs) == 0 {
		return ""
	}
	numberWidth := len(fmt.Sprint(len(activityIDs)))
	lines := make([]string, len(activityIDs))
	for index, activityID := range activityIDs {
		number := styler.Faint(fmt.Sprintf("%*d.", numberWidth, index+1))
		var body string
		if content, ok := lookup(activityID); ok {
			body = styler.ActivityLine(content)
		} else {
			body = styler.MissingLine(activityID)
		}
		lines[index] = styler.truncate(number+" "+body, styler.width)
	}
	return strings.Join(lines, "\n")
}

// truncate shortens styled text to width visible columns, ending with
// an ellipsis when anything was cut. A width of 0 or less disables
// truncation.
func (styler *Styler) truncate(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
