// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activityui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

// neighbor is one activity beside the center of a neighborhood.
type neighbor struct {
	activityID string
	content    activity.Activity
	exists     bool // False when the id is not in the snapshot.
}

// Neighborhood renders a compact horizontal diagram of an activity's
// immediate dependency neighborhood: prerequisites fan in from the
// left, dependents fan out to the right, joined with box-drawing
// characters. Each neighbor shows its status icon (colored by status)
// and id; ids missing from the snapshot are marked with "?".
//
// Layout for 3 prerequisites (one missing), 2 dependents:
//
//	✓ collect ─┐         ┌─ ○ publish
//	● review  ─┼─ draft ─┴─ ‖ archive
//	budget?   ─┘
//
// Returns "" when the activity has neither prerequisites nor
// dependents.
func (styler *Styler) Neighborhood(centerID string, dependencies, dependents []string, lookup Lookup) string {
	if len(dependencies) == 0 && len(dependents) == 0 {
		return ""
	}

	leftNodes := resolveNeighbors(dependencies, lookup)
	rightNodes := resolveNeighbors(dependents, lookup)

	totalRows := max(len(leftNodes), len(rightNodes), 1)

	// Vertical centering offsets.
	leftStart := (totalRows - len(leftNodes)) / 2
	rightStart := (totalRows - len(rightNodes)) / 2
	centerRow := totalRows / 2

	leftLabelWidth := maxLabelWidth(leftNodes)
	rightLabelWidth := maxLabelWidth(rightNodes)
	centerLabel := centerID

	// Fixed portions: " ─" + merge column + "─ " on the left, and
	// " ─" + split column + "─ " on the right.
	fixedWidth := 0
	if len(leftNodes) > 0 {
		fixedWidth += 5
	}
	if len(rightNodes) > 0 {
		fixedWidth += 5
	}

	// Shrink side labels proportionally when over budget, preserving
	// the center.
	totalWidth := leftLabelWidth + fixedWidth + ansi.StringWidth(centerLabel) + rightLabelWidth
	if styler.width > 0 && totalWidth > styler.width {
		available := max(styler.width-fixedWidth-ansi.StringWidth(centerLabel), 0)
		half := available / 2
		switch {
		case leftLabelWidth > half && rightLabelWidth > half:
			leftLabelWidth = half
			rightLabelWidth = available - half
		case leftLabelWidth > half:
			leftLabelWidth = available - rightLabelWidth
		default:
			rightLabelWidth = available - leftLabelWidth
		}
		leftLabelWidth = max(leftLabelWidth, 0)
		rightLabelWidth = max(rightLabelWidth, 0)
	}

	connectorStyle := styler.style(styler.theme.BorderColor)
	centerStyle := styler.style(styler.theme.HeaderForeground).Bold(true)

	centerAreaWidth := ansi.StringWidth(centerLabel)
	if len(leftNodes) > 0 {
		centerAreaWidth += 2
	}
	if len(rightNodes) > 0 {
		centerAreaWidth += 2
	}

	rows := make([]string, 0, totalRows)
	for row := range totalRows {
		var builder strings.Builder

		leftIndex := row - leftStart
		hasLeftNode := leftIndex >= 0 && leftIndex < len(leftNodes)
		if len(leftNodes) > 0 {
			if hasLeftNode {
				builder.WriteString(styler.renderLabel(leftNodes[leftIndex], leftLabelWidth))
				builder.WriteString(connectorStyle.Render(" ─"))
			} else {
				builder.WriteString(strings.Repeat(" ", leftLabelWidth+2))
			}
			merge := mergeChar(row, leftStart, leftStart+len(leftNodes)-1, centerRow)
			builder.WriteString(connectorStyle.Render(string(merge)))
		}

		if row == centerRow {
			if len(leftNodes) > 0 {
				builder.WriteString(connectorStyle.Render("─ "))
			}
			builder.WriteString(centerStyle.Render(centerLabel))
			if len(rightNodes) > 0 {
				builder.WriteString(connectorStyle.Render(" ─"))
			}
		} else {
			builder.WriteString(strings.Repeat(" ", centerAreaWidth))
		}

		if len(rightNodes) > 0 {
			split := splitChar(row, rightStart, rightStart+len(rightNodes)-1, centerRow)
			builder.WriteString(connectorStyle.Render(string(split)))

			rightIndex := row - rightStart
			if rightIndex >= 0 && rightIndex < len(rightNodes) {
				builder.WriteString(connectorStyle.Render("─ "))
				builder.WriteString(styler.renderLabel(rightNodes[rightIndex], rightLabelWidth))
			}
		}

		rows = append(rows, strings.TrimRight(builder.String(), " "))
	}

	return strings.Join(rows, "\n")
}

func resolveNeighbors(activityIDs []string, lookup Lookup) []neighbor {
	nodes := make([]neighbor, len(activityIDs))
	for index, activityID := range activityIDs {
		content, exists := lookup(activityID)
		nodes[index] = neighbor{activityID: activityID, content: content, exists: exists}
	}
	return nodes
}

// labelText is the unstyled label: "icon id", or "id?" when missing.
func labelText(node neighbor) string {
	if !node.exists {
		return node.activityID + "?"
	}
	return StatusIcon(node.content.Status) + " " + node.activityID
}

func maxLabelWidth(nodes []neighbor) int {
	maxWidth := 0
	for _, node := range nodes {
		maxWidth = max(maxWidth, ansi.StringWidth(labelText(node)))
	}
	return maxWidth
}

// renderLabel styles a neighbor's label and pads or truncates it to
// exactly targetWidth columns.
func (styler *Styler) renderLabel(node neighbor, targetWidth int) string {
	text := labelText(node)
	if ansi.StringWidth(text) > targetWidth {
		text = ansi.Truncate(text, targetWidth, "…")
	}
	padding := strings.Repeat(" ", max(targetWidth-ansi.StringWidth(text), 0))

	if !node.exists {
		return styler.Faint(text) + padding
	}
	return styler.style(styler.theme.StatusColor(node.content.Status)).Render(text) + padding
}

// mergeChar returns the box-drawing character for the left merge
// column at the given row. The vertical bar spans from the topmost
// relevant row (fan or center) to the bottommost, so a single node
// offset from the center still connects.
func mergeChar(row, fanStart, fanEnd, centerRow int) rune {
	spanTop := min(fanStart, centerRow)
	spanBottom := max(fanEnd, centerRow)

	if row < spanTop || row > spanBottom {
		return ' '
	}

	hasLeft := row >= fanStart && row <= fanEnd
	hasRight := row == centerRow
	return boxDrawing(hasLeft, hasRight, row > spanTop, row < spanBottom)
}

// splitChar mirrors mergeChar for the right split column.
func splitChar(row, fanStart, fanEnd, centerRow int) rune {
	spanTop := min(fanStart, centerRow)
	spanBottom := max(fanEnd, centerRow)

	if row < spanTop || row > spanBottom {
		return ' '
	}

	hasRight := row >= fanStart && row <= fanEnd
	hasLeft := row == centerRow
	return boxDrawing(hasLeft, hasRight, row > spanTop, row < spanBottom)
}

// boxDrawing returns the Unicode light box-drawing character that
// connects in the specified directions.
func boxDrawing(left, right, up, down bool) rune {
	switch {
	case left && right && up && down:
		return '┼'
	case left && right && up:
		return '┴'
	case left && right && down:
		return '┬'
	case left && up && down:
		return '┤'
	case right && up && down:
		return '├'
	case left && right:
		return '─'
	case up && down:
		return '│'
	case left && down:
		return '┐'
	case left && up:
		return '┘'
	case right && down:
		return '┌'
	case right && up:
		return '└'
	case left, right:
		return '─'
	case up, down:
		return '│'
	default:
		return ' '
	}
}
