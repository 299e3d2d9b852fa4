// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activityui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/procflow/lib/depgraph"
	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

func plainStyler(width int) *Styler {
	return NewStyler(&bytes.Buffer{}, DefaultTheme, ColorNever, width)
}

func testSnapshot() depgraph.Snapshot {
	return depgraph.Snapshot{
		{ID: "collect", Name: "Collect requirements", Status: activity.StatusCompleted},
		{ID: "review", Name: "Review budget", Status: activity.StatusInProgress},
		{ID: "draft", Name: "Draft plan", Status: activity.StatusPending, Dependencies: []string{"collect", "review", "budget"}},
		{ID: "publish", Name: "Publish plan", Status: activity.StatusPending, Dependencies: []string{"draft"}},
		{ID: "archive", Name: "Archive notes", Status: activity.StatusPaused, Dependencies: []string{"draft"}},
	}
}

func TestStatusColorCoversEveryStatus(t *testing.T) {
	for _, status := range activity.Statuses {
		if DefaultTheme.StatusColor(status) == DefaultTheme.FaintText {
			t.Errorf("status %s falls back to FaintText", status)
		}
		if StatusIcon(status) == "?" {
			t.Errorf("status %s has no icon", status)
		}
	}
	if DefaultTheme.StatusColor("bogus") != DefaultTheme.FaintText {
		t.Error("unknown status should use FaintText")
	}
}

func TestStatusBadgePlain(t *testing.T) {
	if got := plainStyler(80).StatusBadge(activity.StatusCompleted); got != "✓ completed" {
		t.Errorf("StatusBadge = %q", got)
	}
}

func TestColorAlwaysEmitsEscapes(t *testing.T) {
	styler := NewStyler(&bytes.Buffer{}, DefaultTheme, ColorAlways, 80)
	badge := styler.StatusBadge(activity.StatusBlocked)
	if !strings.Contains(badge, "\x1b[") {
		t.Errorf("expected ANSI escapes with ColorAlways, got %q", badge)
	}
	if ansi.Strip(badge) != "◐ blocked" {
		t.Errorf("visible text = %q", ansi.Strip(badge))
	}
}

func TestActivityLineTruncates(t *testing.T) {
	content := activity.Activity{ID: "draft", Name: strings.Repeat("long name ", 10), Status: activity.StatusPending}
	line := plainStyler(30).ActivityLine(content)
	if width := ansi.StringWidth(line); width > 30 {
		t.Errorf("line width %d exceeds 30: %q", width, line)
	}
	if !strings.HasSuffix(line, "…") {
		t.Errorf("truncated line should end with an ellipsis: %q", line)
	}
}

func TestChain(t *testing.T) {
	snapshot := testSnapshot()
	rendered := plainStyler(0).Chain([]string{"collect", "review", "budget"}, snapshot.Get)
	lines := strings.Split(rendered, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), rendered)
	}
	if lines[0] != "1. ✓ collect  Collect requirements  completed" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "3. ? budget") || !strings.Contains(lines[2], "not in this process") {
		t.Errorf("line 3 = %q", lines[2])
	}
	if plainStyler(0).Chain(nil, snapshot.Get) != "" {
		t.Error("empty chain should render empty")
	}
}

func TestBoxDrawingCorners(t *testing.T) {
	cases := []struct {
		left, right, up, down bool
		expected              rune
	}{
		{true, false, false, true, '┐'},
		{true, false, true, false, '┘'},
		{false, true, false, true, '┌'},
		{false, true, true, false, '└'},
		{true, true, true, true, '┼'},
		{true, false, true, true, '┤'},
		{false, true, true, true, '├'},
		{false, false, false, false, ' '},
	}
	for _, testCase := range cases {
		got := boxDrawing(testCase.left, testCase.right, testCase.up, testCase.down)
		if got != testCase.expected {
			t.Errorf("boxDrawing(%v,%v,%v,%v) = %c, want %c",
				testCase.left, testCase.right, testCase.up, testCase.down,
				got, testCase.expected)
		}
	}
}

func TestNeighborhoodEmpty(t *testing.T) {
	snapshot := testSnapshot()
	if rendered := plainStyler(80).Neighborhood("collect", nil, nil, snapshot.Get); rendered != "" {
		t.Errorf("expected empty rendering, got %q", rendered)
	}
}

func TestNeighborhoodBothSides(t *testing.T) {
	snapshot := testSnapshot()
	rendered := plainStyler(80).Neighborhood("draft",
		[]string{"collect", "review", "budget"},
		[]string{"publish", "archive"},
		snapshot.Get)

	want := strings.Join([]string{
		"✓ collect ─┐         ┌─ ○ publish",
		"● review  ─┼─ draft ─┴─ ‖ archive",
		"budget?   ─┘",
	}, "\n")
	if rendered != want {
		t.Errorf("rendered:\n%s\nwant:\n%s", rendered, want)
	}
}

func TestNeighborhoodRightOnly(t *testing.T) {
	snapshot := testSnapshot()
	rendered := plainStyler(80).Neighborhood("draft", nil, []string{"publish"}, snapshot.Get)
	if rendered != "draft ─── ○ publish" {
		t.Errorf("rendered = %q", rendered)
	}
}

func TestNeighborhoodRespectsWidth(t *testing.T) {
	snapshot := depgraph.Snapshot{
		{ID: "an-extremely-long-prerequisite-identifier", Status: activity.StatusCompleted},
		{ID: "center", Status: activity.StatusPending, Dependencies: []string{"an-extremely-long-prerequisite-identifier"}},
		{ID: "another-extremely-long-dependent-identifier", Status: activity.StatusPending, Dependencies: []string{"center"}},
	}
	rendered := plainStyler(40).Neighborhood("center",
		[]string{"an-extremely-long-prerequisite-identifier"},
		[]string{"another-extremely-long-dependent-identifier"},
		snapshot.Get)
	for _, line := range strings.Split(rendered, "\n") {
		if width := ansi.StringWidth(line); width > 40 {
			t.Errorf("line width %d exceeds 40: %q", width, line)
		}
	}
	if !strings.Contains(rendered, "center") {
		t.Errorf("center label must survive truncation: %q", rendered)
	}
}

func TestSuggest(t *testing.T) {
	activities := []activity.Activity(testSnapshot())

	match, ok := Suggest("publsh", activities)
	if !ok || match.ID != "publish" {
		t.Errorf("Suggest(publsh) = %q, %v; want publish", match.ID, ok)
	}

	match, ok = Suggest("BUDGET", activities)
	if !ok || match.ID != "review" {
		t.Errorf("Suggest(BUDGET) = %q, %v; want review (by name)", match.ID, ok)
	}

	if _, ok := Suggest("zzzz", activities); ok {
		t.Error("Suggest(zzzz) should find nothing")
	}
	if _, ok := Suggest("", activities); ok {
		t.Error("empty query should find nothing")
	}
}
