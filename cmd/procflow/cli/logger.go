// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI diagnostics.
// When output is a terminal, uses slog.TextHandler for human-readable
// output. When it is piped or redirected (CI, scripts), uses
// slog.JSONHandler for machine-parseable output.
//
// level is read on every record, so a *slog.LevelVar can be raised or
// lowered after configuration is loaded.
//
//	logger := cli.NewCommandLogger(os.Stderr, &levelVar).With(
//	    "command", "transition",
//	    "activity", activityID,
//	)
func NewCommandLogger(output io.Writer, level slog.Leveler) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if IsTerminal(output) {
		handler = slog.NewTextHandler(output, options)
	} else {
		handler = slog.NewJSONHandler(output, options)
	}
	return slog.New(handler)
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// TerminalWidth returns the column width of w when it is a terminal,
// or fallback otherwise.
func TerminalWidth(w io.Writer, fallback int) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return fallback
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
