// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestEmitJSON(t *testing.T) {
	var buffer bytes.Buffer

	disabled := JSONOutput{}
	done, err := disabled.EmitJSON(&buffer, map[string]int{"a": 1})
	if done || err != nil || buffer.Len() != 0 {
		t.Fatalf("EmitJSON without --json: done=%v err=%v output=%q", done, err, buffer.String())
	}

	enabled := JSONOutput{OutputJSON: true}
	var ids []string
	done, err = enabled.EmitJSON(&buffer, ids)
	if !done || err != nil {
		t.Fatalf("EmitJSON: done=%v err=%v", done, err)
	}
	if got := strings.TrimSpace(buffer.String()); got != "[]" {
		t.Errorf("nil slice encoded as %q, want []", got)
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 1}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok || coder.ExitCode() != 1 {
		t.Errorf("ExitError does not report code 1")
	}
	if err.Error() != "exit code 1" {
		t.Errorf("Error() = %q", err.Error())
	}
}
