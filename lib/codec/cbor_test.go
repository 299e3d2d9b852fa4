// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

func sampleActivities() []activity.Activity {
	order := 2
	return []activity.Activity{
		{ID: "1", Name: "Collect requirements", Status: activity.StatusCompleted},
		{ID: "2", Name: "Draft plan", Status: activity.StatusInProgress, Dependencies: []string{"1"}, Order: &order},
	}
}

func TestMarshalUnmarshalActivities(t *testing.T) {
	original := sampleActivities()

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded []activity.Activity
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d activities, want 2", len(decoded))
	}
	if decoded[1].Status != activity.StatusInProgress {
		t.Errorf("Status = %q, want in_progress", decoded[1].Status)
	}
	if decoded[1].Order == nil || *decoded[1].Order != 2 {
		t.Errorf("Order = %v, want 2", decoded[1].Order)
	}
	if len(decoded[1].Dependencies) != 1 || decoded[1].Dependencies[0] != "1" {
		t.Errorf("Dependencies = %v", decoded[1].Dependencies)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	first, err := Marshal(sampleActivities())
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(sampleActivities())
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestStatusEncodesAsTextString(t *testing.T) {
	data, err := Marshal(activity.StatusCompleted)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	diagnostic, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if diagnostic != `"completed"` {
		t.Errorf("diagnostic = %s, want \"completed\"", diagnostic)
	}
}

func TestUnknownStatusRejected(t *testing.T) {
	if _, err := Marshal(activity.Status("bogus")); err == nil {
		t.Error("Marshal of unknown status should fail")
	}

	data, err := Marshal(map[string]any{"id": "x", "status": "finished"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded activity.Activity
	err = Unmarshal(data, &decoded)
	if err == nil || !strings.Contains(err.Error(), "finished") {
		t.Errorf("Unmarshal error = %v, want unknown status error", err)
	}
}

func TestEncoderDecoderStream(t *testing.T) {
	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for _, content := range sampleActivities() {
		if err := encoder.Encode(content); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	decoder := NewDecoder(&buffer)
	var ids []string
	for range 2 {
		var content activity.Activity
		if err := decoder.Decode(&content); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		ids = append(ids, content.ID)
	}
	if strings.Join(ids, ",") != "1,2" {
		t.Errorf("stream IDs = %v", ids)
	}
}
