// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package snapshotfile

import (
	"strings"
	"testing"

	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

func mustDigest(t *testing.T, document Document) string {
	t.Helper()
	digest, err := Digest(document)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	return digest
}

func TestDigestFormat(t *testing.T) {
	digest := mustDigest(t, sampleDocument())
	if !strings.HasPrefix(digest, DigestPrefix) {
		t.Errorf("digest %q missing prefix", digest)
	}
	if len(digest) != len(DigestPrefix)+64 {
		t.Errorf("digest %q has wrong length", digest)
	}
}

func TestDigestIgnoresActivityOrder(t *testing.T) {
	document := sampleDocument()
	reversed := Document{Process: document.Process}
	for index := len(document.Activities) - 1; index >= 0; index-- {
		reversed.Activities = append(reversed.Activities, document.Activities[index])
	}
	if mustDigest(t, document) != mustDigest(t, reversed) {
		t.Error("digest depends on activity order")
	}
	if document.Activities[0].ID != "1" {
		t.Error("Digest reordered the caller's slice")
	}
}

func TestDigestIgnoresDependencyOrder(t *testing.T) {
	document := sampleDocument()
	reordered := sampleDocument()
	reordered.Activities[2].Dependencies = []string{"2", "1"}

	if mustDigest(t, document) != mustDigest(t, reordered) {
		t.Error("digest depends on the order of a dependency list")
	}
	if reordered.Activities[2].Dependencies[0] != "2" {
		t.Error("Digest sorted the caller's dependency slice")
	}
}

func TestDigestDetectsChanges(t *testing.T) {
	base := mustDigest(t, sampleDocument())

	mutations := map[string]func(*Document){
		"status": func(document *Document) {
			document.Activities[1].Status = activity.StatusCompleted
		},
		"dependency": func(document *Document) {
			document.Activities[2].Dependencies = []string{"1"}
		},
		"name": func(document *Document) {
			document.Activities[0].Name = "Gather requirements"
		},
		"process": func(document *Document) {
			document.Process = "hotfix"
		},
		"order": func(document *Document) {
			document.Activities[2].Order = nil
		},
	}
	for name, mutate := range mutations {
		document := sampleDocument()
		mutate(&document)
		if mustDigest(t, document) == base {
			t.Errorf("changing %s did not change the digest", name)
		}
	}
}

func TestDigestRejectsInvalidStatus(t *testing.T) {
	_, err := Digest(Document{Activities: []activity.Activity{{ID: "a", Status: "done"}}})
	if err == nil {
		t.Error("Digest accepted an unknown status")
	}
}
