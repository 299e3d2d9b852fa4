// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package snapshotfile

import (
	"cmp"
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/procflow/lib/codec"
	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

// DigestPrefix is prepended to every digest string to name the
// algorithm.
const DigestPrefix = "blake3:"

// digestDomainKey is the BLAKE3 key for snapshot digests: the ASCII
// domain name zero-padded to 32 bytes. Changing it invalidates every
// recorded digest.
var digestDomainKey = [32]byte{
	'p', 'r', 'o', 'c', 'f', 'l', 'o', 'w', '.', 's', 'n', 'a', 'p', 's', 'h', 'o',
	't', '.', 'd', 'i', 'g', 'e', 's', 't', 0, 0, 0, 0, 0, 0, 0, 0,
}

// Digest fingerprints a document: a BLAKE3 keyed hash over the
// deterministic CBOR encoding of the process name and the activities
// sorted by id. File format, compression, and activity order in the
// file do not affect the result, and neither does the order of a
// dependency list (it is a set); any change to an id, name, status,
// dependency list, or order does.
//
// Callers record the digest of the snapshot they validated against and
// compare it before persisting, since the engine offers no atomicity
// across calls.
func Digest(document Document) (string, error) {
	activities := make([]activity.Activity, len(document.Activities))
	for index, content := range document.Activities {
		activities[index] = content.Clone()
		slices.Sort(activities[index].Dependencies)
	}
	slices.SortStableFunc(activities, func(a, b activity.Activity) int {
		return cmp.Compare(a.ID, b.ID)
	})

	canonical := Document{Process: document.Process, Activities: activities}
	data, err := codec.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("encoding snapshot for digest: %w", err)
	}

	// NewKeyed only fails for a key that is not 32 bytes.
	hasher, err := blake3.NewKeyed(digestDomainKey[:])
	if err != nil {
		panic("snapshotfile: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	return DigestPrefix + hex.EncodeToString(hasher.Sum(nil)), nil
}
