// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activityui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"github.com/bureau-foundation/procflow/lib/schema/activity"
)

func init() {
	algo.Init("default")
}

// Suggest returns the activity whose id or name best matches query
// under fzf's fuzzy scoring, for "did you mean" hints. Matching is
// case-insensitive. Returns false when nothing matches at all.
func Suggest(query string, activities []activity.Activity) (activity.Activity, bool) {
	pattern := []rune(strings.ToLower(query))
	if len(pattern) == 0 {
		return activity.Activity{}, false
	}

	slab := util.MakeSlab(100*1024, 2048)
	var best activity.Activity
	bestScore := 0
	for _, content := range activities {
		score := max(fuzzyScore(content.ID, pattern, slab), fuzzyScore(content.Name, pattern, slab))
		if score > bestScore {
			best = content
			bestScore = score
		}
	}
	return best, bestScore > 0
}

// fuzzyScore returns fzf's V2 match score of pattern (already
// lowercased) against text, 0 when it does not match.
func fuzzyScore(text string, pattern []rune, slab *util.Slab) int {
	if text == "" {
		return 0
	}
	chars := util.ToChars([]byte(strings.ToLower(text)))
	result, _ := algo.FuzzyMatchV2(false, true, true, &chars, pattern, false, slab)
	if result.Start < 0 {
		return 0
	}
	return result.Score
}
