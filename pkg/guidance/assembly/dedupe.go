package assembly

import (
	"strings"

	"career-compass-be/pkg/guidance/rank"
)

// DefaultOverlapThreshold is the Jaccard similarity above which a chunk is
// treated as a near-duplicate of an already-kept one.
const DefaultOverlapThreshold = 0.9

// CollapseNearDuplicates scans chunks in order, keeping the first occurrence
// and dropping any later chunk whose token overlap with a kept chunk exceeds
// the threshold.
func CollapseNearDuplicates(chunks []rank.ScoredChunk, threshold float64) []rank.ScoredChunk {
	if threshold <= 0 {
		threshold = DefaultOverlapThreshold
	}

	var kept []rank.ScoredChunk
	var keptTokens []map[string]bool

	for _, chunk := range chunks {
		tokens := tokenSet(chunk.Chunk.ChunkText)
		duplicate := false
		for _, existing := range keptTokens {
			if jaccard(tokens, existing) > threshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, chunk)
			keptTokens = append(keptTokens, tokens)
		}
	}
	return kept
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		set[strings.Trim(token, ".,!?;:\"'()")] = true
	}
	delete(set, "")
	return set
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	intersection := 0
	for token := range a {
		if b[token] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
