package merger

import (
	"strings"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
)

// DefaultDuplicateThreshold is the similarity bar for the general-purpose
// duplicate check. The merge pass itself uses the slightly looser configured
// threshold because overlap-region turns are often truncated at one end.
const DefaultDuplicateThreshold = 0.8

func normalizeSpeaker(speaker string) string {
	return strings.ToLower(strings.TrimSpace(speaker))
}

func normalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// Similarity scores two texts in [0,1] using word-set Jaccard similarity over
// the whitespace-normalized, lower-cased word sets. Identical normalized texts
// short-circuit to 1.0.
func Similarity(a, b string) float64 {
	na := normalizeText(a)
	nb := normalizeText(b)

	if na == nb {
		return 1.0
	}

	setA := wordSet(na)
	setB := wordSet(nb)
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

func wordSet(normalized string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(normalized) {
		set[w] = true
	}
	return set
}

// FindDuplicate returns the index within window of a turn that duplicates the
// candidate, or -1. A duplicate must share the normalized speaker and meet the
// similarity threshold; missing speaker or text compare as empty strings.
func FindDuplicate(candidate transcript.Turn, window []transcript.Turn, threshold float64) int {
	speaker := normalizeSpeaker(candidate.Speaker)

	for i, existing := range window {
		if normalizeSpeaker(existing.Speaker) != speaker {
			continue
		}
		if Similarity(candidate.Text, existing.Text) >= threshold {
			return i
		}
	}

	return -1
}
