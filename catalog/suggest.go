package catalog

import "github.com/agnivade/levenshtein"

// suggestLimit is the widest edit distance still offered as a hint.
const suggestLimit = 2

// suggest returns the known name closest to input within suggestLimit
// edits, or "" when nothing is close enough. Candidate order breaks ties.
func suggest(input string, candidates []string) string {
	best := ""
	bestDist := suggestLimit + 1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(input, cand)
		if dist < bestDist {
			best = cand
			bestDist = dist
		}
	}

	return best
}

// unknownSlotError builds the located unknown-slot error, with a
// did-you-mean hint when one is available.
func unknownSlotError(line int, name string, candidates []string) error {
	if hint := suggest(name, candidates); hint != "" {
		return parseErrorf(line, ErrUnknownSlot, "%q (did you mean %q?)", name, hint)
	}

	return parseErrorf(line, ErrUnknownSlot, "%q", name)
}
