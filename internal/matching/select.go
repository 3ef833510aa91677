package matching

// initialSelectionLimit caps how many bullets the initial selection takes
// from the ranked list.
const initialSelectionLimit = 10

// PickInitialSelections derives the starting selection set from ranked
// matches: the first ten positive-score bullets, or, when nothing scored
// above zero, the first ten of the full ranked list. The returned set is
// built in the scorer's deterministic order, so repeated calls on identical
// input produce an identical set.
func PickInitialSelections(matches []BulletMatch) map[string]bool {
	positive := make([]BulletMatch, 0, len(matches))
	for _, match := range matches {
		if match.Score > 0 {
			positive = append(positive, match)
		}
	}

	source := positive
	if len(source) == 0 {
		source = matches
	}
	if len(source) > initialSelectionLimit {
		source = source[:initialSelectionLimit]
	}

	selected := make(map[string]bool, len(source))
	for _, match := range source {
		selected[match.BulletID] = true
	}
	return selected
}
