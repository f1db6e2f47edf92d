package query

// AllVisibleSelected reports whether every visible ID is in the selection.
// An empty visible set is never fully selected.
func AllVisibleSelected(selected map[string]bool, visibleIDs []string) bool {
	if len(visibleIDs) == 0 {
		return false
	}
	for _, id := range visibleIDs {
		if !selected[id] {
			return false
		}
	}
	return true
}

// ToggleSelectAll flips the select-all state over the visible record set.
// When every visible ID is already selected, exactly the visible IDs are
// removed; otherwise all visible IDs are added. Selections outside the
// current view are preserved either way.
func ToggleSelectAll(selected map[string]bool, visibleIDs []string) {
	if AllVisibleSelected(selected, visibleIDs) {
		for _, id := range visibleIDs {
			delete(selected, id)
		}
		return
	}
	for _, id := range visibleIDs {
		selected[id] = true
	}
}
