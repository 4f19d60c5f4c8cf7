package section

// NextOrder returns the display order a freshly created or duplicated section
// gets: one past the current maximum, or 0 for an empty page.
func NextOrder(list []*Section) int {
	if len(list) == 0 {
		return 0
	}
	max := list[0].DisplayOrder
	for _, s := range list[1:] {
		if s.DisplayOrder > max {
			max = s.DisplayOrder
		}
	}
	return max + 1
}

// Move swaps the section at index with its neighbor at index+direction and
// then renumbers every section's display order to its slice index, so order
// is dense and contiguous after any move. Out-of-range targets are a no-op.
// Reports whether the list changed.
func Move(list []*Section, index, direction int) bool {
	target := index + direction
	if index < 0 || index >= len(list) || target < 0 || target >= len(list) {
		return false
	}
	list[index], list[target] = list[target], list[index]
	Renumber(list)
	return true
}

// Renumber rewrites each section's display order to its position in the list.
func Renumber(list []*Section) {
	for i, s := range list {
		s.DisplayOrder = i
	}
}
