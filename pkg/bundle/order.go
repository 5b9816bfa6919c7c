package bundle

import (
	"slices"
	"strings"
)

// Order returns a sorted copy of paths. SortByName compares full paths;
// SortByType compares extensions first and falls back to the full path.
func Order(paths []string, key SortKey) []string {
	ordered := slices.Clone(paths)

	switch key {
	case SortByType:
		slices.SortStableFunc(ordered, func(a, b string) int {
			if c := strings.Compare(extensionOf(a), extensionOf(b)); c != 0 {
				return c
			}
			return strings.Compare(a, b)
		})
	default:
		slices.Sort(ordered)
	}
	return ordered
}
