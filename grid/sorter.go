package grid

import (
	"sort"
	"strings"

	"twingrid/structs"
)

// SortRooms returns the room keys in display order: category rank,
// then intra-category rank, then case-insensitive alphabetical. With
// no configured order at all the sort is purely alphabetical.
func SortRooms(rooms map[string]*structs.Room, cls *Classifier) []string {
	keys := make([]string, 0, len(rooms))
	for k := range rooms {
		keys = append(keys, k)
	}

	if !cls.HasOrder() {
		sort.Slice(keys, func(i, j int) bool {
			return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
		})
		return keys
	}

	sort.SliceStable(keys, func(i, j int) bool {
		a, b := cls.Rank(keys[i]), cls.Rank(keys[j])
		if a.CategoryOrder != b.CategoryOrder {
			return a.CategoryOrder < b.CategoryOrder
		}
		if a.SiteOrder != b.SiteOrder {
			return a.SiteOrder < b.SiteOrder
		}
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})
	return keys
}
