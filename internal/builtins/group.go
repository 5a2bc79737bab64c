package builtins

import (
	"cmp"
	"slices"
)

// Group is one bucket of names sharing the same Key.
type Group struct {
	Key   string   `json:"key"`
	Names []string `json:"names"`
}

// Grouped is the ordered set of buckets produced by GroupNames. Keys are
// strictly ascending and each bucket keeps the order of its input.
type Grouped []Group

// GroupNames buckets names by Key. Names should already be filtered and
// sorted; bucket order follows the input order.
func GroupNames(names []string) Grouped {
	index := make(map[string]int)
	grouped := Grouped{}
	for _, name := range names {
		if name == "" {
			continue
		}
		key := Key(name)
		i, ok := index[key]
		if !ok {
			i = len(grouped)
			index[key] = i
			grouped = append(grouped, Group{Key: key})
		}
		grouped[i].Names = append(grouped[i].Names, name)
	}
	slices.SortStableFunc(grouped, func(a, b Group) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return grouped
}

// Keys returns the group keys in order.
func (g Grouped) Keys() []string {
	keys := make([]string, len(g))
	for i, grp := range g {
		keys[i] = grp.Key
	}
	return keys
}

// Map returns the key to names view of g.
func (g Grouped) Map() map[string][]string {
	m := make(map[string][]string, len(g))
	for _, grp := range g {
		m[grp.Key] = slices.Clone(grp.Names)
	}
	return m
}

// Total returns the number of names across all buckets.
func (g Grouped) Total() int {
	n := 0
	for _, grp := range g {
		n += len(grp.Names)
	}
	return n
}
