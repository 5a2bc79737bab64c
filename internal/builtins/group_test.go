package builtins

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupNames_Scenario(t *testing.T) {
	names := FilterSort([]string{"banana", "apple", "Avocado", "_secret"})
	grouped := GroupNames(names)

	assert.Equal(t, Grouped{
		{Key: "A", Names: []string{"Avocado", "apple"}},
		{Key: "B", Names: []string{"banana"}},
	}, grouped)
	assert.Equal(t, map[string][]string{
		"A": {"Avocado", "apple"},
		"B": {"banana"},
	}, grouped.Map())
}

func TestGroupNames_Empty(t *testing.T) {
	grouped := GroupNames(nil)
	assert.Empty(t, grouped)
	assert.Empty(t, grouped.Map())
	assert.Equal(t, 0, grouped.Total())
}

func TestGroupNames_KeysAscendingWhenInputOrderDiffers(t *testing.T) {
	// "Zed" sorts before "apple" by byte order, but its key comes last.
	grouped := GroupNames(FilterSort([]string{"apple", "Zed", "yak", "Bee"}))
	assert.Equal(t, []string{"A", "B", "Y", "Z"}, grouped.Keys())
}

func TestGroupNames_Properties(t *testing.T) {
	inputs := [][]string{
		Universe(),
		{"banana", "apple", "Avocado", "_secret"},
		{"b", "B", "a", "A", "1x", "_y", "ärger", "zz"},
		{"one"},
	}

	for _, input := range inputs {
		names := FilterSort(input)
		grouped := GroupNames(names)

		// Completeness: no loss, duplication or invention.
		var all []string
		for _, grp := range grouped {
			all = append(all, grp.Names...)
		}
		slices.Sort(all)
		assert.Equal(t, names, all)
		assert.Equal(t, len(names), grouped.Total())

		// Keys are strictly ascending.
		keys := grouped.Keys()
		for i := 1; i < len(keys); i++ {
			assert.Less(t, keys[i-1], keys[i])
		}

		// Every name sits under its own key, in input order.
		for _, grp := range grouped {
			require.NotEmpty(t, grp.Names)
			assert.True(t, slices.IsSorted(grp.Names))
			for _, name := range grp.Names {
				assert.Equal(t, grp.Key, Key(name))
			}
		}
	}
}

func TestGrouped_MapIsCopy(t *testing.T) {
	grouped := GroupNames([]string{"len"})
	m := grouped.Map()
	m["L"][0] = "changed"
	assert.Equal(t, "len", grouped[0].Names[0])
}
