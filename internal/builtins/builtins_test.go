package builtins

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSort(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "mixed case and private",
			input: []string{"banana", "apple", "Avocado", "_secret"},
			want:  []string{"Avocado", "apple", "banana"},
		},
		{
			name:  "duplicates removed",
			input: []string{"len", "cap", "len", "cap"},
			want:  []string{"cap", "len"},
		},
		{
			name:  "empty names dropped",
			input: []string{"", "new", ""},
			want:  []string{"new"},
		},
		{
			name:  "only private",
			input: []string{"_", "__init__", "_x"},
			want:  []string{},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSort(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterSort_DoesNotMutateInput(t *testing.T) {
	input := []string{"zeta", "_hidden", "alpha"}
	_ = FilterSort(input)
	assert.Equal(t, []string{"zeta", "_hidden", "alpha"}, input)
}

func TestFilterSort_Idempotent(t *testing.T) {
	inputs := [][]string{
		{"banana", "apple", "Avocado", "_secret"},
		{"b", "a", "b", "_", "C", "c"},
		Universe(),
		{},
	}
	for _, input := range inputs {
		once := FilterSort(input)
		assert.Equal(t, once, FilterSort(once))
	}
}

func TestUniverse(t *testing.T) {
	names := List(Universe)
	require.NotEmpty(t, names)
	assert.True(t, slices.IsSorted(names))

	for _, common := range []string{"append", "len", "make", "new", "print", "string", "int", "error", "nil", "true"} {
		assert.Contains(t, names, common)
	}
	for _, name := range names {
		assert.False(t, strings.HasPrefix(name, "_"), "private name %q listed", name)
	}
}

func TestList_NilSourceIsUniverse(t *testing.T) {
	assert.Equal(t, List(Universe), List(nil))
}

func TestCount(t *testing.T) {
	assert.Equal(t, len(List(Universe)), Count(Universe))
	assert.Equal(t, 3, Count(Static("len", "list", "print", "_private")))
	assert.Equal(t, 0, Count(Static()))
}

func TestStatic_ReturnsCopy(t *testing.T) {
	src := Static("b", "a")
	first := src()
	first[0] = "mutated"
	assert.Equal(t, []string{"b", "a"}, src())
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"append", "A"},
		{"Avocado", "A"},
		{"x", "X"},
		{"9lives", "9"},
		{"ärger", "Ä"},
		{"ßeta", "SS"},
		{"\xffbad", "\xff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.name))
		})
	}
}

func TestUniverse_ASCIIKeys(t *testing.T) {
	for _, name := range List(Universe) {
		key := Key(name)
		require.Len(t, key, 1, name)
		assert.Less(t, key[0], byte(utf8.RuneSelf), name)
	}
}
