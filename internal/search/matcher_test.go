package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/bestiary-search/internal/domain"
)

func TestMatchExact(t *testing.T) {
	keys := []string{"dragon wrangler", "Frost Giant", "a.b notes", "axb notes", "Goblin Market"}

	tests := []struct {
		name         string
		query        string
		hardRegister bool
		want         []int
	}{
		{"case insensitive by default", "Dragon", false, []int{0}},
		{"hard register rejects other case", "Dragon", true, []int{}},
		{"hard register accepts same case", "Frost", true, []int{1}},
		{"any term matches", "giant goblin", false, []int{1, 4}},
		{"partial word", "rang", false, []int{0}},
		{"regex metacharacters are literal", "a.b", false, []int{2}},
		{"no match", "kraken", false, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.query, keys, tt.hardRegister, false)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchFuzzyThreshold(t *testing.T) {
	// PartialRatio("abcde", "abxde") == 80: included.
	// PartialRatio("abcdefghijklmn", "abcdefghijkxyz") == 79: excluded.
	keys := []string{"abxde", "abcdefghijkxyz"}

	require.Equal(t, FuzzyThreshold, PartialRatio("abcde", keys[0]))
	require.Equal(t, FuzzyThreshold-1, PartialRatio("abcdefghijklmn", keys[1]))

	assert.Equal(t, []int{0}, Match("abcde", keys, false, true))
	assert.Equal(t, []int{}, Match("abcdefghijklmn", keys, false, true))
}

func TestMatchFuzzyTypos(t *testing.T) {
	keys := []string{"Ancient Dragon", "Swamp Hag", "Драконы Севера"}

	assert.Equal(t, []int{0}, Match("dargon", keys, false, true))
	assert.Equal(t, []int{2}, Match("драконы", keys, false, true))
	assert.Equal(t, []int{}, Match("dargon", keys, false, false))
}

func TestMatchFuzzyTermPastEndOfKey(t *testing.T) {
	keys := []string{"Big Drag", "Ice Wyr"}

	// "drag" covers 4 of 6 runes of "dragon": 80, included.
	// "wyr" covers 3 of 5 runes of "wyrms": 75, excluded.
	assert.Equal(t, []int{0}, Match("dragon", keys, false, true))
	assert.Equal(t, []int{}, Match("wyrms", keys, false, true))
	assert.Equal(t, []int{0}, Match("wyrms dragon", keys, false, true))
}

func TestMatchEmptyQuery(t *testing.T) {
	assert.Nil(t, Match("", []string{"a"}, false, false))
	assert.Nil(t, Match("  \t", []string{"a"}, false, true))
}

func bestiaries(names ...string) []domain.Bestiary {
	out := make([]domain.Bestiary, len(names))
	for i, n := range names {
		out[i] = domain.Bestiary{ID: int64(i + 1), Name: n, AuthorName: "author"}
	}
	return out
}

func names(items []domain.Bestiary) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].Name
	}
	return out
}

func TestFilterEmptyQueryPassthrough(t *testing.T) {
	records := bestiaries("Owlbear", "Mimic", "Beholder")

	for _, q := range []string{"", "   ", "\t\n"} {
		got := Filter(records, domain.SearchSettings{Search: q, FuzzySearch: true})
		assert.Equal(t, records, got)
	}
}

func TestFilterKeepsDuplicateKeys(t *testing.T) {
	records := bestiaries("Mimic", "Owlbear", "Mimic")

	got := Filter(records, domain.SearchSettings{Search: "mimic"})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestFilterSearchAuthor(t *testing.T) {
	records := []domain.Bestiary{
		{ID: 1, Name: "Fell Beasts", AuthorName: "tolkien"},
		{ID: 2, Name: "Tolkien's Trolls", AuthorName: "someone"},
		{ID: 3, Name: "Krakens", AuthorName: "verne"},
	}

	withoutAuthor := Filter(records, domain.SearchSettings{Search: "tolkien"})
	assert.Equal(t, []string{"Tolkien's Trolls"}, names(withoutAuthor))

	withAuthor := Filter(records, domain.SearchSettings{Search: "tolkien", SearchAuthor: true})
	assert.Equal(t, []string{"Fell Beasts", "Tolkien's Trolls"}, names(withAuthor))
}

func TestFilterCollapsesWhitespace(t *testing.T) {
	records := bestiaries("Owlbear", "Mimic")
	got := Filter(records, domain.SearchSettings{Search: "  owl   \t "})
	assert.Equal(t, []string{"Owlbear"}, names(got))
}

func TestCompositeKey(t *testing.T) {
	b := &domain.Bestiary{Name: "Fell Beasts", AuthorName: "tolkien"}
	assert.Equal(t, "Fell Beasts", CompositeKey(b, false))
	assert.Equal(t, "Fell Beasts tolkien", CompositeKey(b, true))
}
