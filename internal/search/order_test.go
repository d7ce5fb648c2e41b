package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/bestiary-search/internal/domain"
)

func withViews(pairs ...any) []domain.Bestiary {
	out := make([]domain.Bestiary, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, domain.Bestiary{
			ID:         int64(len(out) + 1),
			Name:       pairs[i].(string),
			CountViews: int64(pairs[i+1].(int)),
		})
	}
	return out
}

func TestOrderShortCircuit(t *testing.T) {
	records := withViews("a", 1, "b", 2, "c", 3)

	got := Order(records, domain.SearchSettings{Shift: 3, SortType: domain.SortByViews})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = Order(records, domain.SearchSettings{Shift: 2, SortType: domain.SortByViews})
	assert.Equal(t, []string{"c", "b", "a"}, names(got))

	assert.Empty(t, Order(nil, domain.SearchSettings{}))
}

func TestOrderDirectionAndStability(t *testing.T) {
	records := withViews("tie-1", 5, "top", 9, "tie-2", 5, "low", 1, "tie-3", 5)

	desc := Order(records, domain.SearchSettings{SortType: domain.SortByViews})
	assert.Equal(t, []string{"top", "tie-1", "tie-2", "tie-3", "low"}, names(desc))

	asc := Order(records, domain.SearchSettings{SortType: domain.SortByViews, Reverse: true})
	assert.Equal(t, []string{"low", "tie-1", "tie-2", "tie-3", "top"}, names(asc))
}

func TestOrderAllTiesKeepInputOrder(t *testing.T) {
	records := withViews("x", 7, "y", 7, "z", 7)

	for _, reverse := range []bool{false, true} {
		got := Order(records, domain.SearchSettings{SortType: domain.SortByViews, Reverse: reverse})
		assert.Equal(t, []string{"x", "y", "z"}, names(got))
	}
}

func TestOrderDoesNotMutateInput(t *testing.T) {
	records := withViews("a", 1, "b", 2, "c", 3)
	snapshot := append([]domain.Bestiary(nil), records...)

	_ = Order(records, domain.SearchSettings{SortType: domain.SortByViews})
	assert.Equal(t, snapshot, records)
}

func TestOrderByName(t *testing.T) {
	records := []domain.Bestiary{
		{Name: "Wyvern", AuthorName: "anna"},
		{Name: "basilisk", AuthorName: "Anna"},
		{Name: "Ghoul", AuthorName: "zed"},
	}

	// Descending is the default; reverse gives alphabetical order.
	got := Order(records, domain.SearchSettings{SortType: domain.SortByName, Reverse: true})
	assert.Equal(t, []string{"basilisk", "Wyvern", "Ghoul"}, names(got))

	got = Order(records, domain.SearchSettings{SortType: domain.SortByName})
	assert.Equal(t, []string{"Ghoul", "Wyvern", "basilisk"}, names(got))
}

func TestOrderByPublication(t *testing.T) {
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []domain.Bestiary{
		{Name: "middle", DateCreation: base.Add(24 * time.Hour), LatestUpdate: base},
		{Name: "oldest", DateCreation: base, LatestUpdate: base.Add(72 * time.Hour)},
		{Name: "newest", DateCreation: base.Add(48 * time.Hour), LatestUpdate: base.Add(time.Hour)},
	}

	got := Order(records, domain.SearchSettings{SortType: domain.SortByPublication})
	assert.Equal(t, []string{"newest", "middle", "oldest"}, names(got))

	got = Order(records, domain.SearchSettings{SortType: domain.SortByLastUpdate})
	assert.Equal(t, []string{"oldest", "newest", "middle"}, names(got))
}

func TestOrderUnknownSortTypeUsesPopularity(t *testing.T) {
	records := []domain.Bestiary{
		{Name: "plain", Rang: 1},
		{Name: "famous", Rang: 1, CountViews: 10_000},
		{Name: "top", Rang: 2},
	}

	got := Order(records, domain.SearchSettings{SortType: "by_magic"})
	assert.Equal(t, []string{"top", "famous", "plain"}, names(got))
}

func TestSearchAndSort(t *testing.T) {
	records := withViews("Red Dragon", 10, "Owlbear", 500, "Dragon Turtle", 99, "Mimic", 1000)

	got := SearchAndSort(records, domain.SearchSettings{
		Search:   "dragon",
		SortType: domain.SortByViews,
	})
	require.Len(t, got, 2)
	assert.Equal(t, []string{"Dragon Turtle", "Red Dragon"}, names(got))

	all := SearchAndSort(records, domain.SearchSettings{SortType: domain.SortByViews})
	assert.Equal(t, []string{"Mimic", "Owlbear", "Dragon Turtle", "Red Dragon"}, names(all))
}
