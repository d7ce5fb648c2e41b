package search

import (
	"slices"

	"github.com/weiawesome/bestiary-search/internal/domain"
)

type ranked struct {
	key  Key
	item domain.Bestiary
}

// Order sorts records by the rank function of s.SortType, highest first,
// or lowest first when s.Reverse is set. The sort is stable in both
// directions: records with equal rank keep their input order.
//
// When there are no more records than s.Shift the caller could not see any
// of them, so Order returns an empty slice without ranking.
func Order(records []domain.Bestiary, s domain.SearchSettings) []domain.Bestiary {
	if len(records) <= s.Shift {
		return []domain.Bestiary{}
	}

	rank := Ranker(s.SortType)
	items := make([]ranked, len(records))
	for i := range records {
		items[i] = ranked{key: rank(&records[i], &s), item: records[i]}
	}

	slices.SortStableFunc(items, func(a, b ranked) int {
		if s.Reverse {
			return a.key.Compare(b.key)
		}
		return b.key.Compare(a.key)
	})

	out := make([]domain.Bestiary, len(items))
	for i := range items {
		out[i] = items[i].item
	}
	return out
}

// SearchAndSort filters records by the query in s and orders the matches.
// The result is the full, unpaginated list for s.Key().
func SearchAndSort(records []domain.Bestiary, s domain.SearchSettings) []domain.Bestiary {
	return Order(Filter(records, s), s)
}
