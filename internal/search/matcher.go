package search

import (
	"strings"

	"github.com/weiawesome/bestiary-search/internal/domain"
)

// FuzzyThreshold is the minimum PartialRatio for a fuzzy term match.
const FuzzyThreshold = 80

// Match returns, in input order, the indices of keys matched by at least
// one whitespace-separated term of query.
//
// Unless hardRegister is set both sides are lower-cased first. In exact
// mode a term matches when it is a literal substring of the key; in fuzzy
// mode when PartialRatio(term, key) reaches FuzzyThreshold. A query with no
// terms matches nothing.
func Match(query string, keys []string, hardRegister, fuzzy bool) []int {
	if !hardRegister {
		query = strings.ToLower(query)
	}
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return nil
	}

	matches := make([]int, 0, len(keys))
	for i, key := range keys {
		if !hardRegister {
			key = strings.ToLower(key)
		}
		if matchAny(terms, key, fuzzy) {
			matches = append(matches, i)
		}
	}
	return matches
}

func matchAny(terms []string, key string, fuzzy bool) bool {
	for _, term := range terms {
		if fuzzy {
			if PartialRatio(term, key) >= FuzzyThreshold {
				return true
			}
		} else if strings.Contains(key, term) {
			return true
		}
	}
	return false
}

// CompositeKey is the text a record is matched against: its name, followed
// by the author's display name when withAuthor is set.
func CompositeKey(b *domain.Bestiary, withAuthor bool) string {
	if withAuthor {
		return b.Name + " " + b.AuthorName
	}
	return b.Name
}

// Filter keeps the records matched by s.Search, preserving their order.
// A blank query disables filtering and returns records unchanged.
func Filter(records []domain.Bestiary, s domain.SearchSettings) []domain.Bestiary {
	query := domain.CollapseSpaces(s.Search)
	if query == "" {
		return records
	}

	keys := make([]string, len(records))
	for i := range records {
		keys[i] = CompositeKey(&records[i], s.SearchAuthor)
	}

	idx := Match(query, keys, s.HardRegister, s.FuzzySearch)
	out := make([]domain.Bestiary, len(idx))
	for j, i := range idx {
		out[j] = records[i]
	}
	return out
}
