package domain

import (
	"strings"
)

// SortType selects how search results are ranked.
type SortType string

const (
	SortByPopularity  SortType = "by_popularity"
	SortByViews       SortType = "by_views"
	SortByRating      SortType = "by_rating"
	SortByName        SortType = "by_name"
	SortByPublication SortType = "by_publication"
	SortByLastUpdate  SortType = "by_last_update"
	SortByLikeness    SortType = "by_likeness"
)

// DefaultSortType is used whenever a sort type is empty or unknown.
const DefaultSortType = SortByPopularity

var sortTypes = []SortType{
	SortByPopularity,
	SortByViews,
	SortByRating,
	SortByName,
	SortByPublication,
	SortByLastUpdate,
	SortByLikeness,
}

// SortTypes returns every supported sort type.
func SortTypes() []SortType {
	out := make([]SortType, len(sortTypes))
	copy(out, sortTypes)
	return out
}

// ParseSortType maps a wire value onto a SortType. Unknown values fall
// back to DefaultSortType.
func ParseSortType(s string) SortType {
	t := SortType(s)
	if t.Valid() {
		return t
	}
	return DefaultSortType
}

// Valid reports whether t is one of the supported sort types.
func (t SortType) Valid() bool {
	switch t {
	case SortByPopularity, SortByViews, SortByRating, SortByName,
		SortByPublication, SortByLastUpdate, SortByLikeness:
		return true
	}
	return false
}

func (t SortType) String() string {
	return string(t)
}

// SearchSettings captures one search request.
type SearchSettings struct {
	Shift         int
	AmountPerPage int
	Search        string
	SortType      SortType
	SearchAuthor  bool
	HardRegister  bool
	FuzzySearch   bool
	Reverse       bool
}

// Normalize collapses whitespace runs in the query and resolves the sort
// type. Key and the matcher both rely on normalized settings.
func (s *SearchSettings) Normalize() {
	s.Search = CollapseSpaces(s.Search)
	s.SortType = ParseSortType(string(s.SortType))
}

// Key is the canonical serialization of the settings and doubles as the
// cache key. Shift and AmountPerPage are excluded so that every page of the
// same query shares one cached result list.
func (s SearchSettings) Key() string {
	var b strings.Builder
	b.Grow(len(s.Search) + len(s.SortType) + 9)
	b.WriteString(s.Search)
	b.WriteByte('_')
	b.WriteString(string(s.SortType))
	for _, flag := range []bool{s.SearchAuthor, s.HardRegister, s.FuzzySearch, s.Reverse} {
		b.WriteByte('_')
		b.WriteByte(bit(flag))
	}
	return b.String()
}

// CollapseSpaces trims s and replaces every whitespace run with one space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func bit(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

// SearchRequest is the query string of the global search endpoint.
type SearchRequest struct {
	Shift         *int   `form:"shift" binding:"required,min=0"`
	AmountPerPage *int   `form:"amount_per_page" binding:"required,min=1"`
	Search        string `form:"search"`
	SortType      string `form:"sort_type,default=by_likeness"`
	SearchAuthor  bool   `form:"search_author,default=false"`
	HardRegister  bool   `form:"hard_register,default=false"`
	FuzzySearch   bool   `form:"fuzzy_search,default=true"`
	Reverse       bool   `form:"reverse,default=false"`
}

// ToSettings converts a bound request into SearchSettings.
func (r *SearchRequest) ToSettings() SearchSettings {
	s := SearchSettings{
		Search:       r.Search,
		SortType:     SortType(r.SortType),
		SearchAuthor: r.SearchAuthor,
		HardRegister: r.HardRegister,
		FuzzySearch:  r.FuzzySearch,
		Reverse:      r.Reverse,
	}
	if r.Shift != nil {
		s.Shift = *r.Shift
	}
	if r.AmountPerPage != nil {
		s.AmountPerPage = *r.AmountPerPage
	}
	return s
}
