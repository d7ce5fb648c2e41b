package search

import (
	"cmp"
	"math"
	"strings"
	"time"

	"github.com/weiawesome/bestiary-search/internal/domain"
)

// Key is a rank value. A rank function fills only the fields it needs;
// the rest stay zero and compare equal, so keys produced by the same
// function are always comparable.
type Key struct {
	Num  float64
	Text string
	Time time.Time
}

// Compare orders keys by Num, then Text, then Time.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.Num, o.Num); c != 0 {
		return c
	}
	if c := strings.Compare(k.Text, o.Text); c != 0 {
		return c
	}
	return k.Time.Compare(o.Time)
}

// RankFunc computes the rank of one record under the given settings.
type RankFunc func(b *domain.Bestiary, s *domain.SearchSettings) Key

// Ranker returns the rank function for t. Unknown types rank by popularity.
func Ranker(t domain.SortType) RankFunc {
	switch t {
	case domain.SortByPopularity:
		return byPopularity
	case domain.SortByLikeness:
		return byLikeness
	case domain.SortByViews:
		return byViews
	case domain.SortByRating:
		return byRating
	case domain.SortByName:
		return byName
	case domain.SortByPublication:
		return byPublication
	case domain.SortByLastUpdate:
		return byLastUpdate
	default:
		return byPopularity
	}
}

// Damp maps a view count onto [0, 1): sqrt(v) / (sqrt(v) + 20). It grows
// monotonically and saturates, so views nudge a score without dominating
// it. Negative counts are treated as zero.
func Damp(views int64) float64 {
	if views <= 0 {
		return 0
	}
	root := math.Sqrt(float64(views))
	return root / (root + 20)
}

// Popularity is the base rank plus the damped view count.
func Popularity(b *domain.Bestiary) float64 {
	return b.Rang + Damp(b.CountViews)
}

func byPopularity(b *domain.Bestiary, _ *domain.SearchSettings) Key {
	return Key{Num: Popularity(b)}
}

// byLikeness is dominated by name similarity; popularity only breaks
// near-ties. The query is compared in the same collapsed form Filter
// matches with.
func byLikeness(b *domain.Bestiary, s *domain.SearchSettings) Key {
	return Key{Num: float64(Ratio(b.Name, domain.CollapseSpaces(s.Search))) + Popularity(b)/100}
}

func byViews(b *domain.Bestiary, _ *domain.SearchSettings) Key {
	return Key{Num: float64(b.CountViews)}
}

func byRating(b *domain.Bestiary, _ *domain.SearchSettings) Key {
	return Key{Num: b.AverageRating + Damp(b.CountViews)/10}
}

func byName(b *domain.Bestiary, _ *domain.SearchSettings) Key {
	return Key{Text: strings.ToLower(b.AuthorName) + " " + strings.ToLower(b.Name)}
}

func byPublication(b *domain.Bestiary, _ *domain.SearchSettings) Key {
	return Key{Time: b.DateCreation}
}

func byLastUpdate(b *domain.Bestiary, _ *domain.SearchSettings) Key {
	return Key{Time: b.LatestUpdate}
}
