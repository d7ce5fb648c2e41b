package domain

import "time"

// Bestiary is a published catalog entry as returned by the store, joined
// with the author's display name. Values are read-only snapshots.
type Bestiary struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	AuthorID      int64     `json:"author"`
	AuthorName    string    `json:"username"`
	DateCreation  time.Time `json:"date_creation"`
	LatestUpdate  time.Time `json:"latest_update"`
	IsStar        bool      `json:"is_star"`
	Rang          float64   `json:"rang"`
	CountViews    int64     `json:"count_views"`
	AverageRating float64   `json:"average_rating"`
	Description   string    `json:"description"`
	SrcIcon       string    `json:"src_icon"`
}

// BestiaryResponse is the public projection of a Bestiary.
type BestiaryResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Author        int64     `json:"author"`
	DateCreation  time.Time `json:"date_creation"`
	LatestUpdate  time.Time `json:"latest_update"`
	IsStar        bool      `json:"is_star"`
	AverageRating float64   `json:"average_rating"`
	CountViews    int64     `json:"count_views"`
	SrcIcon       string    `json:"src_icon"`
	Description   string    `json:"description"`
}

// ToResponse converts Bestiary to BestiaryResponse.
func (b *Bestiary) ToResponse() BestiaryResponse {
	return BestiaryResponse{
		ID:            b.ID,
		Name:          b.Name,
		Author:        b.AuthorID,
		DateCreation:  b.DateCreation,
		LatestUpdate:  b.LatestUpdate,
		IsStar:        b.IsStar,
		AverageRating: b.AverageRating,
		CountViews:    b.CountViews,
		SrcIcon:       b.SrcIcon,
		Description:   b.Description,
	}
}

// ToResponses converts a slice preserving order.
func ToResponses(items []Bestiary) []BestiaryResponse {
	out := make([]BestiaryResponse, len(items))
	for i := range items {
		out[i] = items[i].ToResponse()
	}
	return out
}
