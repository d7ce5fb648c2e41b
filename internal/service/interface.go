package service

import (
	"context"
	"errors"

	"github.com/weiawesome/bestiary-search/internal/domain"
)

var (
	ErrBestiaryNotFound = errors.New("bestiary not found")
)

// SearchService defines the interface for bestiary search business logic.
type SearchService interface {
	// Search returns one page of the ordered results for settings.
	Search(ctx context.Context, settings domain.SearchSettings) ([]domain.Bestiary, error)
	GetBestiary(ctx context.Context, id int64) (*domain.Bestiary, error)
	// Invalidate drops the cached record for id, if any, and every cached
	// search list.
	Invalidate(ctx context.Context, id int64) error
	SortTypes() []domain.SortType
}
