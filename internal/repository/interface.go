package repository

import (
	"context"
	"errors"

	"github.com/weiawesome/bestiary-search/internal/domain"
)

var (
	ErrBestiaryNotFound = errors.New("bestiary not found")
)

// BestiaryRepository reads published, non-deleted bestiaries joined with
// their author's username.
type BestiaryRepository interface {
	// ListPublished returns every visible bestiary in ascending id order.
	ListPublished(ctx context.Context) ([]domain.Bestiary, error)
	GetPublished(ctx context.Context, id int64) (*domain.Bestiary, error)
}
