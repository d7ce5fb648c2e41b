package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/weiawesome/bestiary-search/internal/cache"
	"github.com/weiawesome/bestiary-search/internal/domain"
	"github.com/weiawesome/bestiary-search/internal/repository"
	"github.com/weiawesome/bestiary-search/internal/search"
	"github.com/weiawesome/bestiary-search/pkg/log"
)

type searchServiceImpl struct {
	repo     repository.BestiaryRepository
	cache    cache.SearchCache
	cacheTTL time.Duration
	sf       singleflight.Group
}

// NewSearchService creates a new search service.
func NewSearchService(repo repository.BestiaryRepository, searchCache cache.SearchCache, cacheTTL time.Duration) SearchService {
	return &searchServiceImpl{
		repo:     repo,
		cache:    searchCache,
		cacheTTL: cacheTTL,
	}
}

func (s *searchServiceImpl) Search(ctx context.Context, settings domain.SearchSettings) ([]domain.Bestiary, error) {
	settings.Normalize()

	cacheKey := s.cache.BuildListKey(settings.Key())

	// The shift takes part in the flight key: an ordered list computed for
	// a shift past the end is empty and must not be shared with other pages.
	flightKey := cacheKey + "#" + strconv.Itoa(settings.Shift)

	// Followers share the leader's result, so the flight must not be
	// aborted when only the leader's request goes away.
	result, err, _ := s.sf.Do(flightKey, func() (interface{}, error) {
		return s.orderedList(context.WithoutCancel(ctx), cacheKey, settings)
	})
	if err != nil {
		return nil, err
	}

	return search.Page(result.([]domain.Bestiary), settings.Shift, settings.AmountPerPage), nil
}

// orderedList returns the full ordered result list for settings, from the
// cache when possible.
func (s *searchServiceImpl) orderedList(ctx context.Context, cacheKey string, settings domain.SearchSettings) ([]domain.Bestiary, error) {
	l := log.Ctx(ctx)
	start := time.Now()

	if entry, ok := s.lookup(ctx, cacheKey, cache.KindList); ok {
		searchDuration.WithLabelValues(settings.SortType.String(), sourceCache).Observe(time.Since(start).Seconds())
		l.Debug().Str(log.FieldCacheKey, cacheKey).Int(log.FieldResults, len(entry.Records)).Msg("search served from cache")
		return entry.Records, nil
	}

	records, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bestiaries: %w", err)
	}

	ordered := search.SearchAndSort(records, settings)
	searchDuration.WithLabelValues(settings.SortType.String(), sourceStore).Observe(time.Since(start).Seconds())

	// An empty list is either no match or the shift short-circuit; only the
	// first is a valid full result, and the two are indistinguishable here.
	if len(ordered) > 0 {
		if err := s.cache.Set(ctx, cacheKey, cache.NewListEntry(ordered), s.cacheTTL); err != nil {
			l.Warn().Err(err).Str(log.FieldCacheKey, cacheKey).Msg("cache set error")
		}
	}

	l.Debug().
		Str(log.FieldCacheKey, cacheKey).
		Str(log.FieldSortType, settings.SortType.String()).
		Int(log.FieldResults, len(ordered)).
		Msg("search computed")
	return ordered, nil
}

func (s *searchServiceImpl) GetBestiary(ctx context.Context, id int64) (*domain.Bestiary, error) {
	cacheKey := s.cache.BuildRecordKey(id)

	result, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		ctx := context.WithoutCancel(ctx)

		if entry, ok := s.lookup(ctx, cacheKey, cache.KindRecord); ok {
			return entry.Record, nil
		}

		b, err := s.repo.GetPublished(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBestiaryNotFound) {
				return nil, ErrBestiaryNotFound
			}
			return nil, fmt.Errorf("failed to get bestiary: %w", err)
		}

		if err := s.cache.Set(ctx, cacheKey, cache.NewRecordEntry(*b), s.cacheTTL); err != nil {
			l := log.Ctx(ctx)
			l.Warn().Err(err).Str(log.FieldCacheKey, cacheKey).Msg("cache set error")
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}

	b := *result.(*domain.Bestiary)
	return &b, nil
}

// lookup reads key from the cache. Every failure is reported as a miss;
// corrupt or mis-shaped entries are also removed.
func (s *searchServiceImpl) lookup(ctx context.Context, key string, kind cache.Kind) (*cache.Entry, bool) {
	l := log.Ctx(ctx)

	entry, err := s.cache.Get(ctx, key)
	switch {
	case err == nil && entry.Kind == kind:
		return entry, true
	case err == nil:
		err = fmt.Errorf("%w: expected %s entry, got %s", cache.ErrCorrupt, kind, entry.Kind)
	case errors.Is(err, cache.ErrCacheMiss):
		return nil, false
	}

	l.Warn().Err(err).Str(log.FieldCacheKey, key).Msg("cache get error")
	if errors.Is(err, cache.ErrCorrupt) {
		if err := s.cache.Delete(ctx, key); err != nil {
			l.Warn().Err(err).Str(log.FieldCacheKey, key).Msg("cache delete error")
		}
	}
	return nil, false
}

func (s *searchServiceImpl) Invalidate(ctx context.Context, id int64) error {
	l := log.Ctx(ctx)

	if id > 0 {
		if err := s.cache.Delete(ctx, s.cache.BuildRecordKey(id)); err != nil {
			return fmt.Errorf("failed to invalidate bestiary %d: %w", id, err)
		}
	}

	n, err := s.cache.DeleteLists(ctx)
	if err != nil {
		return fmt.Errorf("failed to invalidate search lists: %w", err)
	}

	l.Info().Int64(log.FieldBestiaryID, id).Int("lists", n).Msg("search cache invalidated")
	return nil
}

func (s *searchServiceImpl) SortTypes() []domain.SortType {
	return domain.SortTypes()
}
