package cache

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bestiary_search",
	Subsystem: "cache",
	Name:      "lookups_total",
	Help:      "Cache lookups by backend and result.",
}, []string{"backend", "result"})

func observeLookup(backend string, err error) {
	cacheLookups.WithLabelValues(backend, lookupResult(err)).Inc()
}

func lookupResult(err error) string {
	switch {
	case err == nil:
		return "hit"
	case errors.Is(err, ErrCacheMiss):
		return "miss"
	case errors.Is(err, ErrCorrupt):
		return "corrupt"
	default:
		return "error"
	}
}
