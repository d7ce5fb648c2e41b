package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	sourceCache = "cache"
	sourceStore = "store"
)

var searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "bestiary_search",
	Subsystem: "service",
	Name:      "search_duration_seconds",
	Help:      "Time to produce the full ordered result list, by sort type and source.",
	Buckets:   prometheus.DefBuckets,
}, []string{"sort_type", "source"})
