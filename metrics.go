package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// This file defines the Prometheus metrics exposed by the application.

// httpRequestsTotal tracks HTTP requests partitioned by path, method and
// resulting status code.
var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "eventscout_http_requests_total",
	Help: "Total number of HTTP requests by path, method and code.",
}, []string{"path", "method", "code"})

// upstreamAttemptsTotal counts executed upstream query attempts by attempt
// kind, locale and outcome (success, empty, error).
var upstreamAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "eventscout_upstream_attempts_total",
	Help: "Total number of upstream query attempts by kind, locale and outcome.",
}, []string{"kind", "locale", "outcome"})

// upstreamAttemptDuration observes the wall time of upstream calls per
// attempt kind.
var upstreamAttemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "eventscout_upstream_attempt_duration_seconds",
	Help:    "Duration of upstream query attempts in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"kind"})

// cacheHitsTotal and cacheMissesTotal track the Redis result cache by entry
// type (events, suggest).
var cacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "eventscout_cache_hits_total",
	Help: "Total number of cache hits by entry type.",
}, []string{"type"})

var cacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "eventscout_cache_misses_total",
	Help: "Total number of cache misses by entry type.",
}, []string{"type"})
