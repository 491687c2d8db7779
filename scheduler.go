package main

import (
	"context"
	"time"
)

// The warmer keeps the Redis cache hot for the cities the marketing pages
// link to directly, so the first visitor after a TTL expiry does not eat the
// full upstream attempt chain.

type Scheduler struct {
	cfg      *apiConfig
	warmChan <-chan time.Time
	stop     chan struct{}
	ticker   *time.Ticker
	warmJobs func()
}

func NewScheduler(cfg *apiConfig, warmInterval time.Duration) *Scheduler {
	ticker := time.NewTicker(warmInterval)
	s := &Scheduler{
		cfg:      cfg,
		warmChan: ticker.C,
		stop:     make(chan struct{}),
		ticker:   ticker,
	}
	s.warmJobs = s.runWarmJobs
	return s
}

func (s *Scheduler) Start() {
	go func() {
		for {
			select {
			case <-s.warmChan:
				s.cfg.logger.Debug("scheduler running cache warm jobs")
				s.warmJobs()
			case <-s.stop:
				s.cfg.logger.Debug("scheduler stopping")
				s.ticker.Stop()
				return
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	close(s.stop)
}

// runWarmJobs refreshes the cached default event listing for each configured
// warm city, one city at a time. The cities churn through the same pipeline
// as live requests, so a warm run also repopulates the cache entries those
// requests will hit.
func (s *Scheduler) runWarmJobs() {
	ctx := context.Background()
	for _, city := range s.cfg.warmCities {
		criteria := FilterCriteria{City: city, Sort: "nearest", Locale: "en"}
		q := s.cfg.resolver.resolveQuery(city)

		attempts := s.cfg.planAttempts(q, criteria)
		events, _ := s.cfg.executeAttempts(ctx, attempts, criteria)
		if len(events) == 0 {
			s.cfg.logger.Warn("cache warm yielded no events", "city", city)
			continue
		}

		cacheKey := eventsCacheKey(q, criteria)
		if err := s.cfg.cache.Set(ctx, cacheKey, events, eventsCacheTTL); err != nil {
			s.cfg.logger.Warn("cache warm failed to store events", "city", city, "error", err)
			continue
		}
		s.cfg.logger.Debug("cache warmed", "city", city, "events", len(events))
	}
}
