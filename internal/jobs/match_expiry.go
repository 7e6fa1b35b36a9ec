// Package jobs holds the background schedules that run alongside the HTTP
// server.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/segunqa2/next-peptok-sub000/internal/logger"
)

type staleMatchExpirer interface {
	ExpireStaleMatches(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Scheduler runs the recurring maintenance jobs.
type Scheduler struct {
	cron        *cron.Cron
	matching    staleMatchExpirer
	matchExpiry time.Duration
	log         *zap.Logger
}

func NewScheduler(matching staleMatchExpirer, matchExpiryHours int) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		matching:    matching,
		matchExpiry: time.Duration(matchExpiryHours) * time.Hour,
		log:         logger.Get(),
	}
}

// Start registers the jobs and starts the cron loop in its own goroutine.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.expireStaleMatches); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("background scheduler started",
		zap.Duration("match_expiry", s.matchExpiry),
	)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) expireStaleMatches() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	expired, err := s.matching.ExpireStaleMatches(ctx, s.matchExpiry)
	if err != nil {
		s.log.Error("match expiry job failed", zap.Error(err))
		return
	}
	if expired > 0 {
		s.log.Info("match expiry job complete", zap.Int64("expired", expired))
	}
}
