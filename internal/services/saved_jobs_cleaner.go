package services

import (
	"context"
	"time"

	"github.com/maxaizer/skillmatch/internal/logger"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type savedJobCleanupRepository interface {
	RemoveSavedBefore(ctx context.Context, savedBefore time.Time) (int64, error)
}

// SavedJobsCleaner drops saved jobs once a day when they were saved longer ago than the retention.
// A zero retention disables it.
type SavedJobsCleaner struct {
	jobs            savedJobCleanupRepository
	cron            *cron.Cron
	retentionInDays int
}

func NewSavedJobsCleaner(jobs savedJobCleanupRepository, retentionInDays int) (*SavedJobsCleaner, error) {

	if retentionInDays < 0 {
		return nil, errors.New("retention in days must not be negative")
	}

	sc := &SavedJobsCleaner{
		jobs:            jobs,
		cron:            cron.New(),
		retentionInDays: retentionInDays,
	}

	if !sc.Enabled() {
		return sc, nil
	}

	if _, err := sc.cron.AddFunc("0 0 * * *", sc.cleanExpiredJobs); err != nil {
		return nil, err
	}

	return sc, nil
}

func (sc *SavedJobsCleaner) Enabled() bool {
	return sc.retentionInDays > 0
}

func (sc *SavedJobsCleaner) Start() {
	if !sc.Enabled() {
		log.Info("saved jobs cleaner is disabled, saved jobs are kept until users remove them")
		return
	}
	sc.cron.Start()
	log.Infof("saved jobs cleaner started, retention in days: %d", sc.retentionInDays)
}

func (sc *SavedJobsCleaner) Stop() {
	<-sc.cron.Stop().Done()
}

func (sc *SavedJobsCleaner) cleanExpiredJobs() {
	if !sc.Enabled() {
		return
	}
	savedBefore := time.Now().AddDate(0, 0, -sc.retentionInDays)
	rowsAffected, err := sc.jobs.RemoveSavedBefore(context.Background(), savedBefore)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to clean expired saved jobs: %v", err)
	} else {
		log.Infof("expired saved jobs were cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}
