// Package scheduler runs the periodic anomaly jobs that do not hang off the
// payment event stream.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/sirupsen/logrus"

	"github.com/kakaon/fraud-service/internal/models"
)

const cancelRateLockKey = "fraud:lock:cancel-rate"

// CancelStats is the aggregate query behind the cancel-rate job.
type CancelStats interface {
	GetWeeklyCancelStats(ctx context.Context, now time.Time) ([]models.CancelRateAnomaly, error)
}

// AlertPublisher accepts candidate alerts for materialization.
type AlertPublisher interface {
	Publish(event models.AlertEvent)
}

// CancelRateJob compares each store's cancel rate over the last hour with
// the same hour one week earlier and raises an alert when the increase
// crosses the configured threshold in percentage points.
//
// The redis lock keeps the job single-runner across replicas; a replica
// that cannot obtain the lock skips the tick.
type CancelRateJob struct {
	Stats       CancelStats
	Publisher   AlertPublisher
	Locker      *redislock.Client
	Interval    time.Duration
	ThresholdPP float64

	now func() time.Time
}

func NewCancelRateJob(stats CancelStats, publisher AlertPublisher, locker *redislock.Client, interval time.Duration, thresholdPP float64) *CancelRateJob {
	return &CancelRateJob{
		Stats:       stats,
		Publisher:   publisher,
		Locker:      locker,
		Interval:    interval,
		ThresholdPP: thresholdPP,
		now:         time.Now,
	}
}

// Run ticks until ctx is done. Each tick acquires the distributed lock,
// runs one detection pass, and releases it.
func (j *CancelRateJob) Run(ctx context.Context) {
	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.tick(ctx)
		}
	}
}

func (j *CancelRateJob) tick(ctx context.Context) {
	if j.Locker != nil {
		lock, err := j.Locker.Obtain(ctx, cancelRateLockKey, j.Interval/2, nil)
		if errors.Is(err, redislock.ErrNotObtained) {
			logrus.Debug("Cancel rate job already running elsewhere, skipping tick")
			return
		}
		if err != nil {
			logrus.Errorf("Failed to obtain cancel rate lock: %s", err.Error())
			return
		}
		defer func() {
			if err := lock.Release(ctx); err != nil {
				logrus.Warnf("Failed to release cancel rate lock: %s", err.Error())
			}
		}()
	}

	j.Detect(ctx)
}

// Detect runs one detection pass. Exported so a boot-time pass or a test
// can run it without the ticker.
func (j *CancelRateJob) Detect(ctx context.Context) {
	now := j.now()

	anomalies, err := j.Stats.GetWeeklyCancelStats(ctx, now)
	if err != nil {
		logrus.Errorf("Cancel rate stats query failed: %s", err.Error())
		return
	}

	startHour := now.Add(-time.Hour).Hour()
	endHour := now.Hour()

	for _, anomaly := range anomalies {
		if anomaly.IncreasePercent < j.ThresholdPP {
			continue
		}

		event := models.AlertEvent{
			GroupID:     fmt.Sprintf("CANCEL-%d-%d", anomaly.StoreID, now.Unix()),
			StoreID:     anomaly.StoreID,
			StoreName:   anomaly.StoreName,
			AlertType:   models.AlertTypeCancelRateSpike,
			Description: fmt.Sprintf("Cancel rate rose from %.2f%% to %.2f%% (+%.2fpp) versus the same hour last week (%02d:00-%02d:00)", anomaly.LastWeekCancelRate, anomaly.ThisWeekCancelRate, anomaly.IncreasePercent, startHour, endHour),
			DetectedAt:  now,
		}

		j.Publisher.Publish(event)
		logrus.WithFields(logrus.Fields{
			"storeId": anomaly.StoreID,
		}).Infof("Cancel rate spike detected: %s", event.Description)
	}
}
