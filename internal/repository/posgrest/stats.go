package posgrest

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kakaon/fraud-service/internal/models"
)

// Per-store cancel rate over the last hour, joined against the same hour
// one week earlier. Stores with no payments last week report a previous
// rate of zero.
const weeklyCancelStatsQuery = `
SELECT
    cur.store_id AS store_id,
    s.name AS store_name,
    COALESCE(prev.cancel_rate, 0) AS last_week_cancel_rate,
    cur.cancel_rate AS this_week_cancel_rate
FROM (
    SELECT store_id,
           COUNT(*) FILTER (WHERE canceled_at IS NOT NULL)::float / COUNT(*) * 100 AS cancel_rate
    FROM payments
    WHERE approved_at BETWEEN ? AND ?
    GROUP BY store_id
) cur
JOIN stores s ON s.store_id = cur.store_id
LEFT JOIN (
    SELECT store_id,
           COUNT(*) FILTER (WHERE canceled_at IS NOT NULL)::float / COUNT(*) * 100 AS cancel_rate
    FROM payments
    WHERE approved_at BETWEEN ? AND ?
    GROUP BY store_id
) prev ON prev.store_id = cur.store_id`

// StatsRepository answers the aggregate queries behind the scheduled jobs.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db}
}

// GetWeeklyCancelStats returns, for every store with payments in the last
// hour, its cancel rate and the rate in the same hour one week earlier.
func (r *StatsRepository) GetWeeklyCancelStats(ctx context.Context, now time.Time) ([]models.CancelRateAnomaly, error) {
	hourAgo := now.Add(-time.Hour)
	lastWeekStart := hourAgo.AddDate(0, 0, -7)
	lastWeekEnd := now.AddDate(0, 0, -7)

	var rows []models.CancelRateAnomaly
	err := r.db.WithContext(ctx).
		Raw(weeklyCancelStatsQuery, hourAgo, now, lastWeekStart, lastWeekEnd).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].IncreasePercent = rows[i].ThisWeekCancelRate - rows[i].LastWeekCancelRate
	}
	return rows, nil
}
