package repository

import (
	"context"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const importBatchSize = 200

// HealthRecordRepository stores sleep, activity and stress records and
// serves them back as a provider.DataProvider.
type HealthRecordRepository interface {
	FetchSleep(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.SleepRecord, error)
	FetchActivity(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.ActivityRecord, error)
	FetchStress(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.StressRecord, error)
	Import(ctx context.Context, set *domain.ImportSet) error
}

type healthRecordRepository struct {
	db *gorm.DB
}

func NewHealthRecordRepository(db *gorm.DB) HealthRecordRepository {
	return &healthRecordRepository{db: db}
}

// FetchSleep returns nights starting within [from, to] (UTC days), oldest first.
func (r *healthRecordRepository) FetchSleep(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.SleepRecord, error) {
	var nights []domain.SleepNightModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("start_at >= ? AND start_at < ?", from.Time(), to.AddDays(1).Time()).
		Order("start_at ASC").
		Find(&nights).Error
	if err != nil {
		return nil, err
	}

	records := make([]domain.SleepRecord, 0, len(nights))
	for i := range nights {
		records = append(records, nights[i].ToRecord())
	}
	return records, nil
}

func (r *healthRecordRepository) FetchActivity(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.ActivityRecord, error) {
	var days []domain.ActivityDayModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from.String(), to.String()).
		Order("date ASC").
		Find(&days).Error
	if err != nil {
		return nil, err
	}

	records := make([]domain.ActivityRecord, 0, len(days))
	for i := range days {
		records = append(records, days[i].ToRecord())
	}
	return records, nil
}

func (r *healthRecordRepository) FetchStress(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.StressRecord, error) {
	var days []domain.StressDayModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from.String(), to.String()).
		Order("date ASC").
		Find(&days).Error
	if err != nil {
		return nil, err
	}

	records := make([]domain.StressRecord, 0, len(days))
	for i := range days {
		records = append(records, days[i].ToRecord())
	}
	return records, nil
}

// Import writes every row of set in one transaction.
func (r *healthRecordRepository) Import(ctx context.Context, set *domain.ImportSet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(set.Sleep) > 0 {
			if err := tx.CreateInBatches(set.Sleep, importBatchSize).Error; err != nil {
				return err
			}
		}
		if len(set.Activity) > 0 {
			if err := tx.CreateInBatches(set.Activity, importBatchSize).Error; err != nil {
				return err
			}
		}
		if len(set.Stress) > 0 {
			if err := tx.CreateInBatches(set.Stress, importBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
