package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeedbackRepository interface {
	Upsert(ctx context.Context, entry *domain.FeedbackModel) error
	GetByDate(ctx context.Context, userID uuid.UUID, date domain.Date) (*domain.FeedbackModel, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.FeedbackFilter) ([]domain.FeedbackModel, error)
	FeedbackInRange(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.FeedbackRecord, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Upsert inserts entry or replaces the ratings of the existing entry for
// the same user and date. entry is reloaded from the stored row.
func (r *feedbackRepository) Upsert(ctx context.Context, entry *domain.FeedbackModel) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"sleep_satisfaction", "morning_condition", "notes", "updated_at"}),
		}).
		Create(entry).Error
	if err != nil {
		return err
	}

	stored, err := r.GetByDate(ctx, entry.UserID, domain.DateOf(entry.Date))
	if err != nil {
		return err
	}
	*entry = *stored
	return nil
}

func (r *feedbackRepository) GetByDate(ctx context.Context, userID uuid.UUID, date domain.Date) (*domain.FeedbackModel, error) {
	var entry domain.FeedbackModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date.String()).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// List returns up to filter.Limit+1 entries, newest date first, so the
// caller can tell whether another page exists.
func (r *feedbackRepository) List(ctx context.Context, userID uuid.UUID, filter domain.FeedbackFilter) ([]domain.FeedbackModel, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("id DESC")

	if filter.From != nil {
		query = query.Where("date >= ?", filter.From.String())
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To.String())
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// DESC order: rows strictly after the cursor row
		cursorDate := domain.DateOf(cursor.Date).String()
		query = query.Where(
			"(date < ?) OR (date = ? AND id < ?)",
			cursorDate, cursorDate, cursor.ID,
		)
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.FeedbackModel
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *feedbackRepository) FeedbackInRange(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.FeedbackRecord, error) {
	var entries []domain.FeedbackModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from.String(), to.String()).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	records := make([]domain.FeedbackRecord, 0, len(entries))
	for i := range entries {
		records = append(records, entries[i].ToRecord())
	}
	return records, nil
}
