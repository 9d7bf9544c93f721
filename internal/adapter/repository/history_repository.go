package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// HistoryRepository persists analyzed meetings. The history is append-only:
// entries are created once and never updated.
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository backed by GORM
func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append stores a new history entry
func (r *HistoryRepository) Append(ctx context.Context, entry *entities.MeetingHistoryEntry) error {
	if entry == nil {
		return errors.New("entry cannot be nil")
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByID retrieves one history entry, nil when absent
func (r *HistoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingHistoryEntry, error) {
	var entry entities.MeetingHistoryEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// List retrieves history entries newest first with the total count
func (r *HistoryRepository) List(ctx context.Context, limit, offset int) ([]entities.MeetingHistoryEntry, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.MeetingHistoryEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []entities.MeetingHistoryEntry
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
