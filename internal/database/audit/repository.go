package audit

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/groceries/internal/database/crud"
	"github.com/mrlokans/groceries/internal/entities"
)

// Filter narrows GetEvents. Zero fields match everything.
type Filter struct {
	EventType  entities.AuditEventType
	EntityType string
}

type Repository struct {
	db          *gorm.DB
	maxPageSize int
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, maxPageSize: crud.DefaultMaxPageSize}
}

// SetMaxPageSize changes the upper bound applied to GetEvents limits.
func (r *Repository) SetMaxPageSize(n int) {
	if n > 0 {
		r.maxPageSize = n
	}
}

// LogEvent saves an audit event to the database.
func (r *Repository) LogEvent(ctx context.Context, event *entities.AuditEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(event).Error
}

// GetEvents retrieves paginated audit events, most recent first.
func (r *Repository) GetEvents(ctx context.Context, filter Filter, limit, offset int) ([]entities.AuditEvent, int64, error) {
	events := []entities.AuditEvent{}
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.AuditEvent{})
	if filter.EventType != "" {
		query = query.Where("event_type = ?", filter.EventType)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := crud.NewPage(offset, limit, r.maxPageSize)
	err := query.Order("created_at DESC").Order("id DESC").
		Limit(page.Limit).Offset(page.Skip).
		Find(&events).Error
	return events, total, err
}

// GetEventByID retrieves a single audit event, or nil when it does not exist.
func (r *Repository) GetEventByID(ctx context.Context, id uint) (*entities.AuditEvent, error) {
	var event entities.AuditEvent
	found, err := crud.Find(r.db.WithContext(ctx), &event, id)
	if err != nil || !found {
		return nil, err
	}
	return &event, nil
}

// DeleteOldEvents removes audit events older than the specified time.
// Returns the number of deleted events.
func (r *Repository) DeleteOldEvents(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", olderThan).Delete(&entities.AuditEvent{})
	return result.RowsAffected, result.Error
}
