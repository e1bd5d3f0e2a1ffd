// Package audit records the mutations made through the API.
//
// A nil *Service is valid and records nothing, so callers do not need to
// check whether auditing is enabled.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mrlokans/groceries/internal/database/audit"
	"github.com/mrlokans/groceries/internal/entities"
)

const maxMessageLen = 500

// Mutation describes one write to be recorded.
type Mutation struct {
	EventType   entities.AuditEventType
	EntityType  string
	EntityID    uint // zero when the write failed before an id existed
	Description string
	RequestID   string
	Metadata    map[string]any
}

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(ctx context.Context, event *entities.AuditEvent) error {
	if s == nil {
		return nil
	}
	return s.repo.LogEvent(ctx, event)
}

// LogMutation records m with the outcome err. Failures to write the event
// are logged and otherwise ignored; the audited request has already
// completed.
func (s *Service) LogMutation(ctx context.Context, m Mutation, err error) {
	if s == nil {
		return
	}

	event := &entities.AuditEvent{
		EventType:   m.EventType,
		Action:      m.EntityType + "_" + string(m.EventType),
		EntityType:  m.EntityType,
		Description: truncate(m.Description, maxMessageLen),
		RequestID:   m.RequestID,
		Status:      entities.AuditStatusSuccess,
	}
	if m.EntityID != 0 {
		id := m.EntityID
		event.EntityID = &id
	}
	if len(m.Metadata) > 0 {
		if mdBytes, e := json.Marshal(m.Metadata); e == nil {
			event.Metadata = string(mdBytes)
		}
	}
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), maxMessageLen)
	}

	// The request context may already be cancelled by the time we get here.
	if logErr := s.Log(context.WithoutCancel(ctx), event); logErr != nil {
		slog.Error("failed to log audit event", "action", event.Action, "error", logErr)
	}
}

// LogSeed records a catalog seed run.
func (s *Service) LogSeed(ctx context.Context, typesCreated, itemsCreated int, err error) {
	s.LogMutation(ctx, Mutation{
		EventType:   entities.AuditEventSeed,
		EntityType:  "catalog",
		Description: "Seeded default catalog",
		Metadata: map[string]any{
			"types_created": typesCreated,
			"items_created": itemsCreated,
		},
	}, err)
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(ctx context.Context, filter audit.Filter, limit, offset int) ([]entities.AuditEvent, int64, error) {
	if s == nil {
		return []entities.AuditEvent{}, 0, nil
	}
	return s.repo.GetEvents(ctx, filter, limit, offset)
}

// GetEvent returns one audit event, or nil when it does not exist.
func (s *Service) GetEvent(ctx context.Context, id uint) (*entities.AuditEvent, error) {
	if s == nil {
		return nil, nil
	}
	return s.repo.GetEventByID(ctx, id)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	if s == nil || retention <= 0 {
		return 0, nil
	}
	cutoff := time.Now().UTC().Add(-retention)
	return s.repo.DeleteOldEvents(ctx, cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
