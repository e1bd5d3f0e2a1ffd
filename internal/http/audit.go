package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/groceries/internal/audit"
	auditRepo "github.com/mrlokans/groceries/internal/database/audit"
	"github.com/mrlokans/groceries/internal/entities"
	"github.com/mrlokans/groceries/internal/schemas"
)

type AuditController struct {
	auditService *audit.Service
}

func NewAuditController(auditService *audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// GetAuditEvents returns audit events, most recent first
// GET /api/v1/audit
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	var params schemas.AuditListParams
	if !bindQuery(c, &params) {
		return
	}

	filter := auditRepo.Filter{
		EventType:  entities.AuditEventType(params.EventType),
		EntityType: params.EntityType,
	}
	events, total, err := ac.auditService.GetEvents(c.Request.Context(), filter, params.PageLimit(), params.Skip)
	if err != nil {
		respondInternalError(c, err, "get audit events")
		return
	}
	respondList(c, events, total)
}

// GetAuditEvent returns one audit event
// GET /api/v1/audit/:id
func (ac *AuditController) GetAuditEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	event, err := ac.auditService.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "get audit event")
		return
	}
	if event == nil {
		respondNotFound(c, "Audit event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// recordMutation writes an audit event for a write made by the current
// request. svc may be nil.
func recordMutation(c *gin.Context, svc *audit.Service, eventType entities.AuditEventType, entityType string, entityID uint, description string, err error) {
	svc.LogMutation(c.Request.Context(), audit.Mutation{
		EventType:   eventType,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		RequestID:   RequestIDFrom(c),
	}, err)
}
