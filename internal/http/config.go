package http

import (
	"log/slog"

	"github.com/mrlokans/groceries/internal/audit"
	"github.com/mrlokans/groceries/internal/readonly"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Stores
	ItemTypes    ItemTypeStore
	Items        ItemStore
	Groceries    GroceryStore
	GroceryItems GroceryItemStore

	// Database health check
	Database Pinger

	// Audit trail (nil disables recording and serves an empty list)
	AuditService *audit.Service

	// Write blocking
	ReadOnly *readonly.Middleware

	// Browser origins allowed to call the API
	AllowedOrigins []string

	// Access log destination (defaults to slog.Default())
	Logger *slog.Logger

	// Application info
	Version string
}
