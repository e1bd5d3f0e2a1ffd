package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/groceries/internal/schemas"
)

// APIPrefix is the base path of the versioned API.
const APIPrefix = "/api/v1"

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		schemas.Configure(v)
	} else {
		slog.Warn("gin validator engine is not go-playground/validator; custom rules not registered")
	}
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(AccessLogMiddleware(cfg.Logger))
	router.Use(CORSMiddleware(cfg.AllowedOrigins))

	if cfg.ReadOnly.IsEnabled() {
		router.Use(cfg.ReadOnly.Handler())
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/", health.Root)
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	api := router.Group(APIPrefix)

	itemTypes := NewItemTypesController(cfg.ItemTypes, cfg.AuditService)
	api.GET("/item_types", itemTypes.List)
	api.POST("/item_types", itemTypes.Create)
	api.GET("/item_types/:id", itemTypes.Get)
	api.PATCH("/item_types/:id", itemTypes.Update)
	api.PUT("/item_types/:id", itemTypes.Update)
	api.DELETE("/item_types/:id", itemTypes.Delete)

	items := NewItemsController(cfg.Items, cfg.AuditService)
	api.GET("/items", items.List)
	api.POST("/items", items.Create)
	api.GET("/items/:id", items.Get)
	api.PATCH("/items/:id", items.Update)
	api.PUT("/items/:id", items.Update)
	api.DELETE("/items/:id", items.Delete)

	groceries := NewGroceriesController(cfg.Groceries, cfg.GroceryItems, cfg.AuditService)
	api.GET("/groceries", groceries.List)
	api.POST("/groceries", groceries.Create)
	api.GET("/groceries/:id", groceries.Get)
	api.PATCH("/groceries/:id", groceries.Update)
	api.PUT("/groceries/:id", groceries.Update)
	api.DELETE("/groceries/:id", groceries.Delete)
	api.GET("/groceries/:id/items", groceries.ListItems)
	api.POST("/groceries/:id/items", groceries.AddItem)

	groceryItems := NewGroceryItemsController(cfg.GroceryItems, cfg.AuditService)
	api.GET("/grocery_items", groceryItems.List)
	api.POST("/grocery_items", groceryItems.Create)
	api.GET("/grocery_items/:id", groceryItems.Get)
	api.PATCH("/grocery_items/:id", groceryItems.Update)
	api.PUT("/grocery_items/:id", groceryItems.Update)
	api.DELETE("/grocery_items/:id", groceryItems.Delete)

	auditController := NewAuditController(cfg.AuditService)
	api.GET("/audit", auditController.GetAuditEvents)
	api.GET("/audit/:id", auditController.GetAuditEvent)

	router.NoRoute(func(c *gin.Context) {
		respondNotFound(c, "Route")
	})

	return router
}
