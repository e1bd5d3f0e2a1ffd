package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/groceries/internal/audit"
	"github.com/mrlokans/groceries/internal/entities"
	"github.com/mrlokans/groceries/internal/schemas"
)

const entityItemType = "item_type"

type ItemTypesController struct {
	store   ItemTypeStore
	auditor *audit.Service
}

func NewItemTypesController(store ItemTypeStore, auditor *audit.Service) *ItemTypesController {
	return &ItemTypesController{store: store, auditor: auditor}
}

// List returns a page of item types
// GET /api/v1/item_types
func (ic *ItemTypesController) List(c *gin.Context) {
	var params schemas.ListParams
	if !bindQuery(c, &params) {
		return
	}

	itemTypes, total, err := ic.store.List(c.Request.Context(), params.Skip, params.PageLimit())
	if err != nil {
		respondInternalError(c, err, "list item types")
		return
	}
	respondList(c, schemas.NewItemTypes(itemTypes), total)
}

// Get returns one item type
// GET /api/v1/item_types/:id
func (ic *ItemTypesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	itemType, err := ic.store.Get(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "get item type")
		return
	}
	if itemType == nil {
		respondNotFound(c, "Item type")
		return
	}
	c.JSON(http.StatusOK, schemas.NewItemType(itemType))
}

// Create adds an item type
// POST /api/v1/item_types
func (ic *ItemTypesController) Create(c *gin.Context) {
	var req schemas.ItemTypeCreate
	if !bindJSON(c, &req) {
		return
	}

	itemType, err := ic.store.Create(c.Request.Context(), req)
	if err != nil {
		recordMutation(c, ic.auditor, entities.AuditEventCreate, entityItemType, 0, "Create item type "+req.Name, err)
		respondStoreError(c, err, "Item type", "create item type")
		return
	}

	recordMutation(c, ic.auditor, entities.AuditEventCreate, entityItemType, itemType.ID, "Created item type "+itemType.Name, nil)
	respondCreated(c, schemas.NewItemType(itemType))
}

// Update renames an item type
// PATCH /api/v1/item_types/:id
func (ic *ItemTypesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req schemas.ItemTypeUpdate
	if !bindJSON(c, &req) {
		return
	}

	itemType, err := ic.store.Update(c.Request.Context(), id, req)
	if err != nil {
		recordMutation(c, ic.auditor, entities.AuditEventUpdate, entityItemType, id, "Update item type", err)
		respondStoreError(c, err, "Item type", "update item type")
		return
	}
	if itemType == nil {
		respondNotFound(c, "Item type")
		return
	}

	recordMutation(c, ic.auditor, entities.AuditEventUpdate, entityItemType, id, "Updated item type "+itemType.Name, nil)
	c.JSON(http.StatusOK, schemas.NewItemType(itemType))
}

// Delete removes an item type that no item refers to
// DELETE /api/v1/item_types/:id
func (ic *ItemTypesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	itemType, err := ic.store.Delete(c.Request.Context(), id)
	if err != nil {
		recordMutation(c, ic.auditor, entities.AuditEventDelete, entityItemType, id, "Delete item type", err)
		respondStoreError(c, err, "Item type", "delete item type")
		return
	}
	if itemType == nil {
		respondNotFound(c, "Item type")
		return
	}

	recordMutation(c, ic.auditor, entities.AuditEventDelete, entityItemType, id, "Deleted item type "+itemType.Name, nil)
	c.JSON(http.StatusOK, schemas.NewItemType(itemType))
}
