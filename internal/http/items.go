package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/groceries/internal/audit"
	"github.com/mrlokans/groceries/internal/entities"
	"github.com/mrlokans/groceries/internal/schemas"
)

const entityItem = "item"

type ItemsController struct {
	store   ItemStore
	auditor *audit.Service
}

func NewItemsController(store ItemStore, auditor *audit.Service) *ItemsController {
	return &ItemsController{store: store, auditor: auditor}
}

// List returns a page of items, optionally of one item type
// GET /api/v1/items?item_type_id=
func (ic *ItemsController) List(c *gin.Context) {
	var params schemas.ItemListParams
	if !bindQuery(c, &params) {
		return
	}

	var (
		items []entities.Item
		total int64
		err   error
	)
	if params.ItemTypeID > 0 {
		items, total, err = ic.store.ListByType(c.Request.Context(), params.ItemTypeID, params.Skip, params.PageLimit())
	} else {
		items, total, err = ic.store.List(c.Request.Context(), params.Skip, params.PageLimit())
	}
	if err != nil {
		respondInternalError(c, err, "list items")
		return
	}
	respondList(c, schemas.NewItems(items), total)
}

// Get returns one item with its item type
// GET /api/v1/items/:id
func (ic *ItemsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := ic.store.Get(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "get item")
		return
	}
	if item == nil {
		respondNotFound(c, "Item")
		return
	}
	c.JSON(http.StatusOK, schemas.NewItem(item))
}

// Create adds an item to the catalog
// POST /api/v1/items
func (ic *ItemsController) Create(c *gin.Context) {
	var req schemas.ItemCreate
	if !bindJSON(c, &req) {
		return
	}

	item, err := ic.store.Create(c.Request.Context(), req)
	if err != nil {
		recordMutation(c, ic.auditor, entities.AuditEventCreate, entityItem, 0, "Create item "+req.Name, err)
		respondStoreError(c, err, "Item", "create item")
		return
	}

	recordMutation(c, ic.auditor, entities.AuditEventCreate, entityItem, item.ID, "Created item "+item.Name, nil)
	respondCreated(c, schemas.NewItem(item))
}

// Update changes the name or item type of an item
// PATCH /api/v1/items/:id
func (ic *ItemsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req schemas.ItemUpdate
	if !bindJSON(c, &req) {
		return
	}

	item, err := ic.store.Update(c.Request.Context(), id, req)
	if err != nil {
		recordMutation(c, ic.auditor, entities.AuditEventUpdate, entityItem, id, "Update item", err)
		respondStoreError(c, err, "Item", "update item")
		return
	}
	if item == nil {
		respondNotFound(c, "Item")
		return
	}

	recordMutation(c, ic.auditor, entities.AuditEventUpdate, entityItem, id, "Updated item "+item.Name, nil)
	c.JSON(http.StatusOK, schemas.NewItem(item))
}

// Delete removes an item that is on no grocery
// DELETE /api/v1/items/:id
func (ic *ItemsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := ic.store.Delete(c.Request.Context(), id)
	if err != nil {
		recordMutation(c, ic.auditor, entities.AuditEventDelete, entityItem, id, "Delete item", err)
		respondStoreError(c, err, "Item", "delete item")
		return
	}
	if item == nil {
		respondNotFound(c, "Item")
		return
	}

	recordMutation(c, ic.auditor, entities.AuditEventDelete, entityItem, id, "Deleted item "+item.Name, nil)
	c.JSON(http.StatusOK, schemas.NewItem(item))
}
