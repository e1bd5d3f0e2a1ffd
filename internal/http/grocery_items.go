package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/groceries/internal/audit"
	"github.com/mrlokans/groceries/internal/entities"
	"github.com/mrlokans/groceries/internal/schemas"
)

const entityGroceryItem = "grocery_item"

type GroceryItemsController struct {
	store   GroceryItemStore
	auditor *audit.Service
}

func NewGroceryItemsController(store GroceryItemStore, auditor *audit.Service) *GroceryItemsController {
	return &GroceryItemsController{store: store, auditor: auditor}
}

// List returns a page of grocery items across all groceries
// GET /api/v1/grocery_items
func (gc *GroceryItemsController) List(c *gin.Context) {
	var params schemas.ListParams
	if !bindQuery(c, &params) {
		return
	}

	groceryItems, total, err := gc.store.List(c.Request.Context(), params.Skip, params.PageLimit())
	if err != nil {
		respondInternalError(c, err, "list grocery items")
		return
	}
	respondList(c, schemas.NewGroceryItems(groceryItems), total)
}

// Get returns one grocery item
// GET /api/v1/grocery_items/:id
func (gc *GroceryItemsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	groceryItem, err := gc.store.Get(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "get grocery item")
		return
	}
	if groceryItem == nil {
		respondNotFound(c, "Grocery item")
		return
	}
	c.JSON(http.StatusOK, schemas.NewGroceryItem(groceryItem))
}

// Create adds an item to the grocery named in the body
// POST /api/v1/grocery_items
func (gc *GroceryItemsController) Create(c *gin.Context) {
	var req schemas.StandaloneGroceryItemCreate
	if !bindJSON(c, &req) {
		return
	}

	groceryItem, err := gc.store.Create(c.Request.Context(), req.GroceryID, req.GroceryItemCreate)
	if err != nil {
		recordMutation(c, gc.auditor, entities.AuditEventCreate, entityGroceryItem, 0, "Create grocery item", err)
		respondStoreError(c, err, "Grocery item", "create grocery item")
		return
	}

	recordMutation(c, gc.auditor, entities.AuditEventCreate, entityGroceryItem, groceryItem.ID,
		fmt.Sprintf("Added item %d to grocery %d", groceryItem.ItemID, groceryItem.GroceryID), nil)
	respondCreated(c, schemas.NewGroceryItem(groceryItem))
}

// Update changes item, quantity or purchased; absent fields are untouched
// PATCH /api/v1/grocery_items/:id
func (gc *GroceryItemsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req schemas.GroceryItemUpdate
	if !bindJSON(c, &req) {
		return
	}

	groceryItem, err := gc.store.Update(c.Request.Context(), id, req)
	if err != nil {
		recordMutation(c, gc.auditor, entities.AuditEventUpdate, entityGroceryItem, id, "Update grocery item", err)
		respondStoreError(c, err, "Grocery item", "update grocery item")
		return
	}
	if groceryItem == nil {
		respondNotFound(c, "Grocery item")
		return
	}

	recordMutation(c, gc.auditor, entities.AuditEventUpdate, entityGroceryItem, id, "Updated grocery item", nil)
	c.JSON(http.StatusOK, schemas.NewGroceryItem(groceryItem))
}

// Delete removes one item from its grocery
// DELETE /api/v1/grocery_items/:id
func (gc *GroceryItemsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	groceryItem, err := gc.store.Delete(c.Request.Context(), id)
	if err != nil {
		recordMutation(c, gc.auditor, entities.AuditEventDelete, entityGroceryItem, id, "Delete grocery item", err)
		respondStoreError(c, err, "Grocery item", "delete grocery item")
		return
	}
	if groceryItem == nil {
		respondNotFound(c, "Grocery item")
		return
	}

	recordMutation(c, gc.auditor, entities.AuditEventDelete, entityGroceryItem, id,
		fmt.Sprintf("Removed item %d from grocery %d", groceryItem.ItemID, groceryItem.GroceryID), nil)
	c.JSON(http.StatusOK, schemas.NewGroceryItem(groceryItem))
}
