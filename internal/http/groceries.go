package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/groceries/internal/audit"
	"github.com/mrlokans/groceries/internal/database/crud"
	"github.com/mrlokans/groceries/internal/entities"
	"github.com/mrlokans/groceries/internal/schemas"
)

const entityGrocery = "grocery"

// GroceriesController serves groceries and the items nested under them.
type GroceriesController struct {
	store        GroceryStore
	groceryItems GroceryItemStore
	auditor      *audit.Service
}

func NewGroceriesController(store GroceryStore, groceryItems GroceryItemStore, auditor *audit.Service) *GroceriesController {
	return &GroceriesController{store: store, groceryItems: groceryItems, auditor: auditor}
}

// List returns a page of groceries with their items
// GET /api/v1/groceries
func (gc *GroceriesController) List(c *gin.Context) {
	var params schemas.ListParams
	if !bindQuery(c, &params) {
		return
	}

	groceries, total, err := gc.store.List(c.Request.Context(), params.Skip, params.PageLimit())
	if err != nil {
		respondInternalError(c, err, "list groceries")
		return
	}
	respondList(c, schemas.NewGroceries(groceries), total)
}

// Get returns one grocery with its items
// GET /api/v1/groceries/:id
func (gc *GroceriesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	grocery, err := gc.store.Get(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "get grocery")
		return
	}
	if grocery == nil {
		respondNotFound(c, "Grocery")
		return
	}
	c.JSON(http.StatusOK, schemas.NewGrocery(grocery))
}

// Create adds a grocery together with its items
// POST /api/v1/groceries
func (gc *GroceriesController) Create(c *gin.Context) {
	var req schemas.GroceryCreate
	if !bindJSON(c, &req) {
		return
	}

	grocery, err := gc.store.Create(c.Request.Context(), req)
	if err != nil {
		recordMutation(c, gc.auditor, entities.AuditEventCreate, entityGrocery, 0, "Create grocery for "+req.GroceryDate, err)
		respondStoreError(c, err, "Grocery", "create grocery")
		return
	}

	recordMutation(c, gc.auditor, entities.AuditEventCreate, entityGrocery, grocery.ID,
		fmt.Sprintf("Created grocery for %s with %d items", req.GroceryDate, len(grocery.GroceryItems)), nil)
	respondCreated(c, schemas.NewGrocery(grocery))
}

// Update changes family_id and grocery_date, and replaces the items when
// grocery_items is present
// PATCH /api/v1/groceries/:id
func (gc *GroceriesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req schemas.GroceryUpdate
	if !bindJSON(c, &req) {
		return
	}

	grocery, err := gc.store.Update(c.Request.Context(), id, req)
	if err != nil {
		recordMutation(c, gc.auditor, entities.AuditEventUpdate, entityGrocery, id, "Update grocery", err)
		respondStoreError(c, err, "Grocery", "update grocery")
		return
	}
	if grocery == nil {
		respondNotFound(c, "Grocery")
		return
	}

	recordMutation(c, gc.auditor, entities.AuditEventUpdate, entityGrocery, id, "Updated grocery", nil)
	c.JSON(http.StatusOK, schemas.NewGrocery(grocery))
}

// Delete removes a grocery and all of its items
// DELETE /api/v1/groceries/:id
func (gc *GroceriesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	grocery, err := gc.store.Delete(c.Request.Context(), id)
	if err != nil {
		recordMutation(c, gc.auditor, entities.AuditEventDelete, entityGrocery, id, "Delete grocery", err)
		respondStoreError(c, err, "Grocery", "delete grocery")
		return
	}
	if grocery == nil {
		respondNotFound(c, "Grocery")
		return
	}

	recordMutation(c, gc.auditor, entities.AuditEventDelete, entityGrocery, id,
		fmt.Sprintf("Deleted grocery with %d items", len(grocery.GroceryItems)), nil)
	c.JSON(http.StatusOK, schemas.NewGrocery(grocery))
}

// ListItems returns a page of the items of one grocery
// GET /api/v1/groceries/:id/items
func (gc *GroceriesController) ListItems(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var params schemas.ListParams
	if !bindQuery(c, &params) {
		return
	}

	grocery, err := gc.store.Get(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "get grocery")
		return
	}
	if grocery == nil {
		respondNotFound(c, "Grocery")
		return
	}

	groceryItems, total, err := gc.groceryItems.ListByGrocery(c.Request.Context(), id, params.Skip, params.PageLimit())
	if err != nil {
		respondInternalError(c, err, "list grocery items")
		return
	}
	respondList(c, schemas.NewGroceryItems(groceryItems), total)
}

// AddItem adds an item to an existing grocery
// POST /api/v1/groceries/:id/items
func (gc *GroceriesController) AddItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req schemas.GroceryItemCreate
	if !bindJSON(c, &req) {
		return
	}

	groceryItem, err := gc.groceryItems.Create(c.Request.Context(), id, req)
	if err != nil {
		var refErr *crud.ReferenceError
		if errors.As(err, &refErr) && refErr.Field == "grocery_id" {
			respondNotFound(c, "Grocery")
			return
		}
		recordMutation(c, gc.auditor, entities.AuditEventCreate, entityGroceryItem, 0, "Add item to grocery", err)
		respondStoreError(c, err, "Grocery item", "add grocery item")
		return
	}

	recordMutation(c, gc.auditor, entities.AuditEventCreate, entityGroceryItem, groceryItem.ID,
		fmt.Sprintf("Added item %d to grocery %d", groceryItem.ItemID, id), nil)
	respondCreated(c, schemas.NewGroceryItem(groceryItem))
}
