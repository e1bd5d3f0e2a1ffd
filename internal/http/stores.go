package http

import (
	"context"

	"github.com/mrlokans/groceries/internal/entities"
	"github.com/mrlokans/groceries/internal/schemas"
)

// This file consolidates the store interfaces used by the HTTP controllers.
// Get, Update and Delete return a nil record with a nil error when the row
// does not exist.

// ItemTypeStore is implemented by internal/database/itemtypes.
type ItemTypeStore interface {
	List(ctx context.Context, skip, limit int) ([]entities.ItemType, int64, error)
	Get(ctx context.Context, id uint) (*entities.ItemType, error)
	Create(ctx context.Context, in schemas.ItemTypeCreate) (*entities.ItemType, error)
	Update(ctx context.Context, id uint, in schemas.ItemTypeUpdate) (*entities.ItemType, error)
	Delete(ctx context.Context, id uint) (*entities.ItemType, error)
}

// ItemStore is implemented by internal/database/items.
type ItemStore interface {
	List(ctx context.Context, skip, limit int) ([]entities.Item, int64, error)
	ListByType(ctx context.Context, itemTypeID uint, skip, limit int) ([]entities.Item, int64, error)
	Get(ctx context.Context, id uint) (*entities.Item, error)
	Create(ctx context.Context, in schemas.ItemCreate) (*entities.Item, error)
	Update(ctx context.Context, id uint, in schemas.ItemUpdate) (*entities.Item, error)
	Delete(ctx context.Context, id uint) (*entities.Item, error)
}

// GroceryStore is implemented by internal/database/groceries.
type GroceryStore interface {
	List(ctx context.Context, skip, limit int) ([]entities.Grocery, int64, error)
	Get(ctx context.Context, id uint) (*entities.Grocery, error)
	Create(ctx context.Context, in schemas.GroceryCreate) (*entities.Grocery, error)
	Update(ctx context.Context, id uint, in schemas.GroceryUpdate) (*entities.Grocery, error)
	Delete(ctx context.Context, id uint) (*entities.Grocery, error)
}

// GroceryItemStore is implemented by internal/database/groceryitems.
type GroceryItemStore interface {
	List(ctx context.Context, skip, limit int) ([]entities.GroceryItem, int64, error)
	ListByGrocery(ctx context.Context, groceryID uint, skip, limit int) ([]entities.GroceryItem, int64, error)
	Get(ctx context.Context, id uint) (*entities.GroceryItem, error)
	Create(ctx context.Context, groceryID uint, in schemas.GroceryItemCreate) (*entities.GroceryItem, error)
	Update(ctx context.Context, id uint, in schemas.GroceryItemUpdate) (*entities.GroceryItem, error)
	Delete(ctx context.Context, id uint) (*entities.GroceryItem, error)
}
