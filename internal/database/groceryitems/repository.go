// Package groceryitems provides database operations for the lines of a
// grocery trip.
//
// This package implements the GroceryItemStore interface defined in
// internal/http/stores.go.
package groceryitems

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/groceries/internal/database/crud"
	"github.com/mrlokans/groceries/internal/entities"
	"github.com/mrlokans/groceries/internal/schemas"
)

// Repository handles all grocery item database operations.
type Repository struct {
	db          *gorm.DB
	maxPageSize int
}

// NewRepository creates a new grocery items repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, maxPageSize: crud.DefaultMaxPageSize}
}

// SetMaxPageSize changes the upper bound applied to List limits.
func (r *Repository) SetMaxPageSize(n int) {
	if n > 0 {
		r.maxPageSize = n
	}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Item").Preload("Item.ItemType")
}

// List returns a page of grocery items across all groceries.
func (r *Repository) List(ctx context.Context, skip, limit int) ([]entities.GroceryItem, int64, error) {
	return r.list(ctx, skip, limit, func(db *gorm.DB) *gorm.DB { return db })
}

// ListByGrocery returns a page of the items of one grocery.
func (r *Repository) ListByGrocery(ctx context.Context, groceryID uint, skip, limit int) ([]entities.GroceryItem, int64, error) {
	return r.list(ctx, skip, limit, func(db *gorm.DB) *gorm.DB {
		return db.Where("grocery_id = ?", groceryID)
	})
}

func (r *Repository) list(ctx context.Context, skip, limit int, filter func(*gorm.DB) *gorm.DB) ([]entities.GroceryItem, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.GroceryItem{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	groceryItems := []entities.GroceryItem{}
	page := crud.NewPage(skip, limit, r.maxPageSize)
	err := r.db.WithContext(ctx).Scopes(filter, withRelations, page.Scope).Find(&groceryItems).Error
	return groceryItems, total, err
}

// Get returns the grocery item with its item, or nil when it does not exist.
func (r *Repository) Get(ctx context.Context, id uint) (*entities.GroceryItem, error) {
	return get(r.db.WithContext(ctx), id)
}

func get(tx *gorm.DB, id uint) (*entities.GroceryItem, error) {
	var groceryItem entities.GroceryItem
	found, err := crud.Find(tx.Scopes(withRelations), &groceryItem, id)
	if err != nil || !found {
		return nil, err
	}
	return &groceryItem, nil
}

// Create adds an item to a grocery. Both the grocery and the item must exist;
// a missing one is reported as a *crud.ReferenceError naming the field.
func (r *Repository) Create(ctx context.Context, groceryID uint, in schemas.GroceryItemCreate) (*entities.GroceryItem, error) {
	var created *entities.GroceryItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := crud.RequireExists(tx, &entities.Grocery{}, "Grocery", "grocery_id", groceryID); err != nil {
			return err
		}
		if err := crud.RequireExists(tx, &entities.Item{}, "Item", "item_id", in.ItemID); err != nil {
			return err
		}

		groceryItem := entities.GroceryItem{
			GroceryID: groceryID,
			ItemID:    in.ItemID,
			Quantity:  in.QuantityOrDefault(),
			Purchased: in.PurchasedOrDefault(),
		}
		if err := tx.Create(&groceryItem).Error; err != nil {
			return crud.Classify(err)
		}

		var err error
		created, err = get(tx, groceryItem.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the fields present in in, so toggling purchased leaves
// quantity and item untouched. Returns nil when the grocery item does not
// exist.
func (r *Repository) Update(ctx context.Context, id uint, in schemas.GroceryItemUpdate) (*entities.GroceryItem, error) {
	var updated *entities.GroceryItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var groceryItem entities.GroceryItem
		found, err := crud.Find(tx, &groceryItem, id)
		if err != nil || !found {
			return err
		}

		changes := map[string]any{}
		if in.ItemID != nil {
			if err := crud.RequireExists(tx, &entities.Item{}, "Item", "item_id", *in.ItemID); err != nil {
				return err
			}
			changes["item_id"] = *in.ItemID
		}
		if in.Quantity != nil {
			changes["quantity"] = *in.Quantity
		}
		if in.Purchased != nil {
			changes["purchased"] = *in.Purchased
		}
		if len(changes) > 0 {
			if err := tx.Model(&groceryItem).Updates(changes).Error; err != nil {
				return crud.Classify(err)
			}
		}

		updated, err = get(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a grocery item and returns it as it was.
func (r *Repository) Delete(ctx context.Context, id uint) (*entities.GroceryItem, error) {
	var deleted *entities.GroceryItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		groceryItem, err := get(tx, id)
		if err != nil || groceryItem == nil {
			return err
		}
		if err := tx.Delete(&entities.GroceryItem{}, id).Error; err != nil {
			return crud.ClassifyDelete(err)
		}
		deleted = groceryItem
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
