// Package groceries provides database operations for grocery trips.
//
// Groceries are always returned with their grocery items, and each grocery
// item with its catalog item and item type, loaded with one batched query per
// relation.
//
// # Usage
//
//	repo := groceries.NewRepository(db)
//	grocery, err := repo.Create(ctx, schemas.GroceryCreate{
//		GroceryDate:  "2024-05-01",
//		GroceryItems: []schemas.GroceryItemCreate{{ItemID: 3}},
//	})
package groceries

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/groceries/internal/database/crud"
	"github.com/mrlokans/groceries/internal/entities"
	"github.com/mrlokans/groceries/internal/schemas"
)

// Repository handles all grocery database operations.
type Repository struct {
	db          *gorm.DB
	maxPageSize int
}

// NewRepository creates a new groceries repository.
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
	return db.
		Preload("GroceryItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("GroceryItems.Item").
		Preload("GroceryItems.Item.ItemType")
}

// List returns a page of groceries in insertion order and the total count.
func (r *Repository) List(ctx context.Context, skip, limit int) ([]entities.Grocery, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Grocery{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	groceries := []entities.Grocery{}
	page := crud.NewPage(skip, limit, r.maxPageSize)
	err := r.db.WithContext(ctx).Scopes(withRelations, page.Scope).Find(&groceries).Error
	return groceries, total, err
}

// Get returns the grocery with its items, or nil when it does not exist.
func (r *Repository) Get(ctx context.Context, id uint) (*entities.Grocery, error) {
	return get(r.db.WithContext(ctx), id)
}

func get(tx *gorm.DB, id uint) (*entities.Grocery, error) {
	var grocery entities.Grocery
	found, err := crud.Find(tx.Scopes(withRelations), &grocery, id)
	if err != nil || !found {
		return nil, err
	}
	return &grocery, nil
}

// Create inserts a grocery together with its nested items in one
// transaction. Every referenced item must exist.
func (r *Repository) Create(ctx context.Context, in schemas.GroceryCreate) (*entities.Grocery, error) {
	date, err := schemas.ParseDate(in.GroceryDate)
	if err != nil {
		return nil, err
	}

	var created *entities.Grocery
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireItems(tx, in.GroceryItems); err != nil {
			return err
		}

		grocery := entities.Grocery{
			FamilyID:     in.FamilyIDOrDefault(),
			GroceryDate:  date,
			GroceryItems: newGroceryItems(0, in.GroceryItems),
		}
		if err := tx.Create(&grocery).Error; err != nil {
			return crud.Classify(err)
		}

		var err error
		created, err = get(tx, grocery.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the fields present in in. When in.GroceryItems is non-nil
// the grocery's items are replaced by it. Returns nil when the grocery does
// not exist.
func (r *Repository) Update(ctx context.Context, id uint, in schemas.GroceryUpdate) (*entities.Grocery, error) {
	changes := map[string]any{}
	if in.FamilyID != nil {
		changes["family_id"] = *in.FamilyID
	}
	if in.GroceryDate != nil {
		date, err := schemas.ParseDate(*in.GroceryDate)
		if err != nil {
			return nil, err
		}
		changes["grocery_date"] = date
	}

	var updated *entities.Grocery
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var grocery entities.Grocery
		found, err := crud.Find(tx, &grocery, id)
		if err != nil || !found {
			return err
		}

		if len(changes) > 0 {
			if err := tx.Model(&grocery).Updates(changes).Error; err != nil {
				return crud.Classify(err)
			}
		}

		if in.GroceryItems != nil {
			if err := replaceItems(tx, id, in.GroceryItems); err != nil {
				return err
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

// Delete removes a grocery and returns it as it was. Its grocery items are
// removed by the ON DELETE CASCADE constraint.
func (r *Repository) Delete(ctx context.Context, id uint) (*entities.Grocery, error) {
	var deleted *entities.Grocery
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		grocery, err := get(tx, id)
		if err != nil || grocery == nil {
			return err
		}
		if err := tx.Delete(&entities.Grocery{}, id).Error; err != nil {
			return crud.ClassifyDelete(err)
		}
		deleted = grocery
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func replaceItems(tx *gorm.DB, groceryID uint, items []schemas.GroceryItemCreate) error {
	if err := requireItems(tx, items); err != nil {
		return err
	}
	if err := tx.Where("grocery_id = ?", groceryID).Delete(&entities.GroceryItem{}).Error; err != nil {
		return fmt.Errorf("clear grocery items: %w", err)
	}
	if len(items) == 0 {
		return nil
	}
	rows := newGroceryItems(groceryID, items)
	if err := tx.Create(&rows).Error; err != nil {
		return crud.Classify(err)
	}
	return nil
}

func requireItems(tx *gorm.DB, items []schemas.GroceryItemCreate) error {
	return crud.RequireAllExist(tx, &entities.Item{}, "Item", "item_id", schemas.ItemIDs(items))
}

func newGroceryItems(groceryID uint, items []schemas.GroceryItemCreate) []entities.GroceryItem {
	rows := make([]entities.GroceryItem, 0, len(items))
	for _, in := range items {
		rows = append(rows, entities.GroceryItem{
			GroceryID: groceryID,
			ItemID:    in.ItemID,
			Quantity:  in.QuantityOrDefault(),
			Purchased: in.PurchasedOrDefault(),
		})
	}
	return rows
}
