// Package items provides database operations for the item catalog.
//
// This package implements the ItemStore interface defined in
// internal/http/stores.go. Every item returned carries its ItemType.
package items

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/groceries/internal/database/crud"
	"github.com/mrlokans/groceries/internal/entities"
	"github.com/mrlokans/groceries/internal/schemas"
)

// Repository handles all item database operations.
type Repository struct {
	db          *gorm.DB
	maxPageSize int
}

// NewRepository creates a new items repository.
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
	return db.Preload("ItemType")
}

// List returns a page of items in insertion order and the total count.
func (r *Repository) List(ctx context.Context, skip, limit int) ([]entities.Item, int64, error) {
	return r.list(ctx, skip, limit, func(db *gorm.DB) *gorm.DB { return db })
}

// ListByType is List restricted to one item type.
func (r *Repository) ListByType(ctx context.Context, itemTypeID uint, skip, limit int) ([]entities.Item, int64, error) {
	return r.list(ctx, skip, limit, func(db *gorm.DB) *gorm.DB {
		return db.Where("item_type_id = ?", itemTypeID)
	})
}

func (r *Repository) list(ctx context.Context, skip, limit int, filter func(*gorm.DB) *gorm.DB) ([]entities.Item, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Item{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []entities.Item{}
	page := crud.NewPage(skip, limit, r.maxPageSize)
	err := r.db.WithContext(ctx).Scopes(filter, withRelations, page.Scope).Find(&items).Error
	return items, total, err
}

// Get returns the item with its type, or nil when it does not exist.
func (r *Repository) Get(ctx context.Context, id uint) (*entities.Item, error) {
	return get(r.db.WithContext(ctx), id)
}

func get(tx *gorm.DB, id uint) (*entities.Item, error) {
	var item entities.Item
	found, err := crud.Find(tx.Scopes(withRelations), &item, id)
	if err != nil || !found {
		return nil, err
	}
	return &item, nil
}

// Create inserts an item after checking that its item type exists.
func (r *Repository) Create(ctx context.Context, in schemas.ItemCreate) (*entities.Item, error) {
	var created *entities.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := crud.RequireExists(tx, &entities.ItemType{}, "Item type", "item_type_id", in.ItemTypeID); err != nil {
			return err
		}

		item := entities.Item{Name: strings.TrimSpace(in.Name), ItemTypeID: in.ItemTypeID}
		if err := tx.Create(&item).Error; err != nil {
			return crud.Classify(err)
		}

		var err error
		created, err = get(tx, item.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the fields present in in. Returns nil when the item does
// not exist.
func (r *Repository) Update(ctx context.Context, id uint, in schemas.ItemUpdate) (*entities.Item, error) {
	var updated *entities.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item entities.Item
		found, err := crud.Find(tx, &item, id)
		if err != nil || !found {
			return err
		}

		changes := map[string]any{}
		if in.Name != nil {
			changes["name"] = strings.TrimSpace(*in.Name)
		}
		if in.ItemTypeID != nil {
			if err := crud.RequireExists(tx, &entities.ItemType{}, "Item type", "item_type_id", *in.ItemTypeID); err != nil {
				return err
			}
			changes["item_type_id"] = *in.ItemTypeID
		}
		if len(changes) > 0 {
			if err := tx.Model(&item).Updates(changes).Error; err != nil {
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

// Delete removes an item and returns it as it was. Items still on a grocery
// are refused with crud.ErrInUse.
func (r *Repository) Delete(ctx context.Context, id uint) (*entities.Item, error) {
	var deleted *entities.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := get(tx, id)
		if err != nil || item == nil {
			return err
		}
		if err := tx.Delete(&entities.Item{}, id).Error; err != nil {
			return crud.ClassifyDelete(err)
		}
		deleted = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
