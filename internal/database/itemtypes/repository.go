// Package itemtypes provides database operations for item type management.
//
// This package implements the ItemTypeStore interface defined in
// internal/http/stores.go.
//
// # Usage
//
//	repo := itemtypes.NewRepository(db)
//	itemType, err := repo.Create(ctx, schemas.ItemTypeCreate{Name: "Dairy"})
package itemtypes

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/groceries/internal/database/crud"
	"github.com/mrlokans/groceries/internal/entities"
	"github.com/mrlokans/groceries/internal/schemas"
)

// Repository handles all item type database operations.
type Repository struct {
	db          *gorm.DB
	maxPageSize int
}

// NewRepository creates a new item types repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, maxPageSize: crud.DefaultMaxPageSize}
}

// SetMaxPageSize changes the upper bound applied to List limits.
func (r *Repository) SetMaxPageSize(n int) {
	if n > 0 {
		r.maxPageSize = n
	}
}

// List returns a page of item types in insertion order and the total count.
func (r *Repository) List(ctx context.Context, skip, limit int) ([]entities.ItemType, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.ItemType{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	itemTypes := []entities.ItemType{}
	page := crud.NewPage(skip, limit, r.maxPageSize)
	err := r.db.WithContext(ctx).Scopes(page.Scope).Find(&itemTypes).Error
	return itemTypes, total, err
}

// Get returns the item type or nil when it does not exist.
func (r *Repository) Get(ctx context.Context, id uint) (*entities.ItemType, error) {
	var itemType entities.ItemType
	found, err := crud.Find(r.db.WithContext(ctx), &itemType, id)
	if err != nil || !found {
		return nil, err
	}
	return &itemType, nil
}

// Create inserts a new item type. A taken name yields crud.ErrDuplicate.
func (r *Repository) Create(ctx context.Context, in schemas.ItemTypeCreate) (*entities.ItemType, error) {
	itemType := &entities.ItemType{Name: strings.TrimSpace(in.Name)}
	if err := r.db.WithContext(ctx).Create(itemType).Error; err != nil {
		return nil, crud.Classify(err)
	}
	return itemType, nil
}

// Update renames an item type. Returns nil when it does not exist.
func (r *Repository) Update(ctx context.Context, id uint, in schemas.ItemTypeUpdate) (*entities.ItemType, error) {
	var updated *entities.ItemType
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var itemType entities.ItemType
		found, err := crud.Find(tx, &itemType, id)
		if err != nil || !found {
			return err
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if err := tx.Model(&itemType).Update("name", name).Error; err != nil {
				return crud.Classify(err)
			}
			itemType.Name = name
		}
		updated = &itemType
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an item type and returns it as it was. Item types that
// still have items are refused with crud.ErrInUse.
func (r *Repository) Delete(ctx context.Context, id uint) (*entities.ItemType, error) {
	var deleted *entities.ItemType
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var itemType entities.ItemType
		found, err := crud.Find(tx, &itemType, id)
		if err != nil || !found {
			return err
		}
		if err := tx.Delete(&itemType).Error; err != nil {
			return crud.ClassifyDelete(err)
		}
		deleted = &itemType
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
