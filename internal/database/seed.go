package database

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/mrlokans/groceries/internal/entities"
)

// CatalogEntry is one item type with the item names filed under it.
type CatalogEntry struct {
	Type  string
	Items []string
}

// DefaultCatalog is created on startup when missing.
var DefaultCatalog = []CatalogEntry{
	{Type: "Dairy", Items: []string{"Milk", "Cheese", "Butter", "Yogurt"}},
	{Type: "Bakery", Items: []string{"Bread", "Bagels", "Croissants"}},
	{Type: "Produce", Items: []string{"Apples", "Bananas", "Carrots", "Tomatoes"}},
	{Type: "Meat", Items: []string{"Chicken", "Beef", "Fish"}},
	{Type: "Pantry", Items: []string{"Rice", "Pasta", "Flour", "Sugar", "Salt"}},
	{Type: "Beverages", Items: []string{"Tea", "Coffee", "Juice", "Water"}},
}

// SeedResult counts the rows a seed run created.
type SeedResult struct {
	TypesCreated int `json:"types_created"`
	ItemsCreated int `json:"items_created"`
}

// Seed makes sure every type and item of catalog exists, creating only what
// is missing, in a single transaction. Item names are unique across types,
// so a name already filed under another type is left where it is.
func Seed(ctx context.Context, db *gorm.DB, catalog []CatalogEntry) (SeedResult, error) {
	var result SeedResult

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existingTypes []entities.ItemType
		if err := tx.Find(&existingTypes).Error; err != nil {
			return fmt.Errorf("load item types: %w", err)
		}
		typeByName := make(map[string]entities.ItemType, len(existingTypes))
		for _, t := range existingTypes {
			typeByName[t.Name] = t
		}

		var existingItems []string
		if err := tx.Model(&entities.Item{}).Pluck("name", &existingItems).Error; err != nil {
			return fmt.Errorf("load items: %w", err)
		}
		itemNames := make(map[string]struct{}, len(existingItems))
		for _, name := range existingItems {
			itemNames[name] = struct{}{}
		}

		for _, entry := range catalog {
			itemType, ok := typeByName[entry.Type]
			if !ok {
				itemType = entities.ItemType{Name: entry.Type}
				if err := tx.Create(&itemType).Error; err != nil {
					return fmt.Errorf("create item type %s: %w", entry.Type, err)
				}
				typeByName[entry.Type] = itemType
				result.TypesCreated++
			}

			var missing []entities.Item
			for _, name := range entry.Items {
				if _, exists := itemNames[name]; exists {
					continue
				}
				itemNames[name] = struct{}{}
				missing = append(missing, entities.Item{Name: name, ItemTypeID: itemType.ID})
			}
			if len(missing) == 0 {
				continue
			}
			if err := tx.Create(&missing).Error; err != nil {
				return fmt.Errorf("create items for %s: %w", entry.Type, err)
			}
			result.ItemsCreated += len(missing)
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	slog.Info("catalog seeded", "types_created", result.TypesCreated, "items_created", result.ItemsCreated)
	return result, nil
}

// SeedDefaults seeds DefaultCatalog.
func (d *Database) SeedDefaults(ctx context.Context) (SeedResult, error) {
	return Seed(ctx, d.DB, DefaultCatalog)
}
