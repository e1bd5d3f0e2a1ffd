package entities

import "time"

// DefaultFamilyID is stored on groceries created without a family. There is
// no family table yet, so the value is not checked against anything.
const DefaultFamilyID = 1

// Grocery is a shopping trip for a family on a given date.
type Grocery struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	FamilyID     int           `gorm:"not null;default:1" json:"family_id"`
	GroceryDate  time.Time     `gorm:"type:date;not null;index" json:"grocery_date"`
	GroceryItems []GroceryItem `gorm:"foreignKey:GroceryID;constraint:OnDelete:CASCADE" json:"grocery_items"`
	CreatedAt    time.Time     `gorm:"not null" json:"created_at"`
}

// GroceryItem is a line of a Grocery pointing at a catalog Item.
type GroceryItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GroceryID uint      `gorm:"index;not null" json:"grocery_id"`
	ItemID    uint      `gorm:"index;not null" json:"item_id"`
	Item      *Item     `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Purchased bool      `gorm:"not null;default:false" json:"purchased"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Grocery) TableName() string {
	return "groceries"
}

func (GroceryItem) TableName() string {
	return "grocery_items"
}
