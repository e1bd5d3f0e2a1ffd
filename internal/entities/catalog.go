package entities

import "time"

// ItemType is a category of catalog items, e.g. "Dairy".
type ItemType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Items     []Item    `gorm:"foreignKey:ItemTypeID" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// Item is a named product belonging to exactly one ItemType.
type Item struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	ItemTypeID uint      `gorm:"index;not null" json:"item_type_id"`
	ItemType   *ItemType `gorm:"foreignKey:ItemTypeID" json:"item_type,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (ItemType) TableName() string {
	return "item_types"
}

func (Item) TableName() string {
	return "items"
}
