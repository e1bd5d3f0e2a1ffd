package schemas

import (
	"time"

	"github.com/mrlokans/groceries/internal/entities"
)

type ItemTypeCreate struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

type ItemTypeUpdate struct {
	Name *string `json:"name" binding:"omitempty,notblank,max=100"`
}

type ItemType struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ItemCreate struct {
	Name       string `json:"name" binding:"required,notblank,max=100"`
	ItemTypeID uint   `json:"item_type_id" binding:"required,min=1"`
}

type ItemUpdate struct {
	Name       *string `json:"name" binding:"omitempty,notblank,max=100"`
	ItemTypeID *uint   `json:"item_type_id" binding:"omitempty,min=1"`
}

type Item struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	ItemTypeID uint      `json:"item_type_id"`
	CreatedAt  time.Time `json:"created_at"`
	ItemType   *ItemType `json:"item_type,omitempty"`
}

func NewItemType(e *entities.ItemType) ItemType {
	return ItemType{ID: e.ID, Name: e.Name, CreatedAt: e.CreatedAt}
}

func NewItemTypes(list []entities.ItemType) []ItemType {
	out := make([]ItemType, 0, len(list))
	for i := range list {
		out = append(out, NewItemType(&list[i]))
	}
	return out
}

func NewItem(e *entities.Item) Item {
	item := Item{
		ID:         e.ID,
		Name:       e.Name,
		ItemTypeID: e.ItemTypeID,
		CreatedAt:  e.CreatedAt,
	}
	if e.ItemType != nil {
		itemType := NewItemType(e.ItemType)
		item.ItemType = &itemType
	}
	return item
}

func NewItems(list []entities.Item) []Item {
	out := make([]Item, 0, len(list))
	for i := range list {
		out = append(out, NewItem(&list[i]))
	}
	return out
}
