package schemas

import (
	"fmt"
	"time"

	"github.com/mrlokans/groceries/internal/entities"
)

// DateLayout is the wire format of grocery_date.
const DateLayout = "2006-01-02"

// DefaultQuantity is used when a grocery item is created without a quantity.
const DefaultQuantity = 1

// GroceryItemCreate is shared by nested grocery_items lists and by
// POST /groceries/:id/items.
type GroceryItemCreate struct {
	ItemID    uint  `json:"item_id" binding:"required,min=1"`
	Quantity  *int  `json:"quantity" binding:"omitempty,min=1"`
	Purchased *bool `json:"purchased"`
}

// StandaloneGroceryItemCreate is the body of POST /grocery_items, which has
// no grocery in its path.
type StandaloneGroceryItemCreate struct {
	GroceryID uint `json:"grocery_id" binding:"required,min=1"`
	GroceryItemCreate
}

type GroceryItemUpdate struct {
	ItemID    *uint `json:"item_id" binding:"omitempty,min=1"`
	Quantity  *int  `json:"quantity" binding:"omitempty,min=1"`
	Purchased *bool `json:"purchased"`
}

type GroceryItem struct {
	ID        uint      `json:"id"`
	GroceryID uint      `json:"grocery_id"`
	ItemID    uint      `json:"item_id"`
	Quantity  int       `json:"quantity"`
	Purchased bool      `json:"purchased"`
	CreatedAt time.Time `json:"created_at"`
	Item      *Item     `json:"item,omitempty"`
}

type GroceryCreate struct {
	FamilyID     *int                `json:"family_id" binding:"omitempty,min=1"`
	GroceryDate  string              `json:"grocery_date" binding:"required,datetime=2006-01-02"`
	GroceryItems []GroceryItemCreate `json:"grocery_items" binding:"omitempty,dive"`
}

// GroceryUpdate changes only the fields present in the request. A non-nil
// GroceryItems, including an empty list, replaces every item of the grocery.
type GroceryUpdate struct {
	FamilyID     *int                `json:"family_id" binding:"omitempty,min=1"`
	GroceryDate  *string             `json:"grocery_date" binding:"omitempty,datetime=2006-01-02"`
	GroceryItems []GroceryItemCreate `json:"grocery_items" binding:"omitempty,dive"`
}

type Grocery struct {
	ID           uint          `json:"id"`
	FamilyID     int           `json:"family_id"`
	GroceryDate  string        `json:"grocery_date"`
	CreatedAt    time.Time     `json:"created_at"`
	GroceryItems []GroceryItem `json:"grocery_items"`
}

// ParseDate parses a grocery_date value into midnight UTC. Failures are
// reported as FieldErrors.
func ParseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, FieldErrors{{
			Field:   "grocery_date",
			Rule:    "datetime",
			Message: fmt.Sprintf("%q is not a date in YYYY-MM-DD format", value),
		}}
	}
	return date, nil
}

// QuantityOrDefault returns the requested quantity or DefaultQuantity.
func (g GroceryItemCreate) QuantityOrDefault() int {
	if g.Quantity == nil {
		return DefaultQuantity
	}
	return *g.Quantity
}

// PurchasedOrDefault returns the requested purchased flag or false.
func (g GroceryItemCreate) PurchasedOrDefault() bool {
	return g.Purchased != nil && *g.Purchased
}

// FamilyIDOrDefault returns the requested family or entities.DefaultFamilyID.
func (g GroceryCreate) FamilyIDOrDefault() int {
	if g.FamilyID == nil {
		return entities.DefaultFamilyID
	}
	return *g.FamilyID
}

// ItemIDs lists the referenced items in request order.
func ItemIDs(items []GroceryItemCreate) []uint {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ItemID)
	}
	return ids
}

func NewGroceryItem(e *entities.GroceryItem) GroceryItem {
	gi := GroceryItem{
		ID:        e.ID,
		GroceryID: e.GroceryID,
		ItemID:    e.ItemID,
		Quantity:  e.Quantity,
		Purchased: e.Purchased,
		CreatedAt: e.CreatedAt,
	}
	if e.Item != nil {
		item := NewItem(e.Item)
		gi.Item = &item
	}
	return gi
}

func NewGroceryItems(list []entities.GroceryItem) []GroceryItem {
	out := make([]GroceryItem, 0, len(list))
	for i := range list {
		out = append(out, NewGroceryItem(&list[i]))
	}
	return out
}

func NewGrocery(e *entities.Grocery) Grocery {
	return Grocery{
		ID:           e.ID,
		FamilyID:     e.FamilyID,
		GroceryDate:  e.GroceryDate.UTC().Format(DateLayout),
		CreatedAt:    e.CreatedAt,
		GroceryItems: NewGroceryItems(e.GroceryItems),
	}
}

func NewGroceries(list []entities.Grocery) []Grocery {
	out := make([]Grocery, 0, len(list))
	for i := range list {
		out = append(out, NewGrocery(&list[i]))
	}
	return out
}
